// Copyright 2025 The Rivaas Authors
// Copyright 2025 Company.info B.V.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build !integration

package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"rivaas.dev/resource/format"
)

type FileSourceTestSuite struct {
	suite.Suite
	path string
}

func (s *FileSourceTestSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "init.yaml")
	s.Require().NoError(os.WriteFile(s.path, []byte("session:\n  screen0:\n    layer: Top\n"), 0o600))
}

func TestFileSourceTestSuite(t *testing.T) {
	suite.Run(t, new(FileSourceTestSuite))
}

func (s *FileSourceTestSuite) TestLoad_ValidFile() {
	file := NewFile(s.path, format.YAMLFormat{})
	conf, err := file.Load(context.TODO())
	s.Require().NoError(err)
	session, ok := conf["session"].(map[string]any)
	s.Require().True(ok)
	s.Equal(map[string]any{"layer": "Top"}, session["screen0"])
}

func (s *FileSourceTestSuite) TestLoad_MockDecoder() {
	decoder := &mockDecoderFile{decodeMap: map[string]any{"foo": "bar"}}
	conf, err := NewFile(s.path, decoder).Load(context.TODO())
	s.NoError(err)
	s.Equal(map[string]any{"foo": "bar"}, conf)
}

func (s *FileSourceTestSuite) TestLoad_MissingFile() {
	file := NewFile(filepath.Join(s.T().TempDir(), "absent.yaml"), &mockDecoderFile{err: true})
	conf, err := file.Load(context.TODO())
	s.NoError(err)
	s.Empty(conf)
}

func (s *FileSourceTestSuite) TestLoad_Unreadable() {
	// A directory exists but cannot be read as a file.
	file := NewFile(s.T().TempDir(), &mockDecoderFile{})
	_, err := file.Load(context.TODO())
	s.Require().Error(err)
	s.Contains(err.Error(), "failed to read file")
}

func (s *FileSourceTestSuite) TestLoad_Content() {
	file := NewFileContent([]byte(`{"foo": "bar"}`), format.JSONFormat{})
	conf, err := file.Load(context.TODO())
	s.NoError(err)
	s.Equal(map[string]any{"foo": "bar"}, conf)
}

func (s *FileSourceTestSuite) TestLoad_DecodeError() {
	file := NewFile(s.path, &mockDecoderFile{err: true})
	_, err := file.Load(context.TODO())
	s.Require().Error(err)
	s.Contains(err.Error(), "failed to decode file")
}

// mockDecoderFile implements format.Decoder for testing.
type mockDecoderFile struct {
	decodeMap map[string]any
	err       bool
}

func (m *mockDecoderFile) Decode(_ []byte, v any) error {
	if m.err {
		return os.ErrInvalid
	}
	if ptr, ok := v.(*map[string]any); ok {
		*ptr = m.decodeMap
		return nil
	}
	return os.ErrInvalid
}
