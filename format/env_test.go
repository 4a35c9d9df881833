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

package format

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// EnvVarFormatTestSuite is a test suite for the EnvVarFormat.
type EnvVarFormatTestSuite struct {
	suite.Suite
	format EnvVarFormat
}

// SetupTest sets up the test suite.
func (s *EnvVarFormatTestSuite) SetupTest() {
	s.format = EnvVarFormat{}
}

// TestEnvVarFormatTestSuite runs the test suite.
func TestEnvVarFormatTestSuite(t *testing.T) {
	suite.Run(t, new(EnvVarFormatTestSuite))
}

func (s *EnvVarFormatTestSuite) TestDecode_Simple() {
	var v map[string]any
	s.Require().NoError(s.format.Decode([]byte("FOO=bar\nBAZ=qux"), &v))
	s.Equal("bar", v["foo"])
	s.Equal("qux", v["baz"])
}

func (s *EnvVarFormatTestSuite) TestDecode_Nested() {
	var v map[string]any
	s.Require().NoError(s.format.Decode([]byte("SESSION_SCREEN0_LAYER=Top\nSESSION_SCREEN0_TABS=true\nSESSION_STYLE=dark"), &v))

	session, ok := v["session"].(map[string]any)
	s.Require().True(ok)
	s.Equal("dark", session["style"])
	screen, ok := session["screen0"].(map[string]any)
	s.Require().True(ok)
	s.Equal("Top", screen["layer"])
	s.Equal("true", screen["tabs"])
}

func (s *EnvVarFormatTestSuite) TestDecode_Malformed() {
	var v map[string]any
	s.Require().NoError(s.format.Decode([]byte("FOO\nBAR=baz\n=value\n___=x"), &v))
	s.Equal(map[string]any{"bar": "baz"}, v)
}

func (s *EnvVarFormatTestSuite) TestDecode_Whitespace() {
	var v map[string]any
	s.Require().NoError(s.format.Decode([]byte("  FOO  =  bar  \n\tBAZ\t=\tqux\t"), &v))
	s.Equal("bar", v["foo"])
	s.Equal("qux", v["baz"])
}

func (s *EnvVarFormatTestSuite) TestDecode_NestedWins() {
	var v map[string]any
	s.Require().NoError(s.format.Decode([]byte("FOO=scalar\nFOO_BAR=nested\nFOO=again"), &v))
	foo, ok := v["foo"].(map[string]any)
	s.Require().True(ok)
	s.Equal("nested", foo["bar"])
}

func (s *EnvVarFormatTestSuite) TestDecode_WrongType() {
	var v []string
	s.Error(s.format.Decode([]byte("FOO=bar"), &v))
}

func (s *EnvVarFormatTestSuite) TestEncode() {
	b, err := s.format.Encode(map[string]any{
		"session": map[string]any{"layer": "Top", "tabs": true},
		"depth":   24,
	})
	s.Require().NoError(err)
	s.Equal("DEPTH=24\nSESSION_LAYER=Top\nSESSION_TABS=true\n", string(b))
}

func (s *EnvVarFormatTestSuite) TestEncode_Empty() {
	b, err := s.format.Encode(&map[string]any{})
	s.Require().NoError(err)
	s.Empty(b)
}

func (s *EnvVarFormatTestSuite) TestEncode_Errors() {
	_, err := s.format.Encode([]string{"not", "a", "map"})
	s.Error(err)

	_, err = s.format.Encode(map[string]any{"ch": make(chan int)})
	s.Error(err)
}
