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

package dumper

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/resource/format"
	"rivaas.dev/resource/internal/sqlitekv"
)

type failingEncoder struct{}

func (failingEncoder) Encode(any) ([]byte, error) {
	return nil, errors.New("boom")
}

func TestFile_Dump(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "init.yaml")
	values := map[string]any{"session": map[string]any{"layer": "Top"}}

	require.NoError(t, NewFile(path, format.YAMLFormat{}).Dump(context.Background(), &values))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "layer: Top")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(DefaultFilePermissions), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestFile_DumpOverwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "init.json")
	require.NoError(t, os.WriteFile(path, []byte("old content that is longer"), 0o644))

	values := map[string]any{"a": "b"}
	require.NoError(t, NewFile(path, format.JSONFormat{}).Dump(context.Background(), &values))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": "b"}`, string(data))
}

func TestFile_DumpPermissions(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "private.toml")
	values := map[string]any{"a": "b"}
	require.NoError(t, NewFileWithPermissions(path, format.TOMLFormat{}, 0o600).Dump(context.Background(), &values))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFile_DumpErrors(t *testing.T) {
	t.Parallel()

	values := map[string]any{"a": "b"}

	err := NewFile(filepath.Join(t.TempDir(), "x"), failingEncoder{}).Dump(context.Background(), &values)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to encode values")

	err = NewFile(filepath.Join(t.TempDir(), "missing", "x.json"), format.JSONFormat{}).Dump(context.Background(), &values)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create temporary file")
}

func TestSQLite_Dump(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "resources.db")

	values := map[string]any{
		"session": map[string]any{
			"screen0": map[string]any{"layer": "Top", "buttons": "Shade Close "},
		},
	}
	d := NewSQLite(dsn, "settings")
	require.NoError(t, d.Dump(ctx, &values))

	values = map[string]any{"session": map[string]any{"screen0": map[string]any{"layer": "Dock"}}}
	require.NoError(t, d.Dump(ctx, &values))

	store, err := sqlitekv.Open(ctx, dsn, "settings")
	require.NoError(t, err)
	defer store.Close()

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"session.screen0.layer":   "Dock",
		"session.screen0.buttons": "Shade Close ",
	}, got)
}

func TestSQLite_DumpErrors(t *testing.T) {
	t.Parallel()

	values := map[string]any{"bad": make(chan int)}
	err := NewSQLite(filepath.Join(t.TempDir(), "x.db"), "").Dump(context.Background(), &values)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to flatten values")

	values = map[string]any{"a": "b"}
	err = NewSQLite(filepath.Join(t.TempDir(), "x.db"), "bad name").Dump(context.Background(), &values)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open sqlite dumper")
}
