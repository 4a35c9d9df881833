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

package keypath

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten(t *testing.T) {
	t.Parallel()

	got, err := Flatten(map[string]any{
		"session": map[string]any{
			"screen0": map[string]any{
				"layer":   "Top",
				"buttons": []any{"Shade", "Close"},
				"depth":   24,
				"tabs":    true,
				"cache":   json.Number("9007199254740993"),
			},
			"names": []string{"a", "b"},
			"unset": nil,
		},
		"legacy": map[any]any{"key": "value"},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"session.screen0.layer":   "Top",
		"session.screen0.buttons": "Shade Close",
		"session.screen0.depth":   "24",
		"session.screen0.tabs":    "true",
		"session.screen0.cache":   "9007199254740993",
		"session.names":           "a b",
		"legacy.key":              "value",
	}, got)
}

func TestFlatten_Error(t *testing.T) {
	t.Parallel()

	_, err := Flatten(map[string]any{"bad": make(chan int)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "key bad")
}

func TestExpand(t *testing.T) {
	t.Parallel()

	got, err := Expand(map[string]string{
		"session.screen0.layer": "Top",
		"session.screen0.tabs":  "true",
		"session.style":         "dark",
		"top":                   "1",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"session": map[string]any{
			"screen0": map[string]any{"layer": "Top", "tabs": "true"},
			"style":   "dark",
		},
		"top": "1",
	}, got)
}

func TestExpand_Conflict(t *testing.T) {
	t.Parallel()

	// Both orders must fail regardless of map iteration order.
	for i := 0; i < 10; i++ {
		_, err := Expand(map[string]string{"a": "1", "a.b": "2"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "conflicts")
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	flat := map[string]string{"a.b.c": "1", "a.d": "x y ", "e": ""}
	nested, err := Expand(flat)
	require.NoError(t, err)
	got, err := Flatten(nested)
	require.NoError(t, err)
	assert.Equal(t, flat, got)
}
