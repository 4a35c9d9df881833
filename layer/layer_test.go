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

package layer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandard(t *testing.T) {
	t.Parallel()

	reg := Standard()
	assert.Same(t, reg, Standard())
	assert.Equal(t, NumLayers, reg.Count())

	tests := []struct {
		layer Layer
		name  string
	}{
		{Menu, "Menu"},
		{1, "1"},
		{AboveDock, "AboveDock"},
		{3, "3"},
		{Dock, "Dock"},
		{Top, "Top"},
		{Normal, "Normal"},
		{Bottom, "Bottom"},
		{11, "11"},
		{Desktop, "Desktop"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.name, reg.Name(tt.layer))
		assert.Equal(t, int(tt.layer), reg.Index(tt.name))
	}
}

func TestRegistry_Index(t *testing.T) {
	t.Parallel()

	reg := Standard()
	assert.Equal(t, int(AboveDock), reg.Index("abovedock"))
	assert.Equal(t, int(Desktop), reg.Index("DESKTOP"))
	assert.Equal(t, int(Normal), reg.Index("  Normal "))
	assert.Equal(t, 42, reg.Index("42"))
	assert.Equal(t, -3, reg.Index("-3"))
	assert.Equal(t, -1, reg.Index("not-a-layer"))
	assert.Equal(t, -1, reg.Index(""))
}

func TestRegistry_Valid(t *testing.T) {
	t.Parallel()

	reg := Standard()
	assert.True(t, reg.Valid(Menu))
	assert.True(t, reg.Valid(Desktop))
	assert.False(t, reg.Valid(-1))
	assert.False(t, reg.Valid(NumLayers))
}

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		count  int
		names  map[Layer]string
		errMsg string
	}{
		{name: "zero count", count: 0, errMsg: "must be positive"},
		{name: "name out of range", count: 2, names: map[Layer]string{5: "Far"}, errMsg: "outside"},
		{name: "duplicate name", count: 3, names: map[Layer]string{0: "Top", 1: "TOP"}, errMsg: "used by both"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			reg, err := NewRegistry(tt.count, tt.names)
			require.Error(t, err)
			assert.Nil(t, reg)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}

	reg, err := NewRegistry(3, map[Layer]string{0: "High", 2: "Low"})
	require.NoError(t, err)
	assert.Equal(t, "High", reg.Name(0))
	assert.Equal(t, "1", reg.Name(1))
	assert.Equal(t, 2, reg.Index("low"))
}
