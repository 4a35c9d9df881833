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

// Package layer provides the window stacking layers and the read-only
// registry that maps layer indices to names and back.
//
// A [Registry] is immutable once built and is meant to be created at startup
// and handed to whatever needs it:
//
//	reg := layer.Standard()
//	reg.Name(layer.Dock)     // "Dock"
//	reg.Index("abovedock")   // 2
//	reg.Index("5")           // 5
package layer

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Layer is an index into a layer table. Lower indices stack above higher ones.
type Layer int

// Named layers of the standard table. Odd indices are unnamed.
const (
	Menu      Layer = 0
	AboveDock Layer = 2
	Dock      Layer = 4
	Top       Layer = 6
	Normal    Layer = 8
	Bottom    Layer = 10
	Desktop   Layer = 12

	// NumLayers is the size of the standard table.
	NumLayers = 13
)

// Registry maps layer indices to canonical names and back.
type Registry struct {
	count  int
	names  map[Layer]string
	byName map[string]Layer
}

// NewRegistry builds a registry of count layers. Layers absent from names
// render as their decimal index.
//
// Errors:
//   - Returns error if count is not positive
//   - Returns error if a named layer is outside [0, count)
//   - Returns error if two layers share a name (ignoring case)
func NewRegistry(count int, names map[Layer]string) (*Registry, error) {
	if count <= 0 {
		return nil, fmt.Errorf("layer count must be positive, got %d", count)
	}

	r := &Registry{
		count:  count,
		names:  make(map[Layer]string, len(names)),
		byName: make(map[string]Layer, len(names)),
	}
	for l, name := range names {
		if int(l) < 0 || int(l) >= count {
			return nil, fmt.Errorf("layer %q has index %d outside [0, %d)", name, l, count)
		}
		key := strings.ToLower(name)
		if prev, exists := r.byName[key]; exists {
			return nil, fmt.Errorf("layer name %q used by both %d and %d", name, prev, l)
		}
		r.names[l] = name
		r.byName[key] = l
	}

	return r, nil
}

var standard = sync.OnceValue(func() *Registry {
	r, err := NewRegistry(NumLayers, map[Layer]string{
		Menu:      "Menu",
		AboveDock: "AboveDock",
		Dock:      "Dock",
		Top:       "Top",
		Normal:    "Normal",
		Bottom:    "Bottom",
		Desktop:   "Desktop",
	})
	if err != nil {
		panic(err)
	}
	return r
})

// Standard returns the standard thirteen-layer table. It is built once.
func Standard() *Registry {
	return standard()
}

// Count returns the number of layers in the table.
func (r *Registry) Count() int {
	return r.count
}

// Valid reports whether l is inside [0, Count()).
func (r *Registry) Valid(l Layer) bool {
	return l >= 0 && int(l) < r.count
}

// Name returns the canonical name of l, or its decimal index if unnamed.
func (r *Registry) Name(l Layer) string {
	if name, ok := r.names[l]; ok {
		return name
	}
	return strconv.Itoa(int(l))
}

// Index resolves a decimal index or a layer name (ignoring case). It returns
// -1 when s is neither. A numeric result is not range checked.
func (r *Registry) Index(s string) int {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if l, ok := r.byName[strings.ToLower(s)]; ok {
		return int(l)
	}
	return -1
}
