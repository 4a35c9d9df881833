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

package format

import (
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// ErrUnknownFormat is returned when a type or file extension has no
// registered format.
var ErrUnknownFormat = errors.New("unknown format")

// Format reads and writes one kind of resource document.
type Format interface {
	Encoder
	Decoder
}

type registry struct {
	mu         sync.RWMutex
	formats    map[Type]Format
	extensions map[string]Type
}

var formats = &registry{
	formats:    make(map[Type]Format),
	extensions: make(map[string]Type),
}

// Register makes f available under typ and claims the given file extensions
// for it. Extensions include the leading dot and are matched without case.
// Registering a type or an extension again replaces the earlier entry.
func Register(typ Type, f Format, extensions ...string) {
	formats.mu.Lock()
	defer formats.mu.Unlock()

	formats.formats[typ] = f
	for _, ext := range extensions {
		formats.extensions[strings.ToLower(ext)] = typ
	}
}

func lookup(typ Type) (Format, error) {
	formats.mu.RLock()
	defer formats.mu.RUnlock()

	f, ok := formats.formats[typ]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, typ)
	}
	return f, nil
}

// GetEncoder returns the encoder registered under typ.
func GetEncoder(typ Type) (Encoder, error) {
	f, err := lookup(typ)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// GetDecoder returns the decoder registered under typ.
func GetDecoder(typ Type) (Decoder, error) {
	f, err := lookup(typ)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// ForPath returns the format claiming the extension of path, such as
// [TypeYAML] for "~/.fluxbox/init.yml".
func ForPath(path string) (Type, error) {
	ext := strings.ToLower(filepath.Ext(path))

	formats.mu.RLock()
	defer formats.mu.RUnlock()

	typ, ok := formats.extensions[ext]
	if !ok {
		return "", fmt.Errorf("%w: no format for extension %q", ErrUnknownFormat, ext)
	}
	return typ, nil
}

// Types returns the registered types in sorted order.
func Types() []Type {
	formats.mu.RLock()
	defer formats.mu.RUnlock()

	return slices.Sorted(maps.Keys(formats.formats))
}
