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

package source

import (
	"context"
	"fmt"
	"os"

	"rivaas.dev/resource/format"
)

// File loads resource values from a file or from in-memory content.
type File struct {
	path    string
	data    []byte
	decoder format.Decoder
}

// NewFile creates a File source that reads the file at path on every Load.
// The decoder determines how the file content is parsed.
func NewFile(path string, decoder format.Decoder) *File {
	return &File{
		path:    path,
		decoder: decoder,
	}
}

// NewFileContent creates a File source over the provided bytes.
// This is useful for embedded defaults and tests.
func NewFileContent(data []byte, decoder format.Decoder) *File {
	return &File{
		data:    data,
		decoder: decoder,
	}
}

// Load reads and decodes the content. A file that does not exist yields an
// empty map, so a first start without a resource file restores defaults.
//
// Errors:
//   - Returns error if the file exists but cannot be read
//   - Returns error if decoding fails
func (f *File) Load(context.Context) (map[string]any, error) {
	data := f.data
	if f.path != "" {
		var err error
		data, err = os.ReadFile(f.path)
		if os.IsNotExist(err) {
			return make(map[string]any), nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}
	}

	var values map[string]any
	if err := f.decoder.Decode(data, &values); err != nil {
		return nil, fmt.Errorf("failed to decode file: %w", err)
	}

	return values, nil
}
