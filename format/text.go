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
	"fmt"

	"github.com/spf13/cast"
)

// TypeText identifies the single-value text format.
const TypeText Type = "text"

func init() {
	Register(TypeText, TextFormat{})
}

// TextFormat treats the whole payload as one string value. Sources that
// store one resource per key, like a Consul key, use it to skip document
// parsing.
type TextFormat struct{}

// Encode renders v as text using cast.
func (TextFormat) Encode(v any) ([]byte, error) {
	s, err := cast.ToStringE(v)
	if err != nil {
		return nil, fmt.Errorf("TextFormat.Encode: %w", err)
	}
	return []byte(s), nil
}

// Decode stores data as a string into a *string or *any.
func (TextFormat) Decode(data []byte, v any) error {
	switch ptr := v.(type) {
	case *string:
		*ptr = string(data)
	case *any:
		*ptr = string(data)
	default:
		return fmt.Errorf("TextFormat.Decode: expected *string or *any, got %T", v)
	}
	return nil
}
