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

// Package keypath converts between nested configuration maps and flat maps
// keyed by dotted paths.
package keypath

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// Separator joins path segments.
const Separator = "."

// Flatten walks a nested map and renders each leaf as text under its dotted
// path. Scalars are converted with cast; lists are rendered element by
// element and joined with a single space. Nil leaves are skipped.
func Flatten(m map[string]any) (map[string]string, error) {
	out := make(map[string]string)
	if err := flatten("", m, out); err != nil {
		return nil, err
	}
	return out, nil
}

func flatten(prefix string, m map[string]any, out map[string]string) error {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + Separator + k
		}

		switch t := v.(type) {
		case nil:
			continue
		case map[string]any:
			if err := flatten(key, t, out); err != nil {
				return err
			}
		case map[any]any:
			nested, err := cast.ToStringMapE(t)
			if err != nil {
				return fmt.Errorf("key %s: %w", key, err)
			}
			if err = flatten(key, nested, out); err != nil {
				return err
			}
		case []any:
			parts, err := cast.ToStringSliceE(t)
			if err != nil {
				return fmt.Errorf("key %s: %w", key, err)
			}
			out[key] = strings.Join(parts, " ")
		case []string:
			out[key] = strings.Join(t, " ")
		case json.Number:
			out[key] = t.String()
		default:
			s, err := cast.ToStringE(t)
			if err != nil {
				return fmt.Errorf("key %s: %w", key, err)
			}
			out[key] = s
		}
	}
	return nil
}

// Expand builds a nested map from dotted paths. A path that is both a value
// and the prefix of another path is an error.
func Expand(flat map[string]string) (map[string]any, error) {
	out := make(map[string]any)
	for key, value := range flat {
		parts := strings.Split(key, Separator)
		current := out
		for i, part := range parts[:len(parts)-1] {
			switch next := current[part].(type) {
			case nil:
				m := make(map[string]any)
				current[part] = m
				current = m
			case map[string]any:
				current = next
			default:
				return nil, fmt.Errorf("key %s conflicts with value at %s",
					key, strings.Join(parts[:i+1], Separator))
			}
		}

		last := parts[len(parts)-1]
		if _, exists := current[last]; exists {
			return nil, fmt.Errorf("key %s conflicts with nested keys below it", key)
		}
		current[last] = value
	}
	return out, nil
}
