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
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cast"
)

// TypeEnvVar identifies the environment variable format.
const TypeEnvVar Type = "env"

func init() {
	Register(TypeEnvVar, EnvVarFormat{}, ".env")
}

// EnvVarFormat reads and writes KEY=VALUE lines. Underscores in keys
// separate nesting levels; keys are lower-cased on decode and upper-cased on
// encode.
type EnvVarFormat struct{}

// Encode writes one KEY=VALUE line per leaf of a nested map, sorted by key.
// Leaves are converted with cast; values that cannot be rendered as a single
// string are an error.
func (EnvVarFormat) Encode(v any) ([]byte, error) {
	m, err := asMap(v)
	if err != nil {
		return nil, fmt.Errorf("EnvVarFormat.Encode: %w", err)
	}

	lines := make([]string, 0, len(m))
	var walk func(prefix string, m map[string]any) error
	walk = func(prefix string, m map[string]any) error {
		for k, val := range m {
			key := strings.ToUpper(k)
			if prefix != "" {
				key = prefix + "_" + key
			}
			if nested, ok := val.(map[string]any); ok {
				if err := walk(key, nested); err != nil {
					return err
				}
				continue
			}
			s, err := cast.ToStringE(val)
			if err != nil {
				return fmt.Errorf("key %s: %w", key, err)
			}
			lines = append(lines, key+"="+s)
		}
		return nil
	}
	if err := walk("", m); err != nil {
		return nil, fmt.Errorf("EnvVarFormat.Encode: %w", err)
	}

	slices.Sort(lines)
	if len(lines) == 0 {
		return []byte{}, nil
	}
	return []byte(strings.Join(lines, "\n") + "\n"), nil
}

// Decode decodes KEY=VALUE lines into a nested map.
// Lines without an equals sign and keys made only of underscores are skipped.
// When a key is used both as a value and as a prefix, the nested form wins.
func (EnvVarFormat) Decode(data []byte, v any) error {
	conf := make(map[string]any)

	for _, env := range bytes.Split(data, []byte("\n")) {
		pair := strings.SplitN(string(env), "=", 2)
		if len(pair) != 2 {
			continue
		}

		key := strings.TrimSpace(pair[0])
		if key == "" {
			continue
		}

		parts := slices.DeleteFunc(strings.Split(strings.ToLower(key), "_"), func(p string) bool {
			return p == ""
		})
		if len(parts) == 0 {
			continue
		}

		current := conf
		for _, part := range parts[:len(parts)-1] {
			next, ok := current[part].(map[string]any)
			if !ok {
				next = make(map[string]any)
				current[part] = next
			}
			current = next
		}

		last := parts[len(parts)-1]
		if _, nested := current[last].(map[string]any); nested {
			continue
		}
		current[last] = strings.TrimSpace(pair[1])
	}

	ptr, ok := v.(*map[string]any)
	if !ok {
		return fmt.Errorf("EnvVarFormat.Decode: expected *map[string]any, got %T", v)
	}
	*ptr = conf

	return nil
}
