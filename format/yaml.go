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

import "github.com/goccy/go-yaml"

// TypeYAML identifies the YAML format.
const TypeYAML Type = "yaml"

func init() {
	Register(TypeYAML, YAMLFormat{}, ".yaml", ".yml")
}

// YAMLFormat reads and writes YAML documents.
type YAMLFormat struct{}

// Encode marshals v to YAML.
func (YAMLFormat) Encode(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// Decode unmarshals YAML data into the value pointed to by v.
func (YAMLFormat) Decode(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
