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

// Package format provides the document formats resource snapshots are read
// from and written to.
//
// A format converts between encoded bytes and a nested map[string]any whose
// leaves are the textual resource values. Formats are looked up by [Type]
// in a process-wide registry:
//
//	encoder, err := format.GetEncoder(format.TypeYAML)
//	data, err := encoder.Encode(map[string]any{"session": map[string]any{"tabs": "true"}})
//
// # Built-in Formats
//
//   - JSON: encoding/json
//   - YAML: github.com/goccy/go-yaml
//   - TOML: github.com/BurntSushi/toml
//   - HCL: github.com/hashicorp/hcl/v2, nested maps become blocks
//   - EnvVar: KEY=VALUE lines, underscores create nesting
//   - Text: a single value, used for one-key stores such as a Consul key
//
// # Custom Formats
//
// Register custom formats with [Register], naming the file extensions that
// select them:
//
//	format.Register(format.Type("ini"), INIFormat{}, ".ini", ".conf")
//	typ, err := format.ForPath("init.conf") // "ini"
package format
