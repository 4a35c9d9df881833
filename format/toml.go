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

import "github.com/BurntSushi/toml"

// TypeTOML identifies the TOML format.
const TypeTOML Type = "toml"

func init() {
	Register(TypeTOML, TOMLFormat{}, ".toml")
}

// TOMLFormat reads and writes TOML documents.
type TOMLFormat struct{}

// Encode marshals v to TOML. Nested maps become tables.
func (TOMLFormat) Encode(v any) ([]byte, error) {
	return toml.Marshal(v)
}

// Decode unmarshals TOML data into the value pointed to by v.
func (TOMLFormat) Decode(data []byte, v any) error {
	return toml.Unmarshal(data, v)
}
