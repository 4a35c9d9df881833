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
	"encoding/json"
	"errors"
	"io"
)

// TypeJSON identifies the JSON format.
const TypeJSON Type = "json"

func init() {
	Register(TypeJSON, JSONFormat{}, ".json")
}

// JSONFormat reads and writes JSON documents.
type JSONFormat struct{}

// Encode marshals v with indentation so dumped files stay readable.
func (JSONFormat) Encode(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// Decode unmarshals data into the value pointed to by v. Numbers are kept as
// [json.Number] so integers beyond 2^53 reach the codecs digit for digit.
// Trailing data after the document is an error, as with [json.Unmarshal].
func (JSONFormat) Decode(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("JSONFormat.Decode: unexpected data after top-level value")
	}
	return nil
}
