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

package codec

import (
	"slices"
	"strings"

	"rivaas.dev/resource/wm"
)

// Buttons is the codec for titlebar button lists.
var Buttons ButtonsCodec

// ButtonsCodec encodes an ordered list of [wm.Button], duplicates allowed.
//
// Encoding writes each canonical name followed by a single space, so the
// output ends with a separator. Values outside the vocabulary are skipped.
// Decoding splits on white space, matches names without case and drops
// anything it does not recognise. "menuicon" is matched like every other
// name, in any case.
type ButtonsCodec struct{}

// Encode implements [Codec].
func (ButtonsCodec) Encode(v []wm.Button) string {
	var sb strings.Builder
	for _, b := range v {
		name, ok := b.Name()
		if !ok {
			continue
		}
		sb.WriteString(name)
		sb.WriteByte(' ')
	}
	return sb.String()
}

// Decode implements [Codec]. It always returns a non-nil slice.
func (ButtonsCodec) Decode(s string) ([]wm.Button, Outcome) {
	buttons := slices.AppendSeq(make([]wm.Button, 0), filterMap(strings.FieldsSeq(s), wm.ParseButton))
	return buttons, Parsed
}
