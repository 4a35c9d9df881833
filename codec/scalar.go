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
	"strconv"
	"strings"
)

var (
	// Bool is the codec for boolean resources.
	Bool BoolCodec
	// String is the codec for text resources.
	String StringCodec
)

// BoolCodec encodes "true" or "false". Decoding never fails: only "true",
// compared without case, yields true.
type BoolCodec struct{}

// Encode implements [Codec].
func (BoolCodec) Encode(v bool) string {
	return strconv.FormatBool(v)
}

// Decode implements [Codec].
func (BoolCodec) Decode(s string) (bool, Outcome) {
	return strings.EqualFold(s, "true"), Parsed
}

// StringCodec stores text as is.
type StringCodec struct{}

// Encode implements [Codec].
func (StringCodec) Encode(v string) string {
	return v
}

// Decode implements [Codec].
func (StringCodec) Decode(s string) (string, Outcome) {
	return s, Parsed
}
