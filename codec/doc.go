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

// Package codec provides the textual encodings of typed resource values.
//
// Every supported value type has a [Codec] that renders the value in its
// canonical textual form and parses text back. Decoding never returns an
// error: each codec resolves bad input locally and reports how through an
// [Outcome]:
//
//   - [Parsed]: the returned value should be assigned
//   - [Kept]: the current value should be left untouched
//   - [Reset]: the current value should be restored to its default
//
// # Built-in Codecs
//
//   - [Int]: decimal, keeps the current value on failure
//   - [Uint], [Int64] and the other fixed widths: decimal, reset on failure
//   - [Bool]: "true"/"false", anything but "true" (any case) is false
//   - [String]: identity
//   - [AttachArea]: "Titlebar" or "Window", anything but "titlebar" is Window
//   - [NewLayer]: names from a [layer.Registry], reset when out of range
//   - [Buttons]: space separated button names, unknown names dropped
//
// # Custom Codecs
//
// Any type implementing [Codec] can back a resource. [Func] adapts a pair of
// plain functions:
//
//	percent := codec.Func[int]{
//	    EncodeFunc: func(v int) string { return strconv.Itoa(v) + "%" },
//	    DecodeFunc: func(s string) (int, codec.Outcome) {
//	        n, err := strconv.Atoi(strings.TrimSuffix(s, "%"))
//	        if err != nil {
//	            return 0, codec.Reset
//	        }
//	        return n, codec.Parsed
//	    },
//	}
package codec
