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

// Outcome tells the caller of [Codec.Decode] what to do with the result.
type Outcome int

const (
	// Parsed means the decoded value replaces the current one.
	Parsed Outcome = iota
	// Kept means the input was rejected and the current value stays.
	Kept
	// Reset means the input was rejected and the default value is restored.
	Reset
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Parsed:
		return "parsed"
	case Kept:
		return "kept"
	case Reset:
		return "reset"
	default:
		return "unknown"
	}
}

// Codec converts a value of type T to its canonical text and back.
// Implementations must be pure: the result depends on the arguments only.
type Codec[T any] interface {
	// Encode renders v in canonical textual form.
	Encode(v T) string
	// Decode parses s. The value is meaningful only when the outcome is [Parsed].
	Decode(s string) (T, Outcome)
}

// Func adapts a pair of functions to the [Codec] interface.
type Func[T any] struct {
	EncodeFunc func(T) string
	DecodeFunc func(string) (T, Outcome)
}

// Encode calls f.EncodeFunc.
func (f Func[T]) Encode(v T) string {
	return f.EncodeFunc(v)
}

// Decode calls f.DecodeFunc.
func (f Func[T]) Decode(s string) (T, Outcome) {
	return f.DecodeFunc(s)
}
