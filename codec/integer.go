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
	"reflect"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Integer codecs for the supported widths. Int keeps the current value when
// the input is not a number; every other width restores its default.
// Int64 serves both long and long long resources.
var (
	Int    = IntegerCodec[int]{OnFailure: Kept}
	Int32  = IntegerCodec[int32]{OnFailure: Reset}
	Int64  = IntegerCodec[int64]{OnFailure: Reset}
	Uint   = IntegerCodec[uint]{OnFailure: Reset}
	Uint32 = IntegerCodec[uint32]{OnFailure: Reset}
	Uint64 = IntegerCodec[uint64]{OnFailure: Reset}
)

// IntegerCodec encodes integers in base 10 with no padding or grouping.
//
// Decoding reads the leading integer of the input, so "42px" decodes to 42.
// Empty input, input without leading digits, a minus sign for an unsigned T
// and values that overflow T all yield OnFailure.
type IntegerCodec[T constraints.Integer] struct {
	OnFailure Outcome
}

// Encode implements [Codec].
func (IntegerCodec[T]) Encode(v T) string {
	if isSigned[T]() {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatUint(uint64(v), 10)
}

// Decode implements [Codec].
func (c IntegerCodec[T]) Decode(s string) (T, Outcome) {
	var zero T

	signed := isSigned[T]()
	digits, ok := leadingInteger(s, signed)
	if !ok {
		return zero, c.OnFailure
	}

	bits := reflect.TypeFor[T]().Bits()
	if signed {
		n, err := strconv.ParseInt(digits, 10, bits)
		if err != nil {
			return zero, c.OnFailure
		}
		return T(n), Parsed
	}

	n, err := strconv.ParseUint(digits, 10, bits)
	if err != nil {
		return zero, c.OnFailure
	}
	return T(n), Parsed
}

func isSigned[T constraints.Integer]() bool {
	var zero T
	return zero-1 < zero
}
