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
	"iter"
	"strings"
	"unicode"
)

// leadingInteger returns the integer prefix of s the way scanf's %d reads it:
// leading white space is skipped, one optional sign, then at least one digit.
// Anything after the digits is ignored. Unsigned targets reject a minus sign
// and get the digits without the sign so strconv.ParseUint accepts them.
func leadingInteger(s string, signed bool) (string, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		if s[i] == '-' && !signed {
			return "", false
		}
		i++
	}

	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return "", false
	}

	if signed {
		return s[:i], true
	}
	return s[start:i], true
}

// filterMap yields fn(v) for every v in seq that fn accepts, in order.
func filterMap[In, Out any](seq iter.Seq[In], fn func(In) (Out, bool)) iter.Seq[Out] {
	return func(yield func(Out) bool) {
		for v := range seq {
			out, ok := fn(v)
			if !ok {
				continue
			}
			if !yield(out) {
				return
			}
		}
	}
}
