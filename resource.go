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

package resource

import "rivaas.dev/resource/codec"

// Holder is the type-erased view of a [Resource] used by the [Manager].
type Holder interface {
	// Name returns the primary resource name.
	Name() string
	// AltName returns the secondary name consulted when Name is not set.
	AltName() string
	// String encodes the current value.
	String() string
	// Decode parses s and applies the codec's outcome.
	Decode(s string) codec.Outcome
	// SetDefault restores the default value.
	SetDefault()
}

// Resource is a typed value with a default and a textual codec.
//
// The value is always a valid T: a rejected input either leaves it untouched
// or restores the default, depending on the codec. Resource is not safe for
// concurrent use.
type Resource[T any] struct {
	value   T
	def     T
	codec   codec.Codec[T]
	name    string
	altName string
}

// New creates a resource holding def. It panics if c is nil.
//
// Example:
//
//	tabs := resource.New(codec.AttachArea, wm.AttachWindow,
//	    "session.screen0.tab.attachArea", "Session.Screen0.Tab.AttachArea")
func New[T any](c codec.Codec[T], def T, name, altName string) *Resource[T] {
	if c == nil {
		panic("resource: nil codec")
	}
	return &Resource[T]{
		value:   def,
		def:     def,
		codec:   c,
		name:    name,
		altName: altName,
	}
}

// Get returns the current value.
func (r *Resource[T]) Get() T {
	return r.value
}

// Set replaces the current value.
func (r *Resource[T]) Set(v T) {
	r.value = v
}

// Default returns the default value.
func (r *Resource[T]) Default() T {
	return r.def
}

// SetDefault restores the default value.
func (r *Resource[T]) SetDefault() {
	r.value = r.def
}

// Name returns the primary resource name.
func (r *Resource[T]) Name() string {
	return r.name
}

// AltName returns the secondary resource name.
func (r *Resource[T]) AltName() string {
	return r.altName
}

// String encodes the current value with the resource's codec.
func (r *Resource[T]) String() string {
	return r.codec.Encode(r.value)
}

// Decode parses s and applies the outcome: [codec.Parsed] assigns the
// decoded value, [codec.Reset] restores the default and [codec.Kept] leaves
// the value as it was.
func (r *Resource[T]) Decode(s string) codec.Outcome {
	v, outcome := r.codec.Decode(s)
	switch outcome {
	case codec.Parsed:
		r.value = v
	case codec.Reset:
		r.value = r.def
	}
	return outcome
}

// SetFromString decodes s and reports whether it was accepted as is.
// A false result does not mean the value is invalid, only that it was kept
// or reset.
func (r *Resource[T]) SetFromString(s string) bool {
	return r.Decode(s) == codec.Parsed
}
