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

import (
	"errors"
	"strings"
)

var (
	// ErrDuplicateName is returned when a resource name is registered twice,
	// ignoring case.
	ErrDuplicateName = errors.New("resource name already registered")

	// ErrNameConflict is returned by Dump when one resource name is a dotted
	// prefix of another, such as "session.slit" and "session.slit.autohide".
	// Such a pair cannot be written to a nested document.
	ErrNameConflict = errors.New("resource names conflict")
)

// Error reports a failed manager step.
//
// Op is the step ("register", "load", "merge", "validate", "dump" and so on).
// Source names the source, dumper or stage that failed, for example
// "source[0]", "json-schema" or "dumper[1]". Resource is set when a single
// resource is at fault.
type Error struct {
	Op       string
	Source   string
	Resource string
	Err      error
}

// Error renders as "resource: <op> [<resource>] via <source>: <cause>".
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("resource: ")
	b.WriteString(e.Op)
	if e.Resource != "" {
		b.WriteString(" ")
		b.WriteString(e.Resource)
	}
	if e.Source != "" {
		b.WriteString(" via ")
		b.WriteString(e.Source)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates an Error not tied to one resource.
func NewError(source, op string, err error) *Error {
	return &Error{Op: op, Source: source, Err: err}
}

// NewResourceError creates an Error for the named resource.
func NewResourceError(source, name, op string, err error) *Error {
	return &Error{Op: op, Source: source, Resource: name, Err: err}
}
