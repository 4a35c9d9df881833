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

// Package wm defines the window manager enumerations persisted as resources:
// the tab attach area and the titlebar button vocabulary.
package wm

import "strings"

// AttachArea selects where tabs may be dropped to group windows.
type AttachArea int

const (
	// AttachWindow lets tabs attach anywhere on the window. It is the zero value.
	AttachWindow AttachArea = iota
	// AttachTitlebar restricts tab attachment to the titlebar.
	AttachTitlebar
)

// String returns "Titlebar" for [AttachTitlebar] and "Window" for anything else.
func (a AttachArea) String() string {
	if a == AttachTitlebar {
		return "Titlebar"
	}
	return "Window"
}

// Button identifies a titlebar button kind.
type Button int

const (
	ButtonShade Button = iota
	ButtonMinimize
	ButtonMaximize
	ButtonClose
	ButtonStick
	ButtonMenuIcon
)

var buttonNames = [...]string{
	ButtonShade:    "Shade",
	ButtonMinimize: "Minimize",
	ButtonMaximize: "Maximize",
	ButtonClose:    "Close",
	ButtonStick:    "Stick",
	ButtonMenuIcon: "MenuIcon",
}

// buttonsByName is keyed by the lower-cased canonical name.
var buttonsByName = func() map[string]Button {
	m := make(map[string]Button, len(buttonNames))
	for b, name := range buttonNames {
		m[strings.ToLower(name)] = Button(b)
	}
	return m
}()

// Name returns the canonical name of b. The second result is false for
// values outside the vocabulary.
func (b Button) Name() (string, bool) {
	if b < 0 || int(b) >= len(buttonNames) {
		return "", false
	}
	return buttonNames[b], true
}

// String returns the canonical name, or the empty string for unknown values.
func (b Button) String() string {
	name, _ := b.Name()
	return name
}

// ParseButton looks up a button by name, ignoring case.
func ParseButton(name string) (Button, bool) {
	b, ok := buttonsByName[strings.ToLower(name)]
	return b, ok
}

// Buttons returns the full vocabulary in declaration order.
func Buttons() []Button {
	out := make([]Button, len(buttonNames))
	for i := range buttonNames {
		out[i] = Button(i)
	}
	return out
}
