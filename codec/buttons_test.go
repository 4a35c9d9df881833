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

//go:build !integration

package codec

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"rivaas.dev/resource/wm"
)

// ButtonsCodecTestSuite is a test suite for the ButtonsCodec type.
type ButtonsCodecTestSuite struct {
	suite.Suite
}

// TestButtonsCodecTestSuite runs the ButtonsCodecTestSuite.
func TestButtonsCodecTestSuite(t *testing.T) {
	suite.Run(t, new(ButtonsCodecTestSuite))
}

func (s *ButtonsCodecTestSuite) TestEncode() {
	got := Buttons.Encode([]wm.Button{wm.ButtonShade, wm.ButtonClose, wm.ButtonShade})
	s.Equal("Shade Close Shade ", got)
}

func (s *ButtonsCodecTestSuite) TestEncode_Empty() {
	s.Empty(Buttons.Encode(nil))
	s.Empty(Buttons.Encode([]wm.Button{}))
}

func (s *ButtonsCodecTestSuite) TestEncode_SkipsUnknown() {
	got := Buttons.Encode([]wm.Button{wm.ButtonStick, wm.Button(77), wm.ButtonMenuIcon})
	s.Equal("Stick MenuIcon ", got)
}

func (s *ButtonsCodecTestSuite) TestDecode() {
	got, outcome := Buttons.Decode("shade CLOSE bogus maximize")
	s.Equal(Parsed, outcome)
	s.Equal([]wm.Button{wm.ButtonShade, wm.ButtonClose, wm.ButtonMaximize}, got)
}

func (s *ButtonsCodecTestSuite) TestDecode_WhiteSpace() {
	got, _ := Buttons.Decode("\tMinimize\n\n  Stick  ")
	s.Equal([]wm.Button{wm.ButtonMinimize, wm.ButtonStick}, got)
}

func (s *ButtonsCodecTestSuite) TestDecode_Empty() {
	for _, input := range []string{"", "   ", "bogus nonsense"} {
		got, outcome := Buttons.Decode(input)
		s.Equal(Parsed, outcome)
		s.NotNil(got)
		s.Empty(got, "input %q", input)
	}
}

// MenuIcon is recognised in any case. Earlier implementations compared the
// lower-cased token against "menuIcon" and never matched it.
func (s *ButtonsCodecTestSuite) TestDecode_MenuIcon() {
	for _, input := range []string{"menuIcon", "MenuIcon", "menuicon", "MENUICON"} {
		got, _ := Buttons.Decode(input)
		s.Equal([]wm.Button{wm.ButtonMenuIcon}, got, "input %q", input)
	}
}

func (s *ButtonsCodecTestSuite) TestRoundTrip() {
	inputs := [][]wm.Button{
		{},
		wm.Buttons(),
		{wm.ButtonClose, wm.ButtonClose, wm.ButtonClose},
		{wm.ButtonMenuIcon, wm.ButtonShade, wm.ButtonStick, wm.ButtonMinimize},
	}
	for _, v := range inputs {
		got, outcome := Buttons.Decode(Buttons.Encode(v))
		s.Equal(Parsed, outcome)
		s.Equal(v, got)
	}
}
