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
	"strings"

	"rivaas.dev/resource/layer"
	"rivaas.dev/resource/wm"
)

// AttachArea is the codec for tab attach area resources.
var AttachArea AttachAreaCodec

// AttachAreaCodec encodes [wm.AttachArea]. "titlebar" in any case decodes to
// [wm.AttachTitlebar]; every other input, garbage included, is [wm.AttachWindow].
type AttachAreaCodec struct{}

// Encode implements [Codec].
func (AttachAreaCodec) Encode(v wm.AttachArea) string {
	return v.String()
}

// Decode implements [Codec].
func (AttachAreaCodec) Decode(s string) (wm.AttachArea, Outcome) {
	switch strings.ToLower(s) {
	case "titlebar":
		return wm.AttachTitlebar, Parsed
	default:
		return wm.AttachWindow, Parsed
	}
}

// LayerCodec encodes [layer.Layer] through a [layer.Registry].
type LayerCodec struct {
	reg *layer.Registry
}

// NewLayer returns a layer codec backed by reg. It panics if reg is nil.
func NewLayer(reg *layer.Registry) LayerCodec {
	if reg == nil {
		panic("codec: nil layer registry")
	}
	return LayerCodec{reg: reg}
}

// Encode implements [Codec].
func (c LayerCodec) Encode(v layer.Layer) string {
	return c.reg.Name(v)
}

// Decode implements [Codec]. Names and indices outside the registry reset.
func (c LayerCodec) Decode(s string) (layer.Layer, Outcome) {
	idx := c.reg.Index(s)
	if idx < 0 || idx >= c.reg.Count() {
		return 0, Reset
	}
	return layer.Layer(idx), Parsed
}
