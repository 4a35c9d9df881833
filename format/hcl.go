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

package format

import (
	"fmt"
	"math/big"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// TypeHCL identifies the HCL format.
const TypeHCL Type = "hcl"

func init() {
	Register(TypeHCL, HCLFormat{}, ".hcl")
}

// HCLFormat reads and writes HCL documents. Nested maps are written as
// unlabeled blocks and leaves as attributes:
//
//	session {
//	  screen0 {
//	    tabs {
//	      attacharea = "Titlebar"
//	    }
//	  }
//	}
//
// On decode, block labels add nesting levels after the block type.
type HCLFormat struct{}

// Encode writes a nested map as HCL. Keys must be valid HCL identifiers.
func (HCLFormat) Encode(v any) ([]byte, error) {
	m, err := asMap(v)
	if err != nil {
		return nil, fmt.Errorf("HCLFormat.Encode: %w", err)
	}

	f := hclwrite.NewEmptyFile()
	if err := writeHCLBody(f.Body(), m); err != nil {
		return nil, fmt.Errorf("HCLFormat.Encode: %w", err)
	}
	return f.Bytes(), nil
}

// Decode parses HCL into the *map[string]any pointed to by v.
func (HCLFormat) Decode(data []byte, v any) error {
	ptr, ok := v.(*map[string]any)
	if !ok {
		return fmt.Errorf("HCLFormat.Decode: expected *map[string]any, got %T", v)
	}

	file, diags := hclsyntax.ParseConfig(data, "resources.hcl", hcl.InitialPos)
	if diags.HasErrors() {
		return diags
	}
	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return fmt.Errorf("HCLFormat.Decode: unexpected body type %T", file.Body)
	}

	m, err := readHCLBody(body)
	if err != nil {
		return err
	}
	*ptr = m
	return nil
}

func writeHCLBody(body *hclwrite.Body, m map[string]any) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		if !hclsyntax.ValidIdentifier(k) {
			return fmt.Errorf("%q is not a valid HCL identifier", k)
		}
		keys = append(keys, k)
	}
	slices.Sort(keys)

	// Attributes first, then blocks, as hclwrite would otherwise interleave them.
	for _, k := range keys {
		if _, ok := m[k].(map[string]any); ok {
			continue
		}
		val, err := toCty(m[k])
		if err != nil {
			return fmt.Errorf("attribute %s: %w", k, err)
		}
		body.SetAttributeValue(k, val)
	}
	for _, k := range keys {
		nested, ok := m[k].(map[string]any)
		if !ok {
			continue
		}
		block := body.AppendNewBlock(k, nil)
		if err := writeHCLBody(block.Body(), nested); err != nil {
			return err
		}
	}
	return nil
}

func readHCLBody(body *hclsyntax.Body) (map[string]any, error) {
	out := make(map[string]any, len(body.Attributes)+len(body.Blocks))
	for name, attr := range body.Attributes {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, diags
		}
		gv, err := fromCty(val)
		if err != nil {
			return nil, fmt.Errorf("attribute %s: %w", name, err)
		}
		out[name] = gv
	}

	for _, block := range body.Blocks {
		nested, err := readHCLBody(block.Body)
		if err != nil {
			return nil, err
		}
		path := append([]string{block.Type}, block.Labels...)
		target := out
		for _, p := range path[:len(path)-1] {
			next, ok := target[p].(map[string]any)
			if !ok {
				next = make(map[string]any)
				target[p] = next
			}
			target = next
		}
		last := path[len(path)-1]
		if existing, ok := target[last].(map[string]any); ok {
			for k, v := range nested {
				existing[k] = v
			}
			continue
		}
		target[last] = nested
	}
	return out, nil
}

func toCty(v any) (cty.Value, error) {
	switch t := v.(type) {
	case nil:
		return cty.NullVal(cty.String), nil
	case string:
		return cty.StringVal(t), nil
	case bool:
		return cty.BoolVal(t), nil
	case int:
		return cty.NumberIntVal(int64(t)), nil
	case int64:
		return cty.NumberIntVal(t), nil
	case uint64:
		return cty.NumberUIntVal(t), nil
	case float64:
		return cty.NumberFloatVal(t), nil
	case []string:
		vals := make([]cty.Value, len(t))
		for i, s := range t {
			vals[i] = cty.StringVal(s)
		}
		return cty.TupleVal(vals), nil
	case []any:
		vals := make([]cty.Value, len(t))
		for i, e := range t {
			ev, err := toCty(e)
			if err != nil {
				return cty.NilVal, err
			}
			vals[i] = ev
		}
		return cty.TupleVal(vals), nil
	default:
		return cty.NilVal, fmt.Errorf("unsupported value type %T", v)
	}
}

func fromCty(v cty.Value) (any, error) {
	if v.IsNull() {
		return nil, nil
	}
	if !v.IsKnown() {
		return nil, fmt.Errorf("value is not known")
	}

	ty := v.Type()
	switch {
	case ty.Equals(cty.String):
		return v.AsString(), nil
	case ty.Equals(cty.Bool):
		return v.True(), nil
	case ty.Equals(cty.Number):
		bf := v.AsBigFloat()
		if i, acc := bf.Int64(); acc == big.Exact {
			return i, nil
		}
		f, _ := bf.Float64()
		return f, nil
	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		out := make([]any, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			gv, err := fromCty(ev)
			if err != nil {
				return nil, err
			}
			out = append(out, gv)
		}
		return out, nil
	case ty.IsObjectType() || ty.IsMapType():
		out := make(map[string]any, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			k, ev := it.Element()
			gv, err := fromCty(ev)
			if err != nil {
				return nil, err
			}
			out[k.AsString()] = gv
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported HCL type %s", ty.FriendlyName())
	}
}
