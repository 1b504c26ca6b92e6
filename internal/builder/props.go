package builder

import (
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// propToGo converts a scene prop to plain Go values: strings, bools, int64
// or float64 numbers, []any and map[string]any. Unknown or unconvertible
// values are kept as their cty form.
func propToGo(v cty.Value) any {
	if v.IsNull() {
		return nil
	}
	if !v.IsWhollyKnown() {
		return v
	}
	ty := v.Type()
	switch {
	case ty == cty.String:
		var s string
		if err := gocty.FromCtyValue(v, &s); err == nil {
			return s
		}
	case ty == cty.Bool:
		var b bool
		if err := gocty.FromCtyValue(v, &b); err == nil {
			return b
		}
	case ty == cty.Number:
		var i int64
		if err := gocty.FromCtyValue(v, &i); err == nil {
			return i
		}
		var f float64
		if err := gocty.FromCtyValue(v, &f); err == nil {
			return f
		}
	case ty.IsListType() || ty.IsSetType() || ty.IsTupleType():
		out := make([]any, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, e := it.Element()
			out = append(out, propToGo(e))
		}
		return out
	case ty.IsMapType() || ty.IsObjectType():
		out := make(map[string]any)
		for k, e := range v.AsValueMap() {
			out[k] = propToGo(e)
		}
		return out
	}
	return v
}
