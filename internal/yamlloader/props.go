package yamlloader

import (
	"fmt"
	"sort"

	"github.com/zclconf/go-cty/cty"
)

// propsToCty converts decoded YAML props into cty values so that both scene
// formats hand the builder the same representation.
func propsToCty(props map[string]any) (map[string]cty.Value, error) {
	out := make(map[string]cty.Value, len(props))
	for k, v := range props {
		cv, err := toCty(v)
		if err != nil {
			return nil, fmt.Errorf("props.%s: %w", k, err)
		}
		out[k] = cv
	}
	return out, nil
}

func toCty(v any) (cty.Value, error) {
	switch x := v.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType), nil
	case string:
		return cty.StringVal(x), nil
	case bool:
		return cty.BoolVal(x), nil
	case int:
		return cty.NumberIntVal(int64(x)), nil
	case int64:
		return cty.NumberIntVal(x), nil
	case uint64:
		return cty.NumberUIntVal(x), nil
	case float64:
		return cty.NumberFloatVal(x), nil
	case []any:
		if len(x) == 0 {
			return cty.EmptyTupleVal, nil
		}
		elems := make([]cty.Value, 0, len(x))
		for i, e := range x {
			ce, err := toCty(e)
			if err != nil {
				return cty.NilVal, fmt.Errorf("[%d]: %w", i, err)
			}
			elems = append(elems, ce)
		}
		return cty.TupleVal(elems), nil
	case map[string]any:
		if len(x) == 0 {
			return cty.EmptyObjectVal, nil
		}
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		attrs := make(map[string]cty.Value, len(x))
		for _, k := range keys {
			ce, err := toCty(x[k])
			if err != nil {
				return cty.NilVal, fmt.Errorf("%s: %w", k, err)
			}
			attrs[k] = ce
		}
		return cty.ObjectVal(attrs), nil
	default:
		return cty.NilVal, fmt.Errorf("unsupported value of type %T", v)
	}
}
