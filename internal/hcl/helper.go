package hcl

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/nestdi/internal/ctxlog"
	"github.com/vk/nestdi/internal/nodeid"
	"github.com/zclconf/go-cty/cty"
)

// isExprDefined reports whether an optional attribute was actually written.
// gohcl fills omitted optional expressions with a zero-width placeholder, so
// a nil check alone is not enough.
func isExprDefined(ctx context.Context, expr hcl.Expression, attrName string) bool {
	if expr == nil {
		return false
	}
	r := expr.Range()
	defined := r.End.Byte > r.Start.Byte
	ctxlog.FromContext(ctx).Debug("Checking if HCL attribute was explicitly defined.",
		"attribute", attrName,
		"hcl_range", r.String(),
		"is_defined", defined,
	)
	return defined
}

// exprPath reads a node path written either as a bare traversal
// (level.player) or as a string literal ("level.player").
func exprPath(expr hcl.Expression) (string, error) {
	if traversal, diags := hcl.AbsTraversalForExpr(expr); !diags.HasErrors() {
		return traversalPath(traversal)
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return "", fmt.Errorf("%s: expected a node path: %w", expr.Range().String(), diags)
	}
	if val.IsNull() || !val.Type().Equals(cty.String) {
		return "", fmt.Errorf("%s: expected a node path, got %s", expr.Range().String(), val.Type().FriendlyName())
	}
	p, err := nodeid.Parse(val.AsString())
	if err != nil {
		return "", fmt.Errorf("%s: %w", expr.Range().String(), err)
	}
	return p.String(), nil
}

// traversalPath accepts only root and attribute steps; index steps have no
// meaning in a node path.
func traversalPath(t hcl.Traversal) (string, error) {
	segments := make([]string, 0, len(t))
	for _, step := range t {
		switch s := step.(type) {
		case hcl.TraverseRoot:
			segments = append(segments, s.Name)
		case hcl.TraverseAttr:
			segments = append(segments, s.Name)
		default:
			return "", fmt.Errorf("%s: node paths cannot contain index steps", t.SourceRange().String())
		}
	}
	p, err := nodeid.Parse(strings.Join(segments, nodeid.Separator))
	if err != nil {
		return "", err
	}
	return p.String(), nil
}

// pathList reads a static list of node paths.
func pathList(expr hcl.Expression) ([]string, error) {
	exprs, diags := hcl.ExprList(expr)
	if diags.HasErrors() {
		return nil, diags
	}
	paths := make([]string, 0, len(exprs))
	for _, e := range exprs {
		p, err := exprPath(e)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// evalProps evaluates a props attribute, which must be an object or map.
// Values are kept in cty form; no variables or functions are available.
func evalProps(expr hcl.Expression) (map[string]cty.Value, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("props: %w", diags)
	}
	if val.IsNull() {
		return nil, nil
	}
	ty := val.Type()
	if !ty.IsObjectType() && !ty.IsMapType() {
		return nil, fmt.Errorf("%s: props must be an object, got %s", expr.Range().String(), ty.FriendlyName())
	}
	if !val.IsWhollyKnown() {
		return nil, fmt.Errorf("%s: props must be fully known", expr.Range().String())
	}
	return val.AsValueMap(), nil
}
