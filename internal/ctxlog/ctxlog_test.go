package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext_FallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}

func TestWith_AppendsAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := With(WithLogger(context.Background(), logger), "scene", "demo.hcl")
	FromContext(ctx).Info("loaded")

	assert.Contains(t, buf.String(), "scene=demo.hcl")
	assert.Contains(t, buf.String(), "msg=loaded")
}
