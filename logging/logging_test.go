package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/piperubio/registry/logging"
	"github.com/stretchr/testify/assert"
)

func TestContextHandlerAddsAttributes(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(logging.ContextHandler{Handler: slog.NewTextHandler(&buf, nil)})

	ctx := logging.WithRequestID(logging.PackageCtx("web"), "abc-123")
	logger.InfoContext(ctx, "hello")

	out := buf.String()
	assert.Contains(t, out, "package=web")
	assert.Contains(t, out, "request_id=abc-123")
}

func TestAppendCtxDoesNotLeakBetweenSiblings(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(logging.ContextHandler{Handler: slog.NewTextHandler(&buf, nil)})

	parent := logging.PackageCtx("web")
	first := logging.WithRequestID(parent, "first")
	_ = logging.WithRequestID(parent, "second")

	logger.InfoContext(first, "hello")

	assert.Contains(t, buf.String(), "request_id=first")
	assert.NotContains(t, buf.String(), "second")
}

func TestContextHandlerWithoutAttributes(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(logging.ContextHandler{Handler: slog.NewTextHandler(&buf, nil)}).With("component", "cli")
	logger.InfoContext(context.Background(), "plain")

	assert.Contains(t, buf.String(), "component=cli")
	assert.NotContains(t, buf.String(), "package=")
}
