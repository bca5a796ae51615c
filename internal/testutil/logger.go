// Package testutil provides shared helpers for package tests.
package testutil

import (
	"context"
	"io"
	"testing"

	"github.com/rs/zerolog"
)

// NewTestContext returns a context carrying a logger that writes to w.
// Pass io.Discard to silence logging in tests that only care about state.
func NewTestContext(t *testing.T, w io.Writer) context.Context {
	t.Helper()
	logger := zerolog.New(w).With().Timestamp().Logger()
	return logger.WithContext(context.Background())
}

// NewSilentContext returns a context with a discarding logger.
func NewSilentContext(t *testing.T) context.Context {
	t.Helper()
	return NewTestContext(t, io.Discard)
}
