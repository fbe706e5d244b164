// Package telemetry holds telemetry implementations that need no backing recorder.
package telemetry

import (
	"context"
	"io"

	"go.trai.ch/nexon/internal/core/domain"
	"go.trai.ch/nexon/internal/core/ports"
)

// Noop is a ports.Telemetry that discards everything.
type Noop struct{}

// NewNoop creates a new Noop telemetry.
func NewNoop() *Noop {
	return &Noop{}
}

// Record returns a vertex that discards its output.
func (n *Noop) Record(ctx context.Context, _ string, _ ...ports.VertexOption) (context.Context, ports.Vertex) {
	v := NoopVertex{}
	return ports.ContextWithVertex(ctx, v), v
}

// Close does nothing.
func (n *Noop) Close() error { return nil }

// NoopVertex is a ports.Vertex that discards everything.
type NoopVertex struct{}

// Stdout returns io.Discard.
func (NoopVertex) Stdout() io.Writer { return io.Discard }

// Stderr returns io.Discard.
func (NoopVertex) Stderr() io.Writer { return io.Discard }

// Log does nothing.
func (NoopVertex) Log(domain.LogLevel, string) {}

// Complete does nothing.
func (NoopVertex) Complete(error) {}
