package ports

import (
	"context"
	"io"

	"go.trai.ch/nexon/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records progress of long-running work such as package builds.
type Telemetry interface {
	// Record starts a new vertex and returns a context carrying it.
	Record(ctx context.Context, name string, opts ...VertexOption) (context.Context, Vertex)
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex is a single unit of recorded work.
type Vertex interface {
	Stdout() io.Writer
	Stderr() io.Writer
	Log(level domain.LogLevel, msg string)
	// Complete ends the vertex. Only the first call has an effect.
	Complete(err error)
}

// VertexConfig holds configuration for a starting vertex.
type VertexConfig struct {
	// Inputs names the work this vertex depends on.
	Inputs []string
}

// VertexOption is a functional option for configuring a vertex.
type VertexOption func(*VertexConfig)

// WithInputs records the names of the vertices this one depends on.
func WithInputs(inputs ...string) VertexOption {
	return func(c *VertexConfig) {
		c.Inputs = append(c.Inputs, inputs...)
	}
}

// NewVertexConfig applies opts to an empty VertexConfig.
func NewVertexConfig(opts ...VertexOption) VertexConfig {
	var cfg VertexConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

type vertexKey struct{}

// ContextWithVertex returns a copy of ctx carrying v.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexKey{}, v)
}

// VertexFromContext returns the vertex carried by ctx, if any.
func VertexFromContext(ctx context.Context) (Vertex, bool) {
	v, ok := ctx.Value(vertexKey{}).(Vertex)
	return v, ok
}
