// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"strings"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/nexon/internal/core/ports"
)

// Recorder implements the ports.Telemetry interface using the vito/progrock library.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a new Recorder with a default tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Record starts recording a new vertex.
// Vertices with the same name and inputs share a digest.
func (r *Recorder) Record(ctx context.Context, name string, opts ...ports.VertexOption) (context.Context, ports.Vertex) {
	cfg := ports.NewVertexConfig(opts...)
	v := r.rec.Vertex(vertexDigest(name, cfg.Inputs), name)
	vertex := newVertex(v)
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

func vertexDigest(name string, inputs []string) digest.Digest {
	if len(inputs) == 0 {
		return digest.FromString(name)
	}
	return digest.FromString(name + "\x00" + strings.Join(inputs, "\x00"))
}
