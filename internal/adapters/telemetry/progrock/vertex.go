package progrock

import (
	"fmt"
	"io"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/nexon/internal/core/domain"
)

// Vertex records one package build on a progrock vertex.
// Warnings and errors logged on it go to the vertex's stderr stream.
type Vertex struct {
	rec  *progrock.VertexRecorder
	once sync.Once
}

func newVertex(rec *progrock.VertexRecorder) *Vertex {
	return &Vertex{rec: rec}
}

// Stdout returns the vertex's standard output stream.
func (v *Vertex) Stdout() io.Writer {
	return v.rec.Stdout()
}

// Stderr returns the vertex's error stream.
func (v *Vertex) Stderr() io.Writer {
	return v.rec.Stderr()
}

// Log writes a levelled line to the stream matching its severity.
func (v *Vertex) Log(level domain.LogLevel, msg string) {
	w := v.rec.Stdout()
	if level >= domain.LogLevelWarn {
		w = v.rec.Stderr()
	}
	_, _ = fmt.Fprintf(w, "[%s] %s\n", level, msg)
}

// Complete marks the build finished, failed when err is non-nil.
func (v *Vertex) Complete(err error) {
	v.once.Do(func() {
		v.rec.Done(err)
	})
}
