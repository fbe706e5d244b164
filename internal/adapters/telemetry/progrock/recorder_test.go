package progrock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nexon/internal/adapters/telemetry/progrock"
	"go.trai.ch/nexon/internal/core/domain"
	"go.trai.ch/nexon/internal/core/ports"
)

func TestNew(t *testing.T) {
	var recorder ports.Telemetry = progrock.New()
	assert.NotNil(t, recorder)
}

func TestRecorder_Record(t *testing.T) {
	recorder := progrock.New()

	ctx, vertex := recorder.Record(context.Background(), "build B-2.0.0", ports.WithInputs("build A-1.0.0"))
	require.NotNil(t, vertex)

	fromCtx, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, vertex, fromCtx)

	_, err := vertex.Stdout().Write([]byte("compiling\n"))
	require.NoError(t, err)
	_, err = vertex.Stderr().Write([]byte("warning\n"))
	require.NoError(t, err)
	vertex.Log(domain.LogLevelDebug, "debug msg")
	vertex.Complete(errors.New("boom"))

	vertex.Complete(nil)

	_, other := recorder.Record(context.Background(), "build A-1.0.0")
	other.Log(domain.LogLevelWarn, "no build commands")
	other.Complete(nil)

	assert.NoError(t, recorder.Close())
}
