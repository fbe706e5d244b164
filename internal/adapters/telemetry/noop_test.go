package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nexon/internal/adapters/telemetry"
	"go.trai.ch/nexon/internal/core/ports"
)

func TestInterfaceSatisfaction(_ *testing.T) {
	var _ ports.Telemetry = (*telemetry.Noop)(nil)
	var _ ports.Vertex = telemetry.NoopVertex{}
}

func TestNoop_Record(t *testing.T) {
	tel := telemetry.NewNoop()

	ctx, v := tel.Record(context.Background(), "build A-1.0.0")
	require.NotNil(t, v)

	n, err := v.Stdout().Write([]byte("discarded"))
	require.NoError(t, err)
	assert.Equal(t, 9, n)
	v.Complete(nil)

	fromCtx, ok := ports.VertexFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, v, fromCtx)
	assert.NoError(t, tel.Close())
}
