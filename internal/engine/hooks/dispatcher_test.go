package hooks_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nexon/internal/core/domain"
	"go.trai.ch/nexon/internal/core/ports"
	"go.trai.ch/nexon/internal/core/ports/mocks"
	"go.trai.ch/nexon/internal/engine/hooks"
	"go.uber.org/mock/gomock"
)

var _ ports.HookDispatcher = (*hooks.Dispatcher)(nil)

func TestTrigger_IsolatesFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Error(gomock.Any()).Times(2)

	d := hooks.NewDispatcher(logger)

	var calls []string
	record := func(name string, err error) hooks.Callback {
		return func(_ context.Context, _ domain.HookEvent, _ domain.HookPayload) error {
			calls = append(calls, name)
			return err
		}
	}
	require.NoError(t, d.Register("first", domain.HookPostCreateEnv, record("first", errors.New("boom"))))
	require.NoError(t, d.Register("panicky", domain.HookPostCreateEnv, func(context.Context, domain.HookEvent, domain.HookPayload) error {
		calls = append(calls, "panicky")
		panic("kaboom")
	}))
	require.NoError(t, d.Register("last", domain.HookPostCreateEnv, record("last", nil)))
	require.NoError(t, d.Register("other", domain.HookPreCreateEnv, record("other", nil)))

	d.Trigger(context.Background(), domain.HookPostCreateEnv, domain.HookPayload{"env": "shot01"})

	assert.Equal(t, []string{"first", "panicky", "last"}, calls)
}

func TestTrigger_PassesPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := hooks.NewDispatcher(mocks.NewMockLogger(ctrl))

	var got domain.HookPayload
	require.NoError(t, d.Register("p", domain.HookPreInstallPackage, func(_ context.Context, event domain.HookEvent, payload domain.HookPayload) error {
		assert.Equal(t, domain.HookPreInstallPackage, event)
		got = payload
		return nil
	}))

	d.Trigger(context.Background(), domain.HookPreInstallPackage, domain.HookPayload{"env": "shot01", "requirement": "maya"})
	assert.Equal(t, domain.HookPayload{"env": "shot01", "requirement": "maya"}, got)

	d.Trigger(context.Background(), domain.HookPostActivateEnv, nil)
}

func TestRegister_UnknownEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := hooks.NewDispatcher(mocks.NewMockLogger(ctrl))

	assert.Error(t, d.Register("p", domain.HookEvent("on_lunch"), nil))
}

func TestEnable_LogTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	now := func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }

	logger.EXPECT().Info("enabled plugin log_time")
	logger.EXPECT().Info("[log_time] Starting build of maya-2024.0.0 at Fri Mar  1 12:00:00 2024")
	logger.EXPECT().Info("[log_time] Finished build of maya-2024.0.0 at Fri Mar  1 12:00:00 2024")

	d := hooks.NewDispatcher(logger)
	require.NoError(t, d.Enable([]string{hooks.LogTimePlugin}, now))
	assert.Equal(t, 1, d.Count(domain.HookPreBuildPackage))
	assert.Equal(t, 1, d.Count(domain.HookPostBuildPackage))

	payload := domain.HookPayload{"package": "maya-2024.0.0"}
	d.Trigger(context.Background(), domain.HookPreBuildPackage, payload)
	d.Trigger(context.Background(), domain.HookPostBuildPackage, payload)
}

func TestEnable_UnknownPlugin(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := hooks.NewDispatcher(mocks.NewMockLogger(ctrl))

	err := d.Enable([]string{"telemetry_upload"}, time.Now)
	assert.ErrorIs(t, err, domain.ErrUnknownPlugin)
}
