package ports

import (
	"context"

	"go.trai.ch/nexon/internal/core/domain"
)

// HookDispatcher fires plugin callbacks registered for lifecycle events.
//
//go:generate go run go.uber.org/mock/mockgen -source=hooks.go -destination=mocks/mock_hooks.go -package=mocks
type HookDispatcher interface {
	// Trigger runs every callback registered for event. A failing callback is logged
	// and does not stop the others.
	Trigger(ctx context.Context, event domain.HookEvent, payload domain.HookPayload)
}
