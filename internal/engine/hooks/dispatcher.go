// Package hooks dispatches lifecycle events to registered plugin callbacks.
package hooks

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"go.trai.ch/nexon/internal/core/domain"
	"go.trai.ch/nexon/internal/core/ports"
	"go.trai.ch/zerr"
)

// Callback handles one lifecycle event.
type Callback func(ctx context.Context, event domain.HookEvent, payload domain.HookPayload) error

type registration struct {
	plugin string
	fn     Callback
}

// Dispatcher implements ports.HookDispatcher.
type Dispatcher struct {
	logger ports.Logger

	mu    sync.RWMutex
	hooks map[domain.HookEvent][]registration
}

// NewDispatcher creates a Dispatcher with no callbacks.
func NewDispatcher(logger ports.Logger) *Dispatcher {
	return &Dispatcher{
		logger: logger,
		hooks:  make(map[domain.HookEvent][]registration),
	}
}

// Register adds fn for event on behalf of plugin. Callbacks run in registration order.
func (d *Dispatcher) Register(plugin string, event domain.HookEvent, fn Callback) error {
	if !slices.Contains(domain.HookEvents, event) {
		return zerr.With(zerr.With(zerr.New("unknown hook event"), "event", string(event)), "plugin", plugin)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.hooks[event] = append(d.hooks[event], registration{plugin: plugin, fn: fn})
	return nil
}

// Count returns the number of callbacks registered for event.
func (d *Dispatcher) Count(event domain.HookEvent) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.hooks[event])
}

// Trigger runs every callback for event. Errors and panics are logged and do not stop the rest.
func (d *Dispatcher) Trigger(ctx context.Context, event domain.HookEvent, payload domain.HookPayload) {
	d.mu.RLock()
	regs := slices.Clone(d.hooks[event])
	d.mu.RUnlock()

	for _, reg := range regs {
		if err := d.call(ctx, reg, event, payload); err != nil {
			d.logger.Error(zerr.With(zerr.With(zerr.Wrap(err, "plugin hook failed"), "plugin", reg.plugin), "event", string(event)))
		}
	}
}

func (d *Dispatcher) call(ctx context.Context, reg registration, event domain.HookEvent, payload domain.HookPayload) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = zerr.New(fmt.Sprintf("panic: %v", r))
		}
	}()
	return reg.fn(ctx, event, payload)
}
