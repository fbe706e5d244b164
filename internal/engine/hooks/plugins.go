package hooks

import (
	"context"
	"fmt"
	"time"

	"go.trai.ch/nexon/internal/core/domain"
	"go.trai.ch/nexon/internal/core/ports"
	"go.trai.ch/zerr"
)

// LogTimePlugin is the name of the built-in plugin that logs build start and finish times.
const LogTimePlugin = "log_time"

// Plugin registers its callbacks on a dispatcher.
type Plugin func(d *Dispatcher, logger ports.Logger, now func() time.Time) error

var builtins = map[string]Plugin{
	LogTimePlugin: registerLogTime,
}

// Enable registers the named built-in plugins in order.
func (d *Dispatcher) Enable(names []string, now func() time.Time) error {
	for _, name := range names {
		plugin, ok := builtins[name]
		if !ok {
			return zerr.With(zerr.Wrap(domain.ErrUnknownPlugin, "plugin is not built in"), "plugin", name)
		}
		if err := plugin(d, d.logger, now); err != nil {
			return err
		}
		d.logger.Info("enabled plugin " + name)
	}
	return nil
}

func registerLogTime(d *Dispatcher, logger ports.Logger, now func() time.Time) error {
	logAt := func(verb string) Callback {
		return func(_ context.Context, _ domain.HookEvent, payload domain.HookPayload) error {
			logger.Info(fmt.Sprintf("[%s] %s build of %v at %s", LogTimePlugin, verb, payload["package"], now().Format(time.ANSIC)))
			return nil
		}
	}
	if err := d.Register(LogTimePlugin, domain.HookPreBuildPackage, logAt("Starting")); err != nil {
		return err
	}
	return d.Register(LogTimePlugin, domain.HookPostBuildPackage, logAt("Finished"))
}
