package envvars

import (
	"maps"
	"slices"
	"sync"

	"go.trai.ch/nexon/internal/core/domain"
	"go.trai.ch/zerr"
)

// Activation holds the variables replaced by Activate so they can be put back.
type Activation struct {
	environ Environ
	prior   map[string]*string

	once sync.Once
	err  error
}

// Activate sets vars on the composer's environment and remembers what they replaced.
// If setting a variable fails, the ones already set are restored before returning.
func (c *Composer) Activate(vars map[string]string) (*Activation, error) {
	a := &Activation{environ: c.environ, prior: make(map[string]*string, len(vars))}
	for _, key := range slices.Sorted(maps.Keys(vars)) {
		if prev, ok := c.environ.LookupEnv(key); ok {
			a.prior[key] = &prev
		} else {
			a.prior[key] = nil
		}
		if err := c.environ.Setenv(key, vars[key]); err != nil {
			_ = a.Restore()
			return nil, zerr.With(zerr.Wrap(err, "failed to set environment variable"), "key", key)
		}
	}
	return a, nil
}

// Restore puts back every prior value and unsets variables that did not exist before.
// Only the first call has an effect.
func (a *Activation) Restore() error {
	a.once.Do(func() {
		for _, key := range slices.Sorted(maps.Keys(a.prior)) {
			var err error
			if prev := a.prior[key]; prev != nil {
				err = a.environ.Setenv(key, *prev)
			} else {
				err = a.environ.Unsetenv(key)
			}
			if err != nil && a.err == nil {
				a.err = zerr.With(zerr.Wrap(err, "failed to restore environment variable"), "key", key)
			}
		}
	})
	return a.err
}

// Keys returns the variables this activation manages.
func (a *Activation) Keys() []string {
	return slices.Sorted(maps.Keys(a.prior))
}

// WithActiveEnv binds the active environment name next to vars.
func WithActiveEnv(vars map[string]string, env string) map[string]string {
	out := maps.Clone(vars)
	if out == nil {
		out = make(map[string]string, 1)
	}
	out[domain.ActiveEnvVar] = env
	return out
}
