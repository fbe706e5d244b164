package app

import (
	"context"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/nexon/internal/core/domain"
	"go.trai.ch/nexon/internal/engine/envvars"
	"go.trai.ch/zerr"
)

// CreateEnvironment stores a new empty environment, overwriting any existing one.
func (a *App) CreateEnvironment(ctx context.Context, name, role string) (*domain.Environment, error) {
	unlock, err := a.lockEnvironment(name)
	if err != nil {
		return nil, err
	}
	defer unlock()

	a.hooks.Trigger(ctx, domain.HookPreCreateEnv, domain.HookPayload{"env": name, "role": role})

	exists, err := a.envs.Exists(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		a.logger.Warn("environment " + name + " already exists, overwriting")
	}

	env := domain.NewEnvironment(name, role, a.now())
	if err := a.envs.Save(ctx, env); err != nil {
		return nil, err
	}

	a.hooks.Trigger(ctx, domain.HookPostCreateEnv, domain.HookPayload{"env": name, "role": env.Role})
	a.logger.Info("created environment " + name)
	return env, nil
}

// InstallPackage resolves requirement transitively and adds the missing packages to the environment.
// With dryRun the environment is left untouched. The returned refs are the ones added, or that would be.
func (a *App) InstallPackage(ctx context.Context, envName, requirement string, dryRun bool) ([]domain.ResolvedRef, error) {
	unlock, err := a.lockEnvironment(envName)
	if err != nil {
		return nil, err
	}
	defer unlock()

	env, err := a.envs.Load(ctx, envName)
	if err != nil {
		return nil, err
	}

	resolved, err := a.resolver.ResolveAll(ctx, []string{requirement})
	if err != nil {
		return nil, zerr.With(err, "environment", envName)
	}

	added := env.Missing(resolved)
	if dryRun {
		return added, nil
	}

	payload := domain.HookPayload{
		"env":         envName,
		"requirement": requirement,
		"packages":    domain.RefStrings(added),
	}
	a.hooks.Trigger(ctx, domain.HookPreInstallPackage, payload)

	if len(added) > 0 {
		env.Add(added...)
		if err := a.envs.Save(ctx, env); err != nil {
			return nil, err
		}
		a.logger.Info("installed into " + envName + ": " + strings.Join(domain.RefStrings(added), ", "))
	}

	a.hooks.Trigger(ctx, domain.HookPostInstallPackage, payload)
	return added, nil
}

// UninstallPackage removes exactly ref. Dependencies are kept. The result is empty when ref was not installed.
func (a *App) UninstallPackage(ctx context.Context, envName string, ref domain.ResolvedRef) ([]domain.ResolvedRef, error) {
	unlock, err := a.lockEnvironment(envName)
	if err != nil {
		return nil, err
	}
	defer unlock()

	env, err := a.envs.Load(ctx, envName)
	if err != nil {
		return nil, err
	}

	if !env.Remove(ref) {
		a.logger.Warn("package " + ref.String() + " is not installed in " + envName)
		return []domain.ResolvedRef{}, nil
	}
	if err := a.envs.Save(ctx, env); err != nil {
		return nil, err
	}

	a.logger.Info("uninstalled " + ref.String() + " from " + envName)
	return []domain.ResolvedRef{ref}, nil
}

// LockEnvironment writes a frozen copy of the environment under its lockfile identity.
func (a *App) LockEnvironment(ctx context.Context, envName string) (*domain.Environment, error) {
	unlock, err := a.lockEnvironment(envName)
	if err != nil {
		return nil, err
	}
	defer unlock()

	env, err := a.envs.Load(ctx, envName)
	if err != nil {
		return nil, err
	}
	if err := a.envs.SaveLockfile(ctx, env); err != nil {
		return nil, err
	}
	a.logger.Info("locked environment " + envName)
	return env.Clone(), nil
}

// LoadLockfile reads an environment's lockfile.
func (a *App) LoadLockfile(ctx context.Context, envName string) (*domain.Environment, error) {
	return a.envs.LoadLockfile(ctx, envName)
}

// DiffEnvironments compares the package sets and roles of two environments.
func (a *App) DiffEnvironments(ctx context.Context, from, to string) (domain.EnvironmentDiff, error) {
	envA, err := a.envs.Load(ctx, from)
	if err != nil {
		return domain.EnvironmentDiff{}, err
	}
	envB, err := a.envs.Load(ctx, to)
	if err != nil {
		return domain.EnvironmentDiff{}, err
	}
	return domain.DiffEnvironments(envA, envB), nil
}

// ExportEnvVars composes the variables of every installed package, then the environment's
// own variables, and binds NEXON_ENV to the environment name.
func (a *App) ExportEnvVars(ctx context.Context, envName string) (map[string]string, error) {
	env, err := a.envs.Load(ctx, envName)
	if err != nil {
		return nil, err
	}

	specs := make([]*domain.PackageSpec, 0, len(env.Packages))
	for _, ref := range env.Packages {
		spec, err := a.registry.Spec(ctx, ref)
		if err != nil {
			return nil, zerr.With(err, "environment", envName)
		}
		specs = append(specs, spec)
	}

	vars := a.envvars.Compose(specs)
	maps.Copy(vars, env.Env)
	return envvars.WithActiveEnv(vars, envName), nil
}

// Activate applies the exported variables to the process environment.
// The caller must call Restore on the result to put the previous values back.
func (a *App) Activate(ctx context.Context, envName string) (*envvars.Activation, error) {
	vars, err := a.ExportEnvVars(ctx, envName)
	if err != nil {
		return nil, err
	}

	a.hooks.Trigger(ctx, domain.HookPreActivateEnv, domain.HookPayload{"env": envName})
	activation, err := a.envvars.Activate(vars)
	if err != nil {
		return nil, err
	}
	a.hooks.Trigger(ctx, domain.HookPostActivateEnv, domain.HookPayload{"env": envName})
	return activation, nil
}

// ListEnvironments returns a summary of every environment sorted by name.
func (a *App) ListEnvironments(ctx context.Context) ([]domain.EnvironmentSummary, error) {
	envs, err := a.envs.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.EnvironmentSummary, 0, len(envs))
	for _, env := range envs {
		out = append(out, env.Summary())
	}
	slices.SortFunc(out, func(x, y domain.EnvironmentSummary) int {
		return strings.Compare(x.Name, y.Name)
	})
	return out, nil
}

// GetEnvironment returns the full environment document.
func (a *App) GetEnvironment(ctx context.Context, envName string) (*domain.Environment, error) {
	return a.envs.Load(ctx, envName)
}
