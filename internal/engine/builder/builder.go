// Package builder runs package build commands, dependencies first.
package builder

import (
	"context"
	"maps"
	"os"

	"go.trai.ch/nexon/internal/core/domain"
	"go.trai.ch/nexon/internal/core/ports"
	"go.trai.ch/nexon/internal/engine/envvars"
	"go.trai.ch/zerr"
)

// Status is the outcome of one package build.
type Status string

const (
	// StatusPending indicates the build is waiting for its dependencies.
	StatusPending Status = "Pending"
	// StatusRunning indicates the build commands are executing.
	StatusRunning Status = "Running"
	// StatusBuilt indicates every build command succeeded.
	StatusBuilt Status = "Built"
	// StatusFailed indicates a build command failed.
	StatusFailed Status = "Failed"
	// StatusSkipped indicates the package declares no build commands.
	StatusSkipped Status = "Skipped"
	// StatusBlocked indicates a dependency failed so the build never started.
	StatusBlocked Status = "Blocked"
)

// Specs looks up package specs and their roots.
type Specs interface {
	Spec(ctx context.Context, ref domain.ResolvedRef) (*domain.PackageSpec, error)
	Root(spec *domain.PackageSpec) string
}

// Builder runs the build block of package specs.
type Builder struct {
	specs     Specs
	composer  *envvars.Composer
	executor  ports.BuildExecutor
	telemetry ports.Telemetry
	hooks     ports.HookDispatcher
	logger    ports.Logger
}

// New creates a Builder.
func New(
	specs Specs,
	composer *envvars.Composer,
	executor ports.BuildExecutor,
	telemetry ports.Telemetry,
	hooks ports.HookDispatcher,
	logger ports.Logger,
) *Builder {
	return &Builder{
		specs:     specs,
		composer:  composer,
		executor:  executor,
		telemetry: telemetry,
		hooks:     hooks,
		logger:    logger,
	}
}

// Build runs the build commands of a single package.
func (b *Builder) Build(ctx context.Context, ref domain.ResolvedRef) (Status, error) {
	spec, err := b.specs.Spec(ctx, ref)
	if err != nil {
		return StatusFailed, err
	}
	return b.build(ctx, spec)
}

// Commands returns the build commands of spec with {root} substituted, and the build environment.
func (b *Builder) Commands(spec *domain.PackageSpec) ([]domain.BuildCommand, []string) {
	if spec.Build == nil {
		return nil, nil
	}
	root := b.specs.Root(spec)

	buildSpec := &domain.PackageSpec{Name: spec.Name, Version: spec.Version, Env: spec.Build.Env}
	env := envvars.Pairs(b.composer.Compose([]*domain.PackageSpec{buildSpec}))

	// Commands run from the package root when it exists on disk, otherwise from the working directory.
	dir := root
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		dir = ""
	}

	cmds := make([]domain.BuildCommand, 0, len(spec.Build.Commands))
	for _, line := range spec.Build.Commands {
		cmds = append(cmds, domain.BuildCommand{
			Package: spec.Ref(),
			Line:    envvars.SubstituteRoot(line, root),
			Dir:     dir,
		})
	}
	return cmds, env
}

func (b *Builder) build(ctx context.Context, spec *domain.PackageSpec, opts ...ports.VertexOption) (Status, error) {
	ref := spec.Ref()
	cmds, env := b.Commands(spec)
	if len(cmds) == 0 {
		b.logger.Warn("no build commands defined for " + ref.String() + ", skipping build")
		return StatusSkipped, nil
	}

	payload := domain.HookPayload{
		"package": ref.String(),
		"name":    spec.Name,
		"version": spec.Version.String(),
	}
	b.hooks.Trigger(ctx, domain.HookPreBuildPackage, payload)

	vctx, vertex := b.telemetry.Record(ctx, "build "+ref.String(), opts...)
	b.logger.Info("building package " + ref.String())

	var runErr error
	for _, cmd := range cmds {
		vertex.Log(domain.LogLevelInfo, "-> "+cmd.Line)
		if err := b.executor.Execute(vctx, cmd, env, vertex.Stdout(), vertex.Stderr()); err != nil {
			runErr = zerr.With(zerr.With(zerr.Wrap(domain.ErrBuildFailed, err.Error()), "package", ref.String()), "command", cmd.Line)
			break
		}
	}
	vertex.Complete(runErr)

	post := maps.Clone(payload)
	post["success"] = runErr == nil
	b.hooks.Trigger(ctx, domain.HookPostBuildPackage, post)

	if runErr != nil {
		return StatusFailed, runErr
	}
	return StatusBuilt, nil
}
