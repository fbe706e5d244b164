package app

import (
	"context"

	"go.trai.ch/nexon/internal/core/domain"
	"go.trai.ch/nexon/internal/engine/builder"
	"go.trai.ch/zerr"
)

// PackageVersions lists the available versions of one package, highest first.
type PackageVersions struct {
	Name     string
	Versions []domain.Version
}

// CreatePackage scaffolds a package spec. An empty version defaults to 0.1.0.
func (a *App) CreatePackage(ctx context.Context, name, version string) (*domain.PackageSpec, error) {
	if version == "" {
		version = domain.DefaultPackageVersion
	}
	req, err := domain.ParseRequirement(name)
	if err != nil || req.Name != name || len(req.Constraint) > 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidPackageSpec, "invalid package name"), "package", name)
	}
	v, err := domain.ParseVersion(version)
	if err != nil {
		return nil, err
	}

	exists, err := a.catalog.Exists(ctx, name, v.String())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, zerr.With(zerr.Wrap(domain.ErrPackageAlreadyExists, "package already exists"), "ref", domain.NewRef(name, v).String())
	}

	spec := domain.NewPackageScaffold(name, v)
	if err := a.catalog.Save(ctx, spec); err != nil {
		return nil, err
	}
	a.logger.Info("created package " + spec.Ref().String() + " at " + a.catalog.Root(name, v.String()))
	return spec, nil
}

// ListPackages returns every indexed package with its versions.
func (a *App) ListPackages(ctx context.Context) ([]PackageVersions, error) {
	idx, err := a.registry.Load(ctx)
	if err != nil {
		return nil, err
	}
	names := idx.Names()
	out := make([]PackageVersions, 0, len(names))
	for _, name := range names {
		versions, _ := idx.Versions(name)
		out = append(out, PackageVersions{Name: name, Versions: versions})
	}
	return out, nil
}

// Resolve returns the highest version satisfying requirement.
func (a *App) Resolve(ctx context.Context, requirement string) (domain.ResolvedRef, error) {
	return a.resolver.Resolve(ctx, requirement)
}

// ResolveAll returns the transitive closure of requirements.
func (a *App) ResolveAll(ctx context.Context, requirements []string) ([]domain.ResolvedRef, error) {
	return a.resolver.ResolveAll(ctx, requirements)
}

// Graph returns the dependency graph of requirements.
func (a *App) Graph(ctx context.Context, requirements []string) (*domain.DependencyGraph, error) {
	return a.resolver.BuildGraph(ctx, requirements)
}

// Build builds the package selected by requirement. With withDeps its dependencies are
// built first, up to parallelism at a time.
func (a *App) Build(ctx context.Context, requirement string, withDeps bool, parallelism int) (map[domain.ResolvedRef]builder.Status, error) {
	if !withDeps {
		ref, err := a.resolver.Resolve(ctx, requirement)
		if err != nil {
			return nil, err
		}
		status, err := a.builder.Build(ctx, ref)
		return map[domain.ResolvedRef]builder.Status{ref: status}, err
	}

	graph, err := a.resolver.BuildGraph(ctx, []string{requirement})
	if err != nil {
		return nil, err
	}
	return a.builder.BuildGraph(ctx, graph, parallelism)
}
