// Package resolver turns requirement strings into resolved package references.
package resolver

import (
	"context"
	"slices"

	"go.trai.ch/nexon/internal/core/domain"
	"go.trai.ch/nexon/internal/engine/registry"
	"go.trai.ch/zerr"
)

// Option configures a Resolver.
type Option func(*Resolver)

// WithStrict makes the resolver fail when two branches pick different versions of one package.
func WithStrict(strict bool) Option {
	return func(r *Resolver) {
		r.strict = strict
	}
}

// Resolver picks the highest version satisfying each requirement.
type Resolver struct {
	registry *registry.Registry
	strict   bool
}

// New creates a Resolver backed by reg.
func New(reg *registry.Registry, opts ...Option) *Resolver {
	r := &Resolver{registry: reg}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the highest version satisfying requirement.
func (r *Resolver) Resolve(ctx context.Context, requirement string) (domain.ResolvedRef, error) {
	idx, err := r.registry.Load(ctx)
	if err != nil {
		return "", err
	}
	spec, err := resolveIn(idx, requirement)
	if err != nil {
		return "", err
	}
	return spec.Ref(), nil
}

// ResolveAll returns the transitive closure of requirements in discovery order.
// Each reference appears once however many packages depend on it.
func (r *Resolver) ResolveAll(ctx context.Context, requirements []string) ([]domain.ResolvedRef, error) {
	graph, err := r.BuildGraph(ctx, requirements)
	if err != nil {
		return nil, err
	}
	return graph.Nodes(), nil
}

// BuildGraph walks requirements breadth first and records the direct dependencies of every node.
// Any failure aborts the walk and no graph is returned.
func (r *Resolver) BuildGraph(ctx context.Context, requirements []string) (*domain.DependencyGraph, error) {
	idx, err := r.registry.Load(ctx)
	if err != nil {
		return nil, err
	}

	w := &walk{
		graph:  domain.NewDependencyGraph(),
		seen:   make(map[domain.ResolvedRef]bool),
		byName: make(map[string]domain.ResolvedRef),
		strict: r.strict,
	}

	for _, req := range requirements {
		spec, err := resolveIn(idx, req)
		if err != nil {
			return nil, err
		}
		if err := w.enqueue(spec); err != nil {
			return nil, err
		}
		w.graph.AddRoot(spec.Ref())
	}

	for len(w.queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		current := w.queue[0]
		w.queue = w.queue[1:]

		children := make([]domain.ResolvedRef, 0, len(current.Requires))
		for _, req := range current.Requires {
			dep, err := resolveIn(idx, req)
			if err != nil {
				return nil, zerr.With(err, "required_by", current.Ref().String())
			}
			if err := w.enqueue(dep); err != nil {
				return nil, err
			}
			if ref := dep.Ref(); !slices.Contains(children, ref) {
				children = append(children, ref)
			}
		}
		w.graph.SetChildren(current.Ref(), children)
	}

	return w.graph, nil
}

type walk struct {
	graph  *domain.DependencyGraph
	queue  []*domain.PackageSpec
	seen   map[domain.ResolvedRef]bool
	byName map[string]domain.ResolvedRef
	strict bool
}

func (w *walk) enqueue(spec *domain.PackageSpec) error {
	ref := spec.Ref()
	if w.seen[ref] {
		return nil
	}
	if prev, ok := w.byName[spec.Name]; ok && w.strict {
		err := zerr.Wrap(domain.ErrVersionConflict, "package resolved to more than one version")
		err = zerr.With(err, "package", spec.Name)
		err = zerr.With(err, "existing", prev.String())
		return zerr.With(err, "conflicting", ref.String())
	}
	w.seen[ref] = true
	if _, ok := w.byName[spec.Name]; !ok {
		w.byName[spec.Name] = ref
	}
	w.queue = append(w.queue, spec)
	return nil
}

func resolveIn(idx *registry.Index, requirement string) (*domain.PackageSpec, error) {
	req, err := domain.ParseRequirement(requirement)
	if err != nil {
		return nil, err
	}

	specs := idx.Specs(req.Name)
	if len(specs) == 0 {
		err := zerr.With(zerr.Wrap(domain.ErrPackageNotFound, "unknown package"), "package", req.Name)
		return nil, zerr.With(err, "requirement", requirement)
	}

	for _, spec := range specs {
		if req.Matches(spec.Version) {
			return spec, nil
		}
	}
	err = zerr.With(zerr.Wrap(domain.ErrNoMatchingVersion, "no version satisfies requirement"), "package", req.Name)
	return nil, zerr.With(err, "requirement", requirement)
}
