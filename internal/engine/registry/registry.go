// Package registry indexes the stored package specs by name and version.
package registry

import (
	"context"
	"slices"
	"sync"

	"go.trai.ch/nexon/internal/core/domain"
	"go.trai.ch/nexon/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

const loadKey = "load"

// Index maps package names to their specs, one per version.
type Index struct {
	byName map[string][]*domain.PackageSpec
}

// Names returns the indexed package names in sorted order.
func (i *Index) Names() []string {
	names := make([]string, 0, len(i.byName))
	for name := range i.byName {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Versions returns the versions of name, highest first.
func (i *Index) Versions(name string) ([]domain.Version, bool) {
	specs, ok := i.byName[name]
	if !ok {
		return nil, false
	}
	versions := make([]domain.Version, len(specs))
	for j, spec := range specs {
		versions[j] = spec.Version
	}
	return versions, true
}

// Specs returns the specs of name, highest version first.
func (i *Index) Specs(name string) []*domain.PackageSpec {
	return i.byName[name]
}

// Spec returns the package spec for name at the given version text.
func (i *Index) Spec(name, version string) (*domain.PackageSpec, bool) {
	for _, spec := range i.byName[name] {
		if spec.Version.String() == version {
			return spec, true
		}
	}
	return nil, false
}

// equivalent returns the indexed spec of the same name whose version has equal precedence.
func (i *Index) equivalent(spec *domain.PackageSpec) (*domain.PackageSpec, bool) {
	for _, other := range i.byName[spec.Name] {
		if other.Version.Compare(spec.Version) == 0 {
			return other, true
		}
	}
	return nil, false
}

// Len returns the number of indexed specs.
func (i *Index) Len() int {
	n := 0
	for _, specs := range i.byName {
		n += len(specs)
	}
	return n
}

// Registry loads the package index once and serves it for its lifetime.
// There is no invalidation; construct a new Registry to observe new specs.
type Registry struct {
	catalog ports.PackageCatalog
	logger  ports.Logger

	group singleflight.Group
	mu    sync.RWMutex
	index *Index
}

// New creates a Registry over catalog.
func New(catalog ports.PackageCatalog, logger ports.Logger) *Registry {
	return &Registry{catalog: catalog, logger: logger}
}

// Load returns the cached index, building it on first use.
// Concurrent first callers share a single catalog read. A failed load is not cached.
func (r *Registry) Load(ctx context.Context) (*Index, error) {
	r.mu.RLock()
	idx := r.index
	r.mu.RUnlock()
	if idx != nil {
		return idx, nil
	}

	// The shared load outlives a cancelled first caller.
	loadCtx := context.WithoutCancel(ctx)
	v, err, _ := r.group.Do(loadKey, func() (any, error) {
		r.mu.RLock()
		cached := r.index
		r.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}

		specs, err := r.catalog.List(loadCtx)
		if err != nil {
			return nil, err
		}
		built := r.build(specs)

		r.mu.Lock()
		r.index = built
		r.mu.Unlock()
		return built, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Index), nil
}

func (r *Registry) build(specs []*domain.PackageSpec) *Index {
	idx := &Index{byName: make(map[string][]*domain.PackageSpec)}
	for _, spec := range specs {
		if spec.Version.IsZero() {
			r.logger.Warn("skipping package " + spec.Name + ": missing version")
			continue
		}
		if kept, dup := idx.equivalent(spec); dup {
			r.logger.Warn("skipping duplicate package " + spec.Ref().String() + ", already indexed as " + kept.Ref().String())
			continue
		}
		idx.byName[spec.Name] = append(idx.byName[spec.Name], spec)
	}
	for _, list := range idx.byName {
		// Equal precedence was rejected above, so precedence alone is a total order.
		slices.SortFunc(list, func(a, b *domain.PackageSpec) int {
			return b.Version.Compare(a.Version)
		})
	}
	return idx
}

// ListVersions returns the versions of name, highest first.
func (r *Registry) ListVersions(ctx context.Context, name string) ([]domain.Version, error) {
	idx, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	versions, ok := idx.Versions(name)
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrPackageNotFound, "unknown package"), "package", name)
	}
	return versions, nil
}

// Spec returns the package spec identified by ref.
func (r *Registry) Spec(ctx context.Context, ref domain.ResolvedRef) (*domain.PackageSpec, error) {
	name, version, err := domain.ParseRef(ref.String())
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrPackageNotFound, "unknown package"), "ref", ref.String())
	}
	idx, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	spec, ok := idx.Spec(name, version.String())
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrPackageNotFound, "unknown package"), "ref", ref.String())
	}
	return spec, nil
}

// Root returns the on-disk root directory of the package version.
func (r *Registry) Root(spec *domain.PackageSpec) string {
	return r.catalog.Root(spec.Name, spec.Version.String())
}
