package repository

import (
	"context"
	"errors"
	"path"
	"strings"

	"go.trai.ch/nexon/internal/core/domain"
	"go.trai.ch/nexon/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// maxParallelReads bounds concurrent document reads while listing packages.
const maxParallelReads = 8

// Catalog implements ports.PackageCatalog.
type Catalog struct {
	store   ports.DocumentStore
	logger  ports.Logger
	baseDir string
}

// NewCatalog creates a Catalog. baseDir is the directory package roots live under.
func NewCatalog(store ports.DocumentStore, logger ports.Logger, baseDir string) *Catalog {
	return &Catalog{store: store, logger: logger, baseDir: baseDir}
}

// List decodes every package document. Unreadable or inconsistent documents are skipped with a warning.
func (c *Catalog) List(ctx context.Context) ([]*domain.PackageSpec, error) {
	keys, err := c.store.List(domain.PackagesPrefix)
	if err != nil {
		return nil, err
	}

	var specKeys []string
	for _, key := range keys {
		if path.Base(key) == domain.PackageFile {
			specKeys = append(specKeys, key)
		}
	}

	specs := make([]*domain.PackageSpec, len(specKeys))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelReads)
	for i, key := range specKeys {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			spec, err := c.readKey(key)
			if err != nil {
				if errors.Is(err, domain.ErrInvalidDocument) || errors.Is(err, domain.ErrInvalidPackageSpec) {
					c.logger.Warn("skipping package " + key + ": " + err.Error())
					return nil
				}
				return err
			}
			specs[i] = spec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := specs[:0]
	for _, spec := range specs {
		if spec != nil {
			out = append(out, spec)
		}
	}
	return out, nil
}

func (c *Catalog) readKey(key string) (*domain.PackageSpec, error) {
	var dto PackageDTO
	if err := readDocument(c.store, key, &dto); err != nil {
		return nil, err
	}
	spec, err := toPackageSpec(&dto)
	if err != nil {
		return nil, err
	}
	// packages/<name>/<version>/package.yaml
	parts := strings.Split(key, "/")
	if len(parts) != 4 || parts[1] != spec.Name || parts[2] != spec.Version.String() {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidPackageSpec, "document identity does not match its location"), "key", key)
	}
	return spec, nil
}

// Get returns the package spec stored for name and version.
func (c *Catalog) Get(_ context.Context, name, version string) (*domain.PackageSpec, error) {
	spec, err := c.readKey(domain.PackageKey(name, version))
	if isNotFound(err) {
		return nil, zerr.With(zerr.Wrap(domain.ErrPackageNotFound, "no spec stored"), "ref", name+"-"+version)
	}
	return spec, err
}

// Save writes the package document.
func (c *Catalog) Save(_ context.Context, spec *domain.PackageSpec) error {
	return writeDocument(c.store, domain.PackageKey(spec.Name, spec.Version.String()), fromPackageSpec(spec))
}

// Exists reports whether a spec is stored for name and version.
func (c *Catalog) Exists(_ context.Context, name, version string) (bool, error) {
	return c.store.Exists(domain.PackageKey(name, version))
}

// Root returns the on-disk root of the package version.
func (c *Catalog) Root(name, version string) string {
	return domain.PackageRoot(c.baseDir, name, version)
}
