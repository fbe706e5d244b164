package repository

import (
	"context"
	"path"
	"strings"

	"go.trai.ch/nexon/internal/core/domain"
	"go.trai.ch/nexon/internal/core/ports"
	"go.trai.ch/zerr"
)

// Environments implements ports.EnvironmentStore.
type Environments struct {
	store  ports.DocumentStore
	logger ports.Logger
}

// NewEnvironments creates an Environments repository.
func NewEnvironments(store ports.DocumentStore, logger ports.Logger) *Environments {
	return &Environments{store: store, logger: logger}
}

// Load returns the named environment. The document must carry the requested name.
func (r *Environments) Load(_ context.Context, name string) (*domain.Environment, error) {
	if err := domain.ValidateEnvironmentName(name); err != nil {
		return nil, err
	}
	key := domain.EnvironmentKey(name)
	var dto EnvironmentDTO
	if err := readDocument(r.store, key, &dto); err != nil {
		if isNotFound(err) {
			return nil, zerr.With(zerr.Wrap(domain.ErrEnvironmentNotFound, "no environment document"), "environment", name)
		}
		return nil, err
	}
	if err := checkName(&dto, name, key); err != nil {
		return nil, err
	}
	return toEnvironment(&dto), nil
}

// Save writes the environment document.
func (r *Environments) Save(_ context.Context, env *domain.Environment) error {
	if err := domain.ValidateEnvironmentName(env.Name); err != nil {
		return err
	}
	return writeDocument(r.store, domain.EnvironmentKey(env.Name), fromEnvironment(env))
}

// Exists reports whether the environment is stored.
func (r *Environments) Exists(_ context.Context, name string) (bool, error) {
	if err := domain.ValidateEnvironmentName(name); err != nil {
		return false, err
	}
	return r.store.Exists(domain.EnvironmentKey(name))
}

// List returns every environment sorted by name. Lockfiles and undecodable documents are skipped.
func (r *Environments) List(ctx context.Context) ([]*domain.Environment, error) {
	keys, err := r.store.List(domain.EnvironmentsPrefix)
	if err != nil {
		return nil, err
	}

	envs := make([]*domain.Environment, 0, len(keys))
	for _, key := range keys {
		base := path.Base(key)
		if path.Dir(key) != domain.EnvironmentsPrefix || !strings.HasSuffix(base, domain.DocumentExt) ||
			strings.HasSuffix(base, domain.LockSuffix+domain.DocumentExt) {
			continue
		}
		name := strings.TrimSuffix(base, domain.DocumentExt)
		env, err := r.Load(ctx, name)
		if err != nil {
			r.logger.Warn("skipping environment " + name + ": " + err.Error())
			continue
		}
		envs = append(envs, env)
	}
	return envs, nil
}

// SaveLockfile writes env under its lockfile key.
func (r *Environments) SaveLockfile(_ context.Context, env *domain.Environment) error {
	if err := domain.ValidateEnvironmentName(env.Name); err != nil {
		return err
	}
	return writeDocument(r.store, domain.LockfileKey(env.Name), fromEnvironment(env))
}

// LoadLockfile returns the lockfile of the named environment.
func (r *Environments) LoadLockfile(_ context.Context, name string) (*domain.Environment, error) {
	if err := domain.ValidateEnvironmentName(name); err != nil {
		return nil, err
	}
	key := domain.LockfileKey(name)
	var dto EnvironmentDTO
	if err := readDocument(r.store, key, &dto); err != nil {
		if isNotFound(err) {
			return nil, zerr.With(zerr.Wrap(domain.ErrLockfileNotFound, "environment was never locked"), "environment", name)
		}
		return nil, err
	}
	if err := checkName(&dto, name, key); err != nil {
		return nil, err
	}
	return toEnvironment(&dto), nil
}

func checkName(dto *EnvironmentDTO, name, key string) error {
	if dto.Name == name {
		return nil
	}
	return zerr.With(zerr.With(zerr.With(zerr.Wrap(domain.ErrInvalidDocument, "document name does not match its key"),
		"key", key), "environment", name), "document_name", dto.Name)
}
