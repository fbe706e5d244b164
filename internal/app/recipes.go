package app

import (
	"context"
	"maps"
	"strings"
	"time"

	"go.trai.ch/nexon/internal/core/domain"
	"go.trai.ch/zerr"
)

// CreateRecipe stores a recipe deriving from base, overwriting any existing one.
func (a *App) CreateRecipe(ctx context.Context, name, base string, overrides []domain.ResolvedRef, env map[string]string) (*domain.Recipe, error) {
	if err := domain.ValidateEnvironmentName(name); err != nil {
		return nil, err
	}
	for _, ref := range overrides {
		if _, _, err := domain.ParseRef(ref.String()); err != nil {
			return nil, err
		}
	}

	recipe := &domain.Recipe{
		Name:      name,
		Base:      base,
		Overrides: overrides,
		Env:       env,
		CreatedAt: a.now().UTC().Truncate(time.Second),
	}
	if err := a.recipes.Save(ctx, recipe); err != nil {
		return nil, err
	}
	a.logger.Info("saved recipe " + name)
	return recipe, nil
}

// ListRecipes returns every recipe sorted by name.
func (a *App) ListRecipes(ctx context.Context) ([]*domain.Recipe, error) {
	return a.recipes.List(ctx)
}

// ApplyRecipe copies the recipe's base environment into target, adds the override
// packages and merges the recipe variables. An empty target updates the base itself.
func (a *App) ApplyRecipe(ctx context.Context, name, target string) (*domain.Environment, error) {
	recipe, err := a.recipes.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	if recipe.Base == "" {
		return nil, zerr.With(zerr.Wrap(domain.ErrEnvironmentNotFound, "recipe has no base environment"), "recipe", name)
	}
	if target == "" {
		target = recipe.Base
	}
	unlock, err := a.lockEnvironment(target)
	if err != nil {
		return nil, err
	}
	defer unlock()

	base, err := a.envs.Load(ctx, recipe.Base)
	if err != nil {
		return nil, zerr.With(err, "recipe", name)
	}

	env := base.Clone()
	if target != recipe.Base {
		env.Name = target
		env.CreatedAt = a.now().UTC().Truncate(time.Second)
	}
	added := env.Add(recipe.Overrides...)
	if len(recipe.Env) > 0 {
		if env.Env == nil {
			env.Env = make(map[string]string, len(recipe.Env))
		}
		maps.Copy(env.Env, recipe.Env)
	}

	if err := a.envs.Save(ctx, env); err != nil {
		return nil, err
	}
	a.logger.Info("applied recipe " + name + " to " + target)
	if len(added) > 0 {
		a.logger.Info("added packages: " + strings.Join(domain.RefStrings(added), ", "))
	}
	return env, nil
}
