package repository

import (
	"context"
	"path"
	"strings"

	"go.trai.ch/nexon/internal/core/domain"
	"go.trai.ch/nexon/internal/core/ports"
	"go.trai.ch/zerr"
)

// Recipes implements ports.RecipeStore.
type Recipes struct {
	store  ports.DocumentStore
	logger ports.Logger
}

// NewRecipes creates a Recipes repository.
func NewRecipes(store ports.DocumentStore, logger ports.Logger) *Recipes {
	return &Recipes{store: store, logger: logger}
}

// Load returns the named recipe.
func (r *Recipes) Load(_ context.Context, name string) (*domain.Recipe, error) {
	var dto RecipeDTO
	if err := readDocument(r.store, domain.RecipeKey(name), &dto); err != nil {
		if isNotFound(err) {
			return nil, zerr.With(zerr.Wrap(domain.ErrRecipeNotFound, "no recipe document"), "recipe", name)
		}
		return nil, err
	}
	return toRecipe(&dto), nil
}

// Save overwrites the recipe document.
func (r *Recipes) Save(_ context.Context, recipe *domain.Recipe) error {
	return writeDocument(r.store, domain.RecipeKey(recipe.Name), fromRecipe(recipe))
}

// List returns every recipe sorted by name.
func (r *Recipes) List(ctx context.Context) ([]*domain.Recipe, error) {
	keys, err := r.store.List(domain.RecipesPrefix)
	if err != nil {
		return nil, err
	}

	recipes := make([]*domain.Recipe, 0, len(keys))
	for _, key := range keys {
		if path.Dir(key) != domain.RecipesPrefix || !strings.HasSuffix(key, domain.DocumentExt) {
			continue
		}
		name := strings.TrimSuffix(path.Base(key), domain.DocumentExt)
		recipe, err := r.Load(ctx, name)
		if err != nil {
			r.logger.Warn("skipping recipe " + name + ": " + err.Error())
			continue
		}
		recipes = append(recipes, recipe)
	}
	return recipes, nil
}
