package app

import (
	"context"

	"go.trai.ch/nexon/internal/core/domain"
	"go.trai.ch/nexon/internal/engine/layers"
)

// CreateLayer overwrites the layer (level, name) with fragment.
func (a *App) CreateLayer(ctx context.Context, level, name string, fragment domain.Fragment) error {
	lvl, err := a.layers.CreateLayer(ctx, level, name, fragment)
	if err != nil {
		return err
	}
	if lvl == domain.LevelGlobal {
		a.logger.Info("saved global layer")
	} else {
		a.logger.Info("saved " + string(lvl) + " layer " + name)
	}
	return nil
}

// ListLayers returns the stored layer names per level.
func (a *App) ListLayers(ctx context.Context) (map[domain.LayerLevel][]string, error) {
	return a.layers.ListLayers(ctx)
}

// Effective merges the applicable layers over an environment.
func (a *App) Effective(ctx context.Context, req layers.Request) (*domain.EffectiveConfig, error) {
	return a.layers.Effective(ctx, req)
}
