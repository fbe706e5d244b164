// Package layers merges global, team, project and user fragments over an environment.
package layers

import (
	"context"
	"strings"

	"go.trai.ch/nexon/internal/core/domain"
	"go.trai.ch/nexon/internal/core/ports"
	"go.trai.ch/zerr"
)

// Request selects the layers merged over an environment.
// Empty Team or Project skip that level; an empty User falls back to the composer's default user.
type Request struct {
	Env     string
	Team    string
	Project string
	User    string
}

// Composer computes effective configurations.
type Composer struct {
	envs        ports.EnvironmentStore
	layers      ports.LayerStore
	defaultUser string
}

// NewComposer creates a Composer. defaultUser is used when a request names no user.
func NewComposer(envs ports.EnvironmentStore, layers ports.LayerStore, defaultUser string) *Composer {
	return &Composer{envs: envs, layers: layers, defaultUser: defaultUser}
}

// Effective starts from the environment's stored fields and applies global, team, project
// and user fragments in that order. Missing layers contribute nothing.
func (c *Composer) Effective(ctx context.Context, req Request) (*domain.EffectiveConfig, error) {
	env, err := c.envs.Load(ctx, req.Env)
	if err != nil {
		return nil, err
	}

	user := req.User
	if user == "" {
		user = c.defaultUser
	}

	effective := domain.NewEffectiveConfig(env)
	for _, sel := range []struct {
		level domain.LayerLevel
		name  string
	}{
		{domain.LevelGlobal, ""},
		{domain.LevelTeam, req.Team},
		{domain.LevelProject, req.Project},
		{domain.LevelUser, user},
	} {
		if sel.level != domain.LevelGlobal && sel.name == "" {
			continue
		}
		fragment, ok, err := c.layers.Load(ctx, sel.level, sel.name)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		effective.Apply(source(sel.level, sel.name), fragment)
	}
	return effective, nil
}

// CreateLayer validates the identity and overwrites the layer wholesale.
// The name is ignored for the global level.
func (c *Composer) CreateLayer(ctx context.Context, level, name string, fragment domain.Fragment) (domain.LayerLevel, error) {
	lvl, err := domain.ParseLayerLevel(level)
	if err != nil {
		return "", err
	}
	if lvl != domain.LevelGlobal {
		if err := validateLayerName(name); err != nil {
			return "", zerr.With(err, "level", string(lvl))
		}
	}
	for _, ref := range fragment.Packages {
		if _, _, err := domain.ParseRef(ref.String()); err != nil {
			return "", err
		}
	}
	if err := c.layers.Save(ctx, lvl, name, fragment); err != nil {
		return "", err
	}
	return lvl, nil
}

// ListLayers returns the stored layer names per level.
func (c *Composer) ListLayers(ctx context.Context) (map[domain.LayerLevel][]string, error) {
	return c.layers.List(ctx)
}

func validateLayerName(name string) error {
	if strings.TrimSpace(name) == "" {
		return zerr.Wrap(domain.ErrLayerNameRequired, "layer name is required")
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return zerr.With(zerr.Wrap(domain.ErrInvalidKey, "invalid layer name"), "name", name)
	}
	return nil
}

func source(level domain.LayerLevel, name string) string {
	if level == domain.LevelGlobal {
		return string(level)
	}
	return string(level) + "/" + name
}
