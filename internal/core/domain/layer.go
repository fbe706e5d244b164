package domain

import (
	"maps"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// LayerLevel is the precedence tier of a configuration layer.
type LayerLevel string

const (
	// LevelGlobal is the single anonymous layer applied to every environment.
	LevelGlobal LayerLevel = "global"
	// LevelTeam holds per-team fragments.
	LevelTeam LayerLevel = "team"
	// LevelProject holds per-project fragments.
	LevelProject LayerLevel = "project"
	// LevelUser holds per-user fragments.
	LevelUser LayerLevel = "user"
)

// LayerLevels lists the levels from least to most specific, which is also merge order.
var LayerLevels = []LayerLevel{LevelGlobal, LevelTeam, LevelProject, LevelUser}

// ParseLayerLevel validates s as a layer level.
func ParseLayerLevel(s string) (LayerLevel, error) {
	level := LayerLevel(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(LayerLevels, level) {
		return "", zerr.With(zerr.Wrap(ErrLayerLevelInvalid, "expected one of global, team, project, user"), "level", s)
	}
	return level, nil
}

// Fragment is a partial configuration contributed by a layer.
// A zero Role and nil Packages or Env mean the field is absent.
type Fragment struct {
	Role     string
	Packages []ResolvedRef
	Env      map[string]string
}

// IsEmpty reports whether the fragment contributes nothing.
func (f Fragment) IsEmpty() bool {
	return f.Role == "" && len(f.Packages) == 0 && len(f.Env) == 0
}

// EffectiveConfig is an environment with all applicable layers merged in.
type EffectiveConfig struct {
	Name     string
	Role     string
	Packages []ResolvedRef
	Env      map[string]string

	// Layers names the fragments that were applied, in order, e.g. "team/fx".
	Layers []string
}

// NewEffectiveConfig seeds an effective configuration from the environment's own fields.
func NewEffectiveConfig(env *Environment) *EffectiveConfig {
	c := &EffectiveConfig{
		Name:     env.Name,
		Role:     env.Role,
		Packages: slices.Clone(env.Packages),
		Env:      map[string]string{},
		Layers:   []string{},
	}
	if c.Packages == nil {
		c.Packages = []ResolvedRef{}
	}
	maps.Copy(c.Env, env.Env)
	return c
}

// Apply merges f on top: role overrides, packages are unioned in first-seen order
// and env is shallow-merged with f winning.
func (c *EffectiveConfig) Apply(source string, f Fragment) {
	if f.Role != "" {
		c.Role = f.Role
	}
	for _, ref := range f.Packages {
		if !slices.Contains(c.Packages, ref) {
			c.Packages = append(c.Packages, ref)
		}
	}
	maps.Copy(c.Env, f.Env)
	c.Layers = append(c.Layers, source)
}
