package repository

import (
	"context"
	"path"
	"slices"
	"strings"

	"go.trai.ch/nexon/internal/core/domain"
	"go.trai.ch/nexon/internal/core/ports"
)

// Layers implements ports.LayerStore.
type Layers struct {
	store ports.DocumentStore
}

// NewLayers creates a Layers repository.
func NewLayers(store ports.DocumentStore) *Layers {
	return &Layers{store: store}
}

// Load returns the fragment of the layer and whether it exists.
func (r *Layers) Load(_ context.Context, level domain.LayerLevel, name string) (domain.Fragment, bool, error) {
	var dto LayerDTO
	if err := readDocument(r.store, domain.LayerKey(level, name), &dto); err != nil {
		if isNotFound(err) {
			return domain.Fragment{}, false, nil
		}
		return domain.Fragment{}, false, err
	}
	return toFragment(&dto), true, nil
}

// Save overwrites the layer document.
func (r *Layers) Save(_ context.Context, level domain.LayerLevel, name string, fragment domain.Fragment) error {
	return writeDocument(r.store, domain.LayerKey(level, name), fromFragment(fragment))
}

// List returns stored layer names per level. Every level is present in the result.
func (r *Layers) List(_ context.Context) (map[domain.LayerLevel][]string, error) {
	keys, err := r.store.List(domain.LayersPrefix)
	if err != nil {
		return nil, err
	}

	out := make(map[domain.LayerLevel][]string, len(domain.LayerLevels))
	for _, level := range domain.LayerLevels {
		out[level] = []string{}
	}

	for _, key := range keys {
		if !strings.HasSuffix(key, domain.DocumentExt) {
			continue
		}
		rel := strings.TrimPrefix(key, domain.LayersPrefix+"/")
		if rel == string(domain.LevelGlobal)+domain.DocumentExt {
			out[domain.LevelGlobal] = []string{string(domain.LevelGlobal)}
			continue
		}
		dir, file := path.Split(rel)
		level := domain.LayerLevel(strings.TrimSuffix(dir, "/"))
		if level == domain.LevelGlobal || !slices.Contains(domain.LayerLevels, level) {
			continue
		}
		out[level] = append(out[level], strings.TrimSuffix(file, domain.DocumentExt))
	}

	for _, names := range out {
		slices.Sort(names)
	}
	return out, nil
}
