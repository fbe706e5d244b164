// Package repository maps domain objects to YAML documents in a ports.DocumentStore.
package repository

import (
	"errors"
	"maps"
	"slices"
	"time"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/nexon/internal/core/domain"
	"go.trai.ch/nexon/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// naiveTimeLayout accepts timestamps written without a zone, which are taken as UTC.
const naiveTimeLayout = "2006-01-02T15:04:05.999999999"

// readDocument loads and validates the YAML document at key into out.
func readDocument(store ports.DocumentStore, key string, out any) error {
	data, err := store.Get(key)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrInvalidDocument, err.Error()), "key", key)
	}
	if err := validate.Struct(out); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrInvalidDocument, err.Error()), "key", key)
	}
	return nil
}

func writeDocument(store ports.DocumentStore, key string, doc any) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error()), "key", key)
	}
	return store.Put(key, data)
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrDocumentNotFound)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC()
	}
	if t, err := time.Parse(naiveTimeLayout, s); err == nil {
		return t.UTC()
	}
	return time.Time{}
}

func refsFromStrings(in []string) []domain.ResolvedRef {
	out := make([]domain.ResolvedRef, 0, len(in))
	for _, s := range in {
		ref := domain.ResolvedRef(s)
		if !slices.Contains(out, ref) {
			out = append(out, ref)
		}
	}
	return out
}

func toPackageSpec(dto *PackageDTO) (*domain.PackageSpec, error) {
	v, err := domain.ParseVersion(dto.Version)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidPackageSpec, err.Error()), "package", dto.Name)
	}
	spec := &domain.PackageSpec{
		Name:        dto.Name,
		Version:     v,
		Description: dto.Description,
		Requires:    slices.Clone(dto.Requires),
		Env:         cloneMap(dto.Env),
		Commands:    cloneMap(dto.Commands),
		Tags:        uniqueStrings(dto.Tags),
		Platforms:   slices.Clone(dto.Platforms),
	}
	if dto.Build != nil {
		spec.Build = &domain.BuildSpec{
			Env:      cloneMap(dto.Build.Env),
			Commands: slices.Clone(dto.Build.Commands),
		}
	}
	return spec, nil
}

func fromPackageSpec(spec *domain.PackageSpec) *PackageDTO {
	dto := &PackageDTO{
		Name:        spec.Name,
		Version:     spec.Version.String(),
		Description: spec.Description,
		Requires:    nonNil(spec.Requires),
		Env:         cloneMap(spec.Env),
		Commands:    cloneMap(spec.Commands),
		Tags:        nonNil(spec.Tags),
		Platforms:   nonNil(spec.Platforms),
	}
	if spec.Build != nil {
		dto.Build = &BuildDTO{
			Env:      cloneMap(spec.Build.Env),
			Commands: slices.Clone(spec.Build.Commands),
		}
	}
	return dto
}

func toEnvironment(dto *EnvironmentDTO) *domain.Environment {
	env := &domain.Environment{
		Name:        dto.Name,
		Role:        dto.Role,
		Description: dto.Description,
		CreatedAt:   parseTime(dto.CreatedAt),
		Packages:    refsFromStrings(dto.Packages),
	}
	if len(dto.Env) > 0 {
		env.Env = cloneMap(dto.Env)
	}
	return env
}

func fromEnvironment(env *domain.Environment) *EnvironmentDTO {
	return &EnvironmentDTO{
		Name:        env.Name,
		CreatedAt:   formatTime(env.CreatedAt),
		Description: env.Description,
		Role:        env.Role,
		Packages:    domain.RefStrings(env.Packages),
		Env:         env.Env,
	}
}

func toFragment(dto *LayerDTO) domain.Fragment {
	f := domain.Fragment{Role: dto.Role}
	if dto.Packages != nil {
		f.Packages = refsFromStrings(dto.Packages)
	}
	if dto.Env != nil {
		f.Env = cloneMap(dto.Env)
	}
	return f
}

func fromFragment(f domain.Fragment) *LayerDTO {
	dto := &LayerDTO{Role: f.Role, Env: f.Env}
	if f.Packages != nil {
		dto.Packages = domain.RefStrings(f.Packages)
	}
	return dto
}

func toRecipe(dto *RecipeDTO) *domain.Recipe {
	return &domain.Recipe{
		Name:      dto.Name,
		Base:      dto.Base,
		Overrides: refsFromStrings(dto.Overrides),
		Env:       cloneMap(dto.Env),
		CreatedAt: parseTime(dto.CreatedAt),
	}
}

func fromRecipe(r *domain.Recipe) *RecipeDTO {
	return &RecipeDTO{
		Name:      r.Name,
		Base:      r.Base,
		Overrides: domain.RefStrings(r.Overrides),
		Env:       r.Env,
		CreatedAt: formatTime(r.CreatedAt),
	}
}

func cloneMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	maps.Copy(out, m)
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return slices.Clone(s)
}

func uniqueStrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}
