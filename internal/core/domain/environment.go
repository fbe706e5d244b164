package domain

import (
	"maps"
	"slices"
	"strings"
	"time"

	"go.trai.ch/zerr"
)

const (
	// DefaultRole is assigned to environments created without a role.
	DefaultRole = "custom"

	// ActiveEnvVar names the variable that carries the active environment name.
	ActiveEnvVar = "NEXON_ENV"
)

// Environment is a named, ordered set of resolved packages.
type Environment struct {
	Name        string
	Role        string
	Description string
	CreatedAt   time.Time

	// Packages is kept in insertion order and never holds duplicates.
	Packages []ResolvedRef

	// Env holds variables contributed by recipes, applied after package variables.
	Env map[string]string
}

// NewEnvironment returns an empty environment created at now, truncated to the
// second precision documents are stored with.
func NewEnvironment(name, role string, now time.Time) *Environment {
	description := "Custom environment"
	if role != "" {
		description = "Environment created via Nexon CLI [" + role + "]"
	} else {
		role = DefaultRole
	}
	return &Environment{
		Name:        name,
		Role:        role,
		Description: description,
		CreatedAt:   now.UTC().Truncate(time.Second),
		Packages:    []ResolvedRef{},
	}
}

// ValidateEnvironmentName rejects names that cannot be stored as a single document.
func ValidateEnvironmentName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return zerr.With(zerr.Wrap(ErrInvalidEnvironmentName, "empty or relative name"), "environment", name)
	case strings.ContainsAny(name, `/\`):
		return zerr.With(zerr.Wrap(ErrInvalidEnvironmentName, "name contains a path separator"), "environment", name)
	case strings.HasSuffix(name, LockSuffix):
		return zerr.With(zerr.Wrap(ErrInvalidEnvironmentName, "name collides with lockfile suffix"), "environment", name)
	}
	return nil
}

// Has reports whether ref is installed.
func (e *Environment) Has(ref ResolvedRef) bool {
	return slices.Contains(e.Packages, ref)
}

// Missing returns the refs not yet installed, in the given order and without duplicates.
func (e *Environment) Missing(refs []ResolvedRef) []ResolvedRef {
	seen := make(map[ResolvedRef]struct{}, len(e.Packages)+len(refs))
	for _, r := range e.Packages {
		seen[r] = struct{}{}
	}
	missing := make([]ResolvedRef, 0, len(refs))
	for _, r := range refs {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		missing = append(missing, r)
	}
	return missing
}

// Add appends the refs that are not installed yet and returns them.
func (e *Environment) Add(refs ...ResolvedRef) []ResolvedRef {
	added := e.Missing(refs)
	e.Packages = append(e.Packages, added...)
	return added
}

// Remove deletes ref and reports whether it was present.
func (e *Environment) Remove(ref ResolvedRef) bool {
	i := slices.Index(e.Packages, ref)
	if i < 0 {
		return false
	}
	e.Packages = slices.Delete(e.Packages, i, i+1)
	return true
}

// Clone returns a deep copy. Lockfiles are clones frozen at lock time.
func (e *Environment) Clone() *Environment {
	c := *e
	c.Packages = slices.Clone(e.Packages)
	if c.Packages == nil {
		c.Packages = []ResolvedRef{}
	}
	if e.Env != nil {
		c.Env = maps.Clone(e.Env)
	}
	return &c
}

// Summary returns the listing view of the environment.
func (e *Environment) Summary() EnvironmentSummary {
	role := e.Role
	if role == "" {
		role = DefaultRole
	}
	return EnvironmentSummary{Name: e.Name, Role: role, CreatedAt: e.CreatedAt}
}

// EnvironmentSummary is the read model used for listings.
type EnvironmentSummary struct {
	Name      string
	Role      string
	CreatedAt time.Time
}

// RoleChange records a role difference between two environments.
type RoleChange struct {
	Old string
	New string
}

// EnvironmentDiff is the result of comparing two environments.
type EnvironmentDiff struct {
	Added   []ResolvedRef
	Removed []ResolvedRef
	Role    *RoleChange
}

// Empty reports whether the two environments were identical.
func (d EnvironmentDiff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && d.Role == nil
}

// DiffEnvironments reports refs present in b but not a (added), present in a but not b (removed),
// and a role change from a to b. Ref lists are sorted.
func DiffEnvironments(a, b *Environment) EnvironmentDiff {
	diff := EnvironmentDiff{
		Added:   difference(b.Packages, a.Packages),
		Removed: difference(a.Packages, b.Packages),
	}
	if a.Role != b.Role {
		diff.Role = &RoleChange{Old: a.Role, New: b.Role}
	}
	return diff
}

func difference(from, minus []ResolvedRef) []ResolvedRef {
	out := []ResolvedRef{}
	for _, r := range from {
		if !slices.Contains(minus, r) {
			out = append(out, r)
		}
	}
	slices.Sort(out)
	return out
}
