// Package envvars composes package environment blocks into one set of variables.
package envvars

import (
	"maps"
	"os"
	"slices"
	"strings"

	"go.trai.ch/nexon/internal/core/domain"
)

const (
	// RootPlaceholder is replaced with the package's on-disk root.
	RootPlaceholder = "{root}"
	// PathPlaceholder is replaced with the value accumulated so far for the same key.
	PathPlaceholder = "{PATH}"
)

// Roots locates package roots on disk.
type Roots interface {
	Root(name, version string) string
}

// Composer merges the env blocks of installed packages.
type Composer struct {
	roots   Roots
	environ Environ
}

// NewComposer creates a Composer. environ supplies fallback values for {PATH} and is the
// target of activations.
func NewComposer(roots Roots, environ Environ) *Composer {
	return &Composer{roots: roots, environ: environ}
}

// Compose walks specs in installation order. Values containing {PATH} extend the value
// accumulated so far (or the live one); all other values replace it.
func (c *Composer) Compose(specs []*domain.PackageSpec) map[string]string {
	out := make(map[string]string)
	for _, spec := range specs {
		root := c.roots.Root(spec.Name, spec.Version.String())
		for _, key := range slices.Sorted(maps.Keys(spec.Env)) {
			value := SubstituteRoot(spec.Env[key], root)
			if strings.Contains(value, PathPlaceholder) {
				current, ok := out[key]
				if !ok {
					current, _ = c.environ.LookupEnv(key)
				}
				value = substitutePath(value, current)
			}
			out[key] = value
		}
	}
	return out
}

// SubstituteRoot replaces every {root} in s.
func SubstituteRoot(s, root string) string {
	return strings.ReplaceAll(s, RootPlaceholder, root)
}

// substitutePath replaces {PATH} with current. An empty current drops the
// placeholder together with one adjacent list separator.
func substitutePath(tmpl, current string) string {
	if current != "" {
		return strings.ReplaceAll(tmpl, PathPlaceholder, current)
	}
	sep := string(os.PathListSeparator)
	tmpl = strings.ReplaceAll(tmpl, sep+PathPlaceholder, "")
	tmpl = strings.ReplaceAll(tmpl, PathPlaceholder+sep, "")
	return strings.ReplaceAll(tmpl, PathPlaceholder, "")
}

// Pairs returns vars as sorted KEY=VALUE entries.
func Pairs(vars map[string]string) []string {
	out := make([]string, 0, len(vars))
	for _, key := range slices.Sorted(maps.Keys(vars)) {
		out = append(out, key+"="+vars[key])
	}
	return out
}
