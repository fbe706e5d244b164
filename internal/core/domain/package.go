package domain

import "slices"

// DefaultPackageVersion is the version given to scaffolded packages.
const DefaultPackageVersion = "0.1.0"

// DefaultPlatforms lists the platforms a scaffolded package declares.
var DefaultPlatforms = []string{"windows", "linux", "macos"}

// PackageSpec describes one version of a package.
type PackageSpec struct {
	Name        string
	Version     Version
	Description string

	// Requires lists requirement strings in declaration order.
	Requires []string

	// Env values may reference {root} and {PATH}.
	Env map[string]string

	Commands  map[string]string
	Build     *BuildSpec
	Tags      []string
	Platforms []string
}

// BuildSpec describes how a package is built from its root.
type BuildSpec struct {
	Env      map[string]string
	Commands []string
}

// Ref returns the resolved reference identifying this spec.
func (p *PackageSpec) Ref() ResolvedRef {
	return NewRef(p.Name, p.Version)
}

// HasTag reports whether the package carries tag.
func (p *PackageSpec) HasTag(tag string) bool {
	return slices.Contains(p.Tags, tag)
}

// NewPackageScaffold returns the package spec written for a freshly created package.
func NewPackageScaffold(name string, v Version) *PackageSpec {
	return &PackageSpec{
		Name:        name,
		Version:     v,
		Description: name + " package",
		Requires:    []string{},
		Env:         map[string]string{},
		Commands:    map[string]string{},
		Tags:        []string{},
		Platforms:   slices.Clone(DefaultPlatforms),
	}
}

// BuildCommand is one command line of a package build, already substituted.
type BuildCommand struct {
	Package ResolvedRef
	Line    string
	Dir     string
}
