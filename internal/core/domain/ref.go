package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// ResolvedRef is the canonical "<name>-<version>" identifier of a resolved package.
type ResolvedRef string

// NewRef builds the reference for a package name and version.
func NewRef(name string, v Version) ResolvedRef {
	return ResolvedRef(name + "-" + v.String())
}

// ParseRef splits a reference on the right-most hyphen whose suffix is a valid version.
// For ordinary refs this is a plain right split; prerelease versions such as
// "tool-2.0.0-rc1" still split at the version boundary.
func ParseRef(s string) (string, Version, error) {
	for i := strings.LastIndex(s, "-"); i > 0; i = strings.LastIndex(s[:i], "-") {
		if v, err := ParseVersion(s[i+1:]); err == nil {
			return s[:i], v, nil
		}
	}
	return "", Version{}, zerr.With(zerr.Wrap(ErrInvalidRef, "no version suffix"), "ref", s)
}

// Name returns the package name part of the reference, or the whole string if it cannot be split.
func (r ResolvedRef) Name() string {
	name, _, err := ParseRef(string(r))
	if err != nil {
		return string(r)
	}
	return name
}

// Version returns the version part of the reference as written, or "" if it cannot be split.
func (r ResolvedRef) Version() string {
	_, v, err := ParseRef(string(r))
	if err != nil {
		return ""
	}
	return v.String()
}

func (r ResolvedRef) String() string {
	return string(r)
}

// RefStrings converts refs to plain strings.
func RefStrings(refs []ResolvedRef) []string {
	out := make([]string, len(refs))
	for i, r := range refs {
		out[i] = string(r)
	}
	return out
}
