package domain

import (
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
	"golang.org/x/mod/semver"
)

const maxReleaseComponents = 3

// Version is a parsed semantic version.
// The text it was parsed from is preserved so references keep the author's spelling.
type Version struct {
	raw     string
	canon   string
	release []int
}

// ParseVersion parses MAJOR[.MINOR[.PATCH]][-prerelease][+build] with an optional leading "v".
func ParseVersion(s string) (Version, error) {
	raw := strings.TrimSpace(s)
	body := strings.TrimPrefix(strings.TrimPrefix(raw, "v"), "V")
	if body == "" {
		return Version{}, zerr.With(zerr.Wrap(ErrInvalidVersion, "empty version"), "version", s)
	}

	core, build, _ := strings.Cut(body, "+")
	core, pre, hasPre := strings.Cut(core, "-")

	parts := strings.Split(core, ".")
	if len(parts) > maxReleaseComponents {
		return Version{}, zerr.With(zerr.Wrap(ErrInvalidVersion, "too many release components"), "version", s)
	}

	release := make([]int, 0, len(parts))
	for _, p := range parts {
		if !isDigits(p) {
			return Version{}, zerr.With(zerr.Wrap(ErrInvalidVersion, "release component is not numeric"), "version", s)
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return Version{}, zerr.With(zerr.Wrap(ErrInvalidVersion, err.Error()), "version", s)
		}
		release = append(release, n)
	}

	padded := padRelease(release)
	var b strings.Builder
	b.WriteString("v")
	b.WriteString(strconv.Itoa(padded[0]))
	b.WriteString(".")
	b.WriteString(strconv.Itoa(padded[1]))
	b.WriteString(".")
	b.WriteString(strconv.Itoa(padded[2]))
	if hasPre {
		b.WriteString("-")
		b.WriteString(pre)
	}
	if build != "" {
		b.WriteString("+")
		b.WriteString(build)
	}

	canon := b.String()
	if !semver.IsValid(canon) {
		return Version{}, zerr.With(zerr.Wrap(ErrInvalidVersion, "malformed prerelease or build metadata"), "version", s)
	}

	return Version{raw: raw, canon: canon, release: release}, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func padRelease(release []int) []int {
	padded := make([]int, maxReleaseComponents)
	copy(padded, release)
	return padded
}

// String returns the version as it was written.
func (v Version) String() string {
	return v.raw
}

// IsZero reports whether v is the zero Version.
func (v Version) IsZero() bool {
	return v.canon == ""
}

// Compare returns -1, 0 or +1 using semantic version precedence.
// Prerelease versions order below their release and build metadata is ignored.
func (v Version) Compare(o Version) int {
	return semver.Compare(v.canon, o.canon)
}

// Prerelease returns the prerelease suffix including the leading hyphen, or "".
func (v Version) Prerelease() string {
	return semver.Prerelease(v.canon)
}

// Release returns the release components as written, without padding.
func (v Version) Release() []int {
	return slices.Clone(v.release)
}

// hasReleasePrefix reports whether the padded release of v starts with prefix.
func (v Version) hasReleasePrefix(prefix []int) bool {
	padded := padRelease(v.release)
	if len(prefix) > len(padded) {
		return false
	}
	return slices.Equal(padded[:len(prefix)], prefix)
}

// SortVersionsDesc orders versions from highest to lowest.
// Versions with equal precedence are ordered by their text so the result is deterministic.
func SortVersionsDesc(versions []Version) {
	slices.SortStableFunc(versions, func(a, b Version) int {
		if c := b.Compare(a); c != 0 {
			return c
		}
		return strings.Compare(b.raw, a.raw)
	})
}
