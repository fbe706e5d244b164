package domain

import (
	"regexp"
	"strings"

	"go.trai.ch/zerr"
)

// Operator is a version comparison operator used in requirement clauses.
type Operator string

const (
	// OpEqual matches versions with equal precedence.
	OpEqual Operator = "=="
	// OpNotEqual matches versions with different precedence.
	OpNotEqual Operator = "!="
	// OpGreaterEqual matches versions at or above the bound.
	OpGreaterEqual Operator = ">="
	// OpLessEqual matches versions at or below the bound.
	OpLessEqual Operator = "<="
	// OpGreater matches versions strictly above the bound.
	OpGreater Operator = ">"
	// OpLess matches versions strictly below the bound.
	OpLess Operator = "<"
	// OpCompatible matches compatible releases: ~=1.4 means >=1.4 and 1.*.
	OpCompatible Operator = "~="
)

// operators is ordered so two-character operators are tried before their one-character prefixes.
var operators = []Operator{OpEqual, OpGreaterEqual, OpLessEqual, OpCompatible, OpNotEqual, OpGreater, OpLess}

const operatorChars = "=<>!~"

var (
	namePattern         = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9_.\-]*$`)
	versionShapePattern = regexp.MustCompile(`^v?\d+\.\d+`)
)

// Clause is a single (operator, version) pair.
type Clause struct {
	Op      Operator
	Version Version
}

// Matches reports whether v satisfies the clause.
func (c Clause) Matches(v Version) bool {
	cmp := v.Compare(c.Version)
	switch c.Op {
	case OpEqual:
		return cmp == 0
	case OpNotEqual:
		return cmp != 0
	case OpGreaterEqual:
		return cmp >= 0
	case OpLessEqual:
		return cmp <= 0
	case OpGreater:
		return cmp > 0
	case OpLess:
		return cmp < 0
	case OpCompatible:
		release := c.Version.release
		return cmp >= 0 && v.hasReleasePrefix(release[:len(release)-1])
	default:
		return false
	}
}

func (c Clause) String() string {
	return string(c.Op) + c.Version.String()
}

// Constraint is a conjunction of clauses. An empty constraint matches every version.
type Constraint []Clause

// Matches reports whether v satisfies every clause.
func (c Constraint) Matches(v Version) bool {
	for _, clause := range c {
		if !clause.Matches(v) {
			return false
		}
	}
	return true
}

func (c Constraint) String() string {
	parts := make([]string, len(c))
	for i, clause := range c {
		parts[i] = clause.String()
	}
	return strings.Join(parts, ",")
}

// Requirement is an unresolved request for a package, optionally constrained by version.
type Requirement struct {
	Name       string
	Constraint Constraint
}

// Matches reports whether v satisfies the requirement's constraint.
func (r Requirement) Matches(v Version) bool {
	return r.Constraint.Matches(v)
}

func (r Requirement) String() string {
	return r.Name + r.Constraint.String()
}

// ParseRequirement parses "name-X.Y.Z", "name<op>ver[,<op>ver...]" or a bare "name".
func ParseRequirement(req string) (Requirement, error) {
	s := strings.TrimSpace(req)
	if s == "" {
		return Requirement{}, zerr.With(zerr.Wrap(ErrInvalidRequirement, "empty requirement"), "requirement", req)
	}

	if !strings.ContainsAny(s, operatorChars) {
		if name, version, ok := splitShorthand(s); ok {
			v, err := ParseVersion(version)
			if err != nil {
				return Requirement{}, zerr.With(zerr.Wrap(ErrInvalidRequirement, err.Error()), "requirement", req)
			}
			return Requirement{Name: name, Constraint: Constraint{{Op: OpEqual, Version: v}}}, nil
		}
		if err := validateName(s, req); err != nil {
			return Requirement{}, err
		}
		return Requirement{Name: s}, nil
	}

	idx := strings.IndexAny(s, operatorChars)
	name := strings.TrimSpace(s[:idx])
	if err := validateName(name, req); err != nil {
		return Requirement{}, err
	}

	constraint, err := parseConstraint(s[idx:], req)
	if err != nil {
		return Requirement{}, err
	}
	return Requirement{Name: name, Constraint: constraint}, nil
}

// splitShorthand finds the right-most hyphen followed by a version-shaped token.
func splitShorthand(s string) (name, version string, ok bool) {
	for i := strings.LastIndex(s, "-"); i > 0; i = strings.LastIndex(s[:i], "-") {
		if versionShapePattern.MatchString(s[i+1:]) {
			return s[:i], s[i+1:], true
		}
	}
	return "", "", false
}

func validateName(name, req string) error {
	if !namePattern.MatchString(name) {
		return zerr.With(zerr.With(zerr.Wrap(ErrInvalidRequirement, "invalid package name"), "requirement", req), "package", name)
	}
	return nil
}

func parseConstraint(spec, req string) (Constraint, error) {
	raw := strings.Split(spec, ",")
	constraint := make(Constraint, 0, len(raw))
	for _, part := range raw {
		clause, err := parseClause(strings.TrimSpace(part), req)
		if err != nil {
			return nil, err
		}
		constraint = append(constraint, clause)
	}
	return constraint, nil
}

func parseClause(text, req string) (Clause, error) {
	for _, op := range operators {
		rest, found := strings.CutPrefix(text, string(op))
		if !found {
			continue
		}
		rest = strings.TrimSpace(rest)
		if rest == "" || strings.ContainsAny(rest, operatorChars) {
			return Clause{}, zerr.With(zerr.With(zerr.Wrap(ErrInvalidSpecifier, "malformed clause"), "requirement", req), "clause", text)
		}
		v, err := ParseVersion(rest)
		if err != nil {
			return Clause{}, zerr.With(zerr.With(zerr.Wrap(ErrInvalidRequirement, err.Error()), "requirement", req), "clause", text)
		}
		if op == OpCompatible && len(v.release) < 2 {
			return Clause{}, zerr.With(zerr.With(zerr.Wrap(ErrInvalidSpecifier, "~= needs at least two release components"), "requirement", req), "clause", text)
		}
		return Clause{Op: op, Version: v}, nil
	}
	return Clause{}, zerr.With(zerr.With(zerr.Wrap(ErrInvalidSpecifier, "unknown operator"), "requirement", req), "clause", text)
}
