package semver

import (
	"fmt"
	"strings"
)

// Constraint is a set of comparators that a version must satisfy all at
// once, e.g. ">=1.2.3, <2". The zero value holds no comparators and is the
// full wildcard "*", which admits every release version.
type Constraint struct {
	Comparators []Comparator
}

// ParseConstraint reads a comma-separated list of comparators. A blank
// string or a bare wildcard ("*", "x", "X") yields the empty constraint;
// the bare wildcard cannot be combined with further comparators.
func ParseConstraint(raw string) (Constraint, error) {
	text := strings.TrimSpace(raw)
	if text == "" || isWildcardField(text) {
		return Constraint{}, nil
	}

	parts := strings.Split(text, ",")
	comparators := make([]Comparator, 0, len(parts))
	for _, part := range parts {
		if isWildcardField(strings.TrimSpace(part)) {
			return Constraint{}, fmt.Errorf("unable to parse constraint %q: a bare wildcard cannot be combined with other comparators", raw)
		}
		c, err := ParseComparator(part)
		if err != nil {
			return Constraint{}, fmt.Errorf("unable to parse constraint %q: %w", raw, err)
		}
		comparators = append(comparators, c)
	}

	return Constraint{Comparators: comparators}, nil
}

// MustParseConstraint is meant for testing and static wiring only, do not
// use for arbitrary input.
func MustParseConstraint(raw string) Constraint {
	c, err := ParseConstraint(raw)
	if err != nil {
		panic(err)
	}
	return c
}

// Satisfied reports whether the version satisfies every comparator.
//
// A version carrying a pre-release tag (for example 1.2.3-alpha.3) has an
// extra hurdle: at least one comparator must name a non-empty pre-release
// at exactly the same major.minor.patch triple. Ranges never admit
// pre-release versions implicitly; a constraint opts in by mentioning one
// at the release the tag belongs to, as in ">=1.2.3-alpha, <2".
func (c Constraint) Satisfied(v Version) bool {
	for _, cmp := range c.Comparators {
		if !matchesImpl(cmp, v) {
			return false
		}
	}

	if v.Pre.IsEmpty() {
		return true
	}

	for _, cmp := range c.Comparators {
		if preCompatible(cmp, v) {
			return true
		}
	}

	return false
}

func (c Constraint) String() string {
	if len(c.Comparators) == 0 {
		return "*"
	}
	parts := make([]string, len(c.Comparators))
	for i, cmp := range c.Comparators {
		parts[i] = cmp.String()
	}
	return strings.Join(parts, ", ")
}
