package semver

import (
	"fmt"
	"strings"
)

// Prerelease is the optional dot-separated component after the "-" in a
// version, e.g. the "alpha.1" of "1.2.3-alpha.1". The zero value is the
// empty pre-release carried by every ordinary release.
//
// Two comparisons exist on purpose. The == operator checks identifier
// sequence equality and is what exact matching uses; Compare implements
// precedence ordering and is what range matching uses. A.Compare(B) == 0
// exactly when A == B, but only Compare orders unequal values.
type Prerelease struct {
	raw string
}

// NewPrerelease validates and returns a pre-release component. The empty
// string yields the empty pre-release. Identifiers must be non-empty,
// restricted to [0-9A-Za-z-], and numeric identifiers must not carry
// leading zeros.
func NewPrerelease(raw string) (Prerelease, error) {
	if raw == "" {
		return Prerelease{}, nil
	}
	for _, ident := range strings.Split(raw, ".") {
		if err := validateIdentifier(ident, false); err != nil {
			return Prerelease{}, fmt.Errorf("invalid pre-release %q: %w", raw, err)
		}
	}
	return Prerelease{raw: raw}, nil
}

func (p Prerelease) IsEmpty() bool {
	return p.raw == ""
}

func (p Prerelease) String() string {
	return p.raw
}

// Compare orders pre-releases by precedence. The empty pre-release ranks
// above every non-empty one (a release outranks its own pre-releases),
// identifiers compare position by position, and a sequence that is a strict
// prefix of another ranks below it. It returns -1, 0, or 1 as p is lower
// than, equal to, or higher than other.
func (p Prerelease) Compare(other Prerelease) int {
	if p.raw == other.raw {
		return 0
	}
	if p.raw == "" {
		return 1
	}
	if other.raw == "" {
		return -1
	}

	lhs := strings.Split(p.raw, ".")
	rhs := strings.Split(other.raw, ".")
	for i := 0; i < len(lhs) && i < len(rhs); i++ {
		if c := compareIdentifier(lhs[i], rhs[i]); c != 0 {
			return c
		}
	}

	switch {
	case len(lhs) < len(rhs):
		return -1
	case len(lhs) > len(rhs):
		return 1
	}
	return 0
}
