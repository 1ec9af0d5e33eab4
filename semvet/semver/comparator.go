package semver

import (
	"fmt"
	"strings"
)

// Comparator is a single clause of a constraint: an operator applied to a
// possibly partial version. Minor and Patch are nil when the clause leaves
// them unspecified, which is not the same as zero: ^1 and ^1.0 admit
// different sets. A comparator that specifies Patch is expected to also
// specify Minor; ParseComparator guarantees this for parsed values.
type Comparator struct {
	Op    Op
	Major uint64
	Minor *uint64
	Patch *uint64
	Pre   Prerelease
}

// ParseComparator reads a single clause: an optional operator (bare clauses
// default to caret) followed by a full or partial version. The minor and
// patch positions may hold a wildcard ("*", "x", "X") when no operator is
// given. A pre-release tag requires a fully specified triple. Build
// metadata is validated and discarded, since it can never influence a
// match.
func ParseComparator(raw string) (Comparator, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return Comparator{}, fmt.Errorf("empty comparator")
	}

	op, explicitOp, rest := splitOp(text)
	rest = strings.TrimSpace(rest)
	c := Comparator{Op: op}

	if i := strings.IndexByte(rest, '+'); i >= 0 {
		if rest[i+1:] == "" {
			return Comparator{}, fmt.Errorf("unable to parse comparator %q: dangling '+'", raw)
		}
		if _, err := NewBuildMetadata(rest[i+1:]); err != nil {
			return Comparator{}, fmt.Errorf("unable to parse comparator %q: %w", raw, err)
		}
		rest = rest[:i]
	}

	var preRaw string
	if i := strings.IndexByte(rest, '-'); i >= 0 {
		if rest[i+1:] == "" {
			return Comparator{}, fmt.Errorf("unable to parse comparator %q: dangling '-'", raw)
		}
		preRaw = rest[i+1:]
		rest = rest[:i]
	}

	fields := strings.Split(rest, ".")
	if len(fields) > 3 {
		return Comparator{}, fmt.Errorf("unable to parse comparator %q: too many version fields", raw)
	}

	if isWildcardField(fields[0]) {
		if explicitOp {
			return Comparator{}, fmt.Errorf("unable to parse comparator %q: a wildcard cannot follow an operator", raw)
		}
		return Comparator{}, fmt.Errorf("unable to parse comparator %q: the major field cannot be a wildcard (a bare %q stands alone as a full constraint)", raw, fields[0])
	}

	major, err := parseNumericField(fields[0])
	if err != nil {
		return Comparator{}, fmt.Errorf("unable to parse comparator %q: %w", raw, err)
	}
	c.Major = major

	sawWildcard := false
	for _, field := range fields[1:] {
		if isWildcardField(field) {
			if explicitOp {
				return Comparator{}, fmt.Errorf("unable to parse comparator %q: a wildcard cannot follow an operator", raw)
			}
			c.Op = Wildcard
			sawWildcard = true
			continue
		}
		if sawWildcard {
			return Comparator{}, fmt.Errorf("unable to parse comparator %q: unexpected field after a wildcard", raw)
		}
		n, err := parseNumericField(field)
		if err != nil {
			return Comparator{}, fmt.Errorf("unable to parse comparator %q: %w", raw, err)
		}
		if c.Minor == nil {
			c.Minor = &n
		} else {
			c.Patch = &n
		}
	}

	if preRaw != "" {
		if c.Patch == nil || sawWildcard {
			return Comparator{}, fmt.Errorf("unable to parse comparator %q: a pre-release requires a fully specified version", raw)
		}
		pre, err := NewPrerelease(preRaw)
		if err != nil {
			return Comparator{}, fmt.Errorf("unable to parse comparator %q: %w", raw, err)
		}
		c.Pre = pre
	}

	return c, nil
}

// Satisfied reports whether the version matches this single clause,
// including the pre-release gate: a version carrying a pre-release tag also
// needs the clause to name a non-empty pre-release at the same
// major.minor.patch triple. See Constraint.Satisfied for the rationale.
func (c Comparator) Satisfied(v Version) bool {
	if !matchesImpl(c, v) {
		return false
	}
	if v.Pre.IsEmpty() {
		return true
	}
	return preCompatible(c, v)
}

func (c Comparator) String() string {
	var b strings.Builder

	if c.Op != Wildcard {
		b.WriteString(c.Op.String())
	}
	fmt.Fprintf(&b, "%d", c.Major)

	if c.Minor != nil {
		fmt.Fprintf(&b, ".%d", *c.Minor)
		if c.Patch != nil {
			fmt.Fprintf(&b, ".%d", *c.Patch)
			if !c.Pre.IsEmpty() {
				b.WriteByte('-')
				b.WriteString(c.Pre.String())
			}
		}
	}

	if c.Op == Wildcard {
		b.WriteString(".*")
	}

	return b.String()
}

func splitOp(text string) (op Op, explicit bool, rest string) {
	switch {
	case strings.HasPrefix(text, ">="):
		return GreaterEq, true, text[2:]
	case strings.HasPrefix(text, "<="):
		return LessEq, true, text[2:]
	case strings.HasPrefix(text, ">"):
		return Greater, true, text[1:]
	case strings.HasPrefix(text, "<"):
		return Less, true, text[1:]
	case strings.HasPrefix(text, "="):
		return Exact, true, text[1:]
	case strings.HasPrefix(text, "~"):
		return Tilde, true, text[1:]
	case strings.HasPrefix(text, "^"):
		return Caret, true, text[1:]
	}
	// a bare comparator is a caret requirement
	return Caret, false, text
}

func isWildcardField(field string) bool {
	return field == "*" || field == "x" || field == "X"
}
