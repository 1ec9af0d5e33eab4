package semver

// The matching rules below follow the cargo flavor of semver ranges. Each
// operator compares only the fields the comparator actually specifies; an
// absent minor or patch broadens the match for most operators, while for
// the pure inequalities it leaves nothing to be greater or less by once the
// specified fields tie.

func matchesImpl(c Comparator, v Version) bool {
	switch c.Op {
	case Exact, Wildcard:
		return matchesExact(c, v)
	case Greater:
		return matchesGreater(c, v)
	case GreaterEq:
		return matchesExact(c, v) || matchesGreater(c, v)
	case Less:
		return matchesLess(c, v)
	case LessEq:
		return matchesExact(c, v) || matchesLess(c, v)
	case Tilde:
		return matchesTilde(c, v)
	case Caret:
		return matchesCaret(c, v)
	}
	return false
}

func matchesExact(c Comparator, v Version) bool {
	if v.Major != c.Major {
		return false
	}
	if c.Minor != nil && v.Minor != *c.Minor {
		return false
	}
	if c.Patch != nil && v.Patch != *c.Patch {
		return false
	}
	return v.Pre == c.Pre
}

// matchesGreater stops matching when the comparator leaves minor or patch
// unspecified and every specified field ties: >1 matches 2.0.0 but no 1.x.y
// version, because within major 1 there is nothing specified to exceed.
func matchesGreater(c Comparator, v Version) bool {
	if v.Major != c.Major {
		return v.Major > c.Major
	}

	if c.Minor == nil {
		return false
	}
	if v.Minor != *c.Minor {
		return v.Minor > *c.Minor
	}

	if c.Patch == nil {
		return false
	}
	if v.Patch != *c.Patch {
		return v.Patch > *c.Patch
	}

	return v.Pre.Compare(c.Pre) > 0
}

func matchesLess(c Comparator, v Version) bool {
	if v.Major != c.Major {
		return v.Major < c.Major
	}

	if c.Minor == nil {
		return false
	}
	if v.Minor != *c.Minor {
		return v.Minor < *c.Minor
	}

	if c.Patch == nil {
		return false
	}
	if v.Patch != *c.Patch {
		return v.Patch < *c.Patch
	}

	return v.Pre.Compare(c.Pre) < 0
}

func matchesTilde(c Comparator, v Version) bool {
	if v.Major != c.Major {
		return false
	}
	if c.Minor != nil && v.Minor != *c.Minor {
		return false
	}
	if c.Patch != nil && v.Patch != *c.Patch {
		// the patch may float upward, never down
		return v.Patch > *c.Patch
	}
	return v.Pre.Compare(c.Pre) >= 0
}

func matchesCaret(c Comparator, v Version) bool {
	if v.Major != c.Major {
		return false
	}

	if c.Minor == nil {
		// ^1 pins nothing but the major
		return true
	}
	minor := *c.Minor

	if c.Patch == nil {
		if c.Major > 0 {
			// ^1.2 means >=1.2.0, <2.0.0
			return v.Minor >= minor
		}
		// ^0.2 means >=0.2.0, <0.3.0
		return v.Minor == minor
	}
	patch := *c.Patch

	if c.Major > 0 {
		if v.Minor != minor {
			return v.Minor > minor
		} else if v.Patch != patch {
			return v.Patch > patch
		}
	} else if minor > 0 {
		// ^0.2.3 means >=0.2.3, <0.3.0
		if v.Minor != minor {
			return false
		} else if v.Patch != patch {
			return v.Patch > patch
		}
	} else if v.Minor != minor || v.Patch != patch {
		// ^0.0.3 admits exactly 0.0.3
		return false
	}

	return v.Pre.Compare(c.Pre) >= 0
}

// preCompatible reports whether the comparator names a non-empty
// pre-release at exactly the version's major.minor.patch triple. This is
// the only way a pre-release version can satisfy a constraint: some clause
// has to opt in at the release the tag belongs to.
func preCompatible(c Comparator, v Version) bool {
	return c.Major == v.Major &&
		c.Minor != nil && *c.Minor == v.Minor &&
		c.Patch != nil && *c.Patch == v.Patch &&
		!c.Pre.IsEmpty()
}
