package semver

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a parsed semantic version. Values are plain data, immutable by
// convention, and safe to share across goroutines.
type Version struct {
	Major uint64
	Minor uint64
	Patch uint64
	Pre   Prerelease
	Build BuildMetadata
}

// New returns a release version with empty pre-release and build components.
func New(major, minor, patch uint64) Version {
	return Version{
		Major: major,
		Minor: minor,
		Patch: patch,
	}
}

// Parse reads a strict semver 2.0.0 version: three dot-separated numeric
// fields followed by optional "-PRERELEASE" and "+BUILD" trailers. There is
// no tolerance for a leading "v", missing fields, leading zeros, or
// surrounding noise.
func Parse(raw string) (Version, error) {
	var v Version
	rest := raw

	if i := strings.IndexByte(rest, '+'); i >= 0 {
		if rest[i+1:] == "" {
			return Version{}, fmt.Errorf("unable to parse version %q: dangling '+'", raw)
		}
		build, err := NewBuildMetadata(rest[i+1:])
		if err != nil {
			return Version{}, fmt.Errorf("unable to parse version %q: %w", raw, err)
		}
		v.Build = build
		rest = rest[:i]
	}

	if i := strings.IndexByte(rest, '-'); i >= 0 {
		if rest[i+1:] == "" {
			return Version{}, fmt.Errorf("unable to parse version %q: dangling '-'", raw)
		}
		pre, err := NewPrerelease(rest[i+1:])
		if err != nil {
			return Version{}, fmt.Errorf("unable to parse version %q: %w", raw, err)
		}
		v.Pre = pre
		rest = rest[:i]
	}

	fields := strings.Split(rest, ".")
	if len(fields) != 3 {
		return Version{}, fmt.Errorf("unable to parse version %q: expected three fields (major.minor.patch), found %d", raw, len(fields))
	}

	var err error
	if v.Major, err = parseNumericField(fields[0]); err != nil {
		return Version{}, fmt.Errorf("unable to parse version %q: %w", raw, err)
	}
	if v.Minor, err = parseNumericField(fields[1]); err != nil {
		return Version{}, fmt.Errorf("unable to parse version %q: %w", raw, err)
	}
	if v.Patch, err = parseNumericField(fields[2]); err != nil {
		return Version{}, fmt.Errorf("unable to parse version %q: %w", raw, err)
	}

	return v, nil
}

// MustParse is meant for testing and static wiring only, do not use for
// arbitrary input.
func MustParse(raw string) Version {
	v, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return v
}

func (v Version) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d.%d.%d", v.Major, v.Minor, v.Patch)
	if !v.Pre.IsEmpty() {
		b.WriteByte('-')
		b.WriteString(v.Pre.String())
	}
	if !v.Build.IsEmpty() {
		b.WriteByte('+')
		b.WriteString(v.Build.String())
	}
	return b.String()
}

// IsPrerelease reports whether the version carries a pre-release component.
func (v Version) IsPrerelease() bool {
	return !v.Pre.IsEmpty()
}

// Compare orders two versions by precedence: numeric fields first, then
// pre-release ordering, where a release ranks above its own pre-releases.
// Build metadata never participates. It returns -1, 0, or 1 as v is lower
// than, equal to, or higher than other.
func (v Version) Compare(other Version) int {
	if v.Major != other.Major {
		return compareUint64(v.Major, other.Major)
	}
	if v.Minor != other.Minor {
		return compareUint64(v.Minor, other.Minor)
	}
	if v.Patch != other.Patch {
		return compareUint64(v.Patch, other.Patch)
	}
	return v.Pre.Compare(other.Pre)
}

// Equal reports whether two versions share the same precedence. Build
// metadata is ignored here just as it is everywhere else.
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

func parseNumericField(s string) (uint64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty numeric field")
	}
	if !isNumeric(s) {
		return 0, fmt.Errorf("numeric field %q is not a number", s)
	}
	if len(s) > 1 && s[0] == '0' {
		return 0, fmt.Errorf("numeric field %q has a leading zero", s)
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("numeric field %q is out of range", s)
	}
	return n, nil
}

func compareUint64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
