package semver

import (
	"fmt"
	"strings"
)

// BuildMetadata is the optional component after the "+" in a version. It is
// carried and reprinted but ignored by matching, comparison, and equality.
type BuildMetadata struct {
	raw string
}

// NewBuildMetadata validates and returns a build metadata component. The
// empty string yields the empty component. Identifiers must be non-empty
// and restricted to [0-9A-Za-z-]; unlike pre-release identifiers, leading
// zeros are allowed.
func NewBuildMetadata(raw string) (BuildMetadata, error) {
	if raw == "" {
		return BuildMetadata{}, nil
	}
	for _, ident := range strings.Split(raw, ".") {
		if err := validateIdentifier(ident, true); err != nil {
			return BuildMetadata{}, fmt.Errorf("invalid build metadata %q: %w", raw, err)
		}
	}
	return BuildMetadata{raw: raw}, nil
}

func (b BuildMetadata) IsEmpty() bool {
	return b.raw == ""
}

func (b BuildMetadata) String() string {
	return b.raw
}
