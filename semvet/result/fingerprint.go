package result

import (
	"fmt"

	"github.com/mitchellh/hashstructure/v2"
)

// Fingerprint identifies an evaluation by the canonical forms of its version and requirement.
// The fields must stay exported for the content hash to account for them.
type Fingerprint struct {
	Version    string
	Constraint string
}

func (f Fingerprint) String() string {
	return fmt.Sprintf("Fingerprint(version=%q constraint=%q)", f.Version, f.Constraint)
}

// ID returns a stable content hash of the fingerprint.
func (f Fingerprint) ID() string {
	h, err := hashstructure.Hash(&f, hashstructure.FormatV2, &hashstructure.HashOptions{
		ZeroNil:      true,
		SlicesAsSets: true,
	})
	if err != nil {
		return ""
	}

	return fmt.Sprintf("%x", h)
}
