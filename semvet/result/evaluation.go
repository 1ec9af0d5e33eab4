package result

import (
	"fmt"

	"github.com/wharflab/semvet/semvet/semver"
)

// Evaluation represents the outcome of checking a single candidate version against a requirement.
type Evaluation struct {
	Version    semver.Version    // The candidate version that was checked.
	Constraint semver.Constraint // The requirement the version was checked against.
	Satisfied  bool              // Whether the version satisfies the requirement.
}

// NewEvaluation checks the given version against the given requirement and captures the outcome.
func NewEvaluation(constraint semver.Constraint, version semver.Version) Evaluation {
	return Evaluation{
		Version:    version,
		Constraint: constraint,
		Satisfied:  constraint.Satisfied(version),
	}
}

// String is the string representation of select evaluation fields.
func (e Evaluation) String() string {
	return fmt.Sprintf("Evaluation(version=%q constraint=%q satisfied=%t)", e.Version.String(), e.Constraint.String(), e.Satisfied)
}

func (e Evaluation) Fingerprint() Fingerprint {
	return Fingerprint{
		Version:    e.Version.String(),
		Constraint: e.Constraint.String(),
	}
}
