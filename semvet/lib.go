package semvet

import (
	"github.com/wharflab/semvet/internal/log"
	"github.com/wharflab/semvet/semvet/logger"
	"github.com/wharflab/semvet/semvet/result"
	"github.com/wharflab/semvet/semvet/semver"
)

// Check evaluates a single candidate version against the given requirement.
func Check(constraint semver.Constraint, version semver.Version) result.Evaluation {
	return result.NewEvaluation(constraint, version)
}

// CheckAll evaluates each candidate version against the given requirement, preserving
// the order the versions were given in.
func CheckAll(constraint semver.Constraint, versions ...semver.Version) result.Evaluations {
	log.Debugf("checking %d version(s) against requirement %q", len(versions), constraint.String())

	evaluations := result.NewEvaluations()
	for _, v := range versions {
		evaluations.Add(Check(constraint, v))
	}
	return evaluations
}

// SetLogger sets the logger object used for all semvet logging calls.
func SetLogger(logger logger.Logger) {
	log.Log = logger
}
