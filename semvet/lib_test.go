package semvet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wharflab/semvet/semvet/semver"
)

func TestCheckAll(t *testing.T) {
	constraint, err := semver.ParseConstraint("^1.2")
	require.NoError(t, err)

	var versions []semver.Version
	for _, raw := range []string{"1.2.3", "1.9.0", "1.1.0", "2.0.0"} {
		v, err := semver.Parse(raw)
		require.NoError(t, err)
		versions = append(versions, v)
	}

	evaluations := CheckAll(constraint, versions...)

	assert.Equal(t, 4, evaluations.Count())
	assert.Equal(t, 2, evaluations.SatisfiedCount())
	assert.Equal(t, 2, evaluations.UnsatisfiedCount())
	assert.False(t, evaluations.AllSatisfied())

	var order []string
	for e := range evaluations.Enumerate() {
		order = append(order, e.Version.String())
	}
	assert.Equal(t, []string{"1.2.3", "1.9.0", "1.1.0", "2.0.0"}, order)
}

func TestCheck(t *testing.T) {
	constraint, err := semver.ParseConstraint("~0.3")
	require.NoError(t, err)
	version, err := semver.Parse("0.3.7")
	require.NoError(t, err)

	evaluation := Check(constraint, version)

	assert.True(t, evaluation.Satisfied)
	assert.Equal(t, "0.3.7", evaluation.Version.String())
	assert.Equal(t, "~0.3", evaluation.Constraint.String())
}
