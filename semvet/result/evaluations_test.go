package result

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wharflab/semvet/semvet/semver"
)

func evaluationOf(t *testing.T, constraint, version string) Evaluation {
	t.Helper()
	c, err := semver.ParseConstraint(constraint)
	require.NoError(t, err)
	v, err := semver.Parse(version)
	require.NoError(t, err)
	return NewEvaluation(c, v)
}

func assertEvaluationOrder(t *testing.T, expected []Evaluation, actual []Evaluation) {
	var expectedStr []string
	for _, e := range expected {
		expectedStr = append(expectedStr, e.String())
	}

	var actualStr []string
	for _, e := range actual {
		actualStr = append(actualStr, e.String())
	}

	assert.Equal(t, expectedStr, actualStr)
}

func TestEvaluationsAdd(t *testing.T) {
	first := evaluationOf(t, "^1.2", "1.2.3")
	second := evaluationOf(t, "^1.2", "1.1.0")
	duplicate := evaluationOf(t, "^1.2", "1.2.3")

	evaluations := NewEvaluations(first, second, duplicate)

	assert.Equal(t, 2, evaluations.Count())
	assert.Equal(t, 1, evaluations.SatisfiedCount())
	assert.Equal(t, 1, evaluations.UnsatisfiedCount())
	assert.False(t, evaluations.AllSatisfied())
}

func TestEvaluationsPreserveInsertionOrder(t *testing.T) {
	first := evaluationOf(t, ">=1.0.0", "3.0.0")
	second := evaluationOf(t, ">=1.0.0", "1.0.0")
	third := evaluationOf(t, ">=1.0.0", "2.0.0")

	evaluations := NewEvaluations(first, second, third)

	var enumerated []Evaluation
	for e := range evaluations.Enumerate() {
		enumerated = append(enumerated, e)
	}

	assertEvaluationOrder(t, []Evaluation{first, second, third}, enumerated)
}

func TestEvaluationsSorted(t *testing.T) {
	first := evaluationOf(t, "~1.2.0", "1.2.0-alpha.1")
	second := evaluationOf(t, "~1.2.0", "1.2.0")
	third := evaluationOf(t, "~1.2.0", "1.2.10")
	fourth := evaluationOf(t, "~1.2.0", "1.3.0")

	// shuffled on purpose
	evaluations := NewEvaluations(third, first, fourth, second)

	assertEvaluationOrder(t, []Evaluation{first, second, third, fourth}, evaluations.Sorted())
}

func TestEvaluationsMerge(t *testing.T) {
	first := evaluationOf(t, "=1.0.0", "1.0.0")
	second := evaluationOf(t, "=1.0.0", "1.0.1")
	third := evaluationOf(t, "=1.0.0", "1.0.2")

	evaluations := NewEvaluations(first, second)

	other := NewEvaluations(second, third)
	evaluations.Merge(other)

	assert.Equal(t, 3, evaluations.Count())

	var enumerated []Evaluation
	for e := range evaluations.Enumerate() {
		enumerated = append(enumerated, e)
	}
	assertEvaluationOrder(t, []Evaluation{first, second, third}, enumerated)
}

func TestEvaluationsAllSatisfied(t *testing.T) {
	evaluations := NewEvaluations(
		evaluationOf(t, "^2", "2.0.0"),
		evaluationOf(t, "^2", "2.9.9"),
	)

	assert.True(t, evaluations.AllSatisfied())

	evaluations.Add(evaluationOf(t, "^2", "3.0.0"))

	assert.False(t, evaluations.AllSatisfied())
}

func TestEvaluationsAddToZeroValue(t *testing.T) {
	var evaluations Evaluations

	evaluations.Add(evaluationOf(t, "*", "0.1.0"))

	assert.Equal(t, 1, evaluations.Count())
	assert.True(t, evaluations.AllSatisfied())
}

func TestEvaluationsConstraintStrings(t *testing.T) {
	evaluations := NewEvaluations(
		evaluationOf(t, "^1.2", "1.2.3"),
		evaluationOf(t, ">=2, <3", "2.5.0"),
		evaluationOf(t, "^1.2", "1.9.0"),
	)

	assert.Equal(t, []string{">=2, <3", "^1.2"}, evaluations.ConstraintStrings())
}

func TestFingerprintID(t *testing.T) {
	first := evaluationOf(t, "^1.0", "1.0.0").Fingerprint()
	same := evaluationOf(t, "^1.0", "1.0.0").Fingerprint()
	different := evaluationOf(t, "^1.0", "1.0.1").Fingerprint()

	require.NotEmpty(t, first.ID())
	assert.Equal(t, first.ID(), same.ID())
	assert.NotEqual(t, first.ID(), different.ID())
}
