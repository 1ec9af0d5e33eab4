package semver

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name       string
	version    string
	constraint string
	satisfied  bool
}

func (c *testCase) tName() string {
	if c.name != "" {
		return c.name
	}

	return fmt.Sprintf("ver='%s'const='%s'", c.version, c.constraint)
}

func (c *testCase) assertConstraintSatisfied(t *testing.T) {
	t.Helper()

	constraint, err := ParseConstraint(c.constraint)
	require.NoError(t, err, "unexpected error from ParseConstraint: %+v", err)

	version, err := Parse(c.version)
	require.NoError(t, err, "unexpected error from Parse: %+v", err)

	assert.Equal(t, c.satisfied, constraint.Satisfied(version), "unexpected constraint check result: ver='%s' const='%s'", c.version, c.constraint)
}

func u64p(n uint64) *uint64 {
	return &n
}
