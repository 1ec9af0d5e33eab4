package semver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		version  string
		expected Version
	}{
		{version: "0.0.0", expected: New(0, 0, 0)},
		{version: "1.2.3", expected: New(1, 2, 3)},
		{version: "10.20.30", expected: New(10, 20, 30)},
		{version: "18446744073709551615.0.0", expected: New(18446744073709551615, 0, 0)},
		{version: "1.2.3-alpha.1", expected: Version{Major: 1, Minor: 2, Patch: 3, Pre: mustPre(t, "alpha.1")}},
		{version: "1.2.3-0a.7", expected: Version{Major: 1, Minor: 2, Patch: 3, Pre: mustPre(t, "0a.7")}},
		{version: "1.2.3--a", expected: Version{Major: 1, Minor: 2, Patch: 3, Pre: mustPre(t, "-a")}},
		{version: "1.2.3+build.42", expected: Version{Major: 1, Minor: 2, Patch: 3, Build: mustBuild(t, "build.42")}},
		{version: "1.2.3+001", expected: Version{Major: 1, Minor: 2, Patch: 3, Build: mustBuild(t, "001")}},
		{version: "1.2.3-rc.1+build.42", expected: Version{Major: 1, Minor: 2, Patch: 3, Pre: mustPre(t, "rc.1"), Build: mustBuild(t, "build.42")}},
	}

	for _, test := range tests {
		t.Run(test.version, func(t *testing.T) {
			actual, err := Parse(test.version)
			require.NoError(t, err)
			assert.Equal(t, test.expected, actual)
			assert.Equal(t, test.version, actual.String(), "expected parse and print to round-trip")
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		version string
	}{
		{version: ""},
		{version: "1"},
		{version: "1.2"},
		{version: "1.2.3.4"},
		{version: "v1.2.3"},
		{version: "01.2.3"},
		{version: "1.02.3"},
		{version: "1.2.03"},
		{version: "1.2.3-"},
		{version: "1.2.3+"},
		{version: "1.2.-3"},
		{version: "1.2.3-alpha..1"},
		{version: "1.2.3-alpha.01"},
		{version: "1.2.3-alpha_1"},
		{version: "1.2.3+meta..2"},
		{version: "1.2.3+meta!"},
		{version: " 1.2.3"},
		{version: "1.2.3 "},
		{version: "18446744073709551616.0.0"},
		{version: "*"},
		{version: "1.x.0"},
	}

	for _, test := range tests {
		t.Run(test.version, func(t *testing.T) {
			_, err := Parse(test.version)
			assert.Error(t, err, "expected an error for version '%s'", test.version)
		})
	}
}

func TestVersionCompare(t *testing.T) {
	// the semver.org precedence chain, lowest to highest
	ordered := []string{
		"1.0.0-alpha",
		"1.0.0-alpha.1",
		"1.0.0-alpha.beta",
		"1.0.0-beta",
		"1.0.0-beta.2",
		"1.0.0-beta.11",
		"1.0.0-rc.1",
		"1.0.0",
		"1.0.1",
		"1.1.0",
		"2.0.0",
		"2.1.0",
		"2.1.1",
	}

	for i, lowRaw := range ordered {
		low := MustParse(lowRaw)
		assert.Equal(t, 0, low.Compare(low), "expected '%s' to equal itself", lowRaw)

		for _, highRaw := range ordered[i+1:] {
			high := MustParse(highRaw)
			assert.Equal(t, -1, low.Compare(high), "expected '%s' < '%s'", lowRaw, highRaw)
			assert.Equal(t, 1, high.Compare(low), "expected '%s' > '%s'", highRaw, lowRaw)
		}
	}
}

func TestVersionEqualIgnoresBuildMetadata(t *testing.T) {
	a := MustParse("1.2.3+build.1")
	b := MustParse("1.2.3+build.2")
	c := MustParse("1.2.3")

	assert.True(t, a.Equal(b))
	assert.True(t, a.Equal(c))
	assert.Equal(t, 0, a.Compare(b))
	assert.NotEqual(t, a.String(), b.String(), "build metadata must still print")
}

func TestIsPrerelease(t *testing.T) {
	assert.True(t, MustParse("1.2.3-rc.1").IsPrerelease())
	assert.False(t, MustParse("1.2.3").IsPrerelease())
	assert.False(t, MustParse("1.2.3+build").IsPrerelease())
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() {
		MustParse("not-a-version")
	})
	assert.NotPanics(t, func() {
		MustParse("1.0.0")
	})
}

func mustPre(t *testing.T, raw string) Prerelease {
	t.Helper()
	p, err := NewPrerelease(raw)
	require.NoError(t, err)
	return p
}

func mustBuild(t *testing.T, raw string) BuildMetadata {
	t.Helper()
	b, err := NewBuildMetadata(raw)
	require.NoError(t, err)
	return b
}
