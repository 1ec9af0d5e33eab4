package semveterr

var (
	// ErrUnsatisfiedVersions indicates that one or more of the evaluated versions
	// do not satisfy the given requirement.
	ErrUnsatisfiedVersions = NewExpectedErr("one or more versions do not satisfy the requirement")
)
