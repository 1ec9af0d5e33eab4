package semver

const (
	// Exact matches only versions that agree with every specified field
	// (=1.2.3, =1.2, =1).
	Exact Op = iota
	// Greater matches versions strictly above the comparator (>1.2.3).
	Greater
	// GreaterEq matches versions equal to or above the comparator (>=1.2.3).
	GreaterEq
	// Less matches versions strictly below the comparator (<1.2.3).
	Less
	// LessEq matches versions equal to or below the comparator (<=1.2.3).
	LessEq
	// Tilde lets the rightmost specified field float upward (~1.2.3).
	Tilde
	// Caret admits any change that keeps the leftmost non-zero field fixed
	// (^1.2.3). Comparators written without an operator default to it.
	Caret
	// Wildcard matches any value in the starred position (1.2.*).
	Wildcard
)

// Op is the comparison operator of a single comparator. The set is closed:
// every comparator carries exactly one of the constants above.
type Op int

var opStr = []string{
	"=",
	">",
	">=",
	"<",
	"<=",
	"~",
	"^",
	"*",
}

func (o Op) String() string {
	if int(o) >= len(opStr) || o < 0 {
		return "?"
	}
	return opStr[o]
}
