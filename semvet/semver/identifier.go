package semver

import (
	"fmt"
	"strings"
)

// identifier helpers shared by the pre-release and build metadata components.
// Both are dot-separated sequences of [0-9A-Za-z-] identifiers; only
// pre-release identifiers reject leading zeros on numeric values.

func validateIdentifier(ident string, allowLeadingZero bool) error {
	if ident == "" {
		return fmt.Errorf("empty identifier")
	}
	for i := 0; i < len(ident); i++ {
		if !isIdentChar(ident[i]) {
			return fmt.Errorf("illegal character %q in identifier %q", ident[i], ident)
		}
	}
	if !allowLeadingZero && len(ident) > 1 && ident[0] == '0' && isNumeric(ident) {
		return fmt.Errorf("numeric identifier %q has a leading zero", ident)
	}
	return nil
}

func isIdentChar(c byte) bool {
	return c >= '0' && c <= '9' ||
		c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c == '-'
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// compareIdentifier orders two identifiers of the same dot position. Numeric
// identifiers compare as numbers and always rank below alphanumeric ones.
// Since validated numeric identifiers carry no leading zeros, the longer
// digit string is the larger number and equal lengths compare bytewise.
func compareIdentifier(a, b string) int {
	aNum, bNum := isNumeric(a), isNumeric(b)
	switch {
	case aNum && bNum:
		if len(a) != len(b) {
			if len(a) < len(b) {
				return -1
			}
			return 1
		}
		return strings.Compare(a, b)
	case aNum:
		return -1
	case bNum:
		return 1
	}
	return strings.Compare(a, b)
}
