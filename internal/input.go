package internal

import (
	"fmt"
	"os"
)

// IsPipedInput returns true when stdin is not a character device, meaning the
// user **may** be piping candidate versions in.
func IsPipedInput() (bool, error) {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false, fmt.Errorf("unable to stat stdin: %w", err)
	}

	return stat.Mode()&os.ModeCharDevice == 0, nil
}
