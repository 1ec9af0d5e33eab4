package cmd

import (
	"fmt"
	"os"
	"strings"
)

// stderrPrintLnf writes a formatted message to stderr, appending a trailing
// newline when the message lacks one.
func stderrPrintLnf(message string, args ...interface{}) error {
	if !strings.HasSuffix(message, "\n") {
		message += "\n"
	}
	_, err := fmt.Fprintf(os.Stderr, message, args...)
	return err
}
