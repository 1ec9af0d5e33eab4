package file

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"
)

// GetWriter returns the destination for a rendered report: the default writer
// when no output file was requested, otherwise a truncated file at the given
// path. The returned closer must be invoked once the report has been written.
func GetWriter(fs afero.Fs, defaultWriter io.Writer, outputFile string) (io.Writer, func() error, error) {
	nop := func() error { return nil }

	path := strings.TrimSpace(outputFile)
	if path == "" {
		return defaultWriter, nop, nil
	}

	reportFile, err := fs.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, nop, fmt.Errorf("unable to create report file: %w", err)
	}

	return reportFile, reportFile.Close, nil
}
