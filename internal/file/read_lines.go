package file

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
)

// ReadLines returns the trimmed, non-empty lines of the file at the given path, in order.
// Lines beginning with '#' are treated as comments and skipped.
func ReadLines(fs afero.Fs, path string) ([]string, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open %q: %w", path, err)
	}
	defer f.Close()

	return ReadLinesFrom(f)
}

// ReadLinesFrom behaves like ReadLines for an arbitrary reader (e.g. stdin).
func ReadLinesFrom(reader io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("unable to read lines: %w", err)
	}
	return lines, nil
}
