package file

import (
	"github.com/spf13/afero"
)

// Exists returns true only when the given path is an existing regular file
// (a directory at the path does not count).
func Exists(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
