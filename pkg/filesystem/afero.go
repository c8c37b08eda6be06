package filesystem

import (
	"os"

	"github.com/spf13/afero"
)

// Exists reports whether path names an existing regular file. Directories
// and unreadable entries count as absent.
func Exists(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// ProbeReadWrite opens path for reading and writing and closes it again at
// once. A nil error means no other process holds the file exclusively.
func ProbeReadWrite(fs afero.Fs, path string) error {
	f, err := fs.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return err
	}
	return f.Close()
}

// Rename moves oldpath to newpath.
func Rename(fs afero.Fs, oldpath, newpath string) error {
	return fs.Rename(oldpath, newpath)
}
