package paths

import (
	"os"
	"strings"

	"github.com/fluffis/invoicehandler/pkg/errors"
)

// ValidateFileName ensures a computed file name can be used as a rename
// target inside the same directory. Names must:
// - Not be empty
// - Not contain path separators or null bytes
// - Not be reserved names (. or ..)
func ValidateFileName(name string) error {
	if name == "" {
		return errors.New(errors.ErrInvalidTarget, "file name cannot be empty")
	}

	if strings.ContainsRune(name, '/') || strings.ContainsRune(name, os.PathSeparator) {
		return errors.Newf(errors.ErrInvalidTarget, "file name %q cannot contain path separators", name)
	}

	if strings.Contains(name, "\x00") {
		return errors.Newf(errors.ErrInvalidTarget, "file name %q contains null bytes", name)
	}

	if name == "." || name == ".." {
		return errors.New(errors.ErrInvalidTarget, "file name cannot be '.' or '..'")
	}

	return nil
}

// ValidateDirectory checks that path exists and is a directory.
func ValidateDirectory(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidDirectory, "'%s' is not a valid directory", path).
			WithDetail("path", path)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrInvalidDirectory, "'%s' is not a valid directory", path).
			WithDetail("path", path)
	}
	return nil
}
