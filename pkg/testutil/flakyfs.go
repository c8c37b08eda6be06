package testutil

import (
	"os"
	"sync"

	"github.com/spf13/afero"
)

// ErrLocked is the cause FlakyFs reports for a simulated locked file.
var ErrLocked = os.ErrPermission

// RenameCall records one Rename on a FlakyFs.
type RenameCall struct {
	Old string
	New string
}

// FlakyFs wraps an afero.Fs. Read-write opens fail with ErrLocked until
// LockedOpens of them have been refused, and every rename is recorded.
type FlakyFs struct {
	afero.Fs

	// LockedOpens is the number of read-write opens to refuse. A negative
	// value refuses all of them.
	LockedOpens int
	// RenameErr, if set, is returned by every Rename.
	RenameErr error

	mu      sync.Mutex
	rwOpens int
	renames []RenameCall
}

// NewFlakyFs wraps fs with no failures configured.
func NewFlakyFs(fs afero.Fs) *FlakyFs {
	return &FlakyFs{Fs: fs}
}

// OpenFile implements afero.Fs.
func (f *FlakyFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if flag&os.O_RDWR != 0 {
		f.mu.Lock()
		f.rwOpens++
		locked := f.LockedOpens < 0 || f.rwOpens <= f.LockedOpens
		f.mu.Unlock()

		if locked {
			return nil, &os.PathError{Op: "open", Path: name, Err: ErrLocked}
		}
	}
	return f.Fs.OpenFile(name, flag, perm)
}

// Rename implements afero.Fs.
func (f *FlakyFs) Rename(oldname, newname string) error {
	f.mu.Lock()
	f.renames = append(f.renames, RenameCall{Old: oldname, New: newname})
	f.mu.Unlock()

	if f.RenameErr != nil {
		return f.RenameErr
	}
	return f.Fs.Rename(oldname, newname)
}

// ReadWriteOpens returns how many read-write opens were attempted.
func (f *FlakyFs) ReadWriteOpens() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rwOpens
}

// Renames returns the recorded renames in call order.
func (f *FlakyFs) Renames() []RenameCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]RenameCall, len(f.renames))
	copy(out, f.renames)
	return out
}
