// Package watcher turns filesystem notifications for the watched directory
// and the configuration file into one ordered stream of FileEvents.
//
// fsnotify delivers events on its own goroutine. They are pushed onto an
// unbounded FIFO Queue so a slow consumer never makes the producer drop
// events; the queue only grows.
package watcher

import (
	"github.com/fsnotify/fsnotify"
)

// Kind is the coarse type of a filesystem event.
type Kind int

const (
	Other Kind = iota
	Created
	Modified
	Removed
)

func (k Kind) String() string {
	switch k {
	case Created:
		return "created"
	case Modified:
		return "modified"
	case Removed:
		return "removed"
	default:
		return "other"
	}
}

// FileEvent is one notification with the absolute paths it concerns.
type FileEvent struct {
	Kind  Kind
	Paths []string
}

// kindOf maps an fsnotify operation onto a Kind. Attribute changes, such as
// a touch, count as Modified. Renames are Other.
func kindOf(op fsnotify.Op) Kind {
	switch {
	case op.Has(fsnotify.Create):
		return Created
	case op.Has(fsnotify.Write), op.Has(fsnotify.Chmod):
		return Modified
	case op.Has(fsnotify.Remove):
		return Removed
	default:
		return Other
	}
}
