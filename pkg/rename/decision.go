package rename

import (
	"fmt"
)

// Kind is the outcome of applying a rule set to one file.
type Kind int

const (
	// NoSuchFile means the file vanished before it could be processed.
	NoSuchFile Kind = iota
	// NoMatch means no rule pattern occurs in the file name.
	NoMatch
	// Unchanged means the first matching rule produced the current name.
	Unchanged
	// Renamed means the file was moved to its new name.
	Renamed
	// RenameFailed means the move was refused or failed.
	RenameFailed
)

func (k Kind) String() string {
	switch k {
	case NoSuchFile:
		return "no-such-file"
	case NoMatch:
		return "no-match"
	case Unchanged:
		return "unchanged"
	case Renamed:
		return "renamed"
	case RenameFailed:
		return "rename-failed"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Decision is the result of Engine.Apply.
type Decision struct {
	Kind Kind
	// OldPath is the path that was processed.
	OldPath string
	// NewPath is the computed target; empty unless a rule matched.
	NewPath string
	// RuleIndex is the index of the winning rule, or -1.
	RuleIndex int
	// Err is set for NoSuchFile and RenameFailed.
	Err error
}

// Proposal is the pure outcome of scanning a name against a rule set.
type Proposal struct {
	Name      string
	NewName   string
	RuleIndex int
}

// Matched reports whether any rule matched.
func (p Proposal) Matched() bool { return p.RuleIndex >= 0 }

// Changed reports whether the winning rule produced a different name.
func (p Proposal) Changed() bool { return p.Matched() && p.NewName != p.Name }
