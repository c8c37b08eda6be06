package style

import (
	"github.com/pterm/pterm"
)

// Outcome is what would happen to a file, as shown by the check command.
type Outcome string

const (
	OutcomeRename    Outcome = "rename"    // A rule would give the file a new name
	OutcomeUnchanged Outcome = "unchanged" // A rule matched but keeps the name
	OutcomeNoMatch   Outcome = "no-match"  // No rule matched
	OutcomeInvalid   Outcome = "invalid"   // The new name cannot be used
	OutcomeError     Outcome = "error"     // The rules could not be evaluated
)

// OutcomeStyle returns the pterm style for an outcome label.
func OutcomeStyle(o Outcome) *pterm.Style {
	switch o {
	case OutcomeRename:
		return pterm.NewStyle(pterm.FgGreen, pterm.Bold)
	case OutcomeUnchanged:
		return pterm.NewStyle(pterm.FgCyan)
	case OutcomeInvalid, OutcomeError:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// OutcomeIndicator returns the leading symbol for an outcome.
func OutcomeIndicator(o Outcome) string {
	switch o {
	case OutcomeRename:
		return SuccessIndicator
	case OutcomeUnchanged:
		return InfoIndicator
	case OutcomeInvalid, OutcomeError:
		return ErrorIndicator
	default:
		return PendingIndicator
	}
}
