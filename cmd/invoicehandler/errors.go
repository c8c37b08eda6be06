package invoicehandler

import (
	"fmt"
	"io"

	"github.com/fluffis/invoicehandler/pkg/errors"
	"github.com/fluffis/invoicehandler/pkg/style"
)

// printError writes a startup error to w, in red on a terminal.
func printError(w io.Writer, err error) {
	msg := fmt.Sprintf("Error: %v", err)
	if isTerminal(w) {
		msg = style.ErrorStyle.Render(msg)
	}
	fmt.Fprintln(w, msg)

	if hint := hintFor(err); hint != "" {
		fmt.Fprintln(w, hint)
	}
}

// hintFor suggests a next step for common startup failures.
func hintFor(err error) string {
	switch errors.GetErrorCode(err) {
	case errors.ErrConfigNotFound:
		return "Run 'invoicehandler genconfig --write' to create a sample configuration."
	case errors.ErrInvalidDirectory:
		return "Check 'watch_directory' in the [settings] section."
	case errors.ErrInvalidPattern:
		return "Fix the pattern named above in the [translations] section."
	}

	switch errors.CategoryOf(err) {
	case errors.CategoryConfiguration:
		return "Check the configuration file, or run 'invoicehandler check' to see how it is read."
	case errors.CategoryWatcherSetup:
		return "Check that the watched directories exist and the inotify watch limit is not exhausted."
	default:
		return ""
	}
}
