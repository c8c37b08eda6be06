package rules

import (
	"strings"

	"github.com/fluffis/invoicehandler/pkg/errors"
)

// Syntax selects the regular expression dialect patterns are compiled with.
type Syntax string

const (
	SyntaxRE2      Syntax = "re2"
	SyntaxExtended Syntax = "extended"
)

// ParseSyntax converts a pattern_syntax setting into a Syntax. An empty value
// selects SyntaxRE2.
func ParseSyntax(s string) (Syntax, error) {
	switch Syntax(strings.ToLower(strings.TrimSpace(s))) {
	case "", SyntaxRE2:
		return SyntaxRE2, nil
	case SyntaxExtended:
		return SyntaxExtended, nil
	default:
		return "", errors.Newf(errors.ErrConfigInvalid,
			"unknown pattern_syntax '%s' (expected 're2' or 'extended')", s).
			WithDetail("pattern_syntax", s)
	}
}
