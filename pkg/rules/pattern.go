package rules

import (
	"regexp"
	"time"

	"github.com/dlclark/regexp2"
)

// MatchTimeout bounds a single extended match. Backtracking patterns can
// otherwise stall the event loop on a hostile filename.
const MatchTimeout = time.Second

// Pattern is a compiled rule pattern.
type Pattern interface {
	// String returns the source expression.
	String() string
	// Substitute expands template against the leftmost match in s and
	// returns s with only that match replaced. matched is false when the
	// pattern does not occur in s.
	Substitute(s, template string) (result string, matched bool, err error)
}

func compilePattern(expr string, syntax Syntax) (Pattern, error) {
	if syntax == SyntaxExtended {
		re, err := regexp2.Compile(expr, regexp2.None)
		if err != nil {
			return nil, err
		}
		re.MatchTimeout = MatchTimeout
		return &extendedPattern{re: re}, nil
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	return &re2Pattern{re: re}, nil
}

type re2Pattern struct {
	re *regexp.Regexp
}

func (p *re2Pattern) String() string { return p.re.String() }

func (p *re2Pattern) Substitute(s, template string) (string, bool, error) {
	loc := p.re.FindStringSubmatchIndex(s)
	if loc == nil {
		return s, false, nil
	}

	out := make([]byte, 0, len(s)+len(template))
	out = append(out, s[:loc[0]]...)
	out = p.re.ExpandString(out, template, s, loc)
	out = append(out, s[loc[1]:]...)
	return string(out), true, nil
}

type extendedPattern struct {
	re *regexp2.Regexp
}

func (p *extendedPattern) String() string { return p.re.String() }

func (p *extendedPattern) Substitute(s, template string) (string, bool, error) {
	matched, err := p.re.MatchString(s)
	if err != nil || !matched {
		return s, false, err
	}

	out, err := p.re.Replace(s, template, -1, 1)
	if err != nil {
		return s, true, err
	}
	return out, true, nil
}

// checkTemplate reports replacement templates the extended engine refuses.
// Go's regexp accepts any template, so there is nothing to check for re2.
func checkTemplate(p Pattern, template string) error {
	ext, ok := p.(*extendedPattern)
	if !ok {
		return nil
	}
	_, err := ext.re.Replace("", template, -1, 1)
	return err
}
