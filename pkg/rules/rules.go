package rules

import (
	"github.com/fluffis/invoicehandler/pkg/config"
	"github.com/fluffis/invoicehandler/pkg/errors"
	"github.com/fluffis/invoicehandler/pkg/logging"
)

// Rule is a compiled translation: the first match of Pattern in a filename is
// replaced by the expansion of Replacement.
type Rule struct {
	Pattern     Pattern
	Replacement string
}

// Apply substitutes the rule into name. matched reports whether the pattern
// occurs in name at all.
func (r Rule) Apply(name string) (string, bool, error) {
	return r.Pattern.Substitute(name, r.Replacement)
}

// RuleSet is an ordered, immutable collection of rules. The zero value is an
// empty set.
type RuleSet struct {
	rules  []Rule
	syntax Syntax
}

// Len returns the number of rules.
func (s RuleSet) Len() int { return len(s.rules) }

// Empty reports whether the set holds no rules.
func (s RuleSet) Empty() bool { return len(s.rules) == 0 }

// At returns the i-th rule in declaration order.
func (s RuleSet) At(i int) Rule { return s.rules[i] }

// Syntax returns the dialect the set was compiled with.
func (s RuleSet) Syntax() Syntax { return s.syntax }

// Rules returns a copy of the rules in declaration order.
func (s RuleSet) Rules() []Rule {
	out := make([]Rule, len(s.rules))
	copy(out, s.rules)
	return out
}

// Specs returns the uncompiled form of the set.
func (s RuleSet) Specs() []config.RuleSpec {
	specs := make([]config.RuleSpec, len(s.rules))
	for i, r := range s.rules {
		specs[i] = config.RuleSpec{Pattern: r.Pattern.String(), Replacement: r.Replacement}
	}
	return specs
}

// Compile builds a RuleSet from specs, keeping their order. It stops at the
// first pattern that does not compile and returns an ErrInvalidPattern error
// naming it; no partial set is ever returned.
func Compile(specs []config.RuleSpec, syntax Syntax) (RuleSet, error) {
	compiled := make([]Rule, 0, len(specs))

	for i, spec := range specs {
		pattern, err := compilePattern(spec.Pattern, syntax)
		if err != nil {
			return RuleSet{}, errors.Wrapf(err, errors.ErrInvalidPattern,
				"invalid regular expression '%s'", spec.Pattern).
				WithDetail("pattern", spec.Pattern).
				WithDetail("index", i)
		}

		if err := checkTemplate(pattern, spec.Replacement); err != nil {
			return RuleSet{}, errors.Wrapf(err, errors.ErrInvalidPattern,
				"invalid replacement '%s' for pattern '%s'", spec.Replacement, spec.Pattern).
				WithDetail("pattern", spec.Pattern).
				WithDetail("index", i)
		}

		compiled = append(compiled, Rule{Pattern: pattern, Replacement: spec.Replacement})
	}

	return RuleSet{rules: compiled, syntax: syntax}, nil
}

// Load reads the translations from src and compiles them. Every loaded rule is
// logged. An empty translations section is not an error; callers decide
// whether to warn about it.
func Load(src config.Source, syntax Syntax) (RuleSet, error) {
	logger := logging.GetLogger("rules")

	specs, err := src.Rules()
	if err != nil {
		return RuleSet{}, err
	}

	set, err := Compile(specs, syntax)
	if err != nil {
		return RuleSet{}, err
	}

	for i, r := range set.rules {
		logger.Info().
			Int("index", i).
			Str("pattern", r.Pattern.String()).
			Str("replacement", r.Replacement).
			Msg("Loaded rule")
	}

	return set, nil
}
