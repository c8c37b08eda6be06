// Package rules holds the ordered translation rules that decide how files in
// the watched directory are renamed.
//
// # Rules
//
// A rule pairs a regular expression with a replacement template. Rules keep
// the order in which they were declared in the configuration:
//
//	[translations]
//	'invoice_(\d+)\.pdf' = 'INV-$1.pdf'
//	'.*' = 'unmatched_$0'
//
// The first rule whose pattern matches anywhere in a filename wins. Only the
// leftmost match is substituted; the rest of the name is kept as is.
// Templates reference groups as $1, ${1}, ${name} and $0 for the whole match.
//
// # Syntax
//
// Patterns compile with Go's regexp package by default (SyntaxRE2). The
// extended syntax uses github.com/dlclark/regexp2 and supports lookaround and
// backreferences. Extended patterns run with a match timeout.
//
// # Rule sets
//
// A RuleSet is an immutable snapshot. Reloading builds a new one and the
// owner swaps it in; a failed load never produces a partial set.
package rules
