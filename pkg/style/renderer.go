package style

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// RuleLine is one translation as listed by the check command.
type RuleLine struct {
	Index       int
	Pattern     string
	Replacement string
}

// NameResult is the planned outcome for one file name.
type NameResult struct {
	Name    string
	NewName string
	Rule    int
	Outcome Outcome
	Err     error
}

// Renderer defines the interface for rendering check output
type Renderer interface {
	RenderRules(source, syntax string, rules []RuleLine) string
	RenderResults(results []NameResult) string
	RenderError(err error) string
}

// NewRenderer returns a TerminalRenderer when styled is true and a
// PlainRenderer otherwise.
func NewRenderer(styled bool) Renderer {
	if styled {
		return NewTerminalRenderer()
	}
	return NewPlainRenderer()
}

// TerminalRenderer implements Renderer with rich terminal output
type TerminalRenderer struct {
	markup *MarkupParser
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{markup: NewMarkupParser()}
}

// RenderRules renders the translation list
func (r *TerminalRenderer) RenderRules(source, syntax string, rules []RuleLine) string {
	var result strings.Builder
	result.WriteString(r.markup.Render(fmt.Sprintf("[title]Translations[/title] [muted](%s syntax)[/muted]", syntax)) + "\n")
	result.WriteString(Indent(r.markup.Render("[path]"+source+"[/path]"), 1) + "\n\n")

	if len(rules) == 0 {
		result.WriteString(WarningIndicator + " " + MutedStyle.Render("No translations configured"))
		return result.String()
	}

	for _, rule := range rules {
		result.WriteString(fmt.Sprintf("%s  %s → %s\n",
			IndexStyle.Render(fmt.Sprintf("%3d", rule.Index+1)),
			PatternStyle.Render(rule.Pattern),
			ReplacementStyle.Render(rule.Replacement)))
	}

	return strings.TrimRight(result.String(), "\n")
}

// RenderResults renders the planned outcome of each name
func (r *TerminalRenderer) RenderResults(results []NameResult) string {
	var result strings.Builder

	for _, res := range results {
		label := OutcomeStyle(res.Outcome).Sprint(fmt.Sprintf("%-9s", res.Outcome))
		line := fmt.Sprintf("%s %s %s", OutcomeIndicator(res.Outcome), label, res.Name)

		switch res.Outcome {
		case OutcomeRename:
			line += fmt.Sprintf(" → %s %s",
				ReplacementStyle.Render(res.NewName),
				MutedStyle.Render(fmt.Sprintf("(rule %d)", res.Rule+1)))
		case OutcomeUnchanged:
			line += " " + MutedStyle.Render(fmt.Sprintf("(rule %d)", res.Rule+1))
		case OutcomeInvalid, OutcomeError:
			if res.Err != nil {
				line += " " + ErrorStyle.Render(res.Err.Error())
			}
		}

		result.WriteString(line + "\n")
	}

	return strings.TrimRight(result.String(), "\n")
}

// RenderError renders an error message
func (r *TerminalRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, pterm.Error.MessageStyle.Sprint(err.Error()))
}

// PlainRenderer implements Renderer with plain text output (no styling)
type PlainRenderer struct{}

// NewPlainRenderer creates a new plain text renderer
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{}
}

// RenderRules renders a plain translation list
func (r *PlainRenderer) RenderRules(source, syntax string, rules []RuleLine) string {
	var result strings.Builder
	result.WriteString(fmt.Sprintf("Translations (%s syntax) from %s:\n", syntax, source))

	if len(rules) == 0 {
		result.WriteString("  No translations configured")
		return result.String()
	}

	for _, rule := range rules {
		result.WriteString(fmt.Sprintf("  %d. %s -> %s\n", rule.Index+1, rule.Pattern, rule.Replacement))
	}

	return strings.TrimRight(result.String(), "\n")
}

// RenderResults renders plain outcomes
func (r *PlainRenderer) RenderResults(results []NameResult) string {
	var result strings.Builder

	for _, res := range results {
		switch res.Outcome {
		case OutcomeRename:
			result.WriteString(fmt.Sprintf("%s: %s -> %s (rule %d)\n", res.Outcome, res.Name, res.NewName, res.Rule+1))
		case OutcomeUnchanged:
			result.WriteString(fmt.Sprintf("%s: %s (rule %d)\n", res.Outcome, res.Name, res.Rule+1))
		case OutcomeInvalid, OutcomeError:
			result.WriteString(fmt.Sprintf("%s: %s: %v\n", res.Outcome, res.Name, res.Err))
		default:
			result.WriteString(fmt.Sprintf("%s: %s\n", res.Outcome, res.Name))
		}
	}

	return strings.TrimRight(result.String(), "\n")
}

// RenderError renders a plain error message
func (r *PlainRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %s", err.Error())
}
