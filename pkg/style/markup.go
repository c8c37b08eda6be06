package style

import (
	"regexp"

	"github.com/charmbracelet/lipgloss"
)

var tagPattern = regexp.MustCompile(`\[(\w+)\](.*?)\[/(\w+)\]`)

// MarkupParser renders [tag]text[/tag] markup with lipgloss styles.
type MarkupParser struct {
	styles map[string]lipgloss.Style
}

// NewMarkupParser creates a parser with the default tags.
func NewMarkupParser() *MarkupParser {
	return &MarkupParser{
		styles: map[string]lipgloss.Style{
			"title":       TitleStyle,
			"muted":       MutedStyle,
			"success":     SuccessStyle,
			"error":       ErrorStyle,
			"warning":     WarningStyle,
			"info":        InfoStyle,
			"path":        PathStyle,
			"pattern":     PatternStyle,
			"replacement": ReplacementStyle,
			"bold":        lipgloss.NewStyle().Bold(true),
		},
	}
}

// Render replaces every known tag pair with its styled content. Unknown or
// mismatched tags are left as they are.
func (p *MarkupParser) Render(text string) string {
	return tagPattern.ReplaceAllStringFunc(text, func(match string) string {
		m := tagPattern.FindStringSubmatch(match)
		if m[1] != m[3] {
			return match
		}
		style, ok := p.styles[m[1]]
		if !ok {
			return match
		}
		return style.Render(m[2])
	})
}

// Strip removes known tags without styling.
func (p *MarkupParser) Strip(text string) string {
	return tagPattern.ReplaceAllStringFunc(text, func(match string) string {
		m := tagPattern.FindStringSubmatch(match)
		if _, ok := p.styles[m[1]]; !ok || m[1] != m[3] {
			return match
		}
		return m[2]
	})
}

var defaultParser = NewMarkupParser()

// Render is a convenience function using the default parser.
func Render(text string) string {
	return defaultParser.Render(text)
}
