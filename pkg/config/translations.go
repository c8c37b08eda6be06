package config

import (
	"strings"

	"github.com/fluffis/invoicehandler/pkg/errors"
	"github.com/pelletier/go-toml/v2/unstable"
	"gopkg.in/yaml.v3"
)

const translationsSection = "translations"

// RuleSpec is an uncompiled translation rule in declaration order.
type RuleSpec struct {
	Pattern     string
	Replacement string
}

// parseTranslations extracts the ordered translations section from a
// configuration document. A missing or empty section yields no specs and no
// error.
func parseTranslations(data []byte, format Format) ([]RuleSpec, error) {
	if format == FormatYAML {
		return parseYAMLTranslations(data)
	}
	return parseTOMLTranslations(data)
}

// parseTOMLTranslations walks the document expression by expression so that
// key order is preserved.
func parseTOMLTranslations(data []byte) ([]RuleSpec, error) {
	var p unstable.Parser
	p.Reset(data)

	var specs []RuleSpec
	inTranslations := false

	for p.NextExpression() {
		expr := p.Expression()

		switch expr.Kind {
		case unstable.Table:
			key := tomlKey(expr.Key())
			inTranslations = len(key) == 1 && key[0] == translationsSection
		case unstable.ArrayTable:
			key := tomlKey(expr.Key())
			if len(key) > 0 && key[0] == translationsSection {
				return nil, errors.New(errors.ErrConfigInvalid, "[[translations]] must be a table, not an array of tables")
			}
			inTranslations = false
		case unstable.KeyValue:
			if !inTranslations {
				continue
			}
			pattern := strings.Join(tomlKey(expr.Key()), ".")
			value := expr.Value()
			if value.Kind != unstable.String {
				return nil, errors.Newf(errors.ErrConfigInvalid,
					"replacement for pattern '%s' must be a string, got %s", pattern, value.Kind).
					WithDetail("pattern", pattern)
			}
			specs = append(specs, RuleSpec{Pattern: pattern, Replacement: string(value.Data)})
		}
	}

	if err := p.Error(); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse TOML")
	}

	return specs, nil
}

func tomlKey(it unstable.Iterator) []string {
	var parts []string
	for it.Next() {
		parts = append(parts, string(it.Node().Data))
	}
	return parts
}

// parseYAMLTranslations reads the top-level translations mapping through
// yaml.v3 nodes, which keep document order.
func parseYAMLTranslations(data []byte) ([]RuleSpec, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse YAML")
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errors.New(errors.ErrConfigInvalid, "configuration document must be a mapping")
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value != translationsSection {
			continue
		}

		section := root.Content[i+1]
		if isYAMLNull(section) {
			return nil, nil
		}
		if section.Kind != yaml.MappingNode {
			return nil, errors.Newf(errors.ErrConfigInvalid,
				"translations must be a mapping (line %d)", section.Line)
		}

		specs := make([]RuleSpec, 0, len(section.Content)/2)
		for j := 0; j+1 < len(section.Content); j += 2 {
			key, value := section.Content[j], section.Content[j+1]
			if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode || isYAMLNull(value) {
				return nil, errors.Newf(errors.ErrConfigInvalid,
					"translation on line %d must map a pattern to a string", key.Line).
					WithDetail("pattern", key.Value)
			}
			specs = append(specs, RuleSpec{Pattern: key.Value, Replacement: value.Value})
		}
		return specs, nil
	}

	return nil, nil
}

func isYAMLNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}
