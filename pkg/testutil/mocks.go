package testutil

import (
	"github.com/fluffis/invoicehandler/pkg/config"
)

// MockSource is a config.Source whose answers come from functions or, when
// those are nil, from the Specs and Config fields.
type MockSource struct {
	SettingsFunc func() (config.Settings, error)
	RulesFunc    func() ([]config.RuleSpec, error)

	Config config.Settings
	Specs  []config.RuleSpec

	RulesCalls int
}

// NewMockSource returns a source that serves the given translations in order.
func NewMockSource(specs ...config.RuleSpec) *MockSource {
	return &MockSource{Specs: specs}
}

// Settings implements config.Source.
func (m *MockSource) Settings() (config.Settings, error) {
	if m.SettingsFunc != nil {
		return m.SettingsFunc()
	}
	return m.Config, nil
}

// Rules implements config.Source.
func (m *MockSource) Rules() ([]config.RuleSpec, error) {
	m.RulesCalls++
	if m.RulesFunc != nil {
		return m.RulesFunc()
	}
	out := make([]config.RuleSpec, len(m.Specs))
	copy(out, m.Specs)
	return out, nil
}

// Spec is shorthand for a config.RuleSpec literal.
func Spec(pattern, replacement string) config.RuleSpec {
	return config.RuleSpec{Pattern: pattern, Replacement: replacement}
}
