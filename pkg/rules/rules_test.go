// Test Type: Unit Test
// Description: Tests for rule compilation, first-match substitution and loading

package rules_test

import (
	"errors"
	"testing"

	"github.com/fluffis/invoicehandler/pkg/config"
	herrors "github.com/fluffis/invoicehandler/pkg/errors"
	"github.com/fluffis/invoicehandler/pkg/rules"
	"github.com/fluffis/invoicehandler/pkg/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bothSyntaxes = []rules.Syntax{rules.SyntaxRE2, rules.SyntaxExtended}

func TestParseSyntax(t *testing.T) {
	tests := []struct {
		in   string
		want rules.Syntax
	}{
		{"", rules.SyntaxRE2},
		{"re2", rules.SyntaxRE2},
		{" RE2 ", rules.SyntaxRE2},
		{"extended", rules.SyntaxExtended},
		{"Extended", rules.SyntaxExtended},
	}
	for _, tt := range tests {
		got, err := rules.ParseSyntax(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := rules.ParseSyntax("pcre")
	assert.True(t, herrors.IsErrorCode(err, herrors.ErrConfigInvalid), "got %v", err)
}

func TestRuleApply(t *testing.T) {
	tests := []struct {
		name        string
		pattern     string
		replacement string
		input       string
		want        string
		matched     bool
	}{
		{"numbered_group", `invoice_(\d+)\.pdf`, "INV-$1.pdf", "invoice_42.pdf", "INV-42.pdf", true},
		{"whole_match", `.*`, "unmatched_$0", "readme.txt", "unmatched_readme.txt", true},
		{"braced_group", `^(\w+)-`, "${1}_", "scan-001.pdf", "scan_001.pdf", true},
		{"match_inside_name", `\d{4}`, "YEAR", "report_2024_final_2025.pdf", "report_YEAR_final_2025.pdf", true},
		{"no_match", `^invoice`, "x", "readme.txt", "readme.txt", false},
		{"identity", `invoice`, "invoice", "invoice.pdf", "invoice.pdf", true},
	}

	for _, syntax := range bothSyntaxes {
		for _, tt := range tests {
			t.Run(string(syntax)+"/"+tt.name, func(t *testing.T) {
				set, err := rules.Compile([]config.RuleSpec{testutil.Spec(tt.pattern, tt.replacement)}, syntax)
				require.NoError(t, err)

				got, matched, err := set.At(0).Apply(tt.input)
				require.NoError(t, err)
				assert.Equal(t, tt.matched, matched)
				assert.Equal(t, tt.want, got)
			})
		}
	}
}

func TestExtendedSyntaxFeatures(t *testing.T) {
	set, err := rules.Compile([]config.RuleSpec{
		testutil.Spec(`^(?!INV-)invoice_(?<num>\d+)`, "INV-${num}"),
	}, rules.SyntaxExtended)
	require.NoError(t, err)

	got, matched, err := set.At(0).Apply("invoice_7.pdf")
	require.NoError(t, err)
	assert.True(t, matched)
	assert.Equal(t, "INV-7.pdf", got)

	_, err = rules.Compile([]config.RuleSpec{testutil.Spec(`^(?!INV-)x`, "y")}, rules.SyntaxRE2)
	assert.True(t, herrors.IsErrorCode(err, herrors.ErrInvalidPattern), "lookahead is not re2: %v", err)
}

func TestCompile(t *testing.T) {
	t.Run("preserves_order", func(t *testing.T) {
		specs := []config.RuleSpec{
			testutil.Spec("z", "1"),
			testutil.Spec("a", "2"),
			testutil.Spec("m", "3"),
		}
		set, err := rules.Compile(specs, rules.SyntaxRE2)
		require.NoError(t, err)

		assert.Equal(t, 3, set.Len())
		assert.Equal(t, specs, set.Specs())
		assert.Equal(t, rules.SyntaxRE2, set.Syntax())
	})

	t.Run("empty_is_valid", func(t *testing.T) {
		set, err := rules.Compile(nil, rules.SyntaxRE2)
		require.NoError(t, err)
		assert.True(t, set.Empty())
		assert.Empty(t, set.Rules())
	})

	t.Run("fails_fast_naming_the_pattern", func(t *testing.T) {
		for _, syntax := range bothSyntaxes {
			_, err := rules.Compile([]config.RuleSpec{
				testutil.Spec("ok", "fine"),
				testutil.Spec("broken(", "x"),
				testutil.Spec("[also", "y"),
			}, syntax)
			require.Error(t, err)
			assert.True(t, herrors.IsErrorCode(err, herrors.ErrInvalidPattern))
			assert.Contains(t, err.Error(), "broken(")
			assert.Equal(t, "broken(", herrors.GetErrorDetails(err)["pattern"])
			assert.Equal(t, herrors.CategoryConfiguration, herrors.CategoryOf(err))
		}
	})

	t.Run("rules_copy_is_detached", func(t *testing.T) {
		set, err := rules.Compile([]config.RuleSpec{testutil.Spec("a", "b")}, rules.SyntaxRE2)
		require.NoError(t, err)

		copied := set.Rules()
		copied[0].Replacement = "changed"
		assert.Equal(t, "b", set.At(0).Replacement)
	})
}

func TestLoad(t *testing.T) {
	t.Run("logs_each_rule", func(t *testing.T) {
		logs := testutil.CaptureLogs(t)
		src := testutil.NewMockSource(
			testutil.Spec(`invoice_(\d+)\.pdf`, "INV-$1.pdf"),
			testutil.Spec(".*", "unmatched_$0"),
		)

		set, err := rules.Load(src, rules.SyntaxRE2)
		require.NoError(t, err)
		assert.Equal(t, 2, set.Len())

		assert.Equal(t, []string{"Loaded rule", "Loaded rule"}, logs.Messages(zerolog.InfoLevel))
		assert.Equal(t, `invoice_(\d+)\.pdf`, logs.Entries()[0]["pattern"])
	})

	t.Run("source_error_is_returned", func(t *testing.T) {
		sourceErr := herrors.New(herrors.ErrConfigParse, "bad file")
		src := &testutil.MockSource{RulesFunc: func() ([]config.RuleSpec, error) {
			return nil, sourceErr
		}}

		_, err := rules.Load(src, rules.SyntaxRE2)
		assert.True(t, errors.Is(err, sourceErr))
	})

	t.Run("invalid_pattern_logs_nothing", func(t *testing.T) {
		logs := testutil.CaptureLogs(t)
		src := testutil.NewMockSource(testutil.Spec("ok", "x"), testutil.Spec("(", "y"))

		_, err := rules.Load(src, rules.SyntaxRE2)
		assert.True(t, herrors.IsErrorCode(err, herrors.ErrInvalidPattern))
		assert.False(t, logs.Contains("Loaded rule"))
	})
}
