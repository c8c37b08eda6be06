package invoicehandler

import (
	"fmt"
	"path/filepath"

	"github.com/fluffis/invoicehandler/pkg/paths"
	"github.com/fluffis/invoicehandler/pkg/rename"
	"github.com/fluffis/invoicehandler/pkg/rules"
	"github.com/fluffis/invoicehandler/pkg/style"
	"github.com/spf13/cobra"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "check [filenames...]",
		Short:   MsgCheckShort,
		Long:    MsgCheckLong,
		Example: MsgCheckExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := opts.configSource()
			if err != nil {
				return err
			}

			settings, err := src.Settings()
			if err != nil {
				return err
			}

			syntax, err := rules.ParseSyntax(settings.PatternSyntax)
			if err != nil {
				return err
			}

			set, err := rules.Load(src, syntax)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			renderer := style.NewRenderer(isTerminal(out))

			fmt.Fprintln(out, renderer.RenderRules(src.Path(), string(syntax), ruleLines(set)))
			if len(args) == 0 {
				return nil
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, renderer.RenderResults(planNames(args, set)))
			return nil
		},
	}
}

func ruleLines(set rules.RuleSet) []style.RuleLine {
	specs := set.Specs()
	lines := make([]style.RuleLine, len(specs))
	for i, spec := range specs {
		lines[i] = style.RuleLine{Index: i, Pattern: spec.Pattern, Replacement: spec.Replacement}
	}
	return lines
}

// planNames runs the pure half of the rename engine over each name.
func planNames(names []string, set rules.RuleSet) []style.NameResult {
	results := make([]style.NameResult, 0, len(names))

	for _, arg := range names {
		name := filepath.Base(arg)
		res := style.NameResult{Name: name, Rule: -1}

		proposal, err := rename.Plan(name, set)
		switch {
		case err != nil:
			res.Outcome = style.OutcomeError
			res.Err = err
		case !proposal.Matched():
			res.Outcome = style.OutcomeNoMatch
		case !proposal.Changed():
			res.Outcome = style.OutcomeUnchanged
			res.NewName = proposal.NewName
			res.Rule = proposal.RuleIndex
		default:
			res.NewName = proposal.NewName
			res.Rule = proposal.RuleIndex
			res.Outcome = style.OutcomeRename
			if err := paths.ValidateFileName(proposal.NewName); err != nil {
				res.Outcome = style.OutcomeInvalid
				res.Err = err
			}
		}

		results = append(results, res)
	}

	return results
}
