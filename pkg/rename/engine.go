package rename

import (
	"path/filepath"

	"github.com/fluffis/invoicehandler/pkg/errors"
	"github.com/fluffis/invoicehandler/pkg/filesystem"
	"github.com/fluffis/invoicehandler/pkg/logging"
	"github.com/fluffis/invoicehandler/pkg/paths"
	"github.com/fluffis/invoicehandler/pkg/rules"
	"github.com/spf13/afero"
)

// Plan scans set in order and returns the proposal of the first rule whose
// pattern occurs in name. It touches nothing on disk.
func Plan(name string, set rules.RuleSet) (Proposal, error) {
	for i := 0; i < set.Len(); i++ {
		rule := set.At(i)

		newName, matched, err := rule.Apply(name)
		if err != nil {
			return Proposal{Name: name, RuleIndex: -1}, errors.Wrapf(err, errors.ErrRenameFailed,
				"failed to evaluate pattern '%s' against '%s'", rule.Pattern.String(), name).
				WithDetail("pattern", rule.Pattern.String())
		}
		if matched {
			return Proposal{Name: name, NewName: newName, RuleIndex: i}, nil
		}
	}

	return Proposal{Name: name, RuleIndex: -1}, nil
}

// Engine applies rule sets to files on a filesystem.
type Engine struct {
	fs afero.Fs
}

// NewEngine creates an engine operating on fs.
func NewEngine(fs afero.Fs) *Engine {
	return &Engine{fs: fs}
}

// Exists reports whether path is still a regular file.
func (e *Engine) Exists(path string) bool {
	return filesystem.Exists(e.fs, path)
}

// Apply renames the file at path according to the first matching rule in
// set. The rule set is only read.
func (e *Engine) Apply(path string, set rules.RuleSet) Decision {
	logger := logging.GetLogger("rename")

	if !e.Exists(path) {
		return Decision{
			Kind:      NoSuchFile,
			OldPath:   path,
			RuleIndex: -1,
			Err:       errors.Newf(errors.ErrFileNotFound, "'%s' no longer exists", path).WithDetail("path", path),
		}
	}

	dir, name := filepath.Split(path)
	proposal, err := Plan(name, set)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Failed to evaluate rules")
		return Decision{Kind: RenameFailed, OldPath: path, RuleIndex: -1, Err: err}
	}

	if !proposal.Matched() {
		logger.Debug().Str("path", path).Msg("No rule matched")
		return Decision{Kind: NoMatch, OldPath: path, RuleIndex: -1}
	}

	newPath := filepath.Join(dir, proposal.NewName)
	decision := Decision{OldPath: path, NewPath: newPath, RuleIndex: proposal.RuleIndex}

	if !proposal.Changed() {
		logger.Debug().
			Str("path", path).
			Int("rule", proposal.RuleIndex).
			Msg("Rule matched, name unchanged")
		decision.Kind = Unchanged
		return decision
	}

	if err := e.move(path, newPath, proposal.NewName); err != nil {
		logger.Error().
			Err(err).
			Str("from", name).
			Str("to", proposal.NewName).
			Msg("Failed to rename file")
		decision.Kind = RenameFailed
		decision.Err = err
		return decision
	}

	logger.Info().
		Str("from", name).
		Str("to", proposal.NewName).
		Int("rule", proposal.RuleIndex).
		Msg("Renamed file")
	decision.Kind = Renamed
	return decision
}

func (e *Engine) move(oldPath, newPath, newName string) error {
	if err := paths.ValidateFileName(newName); err != nil {
		return errors.Wrapf(err, errors.ErrInvalidTarget,
			"rule produced an invalid file name '%s'", newName).
			WithDetail("from", oldPath)
	}

	if _, err := e.fs.Stat(newPath); err == nil {
		return errors.Newf(errors.ErrRenameCollision,
			"'%s' already exists", newPath).
			WithDetail("from", oldPath).
			WithDetail("to", newPath)
	}

	if err := filesystem.Rename(e.fs, oldPath, newPath); err != nil {
		return errors.Wrapf(err, errors.ErrRenameFailed,
			"failed to rename '%s' to '%s'", oldPath, newPath).
			WithDetail("from", oldPath).
			WithDetail("to", newPath)
	}

	return nil
}
