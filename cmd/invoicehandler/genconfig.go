package invoicehandler

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fluffis/invoicehandler/pkg/config"
	"github.com/fluffis/invoicehandler/pkg/errors"
	"github.com/fluffis/invoicehandler/pkg/filesystem"
	"github.com/fluffis/invoicehandler/pkg/logging"
	"github.com/fluffis/invoicehandler/pkg/paths"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newGenConfigCmd(opts *rootOptions) *cobra.Command {
	var (
		write  bool
		force  bool
		format string
	)

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := paths.ConfigPath(opts.configPath)
			if err != nil {
				return err
			}

			f := config.FormatFor(target)
			if format != "" {
				switch config.Format(strings.ToLower(format)) {
				case config.FormatTOML:
					f = config.FormatTOML
				case config.FormatYAML:
					f = config.FormatYAML
				default:
					return errors.Newf(errors.ErrInvalidInput, MsgErrUnknownFormat, format)
				}
			}

			sample := config.SampleConfig(f)
			if !write {
				_, err := fmt.Fprint(cmd.OutOrStdout(), sample)
				return err
			}

			return writeSample(filesystem.NewOS(), cmd.OutOrStdout(), target, sample, force)
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)
	cmd.Flags().StringVar(&format, "format", "", MsgFlagFormat)

	return cmd
}

// writeSample writes sample to target on fs, creating parent directories.
// An existing file is only replaced when force is set.
func writeSample(fs afero.Fs, w io.Writer, target, sample string, force bool) error {
	if _, err := fs.Stat(target); err == nil && !force {
		return errors.Newf(errors.ErrInvalidInput, MsgErrConfigExists, target).
			WithDetail("path", target)
	}

	if err := fs.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, MsgErrWriteConfig, target)
	}
	if err := afero.WriteFile(fs, target, []byte(sample), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, MsgErrWriteConfig, target)
	}

	logger := logging.GetLogger("cmd.genconfig")
	logger.Info().Str("path", target).Msg("Sample configuration written")
	_, err := fmt.Fprintf(w, MsgConfigWritten, target)
	return err
}
