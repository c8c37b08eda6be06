package invoicehandler

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/fluffis/invoicehandler/pkg/filesystem"
	"github.com/fluffis/invoicehandler/pkg/lockwait"
	"github.com/fluffis/invoicehandler/pkg/logging"
	"github.com/fluffis/invoicehandler/pkg/paths"
	"github.com/fluffis/invoicehandler/pkg/rename"
	"github.com/fluffis/invoicehandler/pkg/router"
	"github.com/fluffis/invoicehandler/pkg/rules"
	"github.com/fluffis/invoicehandler/pkg/watcher"
	"github.com/spf13/cobra"
)

func newWatchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "watch",
		Short:   MsgWatchShort,
		Long:    MsgRootLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, opts)
		},
	}
}

// runWatch sets the pipeline up and runs it until SIGINT or SIGTERM. Every
// error returned here is a startup error.
func runWatch(cmd *cobra.Command, opts *rootOptions) error {
	logger := logging.GetLogger("cmd.watch")

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

	if err := paths.ValidateDirectory(settings.WatchDirectory); err != nil {
		return err
	}

	fs := filesystem.NewOS()
	guard := lockwait.New(fs, settings.MaxLockRetries, settings.LockRetryDelay)
	r := router.New(src.Path(), src, syntax, guard, rename.NewEngine(fs))

	if err := r.LoadRules(); err != nil {
		return err
	}

	w, err := watcher.New()
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()

	if err := w.AddDirectory(settings.WatchDirectory); err != nil {
		return err
	}
	if err := w.AddFile(src.Path()); err != nil {
		return err
	}

	logger.Info().
		Str("directory", settings.WatchDirectory).
		Str("config", src.Path()).
		Int("rules", r.Rules().Len()).
		Str("syntax", string(syntax)).
		Msg("Watching for new files")
	logger.Debug().Str("path", logging.LogFilePath()).Msg("Writing log file")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = r.Run(ctx, w)

	stats := r.Stats()
	logger.Info().
		Int("events", stats.Events).
		Int("renamed", stats.Renamed).
		Int("unchanged", stats.Unchanged).
		Int("noMatch", stats.NoMatch).
		Int("locked", stats.Locked).
		Int("failed", stats.Failed).
		Int("reloads", stats.Reloads).
		Int("reloadFailures", stats.ReloadFailures).
		Msg("Stopped watching")

	return err
}
