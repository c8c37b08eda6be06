package router

import (
	"context"
	stderrors "errors"

	"github.com/fluffis/invoicehandler/pkg/config"
	"github.com/fluffis/invoicehandler/pkg/errors"
	"github.com/fluffis/invoicehandler/pkg/lockwait"
	"github.com/fluffis/invoicehandler/pkg/logging"
	"github.com/fluffis/invoicehandler/pkg/paths"
	"github.com/fluffis/invoicehandler/pkg/rename"
	"github.com/fluffis/invoicehandler/pkg/rules"
	"github.com/fluffis/invoicehandler/pkg/watcher"
)

// EventSource yields events in arrival order. It returns watcher.ErrClosed
// when no more events will come.
type EventSource interface {
	Next(ctx context.Context) (watcher.FileEvent, error)
}

// Guard waits for a candidate file to become available.
type Guard interface {
	Wait(path string) lockwait.Result
}

// Engine renames candidate files.
type Engine interface {
	Exists(path string) bool
	Apply(path string, set rules.RuleSet) rename.Decision
}

// Router classifies event paths and dispatches them.
type Router struct {
	configPath string
	source     config.Source
	syntax     rules.Syntax
	guard      Guard
	engine     Engine

	rules rules.RuleSet
	stats Stats
}

// New creates a router with an empty rule set. configPath is the
// configuration file whose events trigger a reload from source.
func New(configPath string, source config.Source, syntax rules.Syntax, guard Guard, engine Engine) *Router {
	return &Router{
		configPath: configPath,
		source:     source,
		syntax:     syntax,
		guard:      guard,
		engine:     engine,
	}
}

// LoadRules performs the initial load. Unlike a reload, its error is
// returned so that startup can fail.
func (r *Router) LoadRules() error {
	set, err := rules.Load(r.source, r.syntax)
	if err != nil {
		return err
	}
	r.install(set)
	return nil
}

// Rules returns the rule set currently in force.
func (r *Router) Rules() rules.RuleSet {
	return r.rules
}

// Stats returns the counters collected so far.
func (r *Router) Stats() Stats {
	return r.stats
}

// Run handles events from src one at a time until ctx is done or src is
// closed. Cancellation is only noticed between events; a lock wait in
// progress always runs to completion.
func (r *Router) Run(ctx context.Context, src EventSource) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		event, err := src.Next(ctx)
		if err != nil {
			if stderrors.Is(err, watcher.ErrClosed) || ctx.Err() != nil {
				return nil
			}
			return err
		}

		r.Handle(event)
	}
}

// Handle processes one event. Only Created and Modified events are acted on.
// Each path is classified and handled on its own.
func (r *Router) Handle(event watcher.FileEvent) {
	logger := logging.GetLogger("router")
	r.stats.Events++

	if event.Kind != watcher.Created && event.Kind != watcher.Modified {
		r.stats.Ignored++
		logger.Trace().
			Str("kind", event.Kind.String()).
			Strs("paths", event.Paths).
			Msg("Ignoring event")
		return
	}

	logger.Debug().
		Str("kind", event.Kind.String()).
		Strs("paths", event.Paths).
		Msg("Event received")

	for _, path := range event.Paths {
		if paths.SamePath(path, r.configPath) {
			r.Reload()
			continue
		}
		r.process(path)
	}
}

// Reload re-reads the rules. On failure the installed set is left as it was
// and false is returned.
func (r *Router) Reload() bool {
	logger := logging.GetLogger("router")
	logger.Info().Str("path", r.configPath).Msg("Configuration changed, reloading rules")
	defer logging.LogOperationStart(logger, "reload")()

	set, err := rules.Load(r.source, r.syntax)
	if err != nil {
		r.stats.ReloadFailures++
		logger.Error().
			Err(err).
			Int("rulesInForce", r.rules.Len()).
			Msg("Failed to reload rules, keeping previous rules")
		return false
	}

	r.stats.Reloads++
	r.install(set)
	return true
}

func (r *Router) install(set rules.RuleSet) {
	logger := logging.GetLogger("router")

	r.rules = set

	if set.Empty() {
		logger.Warn().Str("path", r.configPath).Msg("No translations configured, files will not be renamed")
		return
	}
	logger.Info().Int("count", set.Len()).Msg("Rules loaded")
}

func (r *Router) process(path string) {
	logger := logging.GetLogger("router")

	if !r.engine.Exists(path) {
		r.stats.Vanished++
		logger.Debug().Str("path", path).Msg("File no longer exists, skipping")
		return
	}

	if res := r.guard.Wait(path); !res.Unlocked {
		r.stats.Locked++
		err := res.Err(path)
		logger.Warn().
			Err(err).
			Str("path", path).
			Str("category", string(errors.CategoryOf(err))).
			Msg("Skipping locked file")
		return
	}

	decision := r.engine.Apply(path, r.rules)

	switch decision.Kind {
	case rename.Renamed:
		r.stats.Renamed++
	case rename.Unchanged:
		r.stats.Unchanged++
	case rename.NoMatch:
		r.stats.NoMatch++
	case rename.NoSuchFile:
		r.stats.Vanished++
	case rename.RenameFailed:
		r.stats.Failed++
	}
}
