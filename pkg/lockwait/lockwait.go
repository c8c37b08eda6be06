// Package lockwait waits for a file to stop being held by another writer
// before it is renamed.
//
// The guard only probes: it opens the file for reading and writing, closes
// it again at once, and reports whether that worked. It never keeps the file
// open, since holding it would block the writer it is waiting for.
package lockwait

import (
	"time"

	"github.com/fluffis/invoicehandler/pkg/errors"
	"github.com/fluffis/invoicehandler/pkg/filesystem"
	"github.com/fluffis/invoicehandler/pkg/logging"
	"github.com/spf13/afero"
)

// Guard probes files with a bounded number of attempts.
type Guard struct {
	fs         afero.Fs
	maxRetries int
	delay      time.Duration
	sleep      func(time.Duration)
}

// Option configures a Guard.
type Option func(*Guard)

// WithSleep replaces time.Sleep, letting tests observe the waits.
func WithSleep(sleep func(time.Duration)) Option {
	return func(g *Guard) {
		g.sleep = sleep
	}
}

// New creates a Guard making at most maxRetries probes, the first one
// included, with delay between failed probes. maxRetries below 1 is treated
// as 1.
func New(fs afero.Fs, maxRetries int, delay time.Duration, opts ...Option) *Guard {
	if maxRetries < 1 {
		maxRetries = 1
	}
	g := &Guard{
		fs:         fs,
		maxRetries: maxRetries,
		delay:      delay,
		sleep:      time.Sleep,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Result describes one wait.
type Result struct {
	Unlocked bool
	Attempts int
	Slept    time.Duration
	// LastErr is the error of the final failed probe.
	LastErr error
}

// Err returns an ErrFileLocked error for a wait that gave up, or nil.
func (r Result) Err(path string) error {
	if r.Unlocked {
		return nil
	}
	err := errors.Newf(errors.ErrFileLocked, "file still locked after %d attempts", r.Attempts)
	if r.LastErr != nil {
		err = errors.Wrapf(r.LastErr, errors.ErrFileLocked, "file still locked after %d attempts", r.Attempts)
	}
	return err.WithDetail("path", path).WithDetail("attempts", r.Attempts)
}

// WaitUntilUnlocked reports whether path could be opened for reading and
// writing within the configured number of attempts.
func (g *Guard) WaitUntilUnlocked(path string) bool {
	return g.Wait(path).Unlocked
}

// Wait probes path until a probe succeeds or the attempts run out. It sleeps
// after every failure except the last, so a wait that never succeeds blocks
// for (maxRetries-1) × delay.
func (g *Guard) Wait(path string) Result {
	logger := logging.GetLogger("lockwait")

	var res Result
	for attempt := 1; attempt <= g.maxRetries; attempt++ {
		res.Attempts = attempt

		err := filesystem.ProbeReadWrite(g.fs, path)
		if err == nil {
			res.Unlocked = true
			res.LastErr = nil
			if attempt > 1 {
				logger.Debug().
					Str("path", path).
					Int("attempts", attempt).
					Msg("File unlocked")
			}
			return res
		}
		res.LastErr = err

		if attempt == g.maxRetries {
			break
		}

		logger.Warn().
			Err(err).
			Str("path", path).
			Int("attempt", attempt).
			Int("maxRetries", g.maxRetries).
			Msg("locked, retrying")

		g.sleep(g.delay)
		res.Slept += g.delay
	}

	logger.Error().
		Err(res.LastErr).
		Str("path", path).
		Int("attempts", res.Attempts).
		Msg("File still locked, skipping")

	return res
}
