package watcher

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/fluffis/invoicehandler/pkg/errors"
	"github.com/fluffis/invoicehandler/pkg/logging"
	"github.com/fsnotify/fsnotify"
)

// Watcher watches directories non-recursively and single files, and queues
// their events in arrival order.
type Watcher struct {
	fsw   *fsnotify.Watcher
	queue *Queue

	mu    sync.RWMutex
	dirs  map[string]bool
	files map[string]bool

	closeOnce sync.Once
	done      chan struct{}
	wg        sync.WaitGroup
}

// New starts an fsnotify watcher with nothing registered yet.
func New() (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrWatcherSetup, "failed to create file watcher")
	}

	w := &Watcher{
		fsw:   fsw,
		queue: NewQueue(),
		dirs:  make(map[string]bool),
		files: make(map[string]bool),
		done:  make(chan struct{}),
	}

	w.wg.Add(1)
	go w.loop()

	return w, nil
}

// AddDirectory reports every event for direct members of dir.
func (w *Watcher) AddDirectory(dir string) error {
	dir = filepath.Clean(dir)
	if err := w.add(dir); err != nil {
		return err
	}

	w.mu.Lock()
	w.dirs[dir] = true
	w.mu.Unlock()

	logger := logging.GetLogger("watcher")
	logger.Debug().Str("path", dir).Msg("Watching directory")
	return nil
}

// AddFile reports events for a single file. The parent directory is watched
// instead of the file itself, so editors that save by writing a temporary
// file and renaming it over the original keep being noticed.
func (w *Watcher) AddFile(path string) error {
	path = filepath.Clean(path)
	if err := w.add(filepath.Dir(path)); err != nil {
		return err
	}

	w.mu.Lock()
	w.files[path] = true
	w.mu.Unlock()

	logger := logging.GetLogger("watcher")
	logger.Debug().Str("path", path).Msg("Watching file")
	return nil
}

func (w *Watcher) add(dir string) error {
	if err := w.fsw.Add(dir); err != nil {
		return errors.Wrapf(err, errors.ErrWatcherSetup, "cannot watch '%s'", dir).
			WithDetail("path", dir)
	}
	return nil
}

// Next returns the next queued event. See Queue.Next.
func (w *Watcher) Next(ctx context.Context) (FileEvent, error) {
	return w.queue.Next(ctx)
}

// Close stops watching. Events already queued can still be read.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsw.Close()
		w.wg.Wait()
		w.queue.Close()
	})
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	logger := logging.GetLogger("watcher")

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.wanted(ev.Name) {
				continue
			}
			w.queue.Push(FileEvent{Kind: kindOf(ev.Op), Paths: []string{ev.Name}})

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			if err == fsnotify.ErrEventOverflow {
				logger.Error().Err(err).Msg("Notification queue overflowed, events were lost")
				continue
			}
			logger.Warn().Err(err).Msg("Watcher error")
		}
	}
}

// wanted reports whether an event for name belongs to a registered target.
func (w *Watcher) wanted(name string) bool {
	name = filepath.Clean(name)

	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.files[name] || w.dirs[filepath.Dir(name)]
}
