package watcher

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned by Queue.Next once the queue is closed and drained.
var ErrClosed = errors.New("event queue closed")

// Queue is an unbounded, thread-safe FIFO of FileEvents. Any number of
// goroutines may push; one consumer pulls with Next.
type Queue struct {
	mu     sync.Mutex
	events []FileEvent
	closed bool
	signal chan struct{} // buffered, size 1
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{
		events: make([]FileEvent, 0, 64),
		signal: make(chan struct{}, 1),
	}
}

// Push appends an event. It returns false if the queue is closed.
func (q *Queue) Push(e FileEvent) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false
	}

	q.events = append(q.events, e)

	select {
	case q.signal <- struct{}{}:
	default:
	}

	return true
}

// TryPop removes the oldest event without blocking.
func (q *Queue) TryPop() (FileEvent, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.events) == 0 {
		return FileEvent{}, false
	}

	e := q.events[0]
	q.events[0] = FileEvent{}

	if len(q.events) == 1 {
		q.events = q.events[:0]
	} else {
		q.events = q.events[1:]
	}

	return e, true
}

// Next blocks until an event is available and returns it. It returns
// ErrClosed once the queue is closed and empty, or the context's error if ctx
// ends first. Events still queued at Close are delivered before ErrClosed.
func (q *Queue) Next(ctx context.Context) (FileEvent, error) {
	for {
		if e, ok := q.TryPop(); ok {
			return e, nil
		}

		q.mu.Lock()
		done := q.closed && len(q.events) == 0
		q.mu.Unlock()
		if done {
			return FileEvent{}, ErrClosed
		}

		select {
		case <-ctx.Done():
			return FileEvent{}, ctx.Err()
		case <-q.signal:
		}
	}
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// Close stops further pushes and wakes the consumer.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}

	q.closed = true
	close(q.signal)
}
