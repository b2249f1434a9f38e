package service

import (
	"context"
	"errors"
	"sync"
	"time"
)

// DefaultMinDelay is the minimum gap between consecutive AI dispatches.
const DefaultMinDelay = 2 * time.Second

// ErrQueueClosed is returned by Do after Close.
var ErrQueueClosed = errors.New("request queue closed")

type queueTask struct {
	run  func() (string, error)
	done chan queueResult
}

type queueResult struct {
	value string
	err   error
}

// RequestQueue serializes outbound AI requests: tasks run one at a time in
// strict submission order with a minimum delay between dispatch starts, so
// bursts from multiple dashboard widgets cannot trip the collaborator's
// rate limit. There is no cancellation: once enqueued, a task runs.
type RequestQueue struct {
	minDelay time.Duration

	mu      sync.Mutex
	pending []*queueTask
	closed  bool

	wake chan struct{}
	quit chan struct{}
	wg   sync.WaitGroup

	lastDispatch time.Time
}

// NewRequestQueue starts the worker goroutine. A non-positive minDelay
// falls back to DefaultMinDelay.
func NewRequestQueue(minDelay time.Duration) *RequestQueue {
	if minDelay <= 0 {
		minDelay = DefaultMinDelay
	}
	q := &RequestQueue{
		minDelay: minDelay,
		wake:     make(chan struct{}, 1),
		quit:     make(chan struct{}),
	}
	q.wg.Add(1)
	go q.loop()
	return q
}

// Do enqueues fn and waits for its result. An error from one task is
// delivered only to its caller; the queue keeps processing. When ctx ends
// before the task has run, Do returns early but the task still runs
// eventually (abandoned, not cancelled).
func (q *RequestQueue) Do(ctx context.Context, fn func() (string, error)) (string, error) {
	t := &queueTask{run: fn, done: make(chan queueResult, 1)}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return "", ErrQueueClosed
	}
	q.pending = append(q.pending, t)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}

	select {
	case res := <-t.done:
		return res.value, res.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Len reports the number of tasks still waiting to run.
func (q *RequestQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Close stops accepting tasks and waits for already-queued ones to finish.
func (q *RequestQueue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.mu.Unlock()

	close(q.quit)
	q.wg.Wait()
}

func (q *RequestQueue) loop() {
	defer q.wg.Done()
	for {
		t := q.pop()
		if t == nil {
			select {
			case <-q.wake:
				continue
			case <-q.quit:
				if t = q.pop(); t == nil {
					return
				}
			}
		}
		q.dispatch(t)
	}
}

func (q *RequestQueue) pop() *queueTask {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return nil
	}
	t := q.pending[0]
	q.pending = q.pending[1:]
	return t
}

func (q *RequestQueue) dispatch(t *queueTask) {
	if !q.lastDispatch.IsZero() {
		if wait := q.minDelay - time.Since(q.lastDispatch); wait > 0 {
			time.Sleep(wait)
		}
	}
	q.lastDispatch = time.Now()
	value, err := t.run()
	t.done <- queueResult{value: value, err: err}
}
