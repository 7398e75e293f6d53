// Package executor provides completion contexts for asynchronous calls.
package executor

import (
	"context"
	"sync"
)

type Executor interface {
	// Execute schedules fn and reports whether it was accepted.
	// A rejected fn is never run.
	Execute(fn func()) bool
}

// Inline runs fn on the calling goroutine.
type Inline struct{}

func (Inline) Execute(fn func()) bool {
	fn()
	return true
}

// Queue runs submitted functions one at a time, in submission order, on the
// goroutine that calls Run.
//
// Once the queue is stopped (Close, or the ctx of Run is done) Execute
// rejects new functions and every accepted one still runs before Run returns.
type Queue struct {
	ch       chan func()
	closed   chan struct{}
	once     sync.Once
	mu       sync.Mutex
	stopped  bool
	inflight sync.WaitGroup
}

func NewQueue(size int) *Queue {
	return &Queue{
		ch:     make(chan func(), size),
		closed: make(chan struct{}),
	}
}

// Execute enqueues fn. It blocks while the queue is full and returns false
// when the queue is stopped.
func (q *Queue) Execute(fn func()) bool {
	q.mu.Lock()
	if q.stopped {
		q.mu.Unlock()
		return false
	}
	q.inflight.Add(1)
	q.mu.Unlock()

	defer q.inflight.Done()

	select {
	case q.ch <- fn:
		return true
	case <-q.closed:
		return false
	}
}

// Run processes functions until ctx is done or Close is called. Both stop
// the queue, after which accepted functions are drained before Run returns.
func (q *Queue) Run(ctx context.Context) {
	for {
		select {
		case fn := <-q.ch:
			fn()
		case <-q.closed:
			q.drain()
			return
		case <-ctx.Done():
			q.Close()
			q.drain()
			return
		}
	}
}

func (q *Queue) Close() {
	q.once.Do(func() {
		q.mu.Lock()
		q.stopped = true
		close(q.closed)
		q.mu.Unlock()
	})
}

// drain runs queued functions until no Execute call can still enqueue.
func (q *Queue) drain() {
	settled := make(chan struct{})
	go func() {
		q.inflight.Wait()
		close(settled)
	}()

	for {
		select {
		case fn := <-q.ch:
			fn()
		case <-settled:
			for {
				select {
				case fn := <-q.ch:
					fn()
				default:
					return
				}
			}
		}
	}
}
