package executor

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestInline(t *testing.T) {
	called := false
	Inline{}.Execute(func() { called = true })
	if !called {
		t.Fatal("expected synchronous call")
	}
}

func TestQueueOrder(t *testing.T) {
	q := NewQueue(100)

	var got []int
	for i := 0; i < 10; i++ {
		i := i
		q.Execute(func() { got = append(got, i) })
	}

	done := make(chan struct{})
	go func() {
		q.Run(context.Background())
		close(done)
	}()

	q.Close()
	<-done

	if diff := cmp.Diff([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got); diff != "" {
		t.Fatal(diff)
	}

	if q.Execute(func() { t.Error("must not run") }) {
		t.Fatal("expected rejection after close")
	}
	q.drain()
}

func TestQueueStopByCtx(t *testing.T) {
	q := NewQueue(0)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		q.Run(ctx)
		close(done)
	}()

	var ran int32
	if !q.Execute(func() { atomic.AddInt32(&ran, 1) }) {
		t.Fatal("expected acceptance while running")
	}

	cancel()
	<-done

	if atomic.LoadInt32(&ran) != 1 {
		t.Fatal("accepted function did not run")
	}

	rejected := make(chan bool, 1)
	go func() {
		rejected <- !q.Execute(func() { t.Error("must not run") })
	}()

	select {
	case ok := <-rejected:
		if !ok {
			t.Fatal("expected rejection after ctx is done")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Execute blocked on a stopped queue")
	}
}

func TestQueueCloseUnblocksExecute(t *testing.T) {
	q := NewQueue(0)

	res := make(chan bool, 1)
	go func() {
		res <- q.Execute(func() {})
	}()

	time.Sleep(10 * time.Millisecond)
	q.Close()

	select {
	case ok := <-res:
		if ok {
			t.Fatal("expected rejection")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Execute stayed blocked after Close")
	}
}

func TestQueueSingleGoroutine(t *testing.T) {
	q := NewQueue(0)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go q.Run(ctx)

	var (
		wg      sync.WaitGroup
		running int
		maxSeen int
	)

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go q.Execute(func() {
			defer wg.Done()
			running++
			if running > maxSeen {
				maxSeen = running
			}
			running--
		})
	}

	wg.Wait()

	if maxSeen != 1 {
		t.Fatal("queue ran functions concurrently", maxSeen)
	}
}
