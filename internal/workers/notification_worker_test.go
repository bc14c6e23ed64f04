package workers

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNotificationWorker_RunsEnqueuedJobs(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := NewNotificationWorker(8, 2)
	w.Start(ctx)

	var done sync.WaitGroup
	var count atomic.Int64
	for i := 0; i < 5; i++ {
		done.Add(1)
		w.Enqueue(func() {
			count.Add(1)
			done.Done()
		})
	}

	waitTimeout(t, &done, time.Second)
	assert.Equal(t, int64(5), count.Load())
}

func TestNotificationWorker_EnqueueNeverBlocksWhenQueueIsFull(t *testing.T) {
	// No Start call, so the single queue slot fills immediately and every
	// further job has to take the inline path.
	w := NewNotificationWorker(1, 1)

	w.Enqueue(func() {})

	ran := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		w.Enqueue(func() { close(ran) })
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("Enqueue blocked on a full queue")
	}

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("overflow job never ran")
	}
}

func TestNewNotificationWorker_Defaults(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := NewNotificationWorker(0, 0)
	w.Start(ctx)

	var done sync.WaitGroup
	done.Add(1)
	w.Enqueue(func() { done.Done() })

	waitTimeout(t, &done, time.Second)
}

func waitTimeout(t *testing.T, wg *sync.WaitGroup, timeout time.Duration) {
	t.Helper()

	ch := make(chan struct{})
	go func() {
		wg.Wait()
		close(ch)
	}()

	select {
	case <-ch:
	case <-time.After(timeout):
		t.Fatal("timed out waiting for jobs")
	}
}
