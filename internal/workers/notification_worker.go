package workers

import (
	"context"

	"stylehomes_backend/internal/logger"
)

// Job is a unit of background work. Jobs observe and log their own failures;
// nothing is reported back to the caller.
type Job func()

// NotificationWorker runs notification jobs off the request path. Delivery is
// best effort: there is no retry and no cancellation of an in-flight job.
type NotificationWorker struct {
	jobs    chan Job
	workers int
}

func NewNotificationWorker(queueSize, workers int) *NotificationWorker {
	if queueSize <= 0 {
		queueSize = 64
	}
	if workers <= 0 {
		workers = 2
	}
	return &NotificationWorker{
		jobs:    make(chan Job, queueSize),
		workers: workers,
	}
}

// Start launches the worker goroutines. They drain the queue until the
// context is cancelled.
func (w *NotificationWorker) Start(ctx context.Context) {
	for i := 0; i < w.workers; i++ {
		go w.run(ctx, i)
	}
}

func (w *NotificationWorker) run(ctx context.Context, id int) {
	for {
		select {
		case <-ctx.Done():
			logger.Info("notification worker stopped", "worker", id)
			return
		case job := <-w.jobs:
			job()
		}
	}
}

// Enqueue hands a job to the worker pool without ever blocking the caller.
// When the queue is full the job runs on its own goroutine instead of being
// dropped.
func (w *NotificationWorker) Enqueue(job Job) {
	select {
	case w.jobs <- job:
	default:
		logger.Warn("notification queue full, running job inline")
		go job()
	}
}
