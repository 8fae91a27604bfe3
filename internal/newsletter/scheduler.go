// Package newsletter runs the recurring releases mail: a cron trigger
// enqueues a job, a worker consumes it and mails every subscriber the games
// releasing in the coming week.
package newsletter

import (
	"time"

	"github.com/TWhiteShadow/gamevault/internal/broker"
	"github.com/TWhiteShadow/gamevault/pkg/logger"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler enqueues a newsletter job on a cron cadence. Dispatch itself
// happens on the worker, off the scheduler goroutine.
type Scheduler struct {
	cron  *cron.Cron
	queue broker.JobQueue
}

func NewScheduler(queue broker.JobQueue, cronSpec string) (*Scheduler, error) {
	s := &Scheduler{
		cron:  cron.New(),
		queue: queue,
	}

	_, err := s.cron.AddFunc(cronSpec, s.enqueue)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Scheduler) enqueue() {
	job := broker.Job{
		ID:         uuid.New().String(),
		Kind:       broker.KindNewsletter,
		EnqueuedAt: time.Now(),
	}

	if err := s.queue.Publish(job); err != nil {
		logger.Log.Error("Failed to enqueue newsletter job",
			zap.String("job_id", job.ID),
			zap.Error(err),
		)
		return
	}

	logger.Log.Info("Newsletter job enqueued", zap.String("job_id", job.ID))
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops the trigger; a job already enqueued still runs on the worker.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}
