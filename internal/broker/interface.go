package broker

import "time"

// Job is a queued unit of background work. Today the only kind is the
// newsletter dispatch.
type Job struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}

const KindNewsletter = "newsletter"

// JobQueue decouples job producers (the scheduler) from consumers (the
// newsletter worker). Single node for now; the Redis implementation already
// fans out if more workers subscribe.
type JobQueue interface {
	Publish(job Job) error
	Subscribe() (<-chan Job, error)

	Close() error
}
