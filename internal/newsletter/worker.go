package newsletter

import (
	"context"
	"time"

	"github.com/TWhiteShadow/gamevault/internal/broker"
	"github.com/TWhiteShadow/gamevault/internal/mailer"
	"github.com/TWhiteShadow/gamevault/internal/repository"
	"github.com/TWhiteShadow/gamevault/pkg/logger"
	"go.uber.org/zap"
)

// Subject of the weekly releases mail.
const Subject = "Les nouveaux jeux de la semaine"

// releaseWindow is how far ahead the newsletter looks for releases.
const releaseWindow = 7 * 24 * time.Hour

// Worker consumes newsletter jobs and dispatches one mail per subscriber.
type Worker struct {
	gameRepo *repository.VideoGameRepository
	userRepo *repository.UserRepository
	sender   mailer.Sender
	queue    broker.JobQueue
}

func NewWorker(
	gameRepo *repository.VideoGameRepository,
	userRepo *repository.UserRepository,
	sender mailer.Sender,
	queue broker.JobQueue,
) *Worker {
	return &Worker{
		gameRepo: gameRepo,
		userRepo: userRepo,
		sender:   sender,
		queue:    queue,
	}
}

// Start consumes jobs until the context is cancelled or the queue closes.
func (w *Worker) Start(ctx context.Context) error {
	jobs, err := w.queue.Subscribe()
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case job, ok := <-jobs:
				if !ok {
					return
				}
				if job.Kind != broker.KindNewsletter {
					logger.Log.Warn("Skipping job of unknown kind",
						zap.String("job_id", job.ID),
						zap.String("kind", job.Kind),
					)
					continue
				}
				sent, failed, err := w.Run(time.Now())
				if err != nil {
					logger.Log.Error("Newsletter job failed",
						zap.String("job_id", job.ID),
						zap.Error(err),
					)
					continue
				}
				logger.Log.Info("Newsletter job finished",
					zap.String("job_id", job.ID),
					zap.Int("sent", sent),
					zap.Int("failed", failed),
				)
			}
		}
	}()

	return nil
}

// Run fetches the games releasing within the next week and mails each
// newsletter subscriber. A failure sending to one recipient is logged and
// does not stop the remaining sends.
func (w *Worker) Run(now time.Time) (sent, failed int, err error) {
	from := now.Truncate(24 * time.Hour)
	games, err := w.gameRepo.GetReleasedBetween(from, from.Add(releaseWindow))
	if err != nil {
		return 0, 0, err
	}

	subscribers, err := w.userRepo.GetNewsletterSubscribers()
	if err != nil {
		return 0, 0, err
	}

	logger.Log.Info("Dispatching newsletter",
		zap.Int("upcoming_games", len(games)),
		zap.Int("subscribers", len(subscribers)),
	)

	for _, user := range subscribers {
		if err := w.sender.Send(user.Email, Subject, games); err != nil {
			logger.Log.Warn("Failed to send newsletter to recipient",
				zap.Uint("user_id", user.ID),
				zap.Error(err),
			)
			failed++
			continue
		}
		sent++
	}

	return sent, failed, nil
}
