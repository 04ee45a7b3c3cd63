package digest

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tarefasapp/tarefas/internal/mail"
	"github.com/tarefasapp/tarefas/internal/models"
)

const Subject = "Open tasks - daily summary"

type OpenTaskLister interface {
	ListOpenTasks(ctx context.Context) ([]models.Task, error)
}

type Sender interface {
	Send(ctx context.Context, msg mail.Message) error
}

// Job reads the open tasks, renders them and mails the result to a
// single recipient.
type Job struct {
	logger    zerolog.Logger
	tasks     OpenTaskLister
	composer  *Composer
	sender    Sender
	recipient string
	timeout   time.Duration
}

func NewJob(
	logger zerolog.Logger,
	tasks OpenTaskLister,
	composer *Composer,
	sender Sender,
	recipient string,
	timeout time.Duration,
) *Job {
	return &Job{
		logger:    logger.With().Str("component", "digest_job").Logger(),
		tasks:     tasks,
		composer:  composer,
		sender:    sender,
		recipient: recipient,
		timeout:   timeout,
	}
}

func (j *Job) Run(ctx context.Context) error {
	tasks, err := j.tasks.ListOpenTasks(ctx)
	if err != nil {
		j.logger.Error().
			Err(err).
			Msg("failed to list open tasks")
		return fmt.Errorf("failed to list open tasks: %w", err)
	}
	SortOpenTasks(tasks)

	body, err := j.composer.Compose(tasks)
	if err != nil {
		j.logger.Error().
			Err(err).
			Msg("failed to compose digest")
		return err
	}

	err = j.sender.Send(ctx, mail.Message{
		To:      j.recipient,
		Subject: Subject,
		HTML:    body,
	})
	if err != nil {
		j.logger.Error().
			Err(err).
			Str("recipient", j.recipient).
			Msg("failed to send digest")
		return fmt.Errorf("failed to send digest: %w", err)
	}

	j.logger.Info().
		Int("count", len(tasks)).
		Str("recipient", j.recipient).
		Msg("sent digest")
	return nil
}

// Fire runs the job once with its own timeout. Failures and panics are
// logged and otherwise dropped; the next scheduled fire is unaffected.
func (j *Job) Fire() {
	defer func() {
		if r := recover(); r != nil {
			j.logger.Error().
				Interface("panic", r).
				Msg("digest run panicked")
		}
	}()

	ctx := context.Background()
	if j.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}

	_ = j.Run(ctx)
}
