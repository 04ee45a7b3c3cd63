package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tarefasapp/tarefas/internal/config"
	"github.com/tarefasapp/tarefas/internal/digest"
	"github.com/tarefasapp/tarefas/internal/mail"
	"github.com/tarefasapp/tarefas/internal/services"
)

const digestStopTimeout = 2 * time.Minute

func MustNewDigestJob(cfg *config.DigestConfig, pool *pgxpool.Pool) *digest.Job {
	composer, err := digest.NewComposer(cfg.Digest.AppURL, cfg.Digest.EscapeHTML)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to create digest composer")
		panic(err)
	}
	if !cfg.Digest.EscapeHTML {
		globalLogger.Warn().Msg("digest html escaping is disabled, task fields are sent verbatim")
	}

	sender, err := mail.NewSMTPSender(mail.Config{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		From:     cfg.Mail.From,
		FromName: cfg.Mail.FromName,
	})
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to create mail sender")
		panic(err)
	}

	return digest.NewJob(
		globalLogger,
		services.NewTaskService(globalLogger, pool),
		composer,
		sender,
		cfg.Digest.Recipient,
		cfg.Digest.Timeout,
	)
}

// RunDigestOnce runs the job synchronously and returns its error.
func RunDigestOnce(cfg *config.DigestConfig, job *digest.Job) error {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Digest.Timeout)
	defer cancel()

	return job.Run(ctx)
}

// MustRunDigestScheduler fires the job on the configured schedule until
// SIGINT or SIGTERM. When runNow is set the job also fires once before
// the first scheduled run.
func MustRunDigestScheduler(cfg *config.DigestConfig, job *digest.Job, runNow bool) {
	scheduler, err := digest.NewScheduler(globalLogger, cfg.Digest.Schedule, time.Local, job.Fire)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to create digest scheduler")
		panic(err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	runDigestScheduler(scheduler, job.Fire, runNow, quit)
}

// runDigestScheduler expects quit to be subscribed already, so a signal
// that arrives during the initial fire is still honored afterwards.
func runDigestScheduler(scheduler *digest.Scheduler, fire func(), runNow bool, quit <-chan os.Signal) {
	if runNow {
		fire()
	}
	scheduler.Start()

	<-quit

	globalLogger.Info().Msg("shutting down digest scheduler")

	ctx, cancel := context.WithTimeout(context.Background(), digestStopTimeout)
	defer cancel()

	err := scheduler.Stop(ctx)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to stop digest scheduler")
	}
}
