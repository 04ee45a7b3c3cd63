package digest

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// DefaultSchedule fires every day at 08:30 local time.
const DefaultSchedule = "30 8 * * *"

type Scheduler struct {
	logger zerolog.Logger
	cron   *cron.Cron
	entry  cron.EntryID
}

// NewScheduler registers fire on the standard five-field cron spec,
// evaluated in loc. A panicking run is recovered and logged.
func NewScheduler(logger zerolog.Logger, spec string, loc *time.Location, fire func()) (*Scheduler, error) {
	logger = logger.With().Str("component", "digest_scheduler").Logger()
	cronLogger := cron.PrintfLogger(&logger)

	c := cron.New(
		cron.WithLocation(loc),
		cron.WithLogger(cronLogger),
		cron.WithChain(cron.Recover(cronLogger)),
	)
	entry, err := c.AddJob(spec, cron.FuncJob(fire))
	if err != nil {
		return nil, fmt.Errorf("invalid digest schedule %q: %w", spec, err)
	}

	return &Scheduler{
		logger: logger,
		cron:   c,
		entry:  entry,
	}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info().
		Time("next", s.Next()).
		Msg("started digest scheduler")
}

// Next returns the next fire time, or the zero time before Start.
func (s *Scheduler) Next() time.Time {
	return s.cron.Entry(s.entry).Next
}

// Stop stops scheduling and waits for a running job until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.logger.Info().Msg("stopped digest scheduler")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
