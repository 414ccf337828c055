package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Broadcaster is the reminder entry point the scheduler invokes
type Broadcaster interface {
	BroadcastReminder(ctx context.Context)
}

// Scheduler fires the weekly report reminder on a cron schedule in the
// configured time zone
type Scheduler struct {
	cron   *cron.Cron
	logger *zap.Logger
}

// New creates a scheduler with one entry running broadcaster on spec
// (standard 5-field cron) in the tz time zone
func New(spec, tz string, broadcaster Broadcaster, logger *zap.Logger) (*Scheduler, error) {
	location, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", tz, err)
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	c := cron.New(
		cron.WithParser(parser),
		cron.WithLocation(location),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)

	_, err = c.AddFunc(spec, func() {
		logger.Info("Reminder schedule fired", zap.String("spec", spec))
		broadcaster.BroadcastReminder(context.Background())
	})
	if err != nil {
		return nil, fmt.Errorf("invalid reminder schedule %q: %w", spec, err)
	}

	return &Scheduler{cron: c, logger: logger}, nil
}

// Start launches the cron loop in its own goroutine
func (s *Scheduler) Start() {
	s.logger.Info("Reminder scheduler started")
	s.cron.Start()
}

// Stop halts the cron loop and waits for a running job to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Reminder scheduler stopped")
}
