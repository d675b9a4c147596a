package scheduler

import (
	"context"
	"fmt"

	"firstballot/prospects/internal/config"
	"firstballot/prospects/internal/pipeline"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Scheduler manages background evaluation runs: a nightly full pipeline pass
// over the configured draft class, scheduled off-hours so ranking feeds and
// the NFL stats table have settled.
type Scheduler struct {
	cfg      *config.Config
	pipeline *pipeline.Pipeline
	cron     *cron.Cron
}

// NewScheduler creates a new scheduler instance
func NewScheduler(cfg *config.Config, p *pipeline.Pipeline) *Scheduler {
	return &Scheduler{
		cfg:      cfg,
		pipeline: p,
		cron:     cron.New(),
	}
}

// Start starts the scheduler
func (s *Scheduler) Start(ctx context.Context) error {
	log.Info().Msg("Scheduler starting...")

	// Setup nightly evaluation cron job
	if _, err := s.cron.AddFunc(s.cfg.NightlyRefreshCron, func() {
		log.Info().Msg("Running nightly evaluation...")
		if err := s.pipeline.Run(ctx); err != nil {
			log.Error().Err(err).Msg("Nightly evaluation failed")
		}
	}); err != nil {
		return fmt.Errorf("failed to schedule nightly evaluation: %w", err)
	}

	// Start cron scheduler
	s.cron.Start()
	log.Info().
		Str("schedule", s.cfg.NightlyRefreshCron).
		Msg("Nightly evaluation scheduled")

	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	log.Info().Msg("Stopping scheduler...")

	if s.cron != nil {
		s.cron.Stop()
	}

	log.Info().Msg("Scheduler stopped")
}
