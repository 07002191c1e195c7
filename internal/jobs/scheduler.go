// Package jobs runs the bot's periodic background work on a cron schedule.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/KirkDiggler/arcade/internal/services/admin"
	"github.com/KirkDiggler/arcade/internal/services/session"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Default cron specs
const (
	DefaultSweepSpec  = "@every 30s"
	DefaultReportSpec = "@every 10m"
)

// JobError is a typed error for scheduler setup
type JobError string

// Error implements the error interface
func (e JobError) Error() string {
	return string(e)
}

const (
	ErrNilConfig   JobError = "config cannot be nil"
	ErrNilRegistry JobError = "session registry cannot be nil"
	ErrNilAdmin    JobError = "admin service cannot be nil"
)

// Config holds the scheduler dependencies
type Config struct {
	Registry session.Registry
	Admin    admin.Service

	// SweepSpec expires sessions whose timers were lost
	SweepSpec string

	// ReportSpec logs economy stats
	ReportSpec string

	// Location for cron schedules, UTC when nil
	Location *time.Location
}

// Scheduler runs background jobs
type Scheduler struct {
	cron     *cron.Cron
	registry session.Registry
	admin    admin.Service
}

// NewScheduler creates a scheduler with its jobs registered but not started
func NewScheduler(cfg *Config) (*Scheduler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Registry == nil {
		return nil, ErrNilRegistry
	}

	if cfg.Admin == nil {
		return nil, ErrNilAdmin
	}

	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}

	s := &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		registry: cfg.Registry,
		admin:    cfg.Admin,
	}

	sweepSpec := cfg.SweepSpec
	if sweepSpec == "" {
		sweepSpec = DefaultSweepSpec
	}
	if _, err := s.cron.AddFunc(sweepSpec, func() { s.Sweep(context.Background()) }); err != nil {
		return nil, fmt.Errorf("invalid sweep schedule %q: %w", sweepSpec, err)
	}

	reportSpec := cfg.ReportSpec
	if reportSpec == "" {
		reportSpec = DefaultReportSpec
	}
	if _, err := s.cron.AddFunc(reportSpec, func() { s.Report(context.Background()) }); err != nil {
		return nil, fmt.Errorf("invalid report schedule %q: %w", reportSpec, err)
	}

	return s, nil
}

// Start runs the jobs in the background
func (s *Scheduler) Start() {
	s.cron.Start()
	log.Info().Int("jobs", len(s.cron.Entries())).Msg("Scheduler started")
}

// Stop waits for running jobs to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Info().Msg("Scheduler stopped")
}

// Sweep expires idle sessions
func (s *Scheduler) Sweep(ctx context.Context) {
	out, err := s.registry.Sweep(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Session sweep failed")
		return
	}

	if out.Expired > 0 {
		log.Info().Int("expired", out.Expired).Msg("Session sweep expired stale sessions")
	}
}

// Report logs economy stats
func (s *Scheduler) Report(ctx context.Context) {
	out, err := s.admin.Stats(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Stats report failed")
		return
	}

	log.Info().Int64("users", out.Users).Int("active_sessions", out.ActiveSessions).Msg("Economy stats")
}
