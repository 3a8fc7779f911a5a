// Package scheduler runs the periodic background jobs: dashboard summary
// refreshes and database health checks.
package scheduler

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Job is a named unit of scheduled work.
type Job interface {
	Name() string
	Schedule() string
	Run() error
}

// Scheduler wraps the cron runner and tracks registered jobs.
type Scheduler struct {
	cron *cron.Cron
	jobs []Job
	log  zerolog.Logger
}

// New creates a new scheduler
func New(log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron: cron.New(),
		log:  log.With().Str("service", "scheduler").Logger(),
	}
}

// Register adds a job to the schedule. Job panics are contained so one
// misbehaving job cannot take the scheduler down.
func (s *Scheduler) Register(job Job) error {
	_, err := s.cron.AddFunc(job.Schedule(), func() {
		defer func() {
			if r := recover(); r != nil {
				s.log.Error().
					Str("job", job.Name()).
					Interface("panic", r).
					Msg("Job panicked")
			}
		}()

		if err := job.Run(); err != nil {
			s.log.Error().Err(err).Str("job", job.Name()).Msg("Job failed")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule job %s: %w", job.Name(), err)
	}

	s.jobs = append(s.jobs, job)
	s.log.Info().
		Str("job", job.Name()).
		Str("schedule", job.Schedule()).
		Msg("Job registered")
	return nil
}

// Start begins running registered jobs on their schedules
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info().Int("jobs", len(s.jobs)).Msg("Scheduler started")
}

// Stop halts the scheduler, waiting for running jobs to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info().Msg("Scheduler stopped")
}
