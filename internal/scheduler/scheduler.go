package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"bengkel-backend/internal/jobs"
	"bengkel-backend/internal/logger"
)

// Scheduler manages cron job scheduling.
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

// NewScheduler creates a scheduler with UTC timezone and seconds precision
// and registers all jobs.
func NewScheduler(jobRunner *jobs.JobRunner) *Scheduler {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	s.registerJobs()
	return s
}

func (s *Scheduler) registerJobs() {
	cfg := s.jobs.Config().Scheduler

	_, err := s.cron.AddFunc(cfg.MarkOverdueTransactions, s.jobs.MarkOverdueTransactions)
	if err != nil {
		logger.Error("failed to register MarkOverdueTransactions job", "error", err)
	}

	logger.Info("cron jobs registered")
}

// Start begins the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	logger.Info("cron scheduler started")
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("cron scheduler stopped")
}
