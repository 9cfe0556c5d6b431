package jobs

import (
	"bengkel-backend/internal/config"
	"bengkel-backend/internal/logger"
	"bengkel-backend/internal/service"
)

// JobRunner coordinates the scheduled jobs.
type JobRunner struct {
	transactions service.TransactionService
	config       *config.Config
}

func NewJobRunner(transactions service.TransactionService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		transactions: transactions,
		config:       cfg,
	}
}

// Config exposes the configuration for schedule registration.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery so a failing job
// never takes down the scheduler.
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("starting job", "job", jobName)
	jobFunc()
	logger.Info("job completed", "job", jobName)
}

// RunAllNightlyJobs runs every nightly job once, for manual execution.
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.MarkOverdueTransactions()
}
