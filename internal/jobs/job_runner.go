package jobs

import (
	"library-backend/internal/config"
	"library-backend/internal/logger"
	"library-backend/internal/repository"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	copyRepo repository.CopyRepository
	config   *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(copyRepo repository.CopyRepository, cfg *config.Config) *JobRunner {
	return &JobRunner{
		copyRepo: copyRepo,
		config:   cfg,
	}
}

// Config exposes the loaded configuration to the scheduler
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}
