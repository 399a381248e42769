package jobs

import (
	"context"
	"log/slog"
	"time"

	"intake/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// SessionCleanupJob periodically evicts wizard sessions that have been idle
// longer than the configured TTL, so abandoned wizards do not pile up in
// memory.
type SessionCleanupJob struct {
	handler  commands.CleanupSessionsCommandHandler
	idleTTL  time.Duration
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSessionCleanupJob creates a cleanup job with the given idle TTL and cron
// schedule.
func NewSessionCleanupJob(
	handler commands.CleanupSessionsCommandHandler,
	idleTTL time.Duration,
	schedule string,
	logger *slog.Logger,
) *SessionCleanupJob {
	return &SessionCleanupJob{
		handler:  handler,
		idleTTL:  idleTTL,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "session_cleanup_job"),
	}
}

// Start schedules the cleanup job.
func (j *SessionCleanupJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewCleanupSessionsCommand(j.idleTTL)
		if err != nil {
			j.logger.ErrorContext(ctx, "Session cleanup job misconfigured", "error", err)
			return
		}

		removed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Session cleanup job failed", "error", err)
			return
		}
		if removed > 0 {
			j.logger.InfoContext(ctx, "Evicted idle wizard sessions", "count", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session cleanup job started", "schedule", j.schedule, "idle_ttl", j.idleTTL)
	return nil
}

// Stop stops the cleanup job.
func (j *SessionCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Session cleanup job stopped")
}
