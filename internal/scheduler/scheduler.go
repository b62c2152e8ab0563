// Package scheduler runs periodic maintenance jobs, currently pruning old
// audit log entries.
package scheduler

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"eventme/internal/store"
)

// Scheduler handles periodic background jobs.
type Scheduler struct {
	db            *sql.DB
	cron          *cron.Cron
	logger        *slog.Logger
	retentionDays int
}

// New creates a new scheduler instance. retentionDays controls how long
// audit log entries are kept.
func New(db *sql.DB, logger *slog.Logger, retentionDays int) *Scheduler {
	return &Scheduler{
		db:            db,
		cron:          cron.New(),
		logger:        logger,
		retentionDays: retentionDays,
	}
}

// Start begins the scheduler with a daily audit log prune job.
func (s *Scheduler) Start() error {
	// Daily at 03:30, a quiet hour for a marketing site
	_, err := s.cron.AddFunc("30 3 * * *", func() {
		if err := s.PruneAuditLog(context.Background()); err != nil {
			s.logger.Error("failed to prune audit log", "error", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
	return nil
}

// Stop gracefully stops the scheduler.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

// PruneAuditLog removes audit entries older than the retention window.
func (s *Scheduler) PruneAuditLog(ctx context.Context) error {
	cutoff := time.Now().AddDate(0, 0, -s.retentionDays)

	deleted, err := store.New(s.db).DeleteAuditEntriesBefore(ctx, cutoff)
	if err != nil {
		return err
	}

	if deleted > 0 {
		s.logger.Info("pruned audit log",
			"deleted", deleted,
			"cutoff", cutoff.Format(time.RFC3339),
		)
	}

	return nil
}
