package sweeper

import (
	"context"
	"time"

	"cermont_os/internal/usecase"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultSchedule runs the sweeps at the top of every hour.
const DefaultSchedule = "0 * * * *"

// Scheduler runs the overdue sweeps on a cron schedule. One tick scans every
// sweep; ticks that overlap are skipped by cron's default behavior since each
// job instance runs in its own goroutine over an idempotent use case.
type Scheduler struct {
	cron   *cron.Cron
	sweeps usecase.ISweepUseCase
	logger *zap.Logger
}

func NewScheduler(sweeps usecase.ISweepUseCase, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		cron:   cron.New(),
		sweeps: sweeps,
		logger: logger,
	}
}

// Start registers the sweep job under schedule and begins ticking. An empty
// schedule falls back to DefaultSchedule.
func (s *Scheduler) Start(schedule string) error {
	if schedule == "" {
		schedule = DefaultSchedule
	}

	if _, err := s.cron.AddFunc(schedule, s.tick); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("sweep scheduler started", zap.String("schedule", schedule))
	return nil
}

// Stop halts the schedule and waits for a running tick to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("sweep scheduler stopped")
}

func (s *Scheduler) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	report, err := s.sweeps.Run(ctx)
	if err != nil {
		s.logger.Error("sweep tick failed", zap.Error(err))
		return
	}
	s.logger.Info("sweep tick finished",
		zap.Int("unsigned_documents", report.UnsignedDocuments),
		zap.Int("proposals_unanswered", report.ProposalsUnanswered),
		zap.Int("invoices_overdue", report.InvoicesOverdue),
	)
}
