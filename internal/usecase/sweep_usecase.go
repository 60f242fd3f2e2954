package usecase

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"cermont_os/internal/domain/entities"
	"cermont_os/internal/domain/lifecycle"
	"cermont_os/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// SweepConfig holds the overdue cutoffs for the periodic sweep jobs.
type SweepConfig struct {
	UnsignedDocAge time.Duration
	ProposalAge    time.Duration
	InvoiceAge     time.Duration
}

// DefaultSweepConfig mirrors the operational defaults: 48h for unsigned
// delivery acts, 72h for unanswered proposals, 14 days for unpaid invoices.
func DefaultSweepConfig() SweepConfig {
	return SweepConfig{
		UnsignedDocAge: 48 * time.Hour,
		ProposalAge:    72 * time.Hour,
		InvoiceAge:     14 * 24 * time.Hour,
	}
}

// SweepConfigFromEnv reads the cutoff overrides (SWEEP_UNSIGNED_DOC_HOURS,
// SWEEP_PROPOSAL_HOURS, SWEEP_INVOICE_HOURS) in whole hours. Absent, empty
// or unparseable values keep the default for that cutoff.
func SweepConfigFromEnv() SweepConfig {
	cfg := DefaultSweepConfig()
	cfg.UnsignedDocAge = hoursFromEnv("SWEEP_UNSIGNED_DOC_HOURS", cfg.UnsignedDocAge)
	cfg.ProposalAge = hoursFromEnv("SWEEP_PROPOSAL_HOURS", cfg.ProposalAge)
	cfg.InvoiceAge = hoursFromEnv("SWEEP_INVOICE_HOURS", cfg.InvoiceAge)
	return cfg
}

func hoursFromEnv(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	hours, err := strconv.Atoi(raw)
	if err != nil || hours <= 0 {
		return fallback
	}
	return time.Duration(hours) * time.Hour
}

// SweepReport counts the orders each sweep flagged. A flagged order holds an
// open alert of the sweep's type afterwards, whether it was created by this
// tick or by an earlier one.
type SweepReport struct {
	UnsignedDocuments   int `json:"unsigned_documents"`
	ProposalsUnanswered int `json:"proposals_unanswered"`
	InvoicesOverdue     int `json:"invoices_overdue"`
}

// ISweepUseCase scans for overdue orders and raises deduplicated alerts.
type ISweepUseCase interface {
	Run(ctx context.Context) (SweepReport, error)
}

// SweepUseCase is idempotent by construction: it goes through the same Raise
// policy as the trigger engine, so re-running a sweep never duplicates an
// open alert.
type SweepUseCase struct {
	orderRepo interfaces.IOrderStateRepository
	alerts    IAlertUseCase
	cfg       SweepConfig
	logger    *zap.Logger
}

var _ ISweepUseCase = (*SweepUseCase)(nil)

func NewSweepUseCase(
	orderRepo interfaces.IOrderStateRepository,
	alerts IAlertUseCase,
	cfg SweepConfig,
	logger *zap.Logger,
) *SweepUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SweepUseCase{orderRepo: orderRepo, alerts: alerts, cfg: cfg, logger: logger}
}

type sweepSpec struct {
	name     string
	step     lifecycle.Step
	age      time.Duration
	typ      entities.AlertType
	priority entities.AlertPriority
	title    string
	message  func(o entities.Order) string
	target   func(o entities.Order) string
}

func (u *SweepUseCase) specs() []sweepSpec {
	return []sweepSpec{
		{
			name:     "unsigned-documents",
			step:     lifecycle.StepDeliveryActDrafted,
			age:      u.cfg.UnsignedDocAge,
			typ:      entities.AlertDocumentUnsigned,
			priority: entities.AlertPriorityWarning,
			title:    "Delivery act pending signature",
			message: func(o entities.Order) string {
				return fmt.Sprintf("Order %s has had an unsigned delivery act for more than %s.", o.Number, u.cfg.UnsignedDocAge)
			},
			target: func(o entities.Order) string { return o.AssignedTechnicianID },
		},
		{
			name:     "proposals-unanswered",
			step:     lifecycle.StepProposalSubmitted,
			age:      u.cfg.ProposalAge,
			typ:      entities.AlertProposalUnanswered,
			priority: entities.AlertPriorityWarning,
			title:    "Proposal awaiting client response",
			message: func(o entities.Order) string {
				return fmt.Sprintf("The proposal for order %s has been unanswered for more than %s.", o.Number, u.cfg.ProposalAge)
			},
			target: func(o entities.Order) string { return "" },
		},
		{
			name:     "invoices-overdue",
			step:     lifecycle.StepInvoiceIssued,
			age:      u.cfg.InvoiceAge,
			typ:      entities.AlertInvoiceOverdue,
			priority: entities.AlertPriorityError,
			title:    "Invoice overdue",
			message: func(o entities.Order) string {
				return fmt.Sprintf("The invoice for order %s has been unpaid for more than %s.", o.Number, u.cfg.InvoiceAge)
			},
			target: func(o entities.Order) string { return "" },
		},
	}
}

// Run executes all sweeps. Per-order failures are logged and skipped so one
// bad row cannot stall a whole sweep tick.
func (u *SweepUseCase) Run(ctx context.Context) (SweepReport, error) {
	var report SweepReport
	counters := map[string]*int{
		"unsigned-documents":   &report.UnsignedDocuments,
		"proposals-unanswered": &report.ProposalsUnanswered,
		"invoices-overdue":     &report.InvoicesOverdue,
	}

	for _, spec := range u.specs() {
		cutoff := time.Now().UTC().Add(-spec.age)
		orders, err := u.orderRepo.ListByStepOlderThan(ctx, spec.step, cutoff)
		if err != nil {
			u.logger.Error("sweep scan failed",
				zap.String("sweep", spec.name),
				zap.String("step", string(spec.step)),
				zap.Error(err),
			)
			return report, err
		}

		for _, o := range orders {
			if _, err := u.alerts.Raise(ctx, o.ID, spec.typ, spec.priority, spec.title, spec.message(o), spec.target(o)); err != nil {
				u.logger.Warn("sweep raise failed",
					zap.String("sweep", spec.name),
					zap.String("order_id", o.ID),
					zap.Error(err),
				)
				continue
			}
			*counters[spec.name]++
		}
	}
	return report, nil
}
