// Package lifecycle defines the work-order step catalog and the pure
// transition rules that govern it.
//
// The catalog is closed: steps and their ordering are fixed at compile time
// and no step may be added at runtime. The coarse status shown on dashboards
// is always derived from the step, never stored independently.
package lifecycle

// Step is a single named position in the ordered work-order lifecycle.
type Step string

const (
	StepRequestReceived      Step = "request-received"
	StepVisitScheduled       Step = "visit-scheduled"
	StepVisitCompleted       Step = "visit-completed"
	StepProposalDrafted      Step = "proposal-drafted"
	StepProposalSubmitted    Step = "proposal-submitted"
	StepProposalApproved     Step = "proposal-approved"
	StepWorkScheduled        Step = "work-scheduled"
	StepWorkInProgress       Step = "work-in-progress"
	StepWorkPaused           Step = "work-paused"
	StepWorkCompleted        Step = "work-completed"
	StepDeliveryActDrafted   Step = "delivery-act-drafted"
	StepDeliveryActSigned    Step = "delivery-act-signed"
	StepServiceEntryApproved Step = "service-entry-approved"
	StepInvoiceIssued        Step = "invoice-issued"
	StepPaymentReceived      Step = "payment-received"
	StepOrderCancelled       Step = "order-cancelled"
)

// CoarseStatus is the high-level bucket a step is grouped under for reporting.
type CoarseStatus string

const (
	StatusRequested   CoarseStatus = "requested"
	StatusPlanning    CoarseStatus = "planning"
	StatusInExecution CoarseStatus = "in-execution"
	StatusCompleted   CoarseStatus = "completed"
	StatusCancelled   CoarseStatus = "cancelled"
	StatusPaused      CoarseStatus = "paused"
)

type stepSpec struct {
	number         int
	coarse         CoarseStatus
	reasonRequired bool
}

// catalog lists every lifecycle step in display order. The step numbers are
// 1..N and drive the progress indicator on the order detail screen.
var catalog = map[Step]stepSpec{
	StepRequestReceived:      {1, StatusRequested, false},
	StepVisitScheduled:       {2, StatusRequested, false},
	StepVisitCompleted:       {3, StatusRequested, false},
	StepProposalDrafted:      {4, StatusPlanning, false},
	StepProposalSubmitted:    {5, StatusPlanning, false},
	StepProposalApproved:     {6, StatusPlanning, false},
	StepWorkScheduled:        {7, StatusPlanning, false},
	StepWorkInProgress:       {8, StatusInExecution, false},
	StepWorkPaused:           {9, StatusPaused, true},
	StepWorkCompleted:        {10, StatusInExecution, false},
	StepDeliveryActDrafted:   {11, StatusInExecution, false},
	StepDeliveryActSigned:    {12, StatusInExecution, false},
	StepServiceEntryApproved: {13, StatusInExecution, false},
	StepInvoiceIssued:        {14, StatusCompleted, false},
	StepPaymentReceived:      {15, StatusCompleted, true},
	StepOrderCancelled:       {16, StatusCancelled, true},
}

// orderedSteps mirrors catalog in step-number order for iteration.
var orderedSteps = []Step{
	StepRequestReceived,
	StepVisitScheduled,
	StepVisitCompleted,
	StepProposalDrafted,
	StepProposalSubmitted,
	StepProposalApproved,
	StepWorkScheduled,
	StepWorkInProgress,
	StepWorkPaused,
	StepWorkCompleted,
	StepDeliveryActDrafted,
	StepDeliveryActSigned,
	StepServiceEntryApproved,
	StepInvoiceIssued,
	StepPaymentReceived,
	StepOrderCancelled,
}

// FirstStep is the step every newly created order starts in.
const FirstStep = StepRequestReceived

// TotalSteps is the size of the catalog.
func TotalSteps() int { return len(orderedSteps) }

// Steps returns the catalog in step-number order.
func Steps() []Step {
	out := make([]Step, len(orderedSteps))
	copy(out, orderedSteps)
	return out
}

// IsValid reports whether s belongs to the catalog.
func IsValid(s Step) bool {
	_, ok := catalog[s]
	return ok
}

// Number returns the 1-based position of s in the catalog, 0 for unknown steps.
func Number(s Step) int {
	return catalog[s].number
}

// CoarseOf projects a step onto its coarse status. Unknown steps project onto
// the empty status; callers validate steps before projecting.
func CoarseOf(s Step) CoarseStatus {
	return catalog[s].coarse
}

// RequiresReason reports whether the destination step demands a non-empty
// reason from the caller (cancellation and completion-closing steps do).
func RequiresReason(s Step) bool {
	return catalog[s].reasonRequired
}

// IsTerminal reports whether s has no outgoing transitions.
func IsTerminal(s Step) bool {
	return len(transitions[s]) == 0 && IsValid(s)
}
