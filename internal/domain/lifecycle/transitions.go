package lifecycle

// transitions is the adjacency table of the lifecycle: each step lists the
// steps directly reachable from it. Forward progress only, plus the
// enumerated backward edge for a rejected proposal. Skipping steps is illegal
// even when the destination is reachable further down the chain.
var transitions = map[Step][]Step{
	StepRequestReceived:      {StepVisitScheduled, StepOrderCancelled},
	StepVisitScheduled:       {StepVisitCompleted, StepProposalDrafted, StepOrderCancelled},
	StepVisitCompleted:       {StepProposalDrafted, StepOrderCancelled},
	StepProposalDrafted:      {StepProposalSubmitted, StepProposalApproved, StepOrderCancelled},
	StepProposalSubmitted:    {StepProposalApproved, StepRequestReceived, StepOrderCancelled},
	StepProposalApproved:     {StepWorkScheduled, StepOrderCancelled},
	StepWorkScheduled:        {StepWorkInProgress, StepWorkPaused, StepOrderCancelled},
	StepWorkInProgress:       {StepWorkCompleted, StepWorkPaused, StepOrderCancelled},
	StepWorkPaused:           {StepWorkInProgress, StepOrderCancelled},
	StepWorkCompleted:        {StepDeliveryActDrafted, StepOrderCancelled},
	StepDeliveryActDrafted:   {StepDeliveryActSigned, StepOrderCancelled},
	StepDeliveryActSigned:    {StepServiceEntryApproved, StepOrderCancelled},
	StepServiceEntryApproved: {StepInvoiceIssued},
	StepInvoiceIssued:        {StepPaymentReceived},
	StepPaymentReceived:      {},
	StepOrderCancelled:       {},
}

// AllowedFrom returns the steps directly reachable from s, in table order.
// The result is a copy; callers may not mutate the table through it.
func AllowedFrom(s Step) []Step {
	next := transitions[s]
	out := make([]Step, len(next))
	copy(out, next)
	return out
}

func reachable(from, to Step) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
