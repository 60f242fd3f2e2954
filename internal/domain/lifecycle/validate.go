package lifecycle

import "strings"

// RejectionKind distinguishes "fix the target step" from "fix the input".
type RejectionKind string

const (
	RejectionIllegalTransition RejectionKind = "illegal-transition"
	RejectionMissingReason     RejectionKind = "missing-required-reason"
	RejectionUnknownStep       RejectionKind = "unknown-step"
)

// Rejection explains why a requested transition was refused. For illegal
// transitions it carries the steps that would have been accepted so the
// caller can self-correct without a second round trip.
type Rejection struct {
	Kind         RejectionKind
	From         Step
	To           Step
	AllowedSteps []Step
}

func (r *Rejection) Error() string {
	switch r.Kind {
	case RejectionMissingReason:
		return "transition to " + string(r.To) + " requires a non-empty reason"
	case RejectionUnknownStep:
		return "unknown lifecycle step " + string(r.To)
	default:
		return "illegal transition " + string(r.From) + " -> " + string(r.To)
	}
}

// Validate decides whether moving from current to requested is legal and
// whether the supplied reason satisfies the destination's requirements.
// It is a pure function over the catalog; a nil return means the transition
// may be applied.
func Validate(current, requested Step, reason string) *Rejection {
	if !IsValid(requested) {
		return &Rejection{Kind: RejectionUnknownStep, From: current, To: requested, AllowedSteps: AllowedFrom(current)}
	}
	if !IsValid(current) || !reachable(current, requested) {
		return &Rejection{Kind: RejectionIllegalTransition, From: current, To: requested, AllowedSteps: AllowedFrom(current)}
	}
	if RequiresReason(requested) && strings.TrimSpace(reason) == "" {
		return &Rejection{Kind: RejectionMissingReason, From: current, To: requested}
	}
	return nil
}
