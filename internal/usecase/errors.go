package usecase

import (
	"errors"
	"fmt"

	"cermont_os/internal/domain/lifecycle"
)

var (
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrOrderNotFound         = errors.New("order not found")
	ErrMissingRequiredReason = errors.New("transition requires a non-empty reason")

	// ErrStaleState means the order's step changed between read and write.
	// The mutation did not happen; callers may re-read and retry once.
	ErrStaleState = errors.New("order state changed concurrently")

	ErrInvalidAlertType   = errors.New("invalid alert type")
	ErrAlertNotFound      = errors.New("alert not found")
	ErrInvalidCostAmount  = errors.New("invalid cost amount")
	ErrInvalidCostCategory = errors.New("invalid cost category")
	ErrComparisonNotFound = errors.New("cost comparison not found")
)

// ErrIllegalTransition is the errors.Is target for IllegalTransitionError.
var ErrIllegalTransition = errors.New("illegal transition")

// IllegalTransitionError rejects a transition whose destination is not
// reachable from the current step. Allowed carries the steps that would have
// been accepted so the caller can self-correct without another round trip.
type IllegalTransitionError struct {
	From    lifecycle.Step
	To      lifecycle.Step
	Allowed []lifecycle.Step
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal transition %s -> %s", e.From, e.To)
}

func (e *IllegalTransitionError) Is(target error) bool {
	return target == ErrIllegalTransition
}
