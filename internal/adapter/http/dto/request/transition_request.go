package request

import "strings"

// TransitionRequest is the payload for PATCH /orders/:id/state.
//
// `to_step` names the destination; the server decides legality from the
// order's current step, so the payload never carries the source.
type TransitionRequest struct {
	ToStep   string            `json:"to_step" binding:"required"`
	ActorID  string            `json:"actor_id"`
	Reason   string            `json:"reason"`
	Metadata map[string]string `json:"metadata"`
}

func (r TransitionRequest) ResolveToStep() string {
	return strings.TrimSpace(r.ToStep)
}
