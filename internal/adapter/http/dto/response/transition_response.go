package response

import (
	"time"

	"cermont_os/internal/domain/entities"
	"cermont_os/internal/usecase"
)

type OrderStateResponse struct {
	OrderID      string    `json:"order_id"`
	Number       string    `json:"number"`
	CurrentStep  string    `json:"current_step"`
	StepNumber   int       `json:"step_number"`
	TotalSteps   int       `json:"total_steps"`
	CoarseStatus string    `json:"coarse_status"`
	AllowedNext  []string  `json:"allowed_next"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromOrderState(s usecase.OrderState) OrderStateResponse {
	return OrderStateResponse{
		OrderID:      s.OrderID,
		Number:       s.Number,
		CurrentStep:  string(s.CurrentStep),
		StepNumber:   s.StepNumber,
		TotalSteps:   s.TotalSteps,
		CoarseStatus: string(s.CoarseStatus),
		AllowedNext:  stepsToStrings(s.AllowedNext),
		UpdatedAt:    s.UpdatedAt,
	}
}

type TransitionRecordResponse struct {
	ID       string            `json:"id"`
	OrderID  string            `json:"order_id"`
	Seq      int64             `json:"seq"`
	FromStep string            `json:"from_step,omitempty"`
	ToStep   string            `json:"to_step"`
	ActorID  string            `json:"actor_id,omitempty"`
	Note     string            `json:"note,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
	At       time.Time         `json:"at"`
}

func FromTransitionRecord(r entities.TransitionRecord) TransitionRecordResponse {
	return TransitionRecordResponse{
		ID:       r.ID,
		OrderID:  r.OrderID,
		Seq:      r.Seq,
		FromStep: string(r.FromStep),
		ToStep:   string(r.ToStep),
		ActorID:  r.ActorID,
		Note:     r.Note,
		Metadata: r.Metadata,
		At:       r.At,
	}
}

func FromTransitionHistory(records []entities.TransitionRecord) []TransitionRecordResponse {
	out := make([]TransitionRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, FromTransitionRecord(r))
	}
	return out
}

type TransitionResponse struct {
	Order       OrderResponse            `json:"order"`
	Record      TransitionRecordResponse `json:"record"`
	AllowedNext []string                 `json:"allowed_next"`
	Warnings    []string                 `json:"warnings,omitempty"`
}

func FromTransitionResult(r usecase.TransitionResult) TransitionResponse {
	return TransitionResponse{
		Order:       FromOrder(r.Order),
		Record:      FromTransitionRecord(r.Record),
		AllowedNext: stepsToStrings(r.AllowedNext),
		Warnings:    r.Warnings,
	}
}

type LedgerCheckResponse struct {
	OrderID    string `json:"order_id"`
	Consistent bool   `json:"consistent"`
	CachedStep string `json:"cached_step"`
	LedgerStep string `json:"ledger_step"`
	Entries    int    `json:"entries"`
}

func FromLedgerCheck(c usecase.LedgerCheck) LedgerCheckResponse {
	return LedgerCheckResponse{
		OrderID:    c.OrderID,
		Consistent: c.Consistent,
		CachedStep: string(c.CachedStep),
		LedgerStep: string(c.LedgerStep),
		Entries:    c.Entries,
	}
}
