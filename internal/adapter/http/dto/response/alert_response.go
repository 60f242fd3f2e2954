package response

import (
	"time"

	"cermont_os/internal/domain/entities"
)

type AlertResponse struct {
	ID         string     `json:"id"`
	OrderID    string     `json:"order_id"`
	Type       string     `json:"type"`
	Priority   string     `json:"priority"`
	Title      string     `json:"title"`
	Message    string     `json:"message"`
	TargetUser string     `json:"target_user,omitempty"`
	Read       bool       `json:"read"`
	Resolved   bool       `json:"resolved"`
	ReadAt     *time.Time `json:"read_at,omitempty"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func FromAlert(a entities.Alert) AlertResponse {
	return AlertResponse{
		ID:         a.ID,
		OrderID:    a.OrderID,
		Type:       string(a.Type),
		Priority:   string(a.Priority),
		Title:      a.Title,
		Message:    a.Message,
		TargetUser: a.TargetUser,
		Read:       a.Read,
		Resolved:   a.Resolved,
		ReadAt:     a.ReadAt,
		ResolvedAt: a.ResolvedAt,
		CreatedAt:  a.CreatedAt,
	}
}

func FromAlerts(alerts []entities.Alert) []AlertResponse {
	out := make([]AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, FromAlert(a))
	}
	return out
}
