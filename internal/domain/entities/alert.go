package entities

import "time"

// AlertType is the closed set of problems the system raises alerts for.
type AlertType string

const (
	AlertDocumentUnsigned     AlertType = "document-unsigned"
	AlertApprovalOverdue      AlertType = "approval-overdue"
	AlertInvoiceOverdue       AlertType = "invoice-overdue"
	AlertMissingResource      AlertType = "missing-resource"
	AlertCertificationExpired AlertType = "certification-expired"
	AlertScheduleSlip         AlertType = "schedule-slip"
	AlertProposalUnanswered   AlertType = "proposal-unanswered"
)

// IsValidAlertType reports whether t belongs to the closed set.
func IsValidAlertType(t AlertType) bool {
	switch t {
	case AlertDocumentUnsigned, AlertApprovalOverdue, AlertInvoiceOverdue,
		AlertMissingResource, AlertCertificationExpired, AlertScheduleSlip,
		AlertProposalUnanswered:
		return true
	}
	return false
}

// AlertPriority grades alert severity.
type AlertPriority string

const (
	AlertPriorityInfo     AlertPriority = "info"
	AlertPriorityWarning  AlertPriority = "warning"
	AlertPriorityError    AlertPriority = "error"
	AlertPriorityCritical AlertPriority = "critical"
)

// Alert is an automatically raised notice tied to an order.
//
// Storage model (DynamoDB):
//   - PK: order_id
//   - SK: "open#<type>" while unresolved, "resolved#<type>#<id>" afterwards
//
// The SK layout is what enforces the dedup invariant: at most one unresolved
// alert per (order, type) can exist because the open item key is fixed, while
// resolved alerts of the same type keep distinct keys and may recur.
type Alert struct {
	ID         string        `json:"id"`
	OrderID    string        `json:"order_id"`
	Type       AlertType     `json:"type"`
	Priority   AlertPriority `json:"priority"`
	Title      string        `json:"title"`
	Message    string        `json:"message"`
	TargetUser string        `json:"target_user,omitempty"`
	Read       bool          `json:"read"`
	Resolved   bool          `json:"resolved"`
	ReadAt     *time.Time    `json:"read_at,omitempty"`
	ResolvedAt *time.Time    `json:"resolved_at,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
}
