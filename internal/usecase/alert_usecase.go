package usecase

import (
	"context"
	"strings"
	"time"

	"cermont_os/internal/domain/entities"
	"cermont_os/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IAlertUseCase is the alert deduplication policy shared by the trigger
// engine and by the periodic sweep jobs. Raise guarantees at most one
// unresolved alert per (order, type); callers are idempotent by construction.
type IAlertUseCase interface {
	Raise(ctx context.Context, orderID string, t entities.AlertType, priority entities.AlertPriority, title, message, targetUser string) (entities.Alert, error)
	ListByOrder(ctx context.Context, orderID string) ([]entities.Alert, error)
	MarkRead(ctx context.Context, orderID string, t entities.AlertType) (entities.Alert, error)
	Resolve(ctx context.Context, orderID string, t entities.AlertType) (entities.Alert, error)
}

type AlertUseCase struct {
	repo   interfaces.IAlertRepository
	logger *zap.Logger
}

var _ IAlertUseCase = (*AlertUseCase)(nil)

func NewAlertUseCase(repo interfaces.IAlertRepository, logger *zap.Logger) *AlertUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AlertUseCase{repo: repo, logger: logger}
}

// Raise returns the existing unresolved alert for (orderID, t) unchanged, or
// creates a new one. Resolved alerts of the same type do not block a new
// raise; "unresolved" is the dedup scope.
func (u *AlertUseCase) Raise(
	ctx context.Context,
	orderID string,
	t entities.AlertType,
	priority entities.AlertPriority,
	title, message, targetUser string,
) (entities.Alert, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Alert{}, ErrInvalidOrderID
	}
	if !entities.IsValidAlertType(t) {
		return entities.Alert{}, ErrInvalidAlertType
	}
	if priority == "" {
		priority = entities.AlertPriorityInfo
	}

	candidate := entities.Alert{
		ID:         uuid.NewString(),
		OrderID:    orderID,
		Type:       t,
		Priority:   priority,
		Title:      strings.TrimSpace(title),
		Message:    strings.TrimSpace(message),
		TargetUser: strings.TrimSpace(targetUser),
		Read:       false,
		Resolved:   false,
		CreatedAt:  time.Now().UTC(),
	}

	alert, created, err := u.repo.CreateOpenIfAbsent(ctx, candidate)
	if err != nil {
		return entities.Alert{}, err
	}
	if !created {
		u.logger.Debug("alert deduplicated",
			zap.String("order_id", orderID),
			zap.String("type", string(t)),
			zap.String("existing_id", alert.ID),
		)
	}
	return alert, nil
}

func (u *AlertUseCase) ListByOrder(ctx context.Context, orderID string) ([]entities.Alert, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	return u.repo.ListByOrder(ctx, orderID)
}

func (u *AlertUseCase) MarkRead(ctx context.Context, orderID string, t entities.AlertType) (entities.Alert, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Alert{}, ErrInvalidOrderID
	}
	if !entities.IsValidAlertType(t) {
		return entities.Alert{}, ErrInvalidAlertType
	}

	alert, err := u.repo.MarkRead(ctx, orderID, t)
	if err != nil {
		return entities.Alert{}, err
	}
	if alert.ID == "" {
		return entities.Alert{}, ErrAlertNotFound
	}
	return alert, nil
}

func (u *AlertUseCase) Resolve(ctx context.Context, orderID string, t entities.AlertType) (entities.Alert, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Alert{}, ErrInvalidOrderID
	}
	if !entities.IsValidAlertType(t) {
		return entities.Alert{}, ErrInvalidAlertType
	}

	alert, err := u.repo.Resolve(ctx, orderID, t)
	if err != nil {
		return entities.Alert{}, err
	}
	if alert.ID == "" {
		return entities.Alert{}, ErrAlertNotFound
	}
	return alert, nil
}
