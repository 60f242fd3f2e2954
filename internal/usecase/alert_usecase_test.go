package usecase

import (
	"context"
	"errors"
	"testing"

	"cermont_os/internal/domain/entities"
	mock_interfaces "cermont_os/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAlertUseCase_Raise(t *testing.T) {
	t.Run("invalid order id", func(t *testing.T) {
		uc := NewAlertUseCase(nil, nil)
		_, err := uc.Raise(context.Background(), " ", entities.AlertDocumentUnsigned, entities.AlertPriorityWarning, "t", "m", "")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("invalid alert type", func(t *testing.T) {
		uc := NewAlertUseCase(nil, nil)
		_, err := uc.Raise(context.Background(), "ord-1", entities.AlertType("made-up"), entities.AlertPriorityWarning, "t", "m", "")
		if !errors.Is(err, ErrInvalidAlertType) {
			t.Fatalf("expected ErrInvalidAlertType, got %v", err)
		}
	})

	t.Run("creates when absent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAlertRepository(ctrl)
		uc := NewAlertUseCase(repo, nil)

		repo.EXPECT().CreateOpenIfAbsent(gomock.Any(), gomock.AssignableToTypeOf(entities.Alert{})).DoAndReturn(
			func(_ context.Context, a entities.Alert) (entities.Alert, bool, error) {
				if a.ID == "" || a.Read || a.Resolved || a.CreatedAt.IsZero() {
					t.Fatalf("unexpected candidate: %+v", a)
				}
				return a, true, nil
			},
		)

		alert, err := uc.Raise(context.Background(), "ord-1", entities.AlertDocumentUnsigned, entities.AlertPriorityWarning, "Unsigned", "msg", "tech-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if alert.Type != entities.AlertDocumentUnsigned || alert.TargetUser != "tech-1" {
			t.Fatalf("unexpected alert: %+v", alert)
		}
	})

	t.Run("raising twice returns the same alert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAlertRepository(ctrl)
		uc := NewAlertUseCase(repo, nil)

		stored := entities.Alert{}
		repo.EXPECT().CreateOpenIfAbsent(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Alert) (entities.Alert, bool, error) {
				if stored.ID == "" {
					stored = a
					return a, true, nil
				}
				return stored, false, nil
			},
		).Times(2)

		first, err := uc.Raise(context.Background(), "ord-1", entities.AlertDocumentUnsigned, entities.AlertPriorityWarning, "Unsigned", "msg", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.Raise(context.Background(), "ord-1", entities.AlertDocumentUnsigned, entities.AlertPriorityWarning, "Unsigned", "msg", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.ID != second.ID {
			t.Fatalf("dedup must return the same alert: %q vs %q", first.ID, second.ID)
		}
	})

	t.Run("defaults empty priority to info", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAlertRepository(ctrl)
		uc := NewAlertUseCase(repo, nil)

		repo.EXPECT().CreateOpenIfAbsent(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Alert) (entities.Alert, bool, error) {
				if a.Priority != entities.AlertPriorityInfo {
					t.Fatalf("expected info priority, got %s", a.Priority)
				}
				return a, true, nil
			},
		)

		if _, err := uc.Raise(context.Background(), "ord-1", entities.AlertScheduleSlip, "", "t", "m", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAlertUseCase_MarkReadAndResolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIAlertRepository(ctrl)
	uc := NewAlertUseCase(repo, nil)

	t.Run("mark read not found", func(t *testing.T) {
		repo.EXPECT().MarkRead(gomock.Any(), "ord-1", entities.AlertInvoiceOverdue).Return(entities.Alert{}, nil)
		_, err := uc.MarkRead(context.Background(), "ord-1", entities.AlertInvoiceOverdue)
		if !errors.Is(err, ErrAlertNotFound) {
			t.Fatalf("expected ErrAlertNotFound, got %v", err)
		}
	})

	t.Run("resolve success", func(t *testing.T) {
		repo.EXPECT().Resolve(gomock.Any(), "ord-1", entities.AlertInvoiceOverdue).Return(
			entities.Alert{ID: "al-1", OrderID: "ord-1", Type: entities.AlertInvoiceOverdue, Resolved: true}, nil)
		alert, err := uc.Resolve(context.Background(), "ord-1", entities.AlertInvoiceOverdue)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !alert.Resolved {
			t.Fatalf("expected resolved alert, got %+v", alert)
		}
	})

	t.Run("mark read after resolve", func(t *testing.T) {
		// Resolving re-keys the row out of the open slot, so a later
		// read-mark finds no open alert of the type.
		repo.EXPECT().Resolve(gomock.Any(), "ord-2", entities.AlertDocumentUnsigned).Return(
			entities.Alert{ID: "al-2", OrderID: "ord-2", Type: entities.AlertDocumentUnsigned, Resolved: true}, nil)
		repo.EXPECT().MarkRead(gomock.Any(), "ord-2", entities.AlertDocumentUnsigned).Return(entities.Alert{}, nil)

		if _, err := uc.Resolve(context.Background(), "ord-2", entities.AlertDocumentUnsigned); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := uc.MarkRead(context.Background(), "ord-2", entities.AlertDocumentUnsigned)
		if !errors.Is(err, ErrAlertNotFound) {
			t.Fatalf("expected ErrAlertNotFound, got %v", err)
		}
	})

	t.Run("resolve invalid type", func(t *testing.T) {
		_, err := uc.Resolve(context.Background(), "ord-1", entities.AlertType("nope"))
		if !errors.Is(err, ErrInvalidAlertType) {
			t.Fatalf("expected ErrInvalidAlertType, got %v", err)
		}
	})
}
