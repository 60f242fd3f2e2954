package usecase

import (
	"context"
	"errors"
	"testing"

	"cermont_os/internal/domain/entities"
	"cermont_os/internal/domain/lifecycle"
	mock_interfaces "cermont_os/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCostUseCase_Recompute(t *testing.T) {
	t.Run("estimated 100 actual 130", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderStateRepository(ctrl)
		entryRepo := mock_interfaces.NewMockICostEntryRepository(ctrl)
		comparisonRepo := mock_interfaces.NewMockICostComparisonRepository(ctrl)
		uc := NewCostUseCase(orderRepo, entryRepo, comparisonRepo)

		o := testOrder(lifecycle.StepServiceEntryApproved, 8)
		o.Estimate = entities.EstimateBreakdown{Labor: 60, Materials: 40}

		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(o, nil)
		entryRepo.EXPECT().ListByOrder(gomock.Any(), "ord-1").Return([]entities.CostEntry{
			{Amount: 100}, {Amount: 30},
		}, nil)
		comparisonRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.CostComparison) (entities.CostComparison, error) {
				return c, nil
			},
		)

		c, err := uc.Recompute(context.Background(), "ord-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.TotalEstimated != 100 || c.TotalActual != 130 {
			t.Fatalf("unexpected totals: %+v", c)
		}
		if c.VariancePercentage != 30 {
			t.Fatalf("expected variance 30, got %v", c.VariancePercentage)
		}
		if c.RealizedMargin != -30 {
			t.Fatalf("expected margin -30, got %v", c.RealizedMargin)
		}
	})

	t.Run("zero estimate means zero variance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderStateRepository(ctrl)
		entryRepo := mock_interfaces.NewMockICostEntryRepository(ctrl)
		comparisonRepo := mock_interfaces.NewMockICostComparisonRepository(ctrl)
		uc := NewCostUseCase(orderRepo, entryRepo, comparisonRepo)

		o := testOrder(lifecycle.StepServiceEntryApproved, 8)
		o.Estimate = entities.EstimateBreakdown{}

		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(o, nil)
		entryRepo.EXPECT().ListByOrder(gomock.Any(), "ord-1").Return([]entities.CostEntry{{Amount: 500}}, nil)
		comparisonRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.CostComparison) (entities.CostComparison, error) {
				return c, nil
			},
		)

		c, err := uc.Recompute(context.Background(), "ord-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.VariancePercentage != 0 {
			t.Fatalf("expected variance 0 with zero estimate, got %v", c.VariancePercentage)
		}
		if c.RealizedMargin != -500 {
			t.Fatalf("expected margin -500, got %v", c.RealizedMargin)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderStateRepository(ctrl)
		uc := NewCostUseCase(orderRepo, nil, nil)

		orderRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Order{}, nil)

		_, err := uc.Recompute(context.Background(), "missing")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestCostUseCase_AddEntry(t *testing.T) {
	t.Run("invalid amount", func(t *testing.T) {
		uc := NewCostUseCase(nil, nil, nil)
		_, _, err := uc.AddEntry(context.Background(), "ord-1", "labor", "", 0, "")
		if !errors.Is(err, ErrInvalidCostAmount) {
			t.Fatalf("expected ErrInvalidCostAmount, got %v", err)
		}
	})

	t.Run("invalid category", func(t *testing.T) {
		uc := NewCostUseCase(nil, nil, nil)
		_, _, err := uc.AddEntry(context.Background(), "ord-1", "snacks", "", 10, "")
		if !errors.Is(err, ErrInvalidCostCategory) {
			t.Fatalf("expected ErrInvalidCostCategory, got %v", err)
		}
	})

	t.Run("records entry then recomputes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderStateRepository(ctrl)
		entryRepo := mock_interfaces.NewMockICostEntryRepository(ctrl)
		comparisonRepo := mock_interfaces.NewMockICostComparisonRepository(ctrl)
		uc := NewCostUseCase(orderRepo, entryRepo, comparisonRepo)

		o := testOrder(lifecycle.StepWorkInProgress, 6)
		o.Estimate = entities.EstimateBreakdown{Labor: 200}

		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(o, nil).Times(2)
		entryRepo.EXPECT().Add(gomock.Any(), gomock.AssignableToTypeOf(entities.CostEntry{})).DoAndReturn(
			func(_ context.Context, e entities.CostEntry) (entities.CostEntry, error) {
				if e.ID == "" || e.Category != "materials" || e.Amount != 50 {
					t.Fatalf("unexpected entry: %+v", e)
				}
				return e, nil
			},
		)
		entryRepo.EXPECT().ListByOrder(gomock.Any(), "ord-1").Return([]entities.CostEntry{{Amount: 50}}, nil)
		comparisonRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.CostComparison) (entities.CostComparison, error) {
				return c, nil
			},
		)

		entry, comparison, err := uc.AddEntry(context.Background(), "ord-1", "Materials ", "cable reels", 50, "tech-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entry.Category != "materials" {
			t.Fatalf("category must be normalized, got %q", entry.Category)
		}
		if comparison.TotalActual != 50 || comparison.RealizedMargin != 150 {
			t.Fatalf("unexpected comparison: %+v", comparison)
		}
	})
}
