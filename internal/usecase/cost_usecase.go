package usecase

import (
	"context"
	"strings"
	"time"

	"cermont_os/internal/domain/entities"
	"cermont_os/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var costCategories = map[string]struct{}{
	"labor":     {},
	"materials": {},
	"equipment": {},
	"transport": {},
	"other":     {},
}

// ICostUseCase derives estimated-vs-actual metrics for an order.
type ICostUseCase interface {
	Recompute(ctx context.Context, orderID string) (entities.CostComparison, error)
	AddEntry(ctx context.Context, orderID, category, description string, amount float64, recordedBy string) (entities.CostEntry, entities.CostComparison, error)
	GetComparison(ctx context.Context, orderID string) (entities.CostComparison, error)
}

type CostUseCase struct {
	orderRepo      interfaces.IOrderStateRepository
	entryRepo      interfaces.ICostEntryRepository
	comparisonRepo interfaces.ICostComparisonRepository
}

var _ ICostUseCase = (*CostUseCase)(nil)

func NewCostUseCase(
	orderRepo interfaces.IOrderStateRepository,
	entryRepo interfaces.ICostEntryRepository,
	comparisonRepo interfaces.ICostComparisonRepository,
) *CostUseCase {
	return &CostUseCase{orderRepo: orderRepo, entryRepo: entryRepo, comparisonRepo: comparisonRepo}
}

// Recompute rebuilds the full CostComparison row from the order's estimate
// and the sum of recorded actual costs, then upserts it. The row is replaced
// whole; there is no incremental patching.
func (u *CostUseCase) Recompute(ctx context.Context, orderID string) (entities.CostComparison, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.CostComparison{}, ErrInvalidOrderID
	}

	o, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return entities.CostComparison{}, err
	}
	if o.ID == "" {
		return entities.CostComparison{}, ErrOrderNotFound
	}

	entries, err := u.entryRepo.ListByOrder(ctx, orderID)
	if err != nil {
		return entities.CostComparison{}, err
	}

	totalActual := 0.0
	for _, e := range entries {
		totalActual += e.Amount
	}

	totalEstimated := o.Estimate.Total()
	variance := 0.0
	if totalEstimated > 0 {
		variance = (totalActual - totalEstimated) / totalEstimated * 100
	}

	c := entities.CostComparison{
		OrderID:            o.ID,
		Estimated:          o.Estimate,
		TotalEstimated:     totalEstimated,
		TotalActual:        totalActual,
		VariancePercentage: variance,
		RealizedMargin:     totalEstimated - totalActual,
		ComputedAt:         time.Now().UTC(),
	}
	return u.comparisonRepo.Upsert(ctx, c)
}

// AddEntry records an actual cost and recomputes the comparison.
func (u *CostUseCase) AddEntry(
	ctx context.Context,
	orderID, category, description string,
	amount float64,
	recordedBy string,
) (entities.CostEntry, entities.CostComparison, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.CostEntry{}, entities.CostComparison{}, ErrInvalidOrderID
	}
	if amount <= 0 {
		return entities.CostEntry{}, entities.CostComparison{}, ErrInvalidCostAmount
	}
	category = strings.ToLower(strings.TrimSpace(category))
	if _, ok := costCategories[category]; !ok {
		return entities.CostEntry{}, entities.CostComparison{}, ErrInvalidCostCategory
	}

	o, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return entities.CostEntry{}, entities.CostComparison{}, err
	}
	if o.ID == "" {
		return entities.CostEntry{}, entities.CostComparison{}, ErrOrderNotFound
	}

	entry := entities.CostEntry{
		ID:          uuid.NewString(),
		OrderID:     orderID,
		Category:    category,
		Description: strings.TrimSpace(description),
		Amount:      amount,
		RecordedBy:  strings.TrimSpace(recordedBy),
		RecordedAt:  time.Now().UTC(),
	}
	created, err := u.entryRepo.Add(ctx, entry)
	if err != nil {
		return entities.CostEntry{}, entities.CostComparison{}, err
	}

	comparison, err := u.Recompute(ctx, orderID)
	if err != nil {
		return entities.CostEntry{}, entities.CostComparison{}, err
	}
	return created, comparison, nil
}

func (u *CostUseCase) GetComparison(ctx context.Context, orderID string) (entities.CostComparison, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.CostComparison{}, ErrInvalidOrderID
	}

	c, err := u.comparisonRepo.GetByOrder(ctx, orderID)
	if err != nil {
		return entities.CostComparison{}, err
	}
	if c.OrderID == "" {
		return entities.CostComparison{}, ErrComparisonNotFound
	}
	return c, nil
}
