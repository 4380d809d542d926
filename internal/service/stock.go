// internal/service/stock.go
package service

import (
	"context"

	"gmao/internal/models"
	"gmao/internal/repo"
)

// StockLevel classifies a stock quantity against its minimum threshold.
type StockLevel string

const (
	StockCritical StockLevel = "critical"
	StockWarning  StockLevel = "warning"
	StockNormal   StockLevel = "normal"
)

// ClassifyStock returns critical at or below the threshold, warning up to
// 1.5x the threshold, normal above that.
func ClassifyStock(quantity, threshold float64) StockLevel {
	switch {
	case quantity <= threshold:
		return StockCritical
	case quantity <= 1.5*threshold:
		return StockWarning
	default:
		return StockNormal
	}
}

// SuggestReorderQuantity proposes a replenishment quantity of
// max(3*threshold - quantity, 10). Kept as-is from the legacy evaluator for
// behavioral parity.
func SuggestReorderQuantity(quantity, threshold float64) float64 {
	q := 3*threshold - quantity
	if q < 10 {
		q = 10
	}
	return q
}

// ReorderCost prices the suggested reorder quantity.
func ReorderCost(quantity, threshold, unitPrice float64) float64 {
	return SuggestReorderQuantity(quantity, threshold) * unitPrice
}

// StockStatus is the evaluated view of one stock item. Reorder fields are
// populated only when the level is not normal.
type StockStatus struct {
	Item            models.StockItem `json:"item"`
	Level           StockLevel       `json:"level"`
	Value           float64          `json:"value"`
	ReorderQuantity float64          `json:"reorder_quantity,omitempty"`
	ReorderCost     float64          `json:"reorder_cost,omitempty"`
}

// Stock is the read-only evaluator over the stock collection. It never
// mutates quantities; actual replenishment is out of scope.
type Stock struct {
	items *repo.Collection[models.StockItem]
}

func NewStock(items *repo.Collection[models.StockItem]) *Stock {
	return &Stock{items: items}
}

// Levels evaluates every stock item.
func (s *Stock) Levels(ctx context.Context) ([]StockStatus, error) {
	items, err := s.items.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]StockStatus, 0, len(items))
	for _, it := range items {
		st := StockStatus{
			Item:  it,
			Level: ClassifyStock(it.Quantity, it.MinThreshold),
			Value: it.Value(),
		}
		if st.Level != StockNormal {
			st.ReorderQuantity = SuggestReorderQuantity(it.Quantity, it.MinThreshold)
			st.ReorderCost = ReorderCost(it.Quantity, it.MinThreshold, it.UnitPrice)
		}
		out = append(out, st)
	}
	return out, nil
}

// Alerts filters Levels down to critical and warning items.
func (s *Stock) Alerts(ctx context.Context) ([]StockStatus, error) {
	all, err := s.Levels(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]StockStatus, 0)
	for _, st := range all {
		if st.Level != StockNormal {
			out = append(out, st)
		}
	}
	return out, nil
}
