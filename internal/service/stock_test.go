package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gmao/internal/repo"
	"gmao/internal/service"
	"gmao/internal/store"
)

func newRegistry(t *testing.T) *repo.Registry {
	t.Helper()
	backend, err := store.NewJSONFile(t.TempDir())
	require.NoError(t, err)
	reg := repo.New(backend)
	t.Cleanup(func() { _ = reg.Close() })
	return reg
}

func TestClassifyStock(t *testing.T) {
	assert.Equal(t, service.StockCritical, service.ClassifyStock(8, 10))
	assert.Equal(t, service.StockCritical, service.ClassifyStock(10, 10))
	assert.Equal(t, service.StockWarning, service.ClassifyStock(12, 10))
	assert.Equal(t, service.StockWarning, service.ClassifyStock(15, 10))
	assert.Equal(t, service.StockNormal, service.ClassifyStock(16, 10))
	assert.Equal(t, service.StockNormal, service.ClassifyStock(20, 10))
	// zero threshold: anything in stock is normal, empty is critical
	assert.Equal(t, service.StockCritical, service.ClassifyStock(0, 0))
	assert.Equal(t, service.StockNormal, service.ClassifyStock(1, 0))
}

func TestSuggestReorderQuantity(t *testing.T) {
	assert.Equal(t, float64(22), service.SuggestReorderQuantity(8, 10))
	assert.Equal(t, float64(18), service.SuggestReorderQuantity(12, 10))
	// floor of 10 when stock already covers the target
	assert.Equal(t, float64(10), service.SuggestReorderQuantity(25, 10))
}

func TestReorderCost(t *testing.T) {
	assert.InDelta(t, 275, service.ReorderCost(8, 10, 12.5), 1e-9)
}

func TestStock_Levels(t *testing.T) {
	reg := newRegistry(t)
	stock := service.NewStock(reg.Stock)

	levels, err := stock.Levels(context.Background())
	require.NoError(t, err)
	require.Len(t, levels, 3)

	byRef := map[string]service.StockStatus{}
	for _, st := range levels {
		byRef[st.Item.Reference] = st
	}

	crit := byRef["ROUL-6204"]
	assert.Equal(t, service.StockCritical, crit.Level)
	assert.InDelta(t, 100, crit.Value, 1e-9) // 8 x 12.5
	assert.Equal(t, float64(22), crit.ReorderQuantity)
	assert.InDelta(t, 275, crit.ReorderCost, 1e-9)

	warn := byRef["COUR-A33"]
	assert.Equal(t, service.StockWarning, warn.Level)
	assert.Equal(t, float64(18), warn.ReorderQuantity)

	norm := byRef["HUIL-46"]
	assert.Equal(t, service.StockNormal, norm.Level)
	assert.Zero(t, norm.ReorderQuantity)
	assert.Zero(t, norm.ReorderCost)
}

func TestStock_Alerts(t *testing.T) {
	reg := newRegistry(t)
	stock := service.NewStock(reg.Stock)

	alerts, err := stock.Alerts(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 2)
	for _, st := range alerts {
		assert.NotEqual(t, service.StockNormal, st.Level)
	}
}
