package metrics

import (
	"testing"

	"go-inventario/internal/model"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveInventory(t *testing.T) {
	ObserveInventory([]model.InventoryRow{
		{Status: model.StockOut},
		{Status: model.StockLow},
		{Status: model.StockLow},
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(ProductsByStatus.WithLabelValues("out_of_stock")))
	assert.Equal(t, 2.0, testutil.ToFloat64(ProductsByStatus.WithLabelValues("low_stock")))
	assert.Equal(t, 0.0, testutil.ToFloat64(ProductsByStatus.WithLabelValues("normal")))
}
