package metrics

import (
	"go-inventario/internal/model"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Mutations counts successful writes by entity and action.
	Mutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "inventario",
		Name:      "mutations_total",
		Help:      "Successful create/update/delete operations.",
	}, []string{"entity", "action"})

	// Conflicts counts writes rejected as duplicates.
	Conflicts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "inventario",
		Name:      "conflicts_total",
		Help:      "Writes rejected because of a duplicate name or code.",
	}, []string{"entity"})

	ProductsByStatus = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "inventario",
		Name:      "products_by_stock_status",
		Help:      "Products per stock classification at the last inventory render.",
	}, []string{"status"})

	FeedClients = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "inventario",
		Name:      "feed_clients",
		Help:      "Connected change feed clients.",
	})
)

// ObserveInventory records how many rendered rows fall in each status.
func ObserveInventory(rows []model.InventoryRow) {
	counts := map[model.StockStatus]float64{
		model.StockOut:    0,
		model.StockLow:    0,
		model.StockNormal: 0,
	}
	for _, r := range rows {
		counts[r.Status]++
	}
	for status, n := range counts {
		ProductsByStatus.WithLabelValues(string(status)).Set(n)
	}
}
