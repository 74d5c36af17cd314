package service

import (
	"context"

	"go-inventario/internal/model"
	"go-inventario/internal/repository"
)

type DashboardService interface {
	GetDashboardStats(ctx context.Context) (*model.DashboardStats, error)
}

type dashboardService struct {
	inventoryRepo repository.InventoryRepository
	inventory     InventoryService
}

func NewDashboardService(iRepo repository.InventoryRepository, inventory InventoryService) DashboardService {
	return &dashboardService{inventoryRepo: iRepo, inventory: inventory}
}

// GetDashboardStats combines row counts with stock classification counts.
// TotalProducts counts every product while the stock counters only cover
// products whose category still exists, so they may not add up to it.
func (s *dashboardService) GetDashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	stats, err := s.inventoryRepo.GetCounts(ctx)
	if err != nil {
		return nil, storageError("loading dashboard stats", err)
	}

	rows, err := s.inventory.GetInventory(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		switch r.Status {
		case model.StockOut:
			stats.OutOfStockCount++
		case model.StockLow:
			stats.LowStockCount++
		}
	}

	stats.LowStockThreshold = s.inventory.LowStockThreshold()
	return stats, nil
}
