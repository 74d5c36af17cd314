package service

import (
	"context"

	"go-inventario/internal/metrics"
	"go-inventario/internal/model"
	"go-inventario/internal/repository"
)

type InventoryService interface {
	GetInventory(ctx context.Context) ([]model.InventoryRow, error)
	LowStockThreshold() int
}

type inventoryService struct {
	inventoryRepo repository.InventoryRepository
	threshold     int
}

func NewInventoryService(iRepo repository.InventoryRepository, lowStockThreshold int) InventoryService {
	return &inventoryService{
		inventoryRepo: iRepo,
		threshold:     lowStockThreshold,
	}
}

// GetInventory recomputes stock for every product and classifies it against
// the low stock threshold. Nothing is cached.
func (s *inventoryService) GetInventory(ctx context.Context) ([]model.InventoryRow, error) {
	rows, err := s.inventoryRepo.FindInventory(ctx)
	if err != nil {
		return nil, storageError("loading the inventory", err)
	}
	for i := range rows {
		rows[i].Status = model.ClassifyStock(rows[i].Stock, s.threshold)
	}
	metrics.ObserveInventory(rows)
	return rows, nil
}

func (s *inventoryService) LowStockThreshold() int {
	return s.threshold
}
