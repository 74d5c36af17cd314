package repository

import (
	"context"

	"go-inventario/internal/model"

	"gorm.io/gorm"
)

type InventoryRepository interface {
	FindInventory(ctx context.Context) ([]model.InventoryRow, error)
	GetCounts(ctx context.Context) (*model.DashboardStats, error)
}

type inventoryRepo struct {
	db *gorm.DB
}

func NewInventoryRepo(db *gorm.DB) InventoryRepository {
	return &inventoryRepo{db}
}

// Stock is the signed sum of movement quantities: purchases add, sales
// subtract, products without movements get 0. Products whose category no
// longer exists drop out because of the inner join.
const inventoryQuery = `
	SELECT
		p.id AS product_id,
		p.code,
		p.name,
		c.name AS category_name,
		p.laboratory,
		COALESCE(SUM(CASE
			WHEN m.type = ? THEN m.quantity
			WHEN m.type = ? THEN -m.quantity
			ELSE 0
		END), 0) AS stock
	FROM products p
	INNER JOIN categories c ON c.id = p.category_id
	LEFT JOIN movements m ON m.product_id = p.id
	GROUP BY p.id, p.code, p.name, c.name, p.laboratory
	ORDER BY p.name ASC`

// FindInventory runs the aggregation. Status is left empty; classification
// belongs to the caller.
func (r *inventoryRepo) FindInventory(ctx context.Context) ([]model.InventoryRow, error) {
	rows, err := r.db.WithContext(ctx).
		Raw(inventoryQuery, string(model.MovementPurchase), string(model.MovementSale)).
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []model.InventoryRow{}
	for rows.Next() {
		var row model.InventoryRow
		if err := rows.Scan(&row.ProductID, &row.Code, &row.Name, &row.CategoryName, &row.Laboratory, &row.Stock); err != nil {
			return nil, err
		}
		results = append(results, row)
	}

	return results, rows.Err()
}

// GetCounts fills the row counters of the dashboard. Stock classification
// counters are left to the caller.
func (r *inventoryRepo) GetCounts(ctx context.Context) (*model.DashboardStats, error) {
	var stats model.DashboardStats
	db := r.db.WithContext(ctx)

	if err := db.Model(&model.Category{}).Count(&stats.TotalCategories).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.Movement{}).Count(&stats.TotalMovements).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
