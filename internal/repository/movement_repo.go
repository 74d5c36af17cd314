package repository

import (
	"context"

	"go-inventario/internal/model"

	"gorm.io/gorm"
)

type MovementRepository interface {
	Create(ctx context.Context, movement *model.Movement) error
	FindAll(ctx context.Context) ([]model.MovementRow, error)
	FindByProduct(ctx context.Context, productID uint) ([]model.Movement, error)
}

type movementRepo struct {
	db *gorm.DB
}

func NewMovementRepo(db *gorm.DB) MovementRepository {
	return &movementRepo{db}
}

func (r *movementRepo) Create(ctx context.Context, movement *model.Movement) error {
	return r.db.WithContext(ctx).Create(movement).Error
}

// FindAll lists every movement newest first with the product name attached.
func (r *movementRepo) FindAll(ctx context.Context) ([]model.MovementRow, error) {
	var rows []model.MovementRow
	err := r.db.WithContext(ctx).
		Table("movements AS m").
		Select("m.id, m.product_id, p.name AS product_name, m.date, m.type, m.unit_price, m.quantity, m.notes").
		Joins("INNER JOIN products p ON p.id = m.product_id").
		Order("m.id DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *movementRepo) FindByProduct(ctx context.Context, productID uint) ([]model.Movement, error) {
	var movements []model.Movement
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("id ASC").
		Find(&movements).Error
	return movements, err
}
