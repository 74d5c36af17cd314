package repository

import (
	"context"

	"go-inventario/internal/model"

	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	FindAll(ctx context.Context) ([]model.ProductDetail, error)
	FindOptions(ctx context.Context) ([]model.ProductOption, error)
	FindIDByName(ctx context.Context, name string) (uint, error)
	FindDetail(ctx context.Context, id uint) (*model.ProductDetail, error)
	DeleteWithMovements(ctx context.Context, id uint) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepo) detailQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("products AS p").
		Select("p.id, p.code, p.name, p.category_id, COALESCE(c.name, '') AS category_name, p.laboratory").
		Joins("LEFT JOIN categories c ON c.id = p.category_id")
}

// FindAll lists products newest first, joined with their category name.
func (r *productRepo) FindAll(ctx context.Context) ([]model.ProductDetail, error) {
	var products []model.ProductDetail
	err := r.detailQuery(ctx).Order("p.id DESC").Scan(&products).Error
	return products, err
}

func (r *productRepo) FindOptions(ctx context.Context) ([]model.ProductOption, error) {
	var options []model.ProductOption
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Select("id, name").
		Order("name ASC").
		Scan(&options).Error
	return options, err
}

func (r *productRepo) FindIDByName(ctx context.Context, name string) (uint, error) {
	var product model.Product
	if err := r.db.WithContext(ctx).Select("id").Where("name = ?", name).First(&product).Error; err != nil {
		return 0, err
	}
	return product.ID, nil
}

func (r *productRepo) FindDetail(ctx context.Context, id uint) (*model.ProductDetail, error) {
	var detail model.ProductDetail
	res := r.detailQuery(ctx).Where("p.id = ?", id).Limit(1).Scan(&detail)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &detail, nil
}

// DeleteWithMovements deletes the movements of the product and then the
// product itself in one transaction. Nothing is deleted if either step fails.
func (r *productRepo) DeleteWithMovements(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&model.Movement{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Product{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
