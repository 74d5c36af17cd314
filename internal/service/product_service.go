package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-inventario/internal/apperror"
	"go-inventario/internal/model"
	"go-inventario/internal/repository"
	"go-inventario/pkg/validator"

	"gorm.io/gorm"
)

type ProductService interface {
	CreateProduct(ctx context.Context, req *CreateProductRequest) (*model.ProductDetail, error)
	DeleteProduct(ctx context.Context, id uint) error
	GetAllProducts(ctx context.Context) ([]model.ProductDetail, error)
	GetProductOptions(ctx context.Context) ([]model.ProductOption, error)
	GetProduct(ctx context.Context, id uint) (*model.ProductDetail, error)
	GetProductMovements(ctx context.Context, id uint) ([]model.Movement, error)
}

// CreateProductRequest names the category either by id or by name; the id
// wins when both are given.
type CreateProductRequest struct {
	Code       string `json:"code" validate:"required,max=50"`
	Name       string `json:"name" validate:"required,max=255"`
	CategoryID *uint  `json:"category_id"`
	Category   string `json:"category" validate:"max=100"`
	Laboratory string `json:"laboratory" validate:"max=255"`
}

type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	movementRepo repository.MovementRepository
	notifier     ChangeNotifier
}

func NewProductService(pRepo repository.ProductRepository, cRepo repository.CategoryRepository, mRepo repository.MovementRepository, notifier ChangeNotifier) ProductService {
	return &productService{
		productRepo:  pRepo,
		categoryRepo: cRepo,
		movementRepo: mRepo,
		notifier:     notifier,
	}
}

func (s *productService) CreateProduct(ctx context.Context, req *CreateProductRequest) (*model.ProductDetail, error) {
	req.Code = strings.TrimSpace(req.Code)
	req.Name = strings.TrimSpace(req.Name)
	req.Category = strings.TrimSpace(req.Category)
	req.Laboratory = strings.TrimSpace(req.Laboratory)
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	categoryID, categoryName, err := s.resolveCategory(ctx, req)
	if err != nil {
		return nil, err
	}

	product := &model.Product{
		Code:       req.Code,
		Name:       req.Name,
		CategoryID: &categoryID,
		Laboratory: req.Laboratory,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, conflictError(EntityProduct, fmt.Sprintf("a product with code '%s' already exists", req.Code))
		}
		return nil, storageError("registering the product", err)
	}

	notify(s.notifier, EntityProduct, ActionCreated, product.ID)
	return &model.ProductDetail{
		ID:           product.ID,
		Code:         product.Code,
		Name:         product.Name,
		CategoryID:   product.CategoryID,
		CategoryName: categoryName,
		Laboratory:   product.Laboratory,
	}, nil
}

func (s *productService) resolveCategory(ctx context.Context, req *CreateProductRequest) (uint, string, error) {
	if req.CategoryID != nil {
		category, err := s.categoryRepo.FindByID(ctx, *req.CategoryID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, "", apperror.Validation(fmt.Sprintf("category %d does not exist", *req.CategoryID))
			}
			return 0, "", storageError("looking up the category", err)
		}
		return category.ID, category.Name, nil
	}

	if req.Category == "" {
		return 0, "", apperror.Validation("category cannot be empty")
	}
	id, err := s.categoryRepo.FindIDByName(ctx, req.Category)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, "", apperror.Validation(fmt.Sprintf("category '%s' does not exist", req.Category))
		}
		return 0, "", storageError("looking up the category", err)
	}
	return id, req.Category, nil
}

// DeleteProduct removes the product together with all of its movements.
func (s *productService) DeleteProduct(ctx context.Context, id uint) error {
	if err := s.productRepo.DeleteWithMovements(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("product not found")
		}
		return storageError("deleting the product", err)
	}

	notify(s.notifier, EntityProduct, ActionDeleted, id)
	return nil
}

func (s *productService) GetAllProducts(ctx context.Context) ([]model.ProductDetail, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, storageError("loading products", err)
	}
	return products, nil
}

func (s *productService) GetProductOptions(ctx context.Context) ([]model.ProductOption, error) {
	options, err := s.productRepo.FindOptions(ctx)
	if err != nil {
		return nil, storageError("loading products", err)
	}
	return options, nil
}

func (s *productService) GetProduct(ctx context.Context, id uint) (*model.ProductDetail, error) {
	detail, err := s.productRepo.FindDetail(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("product not found")
		}
		return nil, storageError("loading the product", err)
	}
	return detail, nil
}

// GetProductMovements lists the ledger of one product. An unknown or deleted
// product simply has no movements.
func (s *productService) GetProductMovements(ctx context.Context, id uint) ([]model.Movement, error) {
	movements, err := s.movementRepo.FindByProduct(ctx, id)
	if err != nil {
		return nil, storageError("loading movements", err)
	}
	return movements, nil
}
