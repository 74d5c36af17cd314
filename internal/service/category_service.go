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

type CategoryService interface {
	CreateCategory(ctx context.Context, req *CategoryRequest) (*model.Category, error)
	UpdateCategory(ctx context.Context, id uint, req *CategoryRequest) (*model.Category, error)
	DeleteCategory(ctx context.Context, id uint) error
	GetAllCategories(ctx context.Context) ([]model.Category, error)
}

type CategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	notifier     ChangeNotifier
}

func NewCategoryService(cRepo repository.CategoryRepository, notifier ChangeNotifier) CategoryService {
	return &categoryService{
		categoryRepo: cRepo,
		notifier:     notifier,
	}
}

func (s *categoryService) CreateCategory(ctx context.Context, req *CategoryRequest) (*model.Category, error) {
	req.Name = strings.TrimSpace(req.Name)
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	category := &model.Category{Name: req.Name}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, conflictError(EntityCategory, fmt.Sprintf("category '%s' already exists", req.Name))
		}
		return nil, storageError("registering the category", err)
	}

	notify(s.notifier, EntityCategory, ActionCreated, category.ID)
	return category, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id uint, req *CategoryRequest) (*model.Category, error) {
	req.Name = strings.TrimSpace(req.Name)
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	if err := s.categoryRepo.UpdateName(ctx, id, req.Name); err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, conflictError(EntityCategory, fmt.Sprintf("category '%s' already exists", req.Name))
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, apperror.NotFound("category not found")
		}
		return nil, storageError("updating the category", err)
	}

	notify(s.notifier, EntityCategory, ActionUpdated, id)
	return &model.Category{ID: id, Name: req.Name}, nil
}

// DeleteCategory removes the category without touching its products.
func (s *categoryService) DeleteCategory(ctx context.Context, id uint) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("category not found")
		}
		return storageError("deleting the category", err)
	}

	notify(s.notifier, EntityCategory, ActionDeleted, id)
	return nil
}

func (s *categoryService) GetAllCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, storageError("loading categories", err)
	}
	return categories, nil
}
