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

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MovementService interface {
	RecordMovement(ctx context.Context, req *RecordMovementRequest) (*model.Movement, error)
	GetAllMovements(ctx context.Context) ([]model.MovementRow, error)
}

// RecordMovementRequest names the product either by id or by name; the id
// wins when both are given.
type RecordMovementRequest struct {
	ProductID *uint              `json:"product_id"`
	Product   string             `json:"product"`
	Date      string             `json:"date" validate:"required,ddmmyyyy"`
	Type      model.MovementType `json:"type" validate:"required,oneof=Compra Venta"`
	UnitPrice decimal.Decimal    `json:"unit_price" validate:"gt=0,decimals=2"`
	Quantity  int                `json:"quantity" validate:"gt=0"`
	Notes     string             `json:"notes" validate:"max=500"`
}

type movementService struct {
	movementRepo repository.MovementRepository
	productRepo  repository.ProductRepository
	notifier     ChangeNotifier
}

func NewMovementService(mRepo repository.MovementRepository, pRepo repository.ProductRepository, notifier ChangeNotifier) MovementService {
	return &movementService{
		movementRepo: mRepo,
		productRepo:  pRepo,
		notifier:     notifier,
	}
}

// RecordMovement stores a purchase or a sale. A sale larger than the current
// stock is accepted; stock may go negative.
func (s *movementService) RecordMovement(ctx context.Context, req *RecordMovementRequest) (*model.Movement, error) {
	req.Product = strings.TrimSpace(req.Product)
	req.Date = strings.TrimSpace(req.Date)
	req.Notes = strings.TrimSpace(req.Notes)
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	productID, err := s.resolveProduct(ctx, req)
	if err != nil {
		return nil, err
	}

	movement := &model.Movement{
		ProductID: productID,
		Date:      req.Date,
		Type:      req.Type,
		UnitPrice: req.UnitPrice,
		Quantity:  req.Quantity,
		Notes:     req.Notes,
	}
	if err := s.movementRepo.Create(ctx, movement); err != nil {
		return nil, storageError("recording the movement", err)
	}

	notify(s.notifier, EntityMovement, ActionCreated, movement.ID)
	return movement, nil
}

func (s *movementService) resolveProduct(ctx context.Context, req *RecordMovementRequest) (uint, error) {
	if req.ProductID != nil {
		if _, err := s.productRepo.FindDetail(ctx, *req.ProductID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, apperror.Validation(fmt.Sprintf("product %d does not exist", *req.ProductID))
			}
			return 0, storageError("looking up the product", err)
		}
		return *req.ProductID, nil
	}

	if req.Product == "" {
		return 0, apperror.Validation("product cannot be empty")
	}
	id, err := s.productRepo.FindIDByName(ctx, req.Product)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperror.Validation(fmt.Sprintf("product '%s' does not exist", req.Product))
		}
		return 0, storageError("looking up the product", err)
	}
	return id, nil
}

func (s *movementService) GetAllMovements(ctx context.Context) ([]model.MovementRow, error) {
	rows, err := s.movementRepo.FindAll(ctx)
	if err != nil {
		return nil, storageError("loading movements", err)
	}
	for i := range rows {
		rows[i].Total = model.LineTotal(rows[i].UnitPrice, rows[i].Quantity)
	}
	return rows, nil
}
