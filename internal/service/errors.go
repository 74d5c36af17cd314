package service

import (
	"go-inventario/internal/apperror"
	"go-inventario/internal/metrics"
	"go-inventario/pkg/validator"

	"github.com/rs/zerolog/log"
)

// ChangeNotifier is told about every successful mutation so open list views
// can reload.
type ChangeNotifier interface {
	Notify(entity, action string, id uint)
}

const (
	EntityCategory = "category"
	EntityProduct  = "product"
	EntityMovement = "movement"

	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

func validationError(errs []*validator.ErrorResponse) error {
	msg := validator.Describe(errs[0])
	log.Debug().Str("field", errs[0].FailedField).Str("tag", errs[0].Tag).Msg("validation failed")
	return apperror.Validation(msg)
}

// storageError logs an unexpected database failure and hides it behind a
// generic message.
func storageError(op string, err error) error {
	log.Error().Err(err).Str("op", op).Msg("storage operation failed")
	return apperror.Unexpected("an error occurred while "+op, err)
}

func conflictError(entity, msg string) error {
	metrics.Conflicts.WithLabelValues(entity).Inc()
	return apperror.Conflict(msg)
}

func notify(n ChangeNotifier, entity, action string, id uint) {
	metrics.Mutations.WithLabelValues(entity, action).Inc()
	if n != nil {
		n.Notify(entity, action, id)
	}
}
