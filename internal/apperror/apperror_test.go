package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("name is required")))
	assert.Equal(t, KindConflict, KindOf(fmt.Errorf("create: %w", Conflict("duplicate"))))
	assert.Equal(t, KindNotFound, KindOf(NotFound("missing")))
	assert.Equal(t, KindUnexpected, KindOf(errors.New("disk I/O error")))
}

func TestUnexpectedHidesCause(t *testing.T) {
	cause := errors.New("database is locked")
	err := Unexpected("could not save category", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "could not save category", MessageOf(err))
	assert.Contains(t, err.Error(), "database is locked")
}

func TestMessageOfForeignError(t *testing.T) {
	assert.Equal(t, "unexpected error", MessageOf(errors.New("boom")))
}
