package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "breeding group"}
		assert.Equal(t, "breeding group not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "dam"}
		err2 := &NotFoundError{Entity: "dam"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "dam"}
		err2 := &NotFoundError{Entity: "sire"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrBreedingGroupNotFound, ErrBreedingGroupNotFound))
		assert.False(t, errors.Is(ErrBreedingGroupNotFound, ErrGroupMemberNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrAnimalNotFound))
		assert.False(t, IsNotFound(ErrSireNotMale))
	})

	t.Run("IsNotFound on wrapped error", func(t *testing.T) {
		wrapped := fmt.Errorf("loading sire: %w", ErrSireNotFound)
		assert.True(t, IsNotFound(wrapped))
	})
}

func TestConflictError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &ConflictError{Entity: "dam", Context: "already committed to another active group"}
		assert.Equal(t, "dam conflict: already committed to another active group", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &ConflictError{Entity: "dam"}
		assert.Equal(t, "dam conflict", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		assert.True(t, errors.Is(ErrDamAlreadyInGroup, ErrDamAlreadyActive))
		assert.False(t, errors.Is(ErrDamAlreadyInGroup, ErrMemberGraduated))
	})

	t.Run("IsConflict helper", func(t *testing.T) {
		assert.True(t, IsConflict(ErrMemberGraduated))
		assert.True(t, IsConflict(ErrGroupHasGraduatedMember))
		assert.False(t, IsConflict(ErrBreedingGroupNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "offspring_count", Message: "must be non-negative"}
		assert.Equal(t, "validation error: offspring_count - must be non-negative", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "species not eligible"}
		assert.Equal(t, "validation error: species not eligible", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("species", "not eligible for group breeding")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrDamAlreadyActive))
	})
}

func TestInvalidStateError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &InvalidStateError{Entity: "breeding group", Message: "exposure can only end while ACTIVE"}
		assert.Equal(t, "breeding group is in an invalid state: exposure can only end while ACTIVE", err.Error())
	})

	t.Run("IsInvalidState helper", func(t *testing.T) {
		err := NewInvalidStateError("breeding group", "not ACTIVE")
		assert.True(t, IsInvalidState(err))
		assert.False(t, IsInvalidState(ErrDamAlreadyActive))
	})
}

func TestConstructors(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("season")
		assert.Equal(t, "season not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewConflictError", func(t *testing.T) {
		err := NewConflictError("membership", "already resolved")
		assert.Equal(t, "membership conflict: already resolved", err.Error())
		assert.True(t, IsConflict(err))
	})

	t.Run("NewConfigurationError", func(t *testing.T) {
		err := NewConfigurationError("gestation table missing")
		assert.Equal(t, "gestation table missing", err.Error())
		assert.True(t, IsConfiguration(err))
	})
}
