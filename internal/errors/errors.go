package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ConflictError represents an error when an operation is incompatible with
// the current state of an entity (e.g. a dam already committed to another
// active group, or modifying a graduated member)
type ConflictError struct {
	Entity  string
	Context string // Additional context like "already in an active group"
}

func (e *ConflictError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s conflict: %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s conflict", e.Entity)
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// InvalidStateError represents an operation applied to an entity whose
// lifecycle status does not permit it (e.g. ending exposure on a group that
// is not ACTIVE)
type InvalidStateError struct {
	Entity  string
	Message string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s is in an invalid state: %s", e.Entity, e.Message)
}

// Is enables errors.Is() comparison for InvalidStateError
func (e *InvalidStateError) Is(target error) bool {
	t, ok := target.(*InvalidStateError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound  = &NotFoundError{Entity: "organization"}
	ErrAnimalNotFound        = &NotFoundError{Entity: "animal"}
	ErrSireNotFound          = &NotFoundError{Entity: "sire"}
	ErrDamNotFound           = &NotFoundError{Entity: "dam"}
	ErrProgramNotFound       = &NotFoundError{Entity: "breeding program"}
	ErrBreedingGroupNotFound = &NotFoundError{Entity: "breeding group"}
	ErrGroupMemberNotFound   = &NotFoundError{Entity: "breeding group member"}
	ErrBreedingPlanNotFound  = &NotFoundError{Entity: "breeding plan"}
)

// Conflict Errors
var (
	ErrDamAlreadyInGroup       = &ConflictError{Entity: "dam", Context: "already a member of this group"}
	ErrDamAlreadyActive        = &ConflictError{Entity: "dam", Context: "already committed to another active group"}
	ErrMemberGraduated         = &ConflictError{Entity: "breeding group member", Context: "already graduated to a breeding plan"}
	ErrGroupHasGraduatedMember = &ConflictError{Entity: "breeding group", Context: "has members graduated to breeding plans"}
)

// Business Logic Errors
var (
	ErrSpeciesNotGroupEligible = errors.New("species is not eligible for group breeding")
	ErrSireSpeciesMismatch     = errors.New("sire species does not match group species")
	ErrSireNotMale             = errors.New("sire must be male")
	ErrDamSpeciesMismatch      = errors.New("dam species does not match group species")
	ErrDamNotFemale            = errors.New("dam must be female")
	ErrInvalidStatus           = errors.New("invalid status")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrBirthBeforePregnancy    = errors.New("birth can only be recorded for a confirmed-pregnant member")
	ErrNegativeOffspringCount  = errors.New("offspring count cannot be negative")
	ErrExposureEndBeforeStart  = errors.New("exposure end date cannot be before exposure start date")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsInvalidState checks if an error is an InvalidStateError
func IsInvalidState(err error) bool {
	var stateErr *InvalidStateError
	return errors.As(err, &stateErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewConflictError creates a new ConflictError for a custom entity
func NewConflictError(entity, context string) error {
	return &ConflictError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewInvalidStateError creates a new InvalidStateError
func NewInvalidStateError(entity, message string) error {
	return &InvalidStateError{Entity: entity, Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
