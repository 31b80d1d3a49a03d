package service

import (
	"errors"
	"fmt"
	"time"

	"herdbook-backend/internal/database/models"
	apperrors "herdbook-backend/internal/errors"
	"herdbook-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnimalService handles business logic for animal records
type AnimalService struct {
	animalRepo repository.AnimalRepositoryInterface
	validator  *validator.Validate
}

// NewAnimalService creates a new animal service
func NewAnimalService(animalRepo repository.AnimalRepositoryInterface, validator *validator.Validate) *AnimalService {
	return &AnimalService{
		animalRepo: animalRepo,
		validator:  validator,
	}
}

// CreateAnimalRequest represents the request to register an animal
type CreateAnimalRequest struct {
	Name      string     `json:"name" validate:"required,min=1,max=100"`
	Species   string     `json:"species" validate:"required"`
	Sex       string     `json:"sex" validate:"required"`
	BreedText string     `json:"breed_text,omitempty" validate:"max=100"`
	TagNumber string     `json:"tag_number,omitempty" validate:"max=50"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	Notes     string     `json:"notes,omitempty"`
}

// UpdateAnimalRequest represents a partial update to an animal
type UpdateAnimalRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	BreedText *string `json:"breed_text,omitempty" validate:"omitempty,max=100"`
	TagNumber *string `json:"tag_number,omitempty" validate:"omitempty,max=50"`
	Status    *string `json:"status,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// AnimalResponse represents the response for animal operations
type AnimalResponse struct {
	ID        uuid.UUID           `json:"id"`
	Name      string              `json:"name"`
	Species   models.Species      `json:"species"`
	Sex       models.Sex          `json:"sex"`
	BreedText string              `json:"breed_text,omitempty"`
	TagNumber string              `json:"tag_number,omitempty"`
	BirthDate *string             `json:"birth_date,omitempty"`
	Status    models.AnimalStatus `json:"status"`
	Notes     string              `json:"notes,omitempty"`
	CreatedAt string              `json:"created_at"`
}

// AnimalListResponse represents a paginated list of animals
type AnimalListResponse struct {
	Animals  []AnimalResponse `json:"animals"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// AnimalListFilter holds optional animal list filters
type AnimalListFilter struct {
	Species *models.Species
	Sex     *models.Sex
	Status  *models.AnimalStatus
}

// Create registers a new animal for an organization
func (s *AnimalService) Create(organizationID uuid.UUID, req *CreateAnimalRequest) (*AnimalResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	species, ok := models.ParseSpecies(req.Species)
	if !ok {
		return nil, apperrors.NewValidationError("species", "unknown species")
	}
	sex := models.Sex(req.Sex)
	if !sex.IsValid() {
		return nil, apperrors.NewValidationError("sex", "sex must be MALE or FEMALE")
	}

	animal := &models.Animal{
		OrganizationID: organizationID,
		Name:           req.Name,
		Species:        species,
		Sex:            sex,
		BreedText:      req.BreedText,
		TagNumber:      req.TagNumber,
		BirthDate:      req.BirthDate,
		Status:         models.AnimalStatusActive,
		Notes:          req.Notes,
	}
	if err := s.animalRepo.Create(animal); err != nil {
		return nil, fmt.Errorf("failed to create animal: %w", err)
	}
	return toAnimalResponse(animal), nil
}

// GetByID retrieves an animal by ID
func (s *AnimalService) GetByID(organizationID, animalID uuid.UUID) (*AnimalResponse, error) {
	animal, err := s.animalRepo.GetByID(organizationID, animalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAnimalNotFound
		}
		return nil, fmt.Errorf("failed to load animal: %w", err)
	}
	return toAnimalResponse(animal), nil
}

// List retrieves an organization's animals with optional filters
func (s *AnimalService) List(organizationID uuid.UUID, filter AnimalListFilter, page, pageSize int) (*AnimalListResponse, error) {
	if page < 1 || pageSize < 1 {
		return nil, apperrors.NewValidationError("page", apperrors.ErrInvalidPaginationParams.Error())
	}

	offset := (page - 1) * pageSize
	animals, total, err := s.animalRepo.GetByOrganizationID(organizationID, filter.Species, filter.Sex, filter.Status, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list animals: %w", err)
	}

	responses := make([]AnimalResponse, 0, len(animals))
	for i := range animals {
		responses = append(responses, *toAnimalResponse(&animals[i]))
	}
	return &AnimalListResponse{
		Animals:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update applies a partial update to an animal
func (s *AnimalService) Update(organizationID, animalID uuid.UUID, req *UpdateAnimalRequest) (*AnimalResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	animal, err := s.animalRepo.GetByID(organizationID, animalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAnimalNotFound
		}
		return nil, fmt.Errorf("failed to load animal: %w", err)
	}

	if req.Name != nil {
		animal.Name = *req.Name
	}
	if req.BreedText != nil {
		animal.BreedText = *req.BreedText
	}
	if req.TagNumber != nil {
		animal.TagNumber = *req.TagNumber
	}
	if req.Status != nil {
		status := models.AnimalStatus(*req.Status)
		if !status.IsValid() {
			return nil, apperrors.NewValidationError("status", apperrors.ErrInvalidStatus.Error())
		}
		animal.Status = status
	}
	if req.Notes != nil {
		animal.Notes = *req.Notes
	}

	if err := s.animalRepo.Update(animal); err != nil {
		return nil, fmt.Errorf("failed to update animal: %w", err)
	}
	return toAnimalResponse(animal), nil
}

// Delete removes an animal record
func (s *AnimalService) Delete(organizationID, animalID uuid.UUID) error {
	if _, err := s.animalRepo.GetByID(organizationID, animalID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAnimalNotFound
		}
		return fmt.Errorf("failed to load animal: %w", err)
	}
	return s.animalRepo.Delete(organizationID, animalID)
}

// toAnimalResponse maps an animal to its response form
func toAnimalResponse(animal *models.Animal) *AnimalResponse {
	resp := &AnimalResponse{
		ID:        animal.ID,
		Name:      animal.Name,
		Species:   animal.Species,
		Sex:       animal.Sex,
		BreedText: animal.BreedText,
		TagNumber: animal.TagNumber,
		Status:    animal.Status,
		Notes:     animal.Notes,
		CreatedAt: animal.CreatedAt.Format(time.RFC3339),
	}
	resp.BirthDate = formatDatePtr(animal.BirthDate)
	return resp
}
