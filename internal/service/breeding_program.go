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

// BreedingProgramService handles business logic for breeding programs
type BreedingProgramService struct {
	programRepo repository.BreedingProgramRepositoryInterface
	validator   *validator.Validate
}

// NewBreedingProgramService creates a new breeding program service
func NewBreedingProgramService(programRepo repository.BreedingProgramRepositoryInterface, validator *validator.Validate) *BreedingProgramService {
	return &BreedingProgramService{
		programRepo: programRepo,
		validator:   validator,
	}
}

// CreateProgramRequest represents the request to create a breeding program
type CreateProgramRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Species     string `json:"species" validate:"required"`
	Description string `json:"description,omitempty"`
}

// UpdateProgramRequest represents a partial update to a breeding program
type UpdateProgramRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty"`
}

// ProgramResponse represents the response for program operations
type ProgramResponse struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Species     models.Species `json:"species"`
	Description string         `json:"description,omitempty"`
	CreatedAt   string         `json:"created_at"`
}

// ProgramListResponse represents a paginated list of programs
type ProgramListResponse struct {
	Programs []ProgramResponse `json:"programs"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// Create creates a new breeding program
func (s *BreedingProgramService) Create(organizationID uuid.UUID, req *CreateProgramRequest) (*ProgramResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	species, ok := models.ParseSpecies(req.Species)
	if !ok {
		return nil, apperrors.NewValidationError("species", "unknown species")
	}

	program := &models.BreedingProgram{
		OrganizationID: organizationID,
		Name:           req.Name,
		Species:        species,
		Description:    req.Description,
	}
	if err := s.programRepo.Create(program); err != nil {
		return nil, fmt.Errorf("failed to create breeding program: %w", err)
	}
	return toProgramResponse(program), nil
}

// GetByID retrieves a breeding program by ID
func (s *BreedingProgramService) GetByID(organizationID, programID uuid.UUID) (*ProgramResponse, error) {
	program, err := s.programRepo.GetByID(organizationID, programID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProgramNotFound
		}
		return nil, fmt.Errorf("failed to load breeding program: %w", err)
	}
	return toProgramResponse(program), nil
}

// List retrieves an organization's breeding programs
func (s *BreedingProgramService) List(organizationID uuid.UUID, page, pageSize int) (*ProgramListResponse, error) {
	if page < 1 || pageSize < 1 {
		return nil, apperrors.NewValidationError("page", apperrors.ErrInvalidPaginationParams.Error())
	}

	offset := (page - 1) * pageSize
	programs, total, err := s.programRepo.GetByOrganizationID(organizationID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list breeding programs: %w", err)
	}

	responses := make([]ProgramResponse, 0, len(programs))
	for i := range programs {
		responses = append(responses, *toProgramResponse(&programs[i]))
	}
	return &ProgramListResponse{
		Programs: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update applies a partial update to a breeding program
func (s *BreedingProgramService) Update(organizationID, programID uuid.UUID, req *UpdateProgramRequest) (*ProgramResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	program, err := s.programRepo.GetByID(organizationID, programID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProgramNotFound
		}
		return nil, fmt.Errorf("failed to load breeding program: %w", err)
	}

	if req.Name != nil {
		program.Name = *req.Name
	}
	if req.Description != nil {
		program.Description = *req.Description
	}
	if err := s.programRepo.Update(program); err != nil {
		return nil, fmt.Errorf("failed to update breeding program: %w", err)
	}
	return toProgramResponse(program), nil
}

// Delete removes a breeding program
func (s *BreedingProgramService) Delete(organizationID, programID uuid.UUID) error {
	if _, err := s.programRepo.GetByID(organizationID, programID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProgramNotFound
		}
		return fmt.Errorf("failed to load breeding program: %w", err)
	}
	return s.programRepo.Delete(organizationID, programID)
}

// toProgramResponse maps a breeding program to its response form
func toProgramResponse(program *models.BreedingProgram) *ProgramResponse {
	return &ProgramResponse{
		ID:          program.ID,
		Name:        program.Name,
		Species:     program.Species,
		Description: program.Description,
		CreatedAt:   program.CreatedAt.Format(time.RFC3339),
	}
}
