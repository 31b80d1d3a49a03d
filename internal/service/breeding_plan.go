package service

import (
	"errors"
	"fmt"

	"herdbook-backend/internal/database/models"
	apperrors "herdbook-backend/internal/errors"
	"herdbook-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BreedingPlanService handles read access to individual breeding plans.
// Plans are created by pregnancy confirmation in breeding groups; their
// downstream lifecycle is owned elsewhere.
type BreedingPlanService struct {
	planRepo repository.BreedingPlanRepositoryInterface
}

// NewBreedingPlanService creates a new breeding plan service
func NewBreedingPlanService(planRepo repository.BreedingPlanRepositoryInterface) *BreedingPlanService {
	return &BreedingPlanService{planRepo: planRepo}
}

// PlanResponse represents the response for breeding plan operations
type PlanResponse struct {
	ID                uuid.UUID         `json:"id"`
	ProgramID         *uuid.UUID        `json:"program_id,omitempty"`
	Name              string            `json:"name"`
	Species           models.Species    `json:"species"`
	BreedText         string            `json:"breed_text,omitempty"`
	DamID             uuid.UUID         `json:"dam_id"`
	SireID            uuid.UUID         `json:"sire_id"`
	Status            models.PlanStatus `json:"status"`
	ExpectedBirthDate *string           `json:"expected_birth_date,omitempty"`
	BreedDateActual   *string           `json:"breed_date_actual,omitempty"`
	Notes             string            `json:"notes,omitempty"`
}

// PlanListResponse represents a paginated list of breeding plans
type PlanListResponse struct {
	Plans    []PlanResponse `json:"plans"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// GetByID retrieves a breeding plan by ID
func (s *BreedingPlanService) GetByID(organizationID, planID uuid.UUID) (*PlanResponse, error) {
	plan, err := s.planRepo.GetByID(organizationID, planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBreedingPlanNotFound
		}
		return nil, fmt.Errorf("failed to load breeding plan: %w", err)
	}
	return toPlanResponse(plan), nil
}

// List retrieves an organization's breeding plans
func (s *BreedingPlanService) List(organizationID uuid.UUID, page, pageSize int) (*PlanListResponse, error) {
	if page < 1 || pageSize < 1 {
		return nil, apperrors.NewValidationError("page", apperrors.ErrInvalidPaginationParams.Error())
	}

	offset := (page - 1) * pageSize
	plans, total, err := s.planRepo.GetByOrganizationID(organizationID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list breeding plans: %w", err)
	}

	responses := make([]PlanResponse, 0, len(plans))
	for i := range plans {
		responses = append(responses, *toPlanResponse(&plans[i]))
	}
	return &PlanListResponse{
		Plans:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// toPlanResponse maps a breeding plan to its response form
func toPlanResponse(plan *models.BreedingPlan) *PlanResponse {
	resp := &PlanResponse{
		ID:        plan.ID,
		ProgramID: plan.ProgramID,
		Name:      plan.Name,
		Species:   plan.Species,
		BreedText: plan.BreedText,
		DamID:     plan.DamID,
		SireID:    plan.SireID,
		Status:    plan.Status,
		Notes:     plan.Notes,
	}
	resp.ExpectedBirthDate = formatDatePtr(plan.ExpectedBirthDate)
	resp.BreedDateActual = formatDatePtr(plan.BreedDateActual)
	return resp
}
