package service

import (
	"errors"
	"fmt"
	"time"

	"herdbook-backend/internal/database/models"
	apperrors "herdbook-backend/internal/errors"
	"herdbook-backend/internal/gestation"
	"herdbook-backend/internal/logger"
	"herdbook-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// BreedingGroupService handles business logic for breeding groups: creation
// with optional dam seeding, partial updates, the exposure-end transition and
// soft deletion.
type BreedingGroupService struct {
	db          *gorm.DB
	groupRepo   repository.BreedingGroupRepositoryInterface
	memberRepo  repository.BreedingGroupMemberRepositoryInterface
	animalRepo  repository.AnimalRepositoryInterface
	programRepo repository.BreedingProgramRepositoryInterface
	gestation   *gestation.Table
	validator   *validator.Validate
}

// NewBreedingGroupService creates a new breeding group service
func NewBreedingGroupService(db *gorm.DB, groupRepo repository.BreedingGroupRepositoryInterface, memberRepo repository.BreedingGroupMemberRepositoryInterface, animalRepo repository.AnimalRepositoryInterface, programRepo repository.BreedingProgramRepositoryInterface, gestationTable *gestation.Table, validator *validator.Validate) *BreedingGroupService {
	return &BreedingGroupService{
		db:          db,
		groupRepo:   groupRepo,
		memberRepo:  memberRepo,
		animalRepo:  animalRepo,
		programRepo: programRepo,
		gestation:   gestationTable,
		validator:   validator,
	}
}

// CreateBreedingGroupRequest represents the request to create a breeding group
type CreateBreedingGroupRequest struct {
	Name              string      `json:"name" validate:"required,min=1,max=100"`
	Species           string      `json:"species" validate:"required"`
	BreedText         string      `json:"breed_text,omitempty" validate:"max=100"`
	Season            string      `json:"season,omitempty" validate:"max=50"`
	SireID            uuid.UUID   `json:"sire_id" validate:"required"`
	ProgramID         *uuid.UUID  `json:"program_id,omitempty"`
	ExposureStartDate time.Time   `json:"exposure_start_date" validate:"required"`
	ExposureEndDate   *time.Time  `json:"exposure_end_date,omitempty"`
	SeedDamIDs        []uuid.UUID `json:"seed_dam_ids,omitempty"`
	Notes             string      `json:"notes,omitempty"`
}

// UpdateBreedingGroupRequest represents a partial update to a breeding group
type UpdateBreedingGroupRequest struct {
	Name            *string    `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	BreedText       *string    `json:"breed_text,omitempty" validate:"omitempty,max=100"`
	Season          *string    `json:"season,omitempty" validate:"omitempty,max=50"`
	ProgramID       *uuid.UUID `json:"program_id,omitempty"`
	Status          *string    `json:"status,omitempty"`
	ExposureEndDate *time.Time `json:"exposure_end_date,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
}

// EndExposureRequest represents the request to end a group's exposure window
type EndExposureRequest struct {
	ExposureEndDate time.Time `json:"exposure_end_date" validate:"required"`
}

// BreedingGroupResponse represents the response for breeding group operations
type BreedingGroupResponse struct {
	ID                uuid.UUID          `json:"id"`
	OrganizationID    uuid.UUID          `json:"organization_id"`
	ProgramID         *uuid.UUID         `json:"program_id,omitempty"`
	Name              string             `json:"name"`
	Species           models.Species     `json:"species"`
	BreedText         string             `json:"breed_text,omitempty"`
	Season            string             `json:"season,omitempty"`
	SireID            uuid.UUID          `json:"sire_id"`
	ExposureStartDate string             `json:"exposure_start_date"`
	ExposureEndDate   *string            `json:"exposure_end_date,omitempty"`
	Status            models.GroupStatus `json:"status"`
	Notes             string             `json:"notes,omitempty"`
	Members           []MemberResponse   `json:"members,omitempty"`
	CreatedAt         string             `json:"created_at"`
	UpdatedAt         string             `json:"updated_at"`
}

// CreateBreedingGroupResponse carries the created group plus the outcome of
// dam seeding: seeding failures are per-dam, never group-fatal
type CreateBreedingGroupResponse struct {
	Group       BreedingGroupResponse `json:"group"`
	SkippedDams []SkippedDam          `json:"skipped_dams,omitempty"`
}

// BreedingGroupListResponse represents a paginated list of breeding groups
type BreedingGroupListResponse struct {
	Groups   []BreedingGroupResponse `json:"groups"`
	Total    int64                   `json:"total"`
	Page     int                     `json:"page"`
	PageSize int                     `json:"page_size"`
}

// Create creates a new breeding group, optionally seeding it with dams.
// Seeding applies the member-addition rules per dam and silently skips dams
// that fail them; the group itself is created atomically with its members.
func (s *BreedingGroupService) Create(organizationID uuid.UUID, req *CreateBreedingGroupRequest) (*CreateBreedingGroupResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	species, ok := models.ParseSpecies(req.Species)
	if !ok {
		return nil, apperrors.NewValidationError("species", "unknown species")
	}
	if !s.gestation.IsGroupEligible(species) {
		return nil, apperrors.NewValidationError("species", apperrors.ErrSpeciesNotGroupEligible.Error())
	}
	if req.ExposureEndDate != nil && req.ExposureEndDate.Before(req.ExposureStartDate) {
		return nil, apperrors.NewValidationError("exposure_end_date", apperrors.ErrExposureEndBeforeStart.Error())
	}

	// Validate the sire before any mutation
	sire, err := s.animalRepo.GetByID(organizationID, req.SireID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSireNotFound
		}
		return nil, fmt.Errorf("failed to load sire: %w", err)
	}
	if sire.Species != species {
		return nil, apperrors.NewValidationError("sire_id", apperrors.ErrSireSpeciesMismatch.Error())
	}
	if sire.Sex != models.SexMale {
		return nil, apperrors.NewValidationError("sire_id", apperrors.ErrSireNotMale.Error())
	}

	if req.ProgramID != nil {
		if _, err := s.programRepo.GetByID(organizationID, *req.ProgramID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrProgramNotFound
			}
			return nil, fmt.Errorf("failed to verify program: %w", err)
		}
	}

	status := models.GroupStatusActive
	if req.ExposureEndDate != nil {
		status = models.GroupStatusExposureComplete
	}

	group := &models.BreedingGroup{
		OrganizationID:    organizationID,
		ProgramID:         req.ProgramID,
		Name:              req.Name,
		Species:           species,
		BreedText:         req.BreedText,
		Season:            req.Season,
		SireID:            req.SireID,
		ExposureStartDate: req.ExposureStartDate,
		ExposureEndDate:   req.ExposureEndDate,
		Status:            status,
		Notes:             req.Notes,
	}

	var members []models.BreedingGroupMember
	var skipped []SkippedDam

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.groupRepo.WithTx(tx).Create(group); err != nil {
			return fmt.Errorf("failed to create breeding group: %w", err)
		}
		for _, damID := range req.SeedDamIDs {
			member, addErr := addMemberInTx(tx, s.gestation, organizationID, group, damID, nil)
			if addErr != nil {
				if reason := skipReason(addErr); reason != "" {
					skipped = append(skipped, SkippedDam{DamID: damID, Reason: reason})
					continue
				}
				return addErr
			}
			members = append(members, *member)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	group.Members = members
	return &CreateBreedingGroupResponse{
		Group:       *toGroupResponse(group, true),
		SkippedDams: skipped,
	}, nil
}

// Update applies a partial update. Setting the exposure end date on an ACTIVE
// group auto-advances it to EXPOSURE_COMPLETE and recomputes the expected
// birth windows of members still EXPOSED.
func (s *BreedingGroupService) Update(organizationID, groupID uuid.UUID, req *UpdateBreedingGroupRequest) (*BreedingGroupResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	group, err := s.groupRepo.GetByID(organizationID, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBreedingGroupNotFound
		}
		return nil, fmt.Errorf("failed to load breeding group: %w", err)
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.BreedText != nil {
		updates["breed_text"] = *req.BreedText
	}
	if req.Season != nil {
		updates["season"] = *req.Season
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.ProgramID != nil {
		if _, err := s.programRepo.GetByID(organizationID, *req.ProgramID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrProgramNotFound
			}
			return nil, fmt.Errorf("failed to verify program: %w", err)
		}
		updates["program_id"] = *req.ProgramID
	}
	if req.Status != nil {
		status, ok := models.ParseGroupStatus(*req.Status)
		if !ok {
			return nil, apperrors.NewValidationError("status", apperrors.ErrInvalidStatus.Error())
		}
		updates["status"] = status
	}

	endExposure := false
	if req.ExposureEndDate != nil {
		if req.ExposureEndDate.Before(group.ExposureStartDate) {
			return nil, apperrors.NewValidationError("exposure_end_date", apperrors.ErrExposureEndBeforeStart.Error())
		}
		updates["exposure_end_date"] = *req.ExposureEndDate
		if group.Status == models.GroupStatusActive && req.Status == nil {
			updates["status"] = models.GroupStatusExposureComplete
		}
		endExposure = true
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := s.groupRepo.WithTx(tx).UpdateFields(organizationID, groupID, updates); err != nil {
				return fmt.Errorf("failed to update breeding group: %w", err)
			}
		}
		if endExposure {
			if err := s.recomputeExposedWindows(tx, organizationID, group, *req.ExposureEndDate); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.groupRepo.GetWithMembers(organizationID, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload breeding group: %w", err)
	}
	return toGroupResponse(updated, true), nil
}

// EndExposure closes the exposure window of an ACTIVE group: records the end
// date, recomputes expected birth windows for members still EXPOSED and
// advances the group to EXPOSURE_COMPLETE.
func (s *BreedingGroupService) EndExposure(organizationID, groupID uuid.UUID, req *EndExposureRequest) (*BreedingGroupResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	group, err := s.groupRepo.GetByID(organizationID, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBreedingGroupNotFound
		}
		return nil, fmt.Errorf("failed to load breeding group: %w", err)
	}
	if group.Status != models.GroupStatusActive {
		return nil, apperrors.NewInvalidStateError("breeding group", "exposure can only end while the group is ACTIVE")
	}
	if req.ExposureEndDate.Before(group.ExposureStartDate) {
		return nil, apperrors.NewValidationError("exposure_end_date", apperrors.ErrExposureEndBeforeStart.Error())
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.groupRepo.WithTx(tx).UpdateFields(organizationID, groupID, map[string]interface{}{
			"exposure_end_date": req.ExposureEndDate,
			"status":            models.GroupStatusExposureComplete,
		}); err != nil {
			return fmt.Errorf("failed to end exposure: %w", err)
		}
		return s.recomputeExposedWindows(tx, organizationID, group, req.ExposureEndDate)
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.groupRepo.GetWithMembers(organizationID, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload breeding group: %w", err)
	}
	return toGroupResponse(updated, true), nil
}

// Delete cancels and soft-deletes a group. Groups with members graduated to a
// breeding plan cannot be deleted; their history must not be orphaned.
func (s *BreedingGroupService) Delete(organizationID, groupID uuid.UUID) error {
	_, err := s.groupRepo.GetByID(organizationID, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBreedingGroupNotFound
		}
		return fmt.Errorf("failed to load breeding group: %w", err)
	}

	graduated, err := s.memberRepo.CountGraduatedByGroupID(organizationID, groupID)
	if err != nil {
		return fmt.Errorf("failed to count graduated members: %w", err)
	}
	if graduated > 0 {
		return apperrors.ErrGroupHasGraduatedMember
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Release remaining dams so cancellation does not pin them to a dead group
		if err := s.memberRepo.WithTx(tx).MarkRemovedByGroupID(organizationID, groupID, time.Now()); err != nil {
			return fmt.Errorf("failed to release members: %w", err)
		}
		return s.groupRepo.WithTx(tx).SoftDelete(organizationID, groupID)
	})
	if err != nil {
		return err
	}

	logger.New().WithField("group_id", groupID).Info("Breeding group canceled")
	return nil
}

// GetByID retrieves a breeding group with its members
func (s *BreedingGroupService) GetByID(organizationID, groupID uuid.UUID) (*BreedingGroupResponse, error) {
	group, err := s.groupRepo.GetWithMembers(organizationID, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBreedingGroupNotFound
		}
		return nil, fmt.Errorf("failed to load breeding group: %w", err)
	}
	return toGroupResponse(group, true), nil
}

// List retrieves breeding groups for an organization with optional filters
func (s *BreedingGroupService) List(organizationID uuid.UUID, filter repository.GroupListFilter, page, pageSize int) (*BreedingGroupListResponse, error) {
	if page < 1 || pageSize < 1 {
		return nil, apperrors.NewValidationError("page", apperrors.ErrInvalidPaginationParams.Error())
	}

	offset := (page - 1) * pageSize
	groups, total, err := s.groupRepo.GetByOrganizationID(organizationID, filter, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list breeding groups: %w", err)
	}

	responses := make([]BreedingGroupResponse, 0, len(groups))
	for i := range groups {
		responses = append(responses, *toGroupResponse(&groups[i], false))
	}
	return &BreedingGroupListResponse{
		Groups:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// recomputeExposedWindows re-derives the expected birth window for every
// member still EXPOSED after the group's exposure end date changed
func (s *BreedingGroupService) recomputeExposedWindows(tx *gorm.DB, organizationID uuid.UUID, group *models.BreedingGroup, exposureEnd time.Time) error {
	memberRepo := s.memberRepo.WithTx(tx)
	exposed, err := memberRepo.GetExposedByGroupID(organizationID, group.ID)
	if err != nil {
		return fmt.Errorf("failed to load exposed members: %w", err)
	}
	for i := range exposed {
		windowStart, windowEnd := s.gestation.ExpectedBirthWindow(group.Species, group.ExposureStartDate, &exposureEnd)
		exposed[i].ExpectedBirthStart = &windowStart
		exposed[i].ExpectedBirthEnd = &windowEnd
		if err := memberRepo.Update(&exposed[i]); err != nil {
			return fmt.Errorf("failed to recompute member window: %w", err)
		}
	}
	return nil
}

// toGroupResponse maps a breeding group to its response form
func toGroupResponse(group *models.BreedingGroup, withMembers bool) *BreedingGroupResponse {
	resp := &BreedingGroupResponse{
		ID:                group.ID,
		OrganizationID:    group.OrganizationID,
		ProgramID:         group.ProgramID,
		Name:              group.Name,
		Species:           group.Species,
		BreedText:         group.BreedText,
		Season:            group.Season,
		SireID:            group.SireID,
		ExposureStartDate: group.ExposureStartDate.Format(dateLayout),
		Status:            group.Status,
		Notes:             group.Notes,
		CreatedAt:         group.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         group.UpdatedAt.Format(time.RFC3339),
	}
	if group.ExposureEndDate != nil {
		end := group.ExposureEndDate.Format(dateLayout)
		resp.ExposureEndDate = &end
	}
	if withMembers {
		resp.Members = make([]MemberResponse, 0, len(group.Members))
		for i := range group.Members {
			resp.Members = append(resp.Members, *toMemberResponse(&group.Members[i]))
		}
	}
	return resp
}
