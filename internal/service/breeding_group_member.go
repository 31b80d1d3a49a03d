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

// BreedingGroupMemberService handles business logic for breeding group
// members: dam addition, removal, pregnancy confirmation (graduation into an
// individual breeding plan), pregnancy rule-out and birth recording.
type BreedingGroupMemberService struct {
	db         *gorm.DB
	groupRepo  repository.BreedingGroupRepositoryInterface
	memberRepo repository.BreedingGroupMemberRepositoryInterface
	animalRepo repository.AnimalRepositoryInterface
	planRepo   repository.BreedingPlanRepositoryInterface
	gestation  *gestation.Table
	validator  *validator.Validate
}

// NewBreedingGroupMemberService creates a new breeding group member service
func NewBreedingGroupMemberService(db *gorm.DB, groupRepo repository.BreedingGroupRepositoryInterface, memberRepo repository.BreedingGroupMemberRepositoryInterface, animalRepo repository.AnimalRepositoryInterface, planRepo repository.BreedingPlanRepositoryInterface, gestationTable *gestation.Table, validator *validator.Validate) *BreedingGroupMemberService {
	return &BreedingGroupMemberService{
		db:         db,
		groupRepo:  groupRepo,
		memberRepo: memberRepo,
		animalRepo: animalRepo,
		planRepo:   planRepo,
		gestation:  gestationTable,
		validator:  validator,
	}
}

// AddMemberRequest represents the request to add a dam to a group
type AddMemberRequest struct {
	DamID     uuid.UUID  `json:"dam_id" validate:"required"`
	ExposedAt *time.Time `json:"exposed_at,omitempty"`
	Notes     string     `json:"notes,omitempty"`
}

// AddMembersBulkRequest represents the request to add multiple dams at once
type AddMembersBulkRequest struct {
	DamIDs []uuid.UUID `json:"dam_ids" validate:"required,min=1"`
}

// SetMemberStatusRequest represents an operator status correction
type SetMemberStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ConfirmPregnancyRequest represents the request to confirm a dam pregnant
type ConfirmPregnancyRequest struct {
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	CheckMethod *string    `json:"check_method,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

// MarkNotPregnantRequest represents the request to rule a dam's pregnancy out
type MarkNotPregnantRequest struct {
	CheckedAt *time.Time `json:"checked_at,omitempty"`
	Notes     string     `json:"notes,omitempty"`
}

// RecordBirthRequest represents the request to record a birth outcome
type RecordBirthRequest struct {
	ActualBirthDate time.Time `json:"actual_birth_date" validate:"required"`
	OffspringCount  int       `json:"offspring_count" validate:"min=0"`
	LiveCount       *int      `json:"live_count,omitempty" validate:"omitempty,min=0"`
	StillbornCount  *int      `json:"stillborn_count,omitempty" validate:"omitempty,min=0"`
	BirthNotes      string    `json:"birth_notes,omitempty"`
}

// MemberResponse represents the response for member operations
type MemberResponse struct {
	ID                   uuid.UUID                    `json:"id"`
	GroupID              uuid.UUID                    `json:"group_id"`
	DamID                uuid.UUID                    `json:"dam_id"`
	Status               models.MemberStatus          `json:"status"`
	ExposedAt            string                       `json:"exposed_at"`
	RemovedAt            *string                      `json:"removed_at,omitempty"`
	PregnancyConfirmedAt *string                      `json:"pregnancy_confirmed_at,omitempty"`
	PregnancyCheckedAt   *string                      `json:"pregnancy_checked_at,omitempty"`
	PregnancyCheckMethod *models.PregnancyCheckMethod `json:"pregnancy_check_method,omitempty"`
	BreedingPlanID       *uuid.UUID                   `json:"breeding_plan_id,omitempty"`
	ExpectedBirthStart   *string                      `json:"expected_birth_start,omitempty"`
	ExpectedBirthEnd     *string                      `json:"expected_birth_end,omitempty"`
	ActualBirthDate      *string                      `json:"actual_birth_date,omitempty"`
	OffspringCount       *int                         `json:"offspring_count,omitempty"`
	LiveCount            *int                         `json:"live_count,omitempty"`
	StillbornCount       *int                         `json:"stillborn_count,omitempty"`
	BirthNotes           string                       `json:"birth_notes,omitempty"`
	Notes                string                       `json:"notes,omitempty"`
}

// SkippedDam reports why a dam was not added during a bulk operation
type SkippedDam struct {
	DamID  uuid.UUID `json:"dam_id"`
	Reason string    `json:"reason"`
}

// AddMembersBulkResponse carries the outcome of a bulk add: per-dam success
// or skip, never an aborted batch
type AddMembersBulkResponse struct {
	Added   []MemberResponse `json:"added"`
	Skipped []SkippedDam     `json:"skipped"`
}

// ConfirmPregnancyResponse carries the updated member and a summary of the
// breeding plan the member graduated into
type ConfirmPregnancyResponse struct {
	Member MemberResponse      `json:"member"`
	Plan   PlanSummaryResponse `json:"plan"`
}

// PlanSummaryResponse summarizes a breeding plan created by graduation
type PlanSummaryResponse struct {
	ID                uuid.UUID         `json:"id"`
	Name              string            `json:"name"`
	Status            models.PlanStatus `json:"status"`
	DamID             uuid.UUID         `json:"dam_id"`
	SireID            uuid.UUID         `json:"sire_id"`
	ExpectedBirthDate *string           `json:"expected_birth_date,omitempty"`
}

// MemberListResponse represents a group's member list
type MemberListResponse struct {
	Members []MemberResponse `json:"members"`
	Total   int              `json:"total"`
}

// AddMember adds a dam to a breeding group. The dam must belong to the
// tenant, match the group's species, be female, and hold no other non-terminal
// membership. The check and the insert run in one transaction with the dam
// row locked; the partial unique index backstops any race that slips through.
func (s *BreedingGroupMemberService) AddMember(organizationID, groupID uuid.UUID, req *AddMemberRequest) (*MemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	group, err := s.loadGroup(organizationID, groupID)
	if err != nil {
		return nil, err
	}

	var member *models.BreedingGroupMember
	err = s.db.Transaction(func(tx *gorm.DB) error {
		added, addErr := addMemberInTx(tx, s.gestation, organizationID, group, req.DamID, req.ExposedAt)
		if addErr != nil {
			return addErr
		}
		if req.Notes != "" {
			added.Notes = req.Notes
			if updErr := s.memberRepo.WithTx(tx).Update(added); updErr != nil {
				return fmt.Errorf("failed to store member notes: %w", updErr)
			}
		}
		member = added
		return nil
	})
	if err != nil {
		return nil, translateMemberError(err)
	}
	return toMemberResponse(member), nil
}

// AddMembersBulk adds multiple dams, applying the addition rules
// independently per dam. Failing dams are reported with a reason; no single
// bad id aborts the batch.
func (s *BreedingGroupMemberService) AddMembersBulk(organizationID, groupID uuid.UUID, req *AddMembersBulkRequest) (*AddMembersBulkResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	group, err := s.loadGroup(organizationID, groupID)
	if err != nil {
		return nil, err
	}

	resp := &AddMembersBulkResponse{
		Added:   []MemberResponse{},
		Skipped: []SkippedDam{},
	}
	for _, damID := range req.DamIDs {
		var member *models.BreedingGroupMember
		err := s.db.Transaction(func(tx *gorm.DB) error {
			added, addErr := addMemberInTx(tx, s.gestation, organizationID, group, damID, nil)
			if addErr != nil {
				return addErr
			}
			member = added
			return nil
		})
		if err != nil {
			reason := skipReason(err)
			if reason == "" {
				return nil, err
			}
			resp.Skipped = append(resp.Skipped, SkippedDam{DamID: damID, Reason: reason})
			continue
		}
		resp.Added = append(resp.Added, *toMemberResponse(member))
	}
	return resp, nil
}

// RemoveMember withdraws a dam from a group before her pregnancy resolves.
// Graduated members cannot be removed.
func (s *BreedingGroupMemberService) RemoveMember(organizationID, groupID, damID uuid.UUID) (*MemberResponse, error) {
	member, err := s.loadMember(organizationID, groupID, damID)
	if err != nil {
		return nil, err
	}
	if member.HasGraduated() {
		return nil, apperrors.ErrMemberGraduated
	}

	now := time.Now()
	member.Status = models.MemberStatusRemoved
	member.RemovedAt = &now
	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.memberRepo.WithTx(tx).Update(member)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to remove member: %w", err)
	}
	return toMemberResponse(member), nil
}

// SetStatus directly overrides a member's status for operator correction.
// It carries no graduation side effects and is refused for graduated members;
// the dedicated transition operations are the primary path.
func (s *BreedingGroupMemberService) SetStatus(organizationID, groupID, damID uuid.UUID, req *SetMemberStatusRequest) (*MemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	status, ok := models.ParseMemberStatus(req.Status)
	if !ok {
		return nil, apperrors.NewValidationError("status", apperrors.ErrInvalidStatus.Error())
	}

	member, err := s.loadMember(organizationID, groupID, damID)
	if err != nil {
		return nil, err
	}
	if member.HasGraduated() {
		return nil, apperrors.ErrMemberGraduated
	}

	member.Status = status
	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.memberRepo.WithTx(tx).Update(member)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDamAlreadyActive
		}
		return nil, fmt.Errorf("failed to set member status: %w", err)
	}
	return toMemberResponse(member), nil
}

// ConfirmPregnancy graduates a member: in one transaction it creates an
// individual breeding plan (status BRED) from the group's pairing, moves the
// member to PREGNANT with the plan linked, and advances an EXPOSURE_COMPLETE
// group to MONITORING. Plan creation failure rolls the whole operation back.
func (s *BreedingGroupMemberService) ConfirmPregnancy(organizationID, groupID, damID uuid.UUID, req *ConfirmPregnancyRequest) (*ConfirmPregnancyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	var checkMethod *models.PregnancyCheckMethod
	if req.CheckMethod != nil {
		method, ok := models.ParseCheckMethod(*req.CheckMethod)
		if !ok {
			return nil, apperrors.NewValidationError("check_method", "unknown pregnancy check method")
		}
		checkMethod = &method
	}

	group, err := s.loadGroup(organizationID, groupID)
	if err != nil {
		return nil, err
	}
	member, err := s.loadMember(organizationID, groupID, damID)
	if err != nil {
		return nil, err
	}
	if member.HasGraduated() {
		return nil, apperrors.ErrMemberGraduated
	}
	if member.Status == models.MemberStatusRemoved {
		return nil, apperrors.NewValidationError("status", "cannot confirm pregnancy for a removed member")
	}

	dam, err := s.animalRepo.GetByID(organizationID, damID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDamNotFound
		}
		return nil, fmt.Errorf("failed to load dam: %w", err)
	}

	confirmedAt := time.Now()
	if req.ConfirmedAt != nil {
		confirmedAt = *req.ConfirmedAt
	}

	estimated := estimatedBirthDate(member)

	plan := &models.BreedingPlan{
		OrganizationID:    organizationID,
		ProgramID:         group.ProgramID,
		Name:              fmt.Sprintf("%s - %s", group.Name, dam.Name),
		Species:           group.Species,
		BreedText:         group.BreedText,
		DamID:             damID,
		SireID:            group.SireID,
		Status:            models.PlanStatusBred,
		ExpectedBirthDate: estimated,
		BreedDateActual:   &confirmedAt,
		Notes:             req.Notes,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.planRepo.WithTx(tx).Create(plan); err != nil {
			return fmt.Errorf("failed to create breeding plan: %w", err)
		}

		member.Status = models.MemberStatusPregnant
		member.PregnancyConfirmedAt = &confirmedAt
		member.PregnancyCheckMethod = checkMethod
		member.BreedingPlanID = &plan.ID
		if req.Notes != "" {
			member.Notes = req.Notes
		}
		if err := s.memberRepo.WithTx(tx).Update(member); err != nil {
			return fmt.Errorf("failed to update member: %w", err)
		}

		// First confirmed pregnancy moves the group into monitoring
		if group.Status == models.GroupStatusExposureComplete {
			if err := s.groupRepo.WithTx(tx).UpdateStatus(organizationID, groupID, models.GroupStatusMonitoring); err != nil {
				return fmt.Errorf("failed to advance group status: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDamAlreadyActive
		}
		return nil, err
	}

	logger.New().WithFields(map[string]interface{}{
		"group_id": groupID,
		"dam_id":   damID,
		"plan_id":  plan.ID,
	}).Info("Member graduated to breeding plan")

	planResp := PlanSummaryResponse{
		ID:     plan.ID,
		Name:   plan.Name,
		Status: plan.Status,
		DamID:  plan.DamID,
		SireID: plan.SireID,
	}
	if plan.ExpectedBirthDate != nil {
		formatted := plan.ExpectedBirthDate.Format(dateLayout)
		planResp.ExpectedBirthDate = &formatted
	}
	return &ConfirmPregnancyResponse{
		Member: *toMemberResponse(member),
		Plan:   planResp,
	}, nil
}

// MarkNotPregnant rules a member's pregnancy out. Terminal; no group-status
// side effect.
func (s *BreedingGroupMemberService) MarkNotPregnant(organizationID, groupID, damID uuid.UUID, req *MarkNotPregnantRequest) (*MemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	member, err := s.loadMember(organizationID, groupID, damID)
	if err != nil {
		return nil, err
	}
	if member.HasGraduated() {
		return nil, apperrors.ErrMemberGraduated
	}
	if member.Status.IsTerminal() {
		return nil, apperrors.NewInvalidStateError("breeding group member", "outcome is already resolved")
	}

	checkedAt := time.Now()
	if req.CheckedAt != nil {
		checkedAt = *req.CheckedAt
	}

	member.Status = models.MemberStatusNotPregnant
	member.PregnancyCheckedAt = &checkedAt
	if req.Notes != "" {
		member.Notes = req.Notes
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.memberRepo.WithTx(tx).Update(member)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to mark member not pregnant: %w", err)
	}
	return toMemberResponse(member), nil
}

// RecordBirth records the birth outcome for a confirmed-pregnant member and,
// in the same transaction, completes the group when its last unresolved
// pregnancy has lambed. Members still EXPOSED at that point are released as
// REMOVED so their dams may join a new group.
func (s *BreedingGroupMemberService) RecordBirth(organizationID, groupID, damID uuid.UUID, req *RecordBirthRequest) (*MemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if req.ActualBirthDate.IsZero() {
		return nil, apperrors.NewValidationError("actual_birth_date", "birth date is required")
	}
	if req.OffspringCount < 0 {
		return nil, apperrors.NewValidationError("offspring_count", apperrors.ErrNegativeOffspringCount.Error())
	}

	group, err := s.loadGroup(organizationID, groupID)
	if err != nil {
		return nil, err
	}
	member, err := s.loadMember(organizationID, groupID, damID)
	if err != nil {
		return nil, err
	}
	if member.Status != models.MemberStatusPregnant && member.Status != models.MemberStatusLambingImminent {
		return nil, apperrors.NewValidationError("status", apperrors.ErrBirthBeforePregnancy.Error())
	}

	liveCount := req.OffspringCount
	if req.LiveCount != nil {
		liveCount = *req.LiveCount
	}
	stillbornCount := 0
	if req.StillbornCount != nil {
		stillbornCount = *req.StillbornCount
	}

	birthDate := req.ActualBirthDate
	offspring := req.OffspringCount
	member.Status = models.MemberStatusLambed
	member.ActualBirthDate = &birthDate
	member.OffspringCount = &offspring
	member.LiveCount = &liveCount
	member.StillbornCount = &stillbornCount
	member.BirthNotes = req.BirthNotes

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.memberRepo.WithTx(tx).Update(member); err != nil {
			return fmt.Errorf("failed to record birth: %w", err)
		}

		unresolved, err := s.memberRepo.WithTx(tx).CountUnresolvedByGroupID(organizationID, groupID)
		if err != nil {
			return fmt.Errorf("failed to count unresolved members: %w", err)
		}
		if unresolved == 0 && group.Status != models.GroupStatusComplete {
			// Close out members still EXPOSED so their dams are not pinned
			// to a finished group
			if err := s.memberRepo.WithTx(tx).MarkRemovedByGroupID(organizationID, groupID, time.Now()); err != nil {
				return fmt.Errorf("failed to release unresolved members: %w", err)
			}
			if err := s.groupRepo.WithTx(tx).UpdateStatus(organizationID, groupID, models.GroupStatusComplete); err != nil {
				return fmt.Errorf("failed to complete group: %w", err)
			}
			logger.New().WithField("group_id", groupID).Info("Breeding group complete, all pregnancies resolved")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toMemberResponse(member), nil
}

// ListMembers retrieves a group's members, optionally filtered by status
func (s *BreedingGroupMemberService) ListMembers(organizationID, groupID uuid.UUID, status *models.MemberStatus) (*MemberListResponse, error) {
	if _, err := s.loadGroup(organizationID, groupID); err != nil {
		return nil, err
	}

	members, err := s.memberRepo.GetByGroupID(organizationID, groupID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	responses := make([]MemberResponse, 0, len(members))
	for i := range members {
		responses = append(responses, *toMemberResponse(&members[i]))
	}
	return &MemberListResponse{Members: responses, Total: len(responses)}, nil
}

func (s *BreedingGroupMemberService) loadGroup(organizationID, groupID uuid.UUID) (*models.BreedingGroup, error) {
	group, err := s.groupRepo.GetByID(organizationID, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBreedingGroupNotFound
		}
		return nil, fmt.Errorf("failed to load breeding group: %w", err)
	}
	return group, nil
}

func (s *BreedingGroupMemberService) loadMember(organizationID, groupID, damID uuid.UUID) (*models.BreedingGroupMember, error) {
	member, err := s.memberRepo.GetByGroupAndDam(organizationID, groupID, damID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupMemberNotFound
		}
		return nil, fmt.Errorf("failed to load member: %w", err)
	}
	return member, nil
}

// addMemberInTx validates a dam against a group and inserts her membership.
// Must run inside a transaction: the dam row is locked for the duration of
// the check-then-insert so two concurrent additions of the same dam
// serialize, and the partial unique index catches anything that still races.
func addMemberInTx(tx *gorm.DB, gestationTable *gestation.Table, organizationID uuid.UUID, group *models.BreedingGroup, damID uuid.UUID, exposedAt *time.Time) (*models.BreedingGroupMember, error) {
	animalRepo := repository.NewAnimalRepository(tx)
	memberRepo := repository.NewBreedingGroupMemberRepository(tx)

	dam, err := animalRepo.GetByIDForUpdate(organizationID, damID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDamNotFound
		}
		return nil, fmt.Errorf("failed to load dam: %w", err)
	}
	if dam.Species != group.Species {
		return nil, apperrors.ErrDamSpeciesMismatch
	}
	if dam.Sex != models.SexFemale {
		return nil, apperrors.ErrDamNotFemale
	}

	if existing, err := memberRepo.FindActiveByDam(organizationID, damID); err == nil {
		if existing.GroupID == group.ID {
			return nil, apperrors.ErrDamAlreadyInGroup
		}
		return nil, apperrors.ErrDamAlreadyActive
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check active memberships: %w", err)
	}

	exposed := group.ExposureStartDate
	if exposedAt != nil {
		exposed = *exposedAt
	}
	windowStart, windowEnd := gestationTable.ExpectedBirthWindow(group.Species, group.ExposureStartDate, group.ExposureEndDate)

	member := &models.BreedingGroupMember{
		OrganizationID:     organizationID,
		GroupID:            group.ID,
		DamID:              damID,
		Status:             models.MemberStatusExposed,
		ExposedAt:          exposed,
		ExpectedBirthStart: &windowStart,
		ExpectedBirthEnd:   &windowEnd,
	}
	if err := memberRepo.Create(member); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDamAlreadyActive
		}
		return nil, fmt.Errorf("failed to insert member: %w", err)
	}
	return member, nil
}

// translateMemberError maps the plain sentinels used inside addMemberInTx to
// the typed errors the single-member API reports
func translateMemberError(err error) error {
	switch {
	case errors.Is(err, apperrors.ErrDamSpeciesMismatch):
		return apperrors.NewValidationError("dam_id", apperrors.ErrDamSpeciesMismatch.Error())
	case errors.Is(err, apperrors.ErrDamNotFemale):
		return apperrors.NewValidationError("dam_id", apperrors.ErrDamNotFemale.Error())
	default:
		return err
	}
}

// skipReason maps a member-addition error to the bulk skip reason, or ""
// when the error is not a per-dam rule failure and must propagate
func skipReason(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrDamNotFound):
		return "not found"
	case errors.Is(err, apperrors.ErrDamSpeciesMismatch):
		return "species mismatch"
	case errors.Is(err, apperrors.ErrDamNotFemale):
		return "wrong sex"
	case errors.Is(err, apperrors.ErrDamAlreadyInGroup):
		return "already in this group"
	case errors.Is(err, apperrors.ErrDamAlreadyActive):
		return "already in another active group"
	default:
		return ""
	}
}

// estimatedBirthDate collapses a member's expected-birth window to the point
// estimate stored on the graduated plan
func estimatedBirthDate(member *models.BreedingGroupMember) *time.Time {
	if member.ExpectedBirthStart == nil {
		return nil
	}
	if member.ExpectedBirthEnd == nil {
		return member.ExpectedBirthStart
	}
	estimate := gestation.EstimatedBirthDate(*member.ExpectedBirthStart, *member.ExpectedBirthEnd)
	return &estimate
}

// toMemberResponse maps a member to its response form
func toMemberResponse(member *models.BreedingGroupMember) *MemberResponse {
	resp := &MemberResponse{
		ID:                   member.ID,
		GroupID:              member.GroupID,
		DamID:                member.DamID,
		Status:               member.Status,
		ExposedAt:            member.ExposedAt.Format(dateLayout),
		PregnancyCheckMethod: member.PregnancyCheckMethod,
		BreedingPlanID:       member.BreedingPlanID,
		OffspringCount:       member.OffspringCount,
		LiveCount:            member.LiveCount,
		StillbornCount:       member.StillbornCount,
		BirthNotes:           member.BirthNotes,
		Notes:                member.Notes,
	}
	resp.RemovedAt = formatDatePtr(member.RemovedAt)
	resp.PregnancyConfirmedAt = formatDatePtr(member.PregnancyConfirmedAt)
	resp.PregnancyCheckedAt = formatDatePtr(member.PregnancyCheckedAt)
	resp.ExpectedBirthStart = formatDatePtr(member.ExpectedBirthStart)
	resp.ExpectedBirthEnd = formatDatePtr(member.ExpectedBirthEnd)
	resp.ActualBirthDate = formatDatePtr(member.ActualBirthDate)
	return resp
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(dateLayout)
	return &formatted
}
