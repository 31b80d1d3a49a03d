package repository

import (
	"time"

	"herdbook-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BreedingGroupMemberRepository handles database operations for breeding
// group members
type BreedingGroupMemberRepository struct {
	db *gorm.DB
}

// NewBreedingGroupMemberRepository creates a new breeding group member repository
func NewBreedingGroupMemberRepository(db *gorm.DB) *BreedingGroupMemberRepository {
	return &BreedingGroupMemberRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *BreedingGroupMemberRepository) WithTx(tx *gorm.DB) *BreedingGroupMemberRepository {
	return &BreedingGroupMemberRepository{db: tx}
}

// Create inserts a new member row. A duplicate-key error here means the dam
// already holds a non-terminal membership (partial unique index) and must be
// surfaced as a conflict by the caller.
func (r *BreedingGroupMemberRepository) Create(member *models.BreedingGroupMember) error {
	return r.db.Create(member).Error
}

// GetByID retrieves a member by ID within an organization
func (r *BreedingGroupMemberRepository) GetByID(organizationID, id uuid.UUID) (*models.BreedingGroupMember, error) {
	var member models.BreedingGroupMember
	err := r.db.First(&member, "organization_id = ? AND id = ?", organizationID, id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByGroupAndDam retrieves the most recent membership of a dam in a group
func (r *BreedingGroupMemberRepository) GetByGroupAndDam(organizationID, groupID, damID uuid.UUID) (*models.BreedingGroupMember, error) {
	var member models.BreedingGroupMember
	err := r.db.Where("organization_id = ? AND group_id = ? AND dam_id = ?", organizationID, groupID, damID).
		Order("created_at DESC").
		First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByGroupID retrieves members of a group, optionally filtered by status
func (r *BreedingGroupMemberRepository) GetByGroupID(organizationID, groupID uuid.UUID, status *models.MemberStatus) ([]models.BreedingGroupMember, error) {
	var members []models.BreedingGroupMember
	query := r.db.Where("organization_id = ? AND group_id = ?", organizationID, groupID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	err := query.Order("created_at ASC").Find(&members).Error
	return members, err
}

// FindActiveByDam retrieves the dam's blocking membership anywhere in the
// tenant, if one exists: a non-terminal membership in a group that has not
// itself run to completion or cancellation.
func (r *BreedingGroupMemberRepository) FindActiveByDam(organizationID, damID uuid.UUID) (*models.BreedingGroupMember, error) {
	var member models.BreedingGroupMember
	err := r.db.
		Joins("JOIN breeding_groups ON breeding_groups.id = breeding_group_members.group_id").
		Where("breeding_group_members.organization_id = ? AND breeding_group_members.dam_id = ?", organizationID, damID).
		Where("breeding_group_members.status IN ?", models.NonTerminalMemberStatuses).
		Where("breeding_groups.status IN ?", models.ResolvableGroupStatuses).
		First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetExposedByGroupID retrieves a group's members still in EXPOSED status
func (r *BreedingGroupMemberRepository) GetExposedByGroupID(organizationID, groupID uuid.UUID) ([]models.BreedingGroupMember, error) {
	exposed := models.MemberStatusExposed
	return r.GetByGroupID(organizationID, groupID, &exposed)
}

// CountUnresolvedByGroupID counts members of a group still carrying an
// unresolved pregnancy (PREGNANT or LAMBING_IMMINENT)
func (r *BreedingGroupMemberRepository) CountUnresolvedByGroupID(organizationID, groupID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.BreedingGroupMember{}).
		Where("organization_id = ? AND group_id = ? AND status IN ?", organizationID, groupID,
			[]models.MemberStatus{models.MemberStatusPregnant, models.MemberStatusLambingImminent}).
		Count(&count).Error
	return count, err
}

// CountGraduatedByGroupID counts members of a group linked to a breeding plan
func (r *BreedingGroupMemberRepository) CountGraduatedByGroupID(organizationID, groupID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.BreedingGroupMember{}).
		Where("organization_id = ? AND group_id = ? AND breeding_plan_id IS NOT NULL", organizationID, groupID).
		Count(&count).Error
	return count, err
}

// MarkRemovedByGroupID resolves every non-terminal member of a group to
// REMOVED. Run when the group itself is canceled so the dams are released
// from the single-active-membership constraint.
func (r *BreedingGroupMemberRepository) MarkRemovedByGroupID(organizationID, groupID uuid.UUID, removedAt time.Time) error {
	return r.db.Model(&models.BreedingGroupMember{}).
		Where("organization_id = ? AND group_id = ? AND status IN ?", organizationID, groupID, models.NonTerminalMemberStatuses).
		Updates(map[string]interface{}{
			"status":     models.MemberStatusRemoved,
			"removed_at": removedAt,
		}).Error
}

// Update updates a member
func (r *BreedingGroupMemberRepository) Update(member *models.BreedingGroupMember) error {
	return r.db.Save(member).Error
}
