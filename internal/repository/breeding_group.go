package repository

import (
	"herdbook-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GroupListFilter narrows breeding group list queries
type GroupListFilter struct {
	Status    *models.GroupStatus
	Species   *models.Species
	ProgramID *uuid.UUID
}

// BreedingGroupRepository handles database operations for breeding groups
type BreedingGroupRepository struct {
	db *gorm.DB
}

// NewBreedingGroupRepository creates a new breeding group repository
func NewBreedingGroupRepository(db *gorm.DB) *BreedingGroupRepository {
	return &BreedingGroupRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *BreedingGroupRepository) WithTx(tx *gorm.DB) *BreedingGroupRepository {
	return &BreedingGroupRepository{db: tx}
}

// Create creates a new breeding group
func (r *BreedingGroupRepository) Create(group *models.BreedingGroup) error {
	return r.db.Create(group).Error
}

// GetByID retrieves a breeding group by ID within an organization
func (r *BreedingGroupRepository) GetByID(organizationID, id uuid.UUID) (*models.BreedingGroup, error) {
	var group models.BreedingGroup
	err := r.db.First(&group, "organization_id = ? AND id = ?", organizationID, id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// GetWithMembers retrieves a breeding group with its members preloaded
func (r *BreedingGroupRepository) GetWithMembers(organizationID, id uuid.UUID) (*models.BreedingGroup, error) {
	var group models.BreedingGroup
	err := r.db.Preload("Members").Preload("Sire").
		First(&group, "organization_id = ? AND id = ?", organizationID, id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// GetByOrganizationID retrieves breeding groups for an organization with optional filters
func (r *BreedingGroupRepository) GetByOrganizationID(organizationID uuid.UUID, filter GroupListFilter, limit, offset int) ([]models.BreedingGroup, int64, error) {
	var groups []models.BreedingGroup
	var total int64

	query := r.db.Model(&models.BreedingGroup{}).Where("organization_id = ?", organizationID)
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Species != nil {
		query = query.Where("species = ?", *filter.Species)
	}
	if filter.ProgramID != nil {
		query = query.Where("program_id = ?", *filter.ProgramID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("exposure_start_date DESC").Limit(limit).Offset(offset).Find(&groups).Error
	return groups, total, err
}

// Update updates a breeding group
func (r *BreedingGroupRepository) Update(group *models.BreedingGroup) error {
	return r.db.Save(group).Error
}

// UpdateFields applies a partial update to a breeding group
func (r *BreedingGroupRepository) UpdateFields(organizationID, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&models.BreedingGroup{}).
		Where("organization_id = ? AND id = ?", organizationID, id).
		Updates(updates).Error
}

// UpdateStatus sets the group status
func (r *BreedingGroupRepository) UpdateStatus(organizationID, id uuid.UUID, status models.GroupStatus) error {
	return r.db.Model(&models.BreedingGroup{}).
		Where("organization_id = ? AND id = ?", organizationID, id).
		Update("status", status).Error
}

// SoftDelete cancels a breeding group and soft-deletes the row
func (r *BreedingGroupRepository) SoftDelete(organizationID, id uuid.UUID) error {
	err := r.db.Model(&models.BreedingGroup{}).
		Where("organization_id = ? AND id = ?", organizationID, id).
		Update("status", models.GroupStatusCanceled).Error
	if err != nil {
		return err
	}
	return r.db.Delete(&models.BreedingGroup{}, "organization_id = ? AND id = ?", organizationID, id).Error
}
