package repository

import (
	"herdbook-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BreedingPlanRepository handles database operations for individual breeding
// plans. The group-breeding core only creates plans (graduation); reads exist
// for the API surface.
type BreedingPlanRepository struct {
	db *gorm.DB
}

// NewBreedingPlanRepository creates a new breeding plan repository
func NewBreedingPlanRepository(db *gorm.DB) *BreedingPlanRepository {
	return &BreedingPlanRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *BreedingPlanRepository) WithTx(tx *gorm.DB) *BreedingPlanRepository {
	return &BreedingPlanRepository{db: tx}
}

// Create creates a new breeding plan
func (r *BreedingPlanRepository) Create(plan *models.BreedingPlan) error {
	return r.db.Create(plan).Error
}

// GetByID retrieves a breeding plan by ID within an organization
func (r *BreedingPlanRepository) GetByID(organizationID, id uuid.UUID) (*models.BreedingPlan, error) {
	var plan models.BreedingPlan
	err := r.db.First(&plan, "organization_id = ? AND id = ?", organizationID, id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// GetByOrganizationID retrieves breeding plans for an organization
func (r *BreedingPlanRepository) GetByOrganizationID(organizationID uuid.UUID, limit, offset int) ([]models.BreedingPlan, int64, error) {
	var plans []models.BreedingPlan
	var total int64

	if err := r.db.Model(&models.BreedingPlan{}).Where("organization_id = ?", organizationID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("organization_id = ?", organizationID).Order("created_at DESC").Limit(limit).Offset(offset).Find(&plans).Error
	return plans, total, err
}

// Update updates a breeding plan
func (r *BreedingPlanRepository) Update(plan *models.BreedingPlan) error {
	return r.db.Save(plan).Error
}
