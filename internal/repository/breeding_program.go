package repository

import (
	"herdbook-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BreedingProgramRepository handles database operations for breeding programs
type BreedingProgramRepository struct {
	db *gorm.DB
}

// NewBreedingProgramRepository creates a new breeding program repository
func NewBreedingProgramRepository(db *gorm.DB) *BreedingProgramRepository {
	return &BreedingProgramRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *BreedingProgramRepository) WithTx(tx *gorm.DB) *BreedingProgramRepository {
	return &BreedingProgramRepository{db: tx}
}

// Create creates a new breeding program
func (r *BreedingProgramRepository) Create(program *models.BreedingProgram) error {
	return r.db.Create(program).Error
}

// GetByID retrieves a breeding program by ID within an organization
func (r *BreedingProgramRepository) GetByID(organizationID, id uuid.UUID) (*models.BreedingProgram, error) {
	var program models.BreedingProgram
	err := r.db.First(&program, "organization_id = ? AND id = ?", organizationID, id).Error
	if err != nil {
		return nil, err
	}
	return &program, nil
}

// GetByOrganizationID retrieves breeding programs for an organization
func (r *BreedingProgramRepository) GetByOrganizationID(organizationID uuid.UUID, limit, offset int) ([]models.BreedingProgram, int64, error) {
	var programs []models.BreedingProgram
	var total int64

	if err := r.db.Model(&models.BreedingProgram{}).Where("organization_id = ?", organizationID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("organization_id = ?", organizationID).Order("name ASC").Limit(limit).Offset(offset).Find(&programs).Error
	return programs, total, err
}

// Update updates a breeding program
func (r *BreedingProgramRepository) Update(program *models.BreedingProgram) error {
	return r.db.Save(program).Error
}

// Delete deletes a breeding program
func (r *BreedingProgramRepository) Delete(organizationID, id uuid.UUID) error {
	return r.db.Delete(&models.BreedingProgram{}, "organization_id = ? AND id = ?", organizationID, id).Error
}
