package repository

import (
	"herdbook-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AnimalRepository handles database operations for animals
type AnimalRepository struct {
	db *gorm.DB
}

// NewAnimalRepository creates a new animal repository
func NewAnimalRepository(db *gorm.DB) *AnimalRepository {
	return &AnimalRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *AnimalRepository) WithTx(tx *gorm.DB) *AnimalRepository {
	return &AnimalRepository{db: tx}
}

// Create creates a new animal
func (r *AnimalRepository) Create(animal *models.Animal) error {
	return r.db.Create(animal).Error
}

// GetByID retrieves an animal by ID within an organization
func (r *AnimalRepository) GetByID(organizationID, id uuid.UUID) (*models.Animal, error) {
	var animal models.Animal
	err := r.db.First(&animal, "organization_id = ? AND id = ?", organizationID, id).Error
	if err != nil {
		return nil, err
	}
	return &animal, nil
}

// GetByIDForUpdate retrieves an animal by ID with a row lock. Must be called
// inside a transaction; used to serialize concurrent membership checks on the
// same dam.
func (r *AnimalRepository) GetByIDForUpdate(organizationID, id uuid.UUID) (*models.Animal, error) {
	var animal models.Animal
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&animal, "organization_id = ? AND id = ?", organizationID, id).Error
	if err != nil {
		return nil, err
	}
	return &animal, nil
}

// GetByOrganizationID retrieves animals for an organization with optional filters
func (r *AnimalRepository) GetByOrganizationID(organizationID uuid.UUID, species *models.Species, sex *models.Sex, status *models.AnimalStatus, limit, offset int) ([]models.Animal, int64, error) {
	var animals []models.Animal
	var total int64

	query := r.db.Model(&models.Animal{}).Where("organization_id = ?", organizationID)
	if species != nil {
		query = query.Where("species = ?", *species)
	}
	if sex != nil {
		query = query.Where("sex = ?", *sex)
	}
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("name ASC").Limit(limit).Offset(offset).Find(&animals).Error
	return animals, total, err
}

// Update updates an animal
func (r *AnimalRepository) Update(animal *models.Animal) error {
	return r.db.Save(animal).Error
}

// Delete deletes an animal
func (r *AnimalRepository) Delete(organizationID, id uuid.UUID) error {
	return r.db.Delete(&models.Animal{}, "organization_id = ? AND id = ?", organizationID, id).Error
}
