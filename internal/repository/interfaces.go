package repository

import (
	"time"

	"herdbook-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// AnimalRepositoryInterface defines the interface for animal repository operations
type AnimalRepositoryInterface interface {
	Create(animal *models.Animal) error
	GetByID(organizationID, id uuid.UUID) (*models.Animal, error)
	GetByIDForUpdate(organizationID, id uuid.UUID) (*models.Animal, error)
	GetByOrganizationID(organizationID uuid.UUID, species *models.Species, sex *models.Sex, status *models.AnimalStatus, limit, offset int) ([]models.Animal, int64, error)
	Update(animal *models.Animal) error
	Delete(organizationID, id uuid.UUID) error
}

// BreedingProgramRepositoryInterface defines the interface for breeding program repository operations
type BreedingProgramRepositoryInterface interface {
	Create(program *models.BreedingProgram) error
	GetByID(organizationID, id uuid.UUID) (*models.BreedingProgram, error)
	GetByOrganizationID(organizationID uuid.UUID, limit, offset int) ([]models.BreedingProgram, int64, error)
	Update(program *models.BreedingProgram) error
	Delete(organizationID, id uuid.UUID) error
}

// BreedingPlanRepositoryInterface defines the interface for breeding plan repository operations
type BreedingPlanRepositoryInterface interface {
	Create(plan *models.BreedingPlan) error
	GetByID(organizationID, id uuid.UUID) (*models.BreedingPlan, error)
	GetByOrganizationID(organizationID uuid.UUID, limit, offset int) ([]models.BreedingPlan, int64, error)
	Update(plan *models.BreedingPlan) error
	WithTx(tx *gorm.DB) *BreedingPlanRepository
}

// BreedingGroupRepositoryInterface defines the interface for breeding group repository operations
type BreedingGroupRepositoryInterface interface {
	Create(group *models.BreedingGroup) error
	GetByID(organizationID, id uuid.UUID) (*models.BreedingGroup, error)
	GetWithMembers(organizationID, id uuid.UUID) (*models.BreedingGroup, error)
	GetByOrganizationID(organizationID uuid.UUID, filter GroupListFilter, limit, offset int) ([]models.BreedingGroup, int64, error)
	Update(group *models.BreedingGroup) error
	UpdateFields(organizationID, id uuid.UUID, updates map[string]interface{}) error
	UpdateStatus(organizationID, id uuid.UUID, status models.GroupStatus) error
	SoftDelete(organizationID, id uuid.UUID) error
	WithTx(tx *gorm.DB) *BreedingGroupRepository
}

// BreedingGroupMemberRepositoryInterface defines the interface for breeding group member repository operations
type BreedingGroupMemberRepositoryInterface interface {
	Create(member *models.BreedingGroupMember) error
	GetByID(organizationID, id uuid.UUID) (*models.BreedingGroupMember, error)
	GetByGroupAndDam(organizationID, groupID, damID uuid.UUID) (*models.BreedingGroupMember, error)
	GetByGroupID(organizationID, groupID uuid.UUID, status *models.MemberStatus) ([]models.BreedingGroupMember, error)
	FindActiveByDam(organizationID, damID uuid.UUID) (*models.BreedingGroupMember, error)
	GetExposedByGroupID(organizationID, groupID uuid.UUID) ([]models.BreedingGroupMember, error)
	CountUnresolvedByGroupID(organizationID, groupID uuid.UUID) (int64, error)
	CountGraduatedByGroupID(organizationID, groupID uuid.UUID) (int64, error)
	MarkRemovedByGroupID(organizationID, groupID uuid.UUID, removedAt time.Time) error
	Update(member *models.BreedingGroupMember) error
	WithTx(tx *gorm.DB) *BreedingGroupMemberRepository
}
