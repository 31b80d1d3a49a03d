package testutils

import (
	"time"

	"herdbook-backend/internal/database/models"

	"github.com/google/uuid"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	id := uuid.New()
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "test-farm-" + id.String()[:8],
		DisplayName: "Test Farm",
		Domain:      id.String()[:8] + ".test.com",
		Description: "A test farm organization",
		Metadata:    nil,
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	org.DisplayName = name
	return org
}

// AnimalFactory provides methods to create test Animal data
type AnimalFactory struct{}

// NewAnimalFactory creates a new AnimalFactory
func NewAnimalFactory() *AnimalFactory {
	return &AnimalFactory{}
}

// Create creates a test Animal with default values: an active female sheep
func (f *AnimalFactory) Create() *models.Animal {
	id := uuid.New()
	return &models.Animal{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		Name:           "Ewe " + id.String()[:6],
		Species:        models.SpeciesSheep,
		Sex:            models.SexFemale,
		TagNumber:      id.String()[:8],
		Status:         models.AnimalStatusActive,
	}
}

// Ewe creates a female animal of the given species for an organization
func (f *AnimalFactory) Ewe(orgID uuid.UUID, species models.Species) *models.Animal {
	animal := f.Create()
	animal.OrganizationID = orgID
	animal.Species = species
	return animal
}

// Ram creates a male animal of the given species for an organization
func (f *AnimalFactory) Ram(orgID uuid.UUID, species models.Species) *models.Animal {
	animal := f.Create()
	animal.OrganizationID = orgID
	animal.Species = species
	animal.Sex = models.SexMale
	animal.Name = "Ram " + animal.ID.String()[:6]
	return animal
}

// BreedingGroupFactory provides methods to create test BreedingGroup data
type BreedingGroupFactory struct{}

// NewBreedingGroupFactory creates a new BreedingGroupFactory
func NewBreedingGroupFactory() *BreedingGroupFactory {
	return &BreedingGroupFactory{}
}

// Create creates a test BreedingGroup with default values: an ACTIVE sheep
// group whose exposure started ten days ago
func (f *BreedingGroupFactory) Create(orgID, sireID uuid.UUID) *models.BreedingGroup {
	id := uuid.New()
	return &models.BreedingGroup{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID:    orgID,
		Name:              "Group " + id.String()[:6],
		Species:           models.SpeciesSheep,
		SireID:            sireID,
		ExposureStartDate: time.Now().AddDate(0, 0, -10),
		Status:            models.GroupStatusActive,
	}
}

// WithSpecies creates a group of the given species
func (f *BreedingGroupFactory) WithSpecies(orgID, sireID uuid.UUID, species models.Species) *models.BreedingGroup {
	group := f.Create(orgID, sireID)
	group.Species = species
	return group
}

// BreedingGroupMemberFactory provides methods to create test member data
type BreedingGroupMemberFactory struct{}

// NewBreedingGroupMemberFactory creates a new BreedingGroupMemberFactory
func NewBreedingGroupMemberFactory() *BreedingGroupMemberFactory {
	return &BreedingGroupMemberFactory{}
}

// Create creates an EXPOSED member for a group and dam
func (f *BreedingGroupMemberFactory) Create(orgID, groupID, damID uuid.UUID) *models.BreedingGroupMember {
	return &models.BreedingGroupMember{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: orgID,
		GroupID:        groupID,
		DamID:          damID,
		Status:         models.MemberStatusExposed,
		ExposedAt:      time.Now().AddDate(0, 0, -10),
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Organization *OrganizationFactory
	Animal       *AnimalFactory
	Group        *BreedingGroupFactory
	Member       *BreedingGroupMemberFactory
	Program      *BreedingProgramFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization: NewOrganizationFactory(),
		Animal:       NewAnimalFactory(),
		Group:        NewBreedingGroupFactory(),
		Member:       NewBreedingGroupMemberFactory(),
		Program:      NewBreedingProgramFactory(),
	}
}

// BreedingProgramFactory provides methods to create test program data
type BreedingProgramFactory struct{}

// NewBreedingProgramFactory creates a new BreedingProgramFactory
func NewBreedingProgramFactory() *BreedingProgramFactory {
	return &BreedingProgramFactory{}
}

// Create creates a test BreedingProgram for an organization
func (f *BreedingProgramFactory) Create(orgID uuid.UUID) *models.BreedingProgram {
	id := uuid.New()
	return &models.BreedingProgram{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: orgID,
		Name:           "Program " + id.String()[:6],
		Species:        models.SpeciesSheep,
		Description:    "A test breeding program",
	}
}
