package service

import (
	"testing"

	"herdbook-backend/internal/database/models"
	apperrors "herdbook-backend/internal/errors"
	"herdbook-backend/internal/repository"
	"herdbook-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// AnimalServiceTestSuite tests the AnimalService against a real database
type AnimalServiceTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	svc           *AnimalService
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *AnimalServiceTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.svc = NewAnimalService(repository.NewAnimalRepository(suite.baseTestSuite.DB), validator.New())
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *AnimalServiceTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AnimalServiceTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *AnimalServiceTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *AnimalServiceTestSuite) createOrg() *models.Organization {
	org := suite.factories.Organization.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(org).Error)
	return org
}

// TestCreateAnimal tests registering an animal
func (suite *AnimalServiceTestSuite) TestCreateAnimal() {
	org := suite.createOrg()

	resp, err := suite.svc.Create(org.ID, &CreateAnimalRequest{
		Name:      "Daisy",
		Species:   "SHEEP",
		Sex:       "FEMALE",
		TagNumber: "EWE-001",
	})

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, resp.ID)
	suite.Equal(models.SpeciesSheep, resp.Species)
	suite.Equal(models.SexFemale, resp.Sex)
	suite.Equal(models.AnimalStatusActive, resp.Status)
}

// TestCreateAnimalInvalidInput tests species and sex validation
func (suite *AnimalServiceTestSuite) TestCreateAnimalInvalidInput() {
	org := suite.createOrg()

	_, err := suite.svc.Create(org.ID, &CreateAnimalRequest{Name: "Daisy", Species: "DRAGON", Sex: "FEMALE"})
	suite.True(apperrors.IsValidation(err))

	_, err = suite.svc.Create(org.ID, &CreateAnimalRequest{Name: "Daisy", Species: "SHEEP", Sex: "YES"})
	suite.True(apperrors.IsValidation(err))
}

// TestListAnimalsWithFilters tests species and sex filtering
func (suite *AnimalServiceTestSuite) TestListAnimalsWithFilters() {
	org := suite.createOrg()

	ewe := suite.factories.Animal.Ewe(org.ID, models.SpeciesSheep)
	suite.NoError(suite.baseTestSuite.DB.Create(ewe).Error)
	ram := suite.factories.Animal.Ram(org.ID, models.SpeciesSheep)
	suite.NoError(suite.baseTestSuite.DB.Create(ram).Error)
	doe := suite.factories.Animal.Ewe(org.ID, models.SpeciesGoat)
	suite.NoError(suite.baseTestSuite.DB.Create(doe).Error)

	all, err := suite.svc.List(org.ID, AnimalListFilter{}, 1, 20)
	suite.NoError(err)
	suite.Equal(int64(3), all.Total)

	sheep := models.SpeciesSheep
	female := models.SexFemale
	filtered, err := suite.svc.List(org.ID, AnimalListFilter{Species: &sheep, Sex: &female}, 1, 20)
	suite.NoError(err)
	suite.Equal(int64(1), filtered.Total)
	suite.Equal(ewe.ID, filtered.Animals[0].ID)
}

// TestUpdateAnimal tests a partial update
func (suite *AnimalServiceTestSuite) TestUpdateAnimal() {
	org := suite.createOrg()
	ewe := suite.factories.Animal.Ewe(org.ID, models.SpeciesSheep)
	suite.NoError(suite.baseTestSuite.DB.Create(ewe).Error)

	name := "Renamed"
	status := "ARCHIVED"
	resp, err := suite.svc.Update(org.ID, ewe.ID, &UpdateAnimalRequest{Name: &name, Status: &status})

	suite.NoError(err)
	suite.Equal("Renamed", resp.Name)
	suite.Equal(models.AnimalStatusArchived, resp.Status)
}

// TestDeleteAnimal tests removing an animal record
func (suite *AnimalServiceTestSuite) TestDeleteAnimal() {
	org := suite.createOrg()
	ewe := suite.factories.Animal.Ewe(org.ID, models.SpeciesSheep)
	suite.NoError(suite.baseTestSuite.DB.Create(ewe).Error)

	suite.NoError(suite.svc.Delete(org.ID, ewe.ID))

	_, err := suite.svc.GetByID(org.ID, ewe.ID)
	suite.ErrorIs(err, apperrors.ErrAnimalNotFound)
}

// TestTenantScoping tests that animals are invisible across organizations
func (suite *AnimalServiceTestSuite) TestTenantScoping() {
	org := suite.createOrg()
	other := suite.createOrg()
	ewe := suite.factories.Animal.Ewe(org.ID, models.SpeciesSheep)
	suite.NoError(suite.baseTestSuite.DB.Create(ewe).Error)

	_, err := suite.svc.GetByID(other.ID, ewe.ID)
	suite.ErrorIs(err, apperrors.ErrAnimalNotFound)
}

// TestAnimalServiceTestSuite runs the animal service test suite
func TestAnimalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnimalServiceTestSuite))
}
