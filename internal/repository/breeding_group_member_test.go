package repository

import (
	"testing"
	"time"

	"herdbook-backend/internal/database/models"
	"herdbook-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// BreedingGroupMemberRepositoryTestSuite tests the BreedingGroupMemberRepository
type BreedingGroupMemberRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *BreedingGroupMemberRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *BreedingGroupMemberRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewBreedingGroupMemberRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *BreedingGroupMemberRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *BreedingGroupMemberRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *BreedingGroupMemberRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to persist an organization plus an active sheep group with a sire
func (suite *BreedingGroupMemberRepositoryTestSuite) createGroup() (*models.Organization, *models.BreedingGroup) {
	org := suite.factories.Organization.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(org).Error)

	sire := suite.factories.Animal.Ram(org.ID, models.SpeciesSheep)
	suite.NoError(suite.baseTestSuite.DB.Create(sire).Error)

	group := suite.factories.Group.Create(org.ID, sire.ID)
	suite.NoError(NewBreedingGroupRepository(suite.baseTestSuite.DB).Create(group))
	return org, group
}

func (suite *BreedingGroupMemberRepositoryTestSuite) createDam(orgID uuid.UUID) *models.Animal {
	dam := suite.factories.Animal.Ewe(orgID, models.SpeciesSheep)
	suite.NoError(suite.baseTestSuite.DB.Create(dam).Error)
	return dam
}

// TestCreate tests creating a new membership
func (suite *BreedingGroupMemberRepositoryTestSuite) TestCreate() {
	org, group := suite.createGroup()
	dam := suite.createDam(org.ID)

	member := suite.factories.Member.Create(org.ID, group.ID, dam.ID)
	err := suite.repo.Create(member)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, member.ID)
	suite.Equal(models.MemberStatusExposed, member.Status)
}

// TestActiveDamUniqueIndex tests that the partial unique index rejects a
// second non-terminal membership for the same dam
func (suite *BreedingGroupMemberRepositoryTestSuite) TestActiveDamUniqueIndex() {
	org, group := suite.createGroup()
	dam := suite.createDam(org.ID)

	first := suite.factories.Member.Create(org.ID, group.ID, dam.ID)
	suite.NoError(suite.repo.Create(first))

	sire2 := suite.factories.Animal.Ram(org.ID, models.SpeciesSheep)
	suite.NoError(suite.baseTestSuite.DB.Create(sire2).Error)
	group2 := suite.factories.Group.Create(org.ID, sire2.ID)
	suite.NoError(NewBreedingGroupRepository(suite.baseTestSuite.DB).Create(group2))

	second := suite.factories.Member.Create(org.ID, group2.ID, dam.ID)
	err := suite.repo.Create(second)

	suite.Error(err)
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestTerminalMembershipFreesDam tests that a REMOVED membership does not
// block a new one
func (suite *BreedingGroupMemberRepositoryTestSuite) TestTerminalMembershipFreesDam() {
	org, group := suite.createGroup()
	dam := suite.createDam(org.ID)

	first := suite.factories.Member.Create(org.ID, group.ID, dam.ID)
	suite.NoError(suite.repo.Create(first))

	now := time.Now()
	first.Status = models.MemberStatusRemoved
	first.RemovedAt = &now
	suite.NoError(suite.repo.Update(first))

	second := suite.factories.Member.Create(org.ID, group.ID, dam.ID)
	suite.NoError(suite.repo.Create(second))
}

// TestFindActiveByDam tests looking up a dam's non-terminal membership
func (suite *BreedingGroupMemberRepositoryTestSuite) TestFindActiveByDam() {
	org, group := suite.createGroup()
	dam := suite.createDam(org.ID)

	member := suite.factories.Member.Create(org.ID, group.ID, dam.ID)
	suite.NoError(suite.repo.Create(member))

	found, err := suite.repo.FindActiveByDam(org.ID, dam.ID)
	suite.NoError(err)
	suite.Equal(member.ID, found.ID)

	// Terminal statuses are not active
	member.Status = models.MemberStatusNotPregnant
	suite.NoError(suite.repo.Update(member))

	_, err = suite.repo.FindActiveByDam(org.ID, dam.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestFindActiveByDamIgnoresFinishedGroups tests that a membership stops
// blocking the dam once its group has run to completion
func (suite *BreedingGroupMemberRepositoryTestSuite) TestFindActiveByDamIgnoresFinishedGroups() {
	org, group := suite.createGroup()
	dam := suite.createDam(org.ID)

	member := suite.factories.Member.Create(org.ID, group.ID, dam.ID)
	suite.NoError(suite.repo.Create(member))

	groupRepo := NewBreedingGroupRepository(suite.baseTestSuite.DB)
	suite.NoError(groupRepo.UpdateStatus(org.ID, group.ID, models.GroupStatusComplete))

	_, err := suite.repo.FindActiveByDam(org.ID, dam.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByGroupAndDam tests retrieving the latest membership for a dam
func (suite *BreedingGroupMemberRepositoryTestSuite) TestGetByGroupAndDam() {
	org, group := suite.createGroup()
	dam := suite.createDam(org.ID)

	member := suite.factories.Member.Create(org.ID, group.ID, dam.ID)
	suite.NoError(suite.repo.Create(member))

	found, err := suite.repo.GetByGroupAndDam(org.ID, group.ID, dam.ID)
	suite.NoError(err)
	suite.Equal(member.ID, found.ID)

	_, err = suite.repo.GetByGroupAndDam(org.ID, group.ID, uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByGroupIDWithStatusFilter tests listing members filtered by status
func (suite *BreedingGroupMemberRepositoryTestSuite) TestGetByGroupIDWithStatusFilter() {
	org, group := suite.createGroup()

	exposed := suite.factories.Member.Create(org.ID, group.ID, suite.createDam(org.ID).ID)
	suite.NoError(suite.repo.Create(exposed))

	pregnant := suite.factories.Member.Create(org.ID, group.ID, suite.createDam(org.ID).ID)
	pregnant.Status = models.MemberStatusPregnant
	suite.NoError(suite.repo.Create(pregnant))

	all, err := suite.repo.GetByGroupID(org.ID, group.ID, nil)
	suite.NoError(err)
	suite.Len(all, 2)

	status := models.MemberStatusPregnant
	filtered, err := suite.repo.GetByGroupID(org.ID, group.ID, &status)
	suite.NoError(err)
	suite.Len(filtered, 1)
	suite.Equal(pregnant.ID, filtered[0].ID)
}

// TestCountUnresolvedByGroupID tests that only PREGNANT and LAMBING_IMMINENT
// members count as unresolved
func (suite *BreedingGroupMemberRepositoryTestSuite) TestCountUnresolvedByGroupID() {
	org, group := suite.createGroup()

	pregnant := suite.factories.Member.Create(org.ID, group.ID, suite.createDam(org.ID).ID)
	pregnant.Status = models.MemberStatusPregnant
	suite.NoError(suite.repo.Create(pregnant))

	imminent := suite.factories.Member.Create(org.ID, group.ID, suite.createDam(org.ID).ID)
	imminent.Status = models.MemberStatusLambingImminent
	suite.NoError(suite.repo.Create(imminent))

	lambed := suite.factories.Member.Create(org.ID, group.ID, suite.createDam(org.ID).ID)
	lambed.Status = models.MemberStatusLambed
	suite.NoError(suite.repo.Create(lambed))

	count, err := suite.repo.CountUnresolvedByGroupID(org.ID, group.ID)
	suite.NoError(err)
	suite.Equal(int64(2), count)
}

// TestCountGraduatedByGroupID tests counting members linked to a plan
func (suite *BreedingGroupMemberRepositoryTestSuite) TestCountGraduatedByGroupID() {
	org, group := suite.createGroup()
	dam := suite.createDam(org.ID)

	plan := &models.BreedingPlan{
		OrganizationID: org.ID,
		Name:           "Graduated plan",
		Species:        models.SpeciesSheep,
		DamID:          dam.ID,
		SireID:         group.SireID,
		Status:         models.PlanStatusBred,
	}
	suite.NoError(NewBreedingPlanRepository(suite.baseTestSuite.DB).Create(plan))

	member := suite.factories.Member.Create(org.ID, group.ID, dam.ID)
	member.Status = models.MemberStatusPregnant
	member.BreedingPlanID = &plan.ID
	suite.NoError(suite.repo.Create(member))

	other := suite.factories.Member.Create(org.ID, group.ID, suite.createDam(org.ID).ID)
	suite.NoError(suite.repo.Create(other))

	count, err := suite.repo.CountGraduatedByGroupID(org.ID, group.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestMarkRemovedByGroupID tests bulk release of a group's non-terminal members
func (suite *BreedingGroupMemberRepositoryTestSuite) TestMarkRemovedByGroupID() {
	org, group := suite.createGroup()

	exposed := suite.factories.Member.Create(org.ID, group.ID, suite.createDam(org.ID).ID)
	suite.NoError(suite.repo.Create(exposed))

	lambed := suite.factories.Member.Create(org.ID, group.ID, suite.createDam(org.ID).ID)
	lambed.Status = models.MemberStatusLambed
	suite.NoError(suite.repo.Create(lambed))

	removedAt := time.Now()
	suite.NoError(suite.repo.MarkRemovedByGroupID(org.ID, group.ID, removedAt))

	updated, err := suite.repo.GetByID(org.ID, exposed.ID)
	suite.NoError(err)
	suite.Equal(models.MemberStatusRemoved, updated.Status)
	suite.NotNil(updated.RemovedAt)

	// Terminal members keep their status
	untouched, err := suite.repo.GetByID(org.ID, lambed.ID)
	suite.NoError(err)
	suite.Equal(models.MemberStatusLambed, untouched.Status)
}

// TestTenantIsolation tests that lookups never cross organizations
func (suite *BreedingGroupMemberRepositoryTestSuite) TestTenantIsolation() {
	org, group := suite.createGroup()
	dam := suite.createDam(org.ID)

	member := suite.factories.Member.Create(org.ID, group.ID, dam.ID)
	suite.NoError(suite.repo.Create(member))

	otherOrg := suite.factories.Organization.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(otherOrg).Error)

	_, err := suite.repo.GetByID(otherOrg.ID, member.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	_, err = suite.repo.FindActiveByDam(otherOrg.ID, dam.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// Run the test suite
func TestBreedingGroupMemberRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(BreedingGroupMemberRepositoryTestSuite))
}
