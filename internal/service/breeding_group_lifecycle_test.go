package service

import (
	"sync"
	"testing"
	"time"

	"herdbook-backend/internal/database/models"
	apperrors "herdbook-backend/internal/errors"
	"herdbook-backend/internal/gestation"
	"herdbook-backend/internal/repository"
	"herdbook-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// BreedingGroupLifecycleTestSuite drives the group and member services against
// a real database, walking groups through the full exposure-to-complete cycle
type BreedingGroupLifecycleTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	groupSvc      *BreedingGroupService
	memberSvc     *BreedingGroupMemberService
	groupRepo     *repository.BreedingGroupRepository
	memberRepo    *repository.BreedingGroupMemberRepository
	planRepo      *repository.BreedingPlanRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *BreedingGroupLifecycleTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	db := suite.baseTestSuite.DB
	suite.groupRepo = repository.NewBreedingGroupRepository(db)
	suite.memberRepo = repository.NewBreedingGroupMemberRepository(db)
	suite.planRepo = repository.NewBreedingPlanRepository(db)
	animalRepo := repository.NewAnimalRepository(db)
	programRepo := repository.NewBreedingProgramRepository(db)
	table := gestation.DefaultTable()
	v := validator.New()

	suite.groupSvc = NewBreedingGroupService(db, suite.groupRepo, suite.memberRepo, animalRepo, programRepo, table, v)
	suite.memberSvc = NewBreedingGroupMemberService(db, suite.groupRepo, suite.memberRepo, animalRepo, suite.planRepo, table, v)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *BreedingGroupLifecycleTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *BreedingGroupLifecycleTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *BreedingGroupLifecycleTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *BreedingGroupLifecycleTestSuite) createOrgWithSire() (*models.Organization, *models.Animal) {
	org := suite.factories.Organization.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(org).Error)

	sire := suite.factories.Animal.Ram(org.ID, models.SpeciesSheep)
	suite.NoError(suite.baseTestSuite.DB.Create(sire).Error)
	return org, sire
}

func (suite *BreedingGroupLifecycleTestSuite) createEwes(orgID uuid.UUID, n int) []*models.Animal {
	ewes := make([]*models.Animal, 0, n)
	for i := 0; i < n; i++ {
		ewe := suite.factories.Animal.Ewe(orgID, models.SpeciesSheep)
		suite.NoError(suite.baseTestSuite.DB.Create(ewe).Error)
		ewes = append(ewes, ewe)
	}
	return ewes
}

func (suite *BreedingGroupLifecycleTestSuite) createGroup(org *models.Organization, sire *models.Animal, seedDams ...uuid.UUID) *CreateBreedingGroupResponse {
	resp, err := suite.groupSvc.Create(org.ID, &CreateBreedingGroupRequest{
		Name:              "Spring Flock",
		Species:           "SHEEP",
		SireID:            sire.ID,
		ExposureStartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		SeedDamIDs:        seedDams,
	})
	suite.NoError(err)
	suite.NotNil(resp)
	return resp
}

// TestCreateGroupSeedsDamsAndReportsSkips tests that group creation adds
// eligible seed dams and skips ineligible ones with per-dam reasons
func (suite *BreedingGroupLifecycleTestSuite) TestCreateGroupSeedsDamsAndReportsSkips() {
	org, sire := suite.createOrgWithSire()
	ewes := suite.createEwes(org.ID, 2)

	otherRam := suite.factories.Animal.Ram(org.ID, models.SpeciesSheep)
	suite.NoError(suite.baseTestSuite.DB.Create(otherRam).Error)
	goatDoe := suite.factories.Animal.Ewe(org.ID, models.SpeciesGoat)
	suite.NoError(suite.baseTestSuite.DB.Create(goatDoe).Error)
	missing := uuid.New()

	resp := suite.createGroup(org, sire, ewes[0].ID, ewes[1].ID, otherRam.ID, goatDoe.ID, missing)

	suite.Equal(models.GroupStatusActive, resp.Group.Status)
	suite.Len(resp.Group.Members, 2)
	suite.Len(resp.SkippedDams, 3)

	reasons := map[uuid.UUID]string{}
	for _, s := range resp.SkippedDams {
		reasons[s.DamID] = s.Reason
	}
	suite.Equal("wrong sex", reasons[otherRam.ID])
	suite.Equal("species mismatch", reasons[goatDoe.ID])
	suite.Equal("not found", reasons[missing])

	for _, m := range resp.Group.Members {
		suite.Equal(models.MemberStatusExposed, m.Status)
		suite.NotNil(m.ExpectedBirthStart)
		suite.NotNil(m.ExpectedBirthEnd)
	}
}

// TestOpenExposureWindowUsesStartDateForBothBounds tests the expected birth
// window while exposure is still open
func (suite *BreedingGroupLifecycleTestSuite) TestOpenExposureWindowUsesStartDateForBothBounds() {
	org, sire := suite.createOrgWithSire()
	ewes := suite.createEwes(org.ID, 1)

	resp := suite.createGroup(org, sire, ewes[0].ID)

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	suite.Equal(start.AddDate(0, 0, 142).Format("2006-01-02"), *resp.Group.Members[0].ExpectedBirthStart)
	suite.Equal(start.AddDate(0, 0, 152).Format("2006-01-02"), *resp.Group.Members[0].ExpectedBirthEnd)
}

// TestEndExposureRecomputesWindows tests that ending exposure advances the
// group and widens the expected birth windows of exposed members
func (suite *BreedingGroupLifecycleTestSuite) TestEndExposureRecomputesWindows() {
	org, sire := suite.createOrgWithSire()
	ewes := suite.createEwes(org.ID, 1)
	created := suite.createGroup(org, sire, ewes[0].ID)

	end := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	updated, err := suite.groupSvc.EndExposure(org.ID, created.Group.ID, &EndExposureRequest{ExposureEndDate: end})

	suite.NoError(err)
	suite.Equal(models.GroupStatusExposureComplete, updated.Status)
	suite.NotNil(updated.ExposureEndDate)
	suite.Equal("2026-04-15", *updated.ExposureEndDate)

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	suite.Equal(start.AddDate(0, 0, 142).Format("2006-01-02"), *updated.Members[0].ExpectedBirthStart)
	suite.Equal(end.AddDate(0, 0, 152).Format("2006-01-02"), *updated.Members[0].ExpectedBirthEnd)
}

// TestEndExposureOnlyFromActive tests that exposure cannot end twice
func (suite *BreedingGroupLifecycleTestSuite) TestEndExposureOnlyFromActive() {
	org, sire := suite.createOrgWithSire()
	created := suite.createGroup(org, sire)

	end := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	_, err := suite.groupSvc.EndExposure(org.ID, created.Group.ID, &EndExposureRequest{ExposureEndDate: end})
	suite.NoError(err)

	_, err = suite.groupSvc.EndExposure(org.ID, created.Group.ID, &EndExposureRequest{ExposureEndDate: end})
	suite.Error(err)
	suite.True(apperrors.IsInvalidState(err))
}

// TestEndExposureRejectsEndBeforeStart tests the exposure window ordering rule
func (suite *BreedingGroupLifecycleTestSuite) TestEndExposureRejectsEndBeforeStart() {
	org, sire := suite.createOrgWithSire()
	created := suite.createGroup(org, sire)

	_, err := suite.groupSvc.EndExposure(org.ID, created.Group.ID, &EndExposureRequest{
		ExposureEndDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	suite.Error(err)
	suite.True(apperrors.IsValidation(err))
}

// TestUpdateExposureEndAutoAdvances tests that a partial update setting the
// exposure end date advances an ACTIVE group to EXPOSURE_COMPLETE
func (suite *BreedingGroupLifecycleTestSuite) TestUpdateExposureEndAutoAdvances() {
	org, sire := suite.createOrgWithSire()
	created := suite.createGroup(org, sire)

	end := time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC)
	updated, err := suite.groupSvc.Update(org.ID, created.Group.ID, &UpdateBreedingGroupRequest{ExposureEndDate: &end})

	suite.NoError(err)
	suite.Equal(models.GroupStatusExposureComplete, updated.Status)
}

// TestConfirmPregnancyGraduatesMember tests that confirming a pregnancy
// creates a BRED plan, links the member and moves the group to MONITORING
func (suite *BreedingGroupLifecycleTestSuite) TestConfirmPregnancyGraduatesMember() {
	org, sire := suite.createOrgWithSire()
	ewes := suite.createEwes(org.ID, 1)
	created := suite.createGroup(org, sire, ewes[0].ID)

	end := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	_, err := suite.groupSvc.EndExposure(org.ID, created.Group.ID, &EndExposureRequest{ExposureEndDate: end})
	suite.NoError(err)

	method := "ULTRASOUND"
	resp, err := suite.memberSvc.ConfirmPregnancy(org.ID, created.Group.ID, ewes[0].ID, &ConfirmPregnancyRequest{
		CheckMethod: &method,
	})

	suite.NoError(err)
	suite.Equal(models.MemberStatusPregnant, resp.Member.Status)
	suite.NotNil(resp.Member.PregnancyConfirmedAt)
	suite.NotNil(resp.Member.BreedingPlanID)
	suite.Equal(models.PlanStatusBred, resp.Plan.Status)
	suite.Equal(ewes[0].ID, resp.Plan.DamID)
	suite.Equal(sire.ID, resp.Plan.SireID)
	suite.Equal("Spring Flock - "+ewes[0].Name, resp.Plan.Name)
	suite.NotNil(resp.Plan.ExpectedBirthDate)

	plan, err := suite.planRepo.GetByID(org.ID, resp.Plan.ID)
	suite.NoError(err)
	suite.NotNil(plan.BreedDateActual)

	group, err := suite.groupRepo.GetByID(org.ID, created.Group.ID)
	suite.NoError(err)
	suite.Equal(models.GroupStatusMonitoring, group.Status)
}

// TestConfirmPregnancyRefusedForGraduatedMember tests graduation immutability
func (suite *BreedingGroupLifecycleTestSuite) TestConfirmPregnancyRefusedForGraduatedMember() {
	org, sire := suite.createOrgWithSire()
	ewes := suite.createEwes(org.ID, 1)
	created := suite.createGroup(org, sire, ewes[0].ID)

	_, err := suite.memberSvc.ConfirmPregnancy(org.ID, created.Group.ID, ewes[0].ID, &ConfirmPregnancyRequest{})
	suite.NoError(err)

	_, err = suite.memberSvc.ConfirmPregnancy(org.ID, created.Group.ID, ewes[0].ID, &ConfirmPregnancyRequest{})
	suite.ErrorIs(err, apperrors.ErrMemberGraduated)

	_, err = suite.memberSvc.RemoveMember(org.ID, created.Group.ID, ewes[0].ID)
	suite.ErrorIs(err, apperrors.ErrMemberGraduated)

	_, err = suite.memberSvc.SetStatus(org.ID, created.Group.ID, ewes[0].ID, &SetMemberStatusRequest{Status: "EXPOSED"})
	suite.ErrorIs(err, apperrors.ErrMemberGraduated)
}

// TestRecordBirthCompletesGroupWhenLastPregnancyResolves tests that the group
// completes exactly when no unresolved member remains
func (suite *BreedingGroupLifecycleTestSuite) TestRecordBirthCompletesGroupWhenLastPregnancyResolves() {
	org, sire := suite.createOrgWithSire()
	ewes := suite.createEwes(org.ID, 2)
	created := suite.createGroup(org, sire, ewes[0].ID, ewes[1].ID)

	end := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	_, err := suite.groupSvc.EndExposure(org.ID, created.Group.ID, &EndExposureRequest{ExposureEndDate: end})
	suite.NoError(err)

	for _, ewe := range ewes {
		_, err := suite.memberSvc.ConfirmPregnancy(org.ID, created.Group.ID, ewe.ID, &ConfirmPregnancyRequest{})
		suite.NoError(err)
	}

	birthDate := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	first, err := suite.memberSvc.RecordBirth(org.ID, created.Group.ID, ewes[0].ID, &RecordBirthRequest{
		ActualBirthDate: birthDate,
		OffspringCount:  2,
	})
	suite.NoError(err)
	suite.Equal(models.MemberStatusLambed, first.Status)
	suite.Equal(2, *first.OffspringCount)
	suite.Equal(2, *first.LiveCount)
	suite.Equal(0, *first.StillbornCount)

	group, err := suite.groupRepo.GetByID(org.ID, created.Group.ID)
	suite.NoError(err)
	suite.Equal(models.GroupStatusMonitoring, group.Status)

	stillborn := 1
	live := 2
	_, err = suite.memberSvc.RecordBirth(org.ID, created.Group.ID, ewes[1].ID, &RecordBirthRequest{
		ActualBirthDate: birthDate.AddDate(0, 0, 3),
		OffspringCount:  3,
		LiveCount:       &live,
		StillbornCount:  &stillborn,
	})
	suite.NoError(err)

	group, err = suite.groupRepo.GetByID(org.ID, created.Group.ID)
	suite.NoError(err)
	suite.Equal(models.GroupStatusComplete, group.Status)
}

// TestRecordBirthRequiresConfirmedPregnancy tests that an EXPOSED member
// cannot lamb on the books
func (suite *BreedingGroupLifecycleTestSuite) TestRecordBirthRequiresConfirmedPregnancy() {
	org, sire := suite.createOrgWithSire()
	ewes := suite.createEwes(org.ID, 1)
	created := suite.createGroup(org, sire, ewes[0].ID)

	_, err := suite.memberSvc.RecordBirth(org.ID, created.Group.ID, ewes[0].ID, &RecordBirthRequest{
		ActualBirthDate: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
	})
	suite.Error(err)
	suite.True(apperrors.IsValidation(err))
}

// TestNotPregnantOutcomeDoesNotCompleteGroupAlone tests that ruling a
// pregnancy out resolves the member without group side effects
func (suite *BreedingGroupLifecycleTestSuite) TestNotPregnantOutcomeDoesNotCompleteGroupAlone() {
	org, sire := suite.createOrgWithSire()
	ewes := suite.createEwes(org.ID, 2)
	created := suite.createGroup(org, sire, ewes[0].ID, ewes[1].ID)

	resp, err := suite.memberSvc.MarkNotPregnant(org.ID, created.Group.ID, ewes[0].ID, &MarkNotPregnantRequest{})
	suite.NoError(err)
	suite.Equal(models.MemberStatusNotPregnant, resp.Status)
	suite.NotNil(resp.PregnancyCheckedAt)
	suite.Nil(resp.PregnancyConfirmedAt)

	group, err := suite.groupRepo.GetByID(org.ID, created.Group.ID)
	suite.NoError(err)
	suite.Equal(models.GroupStatusActive, group.Status)
}

// TestMarkNotPregnantRefusedOnceResolved tests that a resolved member cannot
// be reopened with a negative pregnancy check
func (suite *BreedingGroupLifecycleTestSuite) TestMarkNotPregnantRefusedOnceResolved() {
	org, sire := suite.createOrgWithSire()
	ewes := suite.createEwes(org.ID, 1)
	created := suite.createGroup(org, sire, ewes[0].ID)

	_, err := suite.memberSvc.RemoveMember(org.ID, created.Group.ID, ewes[0].ID)
	suite.NoError(err)

	_, err = suite.memberSvc.MarkNotPregnant(org.ID, created.Group.ID, ewes[0].ID, &MarkNotPregnantRequest{})
	suite.Error(err)
	suite.True(apperrors.IsInvalidState(err))

	member, err := suite.memberRepo.GetByGroupAndDam(org.ID, created.Group.ID, ewes[0].ID)
	suite.NoError(err)
	suite.Equal(models.MemberStatusRemoved, member.Status)
}

// TestTerminalOutcomeFreesDamForNewGroup tests that a NOT_PREGNANT dam can
// immediately join another group
func (suite *BreedingGroupLifecycleTestSuite) TestTerminalOutcomeFreesDamForNewGroup() {
	org, sire := suite.createOrgWithSire()
	ewes := suite.createEwes(org.ID, 1)
	created := suite.createGroup(org, sire, ewes[0].ID)

	_, err := suite.memberSvc.MarkNotPregnant(org.ID, created.Group.ID, ewes[0].ID, &MarkNotPregnantRequest{})
	suite.NoError(err)

	second := suite.createGroup(org, sire)
	member, err := suite.memberSvc.AddMember(org.ID, second.Group.ID, &AddMemberRequest{DamID: ewes[0].ID})
	suite.NoError(err)
	suite.Equal(models.MemberStatusExposed, member.Status)
}

// TestGroupCompletionReleasesExposedDams tests that completing a group when
// its last pregnancy resolves also closes out members that were never
// confirmed pregnant, so their dams can join a new group
func (suite *BreedingGroupLifecycleTestSuite) TestGroupCompletionReleasesExposedDams() {
	org, sire := suite.createOrgWithSire()
	ewes := suite.createEwes(org.ID, 2)
	created := suite.createGroup(org, sire, ewes[0].ID, ewes[1].ID)

	_, err := suite.memberSvc.ConfirmPregnancy(org.ID, created.Group.ID, ewes[0].ID, &ConfirmPregnancyRequest{})
	suite.NoError(err)

	_, err = suite.memberSvc.RecordBirth(org.ID, created.Group.ID, ewes[0].ID, &RecordBirthRequest{
		ActualBirthDate: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
		OffspringCount:  1,
	})
	suite.NoError(err)

	group, err := suite.groupRepo.GetByID(org.ID, created.Group.ID)
	suite.NoError(err)
	suite.Equal(models.GroupStatusComplete, group.Status)

	released, err := suite.memberRepo.GetByGroupAndDam(org.ID, created.Group.ID, ewes[1].ID)
	suite.NoError(err)
	suite.Equal(models.MemberStatusRemoved, released.Status)
	suite.NotNil(released.RemovedAt)

	second := suite.createGroup(org, sire)
	member, err := suite.memberSvc.AddMember(org.ID, second.Group.ID, &AddMemberRequest{DamID: ewes[1].ID})
	suite.NoError(err)
	suite.Equal(models.MemberStatusExposed, member.Status)
}

// TestDamCannotJoinSecondActiveGroup tests the single-active-membership rule
func (suite *BreedingGroupLifecycleTestSuite) TestDamCannotJoinSecondActiveGroup() {
	org, sire := suite.createOrgWithSire()
	ewes := suite.createEwes(org.ID, 1)
	first := suite.createGroup(org, sire, ewes[0].ID)

	second := suite.createGroup(org, sire)
	_, err := suite.memberSvc.AddMember(org.ID, second.Group.ID, &AddMemberRequest{DamID: ewes[0].ID})
	suite.ErrorIs(err, apperrors.ErrDamAlreadyActive)

	_, err = suite.memberSvc.AddMember(org.ID, first.Group.ID, &AddMemberRequest{DamID: ewes[0].ID})
	suite.ErrorIs(err, apperrors.ErrDamAlreadyInGroup)
}

// TestConcurrentAddMemberAdmitsExactlyOne tests that two racing additions of
// the same dam to different groups serialize on the dam row and exactly one
// membership is created
func (suite *BreedingGroupLifecycleTestSuite) TestConcurrentAddMemberAdmitsExactlyOne() {
	org, sire := suite.createOrgWithSire()
	ewes := suite.createEwes(org.ID, 1)
	first := suite.createGroup(org, sire)
	second := suite.createGroup(org, sire)

	groups := []uuid.UUID{first.Group.ID, second.Group.ID}
	results := make([]error, len(groups))
	var wg sync.WaitGroup
	for i := range groups {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := suite.memberSvc.AddMember(org.ID, groups[i], &AddMemberRequest{DamID: ewes[0].ID})
			results[i] = err
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
		} else {
			suite.True(apperrors.IsConflict(err), "loser must see a conflict, got: %v", err)
		}
	}
	suite.Equal(1, succeeded)

	active, err := suite.memberRepo.FindActiveByDam(org.ID, ewes[0].ID)
	suite.NoError(err)
	suite.Contains(groups, active.GroupID)
}

// TestBulkAddReportsPerDamOutcomes tests that a bulk add never aborts on a
// single ineligible dam
func (suite *BreedingGroupLifecycleTestSuite) TestBulkAddReportsPerDamOutcomes() {
	org, sire := suite.createOrgWithSire()
	ewes := suite.createEwes(org.ID, 2)
	other := suite.createGroup(org, sire, ewes[1].ID)
	suite.Len(other.Group.Members, 1)

	group := suite.createGroup(org, sire)
	resp, err := suite.memberSvc.AddMembersBulk(org.ID, group.Group.ID, &AddMembersBulkRequest{
		DamIDs: []uuid.UUID{ewes[0].ID, ewes[1].ID, uuid.New()},
	})

	suite.NoError(err)
	suite.Len(resp.Added, 1)
	suite.Equal(ewes[0].ID, resp.Added[0].DamID)
	suite.Len(resp.Skipped, 2)
	suite.Equal("already in another active group", resp.Skipped[0].Reason)
	suite.Equal("not found", resp.Skipped[1].Reason)
}

// TestDeleteRefusedWhenMemberGraduated tests that graduated history blocks
// group deletion
func (suite *BreedingGroupLifecycleTestSuite) TestDeleteRefusedWhenMemberGraduated() {
	org, sire := suite.createOrgWithSire()
	ewes := suite.createEwes(org.ID, 1)
	created := suite.createGroup(org, sire, ewes[0].ID)

	_, err := suite.memberSvc.ConfirmPregnancy(org.ID, created.Group.ID, ewes[0].ID, &ConfirmPregnancyRequest{})
	suite.NoError(err)

	err = suite.groupSvc.Delete(org.ID, created.Group.ID)
	suite.ErrorIs(err, apperrors.ErrGroupHasGraduatedMember)
}

// TestDeleteReleasesRemainingDams tests that deleting a group removes its
// non-terminal members so their dams are free again
func (suite *BreedingGroupLifecycleTestSuite) TestDeleteReleasesRemainingDams() {
	org, sire := suite.createOrgWithSire()
	ewes := suite.createEwes(org.ID, 1)
	created := suite.createGroup(org, sire, ewes[0].ID)

	err := suite.groupSvc.Delete(org.ID, created.Group.ID)
	suite.NoError(err)

	_, err = suite.groupSvc.GetByID(org.ID, created.Group.ID)
	suite.ErrorIs(err, apperrors.ErrBreedingGroupNotFound)

	second := suite.createGroup(org, sire)
	member, err := suite.memberSvc.AddMember(org.ID, second.Group.ID, &AddMemberRequest{DamID: ewes[0].ID})
	suite.NoError(err)
	suite.Equal(models.MemberStatusExposed, member.Status)
}

// TestCreateGroupRejectsIneligibleSpecies tests the species eligibility gate
func (suite *BreedingGroupLifecycleTestSuite) TestCreateGroupRejectsIneligibleSpecies() {
	org, _ := suite.createOrgWithSire()
	stallion := suite.factories.Animal.Ram(org.ID, models.SpeciesHorse)
	suite.NoError(suite.baseTestSuite.DB.Create(stallion).Error)

	_, err := suite.groupSvc.Create(org.ID, &CreateBreedingGroupRequest{
		Name:              "Paddock Band",
		Species:           "HORSE",
		SireID:            stallion.ID,
		ExposureStartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	suite.Error(err)
	suite.True(apperrors.IsValidation(err))
}

// TestCreateGroupValidatesSire tests sire species and sex checks
func (suite *BreedingGroupLifecycleTestSuite) TestCreateGroupValidatesSire() {
	org, _ := suite.createOrgWithSire()
	ewe := suite.createEwes(org.ID, 1)[0]

	_, err := suite.groupSvc.Create(org.ID, &CreateBreedingGroupRequest{
		Name:              "Spring Flock",
		Species:           "SHEEP",
		SireID:            ewe.ID,
		ExposureStartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	suite.Error(err)
	suite.True(apperrors.IsValidation(err))

	_, err = suite.groupSvc.Create(org.ID, &CreateBreedingGroupRequest{
		Name:              "Spring Flock",
		Species:           "SHEEP",
		SireID:            uuid.New(),
		ExposureStartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	suite.ErrorIs(err, apperrors.ErrSireNotFound)
}

// TestTenantIsolation tests that one organization cannot see or mutate
// another organization's group
func (suite *BreedingGroupLifecycleTestSuite) TestTenantIsolation() {
	org, sire := suite.createOrgWithSire()
	created := suite.createGroup(org, sire)

	otherOrg := suite.factories.Organization.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(otherOrg).Error)

	_, err := suite.groupSvc.GetByID(otherOrg.ID, created.Group.ID)
	suite.ErrorIs(err, apperrors.ErrBreedingGroupNotFound)

	err = suite.groupSvc.Delete(otherOrg.ID, created.Group.ID)
	suite.ErrorIs(err, apperrors.ErrBreedingGroupNotFound)
}

// TestBreedingGroupLifecycleTestSuite runs the lifecycle test suite
func TestBreedingGroupLifecycleTestSuite(t *testing.T) {
	suite.Run(t, new(BreedingGroupLifecycleTestSuite))
}
