package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"herdbook-backend/internal/api/middleware"
	"herdbook-backend/internal/database/models"
	apperrors "herdbook-backend/internal/errors"
	"herdbook-backend/internal/mocks"
	"herdbook-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// BreedingGroupHandlerTestSuite tests the BreedingGroupHandler
type BreedingGroupHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	ctrl        *gomock.Controller
	mockService *mocks.MockBreedingGroupServiceInterface
	handler     *BreedingGroupHandler
	orgID       uuid.UUID
}

// SetupSuite sets up the test suite
func (suite *BreedingGroupHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

// SetupTest sets up each individual test
func (suite *BreedingGroupHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockBreedingGroupServiceInterface(suite.ctrl)
	suite.handler = NewBreedingGroupHandler(suite.mockService)
	suite.orgID = uuid.New()

	suite.router = gin.New()

	// Setup routes behind the tenancy middleware, as in production
	v1 := suite.router.Group("/api/v1")
	v1.Use(middleware.OrganizationID())
	{
		groups := v1.Group("/breeding-groups")
		{
			groups.POST("", suite.handler.CreateBreedingGroup)
			groups.GET("", suite.handler.ListBreedingGroups)
			groups.GET("/:id", suite.handler.GetBreedingGroup)
			groups.PUT("/:id", suite.handler.UpdateBreedingGroup)
			groups.DELETE("/:id", suite.handler.DeleteBreedingGroup)
			groups.POST("/:id/end-exposure", suite.handler.EndExposure)
		}
	}
}

// TearDownTest cleans up after each test
func (suite *BreedingGroupHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *BreedingGroupHandlerTestSuite) serve(method, url string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		err := json.NewEncoder(&buf).Encode(body)
		suite.NoError(err)
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Organization-ID", suite.orgID.String())

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// TestCreateBreedingGroup tests creating a new breeding group
func (suite *BreedingGroupHandlerTestSuite) TestCreateBreedingGroup() {
	groupID := uuid.New()
	sireID := uuid.New()

	request := service.CreateBreedingGroupRequest{
		Name:              "Spring Flock",
		Species:           "SHEEP",
		SireID:            sireID,
		ExposureStartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	expectedResponse := &service.CreateBreedingGroupResponse{
		Group: service.BreedingGroupResponse{
			ID:      groupID,
			Name:    "Spring Flock",
			Species: models.SpeciesSheep,
			SireID:  sireID,
			Status:  models.GroupStatusActive,
		},
	}

	suite.mockService.EXPECT().
		Create(suite.orgID, gomock.Any()).
		Return(expectedResponse, nil)

	w := suite.serve(http.MethodPost, "/api/v1/breeding-groups", request)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response service.CreateBreedingGroupResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), groupID, response.Group.ID)
	assert.Equal(suite.T(), models.GroupStatusActive, response.Group.Status)
}

// TestCreateBreedingGroupMissingOrganization tests the tenancy header requirement
func (suite *BreedingGroupHandlerTestSuite) TestCreateBreedingGroupMissingOrganization() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/breeding-groups", bytes.NewBufferString("{}"))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestCreateBreedingGroupValidationError tests the validation error mapping
func (suite *BreedingGroupHandlerTestSuite) TestCreateBreedingGroupValidationError() {
	suite.mockService.EXPECT().
		Create(suite.orgID, gomock.Any()).
		Return(nil, apperrors.NewValidationError("species", "unknown species"))

	w := suite.serve(http.MethodPost, "/api/v1/breeding-groups", service.CreateBreedingGroupRequest{})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestGetBreedingGroup tests retrieving a breeding group
func (suite *BreedingGroupHandlerTestSuite) TestGetBreedingGroup() {
	groupID := uuid.New()
	expectedResponse := &service.BreedingGroupResponse{
		ID:     groupID,
		Name:   "Spring Flock",
		Status: models.GroupStatusMonitoring,
	}

	suite.mockService.EXPECT().
		GetByID(suite.orgID, groupID).
		Return(expectedResponse, nil)

	w := suite.serve(http.MethodGet, "/api/v1/breeding-groups/"+groupID.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response service.BreedingGroupResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), groupID, response.ID)
}

// TestGetBreedingGroupNotFound tests the not-found error mapping
func (suite *BreedingGroupHandlerTestSuite) TestGetBreedingGroupNotFound() {
	groupID := uuid.New()

	suite.mockService.EXPECT().
		GetByID(suite.orgID, groupID).
		Return(nil, apperrors.ErrBreedingGroupNotFound)

	w := suite.serve(http.MethodGet, "/api/v1/breeding-groups/"+groupID.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestGetBreedingGroupInvalidID tests path parameter validation
func (suite *BreedingGroupHandlerTestSuite) TestGetBreedingGroupInvalidID() {
	w := suite.serve(http.MethodGet, "/api/v1/breeding-groups/not-a-uuid", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestListBreedingGroups tests listing with filters
func (suite *BreedingGroupHandlerTestSuite) TestListBreedingGroups() {
	expectedResponse := &service.BreedingGroupListResponse{
		Groups:   []service.BreedingGroupResponse{{ID: uuid.New(), Status: models.GroupStatusActive}},
		Total:    1,
		Page:     1,
		PageSize: 20,
	}

	suite.mockService.EXPECT().
		List(suite.orgID, gomock.Any(), 1, 20).
		Return(expectedResponse, nil)

	w := suite.serve(http.MethodGet, "/api/v1/breeding-groups?status=ACTIVE", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response service.BreedingGroupListResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), response.Total)
}

// TestListBreedingGroupsInvalidStatus tests strict filter parsing
func (suite *BreedingGroupHandlerTestSuite) TestListBreedingGroupsInvalidStatus() {
	w := suite.serve(http.MethodGet, "/api/v1/breeding-groups?status=BOGUS", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestEndExposure tests the end-exposure transition endpoint
func (suite *BreedingGroupHandlerTestSuite) TestEndExposure() {
	groupID := uuid.New()
	end := "2026-04-15"
	expectedResponse := &service.BreedingGroupResponse{
		ID:              groupID,
		Status:          models.GroupStatusExposureComplete,
		ExposureEndDate: &end,
	}

	suite.mockService.EXPECT().
		EndExposure(suite.orgID, groupID, gomock.Any()).
		Return(expectedResponse, nil)

	w := suite.serve(http.MethodPost, "/api/v1/breeding-groups/"+groupID.String()+"/end-exposure", service.EndExposureRequest{
		ExposureEndDate: time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC),
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response service.BreedingGroupResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.GroupStatusExposureComplete, response.Status)
}

// TestEndExposureConflict tests the invalid-state error mapping
func (suite *BreedingGroupHandlerTestSuite) TestEndExposureConflict() {
	groupID := uuid.New()

	suite.mockService.EXPECT().
		EndExposure(suite.orgID, groupID, gomock.Any()).
		Return(nil, apperrors.NewInvalidStateError("breeding group", "exposure can only end while the group is ACTIVE"))

	w := suite.serve(http.MethodPost, "/api/v1/breeding-groups/"+groupID.String()+"/end-exposure", service.EndExposureRequest{
		ExposureEndDate: time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC),
	})

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

// TestDeleteBreedingGroup tests deleting a breeding group
func (suite *BreedingGroupHandlerTestSuite) TestDeleteBreedingGroup() {
	groupID := uuid.New()

	suite.mockService.EXPECT().
		Delete(suite.orgID, groupID).
		Return(nil)

	w := suite.serve(http.MethodDelete, "/api/v1/breeding-groups/"+groupID.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

// TestDeleteBreedingGroupWithGraduatedMembers tests the conflict mapping on delete
func (suite *BreedingGroupHandlerTestSuite) TestDeleteBreedingGroupWithGraduatedMembers() {
	groupID := uuid.New()

	suite.mockService.EXPECT().
		Delete(suite.orgID, groupID).
		Return(apperrors.ErrGroupHasGraduatedMember)

	w := suite.serve(http.MethodDelete, "/api/v1/breeding-groups/"+groupID.String(), nil)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

// TestBreedingGroupHandlerTestSuite runs the test suite
func TestBreedingGroupHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BreedingGroupHandlerTestSuite))
}
