package handlers

import (
	"net/http"
	"strconv"

	"herdbook-backend/internal/database/models"
	"herdbook-backend/internal/repository"
	"herdbook-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BreedingGroupHandler handles HTTP requests for breeding groups
type BreedingGroupHandler struct {
	service service.BreedingGroupServiceInterface
}

// NewBreedingGroupHandler creates a new breeding group handler
func NewBreedingGroupHandler(service service.BreedingGroupServiceInterface) *BreedingGroupHandler {
	return &BreedingGroupHandler{service: service}
}

// CreateBreedingGroup creates a new breeding group
// @Summary Create a breeding group
// @Description Create a breeding group with one sire and an optional seed list of dams
// @Tags breeding-groups
// @Accept json
// @Produce json
// @Param X-Organization-ID header string true "Organization ID (UUID)"
// @Param group body service.CreateBreedingGroupRequest true "Breeding group data"
// @Success 201 {object} service.CreateBreedingGroupResponse "Successfully created breeding group"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Sire or program not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /breeding-groups [post]
func (h *BreedingGroupHandler) CreateBreedingGroup(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}

	var req service.CreateBreedingGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	group, err := h.service.Create(orgID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, group)
}

// GetBreedingGroup retrieves a breeding group with its members
// @Summary Get breeding group by ID
// @Description Get a breeding group and its member list
// @Tags breeding-groups
// @Accept json
// @Produce json
// @Param X-Organization-ID header string true "Organization ID (UUID)"
// @Param id path string true "Breeding group ID (UUID)"
// @Success 200 {object} service.BreedingGroupResponse "Successfully retrieved breeding group"
// @Failure 400 {object} ErrorResponse "Invalid group ID"
// @Failure 404 {object} ErrorResponse "Breeding group not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /breeding-groups/{id} [get]
func (h *BreedingGroupHandler) GetBreedingGroup(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}
	groupID, ok := parseUUIDParam(c, "id", "group ID")
	if !ok {
		return
	}

	group, err := h.service.GetByID(orgID, groupID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, group)
}

// ListBreedingGroups retrieves an organization's breeding groups
// @Summary List breeding groups
// @Description Get breeding groups with optional status, species and program filters
// @Tags breeding-groups
// @Accept json
// @Produce json
// @Param X-Organization-ID header string true "Organization ID (UUID)"
// @Param status query string false "Filter by group status"
// @Param species query string false "Filter by species"
// @Param program_id query string false "Filter by program ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.BreedingGroupListResponse "Successfully retrieved breeding groups"
// @Failure 400 {object} ErrorResponse "Invalid filter parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /breeding-groups [get]
func (h *BreedingGroupHandler) ListBreedingGroups(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}

	var filter repository.GroupListFilter
	if raw := c.Query("status"); raw != "" {
		status, ok := models.ParseGroupStatus(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid status filter"})
			return
		}
		filter.Status = &status
	}
	if raw := c.Query("species"); raw != "" {
		species, ok := models.ParseSpecies(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid species filter"})
			return
		}
		filter.Species = &species
	}
	if raw := c.Query("program_id"); raw != "" {
		programID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid program ID"})
			return
		}
		filter.ProgramID = &programID
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	groups, err := h.service.List(orgID, filter, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, groups)
}

// UpdateBreedingGroup applies a partial update to a breeding group
// @Summary Update breeding group
// @Description Update group fields; setting an exposure end date on an ACTIVE group advances it to EXPOSURE_COMPLETE
// @Tags breeding-groups
// @Accept json
// @Produce json
// @Param X-Organization-ID header string true "Organization ID (UUID)"
// @Param id path string true "Breeding group ID (UUID)"
// @Param group body service.UpdateBreedingGroupRequest true "Updated group data"
// @Success 200 {object} service.BreedingGroupResponse "Successfully updated breeding group"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Breeding group not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /breeding-groups/{id} [put]
func (h *BreedingGroupHandler) UpdateBreedingGroup(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}
	groupID, ok := parseUUIDParam(c, "id", "group ID")
	if !ok {
		return
	}

	var req service.UpdateBreedingGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	group, err := h.service.Update(orgID, groupID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, group)
}

// EndExposure closes a group's exposure window
// @Summary End exposure window
// @Description Record the exposure end date and advance the group to EXPOSURE_COMPLETE
// @Tags breeding-groups
// @Accept json
// @Produce json
// @Param X-Organization-ID header string true "Organization ID (UUID)"
// @Param id path string true "Breeding group ID (UUID)"
// @Param request body service.EndExposureRequest true "Exposure end date"
// @Success 200 {object} service.BreedingGroupResponse "Exposure ended"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Breeding group not found"
// @Failure 409 {object} ErrorResponse "Group is not ACTIVE"
// @Router /breeding-groups/{id}/end-exposure [post]
func (h *BreedingGroupHandler) EndExposure(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}
	groupID, ok := parseUUIDParam(c, "id", "group ID")
	if !ok {
		return
	}

	var req service.EndExposureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	group, err := h.service.EndExposure(orgID, groupID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, group)
}

// DeleteBreedingGroup cancels and soft-deletes a breeding group
// @Summary Delete breeding group
// @Description Cancel a group and release its unresolved members; groups with graduated members cannot be deleted
// @Tags breeding-groups
// @Accept json
// @Produce json
// @Param X-Organization-ID header string true "Organization ID (UUID)"
// @Param id path string true "Breeding group ID (UUID)"
// @Success 204 "Successfully deleted breeding group"
// @Failure 400 {object} ErrorResponse "Invalid group ID"
// @Failure 404 {object} ErrorResponse "Breeding group not found"
// @Failure 409 {object} ErrorResponse "Group has graduated members"
// @Router /breeding-groups/{id} [delete]
func (h *BreedingGroupHandler) DeleteBreedingGroup(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}
	groupID, ok := parseUUIDParam(c, "id", "group ID")
	if !ok {
		return
	}

	if err := h.service.Delete(orgID, groupID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
