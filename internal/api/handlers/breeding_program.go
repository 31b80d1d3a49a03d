package handlers

import (
	"net/http"
	"strconv"

	"herdbook-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BreedingProgramHandler handles HTTP requests for breeding programs
type BreedingProgramHandler struct {
	service service.BreedingProgramServiceInterface
}

// NewBreedingProgramHandler creates a new breeding program handler
func NewBreedingProgramHandler(service service.BreedingProgramServiceInterface) *BreedingProgramHandler {
	return &BreedingProgramHandler{service: service}
}

// CreateProgram creates a new breeding program
// @Summary Create a breeding program
// @Description Create a named breeding program for the organization
// @Tags breeding-programs
// @Accept json
// @Produce json
// @Param X-Organization-ID header string true "Organization ID (UUID)"
// @Param program body service.CreateProgramRequest true "Program data"
// @Success 201 {object} service.ProgramResponse "Successfully created program"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Router /breeding-programs [post]
func (h *BreedingProgramHandler) CreateProgram(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}

	var req service.CreateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	program, err := h.service.Create(orgID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, program)
}

// GetProgram retrieves a breeding program by ID
// @Summary Get breeding program by ID
// @Description Get a specific breeding program by its UUID
// @Tags breeding-programs
// @Accept json
// @Produce json
// @Param X-Organization-ID header string true "Organization ID (UUID)"
// @Param id path string true "Program ID (UUID)"
// @Success 200 {object} service.ProgramResponse "Successfully retrieved program"
// @Failure 400 {object} ErrorResponse "Invalid program ID"
// @Failure 404 {object} ErrorResponse "Program not found"
// @Router /breeding-programs/{id} [get]
func (h *BreedingProgramHandler) GetProgram(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}
	programID, ok := parseUUIDParam(c, "id", "program ID")
	if !ok {
		return
	}

	program, err := h.service.GetByID(orgID, programID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, program)
}

// ListPrograms retrieves an organization's breeding programs
// @Summary List breeding programs
// @Description Get the organization's breeding programs with pagination
// @Tags breeding-programs
// @Accept json
// @Produce json
// @Param X-Organization-ID header string true "Organization ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.ProgramListResponse "Successfully retrieved programs"
// @Router /breeding-programs [get]
func (h *BreedingProgramHandler) ListPrograms(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	programs, err := h.service.List(orgID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, programs)
}

// UpdateProgram applies a partial update to a breeding program
// @Summary Update breeding program
// @Description Update an existing breeding program by ID
// @Tags breeding-programs
// @Accept json
// @Produce json
// @Param X-Organization-ID header string true "Organization ID (UUID)"
// @Param id path string true "Program ID (UUID)"
// @Param program body service.UpdateProgramRequest true "Updated program data"
// @Success 200 {object} service.ProgramResponse "Successfully updated program"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Program not found"
// @Router /breeding-programs/{id} [put]
func (h *BreedingProgramHandler) UpdateProgram(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}
	programID, ok := parseUUIDParam(c, "id", "program ID")
	if !ok {
		return
	}

	var req service.UpdateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	program, err := h.service.Update(orgID, programID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, program)
}

// DeleteProgram removes a breeding program
// @Summary Delete breeding program
// @Description Delete a breeding program by ID
// @Tags breeding-programs
// @Accept json
// @Produce json
// @Param X-Organization-ID header string true "Organization ID (UUID)"
// @Param id path string true "Program ID (UUID)"
// @Success 204 "Successfully deleted program"
// @Failure 400 {object} ErrorResponse "Invalid program ID"
// @Failure 404 {object} ErrorResponse "Program not found"
// @Router /breeding-programs/{id} [delete]
func (h *BreedingProgramHandler) DeleteProgram(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}
	programID, ok := parseUUIDParam(c, "id", "program ID")
	if !ok {
		return
	}

	if err := h.service.Delete(orgID, programID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
