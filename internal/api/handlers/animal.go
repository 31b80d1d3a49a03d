package handlers

import (
	"net/http"
	"strconv"

	"herdbook-backend/internal/database/models"
	"herdbook-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AnimalHandler handles HTTP requests for animals
type AnimalHandler struct {
	service service.AnimalServiceInterface
}

// NewAnimalHandler creates a new animal handler
func NewAnimalHandler(service service.AnimalServiceInterface) *AnimalHandler {
	return &AnimalHandler{service: service}
}

// CreateAnimal registers a new animal
// @Summary Register an animal
// @Description Register a new animal for the organization
// @Tags animals
// @Accept json
// @Produce json
// @Param X-Organization-ID header string true "Organization ID (UUID)"
// @Param animal body service.CreateAnimalRequest true "Animal data"
// @Success 201 {object} service.AnimalResponse "Successfully registered animal"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /animals [post]
func (h *AnimalHandler) CreateAnimal(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}

	var req service.CreateAnimalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	animal, err := h.service.Create(orgID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, animal)
}

// GetAnimal retrieves an animal by ID
// @Summary Get animal by ID
// @Description Get a specific animal by its UUID
// @Tags animals
// @Accept json
// @Produce json
// @Param X-Organization-ID header string true "Organization ID (UUID)"
// @Param id path string true "Animal ID (UUID)"
// @Success 200 {object} service.AnimalResponse "Successfully retrieved animal"
// @Failure 400 {object} ErrorResponse "Invalid animal ID"
// @Failure 404 {object} ErrorResponse "Animal not found"
// @Router /animals/{id} [get]
func (h *AnimalHandler) GetAnimal(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}
	animalID, ok := parseUUIDParam(c, "id", "animal ID")
	if !ok {
		return
	}

	animal, err := h.service.GetByID(orgID, animalID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, animal)
}

// ListAnimals retrieves an organization's animals
// @Summary List animals
// @Description Get animals with optional species, sex and status filters
// @Tags animals
// @Accept json
// @Produce json
// @Param X-Organization-ID header string true "Organization ID (UUID)"
// @Param species query string false "Filter by species"
// @Param sex query string false "Filter by sex"
// @Param status query string false "Filter by status"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.AnimalListResponse "Successfully retrieved animals"
// @Failure 400 {object} ErrorResponse "Invalid filter parameters"
// @Router /animals [get]
func (h *AnimalHandler) ListAnimals(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}

	var filter service.AnimalListFilter
	if raw := c.Query("species"); raw != "" {
		species, ok := models.ParseSpecies(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid species filter"})
			return
		}
		filter.Species = &species
	}
	if raw := c.Query("sex"); raw != "" {
		sex := models.Sex(raw)
		if !sex.IsValid() {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid sex filter"})
			return
		}
		filter.Sex = &sex
	}
	if raw := c.Query("status"); raw != "" {
		status := models.AnimalStatus(raw)
		if !status.IsValid() {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid status filter"})
			return
		}
		filter.Status = &status
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	animals, err := h.service.List(orgID, filter, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, animals)
}

// UpdateAnimal applies a partial update to an animal
// @Summary Update animal
// @Description Update an existing animal by ID
// @Tags animals
// @Accept json
// @Produce json
// @Param X-Organization-ID header string true "Organization ID (UUID)"
// @Param id path string true "Animal ID (UUID)"
// @Param animal body service.UpdateAnimalRequest true "Updated animal data"
// @Success 200 {object} service.AnimalResponse "Successfully updated animal"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Animal not found"
// @Router /animals/{id} [put]
func (h *AnimalHandler) UpdateAnimal(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}
	animalID, ok := parseUUIDParam(c, "id", "animal ID")
	if !ok {
		return
	}

	var req service.UpdateAnimalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	animal, err := h.service.Update(orgID, animalID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, animal)
}

// DeleteAnimal removes an animal
// @Summary Delete animal
// @Description Delete an animal by ID
// @Tags animals
// @Accept json
// @Produce json
// @Param X-Organization-ID header string true "Organization ID (UUID)"
// @Param id path string true "Animal ID (UUID)"
// @Success 204 "Successfully deleted animal"
// @Failure 400 {object} ErrorResponse "Invalid animal ID"
// @Failure 404 {object} ErrorResponse "Animal not found"
// @Router /animals/{id} [delete]
func (h *AnimalHandler) DeleteAnimal(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}
	animalID, ok := parseUUIDParam(c, "id", "animal ID")
	if !ok {
		return
	}

	if err := h.service.Delete(orgID, animalID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
