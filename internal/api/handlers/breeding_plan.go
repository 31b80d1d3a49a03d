package handlers

import (
	"net/http"
	"strconv"

	"herdbook-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BreedingPlanHandler handles HTTP requests for breeding plans
type BreedingPlanHandler struct {
	service service.BreedingPlanServiceInterface
}

// NewBreedingPlanHandler creates a new breeding plan handler
func NewBreedingPlanHandler(service service.BreedingPlanServiceInterface) *BreedingPlanHandler {
	return &BreedingPlanHandler{service: service}
}

// GetPlan retrieves a breeding plan by ID
// @Summary Get breeding plan by ID
// @Description Get a specific breeding plan by its UUID
// @Tags breeding-plans
// @Accept json
// @Produce json
// @Param X-Organization-ID header string true "Organization ID (UUID)"
// @Param id path string true "Plan ID (UUID)"
// @Success 200 {object} service.PlanResponse "Successfully retrieved plan"
// @Failure 400 {object} ErrorResponse "Invalid plan ID"
// @Failure 404 {object} ErrorResponse "Plan not found"
// @Router /breeding-plans/{id} [get]
func (h *BreedingPlanHandler) GetPlan(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}
	planID, ok := parseUUIDParam(c, "id", "plan ID")
	if !ok {
		return
	}

	plan, err := h.service.GetByID(orgID, planID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// ListPlans retrieves an organization's breeding plans
// @Summary List breeding plans
// @Description Get the organization's breeding plans with pagination
// @Tags breeding-plans
// @Accept json
// @Produce json
// @Param X-Organization-ID header string true "Organization ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.PlanListResponse "Successfully retrieved plans"
// @Router /breeding-plans [get]
func (h *BreedingPlanHandler) ListPlans(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	plans, err := h.service.List(orgID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, plans)
}
