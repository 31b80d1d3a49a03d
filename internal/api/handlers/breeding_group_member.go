package handlers

import (
	"net/http"

	"herdbook-backend/internal/database/models"
	"herdbook-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BreedingGroupMemberHandler handles HTTP requests for breeding group members
type BreedingGroupMemberHandler struct {
	service service.BreedingGroupMemberServiceInterface
}

// NewBreedingGroupMemberHandler creates a new member handler
func NewBreedingGroupMemberHandler(service service.BreedingGroupMemberServiceInterface) *BreedingGroupMemberHandler {
	return &BreedingGroupMemberHandler{service: service}
}

// AddMember adds a dam to a breeding group
// @Summary Add a dam to a group
// @Description Add a female animal of the group's species to the group
// @Tags breeding-group-members
// @Accept json
// @Produce json
// @Param X-Organization-ID header string true "Organization ID (UUID)"
// @Param id path string true "Breeding group ID (UUID)"
// @Param member body service.AddMemberRequest true "Member data"
// @Success 201 {object} service.MemberResponse "Successfully added member"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Group or dam not found"
// @Failure 409 {object} ErrorResponse "Dam already holds an active membership"
// @Router /breeding-groups/{id}/members [post]
func (h *BreedingGroupMemberHandler) AddMember(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}
	groupID, ok := parseUUIDParam(c, "id", "group ID")
	if !ok {
		return
	}

	var req service.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	member, err := h.service.AddMember(orgID, groupID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// AddMembersBulk adds multiple dams to a breeding group
// @Summary Add multiple dams to a group
// @Description Add dams in bulk; per-dam failures are reported as skips and do not abort the batch
// @Tags breeding-group-members
// @Accept json
// @Produce json
// @Param X-Organization-ID header string true "Organization ID (UUID)"
// @Param id path string true "Breeding group ID (UUID)"
// @Param request body service.AddMembersBulkRequest true "Dam IDs"
// @Success 200 {object} service.AddMembersBulkResponse "Batch outcome"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Router /breeding-groups/{id}/members/bulk [post]
func (h *BreedingGroupMemberHandler) AddMembersBulk(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}
	groupID, ok := parseUUIDParam(c, "id", "group ID")
	if !ok {
		return
	}

	var req service.AddMembersBulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.service.AddMembersBulk(orgID, groupID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListMembers retrieves a group's members
// @Summary List group members
// @Description Get a group's members with an optional status filter
// @Tags breeding-group-members
// @Accept json
// @Produce json
// @Param X-Organization-ID header string true "Organization ID (UUID)"
// @Param id path string true "Breeding group ID (UUID)"
// @Param status query string false "Filter by member status"
// @Success 200 {object} service.MemberListResponse "Successfully retrieved members"
// @Failure 400 {object} ErrorResponse "Invalid status filter"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Router /breeding-groups/{id}/members [get]
func (h *BreedingGroupMemberHandler) ListMembers(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}
	groupID, ok := parseUUIDParam(c, "id", "group ID")
	if !ok {
		return
	}

	var status *models.MemberStatus
	if raw := c.Query("status"); raw != "" {
		parsed, ok := models.ParseMemberStatus(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid status filter"})
			return
		}
		status = &parsed
	}

	members, err := h.service.ListMembers(orgID, groupID, status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

// RemoveMember withdraws a dam from a group
// @Summary Remove a dam from a group
// @Description Mark a member REMOVED before her pregnancy resolves; graduated members cannot be removed
// @Tags breeding-group-members
// @Accept json
// @Produce json
// @Param X-Organization-ID header string true "Organization ID (UUID)"
// @Param id path string true "Breeding group ID (UUID)"
// @Param damId path string true "Dam ID (UUID)"
// @Success 200 {object} service.MemberResponse "Member removed"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Failure 409 {object} ErrorResponse "Member has graduated"
// @Router /breeding-groups/{id}/members/{damId} [delete]
func (h *BreedingGroupMemberHandler) RemoveMember(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}
	groupID, ok := parseUUIDParam(c, "id", "group ID")
	if !ok {
		return
	}
	damID, ok := parseUUIDParam(c, "damId", "dam ID")
	if !ok {
		return
	}

	member, err := h.service.RemoveMember(orgID, groupID, damID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// SetMemberStatus overrides a member's status
// @Summary Set member status
// @Description Directly set a member's status for operator correction; no graduation side effects
// @Tags breeding-group-members
// @Accept json
// @Produce json
// @Param X-Organization-ID header string true "Organization ID (UUID)"
// @Param id path string true "Breeding group ID (UUID)"
// @Param damId path string true "Dam ID (UUID)"
// @Param request body service.SetMemberStatusRequest true "New status"
// @Success 200 {object} service.MemberResponse "Status updated"
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Failure 409 {object} ErrorResponse "Member has graduated"
// @Router /breeding-groups/{id}/members/{damId}/status [put]
func (h *BreedingGroupMemberHandler) SetMemberStatus(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}
	groupID, ok := parseUUIDParam(c, "id", "group ID")
	if !ok {
		return
	}
	damID, ok := parseUUIDParam(c, "damId", "dam ID")
	if !ok {
		return
	}

	var req service.SetMemberStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	member, err := h.service.SetStatus(orgID, groupID, damID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// ConfirmPregnancy confirms a member pregnant and graduates her to a plan
// @Summary Confirm pregnancy
// @Description Mark a member PREGNANT and create her individual breeding plan in one transaction
// @Tags breeding-group-members
// @Accept json
// @Produce json
// @Param X-Organization-ID header string true "Organization ID (UUID)"
// @Param id path string true "Breeding group ID (UUID)"
// @Param damId path string true "Dam ID (UUID)"
// @Param request body service.ConfirmPregnancyRequest true "Confirmation data"
// @Success 200 {object} service.ConfirmPregnancyResponse "Pregnancy confirmed"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Failure 409 {object} ErrorResponse "Member has graduated"
// @Router /breeding-groups/{id}/members/{damId}/confirm-pregnancy [post]
func (h *BreedingGroupMemberHandler) ConfirmPregnancy(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}
	groupID, ok := parseUUIDParam(c, "id", "group ID")
	if !ok {
		return
	}
	damID, ok := parseUUIDParam(c, "damId", "dam ID")
	if !ok {
		return
	}

	var req service.ConfirmPregnancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.service.ConfirmPregnancy(orgID, groupID, damID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// MarkNotPregnant rules a member's pregnancy out
// @Summary Mark not pregnant
// @Description Mark a member NOT_PREGNANT after a negative pregnancy check
// @Tags breeding-group-members
// @Accept json
// @Produce json
// @Param X-Organization-ID header string true "Organization ID (UUID)"
// @Param id path string true "Breeding group ID (UUID)"
// @Param damId path string true "Dam ID (UUID)"
// @Param request body service.MarkNotPregnantRequest true "Check data"
// @Success 200 {object} service.MemberResponse "Member marked not pregnant"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Failure 409 {object} ErrorResponse "Member has graduated"
// @Router /breeding-groups/{id}/members/{damId}/not-pregnant [post]
func (h *BreedingGroupMemberHandler) MarkNotPregnant(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}
	groupID, ok := parseUUIDParam(c, "id", "group ID")
	if !ok {
		return
	}
	damID, ok := parseUUIDParam(c, "damId", "dam ID")
	if !ok {
		return
	}

	var req service.MarkNotPregnantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	member, err := h.service.MarkNotPregnant(orgID, groupID, damID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// RecordBirth records a member's birth outcome
// @Summary Record birth
// @Description Record the birth outcome for a pregnant member; completes the group when the last unresolved pregnancy lambs
// @Tags breeding-group-members
// @Accept json
// @Produce json
// @Param X-Organization-ID header string true "Organization ID (UUID)"
// @Param id path string true "Breeding group ID (UUID)"
// @Param damId path string true "Dam ID (UUID)"
// @Param request body service.RecordBirthRequest true "Birth data"
// @Success 200 {object} service.MemberResponse "Birth recorded"
// @Failure 400 {object} ErrorResponse "Invalid request or member not pregnant"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Router /breeding-groups/{id}/members/{damId}/birth [post]
func (h *BreedingGroupMemberHandler) RecordBirth(c *gin.Context) {
	orgID, ok := organizationID(c)
	if !ok {
		return
	}
	groupID, ok := parseUUIDParam(c, "id", "group ID")
	if !ok {
		return
	}
	damID, ok := parseUUIDParam(c, "damId", "dam ID")
	if !ok {
		return
	}

	var req service.RecordBirthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	member, err := h.service.RecordBirth(orgID, groupID, damID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}
