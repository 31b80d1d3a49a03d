package handlers

import (
	"net/http"

	"herdbook-backend/internal/api/middleware"
	apperrors "herdbook-backend/internal/errors"
	"herdbook-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// organizationID pulls the tenant id placed in the context by the
// OrganizationID middleware. A missing id means the middleware chain is
// misconfigured, not a client error.
func organizationID(c *gin.Context) (uuid.UUID, bool) {
	orgID, ok := middleware.GetOrganizationID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "organization context missing"})
		return uuid.Nil, false
	}
	return orgID, true
}

// respondError maps service errors to HTTP status codes: validation errors to
// 400, not-found to 404, conflicts and invalid state transitions to 409,
// everything else to 500
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsConflict(err), apperrors.IsInvalidState(err):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		logger.WithContext(c).WithField("path", c.FullPath()).Errorf("Unhandled service error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}

// parseUUIDParam parses a path parameter as a UUID, writing a 400 response
// on failure
func parseUUIDParam(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + label})
		return uuid.Nil, false
	}
	return id, true
}
