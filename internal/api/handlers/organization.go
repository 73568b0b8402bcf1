package handlers

import (
	"errors"
	"net/http"

	"impact-report-backend/internal/auth"
	apperrors "impact-report-backend/internal/errors"
	"impact-report-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// OrganizationHandler handles HTTP requests for the admin's organization profile
type OrganizationHandler struct {
	service service.OrganizationServiceInterface
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(service service.OrganizationServiceInterface) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

// GetOrganization handles GET /api/v1/organization
// @Summary Get the organization profile
// @Description Get the branding and impact coefficients of the authenticated admin's food bank
// @Tags organization
// @Produce json
// @Success 200 {object} service.OrganizationResponse "Organization profile"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /organization [get]
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	orgID, err := auth.GetOrganizationID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	org, err := h.service.Get(orgID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get organization", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, org)
}

// UpdateOrganization handles PUT /api/v1/organization
// @Summary Update the organization profile
// @Description Replace the branding and coefficient overrides. Omitted coefficients fall back to the defaults.
// @Tags organization
// @Accept json
// @Produce json
// @Param organization body service.UpdateOrganizationRequest true "Organization profile"
// @Success 200 {object} service.OrganizationResponse "Updated organization"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /organization [put]
func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	orgID, err := auth.GetOrganizationID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req service.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	org, err := h.service.Update(orgID, &req)
	if err != nil {
		var validationErrs validator.ValidationErrors
		switch {
		case errors.As(err, &validationErrs), apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": err.Error()})
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update organization", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, org)
}
