package handlers

import (
	"net/http"

	apperrors "impact-report-backend/internal/errors"
	"impact-report-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ImpactHandler serves public donor impact pages
type ImpactHandler struct {
	service service.ImpactServiceInterface
}

// NewImpactHandler creates a new impact handler
func NewImpactHandler(service service.ImpactServiceInterface) *ImpactHandler {
	return &ImpactHandler{service: service}
}

// GetImpactPage handles GET /impact/:token
// @Summary Public impact page
// @Description Resolve a donor's impact URL token. No authentication; rate limited per client IP.
// @Tags impact
// @Produce json
// @Param token path string true "Impact URL token"
// @Success 200 {object} service.ImpactPageResponse "Impact page"
// @Failure 404 {object} ErrorResponse "Unknown token"
// @Failure 429 {object} ErrorResponse "Too many requests"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /impact/{token} [get]
func (h *ImpactHandler) GetImpactPage(c *gin.Context) {
	page, err := h.service.GetByToken(c.Param("token"))
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load impact page", "details": err.Error()})
		return
	}

	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, page)
}
