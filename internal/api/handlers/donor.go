package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"impact-report-backend/internal/auth"
	apperrors "impact-report-backend/internal/errors"
	"impact-report-backend/internal/ingest"
	"impact-report-backend/internal/logger"
	"impact-report-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BatchUploadRequest is the JSON upload variant. Each donor is a raw row keyed
// by column header, exactly as a spreadsheet would provide it.
type BatchUploadRequest struct {
	OrganizationID string           `json:"organizationId" binding:"required" example:"0f8fad5b-d9cb-469f-a165-70867728950e"`
	Donors         []map[string]any `json:"donors"`
}

// DonorHandler handles HTTP requests for donors
type DonorHandler struct {
	service        service.DonorServiceInterface
	maxUploadBytes int64
}

// NewDonorHandler creates a new donor handler
func NewDonorHandler(service service.DonorServiceInterface, maxUploadBytes int64) *DonorHandler {
	return &DonorHandler{service: service, maxUploadBytes: maxUploadBytes}
}

// BatchUpload handles POST /api/v1/donors/batch
// @Summary Upload donors as JSON rows
// @Description Validate raw donor rows, skip duplicates and insert the rest in one batch
// @Tags donors
// @Accept json
// @Produce json
// @Param request body BatchUploadRequest true "Donor rows"
// @Success 201 {object} service.ImportSummary "At least one donor imported"
// @Failure 400 {object} service.ImportSummary "No valid rows"
// @Failure 403 {object} ErrorResponse "Organization mismatch"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Failure 409 {object} service.ImportSummary "Every valid row is a duplicate"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /donors/batch [post]
func (h *DonorHandler) BatchUpload(c *gin.Context) {
	orgID, err := auth.GetOrganizationID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req BatchUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	requested, err := uuid.Parse(req.OrganizationID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
		return
	}
	if requested != orgID {
		c.JSON(http.StatusForbidden, gin.H{"error": apperrors.ErrOrganizationMismatch.Error()})
		return
	}

	rows := make([]ingest.RawRow, len(req.Donors))
	for i, values := range req.Donors {
		rows[i] = ingest.RowFromValues(values)
	}

	summary, err := h.service.ImportDonors(c, orgID, ingest.ValidateRows(rows))
	h.respondImport(c, summary, err)
}

// ImportFile handles POST /api/v1/donors/import
// @Summary Upload a donor spreadsheet
// @Description Import donors from a CSV or XLSX file. The type is detected from the content.
// @Tags donors
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV or XLSX donor file"
// @Success 201 {object} service.ImportSummary "At least one donor imported"
// @Failure 400 {object} service.ImportSummary "No valid rows or unreadable file"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Failure 409 {object} service.ImportSummary "Every valid row is a duplicate"
// @Failure 413 {object} ErrorResponse "File too large"
// @Failure 415 {object} ErrorResponse "Unsupported file type"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /donors/import [post]
func (h *DonorHandler) ImportFile(c *gin.Context) {
	orgID, err := auth.GetOrganizationID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) || strings.Contains(err.Error(), "request body too large") {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": apperrors.ErrUploadTooLarge.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required", "details": err.Error()})
		return
	}
	if fileHeader.Size > h.maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": apperrors.ErrUploadTooLarge.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file", "details": err.Error()})
		return
	}
	defer file.Close()

	result, err := ingest.ParseUpload(file)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnsupportedUploadType):
			c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": apperrors.ErrUnsupportedUploadType.Error(), "details": err.Error()})
		case errors.Is(err, apperrors.ErrMissingHeader), errors.Is(err, apperrors.ErrNoRecognizedColumns):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse file", "details": err.Error()})
		}
		return
	}

	logger.WithContext(c).WithField("filename", fileHeader.Filename).Debug("donor file parsed")
	summary, err := h.service.ImportDonors(c, orgID, result)
	h.respondImport(c, summary, err)
}

func (h *DonorHandler) respondImport(c *gin.Context, summary *service.ImportSummary, err error) {
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			logger.WithContext(c).WithError(err).Error("donor import failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import donors", "details": err.Error()})
		}
		return
	}

	c.JSON(importStatus(summary.Outcome), summary)
}

func importStatus(outcome service.ImportOutcome) int {
	switch outcome {
	case service.ImportCreated:
		return http.StatusCreated
	case service.ImportAllDuplicates:
		return http.StatusConflict
	case service.ImportEmpty, service.ImportAllInvalid:
		return http.StatusBadRequest
	default:
		return http.StatusOK
	}
}

// ListDonors handles GET /api/v1/donors
// @Summary List donors
// @Description List the organization's donors, newest first, with impact metrics and share links
// @Tags donors
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size (max 100)" default(20)
// @Success 200 {object} service.DonorListResponse "Donors"
// @Failure 400 {object} ErrorResponse "Invalid pagination"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /donors [get]
func (h *DonorHandler) ListDonors(c *gin.Context) {
	orgID, err := auth.GetOrganizationID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page parameter"})
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pageSize parameter"})
		return
	}

	donors, err := h.service.ListDonors(orgID, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list donors", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, donors)
}

// GetDonor handles GET /api/v1/donors/:id
// @Summary Get a donor
// @Description Get one donor of the organization with impact metrics
// @Tags donors
// @Produce json
// @Param id path string true "Donor ID (UUID)"
// @Success 200 {object} service.DonorResponse "Donor"
// @Failure 400 {object} ErrorResponse "Invalid donor ID"
// @Failure 403 {object} ErrorResponse "Donor belongs to another organization"
// @Failure 404 {object} ErrorResponse "Donor not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /donors/{id} [get]
func (h *DonorHandler) GetDonor(c *gin.Context) {
	orgID, err := auth.GetOrganizationID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid donor ID: invalid UUID format"})
		return
	}

	donor, err := h.service.GetDonor(orgID, id)
	if err != nil {
		h.respondDonorError(c, err, "Failed to get donor")
		return
	}

	c.JSON(http.StatusOK, donor)
}

// DeleteDonor handles DELETE /api/v1/donors/:id
// @Summary Delete a donor
// @Description Delete a donor; their impact page stops resolving
// @Tags donors
// @Param id path string true "Donor ID (UUID)"
// @Success 204 "Donor deleted"
// @Failure 400 {object} ErrorResponse "Invalid donor ID"
// @Failure 403 {object} ErrorResponse "Donor belongs to another organization"
// @Failure 404 {object} ErrorResponse "Donor not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /donors/{id} [delete]
func (h *DonorHandler) DeleteDonor(c *gin.Context) {
	orgID, err := auth.GetOrganizationID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid donor ID: invalid UUID format"})
		return
	}

	if err := h.service.DeleteDonor(c, orgID, id); err != nil {
		h.respondDonorError(c, err, "Failed to delete donor")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *DonorHandler) respondDonorError(c *gin.Context, err error, message string) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": message, "details": err.Error()})
	}
}

// Template handles GET /api/v1/donors/template
// @Summary Download the donor template
// @Description Download an example donor file with the recognized columns
// @Tags donors
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "csv or xlsx" default(csv) Enums(csv, xlsx)
// @Success 200 {file} file "Template file"
// @Failure 400 {object} ErrorResponse "Unknown format"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /donors/template [get]
func (h *DonorHandler) Template(c *gin.Context) {
	var (
		buf         bytes.Buffer
		err         error
		contentType string
		filename    string
	)

	switch c.DefaultQuery("format", "csv") {
	case "csv":
		err = ingest.WriteTemplateCSV(&buf)
		contentType, filename = "text/csv; charset=utf-8", "donor-template.csv"
	case "xlsx":
		err = ingest.WriteTemplateXLSX(&buf)
		contentType, filename = ingest.XLSXContentType, "donor-template.xlsx"
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown template format: expected csv or xlsx"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build template", "details": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
