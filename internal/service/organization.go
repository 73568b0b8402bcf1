package service

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"impact-report-backend/internal/database/models"
	apperrors "impact-report-backend/internal/errors"
	"impact-report-backend/internal/impact"
	"impact-report-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// OrganizationService handles business logic for organization profiles
type OrganizationService struct {
	repo      repository.OrganizationRepositoryInterface
	validator *validator.Validate
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(repo repository.OrganizationRepositoryInterface, validator *validator.Validate) *OrganizationService {
	return &OrganizationService{
		repo:      repo,
		validator: validator,
	}
}

// UpdateOrganizationRequest replaces the whole profile. Omitted coefficients
// are cleared and fall back to the defaults.
type UpdateOrganizationRequest struct {
	Name             string   `json:"name" validate:"required,min=1,max=200"`
	LogoURL          string   `json:"logoUrl" validate:"omitempty,url,max=2000"`
	PrimaryColor     string   `json:"primaryColor" validate:"required,hexcolor"`
	SecondaryColor   string   `json:"secondaryColor" validate:"required,hexcolor"`
	ThankYouMessage  string   `json:"thankYouMessage" validate:"max=2000"`
	ThankYouVideoURL string   `json:"thankYouVideoUrl" validate:"omitempty,url,max=2000"`
	DollarsPerMeal   *float64 `json:"dollarsPerMeal" validate:"omitempty,gt=0"`
	MealsPerPerson   *float64 `json:"mealsPerPerson" validate:"omitempty,gt=0"`
	PoundsPerMeal    *float64 `json:"poundsPerMeal" validate:"omitempty,gt=0"`
	CO2PerPound      *float64 `json:"co2PerPound" validate:"omitempty,gt=0"`
	WaterPerPound    *float64 `json:"waterPerPound" validate:"omitempty,gt=0"`
}

// OrganizationResponse represents the organization profile returned to admins
type OrganizationResponse struct {
	ID                    uuid.UUID           `json:"id"`
	Name                  string              `json:"name"`
	Slug                  string              `json:"slug"`
	LogoURL               string              `json:"logoUrl"`
	PrimaryColor          string              `json:"primaryColor"`
	SecondaryColor        string              `json:"secondaryColor"`
	ThankYouMessage       string              `json:"thankYouMessage"`
	ThankYouVideoURL      string              `json:"thankYouVideoUrl"`
	Overrides             impact.Overrides    `json:"overrides"`
	EffectiveCoefficients impact.Coefficients `json:"effectiveCoefficients"`
	CreatedAt             string              `json:"createdAt"`
	UpdatedAt             string              `json:"updatedAt"`
}

// Get returns the organization profile
func (s *OrganizationService) Get(orgID uuid.UUID) (*OrganizationResponse, error) {
	org, err := s.repo.GetByID(orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return toOrganizationResponse(org), nil
}

// Update replaces the organization profile
func (s *OrganizationService) Update(orgID uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	// Both links are rendered on the public page
	if err := requireWebURL("logoUrl", req.LogoURL); err != nil {
		return nil, err
	}
	if err := requireWebURL("thankYouVideoUrl", req.ThankYouVideoURL); err != nil {
		return nil, err
	}

	org, err := s.repo.GetByID(orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	org.Name = req.Name
	org.Slug = OrganizationSlug(req.Name, org.ID)
	org.LogoURL = req.LogoURL
	org.PrimaryColor = req.PrimaryColor
	org.SecondaryColor = req.SecondaryColor
	org.ThankYouMessage = req.ThankYouMessage
	org.ThankYouVideoURL = req.ThankYouVideoURL
	org.DollarsPerMeal = req.DollarsPerMeal
	org.MealsPerPerson = req.MealsPerPerson
	org.PoundsPerMeal = req.PoundsPerMeal
	org.CO2PerPound = req.CO2PerPound
	org.WaterPerPound = req.WaterPerPound

	if err := s.repo.Update(org); err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}
	return toOrganizationResponse(org), nil
}

func requireWebURL(field, raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return apperrors.NewValidationError(field, "must be an http or https URL")
	}
	return nil
}

// OrganizationSlug derives a URL slug from the name, suffixed with the start
// of the id so that equal names stay unique
func OrganizationSlug(name string, id uuid.UUID) string {
	base := slug.Make(name)
	if base == "" {
		base = "organization"
	}
	return base + "-" + id.String()[:8]
}

// OverridesFor returns the organization's coefficient overrides; nil org
// yields no overrides
func OverridesFor(org *models.Organization) *impact.Overrides {
	if org == nil {
		return nil
	}
	return &impact.Overrides{
		DollarsPerMeal: org.DollarsPerMeal,
		MealsPerPerson: org.MealsPerPerson,
		PoundsPerMeal:  org.PoundsPerMeal,
		CO2PerPound:    org.CO2PerPound,
		WaterPerPound:  org.WaterPerPound,
	}
}

func toOrganizationResponse(org *models.Organization) *OrganizationResponse {
	overrides := OverridesFor(org)
	return &OrganizationResponse{
		ID:                    org.ID,
		Name:                  org.Name,
		Slug:                  org.Slug,
		LogoURL:               org.LogoURL,
		PrimaryColor:          org.PrimaryColor,
		SecondaryColor:        org.SecondaryColor,
		ThankYouMessage:       org.ThankYouMessage,
		ThankYouVideoURL:      org.ThankYouVideoURL,
		Overrides:             *overrides,
		EffectiveCoefficients: overrides.Resolve(),
		CreatedAt:             org.CreatedAt.Format(time.RFC3339),
		UpdatedAt:             org.UpdatedAt.Format(time.RFC3339),
	}
}
