package service

import (
	"context"

	"impact-report-backend/internal/ingest"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OrganizationServiceInterface defines the interface for organization profile operations
type OrganizationServiceInterface interface {
	Get(orgID uuid.UUID) (*OrganizationResponse, error)
	Update(orgID uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error)
}

// DonorServiceInterface defines the interface for donor import and management
type DonorServiceInterface interface {
	ImportDonors(ctx context.Context, orgID uuid.UUID, result *ingest.Result) (*ImportSummary, error)
	ListDonors(orgID uuid.UUID, page, pageSize int) (*DonorListResponse, error)
	GetDonor(orgID, donorID uuid.UUID) (*DonorResponse, error)
	DeleteDonor(ctx context.Context, orgID, donorID uuid.UUID) error
}

// ImpactServiceInterface defines the interface for public impact pages
type ImpactServiceInterface interface {
	GetByToken(impactURL string) (*ImpactPageResponse, error)
}
