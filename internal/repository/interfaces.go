package repository

import (
	"impact-report-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	Update(org *models.Organization) error
}

// AdminRepositoryInterface defines the interface for admin account operations
type AdminRepositoryInterface interface {
	CreateWithOrganization(admin *models.Admin, org *models.Organization) error
	GetByID(id uuid.UUID) (*models.Admin, error)
	GetByEmail(email string) (*models.Admin, error)
}

// DonorRepositoryInterface is the donor storage capability. Lookups return
// gorm.ErrRecordNotFound when nothing matches. InsertMany is all-or-nothing and
// reports unique violations as gorm.ErrDuplicatedKey.
type DonorRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.Donor, error)
	GetByEmail(email string) (*models.Donor, error)
	GetByImpactURL(impactURL string) (*models.Donor, error)
	GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.Donor, int64, error)
	InsertMany(donors []models.Donor) error
	Delete(id uuid.UUID) error
}
