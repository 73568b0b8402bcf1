package testutils

import (
	"fmt"
	"sync/atomic"
	"time"

	"impact-report-backend/internal/database/models"
	"impact-report-backend/internal/token"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// TestPassword is the plain-text password of admins built by AdminFactory
const TestPassword = "correct-horse-battery"

var sequence atomic.Int64

func nextSeq() int64 {
	return sequence.Add(1)
}

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default branding and no overrides
func (f *OrganizationFactory) Create() *models.Organization {
	n := nextSeq()
	org := models.NewDefaultOrganization(fmt.Sprintf("Test Food Bank %d", n), fmt.Sprintf("test-food-bank-%d", n))
	org.CreatedAt = time.Now()
	org.UpdatedAt = time.Now()
	return org
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	return org
}

// WithDollarsPerMeal sets the dollars-per-meal override
func (f *OrganizationFactory) WithDollarsPerMeal(v float64) *models.Organization {
	org := f.Create()
	org.DollarsPerMeal = &v
	return org
}

// DonorFactory provides methods to create test Donor data
type DonorFactory struct{}

// NewDonorFactory creates a new DonorFactory
func NewDonorFactory() *DonorFactory {
	return &DonorFactory{}
}

// Create creates a test Donor with a unique email and matching impact token
func (f *DonorFactory) Create() *models.Donor {
	n := nextSeq()
	email := fmt.Sprintf("donor%d@example.org", n)
	return &models.Donor{
		OrganizationID: uuid.New(),
		FirstName:      "Dana",
		LastName:       fmt.Sprintf("Giver%d", n),
		Email:          email,
		TotalGiving:    decimal.NewFromInt(100),
		ImpactURL:      token.Generate(email),
	}
}

// WithOrganization sets the owning organization
func (f *DonorFactory) WithOrganization(orgID uuid.UUID) *models.Donor {
	d := f.Create()
	d.OrganizationID = orgID
	return d
}

// WithEmail sets the email and regenerates the impact token
func (f *DonorFactory) WithEmail(orgID uuid.UUID, email string) *models.Donor {
	d := f.WithOrganization(orgID)
	d.Email = email
	d.ImpactURL = token.Generate(email)
	return d
}

// AdminFactory provides methods to create test Admin data
type AdminFactory struct{}

// NewAdminFactory creates a new AdminFactory
func NewAdminFactory() *AdminFactory {
	return &AdminFactory{}
}

// WithOrganization creates an admin whose password is TestPassword
func (f *AdminFactory) WithOrganization(orgID uuid.UUID) *models.Admin {
	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return &models.Admin{
		Email:          fmt.Sprintf("admin%d@foodbank.org", nextSeq()),
		PasswordHash:   string(hash),
		OrganizationID: orgID,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Organization *OrganizationFactory
	Donor        *DonorFactory
	Admin        *AdminFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization: NewOrganizationFactory(),
		Donor:        NewDonorFactory(),
		Admin:        NewAdminFactory(),
	}
}
