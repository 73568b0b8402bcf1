package repository

import (
	"impact-report-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminRepository handles database operations for admin accounts
type AdminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// CreateWithOrganization stores a new admin and its organization in one transaction
func (r *AdminRepository) CreateWithOrganization(admin *models.Admin, org *models.Organization) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(org).Error; err != nil {
			return err
		}
		admin.OrganizationID = org.ID
		return tx.Create(admin).Error
	})
}

// GetByID retrieves an admin by ID
func (r *AdminRepository) GetByID(id uuid.UUID) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.First(&admin, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// GetByEmail retrieves an admin by email
func (r *AdminRepository) GetByEmail(email string) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.First(&admin, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}
