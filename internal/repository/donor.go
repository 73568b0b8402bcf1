package repository

import (
	"impact-report-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const insertBatchSize = 500

// DonorRepository handles database operations for donors
type DonorRepository struct {
	db *gorm.DB
}

// NewDonorRepository creates a new donor repository
func NewDonorRepository(db *gorm.DB) *DonorRepository {
	return &DonorRepository{db: db}
}

// GetByID retrieves a donor by ID
func (r *DonorRepository) GetByID(id uuid.UUID) (*models.Donor, error) {
	var donor models.Donor
	if err := r.db.First(&donor, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &donor, nil
}

// GetByEmail retrieves a donor by exact email
func (r *DonorRepository) GetByEmail(email string) (*models.Donor, error) {
	var donor models.Donor
	if err := r.db.First(&donor, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &donor, nil
}

// GetByImpactURL retrieves a donor by impact page token
func (r *DonorRepository) GetByImpactURL(impactURL string) (*models.Donor, error) {
	var donor models.Donor
	if err := r.db.First(&donor, "impact_url = ?", impactURL).Error; err != nil {
		return nil, err
	}
	return &donor, nil
}

// GetByOrganizationID lists an organization's donors, newest first
func (r *DonorRepository) GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.Donor, int64, error) {
	var donors []models.Donor
	var total int64

	if err := r.db.Model(&models.Donor{}).Where("organization_id = ?", orgID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("organization_id = ?", orgID).Order("created_at DESC").Order("email ASC").
		Limit(limit).Offset(offset).
		Find(&donors).Error
	if err != nil {
		return nil, 0, err
	}

	return donors, total, nil
}

// InsertMany inserts the whole batch in one transaction. IDs and timestamps
// are written back into the slice.
func (r *DonorRepository) InsertMany(donors []models.Donor) error {
	if len(donors) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&donors, insertBatchSize).Error
	})
}

// Delete deletes a donor
func (r *DonorRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Donor{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
