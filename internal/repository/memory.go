package repository

import (
	"sort"
	"sync"
	"time"

	"impact-report-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemoryDonorRepository is a process-local DonorRepositoryInterface. It keeps
// the same uniqueness rules as the donors table and is safe for concurrent use.
type MemoryDonorRepository struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]models.Donor
	byEmail map[string]uuid.UUID
	byToken map[string]uuid.UUID
	now     func() time.Time
}

// NewMemoryDonorRepository creates an empty in-memory donor store
func NewMemoryDonorRepository() *MemoryDonorRepository {
	return &MemoryDonorRepository{
		byID:    make(map[uuid.UUID]models.Donor),
		byEmail: make(map[string]uuid.UUID),
		byToken: make(map[string]uuid.UUID),
		now:     time.Now,
	}
}

func (r *MemoryDonorRepository) GetByID(id uuid.UUID) (*models.Donor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &d, nil
}

func (r *MemoryDonorRepository) GetByEmail(email string) (*models.Donor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lookup(r.byEmail, email)
}

func (r *MemoryDonorRepository) GetByImpactURL(impactURL string) (*models.Donor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lookup(r.byToken, impactURL)
}

func (r *MemoryDonorRepository) lookup(index map[string]uuid.UUID, key string) (*models.Donor, error) {
	id, ok := index[key]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	d := r.byID[id]
	return &d, nil
}

// GetByOrganizationID lists an organization's donors, newest first
func (r *MemoryDonorRepository) GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.Donor, int64, error) {
	r.mu.RLock()
	var all []models.Donor
	for _, d := range r.byID {
		if d.OrganizationID == orgID {
			all = append(all, d)
		}
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].Email < all[j].Email
	})

	total := int64(len(all))
	if offset >= len(all) {
		return []models.Donor{}, total, nil
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return all[offset:end], total, nil
}

// InsertMany stores the whole batch or nothing. A clash on email or impact
// URL, against the store or inside the batch, fails with gorm.ErrDuplicatedKey.
func (r *MemoryDonorRepository) InsertMany(donors []models.Donor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	emails := make(map[string]struct{}, len(donors))
	tokens := make(map[string]struct{}, len(donors))
	for _, d := range donors {
		if _, ok := r.byEmail[d.Email]; ok {
			return gorm.ErrDuplicatedKey
		}
		if _, ok := r.byToken[d.ImpactURL]; ok {
			return gorm.ErrDuplicatedKey
		}
		if _, ok := emails[d.Email]; ok {
			return gorm.ErrDuplicatedKey
		}
		if _, ok := tokens[d.ImpactURL]; ok {
			return gorm.ErrDuplicatedKey
		}
		emails[d.Email] = struct{}{}
		tokens[d.ImpactURL] = struct{}{}
	}

	now := r.now()
	for i := range donors {
		d := &donors[i]
		if d.ID == uuid.Nil {
			d.ID = uuid.New()
		}
		d.CreatedAt = now
		d.UpdatedAt = now
		r.byID[d.ID] = *d
		r.byEmail[d.Email] = d.ID
		r.byToken[d.ImpactURL] = d.ID
	}
	return nil
}

func (r *MemoryDonorRepository) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.byID[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.byID, id)
	delete(r.byEmail, d.Email)
	delete(r.byToken, d.ImpactURL)
	return nil
}
