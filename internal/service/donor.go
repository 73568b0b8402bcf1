package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"impact-report-backend/internal/database/models"
	apperrors "impact-report-backend/internal/errors"
	"impact-report-backend/internal/impact"
	"impact-report-backend/internal/ingest"
	"impact-report-backend/internal/logger"
	"impact-report-backend/internal/metrics"
	"impact-report-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MaxInsertAttempts bounds how often a batch is re-planned after losing a
// unique-constraint race to a concurrent upload
const MaxInsertAttempts = 3

const dateLayout = "2006-01-02"

// ImportOutcome classifies a finished import for the HTTP layer
type ImportOutcome string

const (
	ImportCreated       ImportOutcome = "created"
	ImportEmpty         ImportOutcome = "empty"
	ImportAllInvalid    ImportOutcome = "all_invalid"
	ImportAllDuplicates ImportOutcome = "all_duplicates"
)

// FieldError is one failed field of a row
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// RowErrors groups the field errors of one row
type RowErrors struct {
	Row    int          `json:"row"`
	Errors []FieldError `json:"errors"`
}

// ImportSummary is the response envelope of both upload variants
type ImportSummary struct {
	Message        string           `json:"message"`
	TotalProcessed int              `json:"totalProcessed"`
	HasErrors      bool             `json:"hasErrors"`
	Errors         []RowErrors      `json:"errors,omitempty"`
	Duplicates     []DuplicateError `json:"duplicates,omitempty"`
	Outcome        ImportOutcome    `json:"-"`
}

// DonorResponse represents a donor as shown to the owning admin
type DonorResponse struct {
	ID             uuid.UUID        `json:"id"`
	OrganizationID uuid.UUID        `json:"organizationId"`
	FirstName      string           `json:"firstName"`
	LastName       string           `json:"lastName"`
	Email          string           `json:"email"`
	TotalGiving    decimal.Decimal  `json:"totalGiving"`
	FirstGiftDate  *string          `json:"firstGiftDate,omitempty"`
	LastGiftDate   *string          `json:"lastGiftDate,omitempty"`
	LargestGift    *decimal.Decimal `json:"largestGift,omitempty"`
	GiftCount      *int             `json:"giftCount,omitempty"`
	ImpactURL      string           `json:"impactUrl"`
	ShareURL       string           `json:"shareUrl"`
	Impact         impact.Metrics   `json:"impact"`
	CreatedAt      string           `json:"createdAt"`
}

// DonorListResponse represents a paginated list of donors
type DonorListResponse struct {
	Donors   []DonorResponse `json:"donors"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"pageSize"`
}

// DonorService handles donor imports and donor management
type DonorService struct {
	donorRepo     repository.DonorRepositoryInterface
	orgRepo       repository.OrganizationRepositoryInterface
	publicBaseURL string
}

// NewDonorService creates a new donor service. publicBaseURL prefixes the
// share links of impact pages.
func NewDonorService(donorRepo repository.DonorRepositoryInterface, orgRepo repository.OrganizationRepositoryInterface, publicBaseURL string) *DonorService {
	return &DonorService{
		donorRepo:     donorRepo,
		orgRepo:       orgRepo,
		publicBaseURL: publicBaseURL,
	}
}

// ImportDonors runs duplicate detection and the batch insert for a validated
// upload. Row errors and duplicates are reported in the summary; only system
// failures are returned as errors. The insert is all-or-nothing.
func (s *DonorService) ImportDonors(ctx context.Context, orgID uuid.UUID, result *ingest.Result) (*ImportSummary, error) {
	log := logger.WithContext(ctx).WithField("organization_id", orgID)

	if _, err := s.orgRepo.GetByID(orgID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	summary := &ImportSummary{Errors: groupRowErrors(result.Errors)}

	switch result.Outcome() {
	case ingest.OutcomeEmpty:
		summary.Outcome = ImportEmpty
		summary.Message = "No donor records provided"
		s.finish(log, summary, result, 0)
		return summary, nil
	case ingest.OutcomeAllInvalid:
		summary.Outcome = ImportAllInvalid
		summary.Message = fmt.Sprintf("All %d donor records are invalid", result.TotalRows)
		s.finish(log, summary, result, 0)
		return summary, nil
	}

	candidates := CandidatesFromRecords(orgID, result.ValidRows)
	var plan *BatchPlan
	inserted := false
	for attempt := 1; attempt <= MaxInsertAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var err error
		plan, err = PlanInsertBatch(candidates, s.donorRepo)
		if err != nil {
			return nil, fmt.Errorf("failed to plan donor batch: %w", err)
		}
		if len(plan.Inserted) == 0 {
			inserted = true
			break
		}

		err = s.donorRepo.InsertMany(plan.Inserted)
		if err == nil {
			inserted = true
			break
		}
		if !repository.IsUniqueViolation(err) {
			return nil, fmt.Errorf("failed to insert donors: %w", err)
		}
		metrics.ObserveImportRetry()
		log.WithError(err).Warnf("donor batch lost a uniqueness race, re-planning (attempt %d/%d)", attempt, MaxInsertAttempts)
	}
	if !inserted {
		return nil, apperrors.ErrBatchConflict
	}

	summary.TotalProcessed = len(plan.Inserted)
	summary.Duplicates = plan.Duplicates
	summary.HasErrors = len(summary.Errors) > 0 || len(summary.Duplicates) > 0

	switch {
	case summary.TotalProcessed == 0:
		summary.Outcome = ImportAllDuplicates
		summary.Message = fmt.Sprintf("All %d valid donors already exist", len(plan.Duplicates))
	case summary.HasErrors:
		summary.Outcome = ImportCreated
		summary.Message = fmt.Sprintf("Imported %d of %d donors; %d rows had errors and %d duplicates were skipped",
			summary.TotalProcessed, result.TotalRows, len(summary.Errors), len(summary.Duplicates))
	default:
		summary.Outcome = ImportCreated
		summary.Message = fmt.Sprintf("Successfully imported %d donors", summary.TotalProcessed)
	}

	s.finish(log, summary, result, len(plan.Duplicates))
	return summary, nil
}

func (s *DonorService) finish(log *logger.Logger, summary *ImportSummary, result *ingest.Result, duplicates int) {
	summary.HasErrors = len(summary.Errors) > 0 || len(summary.Duplicates) > 0
	metrics.ObserveImport(string(summary.Outcome), summary.TotalProcessed, result.InvalidRowCount(), duplicates)
	log.WithFields(map[string]interface{}{
		"outcome":    summary.Outcome,
		"rows":       result.TotalRows,
		"inserted":   summary.TotalProcessed,
		"invalid":    result.InvalidRowCount(),
		"duplicates": duplicates,
	}).Info("donor import finished")
}

func groupRowErrors(errs []ingest.RowError) []RowErrors {
	if len(errs) == 0 {
		return nil
	}
	index := make(map[int]int)
	var grouped []RowErrors
	for _, e := range errs {
		i, ok := index[e.Row]
		if !ok {
			i = len(grouped)
			index[e.Row] = i
			grouped = append(grouped, RowErrors{Row: e.Row})
		}
		grouped[i].Errors = append(grouped[i].Errors, FieldError{Field: e.Field, Message: e.Message})
	}
	sort.SliceStable(grouped, func(a, b int) bool { return grouped[a].Row < grouped[b].Row })
	return grouped
}

// ListDonors returns a page of the organization's donors with their impact
func (s *DonorService) ListDonors(orgID uuid.UUID, page, pageSize int) (*DonorListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	org, err := s.orgRepo.GetByID(orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	donors, total, err := s.donorRepo.GetByOrganizationID(orgID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list donors: %w", err)
	}

	overrides := OverridesFor(org)
	responses := make([]DonorResponse, 0, len(donors))
	for i := range donors {
		responses = append(responses, *s.toDonorResponse(&donors[i], overrides))
	}

	return &DonorListResponse{
		Donors:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetDonor returns one donor of the organization
func (s *DonorService) GetDonor(orgID, donorID uuid.UUID) (*DonorResponse, error) {
	donor, err := s.ownedDonor(orgID, donorID)
	if err != nil {
		return nil, err
	}

	org, err := s.orgRepo.GetByID(orgID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return s.toDonorResponse(donor, OverridesFor(org)), nil
}

// DeleteDonor removes a donor of the organization. The impact URL dies with it.
func (s *DonorService) DeleteDonor(ctx context.Context, orgID, donorID uuid.UUID) error {
	donor, err := s.ownedDonor(orgID, donorID)
	if err != nil {
		return err
	}
	if err := s.donorRepo.Delete(donor.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDonorNotFound
		}
		return fmt.Errorf("failed to delete donor: %w", err)
	}
	logger.WithContext(ctx).WithField("donor_id", donorID).Info("donor deleted")
	return nil
}

func (s *DonorService) ownedDonor(orgID, donorID uuid.UUID) (*models.Donor, error) {
	donor, err := s.donorRepo.GetByID(donorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDonorNotFound
		}
		return nil, fmt.Errorf("failed to get donor: %w", err)
	}
	if donor.OrganizationID != orgID {
		return nil, apperrors.ErrDonorOutsideOrg
	}
	return donor, nil
}

func (s *DonorService) toDonorResponse(d *models.Donor, overrides *impact.Overrides) *DonorResponse {
	return &DonorResponse{
		ID:             d.ID,
		OrganizationID: d.OrganizationID,
		FirstName:      d.FirstName,
		LastName:       d.LastName,
		Email:          d.Email,
		TotalGiving:    d.TotalGiving,
		FirstGiftDate:  formatDate(d.FirstGiftDate),
		LastGiftDate:   formatDate(d.LastGiftDate),
		LargestGift:    d.LargestGift,
		GiftCount:      d.GiftCount,
		ImpactURL:      d.ImpactURL,
		ShareURL:       ShareURL(s.publicBaseURL, d.ImpactURL),
		Impact:         impact.Compute(d.TotalGiving.InexactFloat64(), overrides),
		CreatedAt:      d.CreatedAt.Format(time.RFC3339),
	}
}

// ShareURL is the public address of a donor's impact page
func ShareURL(baseURL, impactURL string) string {
	return baseURL + "/impact/" + impactURL
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
