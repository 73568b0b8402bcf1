package service

import (
	"fmt"

	"impact-report-backend/internal/database/models"
	apperrors "impact-report-backend/internal/errors"
	"impact-report-backend/internal/ingest"
	"impact-report-backend/internal/repository"
	"impact-report-backend/internal/token"

	"github.com/google/uuid"
)

// DonorLookup is the read side of the donor store used while planning a batch
type DonorLookup interface {
	GetByEmail(email string) (*models.Donor, error)
	GetByImpactURL(impactURL string) (*models.Donor, error)
}

// Candidate is a validated donor waiting for insertion, tagged with its
// source row number
type Candidate struct {
	Row   int
	Donor models.Donor
}

// DuplicateError reports a row rejected because its email already exists in
// the store or earlier in the same batch
type DuplicateError struct {
	Row   int    `json:"row"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (e DuplicateError) Error() string {
	return fmt.Sprintf("row %d: donor %s <%s> already exists", e.Row, e.Name, e.Email)
}

// BatchPlan is the outcome of duplicate detection: the donors to insert, with
// impact URLs assigned, and the rejected duplicates
type BatchPlan struct {
	Inserted   []models.Donor
	Rows       []int
	Duplicates []DuplicateError
}

// PlanInsertBatch walks candidates in input order. A candidate whose email is
// already stored, or was accepted earlier in the batch, becomes a duplicate;
// every other candidate is accepted with a collision-free impact URL.
// Duplicates are rejected, never merged.
func PlanInsertBatch(candidates []Candidate, lookup DonorLookup) (*BatchPlan, error) {
	plan := &BatchPlan{}
	accepted := make(map[string]struct{}, len(candidates))
	batchTokens := make(map[string]struct{}, len(candidates))

	for _, c := range candidates {
		donor := c.Donor

		if _, seen := accepted[donor.Email]; seen {
			plan.Duplicates = append(plan.Duplicates, duplicateOf(c))
			continue
		}
		_, err := lookup.GetByEmail(donor.Email)
		if err == nil {
			plan.Duplicates = append(plan.Duplicates, duplicateOf(c))
			continue
		}
		if !repository.IsNotFound(err) {
			return nil, fmt.Errorf("failed to check existing donor: %w", err)
		}

		impactURL, err := assignImpactURL(donor, lookup, batchTokens)
		if err != nil {
			return nil, err
		}
		donor.ImpactURL = impactURL

		accepted[donor.Email] = struct{}{}
		batchTokens[impactURL] = struct{}{}
		plan.Inserted = append(plan.Inserted, donor)
		plan.Rows = append(plan.Rows, c.Row)
	}
	return plan, nil
}

// assignImpactURL keeps a well-formed impact URL supplied with the row when
// it is free, otherwise derives one from the email, salting on collision.
func assignImpactURL(donor models.Donor, lookup DonorLookup, batchTokens map[string]struct{}) (string, error) {
	if donor.ImpactURL != "" && token.Valid(donor.ImpactURL) {
		free, err := tokenFree(donor.ImpactURL, lookup, batchTokens)
		if err != nil {
			return "", err
		}
		if free {
			return donor.ImpactURL, nil
		}
	}

	for attempt := 0; attempt <= token.MaxAttempts; attempt++ {
		candidate := token.GenerateSalted(donor.Email, attempt)
		free, err := tokenFree(candidate, lookup, batchTokens)
		if err != nil {
			return "", err
		}
		if free {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w for %s", apperrors.ErrTokenExhausted, donor.Email)
}

func tokenFree(t string, lookup DonorLookup, batchTokens map[string]struct{}) (bool, error) {
	if _, taken := batchTokens[t]; taken {
		return false, nil
	}
	_, err := lookup.GetByImpactURL(t)
	if err == nil {
		return false, nil
	}
	if repository.IsNotFound(err) {
		return true, nil
	}
	return false, fmt.Errorf("failed to check impact url: %w", err)
}

func duplicateOf(c Candidate) DuplicateError {
	return DuplicateError{Row: c.Row, Email: c.Donor.Email, Name: c.Donor.FullName()}
}

// CandidatesFromRecords turns validated rows into donors owned by orgID
func CandidatesFromRecords(orgID uuid.UUID, records []ingest.Record) []Candidate {
	out := make([]Candidate, 0, len(records))
	for _, r := range records {
		out = append(out, Candidate{
			Row: r.Row,
			Donor: models.Donor{
				OrganizationID: orgID,
				FirstName:      r.FirstName,
				LastName:       r.LastName,
				Email:          r.Email,
				TotalGiving:    r.TotalGiving,
				FirstGiftDate:  r.FirstGiftDate,
				LastGiftDate:   r.LastGiftDate,
				LargestGift:    r.LargestGift,
				GiftCount:      r.GiftCount,
				ImpactURL:      r.ImpactURL,
			},
		})
	}
	return out
}
