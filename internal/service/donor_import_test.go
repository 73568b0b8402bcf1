package service_test

import (
	"errors"
	"testing"

	"impact-report-backend/internal/database/models"
	apperrors "impact-report-backend/internal/errors"
	"impact-report-backend/internal/service"
	"impact-report-backend/internal/token"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// stubLookup is a DonorLookup backed by maps
type stubLookup struct {
	byEmail map[string]*models.Donor
	byToken map[string]*models.Donor
	err     error
}

func newStubLookup(stored ...*models.Donor) *stubLookup {
	l := &stubLookup{byEmail: map[string]*models.Donor{}, byToken: map[string]*models.Donor{}}
	for _, d := range stored {
		l.byEmail[d.Email] = d
		l.byToken[d.ImpactURL] = d
	}
	return l
}

func (l *stubLookup) GetByEmail(email string) (*models.Donor, error) {
	if l.err != nil {
		return nil, l.err
	}
	if d, ok := l.byEmail[email]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (l *stubLookup) GetByImpactURL(impactURL string) (*models.Donor, error) {
	if l.err != nil {
		return nil, l.err
	}
	if d, ok := l.byToken[impactURL]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func candidate(row int, first, last, email string) service.Candidate {
	return service.Candidate{
		Row: row,
		Donor: models.Donor{
			OrganizationID: uuid.New(),
			FirstName:      first,
			LastName:       last,
			Email:          email,
			TotalGiving:    decimal.NewFromInt(10),
		},
	}
}

func TestPlanInsertBatchAcceptsNewDonors(t *testing.T) {
	plan, err := service.PlanInsertBatch([]service.Candidate{
		candidate(1, "Ana", "Lee", "ana@x.org"),
		candidate(2, "Bo", "Kim", "bo@x.org"),
	}, newStubLookup())
	require.NoError(t, err)

	require.Len(t, plan.Inserted, 2)
	assert.Equal(t, []int{1, 2}, plan.Rows)
	assert.Empty(t, plan.Duplicates)
	assert.Equal(t, token.Generate("ana@x.org"), plan.Inserted[0].ImpactURL)
	assert.Equal(t, token.Generate("bo@x.org"), plan.Inserted[1].ImpactURL)
}

func TestPlanInsertBatchRejectsStoredEmail(t *testing.T) {
	stored := &models.Donor{FirstName: "Ana", LastName: "Lee", Email: "ana@x.org", ImpactURL: token.Generate("ana@x.org")}

	plan, err := service.PlanInsertBatch([]service.Candidate{
		candidate(1, "Ana", "Lee-Park", "ana@x.org"),
	}, newStubLookup(stored))
	require.NoError(t, err)

	assert.Empty(t, plan.Inserted)
	assert.Equal(t, []service.DuplicateError{{Row: 1, Email: "ana@x.org", Name: "Ana Lee-Park"}}, plan.Duplicates)
}

func TestPlanInsertBatchRejectsWithinBatchDuplicate(t *testing.T) {
	plan, err := service.PlanInsertBatch([]service.Candidate{
		candidate(1, "Ana", "Lee", "a@x.com"),
		candidate(2, "Ana", "Again", "a@x.com"),
	}, newStubLookup())
	require.NoError(t, err)

	require.Len(t, plan.Inserted, 1)
	assert.Equal(t, "Lee", plan.Inserted[0].LastName)
	require.Len(t, plan.Duplicates, 1)
	assert.Equal(t, 2, plan.Duplicates[0].Row)
	assert.Equal(t, "Ana Again", plan.Duplicates[0].Name)
}

func TestPlanInsertBatchEmailsAreCaseSensitive(t *testing.T) {
	plan, err := service.PlanInsertBatch([]service.Candidate{
		candidate(1, "Ana", "Lee", "Ana@x.org"),
		candidate(2, "Ana", "Lee", "ana@x.org"),
	}, newStubLookup())
	require.NoError(t, err)
	assert.Len(t, plan.Inserted, 2)
	assert.NotEqual(t, plan.Inserted[0].ImpactURL, plan.Inserted[1].ImpactURL)
}

func TestPlanInsertBatchSaltsCollidingToken(t *testing.T) {
	// Another donor already holds the token that ana@x.org would get
	squatter := &models.Donor{Email: "someone-else@x.org", ImpactURL: token.Generate("ana@x.org")}

	plan, err := service.PlanInsertBatch([]service.Candidate{
		candidate(1, "Ana", "Lee", "ana@x.org"),
	}, newStubLookup(squatter))
	require.NoError(t, err)

	require.Len(t, plan.Inserted, 1)
	assert.Equal(t, token.GenerateSalted("ana@x.org", 1), plan.Inserted[0].ImpactURL)
}

func TestPlanInsertBatchTokenExhaustion(t *testing.T) {
	lookup := newStubLookup()
	for attempt := 0; attempt <= token.MaxAttempts; attempt++ {
		lookup.byToken[token.GenerateSalted("ana@x.org", attempt)] = &models.Donor{Email: "other@x.org"}
	}

	_, err := service.PlanInsertBatch([]service.Candidate{candidate(1, "Ana", "Lee", "ana@x.org")}, lookup)
	assert.ErrorIs(t, err, apperrors.ErrTokenExhausted)
}

func TestPlanInsertBatchKeepsSuppliedImpactURL(t *testing.T) {
	c := candidate(1, "Ana", "Lee", "ana@x.org")
	c.Donor.ImpactURL = "legacyToken42"
	taken := candidate(2, "Bo", "Kim", "bo@x.org")
	taken.Donor.ImpactURL = "bad token!"

	plan, err := service.PlanInsertBatch([]service.Candidate{c, taken}, newStubLookup())
	require.NoError(t, err)
	require.Len(t, plan.Inserted, 2)
	assert.Equal(t, "legacyToken42", plan.Inserted[0].ImpactURL)
	assert.Equal(t, token.Generate("bo@x.org"), plan.Inserted[1].ImpactURL)
}

func TestPlanInsertBatchPropagatesStoreErrors(t *testing.T) {
	lookup := newStubLookup()
	lookup.err = errors.New("connection refused")

	_, err := service.PlanInsertBatch([]service.Candidate{candidate(1, "Ana", "Lee", "ana@x.org")}, lookup)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}
