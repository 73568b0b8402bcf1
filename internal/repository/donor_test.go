package repository

import (
	"fmt"
	"testing"
	"time"

	"impact-report-backend/internal/database/models"
	"impact-report-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// DonorRepositoryTestSuite runs the same storage contract against the GORM
// repository and the in-memory store
type DonorRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          DonorRepositoryInterface
	factories     *testutils.FactorySet
	orgID         uuid.UUID
	otherOrgID    uuid.UUID
	memory        bool
}

func (suite *DonorRepositoryTestSuite) SetupSuite() {
	suite.factories = testutils.NewFactorySet()
	if !suite.memory {
		suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	}
}

func (suite *DonorRepositoryTestSuite) TearDownSuite() {
	if suite.baseTestSuite != nil {
		suite.baseTestSuite.TeardownTestSuite()
	}
}

func (suite *DonorRepositoryTestSuite) SetupTest() {
	if suite.memory {
		suite.repo = NewMemoryDonorRepository()
		suite.orgID = uuid.New()
		suite.otherOrgID = uuid.New()
		return
	}

	suite.baseTestSuite.SetupTest()
	orgRepo := NewOrganizationRepository(suite.baseTestSuite.DB)
	org := suite.factories.Organization.Create()
	other := suite.factories.Organization.Create()
	suite.Require().NoError(orgRepo.Create(org))
	suite.Require().NoError(orgRepo.Create(other))
	suite.orgID = org.ID
	suite.otherOrgID = other.ID
	suite.repo = NewDonorRepository(suite.baseTestSuite.DB)
}

func (suite *DonorRepositoryTestSuite) count() int64 {
	_, total, err := suite.repo.GetByOrganizationID(suite.orgID, 1, 0)
	suite.Require().NoError(err)
	return total
}

// TestInsertManyAndLookups tests inserting a batch and reading it back
func (suite *DonorRepositoryTestSuite) TestInsertManyAndLookups() {
	first := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	largest := decimal.RequireFromString("75.50")
	gifts := 4

	d1 := suite.factories.Donor.WithOrganization(suite.orgID)
	d1.TotalGiving = decimal.RequireFromString("123.45")
	d1.FirstGiftDate = &first
	d1.LargestGift = &largest
	d1.GiftCount = &gifts
	d2 := suite.factories.Donor.WithOrganization(suite.orgID)

	batch := []models.Donor{*d1, *d2}
	suite.Require().NoError(suite.repo.InsertMany(batch))
	suite.NotEqual(uuid.Nil, batch[0].ID)
	suite.NotEqual(uuid.Nil, batch[1].ID)

	byEmail, err := suite.repo.GetByEmail(d1.Email)
	suite.Require().NoError(err)
	suite.Equal(batch[0].ID, byEmail.ID)
	suite.True(decimal.RequireFromString("123.45").Equal(byEmail.TotalGiving))
	suite.Require().NotNil(byEmail.FirstGiftDate)
	suite.Equal("2023-01-15", byEmail.FirstGiftDate.Format("2006-01-02"))
	suite.Require().NotNil(byEmail.LargestGift)
	suite.True(largest.Equal(*byEmail.LargestGift))
	suite.Require().NotNil(byEmail.GiftCount)
	suite.Equal(4, *byEmail.GiftCount)

	byToken, err := suite.repo.GetByImpactURL(d2.ImpactURL)
	suite.Require().NoError(err)
	suite.Equal(d2.Email, byToken.Email)

	byID, err := suite.repo.GetByID(batch[1].ID)
	suite.Require().NoError(err)
	suite.Equal(d2.ImpactURL, byID.ImpactURL)
}

// TestLookupsNotFound tests the not-found contract
func (suite *DonorRepositoryTestSuite) TestLookupsNotFound() {
	_, err := suite.repo.GetByEmail("nobody@example.org")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	_, err = suite.repo.GetByImpactURL("missingtoken")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	_, err = suite.repo.GetByID(uuid.New())
	suite.True(IsNotFound(err))
}

// TestInsertManyRejectsStoredEmail tests that a clash with a stored donor aborts the whole batch
func (suite *DonorRepositoryTestSuite) TestInsertManyRejectsStoredEmail() {
	existing := suite.factories.Donor.WithOrganization(suite.orgID)
	suite.Require().NoError(suite.repo.InsertMany([]models.Donor{*existing}))

	fresh := suite.factories.Donor.WithOrganization(suite.orgID)
	clash := suite.factories.Donor.WithOrganization(suite.orgID)
	clash.Email = existing.Email

	err := suite.repo.InsertMany([]models.Donor{*fresh, *clash})
	suite.Require().Error(err)
	suite.True(IsUniqueViolation(err), "unexpected error: %v", err)

	suite.Equal(int64(1), suite.count())
	_, err = suite.repo.GetByEmail(fresh.Email)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestInsertManyRejectsBatchDuplicates tests that repeated emails inside one batch abort it
func (suite *DonorRepositoryTestSuite) TestInsertManyRejectsBatchDuplicates() {
	a := suite.factories.Donor.WithOrganization(suite.orgID)
	b := suite.factories.Donor.WithOrganization(suite.orgID)
	b.Email = a.Email

	err := suite.repo.InsertMany([]models.Donor{*a, *b})
	suite.True(IsUniqueViolation(err), "unexpected error: %v", err)
	suite.Equal(int64(0), suite.count())
}

// TestInsertManyRejectsImpactURLClash tests the impact URL unique constraint
func (suite *DonorRepositoryTestSuite) TestInsertManyRejectsImpactURLClash() {
	a := suite.factories.Donor.WithOrganization(suite.orgID)
	suite.Require().NoError(suite.repo.InsertMany([]models.Donor{*a}))

	b := suite.factories.Donor.WithOrganization(suite.orgID)
	b.ImpactURL = a.ImpactURL
	err := suite.repo.InsertMany([]models.Donor{*b})
	suite.True(IsUniqueViolation(err), "unexpected error: %v", err)
}

// TestInsertManyEmpty tests that an empty batch is a no-op
func (suite *DonorRepositoryTestSuite) TestInsertManyEmpty() {
	suite.NoError(suite.repo.InsertMany(nil))
}

// TestGetByOrganizationID tests pagination and organization scoping
func (suite *DonorRepositoryTestSuite) TestGetByOrganizationID() {
	var batch []models.Donor
	for i := 0; i < 5; i++ {
		batch = append(batch, *suite.factories.Donor.WithEmail(suite.orgID, fmt.Sprintf("page%d@example.org", i)))
	}
	suite.Require().NoError(suite.repo.InsertMany(batch))
	other := suite.factories.Donor.WithOrganization(suite.otherOrgID)
	suite.Require().NoError(suite.repo.InsertMany([]models.Donor{*other}))

	page, total, err := suite.repo.GetByOrganizationID(suite.orgID, 2, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(5), total)
	suite.Len(page, 2)

	last, total, err := suite.repo.GetByOrganizationID(suite.orgID, 2, 4)
	suite.Require().NoError(err)
	suite.Equal(int64(5), total)
	suite.Len(last, 1)

	seen := map[string]bool{}
	all, _, err := suite.repo.GetByOrganizationID(suite.orgID, 10, 0)
	suite.Require().NoError(err)
	for _, d := range all {
		suite.Equal(suite.orgID, d.OrganizationID)
		seen[d.Email] = true
	}
	suite.Len(seen, 5)
	suite.False(seen[other.Email])
}

// TestDelete tests deleting a donor
func (suite *DonorRepositoryTestSuite) TestDelete() {
	d := suite.factories.Donor.WithOrganization(suite.orgID)
	batch := []models.Donor{*d}
	suite.Require().NoError(suite.repo.InsertMany(batch))

	suite.NoError(suite.repo.Delete(batch[0].ID))
	_, err := suite.repo.GetByEmail(d.Email)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	suite.ErrorIs(suite.repo.Delete(batch[0].ID), gorm.ErrRecordNotFound)
}

func TestDonorRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(DonorRepositoryTestSuite))
}

func TestMemoryDonorRepositoryTestSuite(t *testing.T) {
	suite.Run(t, &DonorRepositoryTestSuite{memory: true})
}
