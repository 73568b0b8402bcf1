package service_test

import (
	"encoding/json"
	"testing"
	"time"

	"impact-report-backend/internal/database/models"
	apperrors "impact-report-backend/internal/errors"
	"impact-report-backend/internal/mocks"
	"impact-report-backend/internal/repository"
	"impact-report-backend/internal/service"
	"impact-report-backend/internal/token"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ImpactServiceTestSuite defines the test suite for ImpactService
type ImpactServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockOrgRepo *mocks.MockOrganizationRepositoryInterface
	donorRepo   *repository.MemoryDonorRepository
	service     *service.ImpactService
	org         *models.Organization
	donor       models.Donor
}

func (suite *ImpactServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.donorRepo = repository.NewMemoryDonorRepository()
	suite.service = service.NewImpactService(suite.donorRepo, suite.mockOrgRepo, testBaseURL)

	suite.org = models.NewDefaultOrganization("Harvest Hope", "harvest-hope")
	suite.org.LogoURL = "https://cdn.example.org/logo.png"

	first := time.Date(2022, 5, 1, 0, 0, 0, 0, time.UTC)
	suite.donor = models.Donor{
		OrganizationID: suite.org.ID,
		FirstName:      "Ana",
		LastName:       "Lee",
		Email:          "ana@x.org",
		TotalGiving:    decimal.RequireFromString("1250.50"),
		FirstGiftDate:  &first,
		ImpactURL:      token.Generate("ana@x.org"),
	}
	suite.Require().NoError(suite.donorRepo.InsertMany([]models.Donor{suite.donor}))
}

func (suite *ImpactServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetByToken tests the public impact page payload
func (suite *ImpactServiceTestSuite) TestGetByToken() {
	suite.mockOrgRepo.EXPECT().GetByID(suite.org.ID).Return(suite.org, nil)

	page, err := suite.service.GetByToken(suite.donor.ImpactURL)
	suite.Require().NoError(err)

	suite.Equal("Ana", page.Donor.FirstName)
	suite.Equal("$1,250.50", page.FormattedTotal)
	suite.Equal(int64(12505), page.Impact.Meals)
	suite.Equal(int64(1043), page.Impact.People)
	suite.Equal(int64(15006), page.Impact.Pounds)
	suite.Equal("Harvest Hope", page.Organization.Name)
	suite.Equal(models.DefaultPrimaryColor, page.Organization.PrimaryColor)
	suite.Equal(testBaseURL+"/impact/"+suite.donor.ImpactURL, page.ShareURL)
	suite.Require().NotNil(page.Donor.FirstGiftDate)
	suite.Equal("2022-05-01", *page.Donor.FirstGiftDate)

	body, err := json.Marshal(page)
	suite.Require().NoError(err)
	suite.NotContains(string(body), "ana@x.org")
}

// TestGetByTokenRecomputesWithCurrentOverrides tests that metrics follow coefficient changes
func (suite *ImpactServiceTestSuite) TestGetByTokenRecomputesWithCurrentOverrides() {
	half := 0.5
	updated := *suite.org
	updated.DollarsPerMeal = &half
	gomock.InOrder(
		suite.mockOrgRepo.EXPECT().GetByID(suite.org.ID).Return(suite.org, nil),
		suite.mockOrgRepo.EXPECT().GetByID(suite.org.ID).Return(&updated, nil),
	)

	before, err := suite.service.GetByToken(suite.donor.ImpactURL)
	suite.Require().NoError(err)
	after, err := suite.service.GetByToken(suite.donor.ImpactURL)
	suite.Require().NoError(err)

	suite.Equal(int64(12505), before.Impact.Meals)
	suite.Equal(int64(2501), after.Impact.Meals)
}

// TestGetByTokenNotFound tests unknown and malformed tokens
func (suite *ImpactServiceTestSuite) TestGetByTokenNotFound() {
	_, err := suite.service.GetByToken("doesNotExist1")
	suite.ErrorIs(err, apperrors.ErrImpactPageNotFound)

	_, err = suite.service.GetByToken("../../etc/passwd")
	suite.ErrorIs(err, apperrors.ErrImpactPageNotFound)

	_, err = suite.service.GetByToken("")
	suite.ErrorIs(err, apperrors.ErrImpactPageNotFound)
}

// TestGetByTokenMissingOrganization tests the default branding fallback
func (suite *ImpactServiceTestSuite) TestGetByTokenMissingOrganization() {
	suite.mockOrgRepo.EXPECT().GetByID(suite.org.ID).Return(nil, gorm.ErrRecordNotFound)

	page, err := suite.service.GetByToken(suite.donor.ImpactURL)
	suite.Require().NoError(err)
	suite.Equal(models.DefaultOrganizationName, page.Organization.Name)
	suite.Equal(int64(12505), page.Impact.Meals)
}

func TestImpactServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ImpactServiceTestSuite))
}

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "$0.00", service.FormatUSD(decimal.Zero))
	assert.Equal(t, "$10.00", service.FormatUSD(decimal.NewFromInt(10)))
	assert.Equal(t, "$1,000,000.01", service.FormatUSD(decimal.RequireFromString("1000000.005")))
}
