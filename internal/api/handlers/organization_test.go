package handlers

import (
	"fmt"
	"net/http"
	"testing"

	apperrors "impact-report-backend/internal/errors"
	"impact-report-backend/internal/mocks"
	"impact-report-backend/internal/service"
	"impact-report-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// OrganizationHandlerTestSuite defines the test suite for OrganizationHandler
type OrganizationHandlerTestSuite struct {
	suite.Suite
	ctrl                    *gomock.Controller
	mockOrganizationService *mocks.MockOrganizationServiceInterface
	handler                 *OrganizationHandler
	httpSuite               *testutils.HTTPTestSuite
	orgID                   uuid.UUID
}

func (suite *OrganizationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrganizationService = mocks.NewMockOrganizationServiceInterface(suite.ctrl)
	suite.handler = NewOrganizationHandler(suite.mockOrganizationService)
	suite.orgID = uuid.New()

	suite.httpSuite = testutils.SetupHTTPTest(withClaims(suite.orgID))
	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.GET("/organization", suite.handler.GetOrganization)
	v1.PUT("/organization", suite.handler.UpdateOrganization)
}

func (suite *OrganizationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *OrganizationHandlerTestSuite) TestGetOrganization() {
	suite.mockOrganizationService.EXPECT().
		Get(suite.orgID).
		Return(&service.OrganizationResponse{ID: suite.orgID, Name: "Harvest Hope"}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/organization", nil)

	var response service.OrganizationResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), "Harvest Hope", response.Name)
}

func (suite *OrganizationHandlerTestSuite) TestGetOrganizationNotFound() {
	suite.mockOrganizationService.EXPECT().Get(suite.orgID).Return(nil, apperrors.ErrOrganizationNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/organization", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "organization not found")
}

func (suite *OrganizationHandlerTestSuite) TestUpdateOrganization() {
	meal := 2.5
	suite.mockOrganizationService.EXPECT().
		Update(suite.orgID, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, req *service.UpdateOrganizationRequest) (*service.OrganizationResponse, error) {
			suite.Equal("Harvest Hope", req.Name)
			suite.Require().NotNil(req.DollarsPerMeal)
			suite.Equal(meal, *req.DollarsPerMeal)
			suite.Nil(req.PoundsPerMeal)
			return &service.OrganizationResponse{ID: suite.orgID, Name: req.Name}, nil
		})

	body := map[string]any{
		"name":           "Harvest Hope",
		"primaryColor":   "#112233",
		"secondaryColor": "#445566",
		"dollarsPerMeal": meal,
	}
	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/organization", body)
	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *OrganizationHandlerTestSuite) TestUpdateOrganizationErrors() {
	suite.mockOrganizationService.EXPECT().
		Update(suite.orgID, gomock.Any()).
		Return(nil, fmt.Errorf("validation failed: %w", validator.ValidationErrors{}))
	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/organization", map[string]any{"name": ""})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Validation failed")

	suite.mockOrganizationService.EXPECT().
		Update(suite.orgID, gomock.Any()).
		Return(nil, apperrors.NewValidationError("logoUrl", "must be an http or https URL"))
	recorder = suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/organization", map[string]any{"logoUrl": "javascript:alert(1)"})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Validation failed")

	suite.mockOrganizationService.EXPECT().
		Update(suite.orgID, gomock.Any()).
		Return(nil, fmt.Errorf("failed to update organization: %w", assert.AnError))
	recorder = suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/organization", map[string]any{"name": "x"})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Failed to update organization")

	recorder = suite.httpSuite.MakeRequestWithHeaders(http.MethodPut, "/api/v1/organization", nil, map[string]string{"Content-Type": "application/json"})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid request body")
}

func TestOrganizationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationHandlerTestSuite))
}
