package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	apperrors "impact-report-backend/internal/errors"
	"impact-report-backend/internal/ingest"
	"impact-report-backend/internal/mocks"
	"impact-report-backend/internal/service"
	"impact-report-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// DonorHandlerTestSuite defines the test suite for DonorHandler
type DonorHandlerTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockDonorService *mocks.MockDonorServiceInterface
	handler          *DonorHandler
	httpSuite        *testutils.HTTPTestSuite
	orgID            uuid.UUID
}

func (suite *DonorHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockDonorService = mocks.NewMockDonorServiceInterface(suite.ctrl)
	suite.handler = NewDonorHandler(suite.mockDonorService, 4096)
	suite.orgID = uuid.New()

	suite.httpSuite = testutils.SetupHTTPTest(withClaims(suite.orgID))

	donors := suite.httpSuite.Router.Group("/api/v1/donors")
	{
		donors.POST("/batch", suite.handler.BatchUpload)
		donors.POST("/import", suite.handler.ImportFile)
		donors.GET("/template", suite.handler.Template)
		donors.GET("", suite.handler.ListDonors)
		donors.GET("/:id", suite.handler.GetDonor)
		donors.DELETE("/:id", suite.handler.DeleteDonor)
	}
}

func (suite *DonorHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DonorHandlerTestSuite) batchBody(donors ...map[string]any) map[string]any {
	return map[string]any{
		"organizationId": suite.orgID.String(),
		"donors":         donors,
	}
}

func validDonor(email string) map[string]any {
	return map[string]any{
		"first_name":   "Jane",
		"last_name":    "Doe",
		"email":        email,
		"total_giving": 250,
	}
}

func (suite *DonorHandlerTestSuite) TestBatchUploadCreated() {
	suite.mockDonorService.EXPECT().
		ImportDonors(gomock.Any(), suite.orgID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, result *ingest.Result) (*service.ImportSummary, error) {
			suite.Len(result.ValidRows, 1)
			suite.Len(result.Errors, 1)
			suite.Equal(2, result.TotalRows)
			return &service.ImportSummary{
				Message:        "Imported 1 of 2 donors",
				TotalProcessed: 1,
				HasErrors:      true,
				Outcome:        service.ImportCreated,
			}, nil
		})

	bad := validDonor("not-an-email")
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/donors/batch", suite.batchBody(validDonor("jane@example.org"), bad))

	var summary map[string]any
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &summary)
	suite.Equal(float64(1), summary["totalProcessed"])
	suite.Equal(true, summary["hasErrors"])
	suite.NotContains(summary, "outcome")
}

func (suite *DonorHandlerTestSuite) TestBatchUploadStatusMapping() {
	cases := []struct {
		outcome service.ImportOutcome
		status  int
	}{
		{service.ImportEmpty, http.StatusBadRequest},
		{service.ImportAllInvalid, http.StatusBadRequest},
		{service.ImportAllDuplicates, http.StatusConflict},
		{service.ImportCreated, http.StatusCreated},
	}

	for _, tc := range cases {
		suite.Run(string(tc.outcome), func() {
			suite.mockDonorService.EXPECT().
				ImportDonors(gomock.Any(), suite.orgID, gomock.Any()).
				Return(&service.ImportSummary{Outcome: tc.outcome}, nil)

			recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/donors/batch", suite.batchBody(validDonor("jane@example.org")))
			suite.Equal(tc.status, recorder.Code)
		})
	}
}

func (suite *DonorHandlerTestSuite) TestBatchUploadServiceErrors() {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"organization not found", apperrors.ErrOrganizationNotFound, http.StatusNotFound},
		{"batch conflict", apperrors.ErrBatchConflict, http.StatusInternalServerError},
		{"database failure", fmt.Errorf("failed to insert donors: %w", errors.New("connection reset")), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		suite.Run(tc.name, func() {
			suite.mockDonorService.EXPECT().
				ImportDonors(gomock.Any(), suite.orgID, gomock.Any()).
				Return(nil, tc.err)

			recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/donors/batch", suite.batchBody(validDonor("jane@example.org")))
			suite.Equal(tc.status, recorder.Code)
		})
	}
}

func (suite *DonorHandlerTestSuite) TestBatchUploadOrganizationMismatch() {
	body := map[string]any{
		"organizationId": uuid.New().String(),
		"donors":         []map[string]any{validDonor("jane@example.org")},
	}

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/donors/batch", body)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "organization does not belong")
}

func (suite *DonorHandlerTestSuite) TestBatchUploadBadRequest() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/donors/batch", map[string]any{"donors": []any{}})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid request body")

	recorder = suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/donors/batch", map[string]any{"organizationId": "nope"})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid organization ID")
}

func (suite *DonorHandlerTestSuite) TestImportCSV() {
	csv := "First Name,Last Name,Email,Total Giving\n" +
		"Jane,Doe,jane-at-example,\"$1,250.00\"\n" +
		"John,Roe,john@example.org,75\n"

	suite.mockDonorService.EXPECT().
		ImportDonors(gomock.Any(), suite.orgID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, result *ingest.Result) (*service.ImportSummary, error) {
			suite.Equal(2, result.TotalRows)
			suite.Len(result.ValidRows, 1)
			suite.Equal("John", result.ValidRows[0].FirstName)
			return &service.ImportSummary{TotalProcessed: 1, Outcome: service.ImportCreated}, nil
		})

	recorder := suite.httpSuite.MakeMultipartRequest(http.MethodPost, "/api/v1/donors/import", "file", "donors.csv", []byte(csv))
	suite.Equal(http.StatusCreated, recorder.Code, recorder.Body.String())
}

func (suite *DonorHandlerTestSuite) TestImportXLSX() {
	var buf bytes.Buffer
	suite.Require().NoError(ingest.WriteTemplateXLSX(&buf))
	suite.handler.maxUploadBytes = int64(buf.Len()) * 2

	suite.mockDonorService.EXPECT().
		ImportDonors(gomock.Any(), suite.orgID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, result *ingest.Result) (*service.ImportSummary, error) {
			suite.Len(result.ValidRows, 1)
			suite.Equal("jane.doe@example.org", result.ValidRows[0].Email)
			return &service.ImportSummary{TotalProcessed: 1, Outcome: service.ImportCreated}, nil
		})

	recorder := suite.httpSuite.MakeMultipartRequest(http.MethodPost, "/api/v1/donors/import", "file", "donors.xlsx", buf.Bytes())
	suite.Equal(http.StatusCreated, recorder.Code, recorder.Body.String())
}

func (suite *DonorHandlerTestSuite) TestImportRejectsFiles() {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01")
	recorder := suite.httpSuite.MakeMultipartRequest(http.MethodPost, "/api/v1/donors/import", "file", "logo.png", png)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnsupportedMediaType, "unsupported upload type")

	recorder = suite.httpSuite.MakeMultipartRequest(http.MethodPost, "/api/v1/donors/import", "file", "empty.csv", []byte("Favorite Color,Shoe Size\nblue,9\n"))
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "no recognized donor columns")

	recorder = suite.httpSuite.MakeMultipartRequest(http.MethodPost, "/api/v1/donors/import", "upload", "donors.csv", []byte("Email\n"))
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "File is required")

	big := bytes.Repeat([]byte("a"), 8192)
	recorder = suite.httpSuite.MakeMultipartRequest(http.MethodPost, "/api/v1/donors/import", "file", "big.csv", big)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusRequestEntityTooLarge, "maximum allowed size")
}

func (suite *DonorHandlerTestSuite) TestTemplate() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/donors/template", nil)
	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Header().Get("Content-Type"), "text/csv")
	suite.Contains(recorder.Header().Get("Content-Disposition"), "donor-template.csv")
	suite.Contains(recorder.Body.String(), "first_name")

	recorder = suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/donors/template?format=xlsx", nil)
	suite.Equal(http.StatusOK, recorder.Code)
	suite.Equal(ingest.XLSXContentType, recorder.Header().Get("Content-Type"))
	suite.NotZero(recorder.Body.Len())

	recorder = suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/donors/template?format=pdf", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Unknown template format")
}

func (suite *DonorHandlerTestSuite) TestListDonors() {
	suite.mockDonorService.EXPECT().
		ListDonors(suite.orgID, 2, 10).
		Return(&service.DonorListResponse{Donors: []service.DonorResponse{}, Total: 11, Page: 2, PageSize: 10}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/donors?page=2&pageSize=10", nil)

	var response service.DonorListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(int64(11), response.Total)

	recorder = suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/donors?page=abc", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid page parameter")
}

func (suite *DonorHandlerTestSuite) TestGetDonor() {
	donorID := uuid.New()

	suite.mockDonorService.EXPECT().GetDonor(suite.orgID, donorID).
		Return(&service.DonorResponse{ID: donorID, Email: "jane@example.org"}, nil)
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/donors/"+donorID.String(), nil)
	suite.Equal(http.StatusOK, recorder.Code)

	suite.mockDonorService.EXPECT().GetDonor(suite.orgID, donorID).Return(nil, apperrors.ErrDonorNotFound)
	recorder = suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/donors/"+donorID.String(), nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "donor not found")

	suite.mockDonorService.EXPECT().GetDonor(suite.orgID, donorID).Return(nil, apperrors.ErrDonorOutsideOrg)
	recorder = suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/donors/"+donorID.String(), nil)
	suite.Equal(http.StatusForbidden, recorder.Code)

	recorder = suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/donors/not-a-uuid", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid donor ID")
}

func (suite *DonorHandlerTestSuite) TestDeleteDonor() {
	donorID := uuid.New()

	suite.mockDonorService.EXPECT().DeleteDonor(gomock.Any(), suite.orgID, donorID).Return(nil)
	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/donors/"+donorID.String(), nil)
	suite.Equal(http.StatusNoContent, recorder.Code)

	suite.mockDonorService.EXPECT().DeleteDonor(gomock.Any(), suite.orgID, donorID).Return(apperrors.ErrDonorNotFound)
	recorder = suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/donors/"+donorID.String(), nil)
	suite.Equal(http.StatusNotFound, recorder.Code)
}

func TestDonorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DonorHandlerTestSuite))
}

func TestDonorHandlerRequiresClaims(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := NewDonorHandler(mocks.NewMockDonorServiceInterface(ctrl), 1024)

	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/api/v1/donors", handler.ListDonors)

	recorder := httpSuite.MakeRequest(http.MethodGet, "/api/v1/donors", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
