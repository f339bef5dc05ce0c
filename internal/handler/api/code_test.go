//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"codevend/internal/domain/code"
	"codevend/internal/handler/api"
	reqdto "codevend/internal/handler/dto/request"
	resdto "codevend/internal/handler/dto/response"
	"codevend/internal/pkg/errs"
	"codevend/internal/usecase/commands"
	"codevend/internal/usecase/queries"
	"codevend/tests/common/httptest"
	"codevend/tests/common/testutil"
	commandsmock "codevend/tests/mock/commands"
	queriesmock "codevend/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CodeHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockLoader  *commandsmock.MockCodeLoaderCommands
	mockAdmin   *commandsmock.MockCodeAdminCommands
	mockQueries *queriesmock.MockCodeQueries
	handler     *api.CodeHandler
}

func (s *CodeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockLoader = commandsmock.NewMockCodeLoaderCommands(s.mockCtrl)
	s.mockAdmin = commandsmock.NewMockCodeAdminCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCodeQueries(s.mockCtrl)
	s.handler = api.NewCodeHandler(s.mockLoader, s.mockAdmin, s.mockQueries)

	s.router.POST("/api/upload-codes", s.handler.UploadCodes)
	s.router.GET("/admin/products/:id/codes", s.handler.ListCodes)
	s.router.POST("/admin/products/:id/codes", s.handler.UploadProductCodes)
	s.router.DELETE("/admin/codes/:id", s.handler.DeleteCode)
	s.router.POST("/admin/codes/:id/assign", s.handler.AssignCode)
}

func (s *CodeHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCodeHandlerSuite(t *testing.T) {
	suite.Run(t, new(CodeHandlerTestSuite))
}

func (s *CodeHandlerTestSuite) TestUploadCodes() {
	url := "/api/upload-codes"

	reqBody := reqdto.UploadCodesRequest{
		ProductID: "game-keys",
		Codes:     []string{"KEY-001", "KEY-002"},
	}

	s.Run("success: returns 200 OK with insert counts", func() {
		s.mockLoader.EXPECT().Load(gomock.Any(), "game-keys", []string{"KEY-001", "KEY-002"}).
			Return(&commands.LoadResult{Inserted: 2, Duplicates: 0}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "test-secret")

		var response resdto.UploadCodesResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(2, response.Inserted)
		s.Equal(0, response.Duplicates)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: product_id", mutate: testutil.Field("product_id", nil)},
			{name: "missing field: codes", mutate: testutil.Field("codes", nil)},
			{name: "empty codes list", mutate: testutil.Field("codes", []string{})},
			{name: "empty code value", mutate: testutil.Field("codes", []string{""})},
			{name: "overlong code value", mutate: testutil.Field("codes", []string{strings.Repeat("x", 513)})},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "test-secret")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 404 Not Found for unknown product", func() {
		s.mockLoader.EXPECT().Load(gomock.Any(), "game-keys", gomock.Any()).
			Return(nil, commands.ErrProductNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "test-secret")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
	})

	s.Run("error: 400 Bad Request for rejected code values", func() {
		s.mockLoader.EXPECT().Load(gomock.Any(), "game-keys", gomock.Any()).
			Return(nil, errs.Mark(code.ErrEmptyCodeValue, commands.ErrCodeValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "test-secret")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid code value")
	})
}

func (s *CodeHandlerTestSuite) TestUploadProductCodes() {
	url := "/admin/products/game-keys/codes"

	reqBody := reqdto.AdminUploadCodesRequest{Codes: []string{"KEY-001"}}

	s.Run("success: product comes from the path", func() {
		s.mockLoader.EXPECT().Load(gomock.Any(), "game-keys", []string{"KEY-001"}).
			Return(&commands.LoadResult{Inserted: 1, Duplicates: 0}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "test-secret")

		var response resdto.UploadCodesResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(1, response.Inserted)
	})
}

func (s *CodeHandlerTestSuite) TestListCodes() {
	url := "/admin/products/game-keys/codes"

	view := &queries.CodeView{
		ID:        uuid.New(),
		ProductID: "game-keys",
		Value:     "KEY-001",
		Status:    "available",
		CreatedAt: time.Now(),
	}

	s.Run("success: returns 200 OK with codes", func() {
		s.mockQueries.EXPECT().ListByProduct(gomock.Any(), "game-keys", queries.CodeFilters{}, 0).
			Return([]*queries.CodeView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "test-secret")

		var response []resdto.CodeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal("KEY-001", response[0].Value)
	})

	s.Run("success: status filter is forwarded", func() {
		status := "assigned"
		s.mockQueries.EXPECT().ListByProduct(gomock.Any(), "game-keys", gomock.Cond(func(f queries.CodeFilters) bool {
			return f.Status != nil && *f.Status == status
		}), 50).
			Return([]*queries.CodeView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=assigned&limit=50", nil, "test-secret")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for bogus status filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=bogus", nil, "test-secret")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid status")
	})

	s.Run("error: 400 Bad Request for non-numeric limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=abc", nil, "test-secret")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid limit")
	})
}

func (s *CodeHandlerTestSuite) TestAssignCode() {
	codeID := uuid.New()
	url := "/admin/codes/" + codeID.String() + "/assign"

	reqBody := reqdto.AssignCodeRequest{User: "alice"}

	s.Run("success: returns 200 OK with assigned code", func() {
		s.mockAdmin.EXPECT().Assign(gomock.Any(), codeID, "alice").
			Return(&commands.AssignCodeResult{Code: "KEY-001"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "test-secret")

		var response resdto.AssignCodeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("KEY-001", response.Code)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/codes/not-a-uuid/assign", reqBody, "test-secret")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid code ID")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			assignError    error
			expectedStatus int
		}{
			{name: "code not found", assignError: commands.ErrCodeNotFound, expectedStatus: http.StatusNotFound},
			{name: "already assigned", assignError: commands.ErrCodeAlreadyAssigned, expectedStatus: http.StatusConflict},
			{name: "internal error", assignError: errors.New("database error"), expectedStatus: http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockAdmin.EXPECT().Assign(gomock.Any(), codeID, "alice").
					Return(nil, tc.assignError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "test-secret")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

func (s *CodeHandlerTestSuite) TestDeleteCode() {
	codeID := uuid.New()
	url := "/admin/codes/" + codeID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockAdmin.EXPECT().Delete(gomock.Any(), codeID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "test-secret")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusNoContent, nil)
	})

	s.Run("error: 404 Not Found for missing code", func() {
		s.mockAdmin.EXPECT().Delete(gomock.Any(), codeID).
			Return(commands.ErrCodeNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "test-secret")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Code not found")
	})
}
