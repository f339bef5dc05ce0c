//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"codevend/internal/handler/api"
	reqdto "codevend/internal/handler/dto/request"
	resdto "codevend/internal/handler/dto/response"
	"codevend/internal/usecase/commands"
	"codevend/tests/common/httptest"
	"codevend/tests/common/testutil"
	commandsmock "codevend/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DeliveryHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockDelivery *commandsmock.MockDeliveryCommands
	handler      *api.DeliveryHandler
}

func (s *DeliveryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockDelivery = commandsmock.NewMockDeliveryCommands(s.mockCtrl)
	s.handler = api.NewDeliveryHandler(s.mockDelivery)

	// Stand-in for the shared-secret middleware
	secretMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API secret required"})
			return
		}
		c.Next()
	}

	s.router.POST("/api/get-code", secretMiddleware, s.handler.GetCode)
}

func (s *DeliveryHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDeliveryHandlerSuite(t *testing.T) {
	suite.Run(t, new(DeliveryHandlerTestSuite))
}

func (s *DeliveryHandlerTestSuite) TestGetCode() {
	url := "/api/get-code"

	reqBody := reqdto.GetCodeRequest{ProductID: "game-keys", User: "alice"}

	s.Run("success: returns 200 OK with the delivered code", func() {
		s.mockDelivery.EXPECT().Deliver(gomock.Any(), "game-keys", "alice").
			Return(&commands.DeliverResult{Code: "KEY-001", IsNew: true, Count: 1, Max: 1}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "test-secret")

		var response resdto.DeliverResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("KEY-001", response.Code)
		s.True(response.IsNew)
		s.Equal(1, response.Count)
		s.Equal(1, response.Max)
	})

	s.Run("success: replayed code is flagged as not new", func() {
		s.mockDelivery.EXPECT().Deliver(gomock.Any(), "game-keys", "alice").
			Return(&commands.DeliverResult{Code: "KEY-001", IsNew: false, Count: 1, Max: 1}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "test-secret")

		var response resdto.DeliverResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.IsNew)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: product_id", mutate: testutil.Field("product_id", nil)},
			{name: "missing field: user", mutate: testutil.Field("user", nil)},
			{name: "empty product_id", mutate: testutil.Field("product_id", "")},
			{name: "empty user", mutate: testutil.Field("user", "")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "test-secret")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized without secret", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			deliverError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "product not found",
				deliverError:   commands.ErrProductNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Product not found",
			},
			{
				name:           "pool exhausted",
				deliverError:   commands.ErrNoStock,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "No codes available",
			},
			{
				name:           "contention ceiling",
				deliverError:   commands.ErrContention,
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "contention",
			},
			{
				name:           "internal server error",
				deliverError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockDelivery.EXPECT().Deliver(gomock.Any(), "game-keys", "alice").
					Return(nil, tc.deliverError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "test-secret")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
