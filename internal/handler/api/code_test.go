//go:build unit

package api_test

import (
	"encoding/base64"
	"errors"
	"net/http"
	"testing"

	"washclub/internal/handler/api"
	reqdto "washclub/internal/handler/dto/request"
	resdto "washclub/internal/handler/dto/response"
	"washclub/internal/usecase/commands"
	"washclub/internal/usecase/queries"
	"washclub/tests/common/builder"
	"washclub/tests/common/httptest"
	commandsmock "washclub/tests/mock/commands"
	queriesmock "washclub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CodeHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRedemptionCommands
	mockQueries  *queriesmock.MockCodeQueries
	handler      *api.CodeHandler
	userID       uuid.UUID
}

func (s *CodeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.userID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRedemptionCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCodeQueries(s.mockCtrl)
	s.handler = api.NewCodeHandler(s.mockCommands, s.mockQueries)

	authed := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.userID)
		}
		c.Next()
	}
	s.router.POST("/codes", authed, s.handler.IssueCode)
	s.router.GET("/codes", authed, s.handler.ListCodes)
	s.router.GET("/codes/:code", authed, s.handler.VerifyCode)
}

func (s *CodeHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCodeHandlerSuite(t *testing.T) {
	suite.Run(t, new(CodeHandlerTestSuite))
}

func (s *CodeHandlerTestSuite) TestIssueCode() {
	url := "/codes"
	reqBody := reqdto.IssueCodeRequest{WashType: "in_and_out"}
	codeView := builder.NewCodeBuilder().BuildView()
	qrPNG := []byte{0x89, 0x50, 0x4E, 0x47}

	s.Run("success: returns 201 with encoded QR image", func() {
		s.mockCommands.EXPECT().IssueCode(gomock.Any(), s.userID, gomock.Any()).
			Return(&commands.IssueCodeResult{Code: codeView, QRPNG: qrPNG}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.IssueCodeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(codeView.Code, response.Code.Code)
		s.Equal(base64.StdEncoding.EncodeToString(qrPNG), response.QRPNG)
	})

	s.Run("error: 400 on unknown wash type", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.IssueCodeRequest{WashType: "underbody"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "no entitlement",
				commandsError:  commands.ErrNoEntitlement,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "No active subscription or purchase covers this wash type",
			},
			{
				name:           "quota exhausted",
				commandsError:  commands.ErrQuotaExhausted,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Wash quota for the current period is exhausted",
			},
			{
				name:           "code generation exhausted",
				commandsError:  commands.ErrCodeGenerationExhausted,
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "Could not allocate a unique code",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().IssueCode(gomock.Any(), s.userID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *CodeHandlerTestSuite) TestListCodes() {
	url := "/codes"
	items := []*queries.CodeListItem{
		builder.NewCodeBuilder().BuildListItem(),
		builder.NewCodeBuilder().BuildListItem(),
	}

	s.Run("success: returns own codes", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, 0).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.CodeListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Codes, 2)
	})

	s.Run("success: forwards limit parameter", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, 5).
			Return(items[:1], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=5", nil, "bearer-token")

		var response resdto.CodeListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Codes, 1)
	})

	s.Run("error: 400 on invalid limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=abc", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid limit parameter")
	})
}

func (s *CodeHandlerTestSuite) TestVerifyCode() {
	codeView := builder.NewCodeBuilder().BuildView()
	url := "/codes/" + codeView.Code

	s.Run("success: eligible code", func() {
		s.mockCommands.EXPECT().VerifyCode(gomock.Any(), s.userID, codeView.Code).
			Return(&commands.VerifyCodeResult{Code: codeView, Eligible: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.VerifyCodeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Eligible)
		s.Nil(response.IneligibleReason)
	})

	s.Run("success: ineligible code carries reason", func() {
		reason := "quota_exhausted"
		s.mockCommands.EXPECT().VerifyCode(gomock.Any(), s.userID, codeView.Code).
			Return(&commands.VerifyCodeResult{Code: codeView, Eligible: false, IneligibleReason: &reason}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.VerifyCodeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Eligible)
		s.Require().NotNil(response.IneligibleReason)
		s.Equal(reason, *response.IneligibleReason)
	})

	s.Run("error: maps redemption errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "code not found",
				commandsError:  commands.ErrCodeNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Verification code not found",
			},
			{
				name:           "code expired",
				commandsError:  commands.ErrCodeExpired,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Verification code has expired",
			},
			{
				name:           "code already used",
				commandsError:  commands.ErrCodeAlreadyUsed,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Verification code has already been used",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().VerifyCode(gomock.Any(), s.userID, codeView.Code).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
