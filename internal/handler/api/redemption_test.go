//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"washclub/internal/domain/code"
	"washclub/internal/handler/api"
	resdto "washclub/internal/handler/dto/response"
	"washclub/internal/usecase/commands"
	"washclub/tests/common/builder"
	"washclub/tests/common/httptest"
	commandsmock "washclub/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RedemptionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRedemptionCommands
	handler      *api.RedemptionHandler
	partnerID    uuid.UUID
}

func (s *RedemptionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.partnerID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRedemptionCommands(s.mockCtrl)
	s.handler = api.NewRedemptionHandler(s.mockCommands)

	authed := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.partnerID)
		}
		c.Next()
	}
	s.router.POST("/codes/:code/start", authed, s.handler.StartRedemption)
	s.router.POST("/codes/:code/complete", authed, s.handler.CompleteRedemption)
}

func (s *RedemptionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRedemptionHandlerSuite(t *testing.T) {
	suite.Run(t, new(RedemptionHandlerTestSuite))
}

func (s *RedemptionHandlerTestSuite) TestStartRedemption() {
	codeView := builder.NewCodeBuilder().WithPartner(uuid.New()).BuildView()
	url := "/codes/" + codeView.Code + "/start"

	s.Run("success: returns the in-progress code", func() {
		s.mockCommands.EXPECT().StartRedemption(gomock.Any(), s.partnerID, codeView.Code).
			Return(codeView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(codeView.Code, response["code"])
	})

	s.Run("error: 409 when code was already used", func() {
		s.mockCommands.EXPECT().StartRedemption(gomock.Any(), s.partnerID, codeView.Code).
			Return(nil, commands.ErrCodeAlreadyUsed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Verification code has already been used")
	})

	s.Run("error: 404 for unknown code", func() {
		s.mockCommands.EXPECT().StartRedemption(gomock.Any(), s.partnerID, codeView.Code).
			Return(nil, commands.ErrCodeNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Verification code not found")
	})
}

func (s *RedemptionHandlerTestSuite) TestCompleteRedemption() {
	codeView := builder.NewCodeBuilder().WithStatus(code.StatusCompleted).BuildView()
	url := "/codes/" + codeView.Code + "/complete"

	s.Run("success: returns verification and payout details", func() {
		result := &commands.CompleteRedemptionResult{
			Code:           codeView,
			VerificationID: uuid.New(),
			PayoutID:       uuid.New(),
			AmountCents:    700,
			Currency:       "EUR",
		}
		s.mockCommands.EXPECT().CompleteRedemption(gomock.Any(), s.partnerID, codeView.Code).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.CompleteRedemptionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(result.VerificationID.String(), response.VerificationID)
		s.Equal(result.PayoutID.String(), response.PayoutID)
		s.Equal(int64(700), response.AmountCents)
		s.Equal("EUR", response.Currency)
	})

	s.Run("error: 403 when a different partner started the code", func() {
		s.mockCommands.EXPECT().CompleteRedemption(gomock.Any(), s.partnerID, codeView.Code).
			Return(nil, commands.ErrOwnershipMismatch).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Redemption was started by a different partner")
	})

	s.Run("error: 400 when entitlement ran out underneath the code", func() {
		s.mockCommands.EXPECT().CompleteRedemption(gomock.Any(), s.partnerID, codeView.Code).
			Return(nil, commands.ErrQuotaExhausted).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Wash quota for the current period is exhausted")
	})

	s.Run("error: 400 for expired code", func() {
		s.mockCommands.EXPECT().CompleteRedemption(gomock.Any(), s.partnerID, codeView.Code).
			Return(nil, commands.ErrCodeExpired).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Verification code has expired")
	})
}
