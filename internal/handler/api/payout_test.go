//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"washclub/internal/domain/user"
	"washclub/internal/handler/api"
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

type PayoutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPayoutCommands
	mockQueries  *queriesmock.MockPayoutQueries
	handler      *api.PayoutHandler
	actorID      uuid.UUID
	actorRole    user.Role
}

func (s *PayoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.actorID = uuid.New()
	s.actorRole = user.RolePartner

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPayoutCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPayoutQueries(s.mockCtrl)
	s.handler = api.NewPayoutHandler(s.mockCommands, s.mockQueries)

	authed := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.actorID)
			c.Set("user_role", s.actorRole)
		}
		c.Next()
	}
	s.router.GET("/payouts", authed, s.handler.ListPayouts)
	s.router.GET("/payouts/:id", authed, s.handler.GetPayout)
	s.router.POST("/payouts/:id/retry", authed, s.handler.RetryPayout)
}

func (s *PayoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPayoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(PayoutHandlerTestSuite))
}

func (s *PayoutHandlerTestSuite) TestListPayouts() {
	url := "/payouts"
	items := []*queries.PayoutListItem{
		builder.NewPayoutBuilder().WithStatus("paid").BuildListItem(),
		builder.NewPayoutBuilder().BuildListItem(),
	}

	s.Run("success: returns own payouts", func() {
		s.mockQueries.EXPECT().ListByPartner(gomock.Any(), s.actorID, 0).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.PayoutListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Payouts, 2)
	})

	s.Run("error: 400 on negative limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=-1", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid limit parameter")
	})
}

func (s *PayoutHandlerTestSuite) TestGetPayout() {
	view := builder.NewPayoutBuilder().WithPartner(s.actorID).BuildView()

	s.Run("success: partner reads own payout", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actorID, false, view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payouts/"+view.ID.String(), nil, "bearer-token")

		var response queries.PayoutView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
	})

	s.Run("success: admin bypasses ownership", func() {
		s.actorRole = user.RoleAdmin
		defer func() { s.actorRole = user.RolePartner }()

		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actorID, true, view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payouts/"+view.ID.String(), nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payouts/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid payout ID")
	})

	s.Run("error: 404 when payout is missing or foreign", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actorID, false, view.ID).
			Return(nil, queries.ErrPayoutViewNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payouts/"+view.ID.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Payout not found")
	})
}

func (s *PayoutHandlerTestSuite) TestRetryPayout() {
	payoutID := uuid.New()
	url := "/payouts/" + payoutID.String() + "/retry"

	s.Run("success: retried payout reports paid", func() {
		s.mockCommands.EXPECT().RetryPayout(gomock.Any(), payoutID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("paid", response["status"])
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "payout not found",
				commandsError:  commands.ErrPayoutNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Payout not found",
			},
			{
				name:           "not retryable",
				commandsError:  commands.ErrPayoutNotRetryable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Payout is not in a retryable state",
			},
			{
				name:           "no partner account",
				commandsError:  commands.ErrNoPartnerAccount,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Partner has no payout account configured",
			},
			{
				name:           "transfer failure",
				commandsError:  errors.New("gateway unreachable"),
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "Transfer failed",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().RetryPayout(gomock.Any(), payoutID).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
