//go:build e2e

package redemption_test

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"washclub/internal/handler/dto/request"
	"washclub/internal/handler/dto/response"
	"washclub/tests/common/authtest"
	"washclub/tests/common/dbtest"
	"washclub/tests/common/httptest"
	"washclub/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	codesURL   = "/api/codes"
	payoutsURL = "/api/payouts"
)

type RedemptionSuite struct {
	e2e.SharedSuite
}

func TestRedemptionSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RedemptionSuite))
}

func (s *RedemptionSuite) issueCode(t *testing.T, token, washType string) *response.IssueCodeResponse {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, codesURL,
		request.IssueCodeRequest{WashType: washType}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var res response.IssueCodeResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	require.NotNil(t, res.Code)
	require.NotEmpty(t, res.Code.Code)
	require.NotEmpty(t, res.QRPNG)
	return &res
}

func (s *RedemptionSuite) TestSubscriptionRedemptionFlow() {
	s.Run("issue, verify, start and complete against a subscription", func() {
		t := s.T()
		now := time.Now()

		customerID := dbtest.CreateTestUser(t, s.DB, "driver@example.com", "customer")
		dbtest.CreateTestPartner(t, s.DB, "station@example.com", "acct_station_1")

		quota := int32(2)
		planID := dbtest.CreateTestPlan(t, s.DB, "Standard", &quota, nil)
		dbtest.CreateTestSubscription(t, s.DB, customerID, planID, "active",
			now.AddDate(0, 0, -5), now.AddDate(0, 0, 25))

		customerToken := authtest.LoginUser(t, s.Router, "driver@example.com", "password123")
		partnerToken := authtest.LoginUser(t, s.Router, "station@example.com", "password123")

		issued := s.issueCode(t, customerToken, "in_and_out")
		codeValue := issued.Code.Code

		// Partner verifies without consuming
		vw := httptest.PerformRequest(t, s.Router, http.MethodGet, codesURL+"/"+codeValue, nil, partnerToken)
		require.Equal(t, http.StatusOK, vw.Code, vw.Body.String())

		var verified response.VerifyCodeResponse
		require.NoError(t, httptest.DecodeResponseBody(t, vw.Body, &verified))
		require.True(t, verified.Eligible)
		require.Equal(t, "pending", verified.Code.Status)

		// Start binds the code to the partner
		sw := httptest.PerformRequest(t, s.Router, http.MethodPost, codesURL+"/"+codeValue+"/start", nil, partnerToken)
		require.Equal(t, http.StatusOK, sw.Code, sw.Body.String())

		var started map[string]any
		require.NoError(t, httptest.DecodeResponseBody(t, sw.Body, &started))
		require.Equal(t, "in_progress", started["status"])

		// Complete consumes quota and records the payout
		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, codesURL+"/"+codeValue+"/complete", nil, partnerToken)
		require.Equal(t, http.StatusOK, cw.Code, cw.Body.String())

		var completed response.CompleteRedemptionResponse
		require.NoError(t, httptest.DecodeResponseBody(t, cw.Body, &completed))
		require.Equal(t, "completed", completed.Code.Status)
		require.NotEmpty(t, completed.VerificationID)
		require.NotEmpty(t, completed.PayoutID)
		require.Equal(t, int64(700), completed.AmountCents)
		require.Equal(t, "EUR", completed.Currency)

		// Second completion attempt must lose
		cw2 := httptest.PerformRequest(t, s.Router, http.MethodPost, codesURL+"/"+codeValue+"/complete", nil, partnerToken)
		require.Equal(t, http.StatusConflict, cw2.Code)

		// The payout shows up in the partner's list
		pw := httptest.PerformRequest(t, s.Router, http.MethodGet, payoutsURL, nil, partnerToken)
		require.Equal(t, http.StatusOK, pw.Code, pw.Body.String())

		var payouts response.PayoutListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, pw.Body, &payouts))
		require.Len(t, payouts.Payouts, 1)
		require.Equal(t, int64(700), payouts.Payouts[0].AmountCents)
		require.Equal(t, "pending", payouts.Payouts[0].Status)
	})

	s.Run("quota exhaustion blocks further issuance", func() {
		t := s.T()
		now := time.Now()

		customerID := dbtest.CreateTestUser(t, s.DB, "driver2@example.com", "customer")
		dbtest.CreateTestPartner(t, s.DB, "station2@example.com", "acct_station_2")

		quota := int32(1)
		planID := dbtest.CreateTestPlan(t, s.DB, "Mini", &quota, nil)
		dbtest.CreateTestSubscription(t, s.DB, customerID, planID, "active",
			now.AddDate(0, 0, -5), now.AddDate(0, 0, 25))

		customerToken := authtest.LoginUser(t, s.Router, "driver2@example.com", "password123")
		partnerToken := authtest.LoginUser(t, s.Router, "station2@example.com", "password123")

		issued := s.issueCode(t, customerToken, "in_and_out")

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			codesURL+"/"+issued.Code.Code+"/complete", nil, partnerToken)
		require.Equal(t, http.StatusOK, cw.Code, cw.Body.String())

		// The single quota slot is consumed
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, codesURL,
			request.IssueCodeRequest{WashType: "in_and_out"}, customerToken)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	s.Run("plan without coverage for the wash type rejects issuance", func() {
		t := s.T()
		now := time.Now()

		customerID := dbtest.CreateTestUser(t, s.DB, "driver3@example.com", "customer")

		quota := int32(4)
		planID := dbtest.CreateTestPlan(t, s.DB, "OutsideOnly", nil, &quota)
		dbtest.CreateTestSubscription(t, s.DB, customerID, planID, "active",
			now.AddDate(0, 0, -5), now.AddDate(0, 0, 25))

		customerToken := authtest.LoginUser(t, s.Router, "driver3@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, codesURL,
			request.IssueCodeRequest{WashType: "in_and_out"}, customerToken)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})
}

func (s *RedemptionSuite) TestPurchaseRedemptionFlow() {
	s.Run("one-time purchase covers a single wash", func() {
		t := s.T()

		customerID := dbtest.CreateTestUser(t, s.DB, "buyer@example.com", "customer")
		dbtest.CreateTestPartner(t, s.DB, "station3@example.com", "acct_station_3")

		serviceID := dbtest.CreateTestService(t, s.DB, "Single Outside Wash", "outside_only")
		dbtest.CreateTestPurchase(t, s.DB, customerID, serviceID, "completed", false)

		customerToken := authtest.LoginUser(t, s.Router, "buyer@example.com", "password123")
		partnerToken := authtest.LoginUser(t, s.Router, "station3@example.com", "password123")

		issued := s.issueCode(t, customerToken, "outside_only")
		require.NotNil(t, issued.Code.PurchaseID)
		require.Nil(t, issued.Code.SubscriptionID)

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			codesURL+"/"+issued.Code.Code+"/complete", nil, partnerToken)
		require.Equal(t, http.StatusOK, cw.Code, cw.Body.String())

		// The purchase is spent; issuing again fails
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, codesURL,
			request.IssueCodeRequest{WashType: "outside_only"}, customerToken)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	s.Run("completion re-checks the purchase inside the transaction", func() {
		t := s.T()

		customerID := dbtest.CreateTestUser(t, s.DB, "buyer3@example.com", "customer")
		dbtest.CreateTestPartner(t, s.DB, "station7@example.com", "acct_station_7")

		serviceID := dbtest.CreateTestService(t, s.DB, "Exterior Detail", "outside_only")
		purchaseID := dbtest.CreateTestPurchase(t, s.DB, customerID, serviceID, "completed", false)

		customerToken := authtest.LoginUser(t, s.Router, "buyer3@example.com", "password123")
		partnerToken := authtest.LoginUser(t, s.Router, "station7@example.com", "password123")

		issued := s.issueCode(t, customerToken, "outside_only")

		// The purchase is spent out of band between issue and complete.
		dbtest.MarkPurchaseUsed(t, s.DB, purchaseID)

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			codesURL+"/"+issued.Code.Code+"/complete", nil, partnerToken)
		require.Equal(t, http.StatusBadRequest, cw.Code, cw.Body.String())

		// The failed completion is counted under its own outcome.
		mw := httptest.PerformRequest(t, s.Router, http.MethodGet, "/metrics", nil, "")
		require.Equal(t, http.StatusOK, mw.Code)
		require.Contains(t, mw.Body.String(), `washclub_redemptions_total{outcome="quota_exhausted"}`)
	})

	s.Run("pending purchase grants no entitlement", func() {
		t := s.T()

		customerID := dbtest.CreateTestUser(t, s.DB, "buyer2@example.com", "customer")
		serviceID := dbtest.CreateTestService(t, s.DB, "Unpaid Wash", "outside_only")
		dbtest.CreateTestPurchase(t, s.DB, customerID, serviceID, "pending", false)

		customerToken := authtest.LoginUser(t, s.Router, "buyer2@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, codesURL,
			request.IssueCodeRequest{WashType: "outside_only"}, customerToken)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})
}

func (s *RedemptionSuite) TestOwnershipAndRoles() {
	s.Run("a second partner cannot complete a started code", func() {
		t := s.T()
		now := time.Now()

		customerID := dbtest.CreateTestUser(t, s.DB, "driver4@example.com", "customer")
		dbtest.CreateTestPartner(t, s.DB, "station4@example.com", "acct_station_4")
		dbtest.CreateTestPartner(t, s.DB, "station5@example.com", "acct_station_5")

		quota := int32(2)
		planID := dbtest.CreateTestPlan(t, s.DB, "Standard", &quota, nil)
		dbtest.CreateTestSubscription(t, s.DB, customerID, planID, "active",
			now.AddDate(0, 0, -5), now.AddDate(0, 0, 25))

		customerToken := authtest.LoginUser(t, s.Router, "driver4@example.com", "password123")
		firstPartner := authtest.LoginUser(t, s.Router, "station4@example.com", "password123")
		secondPartner := authtest.LoginUser(t, s.Router, "station5@example.com", "password123")

		issued := s.issueCode(t, customerToken, "in_and_out")
		codeURL := codesURL + "/" + issued.Code.Code

		sw := httptest.PerformRequest(t, s.Router, http.MethodPost, codeURL+"/start", nil, firstPartner)
		require.Equal(t, http.StatusOK, sw.Code, sw.Body.String())

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, codeURL+"/complete", nil, secondPartner)
		require.Equal(t, http.StatusForbidden, cw.Code)

		// The starter can still finish
		cw2 := httptest.PerformRequest(t, s.Router, http.MethodPost, codeURL+"/complete", nil, firstPartner)
		require.Equal(t, http.StatusOK, cw2.Code, cw2.Body.String())
	})

	s.Run("customers cannot call partner endpoints", func() {
		t := s.T()
		now := time.Now()

		customerID := dbtest.CreateTestUser(t, s.DB, "driver5@example.com", "customer")

		quota := int32(2)
		planID := dbtest.CreateTestPlan(t, s.DB, "Standard", &quota, nil)
		dbtest.CreateTestSubscription(t, s.DB, customerID, planID, "active",
			now.AddDate(0, 0, -5), now.AddDate(0, 0, 25))

		customerToken := authtest.LoginUser(t, s.Router, "driver5@example.com", "password123")
		issued := s.issueCode(t, customerToken, "in_and_out")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			codesURL+"/"+issued.Code.Code+"/start", nil, customerToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("partners cannot issue codes", func() {
		t := s.T()

		dbtest.CreateTestPartner(t, s.DB, "station6@example.com", "acct_station_6")
		partnerToken := authtest.LoginUser(t, s.Router, "station6@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, codesURL,
			request.IssueCodeRequest{WashType: "in_and_out"}, partnerToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

func (s *RedemptionSuite) TestConcurrentCompletion() {
	s.Run("concurrent completion attempts settle to one winner", func() {
		t := s.T()
		now := time.Now()

		customerID := dbtest.CreateTestUser(t, s.DB, "driver6@example.com", "customer")
		dbtest.CreateTestPartner(t, s.DB, "station8@example.com", "acct_station_8")

		quota := int32(2)
		planID := dbtest.CreateTestPlan(t, s.DB, "Standard", &quota, nil)
		dbtest.CreateTestSubscription(t, s.DB, customerID, planID, "active",
			now.AddDate(0, 0, -5), now.AddDate(0, 0, 25))

		customerToken := authtest.LoginUser(t, s.Router, "driver6@example.com", "password123")
		partnerToken := authtest.LoginUser(t, s.Router, "station8@example.com", "password123")

		issued := s.issueCode(t, customerToken, "in_and_out")
		completeURL := codesURL + "/" + issued.Code.Code + "/complete"

		statuses := make(chan int, 2)
		var wg sync.WaitGroup
		for range 2 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, completeURL, nil, partnerToken)
				statuses <- w.Code
			}()
		}
		wg.Wait()
		close(statuses)

		counts := make(map[int]int)
		for status := range statuses {
			counts[status]++
		}
		require.Equal(t, 1, counts[http.StatusOK])
		require.Equal(t, 1, counts[http.StatusConflict])

		// Exactly one payout was recorded for the winning completion.
		pw := httptest.PerformRequest(t, s.Router, http.MethodGet, payoutsURL, nil, partnerToken)
		require.Equal(t, http.StatusOK, pw.Code, pw.Body.String())

		var payouts response.PayoutListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, pw.Body, &payouts))
		require.Len(t, payouts.Payouts, 1)
	})
}

func (s *RedemptionSuite) TestPayoutRetry() {
	s.Run("admin retry pays a pending payout and a paid one is final", func() {
		t := s.T()
		now := time.Now()

		customerID := dbtest.CreateTestUser(t, s.DB, "driver7@example.com", "customer")
		dbtest.CreateTestPartner(t, s.DB, "station9@example.com", "acct_station_9")
		dbtest.CreateTestUser(t, s.DB, "ops@example.com", "admin")

		quota := int32(2)
		planID := dbtest.CreateTestPlan(t, s.DB, "Standard", &quota, nil)
		dbtest.CreateTestSubscription(t, s.DB, customerID, planID, "active",
			now.AddDate(0, 0, -5), now.AddDate(0, 0, 25))

		customerToken := authtest.LoginUser(t, s.Router, "driver7@example.com", "password123")
		partnerToken := authtest.LoginUser(t, s.Router, "station9@example.com", "password123")
		adminToken := authtest.LoginUser(t, s.Router, "ops@example.com", "password123")

		issued := s.issueCode(t, customerToken, "in_and_out")

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			codesURL+"/"+issued.Code.Code+"/complete", nil, partnerToken)
		require.Equal(t, http.StatusOK, cw.Code, cw.Body.String())

		var completed response.CompleteRedemptionResponse
		require.NoError(t, httptest.DecodeResponseBody(t, cw.Body, &completed))

		retryURL := payoutsURL + "/" + completed.PayoutID + "/retry"
		rw := httptest.PerformRequest(t, s.Router, http.MethodPost, retryURL, nil, adminToken)
		require.Equal(t, http.StatusOK, rw.Code, rw.Body.String())

		var retried map[string]any
		require.NoError(t, httptest.DecodeResponseBody(t, rw.Body, &retried))
		require.Equal(t, "paid", retried["status"])

		// Partner sees the paid payout with the transfer reference.
		gw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			payoutsURL+"/"+completed.PayoutID, nil, partnerToken)
		require.Equal(t, http.StatusOK, gw.Code, gw.Body.String())

		var view map[string]any
		require.NoError(t, httptest.DecodeResponseBody(t, gw.Body, &view))
		require.Equal(t, "paid", view["status"])
		require.NotEmpty(t, view["transfer_ref"])

		// A paid payout cannot be claimed again.
		rw2 := httptest.PerformRequest(t, s.Router, http.MethodPost, retryURL, nil, adminToken)
		require.Equal(t, http.StatusConflict, rw2.Code, rw2.Body.String())
	})
}

func (s *RedemptionSuite) TestCodeListing() {
	s.Run("customer sees own codes newest first", func() {
		t := s.T()
		now := time.Now()

		customerID := dbtest.CreateTestUser(t, s.DB, "lister@example.com", "customer")

		quota := int32(5)
		planID := dbtest.CreateTestPlan(t, s.DB, "Standard", &quota, &quota)
		dbtest.CreateTestSubscription(t, s.DB, customerID, planID, "active",
			now.AddDate(0, 0, -5), now.AddDate(0, 0, 25))

		customerToken := authtest.LoginUser(t, s.Router, "lister@example.com", "password123")

		first := s.issueCode(t, customerToken, "in_and_out")
		second := s.issueCode(t, customerToken, "outside_only")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, codesURL, nil, customerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.CodeListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Len(t, res.Codes, 2)

		// Issuing the second code expired the first still-pending one
		// bound to the same subscription.
		statusByCode := make(map[string]string, len(res.Codes))
		for _, item := range res.Codes {
			statusByCode[item.Code] = item.Status
		}
		require.Equal(t, "expired", statusByCode[first.Code.Code])
		require.Equal(t, "pending", statusByCode[second.Code.Code])
	})
}
