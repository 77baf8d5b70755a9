//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"washclub/internal/handler/dto/request"
	"washclub/internal/handler/dto/response"
	"washclub/internal/pkg/cookie"
	"washclub/tests/common/authtest"
	"washclub/tests/common/dbtest"
	"washclub/tests/common/httptest"
	"washclub/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL   = "/api/auth/login"
	refreshURL = "/api/auth/refresh"
	meURL      = "/api/auth/me"
)

type AuthSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) TestLogin() {
	s.Run("valid credentials return tokens and user", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "customer@example.com", "customer")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "customer@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.LoginResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.NotEmpty(t, res.AccessToken)
		require.NotNil(t, res.User)
		require.Equal(t, "customer@example.com", res.User.Email)
		require.Equal(t, "customer", res.User.Role)

		require.NotNil(t, httptest.ExtractCookie(w, cookie.AccessTokenCookieName))
		require.NotNil(t, httptest.ExtractCookie(w, cookie.RefreshTokenCookieName))
	})

	s.Run("wrong password is rejected", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "customer2@example.com", "customer")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "customer2@example.com", Password: "wrongpassword"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("unknown user is rejected with the same status", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "nobody@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *AuthSuite) TestRefresh() {
	s.Run("refresh token from login can be exchanged", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "refresher@example.com", "customer")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "refresher@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, w.Code)

		refreshCookie := httptest.ExtractCookie(w, cookie.RefreshTokenCookieName)
		require.NotNil(t, refreshCookie)

		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: refreshCookie.Value}, "")
		require.Equal(t, http.StatusOK, w2.Code, w2.Body.String())

		var res response.RefreshResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w2.Body, &res))
		require.NotEmpty(t, res.AccessToken)
	})

	s.Run("garbage refresh token is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: "not-a-token"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *AuthSuite) TestMe() {
	s.Run("authenticated user sees own profile", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "me@example.com", "customer")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var profile map[string]any
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &profile))
		require.Equal(t, "me@example.com", profile["email"])
	})

	s.Run("request without token is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
