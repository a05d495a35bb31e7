//go:build e2e

package auth_test

import (
	"net/http"
	"sync"
	"testing"

	"villanest/internal/domain/user"
	"villanest/internal/handler/dto/request"
	"villanest/internal/handler/dto/response"
	"villanest/tests/common/authtest"
	"villanest/tests/common/dbtest"
	"villanest/tests/common/httptest"
	"villanest/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	logoutURL   = "/api/auth/logout"
	refreshURL  = "/api/auth/refresh"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "guest@example.com", string(user.RoleUser))
	dbtest.CreateTestUser(s.T(), s.DB, "admin@example.com", string(user.RoleAdmin))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleUser))

	_, err := s.DB.Exec(s.T().Context(), "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestRegister() {
	s.Run("new account is signed in", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, request.RegisterRequest{
			Email:       "new.guest@example.com",
			Password:    "longenough1",
			DisplayName: "New Guest",
		}, "")

		var resp response.LoginResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.NotEmpty(resp.AccessToken)
		s.Require().NotNil(resp.User)
		s.Equal("new.guest@example.com", resp.User.Email)
		s.Equal(string(user.RoleUser), resp.User.Role)
		s.NotNil(httptest.ExtractCookie(w, "access_token"))
		s.NotNil(httptest.ExtractCookie(w, "refresh_token"))
	})

	s.Run("duplicate email is rejected case-insensitively", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, request.RegisterRequest{
			Email:       "Guest@Example.com",
			Password:    "longenough1",
			DisplayName: "Copycat",
		}, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "email already registered")
	})

	s.Run("short password fails validation", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, request.RegisterRequest{
			Email:       "short@example.com",
			Password:    "short",
			DisplayName: "Short",
		}, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request")
	})
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{name: "valid credentials", email: "guest@example.com", password: dbtest.TestPassword, expectedStatus: http.StatusOK},
		{name: "unknown user", email: "nobody@example.com", password: dbtest.TestPassword, expectedStatus: http.StatusUnauthorized},
		{name: "wrong password", email: "guest@example.com", password: "wrongpassword", expectedStatus: http.StatusUnauthorized},
		{name: "inactive user", email: "inactive@example.com", password: dbtest.TestPassword, expectedStatus: http.StatusForbidden},
		{name: "malformed email", email: "not-an-email", password: dbtest.TestPassword, expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")

			if tt.expectedStatus != http.StatusOK {
				httptest.AssertErrorResponse(s.T(), w, tt.expectedStatus, "")
				s.Nil(httptest.ExtractCookie(w, "access_token"))
				return
			}

			var resp response.LoginResponse
			httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
			s.NotEmpty(resp.AccessToken)
			s.Equal(tt.email, resp.User.Email)

			access := httptest.ExtractCookie(w, "access_token")
			s.Require().NotNil(access)
			s.True(access.HttpOnly)
			s.Equal(resp.AccessToken, access.Value)
		})
	}
}

func (s *authSuite) TestRefresh() {
	s.Run("refresh cookie rotates the session", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "guest@example.com", Password: dbtest.TestPassword}, "")
		s.Require().Equal(http.StatusOK, w.Code)

		refresh := httptest.ExtractCookie(w, "refresh_token")
		s.Require().NotNil(refresh)

		w = httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPost, refreshURL, nil, []*http.Cookie{refresh}, "")

		var resp response.LoginResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.NotEmpty(resp.AccessToken)
		s.NotNil(httptest.ExtractCookie(w, "access_token"))
	})

	s.Run("refresh token in the body is accepted", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "guest@example.com", Password: dbtest.TestPassword}, "")
		s.Require().Equal(http.StatusOK, w.Code)
		refresh := httptest.ExtractCookie(w, "refresh_token")
		s.Require().NotNil(refresh)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: refresh.Value}, "")
		s.Equal(http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("missing token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Refresh token required")
	})

	s.Run("garbage token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: "not.a.token"}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired refresh token")
	})
}

func (s *authSuite) TestLogout() {
	s.Run("clears the session cookies", func() {
		token := authtest.LoginUser(s.T(), s.Router, "guest@example.com", dbtest.TestPassword)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, token)
		s.Require().Equal(http.StatusNoContent, w.Code, w.Body.String())

		access := httptest.ExtractCookie(w, "access_token")
		s.Require().NotNil(access)
		s.Empty(access.Value)
		s.Less(access.MaxAge, 0)
	})

	s.Run("requires authentication", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestMe() {
	s.Run("returns the caller via bearer token", func() {
		token := authtest.LoginUser(s.T(), s.Router, "admin@example.com", dbtest.TestPassword)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)

		var resp response.UserResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("admin@example.com", resp.Email)
		s.Equal(string(user.RoleAdmin), resp.Role)
		s.True(resp.IsActive)
		s.NotNil(resp.LastLogin, "login should stamp last_login")
	})

	s.Run("returns the caller via cookie", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "guest@example.com", Password: dbtest.TestPassword}, "")
		s.Require().Equal(http.StatusOK, w.Code)

		w = httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodGet, meURL, nil, httptest.ExtractCookies(w), "")

		var resp response.UserResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("guest@example.com", resp.Email)
	})

	s.Run("token for a deleted user", func() {
		token := s.jwt.GenerateToken(s.T(), uuid.New(), user.RoleUser)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		s.Equal(http.StatusNotFound, w.Code, w.Body.String())
	})
}

func (s *authSuite) TestTokenExpiry() {
	s.Run("expired access token is rejected", func() {
		var userID uuid.UUID
		err := s.DB.QueryRow(s.T().Context(), "SELECT id FROM users WHERE email = 'guest@example.com'").Scan(&userID)
		s.Require().NoError(err)

		token := s.jwt.CreateExpiredToken(s.T(), userID, user.RoleUser)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestAdminRoutesRequireAdminRole() {
	s.Run("guest is forbidden", func() {
		token := authtest.LoginUser(s.T(), s.Router, "guest@example.com", dbtest.TestPassword)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/admin/analytics", nil, token)
		s.Equal(http.StatusForbidden, w.Code)
	})

	s.Run("admin is allowed", func() {
		token := authtest.LoginUser(s.T(), s.Router, "admin@example.com", dbtest.TestPassword)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/admin/analytics", nil, token)
		s.Equal(http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("anonymous is unauthorized", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/admin/analytics", nil, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestConcurrentLogin() {
	s.Run("parallel logins all succeed", func() {
		const workers = 5
		var wg sync.WaitGroup
		codes := make([]int, workers)

		for i := range workers {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
					request.LoginRequest{Email: "guest@example.com", Password: dbtest.TestPassword}, "")
				codes[i] = w.Code
			}(i)
		}
		wg.Wait()

		for _, code := range codes {
			assert.Equal(s.T(), http.StatusOK, code)
		}
	})
}
