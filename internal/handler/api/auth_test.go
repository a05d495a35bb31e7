//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"villanest/internal/domain/user"
	"villanest/internal/handler/api"
	resdto "villanest/internal/handler/dto/response"
	"villanest/internal/pkg/config"
	"villanest/internal/pkg/cookie"
	"villanest/internal/pkg/jwt"
	"villanest/internal/usecase/commands"
	"villanest/internal/usecase/queries"
	"villanest/tests/common/builder"
	"villanest/tests/common/httptest"
	"villanest/tests/common/testutil"
	commandsmock "villanest/tests/mock/commands"
	queriesmock "villanest/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	userID       uuid.UUID
	role         user.Role
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.userID = uuid.New()
	s.role = user.RoleUser

	jwtService := jwt.NewService("test-secret", 15*time.Minute, 24*time.Hour)
	handler := api.NewAuthHandler(s.mockCommands, s.mockQueries, cookie.NewJar(config.NewTestConfig()), jwtService)

	s.router.POST("/auth/register", handler.Register)
	s.router.POST("/auth/login", handler.Login)
	s.router.POST("/auth/refresh", handler.Refresh)
	s.router.POST("/auth/logout", fakeAuth(&s.userID, &s.role), handler.Logout)
	s.router.GET("/auth/me", fakeAuth(&s.userID, &s.role), handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) authResult() *commands.AuthResult {
	return &commands.AuthResult{
		UserID:    s.userID,
		Role:      user.RoleUser,
		TokenPair: &commands.TokenPair{AccessToken: "test-jwt-token", RefreshToken: "test-refresh-token"},
	}
}

func setCookies(rec interface{ Header() http.Header }) string {
	return strings.Join(rec.Header().Values("Set-Cookie"), "; ")
}

// ================================================================================
// TestLogin
// ================================================================================

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"

	reqBody := builder.NewAuthBuilder().BuildDTO()
	returnUser := builder.NewUserBuilder().WithID(s.userID).BuildView()

	s.Run("success: returns token and sets auth cookies", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody.Email, reqBody.Password).Return(s.authResult(), nil)
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.userID).Return(returnUser, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("test-jwt-token", body.AccessToken)
		s.Equal(returnUser.Email, body.User.Email)

		cookies := setCookies(rec)
		s.Contains(cookies, "access_token=test-jwt-token")
		s.Contains(cookies, "refresh_token=test-refresh-token")
		s.Contains(cookies, "HttpOnly")
	})

	validationCases := []testCase{
		{name: "missing email", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
		{name: "malformed email", mutate: testutil.Field("email", "not-an-email"), expectCode: http.StatusBadRequest},
		{name: "password shorter than 8", mutate: testutil.Field("password", "short"), expectCode: http.StatusBadRequest},
		{name: "missing password", mutate: testutil.Field("password", nil), expectCode: http.StatusBadRequest},
	}

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range validationCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "wrong password", commandsError: commands.ErrInvalidCredentials, expectedStatus: http.StatusUnauthorized, expectedMsg: "Invalid email or password"},
			{name: "unknown email", commandsError: commands.ErrUserNotFound, expectedStatus: http.StatusUnauthorized, expectedMsg: "Invalid email or password"},
			{name: "inactive account", commandsError: commands.ErrUserInactive, expectedStatus: http.StatusForbidden, expectedMsg: "user inactive"},
			{name: "internal server error", commandsError: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Login(gomock.Any(), reqBody.Email, reqBody.Password).Return(nil, tc.commandsError)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestRegister
// ================================================================================

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"
	reqBody := builder.NewAuthBuilder().BuildRegisterDTO()

	s.Run("success: returns 201 and signs the user in", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), reqBody.ToInput()).Return(s.authResult(), nil)
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.userID).
			Return(builder.NewUserBuilder().WithID(s.userID).WithEmail(reqBody.Email).BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(reqBody.Email, body.User.Email)
		s.Contains(setCookies(rec), "access_token=test-jwt-token")
	})

	s.Run("error: 409 when the email is taken", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, commands.ErrEmailTaken)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "email already registered")
	})

	s.Run("error: 400 when display_name is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			testutil.DtoMap(s.T(), reqBody, testutil.Field("display_name", nil)), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

// ================================================================================
// TestRefresh
// ================================================================================

func (s *AuthHandlerTestSuite) TestRefresh() {
	url := "/auth/refresh"
	returnUser := builder.NewUserBuilder().WithID(s.userID).BuildView()

	s.Run("success: rotates tokens from the refresh cookie", func() {
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "cookie-refresh").Return(s.authResult(), nil)
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.userID).Return(returnUser, nil)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, nil,
			[]*http.Cookie{{Name: cookie.RefreshTokenCookieName, Value: "cookie-refresh"}}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: falls back to the body token", func() {
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "body-refresh").Return(s.authResult(), nil)
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.userID).Return(returnUser, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]string{"refresh_token": "body-refresh"}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 401 without any token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Refresh token required")
	})

	s.Run("error: 401 and cookies cleared on an invalid token", func() {
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "stale").Return(nil, commands.ErrTokenValidation)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]string{"refresh_token": "stale"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired refresh token")
		s.Contains(setCookies(rec), "refresh_token=;")
	})
}

// ================================================================================
// TestLogout / TestMe
// ================================================================================

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: 204 and cookies cleared", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, bearerToken)
		s.Equal(http.StatusNoContent, rec.Code)
		s.Contains(setCookies(rec), "access_token=;")
	})

	s.Run("error: 401 when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("success: returns the current user", func() {
		view := builder.NewUserBuilder().WithID(s.userID).BuildView()
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.userID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, bearerToken)
		var body resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(s.userID.String(), body.ID)
	})

	s.Run("error: 404 when the account is gone", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.userID).Return(nil, queries.ErrUserNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, bearerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "user not found")
	})
}
