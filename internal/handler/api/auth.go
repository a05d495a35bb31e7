package api

import (
	"net/http"

	reqdto "villanest/internal/handler/dto/request"
	resdto "villanest/internal/handler/dto/response"
	"villanest/internal/handler/httperr"
	"villanest/internal/pkg/cookie"
	"villanest/internal/pkg/errs"
	"villanest/internal/pkg/jwt"
	"villanest/internal/usecase/commands"
	"villanest/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errMissingRefreshToken = errs.New("refresh token required")

type AuthHandler struct {
	cmds commands.AuthCommands
	q    queries.UserQueries
	jar  *cookie.Jar
	jwt  *jwt.Service
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.UserQueries, jar *cookie.Jar, jwtService *jwt.Service) *AuthHandler {
	return &AuthHandler{
		cmds: cmds,
		q:    q,
		jar:  jar,
		jwt:  jwtService,
	}
}

// @Summary Register
// @Description Create a guest account and sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	result, err := h.cmds.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		abortWithUseCaseError(c, err, "register")
		return
	}
	h.respondWithSession(c, http.StatusCreated, result)
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errs.IsAny(err, commands.ErrUserNotFound, commands.ErrInvalidCredentials) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
			return
		}
		abortWithUseCaseError(c, err, "login")
		return
	}
	h.respondWithSession(c, http.StatusOK, result)
}

// @Summary Refresh tokens
// @Description Rotate the token pair using the refresh cookie or body token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RefreshRequest false "Refresh request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req reqdto.RefreshRequest
	// An empty body is fine; the cookie is the primary source.
	_ = c.ShouldBindJSON(&req)

	token := cookie.RefreshToken(c)
	if token == "" {
		token = req.RefreshToken
	}
	if token == "" {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingRefreshToken, "Refresh token required", nil)
		return
	}

	result, err := h.cmds.RefreshToken(c.Request.Context(), token)
	if err != nil {
		if statusOf(err) == http.StatusInternalServerError {
			abortWithUseCaseError(c, err, "refresh")
			return
		}
		h.jar.Clear(c)
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired refresh token", nil)
		return
	}
	h.respondWithSession(c, http.StatusOK, result)
}

// @Summary User logout
// @Description Clear the session cookies
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// Tokens are stateless; logging out only drops the cookies.
	h.jar.Clear(c)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	user, err := h.q.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		abortWithUseCaseError(c, err, "get current user")
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(user))
}

func (h *AuthHandler) respondWithSession(c *gin.Context, status int, result *commands.AuthResult) {
	user, err := h.q.GetCurrentUser(c.Request.Context(), result.UserID)
	if err != nil {
		abortWithUseCaseError(c, err, "load session user")
		return
	}

	h.jar.SetTokens(c,
		result.TokenPair.AccessToken, result.TokenPair.RefreshToken,
		h.jwt.AccessTokenDuration(), h.jwt.RefreshTokenDuration())

	c.JSON(status, resdto.LoginResponse{
		AccessToken: result.TokenPair.AccessToken,
		User:        resdto.FromUserView(user),
	})
}
