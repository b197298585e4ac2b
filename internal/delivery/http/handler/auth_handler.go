package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangamconnect/sangam-backend/internal/domain"
	"github.com/sangamconnect/sangam-backend/internal/usecase/auth"
	"go.uber.org/zap"
)

const oauthStateCookie = "oauth_state"

type AuthHandler struct {
	authUseCase   *auth.AuthUseCase
	googleUseCase *auth.GoogleAuthUseCase
	logger        *zap.Logger
}

func NewAuthHandler(
	authUseCase *auth.AuthUseCase,
	googleUseCase *auth.GoogleAuthUseCase,
	logger *zap.Logger,
) *AuthHandler {
	return &AuthHandler{
		authUseCase:   authUseCase,
		googleUseCase: googleUseCase,
		logger:        logger,
	}
}

// Register handles POST /auth/register
// @Summary Register
// @Description Create an account and issue a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body auth.RegisterRequest true "Registration data"
// @Success 200 {object} auth.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	result, err := h.authUseCase.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "user already exists",
			})
			return
		}
		h.logger.Error("registration failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "registration failed",
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Login handles POST /auth/login
// @Summary Login
// @Description Verify credentials and issue a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body auth.LoginRequest true "Credentials"
// @Success 200 {object} auth.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	result, err := h.authUseCase.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{
				Error: "invalid credentials",
			})
			return
		}
		h.logger.Error("login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "login failed",
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GoogleLogin handles GET /auth/google
// @Summary Google sign-in
// @Description Redirect to the Google consent page
// @Tags auth
// @Success 307
// @Failure 503 {object} ErrorResponse
// @Router /auth/google [get]
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	if !h.googleUseCase.Enabled() {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error: "google sign-in is not configured",
		})
		return
	}

	state := uuid.NewString()
	c.SetCookie(oauthStateCookie, state, 300, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, h.googleUseCase.AuthURL(state))
}

// GoogleCallback handles GET /auth/google/callback
// @Summary Google sign-in callback
// @Description Exchange the authorization code and issue a bearer token
// @Tags auth
// @Produce json
// @Param code query string true "Authorization code"
// @Success 200 {object} auth.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/google/callback [get]
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	state, err := c.Cookie(oauthStateCookie)
	if err != nil || state == "" || state != c.Query("state") {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid oauth state",
		})
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "authorization code required",
		})
		return
	}

	result, err := h.googleUseCase.HandleCallback(c.Request.Context(), code)
	if err != nil {
		h.logger.Warn("google sign-in failed", zap.Error(err))
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "google sign-in failed",
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
