package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sangamconnect/sangam-backend/internal/domain"
	"github.com/sangamconnect/sangam-backend/internal/repository"
	"github.com/sangamconnect/sangam-backend/internal/usecase/profile"
	"go.uber.org/zap"
)

const searchLimit = 20

type ProfileHandler struct {
	profileUseCase *profile.ProfileUseCase
	logger         *zap.Logger
}

func NewProfileHandler(profileUseCase *profile.ProfileUseCase, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
		logger:         logger,
	}
}

// GetProfile handles GET /profile
// @Summary Get my profile
// @Description Get the authenticated user's account and profile
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.UserWithProfile
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := h.profileUseCase.GetWithUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "user not found",
			})
			return
		}
		h.logger.Error("failed to fetch profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to fetch profile",
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// CreateProfile handles POST /profile
// @Summary Create profile
// @Description Create the authenticated user's profile
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body profile.CreateProfileRequest true "Profile data"
// @Success 200 {object} domain.Profile
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile [post]
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req profile.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	created, err := h.profileUseCase.Create(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrProfileAlreadyExists) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "profile already exists",
			})
			return
		}
		h.logger.Error("profile creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "profile creation failed",
		})
		return
	}

	c.JSON(http.StatusOK, created)
}

// UpdateProfile handles PUT /profile
// @Summary Update profile
// @Description Partially update the authenticated user's profile
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body profile.UpdateProfileRequest true "Profile update data"
// @Success 200 {object} domain.Profile
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req profile.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	updated, err := h.profileUseCase.Update(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "profile not found",
			})
			return
		}
		h.logger.Error("profile update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "profile update failed",
		})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Search handles GET /search
// @Summary Search profiles
// @Description Search active profiles with optional filters
// @Tags search
// @Security BearerAuth
// @Produce json
// @Param min_age query int false "Minimum age"
// @Param max_age query int false "Maximum age"
// @Param religion query string false "Religion"
// @Param location query string false "Location substring"
// @Success 200 {array} domain.Profile
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /search [get]
func (h *ProfileHandler) Search(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var filters repository.SearchFilters
	if v := c.Query("min_age"); v != "" {
		if age, err := strconv.Atoi(v); err == nil {
			filters.MinAge = &age
		}
	}
	if v := c.Query("max_age"); v != "" {
		if age, err := strconv.Atoi(v); err == nil {
			filters.MaxAge = &age
		}
	}
	if v := c.Query("religion"); v != "" {
		filters.Religion = &v
	}
	if v := c.Query("location"); v != "" {
		filters.Location = &v
	}

	profiles, err := h.profileUseCase.Search(c.Request.Context(), userID, filters, searchLimit)
	if err != nil {
		h.logger.Error("search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "search failed",
		})
		return
	}

	c.JSON(http.StatusOK, profiles)
}
