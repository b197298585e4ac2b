package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sangamconnect/sangam-backend/internal/domain"
	"github.com/sangamconnect/sangam-backend/internal/usecase/profile"
	"github.com/sangamconnect/sangam-backend/internal/usecase/recommend"
	"go.uber.org/zap"
)

type AIHandler struct {
	profileUseCase   *profile.ProfileUseCase
	recommendUseCase *recommend.RecommendUseCase
	logger           *zap.Logger
}

func NewAIHandler(
	profileUseCase *profile.ProfileUseCase,
	recommendUseCase *recommend.RecommendUseCase,
	logger *zap.Logger,
) *AIHandler {
	return &AIHandler{
		profileUseCase:   profileUseCase,
		recommendUseCase: recommendUseCase,
		logger:           logger,
	}
}

type compatibilityRequest struct {
	TargetUserID string `json:"targetUserId" binding:"required"`
}

type suggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

// ProfileSuggestions handles GET /ai/profile-suggestions
// @Summary Profile improvement suggestions
// @Description Get AI-generated suggestions for improving the authenticated user's profile
// @Tags ai
// @Security BearerAuth
// @Produce json
// @Success 200 {object} suggestionsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /ai/profile-suggestions [get]
func (h *AIHandler) ProfileSuggestions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	suggestions, err := h.profileUseCase.Suggestions(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "profile not found",
			})
			return
		}
		h.logger.Error("failed to generate suggestions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to generate suggestions",
		})
		return
	}

	c.JSON(http.StatusOK, suggestionsResponse{Suggestions: suggestions})
}

// Compatibility handles POST /ai/compatibility
// @Summary Compatibility analysis
// @Description Run an on-demand compatibility analysis between the authenticated user and another user
// @Tags ai
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body compatibilityRequest true "Target user"
// @Success 200 {object} domain.CompatibilityAnalysis
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /ai/compatibility [post]
func (h *AIHandler) Compatibility(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req compatibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	analysis, err := h.recommendUseCase.Compatibility(c.Request.Context(), userID, req.TargetUserID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "profile not found",
			})
			return
		}
		h.logger.Error("compatibility analysis failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "compatibility analysis failed",
		})
		return
	}

	c.JSON(http.StatusOK, analysis)
}
