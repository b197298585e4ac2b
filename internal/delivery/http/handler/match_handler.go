package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sangamconnect/sangam-backend/internal/domain"
	"github.com/sangamconnect/sangam-backend/internal/usecase/recommend"
	"go.uber.org/zap"
)

type MatchHandler struct {
	recommendUseCase *recommend.RecommendUseCase
	logger           *zap.Logger
}

func NewMatchHandler(recommendUseCase *recommend.RecommendUseCase, logger *zap.Logger) *MatchHandler {
	return &MatchHandler{
		recommendUseCase: recommendUseCase,
		logger:           logger,
	}
}

// GetMatches handles GET /matches
// @Summary Get matches
// @Description Get the authenticated user's matches ordered by compatibility
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.MatchWithProfile
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /matches [get]
func (h *MatchHandler) GetMatches(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	matches, err := h.recommendUseCase.GetMatches(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("failed to fetch matches", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to fetch matches",
		})
		return
	}

	c.JSON(http.StatusOK, matches)
}

// GetRecommendations handles GET /recommendations
// @Summary Get recommendations
// @Description Get AI-scored profile recommendations for the authenticated user
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Success 200 {array} recommend.Recommendation
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /recommendations [get]
func (h *MatchHandler) GetRecommendations(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	recommendations, err := h.recommendUseCase.GetRecommendations(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "create a profile to get recommendations",
			})
			return
		}
		h.logger.Error("failed to build recommendations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to fetch recommendations",
		})
		return
	}

	c.JSON(http.StatusOK, recommendations)
}
