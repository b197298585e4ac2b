package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sangamconnect/sangam-backend/internal/domain"
	"github.com/sangamconnect/sangam-backend/internal/usecase/interest"
	"go.uber.org/zap"
)

type InterestHandler struct {
	interestUseCase *interest.InterestUseCase
	logger          *zap.Logger
}

func NewInterestHandler(interestUseCase *interest.InterestUseCase, logger *zap.Logger) *InterestHandler {
	return &InterestHandler{
		interestUseCase: interestUseCase,
		logger:          logger,
	}
}

type resolveInterestRequest struct {
	Status string `json:"status" binding:"required"`
}

// Express handles POST /interests
// @Summary Express interest
// @Description Express interest in another user
// @Tags interests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body interest.ExpressRequest true "Interest data"
// @Success 200 {object} domain.Interest
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /interests [post]
func (h *InterestHandler) Express(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req interest.ExpressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	created, err := h.interestUseCase.Express(c.Request.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCannotInterestSelf):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "cannot express interest in yourself",
			})
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "user not found",
			})
		case errors.Is(err, domain.ErrInterestAlreadyExists):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "interest already expressed",
			})
		default:
			h.logger.Error("failed to express interest", zap.Error(err))
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "failed to express interest",
			})
		}
		return
	}

	c.JSON(http.StatusOK, created)
}

// List handles GET /interests/:type
// @Summary List interests
// @Description List interests sent by or received by the authenticated user
// @Tags interests
// @Security BearerAuth
// @Produce json
// @Param type path string true "List type" Enums(sent, received)
// @Success 200 {array} domain.Interest
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /interests/{type} [get]
func (h *InterestHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	listType := c.Param("type")
	interests, err := h.interestUseCase.List(c.Request.Context(), userID, listType)
	if err != nil {
		if errors.Is(err, interest.ErrInvalidListType) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "type must be sent or received",
			})
			return
		}
		h.logger.Error("failed to list interests", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to fetch interests",
		})
		return
	}

	c.JSON(http.StatusOK, interests)
}

// Resolve handles PUT /interests/:id
// @Summary Resolve interest
// @Description Accept or decline a pending interest addressed to the authenticated user
// @Tags interests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Interest ID"
// @Param request body resolveInterestRequest true "New status"
// @Success 200 {object} domain.Interest
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /interests/{id} [put]
func (h *InterestHandler) Resolve(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req resolveInterestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	updated, err := h.interestUseCase.Resolve(c.Request.Context(), userID, c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInterestTransition):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "interest cannot be updated",
			})
		case errors.Is(err, domain.ErrInterestNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "interest not found",
			})
		default:
			h.logger.Error("failed to resolve interest", zap.Error(err))
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "failed to update interest",
			})
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}
