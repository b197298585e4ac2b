package http

import (
	"github.com/gin-gonic/gin"
	"github.com/sangamconnect/sangam-backend/internal/delivery/http/handler"
	"github.com/sangamconnect/sangam-backend/internal/delivery/http/middleware"
)

type Router struct {
	authHandler     *handler.AuthHandler
	profileHandler  *handler.ProfileHandler
	matchHandler    *handler.MatchHandler
	interestHandler *handler.InterestHandler
	aiHandler       *handler.AIHandler
	authMiddleware  *middleware.AuthMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	matchHandler *handler.MatchHandler,
	interestHandler *handler.InterestHandler,
	aiHandler *handler.AIHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		authHandler:     authHandler,
		profileHandler:  profileHandler,
		matchHandler:    matchHandler,
		interestHandler: interestHandler,
		aiHandler:       aiHandler,
		authMiddleware:  authMiddleware,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.Default()

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	api := router.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
			auth.GET("/google", r.authHandler.GoogleLogin)
			auth.GET("/google/callback", r.authHandler.GoogleCallback)
		}

		// Protected routes
		protected := api.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			protected.GET("/profile", r.profileHandler.GetProfile)
			protected.POST("/profile", r.profileHandler.CreateProfile)
			protected.PUT("/profile", r.profileHandler.UpdateProfile)
			protected.GET("/search", r.profileHandler.Search)

			protected.GET("/matches", r.matchHandler.GetMatches)
			protected.GET("/recommendations", r.matchHandler.GetRecommendations)

			interests := protected.Group("/interests")
			{
				interests.POST("", r.interestHandler.Express)
				interests.GET("/:type", r.interestHandler.List)
				interests.PUT("/:id", r.interestHandler.Resolve)
			}

			ai := protected.Group("/ai")
			{
				ai.GET("/profile-suggestions", r.aiHandler.ProfileSuggestions)
				ai.POST("/compatibility", r.aiHandler.Compatibility)
			}
		}
	}

	return router
}
