package container

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/sangamconnect/sangam-backend/internal/config"
	"github.com/sangamconnect/sangam-backend/internal/delivery/http"
	"github.com/sangamconnect/sangam-backend/internal/delivery/http/handler"
	"github.com/sangamconnect/sangam-backend/internal/delivery/http/middleware"
	"github.com/sangamconnect/sangam-backend/internal/infrastructure/database"
	"github.com/sangamconnect/sangam-backend/internal/infrastructure/gemini"
	"github.com/sangamconnect/sangam-backend/internal/infrastructure/server"
	"github.com/sangamconnect/sangam-backend/internal/repository/postgres"
	"github.com/sangamconnect/sangam-backend/internal/usecase/auth"
	"github.com/sangamconnect/sangam-backend/internal/usecase/interest"
	"github.com/sangamconnect/sangam-backend/internal/usecase/profile"
	"github.com/sangamconnect/sangam-backend/internal/usecase/recommend"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *zap.Logger
	DB     *sqlx.DB
	Redis  *redis.Client
	Gemini *gemini.Client
	Server *server.Server
}

// NewContainer creates a new dependency injection container
func NewContainer(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Container, error) {
	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Redis is optional; without it compatibility scores are recomputed
	// on every request instead of served from the pair cache.
	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		logger.Warn("redis unavailable, score caching disabled", zap.Error(err))
		redisClient = nil
	}

	// Initialize Gemini client
	geminiClient, err := gemini.NewClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize gemini client: %w", err)
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	matchRepo := postgres.NewMatchRepository(db)
	interestRepo := postgres.NewInterestRepository(db)

	// Initialize use cases
	authUseCase := auth.NewAuthUseCase(
		userRepo,
		cfg.JWT.Secret,
		cfg.JWT.ExpiryDays,
		logger,
	)

	googleAuthUseCase := auth.NewGoogleAuthUseCase(
		authUseCase,
		userRepo,
		cfg.Google,
		logger,
	)

	profileUseCase := profile.NewProfileUseCase(
		profileRepo,
		userRepo,
		geminiClient,
		logger,
	)

	recommendUseCase := recommend.NewRecommendUseCase(
		profileRepo,
		matchRepo,
		geminiClient,
		redisClient,
		logger,
	)

	interestUseCase := interest.NewInterestUseCase(
		interestRepo,
		userRepo,
		matchRepo,
		logger,
	)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUseCase, googleAuthUseCase, logger)
	profileHandler := handler.NewProfileHandler(profileUseCase, logger)
	matchHandler := handler.NewMatchHandler(recommendUseCase, logger)
	interestHandler := handler.NewInterestHandler(interestUseCase, logger)
	aiHandler := handler.NewAIHandler(profileUseCase, recommendUseCase, logger)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUseCase)

	// Initialize router
	router := http.NewRouter(
		authHandler,
		profileHandler,
		matchHandler,
		interestHandler,
		aiHandler,
		authMiddleware,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter, logger)

	return &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Redis:  redisClient,
		Gemini: geminiClient,
		Server: srv,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Gemini != nil {
		c.Gemini.Close()
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Warn("failed to close redis", zap.Error(err))
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
