package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/sangamconnect/sangam-backend/internal/config"
	"github.com/sangamconnect/sangam-backend/internal/domain"
	"github.com/sangamconnect/sangam-backend/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	googleoauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// GoogleUserInfo is the subset of the Google userinfo response the app needs.
type GoogleUserInfo struct {
	Email         string
	FirstName     string
	LastName      string
	VerifiedEmail bool
}

type userInfoFetcher func(ctx context.Context, ts oauth2.TokenSource) (*GoogleUserInfo, error)

// GoogleAuthUseCase implements social sign-in: authorization-code exchange
// against Google, userinfo fetch, then find-or-create on the local account.
type GoogleAuthUseCase struct {
	auth      *AuthUseCase
	userRepo  repository.UserRepository
	oauth     *oauth2.Config
	fetchUser userInfoFetcher
	logger    *zap.Logger
}

func NewGoogleAuthUseCase(
	auth *AuthUseCase,
	userRepo repository.UserRepository,
	cfg config.GoogleConfig,
	logger *zap.Logger,
) *GoogleAuthUseCase {
	return &GoogleAuthUseCase{
		auth:     auth,
		userRepo: userRepo,
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		fetchUser: fetchGoogleUserInfo,
		logger:    logger,
	}
}

// Enabled reports whether Google credentials are configured.
func (uc *GoogleAuthUseCase) Enabled() bool {
	return uc.oauth.ClientID != "" && uc.oauth.ClientSecret != ""
}

// AuthURL returns the Google consent page URL to redirect the client to.
func (uc *GoogleAuthUseCase) AuthURL(state string) string {
	return uc.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.SetAuthURLParam("prompt", "consent"))
}

// HandleCallback exchanges the authorization code, fetches the Google account
// info and signs the matching local user in, creating one on first sign-in.
func (uc *GoogleAuthUseCase) HandleCallback(ctx context.Context, code string) (*AuthResponse, error) {
	token, err := uc.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	info, err := uc.fetchUser(ctx, uc.oauth.TokenSource(ctx, token))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch google user info: %w", err)
	}
	if info.Email == "" {
		return nil, fmt.Errorf("google account has no email")
	}

	user, err := uc.userRepo.GetByEmail(ctx, info.Email)
	if errors.Is(err, domain.ErrUserNotFound) {
		user = &domain.User{
			Email:      info.Email,
			FirstName:  info.FirstName,
			LastName:   info.LastName,
			IsVerified: info.VerifiedEmail,
		}
		if err := uc.userRepo.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		uc.logger.Info("user created via google sign-in", zap.String("user_id", user.ID))
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := uc.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		uc.logger.Warn("failed to update last login", zap.Error(err))
	}

	return uc.auth.issueToken(user)
}

func fetchGoogleUserInfo(ctx context.Context, ts oauth2.TokenSource) (*GoogleUserInfo, error) {
	svc, err := googleoauth2.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, err
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	verified := info.VerifiedEmail != nil && *info.VerifiedEmail
	return &GoogleUserInfo{
		Email:         info.Email,
		FirstName:     info.GivenName,
		LastName:      info.FamilyName,
		VerifiedEmail: verified,
	}, nil
}
