package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tandogan/registrar/internal/app/models"
	"github.com/tandogan/registrar/internal/app/models/dto"
	"github.com/tandogan/registrar/internal/pkg/apperrors"
	"github.com/tandogan/registrar/internal/pkg/auth"
	"github.com/tandogan/registrar/internal/pkg/email"
)

// AuthService handles authentication operations
type AuthService struct {
	users      UserStore
	tokens     TokenStore
	jwtService *auth.JWTService
	emailSvc   email.EmailService
	logger     zerolog.Logger
}

// NewAuthService creates a new authentication service instance
func NewAuthService(
	users UserStore,
	tokens TokenStore,
	jwtService *auth.JWTService,
	emailSvc email.EmailService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:      users,
		tokens:     tokens,
		jwtService: jwtService,
		emailSvc:   emailSvc,
		logger:     logger,
	}
}

// Register creates a new account and returns a token pair.
// A blank role defaults to STUDENT; an unknown role is rejected before
// anything is persisted.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	role, ok := models.ParseRoleType(req.Role)
	if !ok {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrRoleUnknown, req.Role)
	}

	exists, err := s.users.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("error checking username: %w", err)
	}
	if exists {
		return nil, apperrors.ErrUsernameTaken
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username: req.Username,
		Password: hashedPassword,
		Role:     role,
	}

	userID, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = userID

	// Welcome email must not block or fail registration
	go func() {
		if err := s.emailSvc.SendWelcomeEmail(user.Username, user.Username); err != nil {
			s.logger.Warn().Err(err).Str("username", user.Username).Msg("Failed to send welcome email")
		}
	}()

	return s.generateTokenResponse(ctx, user)
}

// Login authenticates an account and returns a token pair
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.users.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.generateTokenResponse(ctx, user)
}

// RefreshToken exchanges a valid refresh token for a new token pair.
// The presented token is revoked so it cannot be replayed.
func (s *AuthService) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	userID, expiryDate, isRevoked, err := s.tokens.GetTokenByValue(ctx, req.RefreshToken)
	if err != nil {
		return nil, err
	}

	if isRevoked {
		return nil, apperrors.ErrTokenRevoked
	}
	if time.Now().After(expiryDate) {
		return nil, apperrors.ErrTokenExpired
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.tokens.RevokeToken(ctx, req.RefreshToken); err != nil {
		return nil, fmt.Errorf("error revoking refresh token: %w", err)
	}

	return s.generateTokenResponse(ctx, user)
}

// Logout revokes all refresh tokens of an account
func (s *AuthService) Logout(ctx context.Context, userID int64) error {
	return s.tokens.RevokeAllUserTokens(ctx, userID)
}

// GetProfile returns the account information for an ID
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Role:     string(user.Role),
	}, nil
}

// generateTokenResponse creates a token pair and persists the refresh token
func (s *AuthService) generateTokenResponse(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("error generating token pair: %w", err)
	}

	expiryDate := s.jwtService.GetRefreshTokenExpiry()
	if err := s.tokens.CreateToken(ctx, refreshToken, user.ID, expiryDate); err != nil {
		return nil, fmt.Errorf("error persisting refresh token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		TokenType:        "Bearer",
		ExpiresIn:        int64(expiresIn),
		RefreshToken:     refreshToken,
		RefreshExpiresIn: int64(refreshExpiresIn),
	}, nil
}
