package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tandogan/registrar/internal/app/models"
	"github.com/tandogan/registrar/internal/app/models/dto"
	"github.com/tandogan/registrar/internal/pkg/apperrors"
	"github.com/tandogan/registrar/internal/pkg/auth"
)

func newAuthFixture() (*AuthService, *fakeUserStore, *fakeTokenStore) {
	users := newFakeUserStore()
	tokens := newFakeTokenStore()

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "registrar.test",
	})

	svc := NewAuthService(users, tokens, jwtService, &fakeEmailSender{}, zerolog.Nop())
	return svc, users, tokens
}

func TestRegisterDefaultsToStudentRole(t *testing.T) {
	ctx := context.Background()
	svc, users, _ := newAuthFixture()

	tokens, err := svc.Register(ctx, &dto.RegisterRequest{
		Username: "ada@school.edu",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)

	user, err := users.GetUserByUsername(ctx, "ada@school.edu")
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.NotEqual(t, "secret123", user.Password)
}

func TestRegisterAdminRole(t *testing.T) {
	ctx := context.Background()
	svc, users, _ := newAuthFixture()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Username: "registrar@school.edu",
		Password: "secret123",
		Role:     "ADMIN",
	})
	require.NoError(t, err)

	user, err := users.GetUserByUsername(ctx, "registrar@school.edu")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestRegisterUnknownRole(t *testing.T) {
	ctx := context.Background()
	svc, users, _ := newAuthFixture()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Username: "ada@school.edu",
		Password: "secret123",
		Role:     "SUPERUSER",
	})
	assert.ErrorIs(t, err, apperrors.ErrRoleUnknown)
	assert.Empty(t, users.users)
}

func TestRegisterUsernameTaken(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAuthFixture()

	_, err := svc.Register(ctx, &dto.RegisterRequest{Username: "ada@school.edu", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &dto.RegisterRequest{Username: "ada@school.edu", Password: "other456"})
	assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAuthFixture()

	_, err := svc.Register(ctx, &dto.RegisterRequest{Username: "ada@school.edu", Password: "secret123"})
	require.NoError(t, err)

	tokens, err := svc.Login(ctx, &dto.LoginRequest{Username: "ada@school.edu", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", tokens.TokenType)

	_, err = svc.Login(ctx, &dto.LoginRequest{Username: "ada@school.edu", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	// An unknown account looks identical to a wrong password
	_, err = svc.Login(ctx, &dto.LoginRequest{Username: "nobody@school.edu", Password: "secret123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRefreshTokenRotates(t *testing.T) {
	ctx := context.Background()
	svc, _, tokenStore := newAuthFixture()

	registered, err := svc.Register(ctx, &dto.RegisterRequest{Username: "ada@school.edu", Password: "secret123"})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: registered.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, registered.RefreshToken, refreshed.RefreshToken)

	// The presented token was revoked and cannot be replayed
	_, err = svc.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: registered.RefreshToken})
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)

	// An unknown token is rejected outright
	_, err = svc.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: "not-a-token"})
	assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)

	_ = tokenStore
}

func TestRefreshTokenExpired(t *testing.T) {
	ctx := context.Background()
	svc, _, tokenStore := newAuthFixture()

	registered, err := svc.Register(ctx, &dto.RegisterRequest{Username: "ada@school.edu", Password: "secret123"})
	require.NoError(t, err)

	tokenStore.tokens[registered.RefreshToken].expiryDate = time.Now().Add(-time.Hour)

	_, err = svc.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: registered.RefreshToken})
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestRegisterSendsWelcomeEmail(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserStore()
	tokens := newFakeTokenStore()
	sender := &fakeEmailSender{}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "registrar.test",
	})
	svc := NewAuthService(users, tokens, jwtService, sender, zerolog.Nop())

	_, err := svc.Register(ctx, &dto.RegisterRequest{Username: "ada@school.edu", Password: "secret123"})
	require.NoError(t, err)

	// The email goes out on a goroutine; give it a moment
	assert.Eventually(t, func() bool {
		sent := sender.sentTo()
		return len(sent) == 1 && sent[0] == "ada@school.edu"
	}, time.Second, 10*time.Millisecond)
}

func TestGetProfile(t *testing.T) {
	ctx := context.Background()
	svc, users, _ := newAuthFixture()

	_, err := svc.Register(ctx, &dto.RegisterRequest{Username: "ada@school.edu", Password: "secret123", Role: "ADMIN"})
	require.NoError(t, err)

	user, err := users.GetUserByUsername(ctx, "ada@school.edu")
	require.NoError(t, err)

	profile, err := svc.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@school.edu", profile.Username)
	assert.Equal(t, "ADMIN", profile.Role)

	_, err = svc.GetProfile(ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
