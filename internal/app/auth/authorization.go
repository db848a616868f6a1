package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/tandogan/registrar/internal/app/models"
	"github.com/tandogan/registrar/internal/pkg/apperrors"
	"github.com/tandogan/registrar/internal/pkg/logger"
)

// StudentResolver resolves a student record by email
type StudentResolver interface {
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
}

// AuthorizationService maps authenticated identities onto student records
// for self-scoped reads
type AuthorizationService struct {
	students StudentResolver
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(students StudentResolver) *AuthorizationService {
	return &AuthorizationService{
		students: students,
	}
}

// ResolveSelfStudent maps an authenticated username onto the student record
// whose email matches it. An account with no matching student record gets a
// profile-not-found error rather than an empty result.
func (s *AuthorizationService) ResolveSelfStudent(ctx context.Context, username string) (*models.Student, error) {
	student, err := s.students.GetByEmail(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentProfileNotFound
		}
		logger.Error().Err(err).Str("username", username).Msg("Error resolving student profile")
		return nil, fmt.Errorf("error resolving student profile: %w", err)
	}

	return student, nil
}
