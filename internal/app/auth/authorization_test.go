package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tandogan/registrar/internal/app/models"
	"github.com/tandogan/registrar/internal/pkg/apperrors"
)

type fakeStudentResolver struct {
	byEmail map[string]*models.Student
}

func (r *fakeStudentResolver) GetByEmail(_ context.Context, email string) (*models.Student, error) {
	student, ok := r.byEmail[email]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

func TestResolveSelfStudent(t *testing.T) {
	svc := NewAuthorizationService(&fakeStudentResolver{
		byEmail: map[string]*models.Student{
			"ada@school.edu": {ID: 7, FirstName: "Ada", LastName: "Lovelace", Email: "ada@school.edu"},
		},
	})

	student, err := svc.ResolveSelfStudent(context.Background(), "ada@school.edu")
	require.NoError(t, err)
	assert.Equal(t, int64(7), student.ID)
}

func TestResolveSelfStudentNoProfile(t *testing.T) {
	svc := NewAuthorizationService(&fakeStudentResolver{byEmail: map[string]*models.Student{}})

	_, err := svc.ResolveSelfStudent(context.Background(), "nobody@school.edu")
	assert.ErrorIs(t, err, apperrors.ErrStudentProfileNotFound)
}
