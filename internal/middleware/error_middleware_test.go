package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/tandogan/registrar/internal/pkg/apperrors"
)

func TestHandleAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"student not found", apperrors.ErrStudentNotFound, http.StatusNotFound},
		{"course not found", apperrors.ErrCourseNotFound, http.StatusNotFound},
		{"no student profile", apperrors.ErrStudentProfileNotFound, http.StatusNotFound},
		{"duplicate email", apperrors.ErrEmailAlreadyExists, http.StatusConflict},
		{"duplicate course code", apperrors.ErrCourseCodeAlreadyExists, http.StatusConflict},
		{"duplicate grade", apperrors.ErrGradeAlreadyExists, http.StatusConflict},
		{"duplicate attendance", apperrors.ErrAttendanceAlreadyRecorded, http.StatusConflict},
		{"username taken", apperrors.ErrUsernameTaken, http.StatusConflict},
		{"unknown role", apperrors.ErrRoleUnknown, http.StatusBadRequest},
		{"validation failed", apperrors.ErrValidationFailed, http.StatusBadRequest},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"token expired", apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{"token revoked", apperrors.ErrTokenRevoked, http.StatusUnauthorized},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden},
		{"unexpected", assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)

			HandleAPIError(c, tc.err)

			assert.Equal(t, tc.wantStatus, recorder.Code)
		})
	}
}
