package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appAuth "github.com/tandogan/registrar/internal/app/auth"
	"github.com/tandogan/registrar/internal/app/controllers"
	"github.com/tandogan/registrar/internal/app/models"
	"github.com/tandogan/registrar/internal/app/services"
	"github.com/tandogan/registrar/internal/middleware"
	"github.com/tandogan/registrar/internal/pkg/apperrors"
	pkgAuth "github.com/tandogan/registrar/internal/pkg/auth"
)

type emptyStudentResolver struct{}

func (emptyStudentResolver) GetByEmail(_ context.Context, _ string) (*models.Student, error) {
	return nil, apperrors.ErrStudentNotFound
}

func newTestRouter() (*gin.Engine, *pkgAuth.JWTService) {
	gin.SetMode(gin.TestMode)

	jwtService := pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "registrar.test",
	})
	authzService := appAuth.NewAuthorizationService(emptyStudentResolver{})

	router := gin.New()
	SetupRouter(router,
		controllers.NewAuthController(nil),
		controllers.NewStudentController(nil),
		controllers.NewCourseController(nil),
		controllers.NewScheduledClassController(nil),
		controllers.NewGradeController(services.NewGradeService(nil, nil, nil), authzService),
		controllers.NewAttendanceController(nil),
		middleware.NewAuthMiddleware(jwtService),
	)
	return router, jwtService
}

func getMyGrades(t *testing.T, router *gin.Engine, jwtService *pkgAuth.JWTService, user *models.User) *httptest.ResponseRecorder {
	t.Helper()

	accessToken, _, _, _, err := jwtService.GenerateTokenPair(user)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/grades/my-grades", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestMyGradesForbiddenForAdmin(t *testing.T) {
	router, jwtService := newTestRouter()

	recorder := getMyGrades(t, router, jwtService, &models.User{ID: 1, Username: "registrar@school.edu", Role: models.RoleAdmin})

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestMyGradesStudentWithoutProfile(t *testing.T) {
	router, jwtService := newTestRouter()

	recorder := getMyGrades(t, router, jwtService, &models.User{ID: 2, Username: "nobody@school.edu", Role: models.RoleStudent})

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestMyGradesUnauthenticated(t *testing.T) {
	router, _ := newTestRouter()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/grades/my-grades", nil)
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
