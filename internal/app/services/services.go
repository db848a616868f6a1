package services

import (
	"context"
	"time"

	"github.com/tandogan/registrar/internal/app/models"
)

// Store interfaces consumed by the record services. The concrete pgx
// repositories satisfy them; tests substitute in-memory fakes.

// UserStore resolves and persists accounts
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
}

// TokenStore persists refresh tokens
type TokenStore interface {
	CreateToken(ctx context.Context, token string, userID int64, expiryDate time.Time) error
	GetTokenByValue(ctx context.Context, token string) (int64, time.Time, bool, error)
	RevokeToken(ctx context.Context, token string) error
	RevokeAllUserTokens(ctx context.Context, userID int64) error
}

// StudentStore resolves and persists student records
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)
	StudentNumberExists(ctx context.Context, number string, excludeID int64) (bool, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
}

// CourseStore resolves and persists course records
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
	CodeExists(ctx context.Context, code string, excludeID int64) (bool, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
}

// ScheduledClassStore persists timetable entries
type ScheduledClassStore interface {
	Create(ctx context.Context, class *models.ScheduledClass) error
	GetByID(ctx context.Context, id int64) (*models.ScheduledClass, error)
	GetAll(ctx context.Context) ([]*models.ScheduledClass, error)
	GetByCourseID(ctx context.Context, courseID int64) ([]*models.ScheduledClass, error)
	GetByDayOfWeek(ctx context.Context, day string) ([]*models.ScheduledClass, error)
	Update(ctx context.Context, class *models.ScheduledClass) error
	Delete(ctx context.Context, id int64) error
}

// GradeStore persists grade records
type GradeStore interface {
	Create(ctx context.Context, grade *models.Grade) error
	GetByID(ctx context.Context, id int64) (*models.Grade, error)
	GetAll(ctx context.Context) ([]*models.Grade, error)
	GetByStudentID(ctx context.Context, studentID int64) ([]*models.Grade, error)
	GetByCourseID(ctx context.Context, courseID int64) ([]*models.Grade, error)
	GetByStudentAndCourse(ctx context.Context, studentID, courseID int64) ([]*models.Grade, error)
	Exists(ctx context.Context, studentID, courseID int64, assessmentType string) (bool, error)
	Update(ctx context.Context, grade *models.Grade) error
	Delete(ctx context.Context, id int64) error
}

// AttendanceStore persists attendance records
type AttendanceStore interface {
	Create(ctx context.Context, record *models.AttendanceRecord) error
	GetByID(ctx context.Context, id int64) (*models.AttendanceRecord, error)
	GetByStudentID(ctx context.Context, studentID int64) ([]*models.AttendanceRecord, error)
	GetByCourseID(ctx context.Context, courseID int64) ([]*models.AttendanceRecord, error)
	GetByStudentAndCourse(ctx context.Context, studentID, courseID int64) ([]*models.AttendanceRecord, error)
	GetByCourseAndDate(ctx context.Context, courseID int64, date time.Time) ([]*models.AttendanceRecord, error)
	Exists(ctx context.Context, studentID, courseID int64, date time.Time) (bool, error)
	Update(ctx context.Context, record *models.AttendanceRecord) error
	Delete(ctx context.Context, id int64) error
}

// dateLayout is the wire form for date-only fields
const dateLayout = "2006-01-02"

// parseDate parses a YYYY-MM-DD date string
func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

// formatDate renders a date in YYYY-MM-DD form
func formatDate(value time.Time) string {
	return value.Format(dateLayout)
}
