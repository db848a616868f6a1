package services

import (
	"context"
	"fmt"

	"github.com/tandogan/registrar/internal/app/models"
	"github.com/tandogan/registrar/internal/app/models/dto"
	"github.com/tandogan/registrar/internal/metrics"
	"github.com/tandogan/registrar/internal/pkg/apperrors"
)

// StudentService handles student record operations
type StudentService struct {
	students StudentStore
}

// NewStudentService creates a new student service instance
func NewStudentService(students StudentStore) *StudentService {
	return &StudentService{
		students: students,
	}
}

// CreateStudent creates a new student.
// Both distinguishing keys are pre-checked so a duplicate gets a clean
// conflict message; the storage unique index remains the canonical guard
// and a raced insert surfaces as the same conflict error from the store.
func (s *StudentService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	exists, err := s.students.EmailExists(ctx, req.Email, 0)
	if err != nil {
		return nil, fmt.Errorf("error checking student email: %w", err)
	}
	if exists {
		metrics.ConflictRejectionsTotal.WithLabelValues("student").Inc()
		return nil, apperrors.ErrEmailAlreadyExists
	}

	exists, err = s.students.StudentNumberExists(ctx, req.StudentIDNumber, 0)
	if err != nil {
		return nil, fmt.Errorf("error checking student number: %w", err)
	}
	if exists {
		metrics.ConflictRejectionsTotal.WithLabelValues("student").Inc()
		return nil, apperrors.ErrStudentNumberAlreadyExists
	}

	student := &models.Student{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		StudentIDNumber: req.StudentIDNumber,
	}

	if err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}

	metrics.RecordWritesTotal.WithLabelValues("student", "create").Inc()
	return student, nil
}

// GetStudentByID retrieves a student by ID
func (s *StudentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.students.GetByID(ctx, id)
}

// GetAllStudents retrieves all students
func (s *StudentService) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	return s.students.GetAll(ctx)
}

// UpdateStudent applies a partial update to an existing student.
// Only supplied fields change; a keyed field re-runs its uniqueness guard
// only when its value actually differs from the stored one.
func (s *StudentService) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != student.Email {
		exists, err := s.students.EmailExists(ctx, *req.Email, id)
		if err != nil {
			return nil, fmt.Errorf("error checking student email: %w", err)
		}
		if exists {
			metrics.ConflictRejectionsTotal.WithLabelValues("student").Inc()
			return nil, apperrors.ErrEmailAlreadyExists
		}
		student.Email = *req.Email
	}

	if req.StudentIDNumber != nil && *req.StudentIDNumber != student.StudentIDNumber {
		exists, err := s.students.StudentNumberExists(ctx, *req.StudentIDNumber, id)
		if err != nil {
			return nil, fmt.Errorf("error checking student number: %w", err)
		}
		if exists {
			metrics.ConflictRejectionsTotal.WithLabelValues("student").Inc()
			return nil, apperrors.ErrStudentNumberAlreadyExists
		}
		student.StudentIDNumber = *req.StudentIDNumber
	}

	if req.FirstName != nil {
		student.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		student.LastName = *req.LastName
	}

	if err := s.students.Update(ctx, student); err != nil {
		return nil, err
	}

	metrics.RecordWritesTotal.WithLabelValues("student", "update").Inc()
	return student, nil
}

// DeleteStudent deletes a student by ID.
// Grades and attendance records referencing the student are not touched.
func (s *StudentService) DeleteStudent(ctx context.Context, id int64) error {
	if err := s.students.Delete(ctx, id); err != nil {
		return err
	}

	metrics.RecordWritesTotal.WithLabelValues("student", "delete").Inc()
	return nil
}
