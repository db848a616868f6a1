package services

import (
	"context"
	"fmt"

	"github.com/tandogan/registrar/internal/app/models"
	"github.com/tandogan/registrar/internal/app/models/dto"
	"github.com/tandogan/registrar/internal/metrics"
	"github.com/tandogan/registrar/internal/pkg/apperrors"
)

// CourseService handles course record operations
type CourseService struct {
	courses CourseStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courses CourseStore) *CourseService {
	return &CourseService{
		courses: courses,
	}
}

// CreateCourse creates a new course.
// The course code is pre-checked for a clean conflict message; the storage
// unique index remains the canonical guard for raced creates.
func (s *CourseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	exists, err := s.courses.CodeExists(ctx, req.CourseCode, 0)
	if err != nil {
		return nil, fmt.Errorf("error checking course code: %w", err)
	}
	if exists {
		metrics.ConflictRejectionsTotal.WithLabelValues("course").Inc()
		return nil, apperrors.ErrCourseCodeAlreadyExists
	}

	course := &models.Course{
		CourseCode:  req.CourseCode,
		CourseName:  req.CourseName,
		Description: req.Description,
		Credits:     *req.Credits,
	}

	if err := s.courses.Create(ctx, course); err != nil {
		return nil, err
	}

	metrics.RecordWritesTotal.WithLabelValues("course", "create").Inc()
	return course, nil
}

// GetCourseByID retrieves a course by ID
func (s *CourseService) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	return s.courses.GetByID(ctx, id)
}

// GetAllCourses retrieves all courses
func (s *CourseService) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	return s.courses.GetAll(ctx)
}

// UpdateCourse applies a partial update to an existing course.
// Only supplied fields change; the code uniqueness guard re-runs only when
// the supplied code differs from the stored one.
func (s *CourseService) UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CourseCode != nil && *req.CourseCode != course.CourseCode {
		exists, err := s.courses.CodeExists(ctx, *req.CourseCode, id)
		if err != nil {
			return nil, fmt.Errorf("error checking course code: %w", err)
		}
		if exists {
			metrics.ConflictRejectionsTotal.WithLabelValues("course").Inc()
			return nil, apperrors.ErrCourseCodeAlreadyExists
		}
		course.CourseCode = *req.CourseCode
	}

	if req.CourseName != nil {
		course.CourseName = *req.CourseName
	}
	if req.Description != nil {
		course.Description = req.Description
	}
	if req.Credits != nil {
		course.Credits = *req.Credits
	}

	if err := s.courses.Update(ctx, course); err != nil {
		return nil, err
	}

	metrics.RecordWritesTotal.WithLabelValues("course", "update").Inc()
	return course, nil
}

// DeleteCourse deletes a course by ID.
// Scheduled classes, grades and attendance records referencing the course
// are not touched.
func (s *CourseService) DeleteCourse(ctx context.Context, id int64) error {
	if err := s.courses.Delete(ctx, id); err != nil {
		return err
	}

	metrics.RecordWritesTotal.WithLabelValues("course", "delete").Inc()
	return nil
}
