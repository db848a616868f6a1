package services

import (
	"context"
	"fmt"

	"github.com/tandogan/registrar/internal/app/models"
	"github.com/tandogan/registrar/internal/app/models/dto"
	"github.com/tandogan/registrar/internal/metrics"
	"github.com/tandogan/registrar/internal/pkg/apperrors"
)

// GradeService handles grade record operations
type GradeService struct {
	grades   GradeStore
	students StudentStore
	courses  CourseStore
}

// NewGradeService creates a new grade service instance
func NewGradeService(grades GradeStore, students StudentStore, courses CourseStore) *GradeService {
	return &GradeService{
		grades:   grades,
		students: students,
		courses:  courses,
	}
}

// CreateGrade creates a new grade.
// Both referenced records must resolve and the (student, course, assessment
// type) key must be free before anything is persisted. The storage unique
// index remains the canonical guard for raced creates.
func (s *GradeService) CreateGrade(ctx context.Context, req *dto.CreateGradeRequest) (*dto.GradeResponse, error) {
	student, err := s.students.GetByID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}

	course, err := s.courses.GetByID(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}

	exists, err := s.grades.Exists(ctx, req.StudentID, req.CourseID, req.AssessmentType)
	if err != nil {
		return nil, fmt.Errorf("error checking grade existence: %w", err)
	}
	if exists {
		metrics.ConflictRejectionsTotal.WithLabelValues("grade").Inc()
		return nil, apperrors.ErrGradeAlreadyExists
	}

	grade := &models.Grade{
		StudentID:      req.StudentID,
		CourseID:       req.CourseID,
		AssessmentType: req.AssessmentType,
		GradeValue:     req.GradeValue,
		Comments:       req.Comments,
	}

	if req.AssessmentDate != nil {
		date, err := parseDate(*req.AssessmentDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid assessment date %q", apperrors.ErrValidationFailed, *req.AssessmentDate)
		}
		grade.AssessmentDate = &date
	}

	if err := s.grades.Create(ctx, grade); err != nil {
		return nil, err
	}

	metrics.RecordWritesTotal.WithLabelValues("grade", "create").Inc()

	resp := s.toResponse(grade)
	resp.StudentName = student.FullName()
	resp.CourseCode = course.CourseCode
	resp.CourseName = course.CourseName
	return resp, nil
}

// GetGradeByID retrieves a grade by ID
func (s *GradeService) GetGradeByID(ctx context.Context, id int64) (*dto.GradeResponse, error) {
	grade, err := s.grades.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.enrich(ctx, grade), nil
}

// GetAllGrades retrieves all grades
func (s *GradeService) GetAllGrades(ctx context.Context) ([]*dto.GradeResponse, error) {
	grades, err := s.grades.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return s.enrichAll(ctx, grades), nil
}

// GetGradesByStudent retrieves all grades for a student.
// The student must exist; an unknown student is an error rather than an
// empty list.
func (s *GradeService) GetGradesByStudent(ctx context.Context, studentID int64) ([]*dto.GradeResponse, error) {
	if _, err := s.students.GetByID(ctx, studentID); err != nil {
		return nil, err
	}

	grades, err := s.grades.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	return s.enrichAll(ctx, grades), nil
}

// GetGradesByCourse retrieves all grades for a course
func (s *GradeService) GetGradesByCourse(ctx context.Context, courseID int64) ([]*dto.GradeResponse, error) {
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	grades, err := s.grades.GetByCourseID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	return s.enrichAll(ctx, grades), nil
}

// GetGradesByStudentAndCourse retrieves all grades for a student in a course
func (s *GradeService) GetGradesByStudentAndCourse(ctx context.Context, studentID, courseID int64) ([]*dto.GradeResponse, error) {
	if _, err := s.students.GetByID(ctx, studentID); err != nil {
		return nil, err
	}
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	grades, err := s.grades.GetByStudentAndCourse(ctx, studentID, courseID)
	if err != nil {
		return nil, err
	}

	return s.enrichAll(ctx, grades), nil
}

// UpdateGrade applies a partial update to an existing grade.
// Only the assessment outcome fields change; the student, course and
// assessment type of an existing grade never change.
func (s *GradeService) UpdateGrade(ctx context.Context, id int64, req *dto.UpdateGradeRequest) (*dto.GradeResponse, error) {
	grade, err := s.grades.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.GradeValue != nil {
		grade.GradeValue = *req.GradeValue
	}
	if req.AssessmentDate != nil {
		date, err := parseDate(*req.AssessmentDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid assessment date %q", apperrors.ErrValidationFailed, *req.AssessmentDate)
		}
		grade.AssessmentDate = &date
	}
	if req.Comments != nil {
		grade.Comments = req.Comments
	}

	if err := s.grades.Update(ctx, grade); err != nil {
		return nil, err
	}

	metrics.RecordWritesTotal.WithLabelValues("grade", "update").Inc()
	return s.enrich(ctx, grade), nil
}

// DeleteGrade deletes a grade by ID
func (s *GradeService) DeleteGrade(ctx context.Context, id int64) error {
	if err := s.grades.Delete(ctx, id); err != nil {
		return err
	}

	metrics.RecordWritesTotal.WithLabelValues("grade", "delete").Inc()
	return nil
}

// toResponse maps a grade without display fields
func (s *GradeService) toResponse(grade *models.Grade) *dto.GradeResponse {
	resp := &dto.GradeResponse{
		ID:             grade.ID,
		StudentID:      grade.StudentID,
		CourseID:       grade.CourseID,
		AssessmentType: grade.AssessmentType,
		GradeValue:     grade.GradeValue,
		Comments:       grade.Comments,
	}

	if grade.AssessmentDate != nil {
		formatted := formatDate(*grade.AssessmentDate)
		resp.AssessmentDate = &formatted
	}

	return resp
}

// enrich maps a grade and fills student and course display fields when the
// referenced records still resolve. Dangling references leave the display
// fields empty instead of failing the read.
func (s *GradeService) enrich(ctx context.Context, grade *models.Grade) *dto.GradeResponse {
	resp := s.toResponse(grade)

	student, err := s.students.GetByID(ctx, grade.StudentID)
	if err == nil {
		resp.StudentName = student.FullName()
	}

	course, err := s.courses.GetByID(ctx, grade.CourseID)
	if err == nil {
		resp.CourseCode = course.CourseCode
		resp.CourseName = course.CourseName
	}

	return resp
}

func (s *GradeService) enrichAll(ctx context.Context, grades []*models.Grade) []*dto.GradeResponse {
	responses := make([]*dto.GradeResponse, 0, len(grades))
	for _, grade := range grades {
		responses = append(responses, s.enrich(ctx, grade))
	}

	return responses
}
