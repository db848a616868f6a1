package services

import (
	"context"
	"fmt"

	"github.com/tandogan/registrar/internal/app/models"
	"github.com/tandogan/registrar/internal/app/models/dto"
	"github.com/tandogan/registrar/internal/metrics"
	"github.com/tandogan/registrar/internal/pkg/apperrors"
)

// AttendanceService handles attendance record operations
type AttendanceService struct {
	attendance AttendanceStore
	students   StudentStore
	courses    CourseStore
}

// NewAttendanceService creates a new attendance service instance
func NewAttendanceService(attendance AttendanceStore, students StudentStore, courses CourseStore) *AttendanceService {
	return &AttendanceService{
		attendance: attendance,
		students:   students,
		courses:    courses,
	}
}

// RecordAttendance creates a new attendance record.
// Both referenced records must resolve and the (student, course, date) key
// must be free before anything is persisted. The storage unique index
// remains the canonical guard for raced creates.
func (s *AttendanceService) RecordAttendance(ctx context.Context, req *dto.CreateAttendanceRequest) (*dto.AttendanceResponse, error) {
	student, err := s.students.GetByID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}

	course, err := s.courses.GetByID(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid attendance date %q", apperrors.ErrValidationFailed, req.Date)
	}

	status, ok := models.ParseAttendanceStatus(req.Status)
	if !ok {
		return nil, fmt.Errorf("%w: unknown attendance status %q", apperrors.ErrValidationFailed, req.Status)
	}

	exists, err := s.attendance.Exists(ctx, req.StudentID, req.CourseID, date)
	if err != nil {
		return nil, fmt.Errorf("error checking attendance existence: %w", err)
	}
	if exists {
		metrics.ConflictRejectionsTotal.WithLabelValues("attendance").Inc()
		return nil, apperrors.ErrAttendanceAlreadyRecorded
	}

	record := &models.AttendanceRecord{
		StudentID: req.StudentID,
		CourseID:  req.CourseID,
		Date:      date,
		Status:    status,
	}

	if err := s.attendance.Create(ctx, record); err != nil {
		return nil, err
	}

	metrics.RecordWritesTotal.WithLabelValues("attendance", "create").Inc()

	resp := s.toResponse(record)
	resp.StudentName = student.FullName()
	resp.CourseCode = course.CourseCode
	resp.CourseName = course.CourseName
	return resp, nil
}

// GetAttendanceByID retrieves an attendance record by ID
func (s *AttendanceService) GetAttendanceByID(ctx context.Context, id int64) (*dto.AttendanceResponse, error) {
	record, err := s.attendance.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.enrich(ctx, record), nil
}

// GetAttendanceByStudent retrieves all attendance records for a student.
// The student must exist; an unknown student is an error rather than an
// empty list.
func (s *AttendanceService) GetAttendanceByStudent(ctx context.Context, studentID int64) ([]*dto.AttendanceResponse, error) {
	if _, err := s.students.GetByID(ctx, studentID); err != nil {
		return nil, err
	}

	records, err := s.attendance.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	return s.enrichAll(ctx, records), nil
}

// GetAttendanceByCourse retrieves all attendance records for a course
func (s *AttendanceService) GetAttendanceByCourse(ctx context.Context, courseID int64) ([]*dto.AttendanceResponse, error) {
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	records, err := s.attendance.GetByCourseID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	return s.enrichAll(ctx, records), nil
}

// GetAttendanceByStudentAndCourse retrieves all attendance records for a
// student in a course
func (s *AttendanceService) GetAttendanceByStudentAndCourse(ctx context.Context, studentID, courseID int64) ([]*dto.AttendanceResponse, error) {
	if _, err := s.students.GetByID(ctx, studentID); err != nil {
		return nil, err
	}
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	records, err := s.attendance.GetByStudentAndCourse(ctx, studentID, courseID)
	if err != nil {
		return nil, err
	}

	return s.enrichAll(ctx, records), nil
}

// GetAttendanceByCourseAndDate retrieves all attendance records for a course
// on a given date
func (s *AttendanceService) GetAttendanceByCourseAndDate(ctx context.Context, courseID int64, rawDate string) ([]*dto.AttendanceResponse, error) {
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	date, err := parseDate(rawDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid attendance date %q", apperrors.ErrValidationFailed, rawDate)
	}

	records, err := s.attendance.GetByCourseAndDate(ctx, courseID, date)
	if err != nil {
		return nil, err
	}

	return s.enrichAll(ctx, records), nil
}

// UpdateAttendance updates the status of an existing attendance record.
// The student, course and date of an existing record never change.
func (s *AttendanceService) UpdateAttendance(ctx context.Context, id int64, req *dto.UpdateAttendanceRequest) (*dto.AttendanceResponse, error) {
	record, err := s.attendance.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	status, ok := models.ParseAttendanceStatus(req.Status)
	if !ok {
		return nil, fmt.Errorf("%w: unknown attendance status %q", apperrors.ErrValidationFailed, req.Status)
	}
	record.Status = status

	if err := s.attendance.Update(ctx, record); err != nil {
		return nil, err
	}

	metrics.RecordWritesTotal.WithLabelValues("attendance", "update").Inc()
	return s.enrich(ctx, record), nil
}

// DeleteAttendance deletes an attendance record by ID
func (s *AttendanceService) DeleteAttendance(ctx context.Context, id int64) error {
	if err := s.attendance.Delete(ctx, id); err != nil {
		return err
	}

	metrics.RecordWritesTotal.WithLabelValues("attendance", "delete").Inc()
	return nil
}

// toResponse maps an attendance record without display fields
func (s *AttendanceService) toResponse(record *models.AttendanceRecord) *dto.AttendanceResponse {
	return &dto.AttendanceResponse{
		ID:        record.ID,
		StudentID: record.StudentID,
		CourseID:  record.CourseID,
		Date:      formatDate(record.Date),
		Status:    string(record.Status),
	}
}

// enrich maps an attendance record and fills student and course display
// fields when the referenced records still resolve. Dangling references
// leave the display fields empty instead of failing the read.
func (s *AttendanceService) enrich(ctx context.Context, record *models.AttendanceRecord) *dto.AttendanceResponse {
	resp := s.toResponse(record)

	student, err := s.students.GetByID(ctx, record.StudentID)
	if err == nil {
		resp.StudentName = student.FullName()
	}

	course, err := s.courses.GetByID(ctx, record.CourseID)
	if err == nil {
		resp.CourseCode = course.CourseCode
		resp.CourseName = course.CourseName
	}

	return resp
}

func (s *AttendanceService) enrichAll(ctx context.Context, records []*models.AttendanceRecord) []*dto.AttendanceResponse {
	responses := make([]*dto.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, s.enrich(ctx, record))
	}

	return responses
}
