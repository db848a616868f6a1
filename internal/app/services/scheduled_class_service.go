package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/tandogan/registrar/internal/app/models"
	"github.com/tandogan/registrar/internal/app/models/dto"
	"github.com/tandogan/registrar/internal/metrics"
	"github.com/tandogan/registrar/internal/pkg/apperrors"
	"github.com/tandogan/registrar/internal/pkg/validation"
)

// ScheduledClassService handles timetable entry operations
type ScheduledClassService struct {
	classes ScheduledClassStore
	courses CourseStore
}

// NewScheduledClassService creates a new scheduled class service instance
func NewScheduledClassService(classes ScheduledClassStore, courses CourseStore) *ScheduledClassService {
	return &ScheduledClassService{
		classes: classes,
		courses: courses,
	}
}

// CreateScheduledClass creates a new timetable entry.
// The referenced course must resolve before anything is persisted.
func (s *ScheduledClassService) CreateScheduledClass(ctx context.Context, req *dto.CreateScheduledClassRequest) (*dto.ScheduledClassResponse, error) {
	course, err := s.courses.GetByID(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}

	class := &models.ScheduledClass{
		CourseID:       req.CourseID,
		DayOfWeek:      strings.ToUpper(req.DayOfWeek),
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		RoomNumber:     req.RoomNumber,
		InstructorName: req.InstructorName,
	}

	if err := s.classes.Create(ctx, class); err != nil {
		return nil, err
	}

	metrics.RecordWritesTotal.WithLabelValues("scheduled_class", "create").Inc()

	resp := s.toResponse(class)
	resp.CourseCode = course.CourseCode
	resp.CourseName = course.CourseName
	return resp, nil
}

// GetScheduledClassByID retrieves a timetable entry by ID
func (s *ScheduledClassService) GetScheduledClassByID(ctx context.Context, id int64) (*dto.ScheduledClassResponse, error) {
	class, err := s.classes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.enrich(ctx, class), nil
}

// GetAllScheduledClasses retrieves the full timetable
func (s *ScheduledClassService) GetAllScheduledClasses(ctx context.Context) ([]*dto.ScheduledClassResponse, error) {
	classes, err := s.classes.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return s.enrichAll(ctx, classes), nil
}

// GetScheduledClassesByCourse retrieves the timetable entries for a course.
// The course must exist; an unknown course is an error rather than an
// empty timetable.
func (s *ScheduledClassService) GetScheduledClassesByCourse(ctx context.Context, courseID int64) ([]*dto.ScheduledClassResponse, error) {
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	classes, err := s.classes.GetByCourseID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	return s.enrichAll(ctx, classes), nil
}

// GetScheduledClassesByDay retrieves the timetable entries for a day of the week
func (s *ScheduledClassService) GetScheduledClassesByDay(ctx context.Context, day string) ([]*dto.ScheduledClassResponse, error) {
	if !validation.IsValidDayOfWeek(day) {
		return nil, fmt.Errorf("%w: unknown day of week %q", apperrors.ErrValidationFailed, day)
	}

	classes, err := s.classes.GetByDayOfWeek(ctx, strings.ToUpper(day))
	if err != nil {
		return nil, err
	}

	return s.enrichAll(ctx, classes), nil
}

// UpdateScheduledClass applies a partial update to an existing timetable entry.
// A supplied courseId is re-resolved before the update is applied.
func (s *ScheduledClassService) UpdateScheduledClass(ctx context.Context, id int64, req *dto.UpdateScheduledClassRequest) (*dto.ScheduledClassResponse, error) {
	class, err := s.classes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CourseID != nil {
		if _, err := s.courses.GetByID(ctx, *req.CourseID); err != nil {
			return nil, err
		}
		class.CourseID = *req.CourseID
	}

	if req.DayOfWeek != nil {
		class.DayOfWeek = strings.ToUpper(*req.DayOfWeek)
	}
	if req.StartTime != nil {
		class.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		class.EndTime = *req.EndTime
	}
	if req.RoomNumber != nil {
		class.RoomNumber = req.RoomNumber
	}
	if req.InstructorName != nil {
		class.InstructorName = req.InstructorName
	}

	if err := s.classes.Update(ctx, class); err != nil {
		return nil, err
	}

	metrics.RecordWritesTotal.WithLabelValues("scheduled_class", "update").Inc()
	return s.enrich(ctx, class), nil
}

// DeleteScheduledClass deletes a timetable entry by ID
func (s *ScheduledClassService) DeleteScheduledClass(ctx context.Context, id int64) error {
	if err := s.classes.Delete(ctx, id); err != nil {
		return err
	}

	metrics.RecordWritesTotal.WithLabelValues("scheduled_class", "delete").Inc()
	return nil
}

// toResponse maps a timetable entry without course display fields
func (s *ScheduledClassService) toResponse(class *models.ScheduledClass) *dto.ScheduledClassResponse {
	return &dto.ScheduledClassResponse{
		ID:             class.ID,
		CourseID:       class.CourseID,
		DayOfWeek:      class.DayOfWeek,
		StartTime:      class.StartTime,
		EndTime:        class.EndTime,
		RoomNumber:     class.RoomNumber,
		InstructorName: class.InstructorName,
	}
}

// enrich maps a timetable entry and fills course display fields when the
// referenced course still resolves. A dangling reference leaves the
// display fields empty instead of failing the read.
func (s *ScheduledClassService) enrich(ctx context.Context, class *models.ScheduledClass) *dto.ScheduledClassResponse {
	resp := s.toResponse(class)

	course, err := s.courses.GetByID(ctx, class.CourseID)
	if err == nil {
		resp.CourseCode = course.CourseCode
		resp.CourseName = course.CourseName
	}

	return resp
}

func (s *ScheduledClassService) enrichAll(ctx context.Context, classes []*models.ScheduledClass) []*dto.ScheduledClassResponse {
	responses := make([]*dto.ScheduledClassResponse, 0, len(classes))
	for _, class := range classes {
		responses = append(responses, s.enrich(ctx, class))
	}

	return responses
}
