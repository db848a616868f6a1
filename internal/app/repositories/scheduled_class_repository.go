package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tandogan/registrar/internal/app/models"
	"github.com/tandogan/registrar/internal/pkg/apperrors"
)

// ScheduledClassRepository handles database operations for timetable entries
type ScheduledClassRepository struct {
	db *pgxpool.Pool
}

// NewScheduledClassRepository creates a new scheduled class repository
func NewScheduledClassRepository(db *pgxpool.Pool) *ScheduledClassRepository {
	return &ScheduledClassRepository{
		db: db,
	}
}

// Create creates a new scheduled class
func (r *ScheduledClassRepository) Create(ctx context.Context, class *models.ScheduledClass) error {
	query := `
		INSERT INTO scheduled_classes (course_id, day_of_week, start_time, end_time, room_number, instructor_name)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		class.CourseID, class.DayOfWeek, class.StartTime, class.EndTime,
		class.RoomNumber, class.InstructorName).
		Scan(&class.ID)
	if err != nil {
		return fmt.Errorf("error creating scheduled class: %w", err)
	}

	return nil
}

// GetByID retrieves a scheduled class by ID
func (r *ScheduledClassRepository) GetByID(ctx context.Context, id int64) (*models.ScheduledClass, error) {
	query := `
		SELECT id, course_id, day_of_week, start_time, end_time, room_number, instructor_name
		FROM scheduled_classes
		WHERE id = $1
	`

	var class models.ScheduledClass
	err := r.db.QueryRow(ctx, query, id).Scan(
		&class.ID,
		&class.CourseID,
		&class.DayOfWeek,
		&class.StartTime,
		&class.EndTime,
		&class.RoomNumber,
		&class.InstructorName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrScheduledClassNotFound
		}
		return nil, fmt.Errorf("error retrieving scheduled class: %w", err)
	}

	return &class, nil
}

// GetAll retrieves all scheduled classes
func (r *ScheduledClassRepository) GetAll(ctx context.Context) ([]*models.ScheduledClass, error) {
	query := `
		SELECT id, course_id, day_of_week, start_time, end_time, room_number, instructor_name
		FROM scheduled_classes
		ORDER BY id
	`

	return r.queryClasses(ctx, query)
}

// GetByCourseID retrieves all scheduled classes for a course
func (r *ScheduledClassRepository) GetByCourseID(ctx context.Context, courseID int64) ([]*models.ScheduledClass, error) {
	query := `
		SELECT id, course_id, day_of_week, start_time, end_time, room_number, instructor_name
		FROM scheduled_classes
		WHERE course_id = $1
		ORDER BY id
	`

	return r.queryClasses(ctx, query, courseID)
}

// GetByDayOfWeek retrieves all scheduled classes on a given day
func (r *ScheduledClassRepository) GetByDayOfWeek(ctx context.Context, day string) ([]*models.ScheduledClass, error) {
	query := `
		SELECT id, course_id, day_of_week, start_time, end_time, room_number, instructor_name
		FROM scheduled_classes
		WHERE day_of_week = $1
		ORDER BY start_time
	`

	return r.queryClasses(ctx, query, day)
}

// queryClasses runs a scheduled class query and scans the result rows
func (r *ScheduledClassRepository) queryClasses(ctx context.Context, query string, args ...interface{}) ([]*models.ScheduledClass, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []*models.ScheduledClass
	for rows.Next() {
		var class models.ScheduledClass
		if err := rows.Scan(
			&class.ID,
			&class.CourseID,
			&class.DayOfWeek,
			&class.StartTime,
			&class.EndTime,
			&class.RoomNumber,
			&class.InstructorName,
		); err != nil {
			return nil, err
		}
		classes = append(classes, &class)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return classes, nil
}

// Update updates an existing scheduled class
func (r *ScheduledClassRepository) Update(ctx context.Context, class *models.ScheduledClass) error {
	query := `
		UPDATE scheduled_classes
		SET course_id = $1, day_of_week = $2, start_time = $3, end_time = $4, room_number = $5, instructor_name = $6
		WHERE id = $7
	`

	cmdTag, err := r.db.Exec(ctx, query,
		class.CourseID, class.DayOfWeek, class.StartTime, class.EndTime,
		class.RoomNumber, class.InstructorName, class.ID)
	if err != nil {
		return fmt.Errorf("error updating scheduled class: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrScheduledClassNotFound
	}

	return nil
}

// Delete deletes a scheduled class by ID
func (r *ScheduledClassRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM scheduled_classes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting scheduled class: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrScheduledClassNotFound
	}

	return nil
}
