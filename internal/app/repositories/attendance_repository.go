package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tandogan/registrar/internal/app/models"
	"github.com/tandogan/registrar/internal/pkg/apperrors"
	"github.com/tandogan/registrar/internal/pkg/dberrors"
)

// AttendanceRepository handles database operations for attendance records
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
	}
}

// Create creates a new attendance record.
// The unique index on (student_id, course_id, attendance_date) is the
// canonical uniqueness guard; a raced duplicate insert surfaces as the
// matching conflict error.
func (r *AttendanceRepository) Create(ctx context.Context, record *models.AttendanceRecord) error {
	query := `
		INSERT INTO attendance_records (student_id, course_id, attendance_date, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		record.StudentID, record.CourseID, record.Date, record.Status).
		Scan(&record.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_attendance_student_course_date") {
			return apperrors.ErrAttendanceAlreadyRecorded
		}
		return fmt.Errorf("error creating attendance record: %w", err)
	}

	return nil
}

// GetByID retrieves an attendance record by ID
func (r *AttendanceRepository) GetByID(ctx context.Context, id int64) (*models.AttendanceRecord, error) {
	query := `
		SELECT id, student_id, course_id, attendance_date, status
		FROM attendance_records
		WHERE id = $1
	`

	var record models.AttendanceRecord
	err := r.db.QueryRow(ctx, query, id).Scan(
		&record.ID,
		&record.StudentID,
		&record.CourseID,
		&record.Date,
		&record.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAttendanceRecordNotFound
		}
		return nil, fmt.Errorf("error retrieving attendance record: %w", err)
	}

	return &record, nil
}

// GetByStudentID retrieves all attendance records for a student
func (r *AttendanceRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.AttendanceRecord, error) {
	query := `
		SELECT id, student_id, course_id, attendance_date, status
		FROM attendance_records
		WHERE student_id = $1
		ORDER BY attendance_date
	`

	return r.queryRecords(ctx, query, studentID)
}

// GetByCourseID retrieves all attendance records for a course
func (r *AttendanceRepository) GetByCourseID(ctx context.Context, courseID int64) ([]*models.AttendanceRecord, error) {
	query := `
		SELECT id, student_id, course_id, attendance_date, status
		FROM attendance_records
		WHERE course_id = $1
		ORDER BY attendance_date
	`

	return r.queryRecords(ctx, query, courseID)
}

// GetByStudentAndCourse retrieves all attendance records for a student in a course
func (r *AttendanceRepository) GetByStudentAndCourse(ctx context.Context, studentID, courseID int64) ([]*models.AttendanceRecord, error) {
	query := `
		SELECT id, student_id, course_id, attendance_date, status
		FROM attendance_records
		WHERE student_id = $1 AND course_id = $2
		ORDER BY attendance_date
	`

	return r.queryRecords(ctx, query, studentID, courseID)
}

// GetByCourseAndDate retrieves all attendance records for a course on a date
func (r *AttendanceRepository) GetByCourseAndDate(ctx context.Context, courseID int64, date time.Time) ([]*models.AttendanceRecord, error) {
	query := `
		SELECT id, student_id, course_id, attendance_date, status
		FROM attendance_records
		WHERE course_id = $1 AND attendance_date = $2
		ORDER BY student_id
	`

	return r.queryRecords(ctx, query, courseID, date)
}

// queryRecords runs an attendance query and scans the result rows
func (r *AttendanceRepository) queryRecords(ctx context.Context, query string, args ...interface{}) ([]*models.AttendanceRecord, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.AttendanceRecord
	for rows.Next() {
		var record models.AttendanceRecord
		if err := rows.Scan(
			&record.ID,
			&record.StudentID,
			&record.CourseID,
			&record.Date,
			&record.Status,
		); err != nil {
			return nil, err
		}
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Exists checks if an attendance record already exists for the (student, course, date) key
func (r *AttendanceRepository) Exists(ctx context.Context, studentID, courseID int64, date time.Time) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM attendance_records WHERE student_id = $1 AND course_id = $2 AND attendance_date = $3)`,
		studentID, courseID, date).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking attendance existence: %w", err)
	}

	return exists, nil
}

// Update updates an existing attendance record
func (r *AttendanceRepository) Update(ctx context.Context, record *models.AttendanceRecord) error {
	query := `
		UPDATE attendance_records
		SET status = $1
		WHERE id = $2
	`

	cmdTag, err := r.db.Exec(ctx, query, record.Status, record.ID)
	if err != nil {
		return fmt.Errorf("error updating attendance record: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAttendanceRecordNotFound
	}

	return nil
}

// Delete deletes an attendance record by ID
func (r *AttendanceRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM attendance_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting attendance record: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAttendanceRecordNotFound
	}

	return nil
}
