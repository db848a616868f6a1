package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tandogan/registrar/internal/app/models"
	"github.com/tandogan/registrar/internal/pkg/apperrors"
	"github.com/tandogan/registrar/internal/pkg/dberrors"
)

// GradeRepository handles database operations for grades
type GradeRepository struct {
	db *pgxpool.Pool
}

// NewGradeRepository creates a new grade repository
func NewGradeRepository(db *pgxpool.Pool) *GradeRepository {
	return &GradeRepository{
		db: db,
	}
}

// Create creates a new grade.
// The unique index on (student_id, course_id, assessment_type) is the
// canonical uniqueness guard; a raced duplicate insert surfaces as the
// matching conflict error.
func (r *GradeRepository) Create(ctx context.Context, grade *models.Grade) error {
	query := `
		INSERT INTO grades (student_id, course_id, assessment_type, grade_value, assessment_date, comments)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		grade.StudentID, grade.CourseID, grade.AssessmentType,
		grade.GradeValue, grade.AssessmentDate, grade.Comments).
		Scan(&grade.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_grades_student_course_assessment") {
			return apperrors.ErrGradeAlreadyExists
		}
		return fmt.Errorf("error creating grade: %w", err)
	}

	return nil
}

// GetByID retrieves a grade by ID
func (r *GradeRepository) GetByID(ctx context.Context, id int64) (*models.Grade, error) {
	query := `
		SELECT id, student_id, course_id, assessment_type, grade_value, assessment_date, comments
		FROM grades
		WHERE id = $1
	`

	var grade models.Grade
	err := r.db.QueryRow(ctx, query, id).Scan(
		&grade.ID,
		&grade.StudentID,
		&grade.CourseID,
		&grade.AssessmentType,
		&grade.GradeValue,
		&grade.AssessmentDate,
		&grade.Comments,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGradeNotFound
		}
		return nil, fmt.Errorf("error retrieving grade: %w", err)
	}

	return &grade, nil
}

// GetAll retrieves all grades
func (r *GradeRepository) GetAll(ctx context.Context) ([]*models.Grade, error) {
	query := `
		SELECT id, student_id, course_id, assessment_type, grade_value, assessment_date, comments
		FROM grades
		ORDER BY id
	`

	return r.queryGrades(ctx, query)
}

// GetByStudentID retrieves all grades for a student
func (r *GradeRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Grade, error) {
	query := `
		SELECT id, student_id, course_id, assessment_type, grade_value, assessment_date, comments
		FROM grades
		WHERE student_id = $1
		ORDER BY id
	`

	return r.queryGrades(ctx, query, studentID)
}

// GetByCourseID retrieves all grades for a course
func (r *GradeRepository) GetByCourseID(ctx context.Context, courseID int64) ([]*models.Grade, error) {
	query := `
		SELECT id, student_id, course_id, assessment_type, grade_value, assessment_date, comments
		FROM grades
		WHERE course_id = $1
		ORDER BY id
	`

	return r.queryGrades(ctx, query, courseID)
}

// GetByStudentAndCourse retrieves all grades for a student in a course
func (r *GradeRepository) GetByStudentAndCourse(ctx context.Context, studentID, courseID int64) ([]*models.Grade, error) {
	query := `
		SELECT id, student_id, course_id, assessment_type, grade_value, assessment_date, comments
		FROM grades
		WHERE student_id = $1 AND course_id = $2
		ORDER BY id
	`

	return r.queryGrades(ctx, query, studentID, courseID)
}

// queryGrades runs a grade query and scans the result rows
func (r *GradeRepository) queryGrades(ctx context.Context, query string, args ...interface{}) ([]*models.Grade, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grades []*models.Grade
	for rows.Next() {
		var grade models.Grade
		if err := rows.Scan(
			&grade.ID,
			&grade.StudentID,
			&grade.CourseID,
			&grade.AssessmentType,
			&grade.GradeValue,
			&grade.AssessmentDate,
			&grade.Comments,
		); err != nil {
			return nil, err
		}
		grades = append(grades, &grade)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return grades, nil
}

// Exists checks if a grade already exists for the (student, course, assessment type) key
func (r *GradeRepository) Exists(ctx context.Context, studentID, courseID int64, assessmentType string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM grades WHERE student_id = $1 AND course_id = $2 AND assessment_type = $3)`,
		studentID, courseID, assessmentType).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking grade existence: %w", err)
	}

	return exists, nil
}

// Update updates an existing grade
func (r *GradeRepository) Update(ctx context.Context, grade *models.Grade) error {
	query := `
		UPDATE grades
		SET grade_value = $1, assessment_date = $2, comments = $3
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		grade.GradeValue, grade.AssessmentDate, grade.Comments, grade.ID)
	if err != nil {
		return fmt.Errorf("error updating grade: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGradeNotFound
	}

	return nil
}

// Delete deletes a grade by ID
func (r *GradeRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM grades WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting grade: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGradeNotFound
	}

	return nil
}
