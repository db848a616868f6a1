package models

import "time"

// Grade defines a recorded assessment result based on the 'grades' table.
// At most one grade exists per (student, course, assessment type).
// StudentID and CourseID are weak references resolved at write time.
type Grade struct {
	ID             int64      `json:"id" db:"id"`
	StudentID      int64      `json:"studentId" db:"student_id"`
	CourseID       int64      `json:"courseId" db:"course_id"`
	AssessmentType string     `json:"assessmentType" db:"assessment_type"`
	GradeValue     string     `json:"gradeValue" db:"grade_value"`
	AssessmentDate *time.Time `json:"assessmentDate,omitempty" db:"assessment_date"`
	Comments       *string    `json:"comments,omitempty" db:"comments"`
}
