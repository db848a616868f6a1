package dto

// CreateGradeRequest represents grade creation data.
// AssessmentDate uses the YYYY-MM-DD form when supplied.
type CreateGradeRequest struct {
	StudentID      int64   `json:"studentId" binding:"required,gt=0"`
	CourseID       int64   `json:"courseId" binding:"required,gt=0"`
	AssessmentType string  `json:"assessmentType" binding:"required"`
	GradeValue     string  `json:"gradeValue" binding:"required"`
	AssessmentDate *string `json:"assessmentDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Comments       *string `json:"comments,omitempty"`
}

// UpdateGradeRequest carries a partial grade update.
// Only the assessment outcome fields are patchable; the student, course and
// assessment type of an existing grade never change.
type UpdateGradeRequest struct {
	GradeValue     *string `json:"gradeValue,omitempty" binding:"omitempty,min=1"`
	AssessmentDate *string `json:"assessmentDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Comments       *string `json:"comments,omitempty"`
}

// GradeResponse represents a grade with denormalized student and course
// display fields. Display fields are empty when a referenced record no
// longer exists.
type GradeResponse struct {
	ID             int64   `json:"id"`
	StudentID      int64   `json:"studentId"`
	StudentName    string  `json:"studentName,omitempty"`
	CourseID       int64   `json:"courseId"`
	CourseCode     string  `json:"courseCode,omitempty"`
	CourseName     string  `json:"courseName,omitempty"`
	AssessmentType string  `json:"assessmentType"`
	GradeValue     string  `json:"gradeValue"`
	AssessmentDate *string `json:"assessmentDate,omitempty"`
	Comments       *string `json:"comments,omitempty"`
}
