package dto

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	CourseCode  string  `json:"courseCode" binding:"required"`
	CourseName  string  `json:"courseName" binding:"required"`
	Description *string `json:"description,omitempty"`
	Credits     *int    `json:"credits" binding:"required,min=0"`
}

// UpdateCourseRequest carries a partial course update.
// Only supplied fields are applied; omitted fields keep their stored value.
type UpdateCourseRequest struct {
	CourseCode  *string `json:"courseCode,omitempty" binding:"omitempty,min=1"`
	CourseName  *string `json:"courseName,omitempty" binding:"omitempty,min=1"`
	Description *string `json:"description,omitempty"`
	Credits     *int    `json:"credits,omitempty" binding:"omitempty,min=0"`
}

// CourseResponse represents a course record in API responses
type CourseResponse struct {
	ID          int64   `json:"id"`
	CourseCode  string  `json:"courseCode"`
	CourseName  string  `json:"courseName"`
	Description *string `json:"description,omitempty"`
	Credits     int     `json:"credits"`
}
