package models

// Course defines the course record based on the 'courses' table.
// CourseCode is unique across all courses.
type Course struct {
	ID          int64   `json:"id" db:"id"`
	CourseCode  string  `json:"courseCode" db:"course_code"`
	CourseName  string  `json:"courseName" db:"course_name"`
	Description *string `json:"description,omitempty" db:"description"`
	Credits     int     `json:"credits" db:"credits"`
}
