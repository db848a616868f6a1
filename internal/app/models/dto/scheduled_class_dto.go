package dto

// CreateScheduledClassRequest represents timetable entry creation data
type CreateScheduledClassRequest struct {
	CourseID       int64   `json:"courseId" binding:"required,gt=0"`
	DayOfWeek      string  `json:"dayOfWeek" binding:"required,dayofweek"`
	StartTime      string  `json:"startTime" binding:"required,hhmm"`
	EndTime        string  `json:"endTime" binding:"required,hhmm"`
	RoomNumber     *string `json:"roomNumber,omitempty"`
	InstructorName *string `json:"instructorName,omitempty"`
}

// UpdateScheduledClassRequest carries a partial timetable entry update.
// A supplied courseId is re-resolved before the update is applied.
type UpdateScheduledClassRequest struct {
	CourseID       *int64  `json:"courseId,omitempty" binding:"omitempty,gt=0"`
	DayOfWeek      *string `json:"dayOfWeek,omitempty" binding:"omitempty,dayofweek"`
	StartTime      *string `json:"startTime,omitempty" binding:"omitempty,hhmm"`
	EndTime        *string `json:"endTime,omitempty" binding:"omitempty,hhmm"`
	RoomNumber     *string `json:"roomNumber,omitempty"`
	InstructorName *string `json:"instructorName,omitempty"`
}

// ScheduledClassResponse represents a timetable entry with denormalized
// course display fields. Display fields are empty when the referenced
// course no longer exists.
type ScheduledClassResponse struct {
	ID             int64   `json:"id"`
	CourseID       int64   `json:"courseId"`
	CourseCode     string  `json:"courseCode,omitempty"`
	CourseName     string  `json:"courseName,omitempty"`
	DayOfWeek      string  `json:"dayOfWeek"`
	StartTime      string  `json:"startTime"`
	EndTime        string  `json:"endTime"`
	RoomNumber     *string `json:"roomNumber,omitempty"`
	InstructorName *string `json:"instructorName,omitempty"`
}
