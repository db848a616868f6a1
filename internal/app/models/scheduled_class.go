package models

// ScheduledClass defines a timetable entry based on the 'scheduled_classes' table.
// CourseID is a weak reference: it is resolved at write time but carries no
// storage-level constraint, so it may dangle after a course delete.
type ScheduledClass struct {
	ID             int64   `json:"id" db:"id"`
	CourseID       int64   `json:"courseId" db:"course_id"`
	DayOfWeek      string  `json:"dayOfWeek" db:"day_of_week"`
	StartTime      string  `json:"startTime" db:"start_time"`
	EndTime        string  `json:"endTime" db:"end_time"`
	RoomNumber     *string `json:"roomNumber,omitempty" db:"room_number"`
	InstructorName *string `json:"instructorName,omitempty" db:"instructor_name"`
}
