package dto

// CreateAttendanceRequest represents attendance recording data.
// Date uses the YYYY-MM-DD form.
type CreateAttendanceRequest struct {
	StudentID int64  `json:"studentId" binding:"required,gt=0"`
	CourseID  int64  `json:"courseId" binding:"required,gt=0"`
	Date      string `json:"date" binding:"required,datetime=2006-01-02"`
	Status    string `json:"status" binding:"required,oneof=PRESENT ABSENT LATE EXCUSED"`
}

// UpdateAttendanceRequest carries an attendance update.
// Only the status of an existing record is patchable.
type UpdateAttendanceRequest struct {
	Status string `json:"status" binding:"required,oneof=PRESENT ABSENT LATE EXCUSED"`
}

// AttendanceResponse represents an attendance record with denormalized
// student and course display fields. Display fields are empty when a
// referenced record no longer exists.
type AttendanceResponse struct {
	ID          int64  `json:"id"`
	StudentID   int64  `json:"studentId"`
	StudentName string `json:"studentName,omitempty"`
	CourseID    int64  `json:"courseId"`
	CourseCode  string `json:"courseCode,omitempty"`
	CourseName  string `json:"courseName,omitempty"`
	Date        string `json:"date"`
	Status      string `json:"status"`
}
