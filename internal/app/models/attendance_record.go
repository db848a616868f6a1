package models

import "time"

// AttendanceStatus enumerates the accepted attendance outcomes
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "PRESENT"
	AttendanceAbsent  AttendanceStatus = "ABSENT"
	AttendanceLate    AttendanceStatus = "LATE"
	AttendanceExcused AttendanceStatus = "EXCUSED"
)

// ParseAttendanceStatus maps a request status string onto a known status
func ParseAttendanceStatus(value string) (AttendanceStatus, bool) {
	switch AttendanceStatus(value) {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceExcused:
		return AttendanceStatus(value), true
	default:
		return "", false
	}
}

// AttendanceRecord defines an attendance entry based on the 'attendance_records' table.
// At most one record exists per (student, course, date).
// StudentID and CourseID are weak references resolved at write time.
type AttendanceRecord struct {
	ID        int64            `json:"id" db:"id"`
	StudentID int64            `json:"studentId" db:"student_id"`
	CourseID  int64            `json:"courseId" db:"course_id"`
	Date      time.Time        `json:"date" db:"attendance_date"`
	Status    AttendanceStatus `json:"status" db:"status"`
}
