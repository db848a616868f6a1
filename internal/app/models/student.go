package models

// Student defines the student record based on the 'students' table.
// Email and StudentIDNumber are each unique across all students.
type Student struct {
	ID              int64  `json:"id" db:"id"`
	FirstName       string `json:"firstName" db:"first_name"`
	LastName        string `json:"lastName" db:"last_name"`
	Email           string `json:"email" db:"email"`
	StudentIDNumber string `json:"studentIdNumber" db:"student_id_number"`
}

// FullName returns the student's display name
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
