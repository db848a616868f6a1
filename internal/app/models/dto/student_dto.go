package dto

// CreateStudentRequest represents student registration data
type CreateStudentRequest struct {
	FirstName       string `json:"firstName" binding:"required"`
	LastName        string `json:"lastName" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	StudentIDNumber string `json:"studentIdNumber" binding:"required"`
}

// UpdateStudentRequest carries a partial student update.
// Only supplied fields are applied; omitted fields keep their stored value.
type UpdateStudentRequest struct {
	FirstName       *string `json:"firstName,omitempty" binding:"omitempty,min=1"`
	LastName        *string `json:"lastName,omitempty" binding:"omitempty,min=1"`
	Email           *string `json:"email,omitempty" binding:"omitempty,email"`
	StudentIDNumber *string `json:"studentIdNumber,omitempty" binding:"omitempty,min=1"`
}

// StudentResponse represents a student record in API responses
type StudentResponse struct {
	ID              int64  `json:"id"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	StudentIDNumber string `json:"studentIdNumber"`
}
