package models

import (
	"time"
)

// RoleType defines the account role
type RoleType string

const (
	RoleAdmin   RoleType = "ADMIN"
	RoleStudent RoleType = "STUDENT"
)

// ParseRoleType maps a request role string onto a known role.
// An empty value defaults to STUDENT; anything else must match exactly.
func ParseRoleType(value string) (RoleType, bool) {
	switch RoleType(value) {
	case "":
		return RoleStudent, true
	case RoleAdmin:
		return RoleAdmin, true
	case RoleStudent:
		return RoleStudent, true
	default:
		return "", false
	}
}

// User defines the account model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Username  string    `json:"username" db:"username" example:"jane.doe@school.edu"`
	Password  string    `json:"-" db:"password"`
	Role      RoleType  `json:"role" db:"role" example:"STUDENT"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
}
