package models

import "gorm.io/gorm"

// User roles.
const (
	RoleAdmin     = "admin"
	RoleDriver    = "driver"
	RolePassenger = "passenger"
)

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"unique"`
	Password string `json:"-"` // bcrypt hash, never serialized
	Phone    string `json:"phone"`
	Role     string `json:"role"` // "passenger", "driver", "admin"
}
