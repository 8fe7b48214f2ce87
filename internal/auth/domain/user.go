package domain

import "time"

// Role is the closed set of account roles. Keeping it a typed string means a
// third role cannot slip past a comparison unnoticed.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// User is an account that can authenticate against the service.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"` // Never return password hash in JSON
	Role      Role      `json:"role" gorm:"default:staff"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
