package models

import "time"

// Role gates access to admin-only operations.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

type User struct {
	ID           string
	UserName     string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}
