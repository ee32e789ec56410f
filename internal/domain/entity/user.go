package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin         = "admin"
	RoleMantenimiento = "mantenimiento"
)

// User usuario del panel.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt
	Role         string
	Active       bool
	CreatedAt    time.Time
}
