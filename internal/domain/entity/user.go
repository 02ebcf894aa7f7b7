package entity

import "time"

// User roles.
const (
	RoleAdmin = "admin"
	RoleSales = "sales"
)

// User is an employee account for the back office.
type User struct {
	ID           string
	Email        string // unique
	PasswordHash string
	Name         string
	Role         string // RoleAdmin | RoleSales
	Status       string // "active" | "disabled"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
