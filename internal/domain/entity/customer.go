package entity

import "time"

// Customer is an account holder with order history.
type Customer struct {
	ID        string
	Name      string
	Email     string // unique
	Phone     string
	Company   string
	Address   string
	CreatedAt time.Time
}
