package domain

import "time"

// Customer is a shipping destination, identified by its name.
type Customer struct {
	Name        string
	Address     string
	PhoneNumber string
	Email       string
	CreatedAt   time.Time
}
