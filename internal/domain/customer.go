package domain

import "time"

type Customer struct {
	ID          string
	Name        string
	PhoneNumber string
	Email       *string
	CreatedAt   time.Time
}

type Address struct {
	ID         int
	CustomerID string
	Street     string
	City       string
	State      *string
	PostalCode *string
	IsDefault  bool
	CreatedAt  time.Time
}
