package model

import "time"

// Tariff is the subscription plan attached to an account
type Tariff struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"` // whole roubles per month
	Description string `json:"description,omitempty"`
}

// Account represents a subscriber
type Account struct {
	ID              string    `json:"id"`
	Phone           string    `json:"phone"`
	PasswordHash    string    `json:"-"` // Never serialized
	Balance         int64     `json:"balance"`
	Tariff          Tariff    `json:"tariff"`
	NextPaymentDate time.Time `json:"nextPaymentDate"`
	IsActive        bool      `json:"isActive"`
}
