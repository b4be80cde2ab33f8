package models

import "time"

type User struct {
	ID               string  `gorm:"primaryKey" json:"id"`
	Username         string  `gorm:"uniqueIndex;not null" json:"username"`
	Email            string  `gorm:"unique;not null" json:"email"`
	PasswordHash     string  `json:"-"`
	Provider         string  `json:"provider"` // "local" or "google"
	Picture          string  `json:"picture"`
	Phone            string  `json:"phone"`
	TwoFactorEnabled bool    `json:"two_factor_enabled"`
	Address          Address `gorm:"embedded" json:"address"`
	CreatedAt        time.Time
}

// Address model embedded in User
type Address struct {
	Country    string `json:"country"`
	State      string `json:"state"`
	City       string `json:"city"`
	Street     string `json:"street"`
	PostalCode string `json:"postal_code"`
}
