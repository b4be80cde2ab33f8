package models

import "time"

type Order struct {
	ID         uint          `gorm:"primaryKey" json:"id"`
	Username   string        `gorm:"index;not null" json:"username"`
	FirstName  string        `json:"first_name"`
	LastName   string        `json:"last_name"`
	Address    string        `json:"address"`
	City       string        `json:"city"`
	State      string        `json:"state"`
	PostalCode string        `json:"postal_code"`
	Country    string        `json:"country"`
	Phone      string        `json:"phone"`
	Email      string        `json:"email"`
	Total      float64       `json:"total"` // Computed at checkout from cart lines, never client-supplied
	OrderDate  time.Time     `json:"order_date"`
	Details    []OrderDetail `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"details"`
}

// OrderDetail freezes one cart line at checkout time. UnitPrice is the album
// price at the moment of purchase, copied rather than referenced, so later
// catalog price changes never affect placed orders.
type OrderDetail struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"index" json:"order_id"`
	AlbumID   uint    `json:"album_id"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}
