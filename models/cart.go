package models

import "time"

// CartItem is one (album, quantity) line in a session cart. Rows are scoped
// by CartID, the opaque token carried in the Session cookie. A row never
// holds Count <= 0; it is deleted instead.
type CartItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CartID      string    `gorm:"index;not null" json:"cart_id"`
	AlbumID     uint      `gorm:"index" json:"album_id"`
	Count       int       `gorm:"not null" json:"count"`
	DateCreated time.Time `json:"date_created"`
	Album       Album     `gorm:"foreignKey:AlbumID" json:"album,omitempty"`
}
