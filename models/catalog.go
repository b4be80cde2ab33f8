package models

type Genre struct {
	ID     uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name   string  `gorm:"uniqueIndex;not null" json:"name"`
	Albums []Album `gorm:"foreignKey:GenreID" json:"albums,omitempty"`
}

type Artist struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"not null" json:"name"`
}

type Album struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string  `gorm:"not null" json:"title"`
	ArtistID    uint    `gorm:"index" json:"artist_id"`
	GenreID     uint    `gorm:"index" json:"genre_id"`
	Price       float64 `gorm:"not null" json:"price"` // Current catalog price; frozen into OrderDetail at checkout
	AlbumArtURL string  `json:"album_art_url"`
	Artist      Artist  `gorm:"foreignKey:ArtistID" json:"artist,omitempty"`
	Genre       Genre   `gorm:"foreignKey:GenreID" json:"genre,omitempty"`
}
