package models

import (
	"gorm.io/gorm"

	"github.com/zhuruvl/MusicStore/logger"
)

// SeedCatalog loads the sample store catalog on a fresh database.
// It is a no-op when genres already exist.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Genre{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	logger.Log.Info("Empty catalog, seeding sample data")

	genres := []Genre{
		{Name: "Rock"}, {Name: "Jazz"}, {Name: "Metal"}, {Name: "Alternative"},
		{Name: "Disco"}, {Name: "Blues"}, {Name: "Latin"}, {Name: "Reggae"},
		{Name: "Pop"}, {Name: "Classical"},
	}
	if err := db.Create(&genres).Error; err != nil {
		return err
	}

	artists := []Artist{
		{Name: "AC/DC"}, {Name: "Miles Davis"}, {Name: "Metallica"},
		{Name: "Nirvana"}, {Name: "Donna Summer"}, {Name: "B.B. King"},
		{Name: "Buena Vista Social Club"}, {Name: "Bob Marley"},
		{Name: "Michael Jackson"}, {Name: "Ludwig van Beethoven"},
	}
	if err := db.Create(&artists).Error; err != nil {
		return err
	}

	byName := func(gs []Genre, name string) uint {
		for _, g := range gs {
			if g.Name == name {
				return g.ID
			}
		}
		return 0
	}

	albums := []Album{
		{Title: "Back in Black", ArtistID: artists[0].ID, GenreID: byName(genres, "Rock"), Price: 8.99, AlbumArtURL: "/images/placeholder.png"},
		{Title: "Highway to Hell", ArtistID: artists[0].ID, GenreID: byName(genres, "Rock"), Price: 8.99, AlbumArtURL: "/images/placeholder.png"},
		{Title: "Kind of Blue", ArtistID: artists[1].ID, GenreID: byName(genres, "Jazz"), Price: 9.99, AlbumArtURL: "/images/placeholder.png"},
		{Title: "Master of Puppets", ArtistID: artists[2].ID, GenreID: byName(genres, "Metal"), Price: 9.99, AlbumArtURL: "/images/placeholder.png"},
		{Title: "Nevermind", ArtistID: artists[3].ID, GenreID: byName(genres, "Alternative"), Price: 10.99, AlbumArtURL: "/images/placeholder.png"},
		{Title: "Bad Girls", ArtistID: artists[4].ID, GenreID: byName(genres, "Disco"), Price: 7.99, AlbumArtURL: "/images/placeholder.png"},
		{Title: "Live at the Regal", ArtistID: artists[5].ID, GenreID: byName(genres, "Blues"), Price: 8.99, AlbumArtURL: "/images/placeholder.png"},
		{Title: "Buena Vista Social Club", ArtistID: artists[6].ID, GenreID: byName(genres, "Latin"), Price: 9.99, AlbumArtURL: "/images/placeholder.png"},
		{Title: "Legend", ArtistID: artists[7].ID, GenreID: byName(genres, "Reggae"), Price: 9.99, AlbumArtURL: "/images/placeholder.png"},
		{Title: "Thriller", ArtistID: artists[8].ID, GenreID: byName(genres, "Pop"), Price: 10.99, AlbumArtURL: "/images/placeholder.png"},
		{Title: "Symphony No. 9", ArtistID: artists[9].ID, GenreID: byName(genres, "Classical"), Price: 6.99, AlbumArtURL: "/images/placeholder.png"},
	}
	if err := db.Create(&albums).Error; err != nil {
		return err
	}

	logger.Log.Infow("Sample catalog seeded", "genres", len(genres), "artists", len(artists), "albums", len(albums))
	return nil
}
