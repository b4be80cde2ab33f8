package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/zhuruvl/MusicStore/models"
)

type AlbumInput struct {
	Title       string  `json:"title" binding:"required"`
	ArtistID    uint    `json:"artist_id" binding:"required"`
	GenreID     uint    `json:"genre_id" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	AlbumArtURL string  `json:"album_art_url"`
}

// GET /manager/albums
func GetAlbums(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var albums []models.Album
		if err := db.Preload("Artist").Preload("Genre").Order("title").Find(&albums).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch albums"})
			return
		}
		c.JSON(http.StatusOK, albums)
	}
}

// POST /manager/albums
func CreateAlbum(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AlbumInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := validateReferences(db, input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		album := models.Album{
			Title:       input.Title,
			ArtistID:    input.ArtistID,
			GenreID:     input.GenreID,
			Price:       input.Price,
			AlbumArtURL: input.AlbumArtURL,
		}
		if err := db.Create(&album).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create album"})
			return
		}

		c.JSON(http.StatusCreated, album)
	}
}

// PUT /manager/albums/:id
func UpdateAlbum(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var album models.Album
		if err := db.First(&album, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Album not found"})
			return
		}

		var input AlbumInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := validateReferences(db, input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		album.Title = input.Title
		album.ArtistID = input.ArtistID
		album.GenreID = input.GenreID
		album.Price = input.Price
		album.AlbumArtURL = input.AlbumArtURL

		if err := db.Save(&album).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update album"})
			return
		}

		c.JSON(http.StatusOK, album)
	}
}

// DELETE /manager/albums/:id
func DeleteAlbum(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.Album{}, c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete album"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Album not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Album deleted"})
	}
}

func validateReferences(db *gorm.DB, input AlbumInput) error {
	var genre models.Genre
	if err := db.First(&genre, input.GenreID).Error; err != nil {
		return errInvalidGenre
	}
	var artist models.Artist
	if err := db.First(&artist, input.ArtistID).Error; err != nil {
		return errInvalidArtist
	}
	return nil
}
