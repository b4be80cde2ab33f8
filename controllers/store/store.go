package storeControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/zhuruvl/MusicStore/models"
)

// GET /store
func GetGenres(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var genres []models.Genre
		if err := db.Order("name").Find(&genres).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch genres"})
			return
		}
		c.JSON(http.StatusOK, genres)
	}
}

// GET /store/browse?genre=Disco
func Browse(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Query("genre")
		if strings.TrimSpace(name) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "genre is required"})
			return
		}

		var genre models.Genre
		if err := db.Where("name = ?", name).First(&genre).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Genre not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch genre"})
			}
			return
		}

		var albums []models.Album
		if err := db.Preload("Artist").Where("genre_id = ?", genre.ID).Find(&albums).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch albums"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"genre": genre.Name, "albums": albums})
	}
}

// GET /store/albums/:id
func GetAlbumDetails(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid album ID"})
			return
		}

		var album models.Album
		if err := db.Preload("Artist").Preload("Genre").First(&album, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Album not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch album"})
			}
			return
		}

		c.JSON(http.StatusOK, album)
	}
}
