package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/zhuruvl/MusicStore/models"
)

// GET /manager/albums/export-excel
func ExportAlbumsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var albums []models.Album
		if err := db.Preload("Artist").Preload("Genre").Order("title").Find(&albums).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch albums"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Albums")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{"ID", "Title", "Artist", "Genre", "Price", "AlbumArtURL"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, a := range albums {
			row := sheet.AddRow()
			row.AddCell().SetValue(a.ID)
			row.AddCell().SetValue(a.Title)
			row.AddCell().SetValue(a.Artist.Name)
			row.AddCell().SetValue(a.Genre.Name)
			row.AddCell().SetValue(a.Price)
			row.AddCell().SetValue(a.AlbumArtURL)
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=albums.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		// Write file to response
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
