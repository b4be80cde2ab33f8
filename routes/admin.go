package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminController "github.com/zhuruvl/MusicStore/controllers/admin"
	"github.com/zhuruvl/MusicStore/middleware"
)

// SetupManagerRoutes registers the "/manager/*" store-manager endpoints.
// Requires API-key middleware.
func SetupManagerRoutes(r *gin.Engine, db *gorm.DB) {
	managerGroup := r.Group("/manager")
	managerGroup.Use(middleware.ValidateAPIKey)
	{
		albumAdmin := managerGroup.Group("/albums")
		{
			albumAdmin.GET("", adminController.GetAlbums(db))
			albumAdmin.POST("", adminController.CreateAlbum(db))
			albumAdmin.PUT("/:id", adminController.UpdateAlbum(db))
			albumAdmin.DELETE("/:id", adminController.DeleteAlbum(db))
			albumAdmin.GET("/export-excel", adminController.ExportAlbumsToExcel(db))
		}
	}
}
