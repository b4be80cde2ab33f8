package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	storeControllers "github.com/zhuruvl/MusicStore/controllers/store"
)

// SetupStoreRoutes registers the public "/store/*" catalog endpoints.
func SetupStoreRoutes(r *gin.Engine, db *gorm.DB) {
	storeGroup := r.Group("/store")
	{
		storeGroup.GET("/", storeControllers.GetGenres(db))                 // GET /store/
		storeGroup.GET("/browse", storeControllers.Browse(db))              // GET /store/browse?genre=Disco
		storeGroup.GET("/albums/:id", storeControllers.GetAlbumDetails(db)) // GET /store/albums/:id
	}
}
