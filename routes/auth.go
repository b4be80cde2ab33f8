package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/zhuruvl/MusicStore/auth"
	accountControllers "github.com/zhuruvl/MusicStore/controllers/account"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", accountControllers.Register(db))
		authGroup.POST("/login", accountControllers.Login(db))

		// External login via Google (Firebase ID token)
		authGroup.POST("/google", auth.GoogleLoginHandler(db))
	}
}
