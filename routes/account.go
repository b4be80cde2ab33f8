package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	accountControllers "github.com/zhuruvl/MusicStore/controllers/account"
	"github.com/zhuruvl/MusicStore/middleware"
)

// SetupAccountRoutes registers the "/account/*" endpoints. Requires JWT middleware.
func SetupAccountRoutes(r *gin.Engine, db *gorm.DB) {
	accountGroup := r.Group("/account")
	accountGroup.Use(middleware.ValidateToken)
	{
		accountGroup.GET("/", accountControllers.GetProfile(db))                     // GET /account
		accountGroup.PUT("/", accountControllers.UpdateProfile(db))                  // PUT /account
		accountGroup.POST("/change-password", accountControllers.ChangePassword(db)) // POST /account/change-password
		accountGroup.POST("/two-factor", accountControllers.SetTwoFactor(db))        // POST /account/two-factor
	}
}
