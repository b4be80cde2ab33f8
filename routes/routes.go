package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/zhuruvl/MusicStore/store"
)

// SetupRoutes is the single entry point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// One GORM-backed store serves both repository interfaces
	repo := store.NewGormStore(db)

	// Public auth routes (register, login, Google)
	SetupAuthRoutes(r, db)

	// Public catalog browsing
	SetupStoreRoutes(r, db)

	// Session-cookie shopping cart
	SetupCartRoutes(r, repo)

	// Checkout + order history (JWT-protected)
	SetupCheckoutRoutes(r, repo)
	SetupOrderRoutes(r, repo)

	// Account management (JWT-protected)
	SetupAccountRoutes(r, db)

	// Store manager (API-key-protected)
	SetupManagerRoutes(r, db)
}
