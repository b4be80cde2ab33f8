package routes

import (
	"github.com/gin-gonic/gin"

	checkoutControllers "github.com/zhuruvl/MusicStore/controllers/checkout"
	"github.com/zhuruvl/MusicStore/middleware"
	"github.com/zhuruvl/MusicStore/store"
)

// SetupCheckoutRoutes registers the "/checkout/*" endpoints. Checkout needs
// both a signed-in user (for the order's username) and the session cart.
func SetupCheckoutRoutes(r *gin.Engine, repo *store.GormStore) {
	checkoutGroup := r.Group("/checkout")
	checkoutGroup.Use(middleware.ValidateToken, middleware.ResolveCart)
	{
		checkoutGroup.POST("/", checkoutControllers.PlaceOrder(repo, repo))    // POST /checkout
		checkoutGroup.GET("/complete/:id", checkoutControllers.Complete(repo)) // GET /checkout/complete/:id
	}
}
