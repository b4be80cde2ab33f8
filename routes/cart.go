package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/zhuruvl/MusicStore/controllers/cart"
	"github.com/zhuruvl/MusicStore/middleware"
	"github.com/zhuruvl/MusicStore/store"
)

// SetupCartRoutes registers the "/cart/*" endpoints. The cart is keyed by the
// Session cookie, minted on first contact by the ResolveCart middleware.
func SetupCartRoutes(r *gin.Engine, carts store.CartRepository) {
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.ResolveCart)
	{
		cartGroup.GET("/", cartControllers.GetCart(carts))                   // GET /cart
		cartGroup.GET("/summary", cartControllers.GetCartSummary(carts))     // GET /cart/summary
		cartGroup.POST("/add/:album_id", cartControllers.AddToCart(carts))   // POST /cart/add/:album_id
		cartGroup.POST("/remove/:id", cartControllers.RemoveFromCart(carts)) // POST /cart/remove/:id
	}
}
