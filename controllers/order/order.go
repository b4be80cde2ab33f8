package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zhuruvl/MusicStore/store"
)

// GET /orders
func GetMyOrders(orders store.OrderRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetString("username")
		if username == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		list, err := orders.ByUsername(c.Request.Context(), username)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, list)
	}
}
