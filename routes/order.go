package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/zhuruvl/MusicStore/controllers/order"
	"github.com/zhuruvl/MusicStore/middleware"
	"github.com/zhuruvl/MusicStore/store"
)

func SetupOrderRoutes(r *gin.Engine, orders store.OrderRepository) {
	ordersGroup := r.Group("/orders")
	{
		// websocket endpoint for real-time order updates (store manager dashboard)
		ordersGroup.GET("/ws", orderControllers.OrderWebSocketHandler)

		// Order history for the signed-in user
		ordersGroup.GET("/", middleware.ValidateToken, orderControllers.GetMyOrders(orders))
	}
}
