package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/LeeCheeHoong/PetCare-Portal/controllers/order"
	"github.com/LeeCheeHoong/PetCare-Portal/middleware"
	"github.com/LeeCheeHoong/PetCare-Portal/store"
)

// SetupOrderRoutes registers order creation and lifecycle endpoints.
func SetupOrderRoutes(r *gin.Engine, s *store.Stores) {
	api := r.Group("/api")
	api.Use(middleware.Identity)
	{
		orderGroup := api.Group("/orders")
		{
			orderGroup.POST("", orderControllers.CreateOrder(s))          // POST /api/orders
			orderGroup.POST("/checkout", orderControllers.Checkout(s))    // POST /api/orders/checkout
			orderGroup.GET("", orderControllers.ListOrders(s))            // GET /api/orders
			orderGroup.GET("/ws", orderControllers.OrderWebSocketHandler) // GET /api/orders/ws
			orderGroup.GET("/:orderId", orderControllers.GetOrder(s))     // GET /api/orders/:orderId

			orderGroup.POST("/:orderId/cancel", orderControllers.CancelOrder(s))        // POST /api/orders/:orderId/cancel
			orderGroup.POST("/:orderId/return", orderControllers.RequestOrderReturn(s)) // POST /api/orders/:orderId/return
			orderGroup.PATCH("/:orderId/status", orderControllers.UpdateOrderStatus(s)) // PATCH /api/orders/:orderId/status
			orderGroup.PATCH("/:orderId/ship", orderControllers.ShipOrder(s))           // PATCH /api/orders/:orderId/ship
		}
	}
}
