package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/LeeCheeHoong/PetCare-Portal/controllers/cart"
	checkoutControllers "github.com/LeeCheeHoong/PetCare-Portal/controllers/checkout"
	productcontroller "github.com/LeeCheeHoong/PetCare-Portal/controllers/product"
	"github.com/LeeCheeHoong/PetCare-Portal/middleware"
	"github.com/LeeCheeHoong/PetCare-Portal/store"
)

// SetupShopRoutes registers the storefront endpoints under /api.
func SetupShopRoutes(r *gin.Engine, s *store.Stores) {
	api := r.Group("/api")
	api.Use(middleware.Identity)
	{
		// ──────────────── Shopping Cart ────────────────
		cartGroup := api.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart(s))                         // GET /api/cart
			cartGroup.DELETE("", cartControllers.ClearCart(s))                    // DELETE /api/cart
			cartGroup.POST("/items", cartControllers.AddToCart(s))                // POST /api/cart/items
			cartGroup.PATCH("/items/:itemId", cartControllers.UpdateCartItem(s))  // PATCH /api/cart/items/:itemId
			cartGroup.DELETE("/items/:itemId", cartControllers.RemoveCartItem(s)) // DELETE /api/cart/items/:itemId
		}

		// ──────────────── Browse Products ────────────────
		api.GET("/products", productcontroller.GetAllProducts(s))                                 // GET /api/products
		api.GET("/products/:productId", productcontroller.GetProductByID(s))                      // GET /api/products/:productId
		api.GET("/products/:productId/availability", productcontroller.GetProductAvailability(s)) // GET /api/products/:productId/availability

		// ──────────────── Categories ────────────────
		api.GET("/categories", productcontroller.GetAllCategories(s))            // GET /api/categories
		api.GET("/categories/:categoryId", productcontroller.GetCategoryByID(s)) // GET /api/categories/:categoryId

		// ──────────────── Checkout ────────────────
		api.POST("/shipping/validate", checkoutControllers.ValidateShipping())          // POST /api/shipping/validate
		api.POST("/shipping/calculate", checkoutControllers.CalculateShippingHandler()) // POST /api/shipping/calculate
		api.GET("/payment-methods", checkoutControllers.GetPaymentMethods(s))           // GET /api/payment-methods
		api.POST("/payment-methods", checkoutControllers.AddPaymentMethodHandler(s))    // POST /api/payment-methods
	}
}
