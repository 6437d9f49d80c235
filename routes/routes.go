package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/LeeCheeHoong/PetCare-Portal/store"
)

// SetupRoutes is the single entry-point that wires up the shop, order, care,
// and admin route groups.
func SetupRoutes(r *gin.Engine, s *store.Stores) {
	// Shop routes (cart, products, categories, checkout)
	SetupShopRoutes(r, s)

	// Order routes (checkout, lifecycle, live feed)
	SetupOrderRoutes(r, s)

	// Pet care routes (pets, appointments, adoption)
	SetupCareRoutes(r, s)

	// Vet and admin routes (API-key-protected)
	SetupAdminRoutes(r, s)
}
