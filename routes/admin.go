package routes

import (
	"github.com/gin-gonic/gin"

	adoptionControllers "github.com/LeeCheeHoong/PetCare-Portal/controllers/adoption"
	appointmentControllers "github.com/LeeCheeHoong/PetCare-Portal/controllers/appointment"
	productcontroller "github.com/LeeCheeHoong/PetCare-Portal/controllers/product"
	"github.com/LeeCheeHoong/PetCare-Portal/middleware"
	"github.com/LeeCheeHoong/PetCare-Portal/store"
)

// SetupAdminRoutes registers the vet and store-admin endpoints. All of them
// require the shared API key.
func SetupAdminRoutes(r *gin.Engine, s *store.Stores) {
	// ──────────────── Vet Dashboard ────────────────
	vetGroup := r.Group("/api/vet")
	vetGroup.Use(middleware.ValidateAPIKey)
	{
		vetGroup.GET("/appointments", appointmentControllers.VetListAppointments(s))              // GET /api/vet/appointments
		vetGroup.GET("/appointments/:appointmentId", appointmentControllers.VetGetAppointment(s)) // GET /api/vet/appointments/:appointmentId
		vetGroup.PATCH("/appointments/:appointmentId", appointmentControllers.VetUpdateStatus(s)) // PATCH /api/vet/appointments/:appointmentId
	}

	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ──────────────── Catalog Management ────────────────
		adminGroup.POST("/products", productcontroller.CreateProduct(s))               // POST /api/admin/products
		adminGroup.PUT("/products/:productId", productcontroller.UpdateProduct(s))     // PUT /api/admin/products/:productId
		adminGroup.DELETE("/products/:productId", productcontroller.DeleteProduct(s))  // DELETE /api/admin/products/:productId
		adminGroup.GET("/products/export", productcontroller.ExportProductsToExcel(s)) // GET /api/admin/products/export

		adminGroup.POST("/categories", productcontroller.CreateCategory(s))               // POST /api/admin/categories
		adminGroup.PUT("/categories/:categoryId", productcontroller.UpdateCategory(s))    // PUT /api/admin/categories/:categoryId
		adminGroup.DELETE("/categories/:categoryId", productcontroller.DeleteCategory(s)) // DELETE /api/admin/categories/:categoryId

		// ──────────────── Adoption Management ────────────────
		adoptionGroup := adminGroup.Group("/adoption")
		{
			adoptionGroup.GET("/pets", adoptionControllers.AdminListAdoptablePets(s))                    // GET /api/admin/adoption/pets
			adoptionGroup.POST("/pets", adoptionControllers.AdminCreateAdoptablePet(s))                  // POST /api/admin/adoption/pets
			adoptionGroup.PUT("/pets/:petId", adoptionControllers.AdminUpdateAdoptablePet(s))            // PUT /api/admin/adoption/pets/:petId
			adoptionGroup.DELETE("/pets/:petId", adoptionControllers.AdminDeleteAdoptablePet(s))         // DELETE /api/admin/adoption/pets/:petId
			adoptionGroup.PATCH("/pets/:petId/status", adoptionControllers.AdminUpdateAdoptionStatus(s)) // PATCH /api/admin/adoption/pets/:petId/status
			adoptionGroup.GET("/pets/:petId/history", adoptionControllers.AdminGetPetHistory(s))         // GET /api/admin/adoption/pets/:petId/history

			adoptionGroup.GET("/applications", adoptionControllers.AdminListApplications(s))                          // GET /api/admin/adoption/applications
			adoptionGroup.GET("/applications/:applicationId", adoptionControllers.AdminGetApplication(s))             // GET /api/admin/adoption/applications/:applicationId
			adoptionGroup.PATCH("/applications/:applicationId/review", adoptionControllers.AdminReviewApplication(s)) // PATCH /api/admin/adoption/applications/:applicationId/review
			adoptionGroup.DELETE("/applications/:applicationId", adoptionControllers.AdminDeleteApplication(s))       // DELETE /api/admin/adoption/applications/:applicationId
		}
	}
}
