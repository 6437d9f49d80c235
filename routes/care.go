package routes

import (
	"github.com/gin-gonic/gin"

	adoptionControllers "github.com/LeeCheeHoong/PetCare-Portal/controllers/adoption"
	appointmentControllers "github.com/LeeCheeHoong/PetCare-Portal/controllers/appointment"
	petControllers "github.com/LeeCheeHoong/PetCare-Portal/controllers/pet"
	"github.com/LeeCheeHoong/PetCare-Portal/middleware"
	"github.com/LeeCheeHoong/PetCare-Portal/store"
)

// SetupCareRoutes registers the pet care endpoints: owned pets, vet
// appointments, and the public adoption listing.
func SetupCareRoutes(r *gin.Engine, s *store.Stores) {
	api := r.Group("/api")
	api.Use(middleware.Identity)
	{
		// ──────────────── My Pets ────────────────
		petGroup := api.Group("/pets")
		{
			petGroup.GET("/my-pets", petControllers.GetMyPets(s))   // GET /api/pets/my-pets
			petGroup.POST("", petControllers.CreatePet(s))          // POST /api/pets
			petGroup.GET("/:petId", petControllers.GetPet(s))       // GET /api/pets/:petId
			petGroup.PUT("/:petId", petControllers.UpdatePet(s))    // PUT /api/pets/:petId
			petGroup.DELETE("/:petId", petControllers.DeletePet(s)) // DELETE /api/pets/:petId
		}

		// ──────────────── Appointments ────────────────
		appointmentGroup := api.Group("/appointments")
		{
			appointmentGroup.GET("/my-appointments", appointmentControllers.GetMyAppointments(s))                 // GET /api/appointments/my-appointments
			appointmentGroup.POST("", appointmentControllers.BookAppointment(s))                                  // POST /api/appointments
			appointmentGroup.PATCH("/:appointmentId/cancel", appointmentControllers.CancelAppointment(s))         // PATCH /api/appointments/:appointmentId/cancel
			appointmentGroup.PATCH("/:appointmentId/reschedule", appointmentControllers.RescheduleAppointment(s)) // PATCH /api/appointments/:appointmentId/reschedule
		}

		// ──────────────── Adoption ────────────────
		adoptionGroup := api.Group("/adoption")
		{
			adoptionGroup.GET("/pets", adoptionControllers.ListAdoptablePets(s))              // GET /api/adoption/pets
			adoptionGroup.GET("/pets/:petId", adoptionControllers.GetAdoptablePet(s))         // GET /api/adoption/pets/:petId
			adoptionGroup.POST("/pets/:petId/apply", adoptionControllers.ApplyForAdoption(s)) // POST /api/adoption/pets/:petId/apply
		}
	}
}
