package appointmentControllers

import (
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/LeeCheeHoong/PetCare-Portal/apierr"
	"github.com/LeeCheeHoong/PetCare-Portal/middleware"
	"github.com/LeeCheeHoong/PetCare-Portal/models"
	"github.com/LeeCheeHoong/PetCare-Portal/store"
)

type BookAppointmentInput struct {
	PetID               string                 `json:"petId" binding:"required"`
	AppointmentDateTime string                 `json:"appointmentDateTime" binding:"required"`
	Duration            int                    `json:"duration" binding:"required,min=15,max=480"`
	AppointmentType     models.AppointmentType `json:"appointmentType" binding:"required"`
	Reason              string                 `json:"reason" binding:"required,max=500"`
	Notes               string                 `json:"notes" binding:"max=1000"`
}

type RescheduleAppointmentInput struct {
	AppointmentDateTime string `json:"appointmentDateTime" binding:"required"`
}

// ---------- Core Logic ----------

// Book verifies pet ownership, parses the requested slot, and inserts the
// appointment. The availability check and the insert are one atomic store
// operation so two racing requests cannot book the same slot.
func Book(s *store.Stores, userID string, input BookAppointmentInput) (models.Appointment, error) {
	pet, ok := s.Pets.Get(input.PetID)
	if !ok {
		return models.Appointment{}, apierr.NotFound("Pet with id '%s' not found", input.PetID)
	}
	if pet.OwnerID != userID {
		return models.Appointment{}, apierr.Forbidden("You don't have permission to access this pet")
	}

	start, err := models.ParseTime(input.AppointmentDateTime)
	if err != nil {
		return models.Appointment{}, apierr.InvalidRequest(
			"Invalid datetime format. Use ISO format (e.g., 2024-01-15T14:30:00Z)")
	}

	now := time.Now().UTC()
	appointment := models.Appointment{
		ID:                  models.NewID("appt"),
		PetID:               pet.ID,
		Pet:                 pet,
		OwnerID:             userID,
		OwnerName:           "User",
		AppointmentDateTime: start,
		Duration:            input.Duration,
		Status:              models.AppointmentStatusScheduled,
		AppointmentType:     input.AppointmentType,
		Reason:              input.Reason,
		Notes:               input.Notes,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if !s.Appointments.Book(appointment) {
		return models.Appointment{}, apierr.Conflict(
			"This time slot is already booked. Please choose another time.")
	}
	return appointment, nil
}

func getOwnedAppointment(s *store.Stores, appointmentID, userID string) (models.Appointment, error) {
	appointment, ok := s.Appointments.Get(appointmentID)
	if !ok {
		return models.Appointment{}, apierr.NotFound("Appointment with id '%s' not found", appointmentID)
	}
	if appointment.OwnerID != userID {
		return models.Appointment{}, apierr.Forbidden("You don't have permission to access this appointment")
	}
	return appointment, nil
}

func Cancel(s *store.Stores, userID, appointmentID string) (models.Appointment, error) {
	appointment, err := getOwnedAppointment(s, appointmentID, userID)
	if err != nil {
		return models.Appointment{}, err
	}

	if appointment.Status == models.AppointmentStatusCompleted || appointment.Status == models.AppointmentStatusCancelled {
		return models.Appointment{}, apierr.InvalidRequest(
			"Cannot cancel appointment with status '%s'", appointment.Status)
	}

	appointment.Status = models.AppointmentStatusCancelled
	appointment.UpdatedAt = time.Now().UTC()
	s.Appointments.Save(appointment)
	return appointment, nil
}

// Reschedule moves an appointment to a new slot. The appointment's own slot
// is excluded from the availability check.
func Reschedule(s *store.Stores, userID, appointmentID string, input RescheduleAppointmentInput) (models.Appointment, error) {
	appointment, err := getOwnedAppointment(s, appointmentID, userID)
	if err != nil {
		return models.Appointment{}, err
	}

	if appointment.Status == models.AppointmentStatusCompleted || appointment.Status == models.AppointmentStatusCancelled {
		return models.Appointment{}, apierr.InvalidRequest(
			"Cannot reschedule appointment with status '%s'", appointment.Status)
	}

	start, err := models.ParseTime(input.AppointmentDateTime)
	if err != nil {
		return models.Appointment{}, apierr.InvalidRequest("Invalid datetime format")
	}

	if !s.Appointments.RescheduleIfFree(appointmentID, start) {
		return models.Appointment{}, apierr.Conflict("This time slot is already booked")
	}

	updated, _ := s.Appointments.Get(appointmentID)
	return updated, nil
}

// ---------- Handlers ----------

// GET /api/appointments/my-appointments
func GetMyAppointments(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		page := 1
		limit := 10
		if v, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil && v >= 1 {
			page = v
		}
		if v, err := strconv.Atoi(c.DefaultQuery("limit", "10")); err == nil && v >= 1 && v <= 100 {
			limit = v
		}
		statusFilter := c.Query("status")
		petFilter := c.Query("petId")

		var appointments []models.Appointment
		for _, a := range s.Appointments.List() {
			if a.OwnerID != userID {
				continue
			}
			if statusFilter != "" && string(a.Status) != statusFilter {
				continue
			}
			if petFilter != "" && a.PetID != petFilter {
				continue
			}
			appointments = append(appointments, a)
		}

		sort.Slice(appointments, func(i, j int) bool {
			return appointments[i].AppointmentDateTime.After(appointments[j].AppointmentDateTime)
		})

		total := len(appointments)
		start, end := models.PageBounds(page, limit, total)
		c.JSON(http.StatusOK, gin.H{
			"appointments": appointments[start:end],
			"pagination":   models.NewPagination(page, limit, total),
		})
	}
}

// POST /api/appointments
func BookAppointment(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input BookAppointmentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		appointment, err := Book(s, middleware.UserID(c), input)
		if err != nil {
			apierr.Abort(c, err)
			return
		}
		c.JSON(http.StatusCreated, appointment)
	}
}

// PATCH /api/appointments/:appointmentId/cancel
func CancelAppointment(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		appointment, err := Cancel(s, middleware.UserID(c), c.Param("appointmentId"))
		if err != nil {
			apierr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, appointment)
	}
}

// PATCH /api/appointments/:appointmentId/reschedule
func RescheduleAppointment(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RescheduleAppointmentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		appointment, err := Reschedule(s, middleware.UserID(c), c.Param("appointmentId"), input)
		if err != nil {
			apierr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, appointment)
	}
}
