package appointmentControllers

import (
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/LeeCheeHoong/PetCare-Portal/apierr"
	"github.com/LeeCheeHoong/PetCare-Portal/models"
	"github.com/LeeCheeHoong/PetCare-Portal/store"
)

type VetUpdateStatusInput struct {
	Status    models.AppointmentStatus `json:"status" binding:"required"`
	Diagnosis *string                  `json:"diagnosis"`
	Treatment *string                  `json:"treatment"`
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// GET /api/vet/appointments
// The vet view spans all owners: free-text search on owner and pet name,
// a single-day filter, and a date range for the calendar.
func VetListAppointments(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := 1
		limit := 50
		if v, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil && v >= 1 {
			page = v
		}
		if v, err := strconv.Atoi(c.DefaultQuery("limit", "50")); err == nil && v >= 1 && v <= 1000 {
			limit = v
		}

		appointments := s.Appointments.List()

		if search := c.Query("search"); search != "" {
			searchLower := strings.ToLower(search)
			var kept []models.Appointment
			for _, a := range appointments {
				if strings.Contains(strings.ToLower(a.OwnerName), searchLower) ||
					strings.Contains(strings.ToLower(a.Pet.Name), searchLower) {
					kept = append(kept, a)
				}
			}
			appointments = kept
		}

		if dateFilter := c.Query("date"); dateFilter != "" {
			if day, err := models.ParseTime(dateFilter); err == nil {
				var kept []models.Appointment
				for _, a := range appointments {
					if sameDay(a.AppointmentDateTime, day) {
						kept = append(kept, a)
					}
				}
				appointments = kept
			}
		}

		startDate := c.Query("startDate")
		endDate := c.Query("endDate")
		if startDate != "" && endDate != "" {
			from, err1 := models.ParseTime(startDate)
			to, err2 := models.ParseTime(endDate)
			if err1 == nil && err2 == nil {
				to = to.Add(24 * time.Hour)
				var kept []models.Appointment
				for _, a := range appointments {
					if !a.AppointmentDateTime.Before(from) && a.AppointmentDateTime.Before(to) {
						kept = append(kept, a)
					}
				}
				appointments = kept
			}
		}

		sort.Slice(appointments, func(i, j int) bool {
			return appointments[i].AppointmentDateTime.Before(appointments[j].AppointmentDateTime)
		})

		total := len(appointments)
		start, end := models.PageBounds(page, limit, total)
		c.JSON(http.StatusOK, gin.H{
			"appointments": appointments[start:end],
			"pagination":   models.NewPagination(page, limit, total),
		})
	}
}

// GET /api/vet/appointments/:appointmentId
func VetGetAppointment(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		appointmentID := c.Param("appointmentId")
		appointment, ok := s.Appointments.Get(appointmentID)
		if !ok {
			apierr.Abort(c, apierr.NotFound("Appointment with id '%s' not found", appointmentID))
			return
		}
		c.JSON(http.StatusOK, appointment)
	}
}

// PATCH /api/vet/appointments/:appointmentId
func VetUpdateStatus(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		appointmentID := c.Param("appointmentId")

		var input VetUpdateStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		appointment, ok := s.Appointments.Get(appointmentID)
		if !ok {
			apierr.Abort(c, apierr.NotFound("Appointment with id '%s' not found", appointmentID))
			return
		}

		appointment.Status = input.Status
		if input.Diagnosis != nil {
			appointment.Diagnosis = *input.Diagnosis
		}
		if input.Treatment != nil {
			appointment.Treatment = *input.Treatment
		}
		appointment.UpdatedAt = time.Now().UTC()

		s.Appointments.Save(appointment)
		c.JSON(http.StatusOK, appointment)
	}
}
