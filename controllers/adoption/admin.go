package adoptionControllers

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/LeeCheeHoong/PetCare-Portal/apierr"
	"github.com/LeeCheeHoong/PetCare-Portal/models"
	"github.com/LeeCheeHoong/PetCare-Portal/store"
)

type AdoptablePetInput struct {
	Name           string                `json:"name" binding:"required"`
	Species        string                `json:"species" binding:"required"`
	Breed          string                `json:"breed" binding:"required"`
	Age            int                   `json:"age" binding:"min=0"`
	ImageURL       string                `json:"imageUrl"`
	Weight         float64               `json:"weight"`
	Color          string                `json:"color"`
	Description    string                `json:"description"`
	AdoptionFee    float64               `json:"adoptionFee"`
	AdoptionStatus models.AdoptionStatus `json:"adoptionStatus"`
}

type UpdateAdoptionStatusInput struct {
	AdoptionStatus models.AdoptionStatus `json:"adoptionStatus" binding:"required"`
}

type ReviewApplicationInput struct {
	Status     models.ApplicationStatus `json:"status" binding:"required"`
	AdminNotes string                   `json:"adminNotes"`
}

// ---------- Core Logic ----------

// ReviewApplication settles a pending application. Approval marks the pet
// adopted; rejection releases the pet back to available unless another
// pending application is still in flight.
func ReviewApplication(s *store.Stores, appID string, input ReviewApplicationInput) (models.AdoptionApplication, error) {
	app, ok := s.Adoption.GetApplication(appID)
	if !ok {
		return models.AdoptionApplication{}, apierr.NotFound("Application with id '%s' not found", appID)
	}

	if app.Status != models.ApplicationStatusPending {
		return models.AdoptionApplication{}, apierr.InvalidRequest("Application already %s", app.Status)
	}

	now := time.Now().UTC()
	app.Status = input.Status
	app.AdminNotes = input.AdminNotes
	app.ReviewedBy = "admin"
	app.ReviewedAt = &now
	app.UpdatedAt = now
	s.Adoption.SaveApplication(app)

	if pet, ok := s.Adoption.GetPet(app.PetID); ok {
		switch input.Status {
		case models.ApplicationStatusApproved:
			pet.AdoptionStatus = models.AdoptionStatusAdopted
		case models.ApplicationStatusRejected:
			otherPending := false
			for _, other := range s.Adoption.ListApplications() {
				if other.PetID == app.PetID && other.Status == models.ApplicationStatusPending && other.ID != appID {
					otherPending = true
					break
				}
			}
			if !otherPending {
				pet.AdoptionStatus = models.AdoptionStatusAvailable
			}
		}
		pet.UpdatedAt = now
		s.Adoption.SavePet(pet)
	}

	return app, nil
}

// ---------- Handlers ----------

// GET /api/admin/adoption/pets
func AdminListAdoptablePets(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit := pageParams(c, 10)
		statusFilter := c.Query("status")

		var pets []models.AdoptablePet
		for _, p := range s.Adoption.ListPets() {
			if statusFilter != "" && string(p.AdoptionStatus) != statusFilter {
				continue
			}
			pets = append(pets, p)
		}

		c.JSON(http.StatusOK, paginatePets(pets, page, limit))
	}
}

// POST /api/admin/adoption/pets
func AdminCreateAdoptablePet(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AdoptablePetInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		status := input.AdoptionStatus
		if status == "" {
			status = models.AdoptionStatusAvailable
		}

		now := time.Now().UTC()
		pet := models.AdoptablePet{
			ID:             models.NewID("adopt"),
			Name:           input.Name,
			Species:        input.Species,
			Breed:          input.Breed,
			Age:            input.Age,
			ImageURL:       input.ImageURL,
			Weight:         input.Weight,
			Color:          input.Color,
			Description:    input.Description,
			AdoptionFee:    input.AdoptionFee,
			AdoptionStatus: status,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		s.Adoption.SavePet(pet)
		c.JSON(http.StatusCreated, pet)
	}
}

// PUT /api/admin/adoption/pets/:petId
func AdminUpdateAdoptablePet(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		petID := c.Param("petId")
		pet, ok := s.Adoption.GetPet(petID)
		if !ok {
			apierr.Abort(c, apierr.NotFound("Adoptable pet with id '%s' not found", petID))
			return
		}

		var input AdoptablePetInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		pet.Name = input.Name
		pet.Species = input.Species
		pet.Breed = input.Breed
		pet.Age = input.Age
		pet.ImageURL = input.ImageURL
		pet.Weight = input.Weight
		pet.Color = input.Color
		pet.Description = input.Description
		pet.AdoptionFee = input.AdoptionFee
		if input.AdoptionStatus != "" {
			pet.AdoptionStatus = input.AdoptionStatus
		}
		pet.UpdatedAt = time.Now().UTC()

		s.Adoption.SavePet(pet)
		c.JSON(http.StatusOK, pet)
	}
}

// DELETE /api/admin/adoption/pets/:petId
func AdminDeleteAdoptablePet(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		petID := c.Param("petId")
		if !s.Adoption.DeletePet(petID) {
			apierr.Abort(c, apierr.NotFound("Adoptable pet with id '%s' not found", petID))
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// PATCH /api/admin/adoption/pets/:petId/status
func AdminUpdateAdoptionStatus(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		petID := c.Param("petId")
		pet, ok := s.Adoption.GetPet(petID)
		if !ok {
			apierr.Abort(c, apierr.NotFound("Adoptable pet with id '%s' not found", petID))
			return
		}

		var input UpdateAdoptionStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		pet.AdoptionStatus = input.AdoptionStatus
		pet.UpdatedAt = time.Now().UTC()
		s.Adoption.SavePet(pet)
		c.JSON(http.StatusOK, pet)
	}
}

// GET /api/admin/adoption/pets/:petId/history
func AdminGetPetHistory(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		petID := c.Param("petId")
		pet, ok := s.Adoption.GetPet(petID)
		if !ok {
			apierr.Abort(c, apierr.NotFound("Adoptable pet with id '%s' not found", petID))
			return
		}

		var applications []models.AdoptionApplication
		for _, app := range s.Adoption.ListApplications() {
			if app.PetID == petID {
				applications = append(applications, app)
			}
		}
		sort.Slice(applications, func(i, j int) bool {
			return applications[i].CreatedAt.After(applications[j].CreatedAt)
		})

		var approved *models.AdoptionApplication
		for i := range applications {
			if applications[i].Status == models.ApplicationStatusApproved {
				approved = &applications[i]
				break
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"applications":        applications,
			"currentStatus":       pet.AdoptionStatus,
			"totalApplications":   len(applications),
			"approvedApplication": approved,
		})
	}
}

// GET /api/admin/adoption/applications
func AdminListApplications(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit := pageParams(c, 10)
		statusFilter := c.Query("status")
		petFilter := c.Query("petId")

		var applications []models.AdoptionApplication
		for _, app := range s.Adoption.ListApplications() {
			if statusFilter != "" && string(app.Status) != statusFilter {
				continue
			}
			if petFilter != "" && app.PetID != petFilter {
				continue
			}
			applications = append(applications, app)
		}
		sort.Slice(applications, func(i, j int) bool {
			return applications[i].CreatedAt.After(applications[j].CreatedAt)
		})

		total := len(applications)
		start, end := models.PageBounds(page, limit, total)
		c.JSON(http.StatusOK, gin.H{
			"applications": applications[start:end],
			"pagination":   models.NewPagination(page, limit, total),
		})
	}
}

// GET /api/admin/adoption/applications/:applicationId
func AdminGetApplication(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		appID := c.Param("applicationId")
		app, ok := s.Adoption.GetApplication(appID)
		if !ok {
			apierr.Abort(c, apierr.NotFound("Application with id '%s' not found", appID))
			return
		}
		c.JSON(http.StatusOK, app)
	}
}

// PATCH /api/admin/adoption/applications/:applicationId/review
func AdminReviewApplication(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ReviewApplicationInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		app, err := ReviewApplication(s, c.Param("applicationId"), input)
		if err != nil {
			apierr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, app)
	}
}

// DELETE /api/admin/adoption/applications/:applicationId
func AdminDeleteApplication(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		appID := c.Param("applicationId")
		if !s.Adoption.DeleteApplication(appID) {
			apierr.Abort(c, apierr.NotFound("Application with id '%s' not found", appID))
			return
		}
		c.Status(http.StatusNoContent)
	}
}
