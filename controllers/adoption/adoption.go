package adoptionControllers

import (
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/LeeCheeHoong/PetCare-Portal/apierr"
	"github.com/LeeCheeHoong/PetCare-Portal/middleware"
	"github.com/LeeCheeHoong/PetCare-Portal/models"
	"github.com/LeeCheeHoong/PetCare-Portal/store"
)

type ApplicationInput struct {
	AdopterName       string `json:"adopterName" binding:"required"`
	AdopterEmail      string `json:"adopterEmail" binding:"required,email"`
	AdopterPhone      string `json:"adopterPhone" binding:"required"`
	AdopterAddress    string `json:"adopterAddress" binding:"required"`
	HomeType          string `json:"homeType" binding:"required"`
	HasYard           bool   `json:"hasYard"`
	HasOtherPets      bool   `json:"hasOtherPets"`
	OtherPetsDetails  string `json:"otherPetsDetails"`
	PetExperience     string `json:"petExperience" binding:"required"`
	ReasonForAdoption string `json:"reasonForAdoption" binding:"required"`
	Notes             string `json:"notes"`
}

func paginatePets(pets []models.AdoptablePet, page, limit int) gin.H {
	sort.Slice(pets, func(i, j int) bool { return pets[i].CreatedAt.After(pets[j].CreatedAt) })
	total := len(pets)
	start, end := models.PageBounds(page, limit, total)
	return gin.H{
		"pets":       pets[start:end],
		"pagination": models.NewPagination(page, limit, total),
	}
}

func pageParams(c *gin.Context, defaultLimit int) (int, int) {
	page := 1
	limit := defaultLimit
	if v, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil && v >= 1 {
		page = v
	}
	if v, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit))); err == nil && v >= 1 && v <= 100 {
		limit = v
	}
	return page, limit
}

// ---------- Core Logic ----------

// SubmitApplication files an adoption application. A successful submission
// moves the pet to pending so it stops showing in the public listing.
func SubmitApplication(s *store.Stores, userID, petID string, input ApplicationInput) (models.AdoptablePet, error) {
	pet, ok := s.Adoption.GetPet(petID)
	if !ok {
		return models.AdoptablePet{}, apierr.NotFound("Adoptable pet with id '%s' not found", petID)
	}

	if pet.AdoptionStatus != models.AdoptionStatusAvailable {
		return models.AdoptablePet{}, apierr.InvalidRequest(
			"This pet is not available for adoption. Current status: %s", pet.AdoptionStatus)
	}

	for _, app := range s.Adoption.ListApplications() {
		if app.PetID == petID && app.UserID == userID && app.Status == models.ApplicationStatusPending {
			return models.AdoptablePet{}, apierr.InvalidRequest(
				"You already have a pending application for this pet")
		}
	}

	now := time.Now().UTC()
	application := models.AdoptionApplication{
		ID:                models.NewID("app"),
		PetID:             petID,
		Pet:               pet,
		UserID:            userID,
		AdopterName:       input.AdopterName,
		AdopterEmail:      input.AdopterEmail,
		AdopterPhone:      input.AdopterPhone,
		AdopterAddress:    input.AdopterAddress,
		HomeType:          input.HomeType,
		HasYard:           input.HasYard,
		HasOtherPets:      input.HasOtherPets,
		OtherPetsDetails:  input.OtherPetsDetails,
		PetExperience:     input.PetExperience,
		ReasonForAdoption: input.ReasonForAdoption,
		Notes:             input.Notes,
		Status:            models.ApplicationStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	s.Adoption.SaveApplication(application)

	pet.AdoptionStatus = models.AdoptionStatusPending
	pet.UpdatedAt = now
	s.Adoption.SavePet(pet)

	return pet, nil
}

// ---------- Handlers ----------

// GET /api/adoption/pets
func ListAdoptablePets(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit := pageParams(c, 9)
		statusFilter := c.DefaultQuery("status", string(models.AdoptionStatusAvailable))
		species := c.Query("species")

		var pets []models.AdoptablePet
		for _, p := range s.Adoption.ListPets() {
			if string(p.AdoptionStatus) != statusFilter {
				continue
			}
			if species != "" && !strings.EqualFold(p.Species, species) {
				continue
			}
			pets = append(pets, p)
		}

		c.JSON(http.StatusOK, paginatePets(pets, page, limit))
	}
}

// GET /api/adoption/pets/:petId
func GetAdoptablePet(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		petID := c.Param("petId")
		pet, ok := s.Adoption.GetPet(petID)
		if !ok {
			apierr.Abort(c, apierr.NotFound("Adoptable pet with id '%s' not found", petID))
			return
		}
		c.JSON(http.StatusOK, pet)
	}
}

// POST /api/adoption/pets/:petId/apply
func ApplyForAdoption(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ApplicationInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		pet, err := SubmitApplication(s, middleware.UserID(c), c.Param("petId"), input)
		if err != nil {
			apierr.Abort(c, err)
			return
		}
		c.JSON(http.StatusCreated, pet)
	}
}
