package petControllers

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

type PetInput struct {
	Name         string  `json:"name" binding:"required"`
	Species      string  `json:"species" binding:"required"`
	Breed        string  `json:"breed" binding:"required"`
	Age          int     `json:"age" binding:"min=0"`
	ImageURL     string  `json:"imageUrl"`
	Weight       float64 `json:"weight"`
	Color        string  `json:"color"`
	MedicalNotes string  `json:"medicalNotes"`
}

// ---------- Core Logic ----------

// getOwnedPet loads a pet and enforces ownership.
func getOwnedPet(s *store.Stores, petID, userID string) (models.Pet, error) {
	pet, ok := s.Pets.Get(petID)
	if !ok {
		return models.Pet{}, apierr.NotFound("Pet with id '%s' not found", petID)
	}
	if pet.OwnerID != userID {
		return models.Pet{}, apierr.Forbidden("You don't have permission to access this pet")
	}
	return pet, nil
}

// ---------- Handlers ----------

// GET /api/pets/my-pets
func GetMyPets(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		page := 1
		limit := 9
		if v, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil && v >= 1 {
			page = v
		}
		if v, err := strconv.Atoi(c.DefaultQuery("limit", "9")); err == nil && v >= 1 && v <= 100 {
			limit = v
		}

		pets := s.Pets.ListByOwner(userID)
		sort.Slice(pets, func(i, j int) bool { return pets[i].CreatedAt.After(pets[j].CreatedAt) })

		total := len(pets)
		start, end := models.PageBounds(page, limit, total)
		c.JSON(http.StatusOK, gin.H{
			"pets":       pets[start:end],
			"pagination": models.NewPagination(page, limit, total),
		})
	}
}

// POST /api/pets
func CreatePet(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PetInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		now := time.Now().UTC()
		pet := models.Pet{
			ID:           models.NewID("pet"),
			Name:         input.Name,
			Species:      input.Species,
			Breed:        input.Breed,
			Age:          input.Age,
			ImageURL:     input.ImageURL,
			Weight:       input.Weight,
			Color:        input.Color,
			MedicalNotes: input.MedicalNotes,
			Status:       models.PetStatusHealthy,
			OwnerID:      middleware.UserID(c),
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		s.Pets.Save(pet)
		c.JSON(http.StatusCreated, pet)
	}
}

// GET /api/pets/:petId
func GetPet(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		pet, err := getOwnedPet(s, c.Param("petId"), middleware.UserID(c))
		if err != nil {
			apierr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, pet)
	}
}

// PUT /api/pets/:petId
func UpdatePet(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		pet, err := getOwnedPet(s, c.Param("petId"), middleware.UserID(c))
		if err != nil {
			apierr.Abort(c, err)
			return
		}

		var input PetInput
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
		pet.MedicalNotes = input.MedicalNotes
		pet.UpdatedAt = time.Now().UTC()

		s.Pets.Save(pet)
		c.JSON(http.StatusOK, pet)
	}
}

// DELETE /api/pets/:petId
func DeletePet(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		pet, err := getOwnedPet(s, c.Param("petId"), middleware.UserID(c))
		if err != nil {
			apierr.Abort(c, err)
			return
		}
		s.Pets.Delete(pet.ID)
		c.Status(http.StatusNoContent)
	}
}
