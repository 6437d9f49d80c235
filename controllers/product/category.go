package productcontroller

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/LeeCheeHoong/PetCare-Portal/apierr"
	"github.com/LeeCheeHoong/PetCare-Portal/models"
	"github.com/LeeCheeHoong/PetCare-Portal/store"
)

type CategoryInput struct {
	ID   string `json:"id" binding:"required"`
	Name string `json:"name" binding:"required"`
}

type UpdateCategoryInput struct {
	Name string `json:"name" binding:"required"`
}

// GET /api/categories
func GetAllCategories(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories := s.Categories.List()
		sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
		c.JSON(http.StatusOK, categories)
	}
}

// GET /api/categories/:categoryId
func GetCategoryByID(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID := c.Param("categoryId")
		category, ok := s.Categories.Get(categoryID)
		if !ok {
			apierr.Abort(c, apierr.NotFound("Category with id '%s' not found", categoryID))
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// POST /api/admin/categories
func CreateCategory(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if _, exists := s.Categories.Get(input.ID); exists {
			apierr.Abort(c, apierr.InvalidRequest("Category with id '%s' already exists", input.ID))
			return
		}
		category := models.Category{ID: input.ID, Name: input.Name}
		s.Categories.Save(category)
		c.JSON(http.StatusCreated, category)
	}
}

// PUT /api/admin/categories/:categoryId
func UpdateCategory(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID := c.Param("categoryId")
		var input UpdateCategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if _, ok := s.Categories.Get(categoryID); !ok {
			apierr.Abort(c, apierr.NotFound("Category with id '%s' not found", categoryID))
			return
		}
		category := models.Category{ID: categoryID, Name: input.Name}
		s.Categories.Save(category)
		c.JSON(http.StatusOK, category)
	}
}

// DELETE /api/admin/categories/:categoryId
func DeleteCategory(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID := c.Param("categoryId")
		if !s.Categories.Delete(categoryID) {
			apierr.Abort(c, apierr.NotFound("Category with id '%s' not found", categoryID))
			return
		}
		c.Status(http.StatusNoContent)
	}
}
