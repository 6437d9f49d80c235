package productcontroller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/LeeCheeHoong/PetCare-Portal/apierr"
	"github.com/LeeCheeHoong/PetCare-Portal/models"
	"github.com/LeeCheeHoong/PetCare-Portal/store"
)

type ProductInput struct {
	Name                string   `json:"name" binding:"required"`
	Description         string   `json:"description" binding:"required"`
	DetailedDescription string   `json:"detailedDescription"`
	Price               float64  `json:"price" binding:"required,gt=0"`
	OriginalPrice       float64  `json:"originalPrice"`
	Discount            float64  `json:"discount"`
	Images              []string `json:"images"`
	CategoryID          string   `json:"categoryId" binding:"required"`
	InStock             bool     `json:"inStock"`
	StockCount          int      `json:"stockCount"`
}

// POST /api/admin/products
func CreateProduct(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		category, ok := s.Categories.Get(input.CategoryID)
		if !ok {
			apierr.Abort(c, apierr.InvalidRequest("Category with id '%s' not found", input.CategoryID))
			return
		}

		now := time.Now().UTC()
		product := models.Product{
			ID:                  models.NewID("prod"),
			Name:                input.Name,
			Description:         input.Description,
			DetailedDescription: input.DetailedDescription,
			Price:               input.Price,
			OriginalPrice:       input.OriginalPrice,
			Discount:            input.Discount,
			Images:              input.Images,
			Category:            category,
			InStock:             input.InStock,
			StockCount:          input.StockCount,
			CreatedAt:           now,
			UpdatedAt:           now,
		}
		if product.Images == nil {
			product.Images = []string{}
		}
		s.Products.Save(product)

		c.JSON(http.StatusCreated, gin.H{
			"id":      product.ID,
			"message": "Product created successfully",
			"product": product,
		})
	}
}
