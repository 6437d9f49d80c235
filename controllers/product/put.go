package productcontroller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/LeeCheeHoong/PetCare-Portal/apierr"
	"github.com/LeeCheeHoong/PetCare-Portal/models"
	"github.com/LeeCheeHoong/PetCare-Portal/store"
)

// PUT /api/admin/products/:productId
func UpdateProduct(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("productId")

		existing, ok := s.Products.Get(productID)
		if !ok {
			apierr.Abort(c, apierr.NotFound("Product with id '%s' not found", productID))
			return
		}

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

		product := models.Product{
			ID:                  productID,
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
			CreatedAt:           existing.CreatedAt,
			UpdatedAt:           time.Now().UTC(),
		}
		if product.Images == nil {
			product.Images = []string{}
		}
		s.Products.Save(product)

		c.JSON(http.StatusOK, gin.H{
			"message": "Product updated successfully",
			"product": product,
		})
	}
}
