package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LeeCheeHoong/PetCare-Portal/apierr"
	"github.com/LeeCheeHoong/PetCare-Portal/store"
)

// GET /api/products/:productId
func GetProductByID(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("productId")
		product, ok := s.Products.Get(productID)
		if !ok {
			apierr.Abort(c, apierr.NotFound("Product with id '%s' not found", productID))
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GET /api/products/:productId/availability
func GetProductAvailability(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("productId")
		product, ok := s.Products.Get(productID)
		if !ok {
			apierr.Abort(c, apierr.NotFound("Product with id '%s' not found", productID))
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"inStock":    product.InStock,
			"stockCount": product.StockCount,
		})
	}
}
