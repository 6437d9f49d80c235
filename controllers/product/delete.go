package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LeeCheeHoong/PetCare-Portal/apierr"
	"github.com/LeeCheeHoong/PetCare-Portal/store"
)

// DELETE /api/admin/products/:productId
func DeleteProduct(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("productId")
		if !s.Products.Delete(productID) {
			apierr.Abort(c, apierr.NotFound("Product with id '%s' not found", productID))
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message":   "Product deleted successfully",
			"deletedId": productID,
		})
	}
}
