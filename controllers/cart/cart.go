package cartControllers

import (
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/LeeCheeHoong/PetCare-Portal/apierr"
	"github.com/LeeCheeHoong/PetCare-Portal/middleware"
	"github.com/LeeCheeHoong/PetCare-Portal/models"
	"github.com/LeeCheeHoong/PetCare-Portal/store"
)

const (
	TaxRate               = 0.08
	FreeShippingThreshold = 50.0
	FlatShippingCost      = 5.99
)

type AddToCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// recalcTotals recomputes the derived cart fields from its items. An empty
// cart always totals to zero, including shipping.
func recalcTotals(cart models.Cart) models.Cart {
	if len(cart.Items) == 0 {
		cart.TotalItems = 0
		cart.Subtotal = 0
		cart.Tax = 0
		cart.Shipping = 0
		cart.Total = 0
		cart.UpdatedAt = time.Now().UTC()
		return cart
	}

	subtotal := 0.0
	totalItems := 0
	for _, item := range cart.Items {
		subtotal += item.Product.Price * float64(item.Quantity)
		totalItems += item.Quantity
	}

	cart.Subtotal = subtotal
	cart.TotalItems = totalItems
	cart.Tax = round2(subtotal * TaxRate)
	if subtotal >= FreeShippingThreshold {
		cart.Shipping = 0
	} else {
		cart.Shipping = FlatShippingCost
	}
	cart.Total = round2(cart.Subtotal + cart.Tax + cart.Shipping)
	cart.UpdatedAt = time.Now().UTC()
	return cart
}

// ---------- Core Logic ----------

func GetOrCreateCart(s *store.Stores, userID string) models.Cart {
	return s.Carts.GetOrCreate(userID)
}

func AddItem(s *store.Stores, userID string, req AddToCartRequest) (models.Cart, error) {
	cart := s.Carts.GetOrCreate(userID)

	product, ok := s.Products.Get(req.ProductID)
	if !ok {
		return cart, apierr.NotFound("Product with id '%s' not found", req.ProductID)
	}

	existingIdx := -1
	for i, item := range cart.Items {
		if item.Product.ID == req.ProductID {
			existingIdx = i
			break
		}
	}

	totalNeeded := req.Quantity
	if existingIdx >= 0 {
		totalNeeded += cart.Items[existingIdx].Quantity
	}

	available, stock, msg := s.Products.ValidateStock(req.ProductID, totalNeeded)
	if !available {
		if existingIdx >= 0 {
			availableToAdd := stock - cart.Items[existingIdx].Quantity
			if availableToAdd > 0 {
				return cart, apierr.InvalidRequest(
					"Cannot add %d more. Only %d more item(s) can be added. Current stock: %d",
					req.Quantity, availableToAdd, stock)
			}
		}
		return cart, apierr.InvalidRequest("%s", msg)
	}

	if existingIdx >= 0 {
		cart.Items[existingIdx].Quantity = totalNeeded
		cart.Items[existingIdx].Product = product
	} else {
		cart.Items = append(cart.Items, models.CartItem{
			ID:       models.NewID("ci"),
			Product:  product,
			Quantity: req.Quantity,
			AddedAt:  time.Now().UTC(),
		})
	}

	cart = recalcTotals(cart)
	s.Carts.Save(userID, cart)
	return cart, nil
}

// UpdateItemQuantity sets a cart item's quantity after re-reading the catalog.
// If the product was deleted in the meantime, the item is dropped from the
// cart (and the drop persisted) before the not-found error is returned.
func UpdateItemQuantity(s *store.Stores, userID, itemID string, quantity int) (models.Cart, error) {
	cart := s.Carts.GetOrCreate(userID)

	itemIdx := -1
	for i, item := range cart.Items {
		if item.ID == itemID {
			itemIdx = i
			break
		}
	}
	if itemIdx == -1 {
		return cart, apierr.NotFound("Cart item with id '%s' not found", itemID)
	}

	item := cart.Items[itemIdx]
	product, ok := s.Products.Get(item.Product.ID)
	if !ok {
		cart.Items = append(cart.Items[:itemIdx], cart.Items[itemIdx+1:]...)
		cart = recalcTotals(cart)
		s.Carts.Save(userID, cart)
		return cart, apierr.NotFound(
			"Product '%s' is no longer available and has been removed from cart", item.Product.Name)
	}

	available, _, msg := s.Products.ValidateStock(product.ID, quantity)
	if !available {
		return cart, apierr.InvalidRequest("%s", msg)
	}

	cart.Items[itemIdx].Quantity = quantity
	cart.Items[itemIdx].Product = product
	cart = recalcTotals(cart)
	s.Carts.Save(userID, cart)
	return cart, nil
}

func RemoveItem(s *store.Stores, userID, itemID string) (models.Cart, error) {
	cart := s.Carts.GetOrCreate(userID)

	kept := cart.Items[:0:0]
	for _, item := range cart.Items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(cart.Items) {
		return cart, apierr.NotFound("Cart item with id '%s' not found", itemID)
	}

	cart.Items = kept
	cart = recalcTotals(cart)
	s.Carts.Save(userID, cart)
	return cart, nil
}

func Clear(s *store.Stores, userID string) models.Cart {
	cart := s.Carts.GetOrCreate(userID)
	cart.Items = []models.CartItem{}
	cart = recalcTotals(cart)
	s.Carts.Save(userID, cart)
	return cart
}

// Refresh re-reads every cart item against the catalog: deleted and
// out-of-stock products are dropped, quantities are clamped to current stock,
// and product snapshots are replaced with fresh copies.
func Refresh(s *store.Stores, userID string) models.Cart {
	cart := s.Carts.GetOrCreate(userID)
	if len(cart.Items) == 0 {
		return cart
	}

	ids := make([]string, 0, len(cart.Items))
	for _, item := range cart.Items {
		ids = append(ids, item.Product.ID)
	}
	products := s.Products.GetMany(ids)

	updated := []models.CartItem{}
	for _, item := range cart.Items {
		product, ok := products[item.Product.ID]
		if !ok {
			continue
		}
		available, stock, _ := s.Products.ValidateStock(product.ID, item.Quantity)
		if !available {
			if !product.InStock {
				continue
			}
			if item.Quantity > stock {
				item.Quantity = stock
			}
		}
		item.Product = product
		updated = append(updated, item)
	}

	cart.Items = updated
	cart = recalcTotals(cart)
	s.Carts.Save(userID, cart)
	return cart
}

// ---------- Handlers ----------

// GET /api/cart
func GetCart(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, GetOrCreateCart(s, middleware.UserID(c)))
	}
}

// POST /api/cart/items
func AddToCart(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddToCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		cart, err := AddItem(s, middleware.UserID(c), req)
		if err != nil {
			apierr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// PATCH /api/cart/items/:itemId
func UpdateCartItem(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		cart, err := UpdateItemQuantity(s, middleware.UserID(c), c.Param("itemId"), req.Quantity)
		if err != nil {
			apierr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /api/cart/items/:itemId
func RemoveCartItem(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := RemoveItem(s, middleware.UserID(c), c.Param("itemId"))
		if err != nil {
			apierr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /api/cart
func ClearCart(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, Clear(s, middleware.UserID(c)))
	}
}
