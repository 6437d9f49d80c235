package orderControllers

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeeCheeHoong/PetCare-Portal/apierr"
	cartControllers "github.com/LeeCheeHoong/PetCare-Portal/controllers/cart"
	checkoutControllers "github.com/LeeCheeHoong/PetCare-Portal/controllers/checkout"
	"github.com/LeeCheeHoong/PetCare-Portal/memstore"
	"github.com/LeeCheeHoong/PetCare-Portal/models"
	"github.com/LeeCheeHoong/PetCare-Portal/store"
)

func newTestStores(t *testing.T) *store.Stores {
	t.Helper()
	s := memstore.New()
	now := time.Now().UTC()
	s.Products.Save(models.Product{
		ID: "prod_a", Name: "Dog Food", Description: "Dry food", Price: 20.0,
		Images:   []string{"/images/dog-food.jpg"},
		Category: models.Category{ID: "cat_food", Name: "Food"},
		InStock:  true, StockCount: 10, CreatedAt: now, UpdatedAt: now,
	})
	return s
}

func testCheckoutRequest() CheckoutRequest {
	return CheckoutRequest{
		ShippingAddress: models.ShippingAddress{
			FirstName: "Jane", LastName: "Doe", Email: "jane@example.com",
			Phone: "5551234567", Address: "1 Main St", City: "Springfield",
			State: "IL", ZipCode: "62701", Country: "US",
		},
		BillingAddress: models.BillingAddress{
			FirstName: "Jane", LastName: "Doe", Address: "1 Main St",
			City: "Springfield", State: "IL", ZipCode: "62701", Country: "US",
		},
		PaymentMethod:  models.PaymentMethod{Type: "card", Last4: "0366", Brand: "Visa"},
		ShippingMethod: "standard",
	}
}

// placeOrder buys quantity units of prod_a; with quantity 2 the order totals
// 43.20 (subtotal 40 plus tax, free standard shipping).
func placeOrder(t *testing.T, s *store.Stores, quantity int) models.Order {
	t.Helper()
	_, err := cartControllers.AddItem(s, "user1", cartControllers.AddToCartRequest{ProductID: "prod_a", Quantity: quantity})
	require.NoError(t, err)
	order, err := CreateFromCart(s, "user1", testCheckoutRequest())
	require.NoError(t, err)
	return order
}

func TestOrderNumberFormatAndSequence(t *testing.T) {
	s := newTestStores(t)

	first := placeOrder(t, s, 1)
	second := placeOrder(t, s, 1)

	year := time.Now().UTC().Year()
	assert.Equal(t, fmt.Sprintf("ORD-%d-000001", year), first.OrderNumber)
	assert.Equal(t, fmt.Sprintf("ORD-%d-000002", year), second.OrderNumber)
}

func TestCreateFromCartSnapshotsItems(t *testing.T) {
	s := newTestStores(t)

	order := placeOrder(t, s, 2)

	require.Len(t, order.Items, 1)
	item := order.Items[0]
	assert.Equal(t, "prod_a", item.ProductID)
	assert.Equal(t, "Dog Food", item.ProductName)
	assert.Equal(t, "/images/dog-food.jpg", item.ProductImage)
	assert.Equal(t, 2, item.Quantity)
	assert.InDelta(t, 20.0, item.UnitPrice, 0.001)
	assert.InDelta(t, 40.0, item.TotalPrice, 0.001)

	assert.Equal(t, models.OrderStatusPending, order.Status)
	require.Len(t, order.StatusHistory, 1)
	assert.Equal(t, "Order placed successfully", order.StatusHistory[0].Note)

	assert.InDelta(t, 40.0, order.Pricing.Subtotal, 0.001)
	assert.InDelta(t, 3.2, order.Pricing.Tax, 0.001)
	assert.Zero(t, order.Pricing.Shipping) // standard method has no base cost
	assert.InDelta(t, 43.2, order.Pricing.Total, 0.001)

	assert.Contains(t, order.Shipping.TrackingNumber, "TRK")
	assert.Equal(t, "USPS", order.Shipping.Carrier)

	// cart is cleared after checkout
	cart, ok := s.Carts.Get("user1")
	require.True(t, ok)
	assert.Empty(t, cart.Items)
}

func TestCatalogPriceChangeDoesNotAffectOrder(t *testing.T) {
	s := newTestStores(t)

	order := placeOrder(t, s, 1)

	p, _ := s.Products.Get("prod_a")
	p.Price = 99.0
	s.Products.Save(p)

	stored, ok := s.Orders.Get(order.ID)
	require.True(t, ok)
	assert.InDelta(t, 20.0, stored.Items[0].UnitPrice, 0.001)
}

func TestCreateFromEmptyCart(t *testing.T) {
	s := newTestStores(t)

	_, err := CreateFromCart(s, "user1", testCheckoutRequest())
	require.Error(t, err)
	assert.Equal(t, "Cannot create order from empty cart", err.Error())
}

func TestExpressShippingCost(t *testing.T) {
	s := newTestStores(t)

	_, err := cartControllers.AddItem(s, "user1", cartControllers.AddToCartRequest{ProductID: "prod_a", Quantity: 1})
	require.NoError(t, err)

	req := testCheckoutRequest()
	req.ShippingMethod = "express"
	order, err := CreateFromCart(s, "user1", req)
	require.NoError(t, err)

	assert.InDelta(t, 15.99, order.Pricing.Shipping, 0.001)
	assert.Equal(t, "FedEx", order.Shipping.Carrier)
}

func TestShippingCostWaivedOverThreshold(t *testing.T) {
	assert.InDelta(t, 15.99, CalculateShippingCost(20.0, "express"), 0.001)
	assert.Zero(t, CalculateShippingCost(60.0, "express"))
	assert.Zero(t, CalculateShippingCost(20.0, "standard"))
}

func TestCancelOrder(t *testing.T) {
	s := newTestStores(t)
	order := placeOrder(t, s, 1)

	cancelled, err := Cancel(s, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, cancelled.Status)
	require.Len(t, cancelled.StatusHistory, 2)
	assert.Equal(t, "Order cancelled by customer", cancelled.StatusHistory[1].Note)

	// second cancel hits a terminal state
	_, err = Cancel(s, order.ID)
	require.Error(t, err)
	assert.Equal(t, "Cannot cancel order with status 'cancelled'", err.Error())
}

func TestCancelShippedOrder(t *testing.T) {
	s := newTestStores(t)
	order := placeOrder(t, s, 1)

	_, err := UpdateStatus(s, order.ID, models.OrderStatusShipped, "shipped", "")
	require.NoError(t, err)

	_, err = Cancel(s, order.ID)
	require.Error(t, err)
	assert.Equal(t, "Cannot cancel order with status 'shipped'", err.Error())
}

func TestShipOrder(t *testing.T) {
	s := newTestStores(t)
	order := placeOrder(t, s, 1)

	req := ShipOrderRequest{
		Carrier:           "UPS",
		TrackingNumber:    "1Z999",
		TrackingURL:       "https://tracking.ups.com/1Z999",
		EstimatedDelivery: "2026-09-05",
	}

	// pending orders cannot ship directly
	_, err := Ship(s, order.ID, req)
	require.Error(t, err)
	assert.Equal(t, "Cannot ship order with status 'pending'", err.Error())

	_, err = UpdateStatus(s, order.ID, models.OrderStatusConfirmed, "confirmed", "")
	require.NoError(t, err)

	shipped, err := Ship(s, order.ID, req)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, shipped.Status)
	assert.Equal(t, "UPS", shipped.Shipping.Carrier)
	assert.Equal(t, "1Z999", shipped.Shipping.TrackingNumber)
	assert.Contains(t, shipped.StatusHistory[len(shipped.StatusHistory)-1].Note, "Order shipped via UPS")
}

func TestRequestReturnRequiresDelivered(t *testing.T) {
	s := newTestStores(t)
	order := placeOrder(t, s, 1)

	req := ReturnRequest{Items: []string{order.Items[0].ID}, Reason: "Product not as described"}

	_, err := RequestReturn(s, order.ID, req)
	require.Error(t, err)
	assert.Equal(t, "Cannot request return for order with status 'pending'. Order must be delivered.", err.Error())
}

func TestRequestReturnKeepsStatus(t *testing.T) {
	s := newTestStores(t)
	order := placeOrder(t, s, 1)

	_, err := UpdateStatus(s, order.ID, models.OrderStatusDelivered, "delivered", "")
	require.NoError(t, err)

	req := ReturnRequest{Items: []string{order.Items[0].ID}, Reason: "Product not as described"}
	updated, err := RequestReturn(s, order.ID, req)
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusDelivered, updated.Status)
	last := updated.StatusHistory[len(updated.StatusHistory)-1]
	assert.Contains(t, last.Note, "Return requested for items: Dog Food")
	assert.Contains(t, last.Note, "Reason: Product not as described")
}

func TestRequestReturnRejectsUnknownItems(t *testing.T) {
	s := newTestStores(t)
	order := placeOrder(t, s, 1)

	_, err := UpdateStatus(s, order.ID, models.OrderStatusDelivered, "delivered", "")
	require.NoError(t, err)

	_, err = RequestReturn(s, order.ID, ReturnRequest{Items: []string{"oi_bogus"}, Reason: "Product not as described"})
	require.Error(t, err)
	assert.Equal(t, "Invalid item IDs: oi_bogus", err.Error())
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	s := newTestStores(t)

	_, err := UpdateStatus(s, "order_missing", models.OrderStatusConfirmed, "", "")
	require.Error(t, err)
	assert.Equal(t, 404, apierr.StatusOf(err))
	assert.Equal(t, "Order with id 'order_missing' not found", err.Error())
}

func TestCreateFromCheckoutValidatesSummary(t *testing.T) {
	s := newTestStores(t)

	_, err := cartControllers.AddItem(s, "user1", cartControllers.AddToCartRequest{ProductID: "prod_a", Quantity: 2})
	require.NoError(t, err)

	data := CheckoutDataInput{
		ShippingAddress: testCheckoutRequest().ShippingAddress,
		PaymentMethod:   models.PaymentMethod{Type: "card", Last4: "0366", Brand: "Visa"},
		OrderSummary:    checkoutControllers.OrderSummary{Subtotal: 1.0, Tax: 1.0, Shipping: 1.0},
	}
	_, err = CreateFromCheckout(s, "user1", data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Subtotal mismatch")

	data.OrderSummary = checkoutControllers.OrderSummary{Subtotal: 40.0, Tax: 3.2, Shipping: 5.99, Total: 49.19}
	order, err := CreateFromCheckout(s, "user1", data)
	require.NoError(t, err)

	// billing defaults to the shipping address
	assert.Equal(t, "Jane", order.BillingAddress.FirstName)
	assert.Equal(t, "Springfield", order.BillingAddress.City)
}

func TestFilterOrders(t *testing.T) {
	s := newTestStores(t)
	first := placeOrder(t, s, 1)
	second := placeOrder(t, s, 3)

	cancelled, err := Cancel(s, second.ID)
	require.NoError(t, err)

	all, err := filterOrders(s.Orders.List(), listFilters{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	pending, err := filterOrders(s.Orders.List(), listFilters{Status: "pending"})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, first.ID, pending[0].ID)

	byNumber, err := filterOrders(s.Orders.List(), listFilters{Search: cancelled.OrderNumber})
	require.NoError(t, err)
	require.Len(t, byNumber, 1)
	assert.Equal(t, cancelled.ID, byNumber[0].ID)

	byName, err := filterOrders(s.Orders.List(), listFilters{Search: "jane doe"})
	require.NoError(t, err)
	assert.Len(t, byName, 2)

	cheap, err := filterOrders(s.Orders.List(), listFilters{MaxAmount: 50.0, HasMax: true})
	require.NoError(t, err)
	require.Len(t, cheap, 1)
	assert.Equal(t, first.ID, cheap[0].ID)
}

func TestCanTransitionTable(t *testing.T) {
	assert.True(t, canTransition(models.OrderStatusPending, models.OrderStatusConfirmed))
	assert.True(t, canTransition(models.OrderStatusConfirmed, models.OrderStatusShipped))
	assert.True(t, canTransition(models.OrderStatusShipped, models.OrderStatusDelivered))
	assert.False(t, canTransition(models.OrderStatusPending, models.OrderStatusShipped))
	assert.False(t, canTransition(models.OrderStatusDelivered, models.OrderStatusPending))
	assert.False(t, canTransition(models.OrderStatusCancelled, models.OrderStatusConfirmed))
}
