package orderControllers

import (
	"encoding/hex"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/LeeCheeHoong/PetCare-Portal/apierr"
	cartControllers "github.com/LeeCheeHoong/PetCare-Portal/controllers/cart"
	checkoutControllers "github.com/LeeCheeHoong/PetCare-Portal/controllers/checkout"
	"github.com/LeeCheeHoong/PetCare-Portal/middleware"
	"github.com/LeeCheeHoong/PetCare-Portal/models"
	"github.com/LeeCheeHoong/PetCare-Portal/store"
)

type shippingMethodConfig struct {
	Name    string
	Carrier string
	Days    int
	Cost    float64
}

var shippingMethods = map[string]shippingMethodConfig{
	"standard":  {Name: "Standard Shipping", Carrier: "USPS", Days: 5, Cost: 0.0},
	"express":   {Name: "Express Shipping", Carrier: "FedEx", Days: 2, Cost: 15.99},
	"overnight": {Name: "Overnight Shipping", Carrier: "FedEx", Days: 1, Cost: 29.99},
}

// allowedTransitions is the order state machine. Delivered and cancelled are
// terminal.
var allowedTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.OrderStatusPending:    {models.OrderStatusConfirmed, models.OrderStatusCancelled},
	models.OrderStatusConfirmed:  {models.OrderStatusProcessing, models.OrderStatusShipped, models.OrderStatusCancelled},
	models.OrderStatusProcessing: {models.OrderStatusShipped, models.OrderStatusCancelled},
	models.OrderStatusShipped:    {models.OrderStatusDelivered},
	models.OrderStatusDelivered:  {},
	models.OrderStatusCancelled:  {},
}

func canTransition(from, to models.OrderStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type CheckoutRequest struct {
	ShippingAddress models.ShippingAddress `json:"shippingAddress" binding:"required"`
	BillingAddress  models.BillingAddress  `json:"billingAddress" binding:"required"`
	PaymentMethod   models.PaymentMethod   `json:"paymentMethod" binding:"required"`
	ShippingMethod  string                 `json:"shippingMethod"`
}

// CheckoutDataInput is the one-shot checkout payload: address, payment, and
// the client's view of the totals, which must match the server's cart.
type CheckoutDataInput struct {
	ShippingAddress models.ShippingAddress           `json:"shippingAddress" binding:"required"`
	PaymentMethod   models.PaymentMethod             `json:"paymentMethod" binding:"required"`
	OrderSummary    checkoutControllers.OrderSummary `json:"orderSummary" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
	Note   string             `json:"note"`
}

type ShipOrderRequest struct {
	Carrier           string `json:"carrier" binding:"required"`
	TrackingNumber    string `json:"trackingNumber" binding:"required"`
	TrackingURL       string `json:"trackingUrl" binding:"required"`
	EstimatedDelivery string `json:"estimatedDelivery" binding:"required"`
}

type ReturnRequest struct {
	Items  []string `json:"items" binding:"required,min=1"`
	Reason string   `json:"reason" binding:"required,min=10,max=500"`
}

type OrderActionResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Order   models.Order `json:"order"`
}

func generateTrackingNumber() string {
	u := uuid.New()
	return "TRK" + strings.ToUpper(hex.EncodeToString(u[:])[:12])
}

// CalculateShippingCost applies the method's cost, waived entirely for
// orders over the free-shipping threshold.
func CalculateShippingCost(subtotal float64, method string) float64 {
	config, ok := shippingMethods[method]
	if !ok {
		config = shippingMethods["standard"]
	}
	if subtotal >= cartControllers.FreeShippingThreshold {
		return 0.0
	}
	return config.Cost
}

// ---------- Core Logic ----------

// CreateFromCart turns the user's cart into an order: refreshes the cart,
// snapshots its items, prices the shipping method, and clears the cart once
// the order is stored.
func CreateFromCart(s *store.Stores, userID string, req CheckoutRequest) (models.Order, error) {
	cart := s.Carts.GetOrCreate(userID)
	if len(cart.Items) == 0 || cart.TotalItems == 0 {
		return models.Order{}, apierr.InvalidRequest("Cannot create order from empty cart")
	}

	cart = cartControllers.Refresh(s, userID)
	for _, item := range cart.Items {
		if !item.Product.InStock {
			return models.Order{}, apierr.InvalidRequest("Product '%s' is no longer in stock", item.Product.Name)
		}
	}
	if len(cart.Items) == 0 {
		return models.Order{}, apierr.InvalidRequest("Cannot create order from empty cart")
	}

	orderItems := make([]models.OrderItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		image := ""
		if len(item.Product.Images) > 0 {
			image = item.Product.Images[0]
		}
		orderItems = append(orderItems, models.OrderItem{
			ID:           models.NewID("oi"),
			ProductID:    item.Product.ID,
			ProductName:  item.Product.Name,
			ProductImage: image,
			Quantity:     item.Quantity,
			UnitPrice:    item.Product.Price,
			TotalPrice:   item.Product.Price * float64(item.Quantity),
		})
	}

	method := strings.ToLower(req.ShippingMethod)
	config, ok := shippingMethods[method]
	if !ok {
		config = shippingMethods["standard"]
	}
	shippingCost := CalculateShippingCost(cart.Subtotal, method)

	pricing := models.OrderPricing{
		Subtotal: cart.Subtotal,
		Shipping: shippingCost,
		Tax:      cart.Tax,
		Discount: 0.0,
		Total:    cart.Subtotal + shippingCost + cart.Tax,
	}

	now := time.Now().UTC()
	trackingNumber := generateTrackingNumber()
	order := models.Order{
		ID:          models.NewID("order"),
		OrderNumber: s.Orders.NextOrderNumber(),
		Status:      models.OrderStatusPending,
		StatusHistory: []models.StatusEntry{
			{Status: models.OrderStatusPending, Timestamp: now, Note: "Order placed successfully"},
		},
		TotalAmount:     pricing.Total,
		Currency:        "USD",
		Items:           orderItems,
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
		PaymentMethod:   req.PaymentMethod,
		Pricing:         pricing,
		Shipping: models.ShippingInfo{
			Method:            config.Name,
			Carrier:           config.Carrier,
			TrackingNumber:    trackingNumber,
			TrackingURL:       fmt.Sprintf("https://tracking.%s.com/%s", strings.ToLower(config.Carrier), trackingNumber),
			EstimatedDelivery: now.Add(time.Duration(config.Days) * 24 * time.Hour).Format("2006-01-02"),
		},
		OrderDate: now,
		UpdatedAt: now,
	}

	s.Orders.Save(order)
	cartControllers.Clear(s, userID)
	broadcastOrderUpdate(order)
	return order, nil
}

// CreateFromCheckout is the one-shot checkout path. The client's totals are
// validated against the server-side cart before the order is created; the
// billing address defaults to the shipping address.
func CreateFromCheckout(s *store.Stores, userID string, data CheckoutDataInput) (models.Order, error) {
	cart := s.Carts.GetOrCreate(userID)
	if len(cart.Items) == 0 || cart.TotalItems == 0 {
		return models.Order{}, apierr.InvalidRequest("Cannot create order from empty cart")
	}

	validation := checkoutControllers.ValidateShippingAddress(data.ShippingAddress)
	if !validation.Valid {
		return models.Order{}, apierr.InvalidRequest("Invalid shipping address: %s", validation.Message)
	}

	if err := checkoutControllers.ValidateOrderSummary(data.OrderSummary, cart.Subtotal, cart.Tax, cart.Shipping); err != nil {
		return models.Order{}, err
	}

	return CreateFromCart(s, userID, CheckoutRequest{
		ShippingAddress: data.ShippingAddress,
		BillingAddress: models.BillingAddress{
			FirstName: data.ShippingAddress.FirstName,
			LastName:  data.ShippingAddress.LastName,
			Address:   data.ShippingAddress.Address,
			City:      data.ShippingAddress.City,
			State:     data.ShippingAddress.State,
			ZipCode:   data.ShippingAddress.ZipCode,
			Country:   data.ShippingAddress.Country,
		},
		PaymentMethod:  data.PaymentMethod,
		ShippingMethod: "standard",
	})
}

// UpdateStatus appends a history entry and overwrites the current status.
// The transition table is not consulted here so back-office tooling can
// correct order state freely.
func UpdateStatus(s *store.Stores, orderID string, newStatus models.OrderStatus, note, location string) (models.Order, error) {
	order, ok := s.Orders.Get(orderID)
	if !ok {
		return models.Order{}, apierr.NotFound("Order with id '%s' not found", orderID)
	}

	now := time.Now().UTC()
	order.StatusHistory = append(order.StatusHistory, models.StatusEntry{
		Status:    newStatus,
		Timestamp: now,
		Note:      note,
		Location:  location,
	})
	order.Status = newStatus
	order.UpdatedAt = now

	s.Orders.Save(order)
	broadcastOrderUpdate(order)
	return order, nil
}

func Cancel(s *store.Stores, orderID string) (models.Order, error) {
	order, ok := s.Orders.Get(orderID)
	if !ok {
		return models.Order{}, apierr.NotFound("Order with id '%s' not found", orderID)
	}

	if !canTransition(order.Status, models.OrderStatusCancelled) {
		return models.Order{}, apierr.InvalidRequest("Cannot cancel order with status '%s'", order.Status)
	}

	return UpdateStatus(s, orderID, models.OrderStatusCancelled, "Order cancelled by customer", "")
}

func Ship(s *store.Stores, orderID string, req ShipOrderRequest) (models.Order, error) {
	order, ok := s.Orders.Get(orderID)
	if !ok {
		return models.Order{}, apierr.NotFound("Order with id '%s' not found", orderID)
	}

	if !canTransition(order.Status, models.OrderStatusShipped) {
		return models.Order{}, apierr.InvalidRequest("Cannot ship order with status '%s'", order.Status)
	}

	order.Shipping.Carrier = req.Carrier
	order.Shipping.TrackingNumber = req.TrackingNumber
	order.Shipping.TrackingURL = req.TrackingURL
	order.Shipping.EstimatedDelivery = req.EstimatedDelivery
	s.Orders.Save(order)

	return UpdateStatus(s, orderID, models.OrderStatusShipped,
		fmt.Sprintf("Order shipped via %s. Tracking: %s", req.Carrier, req.TrackingNumber), "")
}

// RequestReturn records a return request in the status history. The order's
// status does not change; support follows up out of band.
func RequestReturn(s *store.Stores, orderID string, req ReturnRequest) (models.Order, error) {
	order, ok := s.Orders.Get(orderID)
	if !ok {
		return models.Order{}, apierr.NotFound("Order with id '%s' not found", orderID)
	}

	if order.Status != models.OrderStatusDelivered {
		return models.Order{}, apierr.InvalidRequest(
			"Cannot request return for order with status '%s'. Order must be delivered.", order.Status)
	}

	validIDs := make(map[string]bool, len(order.Items))
	for _, item := range order.Items {
		validIDs[item.ID] = true
	}
	var invalid []string
	for _, id := range req.Items {
		if !validIDs[id] {
			invalid = append(invalid, id)
		}
	}
	if len(invalid) > 0 {
		return models.Order{}, apierr.InvalidRequest("Invalid item IDs: %s", strings.Join(invalid, ", "))
	}

	requested := make(map[string]bool, len(req.Items))
	for _, id := range req.Items {
		requested[id] = true
	}
	var names []string
	for _, item := range order.Items {
		if requested[item.ID] {
			names = append(names, item.ProductName)
		}
	}

	now := time.Now().UTC()
	order.StatusHistory = append(order.StatusHistory, models.StatusEntry{
		Status:    order.Status,
		Timestamp: now,
		Note:      fmt.Sprintf("Return requested for items: %s. Reason: %s", strings.Join(names, ", "), req.Reason),
	})
	order.UpdatedAt = now

	s.Orders.Save(order)
	return order, nil
}

type listFilters struct {
	Search    string
	Status    string
	DateFrom  string
	DateTo    string
	MinAmount float64
	MaxAmount float64
	HasMin    bool
	HasMax    bool
	Page      int
	Limit     int
}

func filterOrders(orders []models.Order, f listFilters) ([]models.Order, error) {
	filtered := orders

	if f.Search != "" {
		search := strings.ToLower(f.Search)
		var kept []models.Order
		for _, o := range filtered {
			fullName := strings.ToLower(o.ShippingAddress.FirstName + " " + o.ShippingAddress.LastName)
			if strings.Contains(strings.ToLower(o.OrderNumber), search) ||
				strings.Contains(strings.ToLower(o.ShippingAddress.Email), search) ||
				strings.Contains(fullName, search) {
				kept = append(kept, o)
			}
		}
		filtered = kept
	}

	if f.Status != "" {
		var kept []models.Order
		for _, o := range filtered {
			if string(o.Status) == f.Status {
				kept = append(kept, o)
			}
		}
		filtered = kept
	}

	if f.DateFrom != "" {
		from, err := models.ParseTime(f.DateFrom)
		if err != nil {
			return nil, apierr.InvalidRequest("Invalid dateFrom: %s", f.DateFrom)
		}
		var kept []models.Order
		for _, o := range filtered {
			if !o.OrderDate.Before(from) {
				kept = append(kept, o)
			}
		}
		filtered = kept
	}

	if f.DateTo != "" {
		to, err := models.ParseTime(f.DateTo)
		if err != nil {
			return nil, apierr.InvalidRequest("Invalid dateTo: %s", f.DateTo)
		}
		var kept []models.Order
		for _, o := range filtered {
			if !o.OrderDate.After(to) {
				kept = append(kept, o)
			}
		}
		filtered = kept
	}

	if f.HasMin {
		var kept []models.Order
		for _, o := range filtered {
			if o.TotalAmount >= f.MinAmount {
				kept = append(kept, o)
			}
		}
		filtered = kept
	}

	if f.HasMax {
		var kept []models.Order
		for _, o := range filtered {
			if o.TotalAmount <= f.MaxAmount {
				kept = append(kept, o)
			}
		}
		filtered = kept
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].OrderDate.After(filtered[j].OrderDate)
	})
	return filtered, nil
}

// ---------- Handlers ----------

// POST /api/orders/checkout
func Checkout(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		order, err := CreateFromCart(s, middleware.UserID(c), req)
		if err != nil {
			middleware.RecordOrderOperation("create", false)
			apierr.Abort(c, err)
			return
		}
		middleware.RecordOrderOperation("create", true)
		c.JSON(http.StatusCreated, order)
	}
}

// POST /api/orders
func CreateOrder(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		var data CheckoutDataInput
		if err := c.ShouldBindJSON(&data); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		order, err := CreateFromCheckout(s, middleware.UserID(c), data)
		if err != nil {
			middleware.RecordOrderOperation("create", false)
			apierr.Abort(c, err)
			return
		}
		middleware.RecordOrderOperation("create", true)
		c.JSON(http.StatusCreated, order)
	}
}

// GET /api/orders
func ListOrders(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		f := listFilters{
			Search:   c.Query("search"),
			Status:   c.Query("status"),
			DateFrom: c.Query("dateFrom"),
			DateTo:   c.Query("dateTo"),
			Page:     1,
			Limit:    10,
		}
		if v := c.Query("minAmount"); v != "" {
			if amount, err := strconv.ParseFloat(v, 64); err == nil {
				f.MinAmount = amount
				f.HasMin = true
			}
		}
		if v := c.Query("maxAmount"); v != "" {
			if amount, err := strconv.ParseFloat(v, 64); err == nil {
				f.MaxAmount = amount
				f.HasMax = true
			}
		}
		if v, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil && v >= 1 {
			f.Page = v
		}
		if v, err := strconv.Atoi(c.DefaultQuery("limit", "10")); err == nil && v >= 1 && v <= 100 {
			f.Limit = v
		}

		filtered, err := filterOrders(s.Orders.List(), f)
		if err != nil {
			apierr.Abort(c, err)
			return
		}

		total := len(filtered)
		start, end := models.PageBounds(f.Page, f.Limit, total)
		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"orders":     filtered[start:end],
			"pagination": models.NewPagination(f.Page, f.Limit, total),
		})
	}
}

// GET /api/orders/:orderId
func GetOrder(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderId")
		order, ok := s.Orders.Get(orderID)
		if !ok {
			apierr.Abort(c, apierr.NotFound("Order with id '%s' not found", orderID))
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// POST /api/orders/:orderId/cancel
func CancelOrder(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := Cancel(s, c.Param("orderId"))
		if err != nil {
			middleware.RecordOrderOperation("cancel", false)
			apierr.Abort(c, err)
			return
		}
		middleware.RecordOrderOperation("cancel", true)
		c.JSON(http.StatusOK, OrderActionResponse{
			Success: true,
			Message: "Order cancelled successfully",
			Order:   order,
		})
	}
}

// POST /api/orders/:orderId/return
func RequestOrderReturn(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ReturnRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		order, err := RequestReturn(s, c.Param("orderId"), req)
		if err != nil {
			middleware.RecordOrderOperation("return", false)
			apierr.Abort(c, err)
			return
		}
		middleware.RecordOrderOperation("return", true)
		c.JSON(http.StatusOK, OrderActionResponse{
			Success: true,
			Message: "Return request submitted successfully. Our team will contact you shortly.",
			Order:   order,
		})
	}
}

// PATCH /api/orders/:orderId/status
func UpdateOrderStatus(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		note := req.Note
		if note == "" {
			note = fmt.Sprintf("Status updated to %s", req.Status)
		}
		order, err := UpdateStatus(s, c.Param("orderId"), req.Status, note, "")
		if err != nil {
			middleware.RecordOrderOperation("update_status", false)
			apierr.Abort(c, err)
			return
		}
		middleware.RecordOrderOperation("update_status", true)
		c.JSON(http.StatusOK, order)
	}
}

// PATCH /api/orders/:orderId/ship
func ShipOrder(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ShipOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		order, err := Ship(s, c.Param("orderId"), req)
		if err != nil {
			middleware.RecordOrderOperation("ship", false)
			apierr.Abort(c, err)
			return
		}
		middleware.RecordOrderOperation("ship", true)
		c.JSON(http.StatusOK, order)
	}
}
