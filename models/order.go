package models

import "time"

type OrderStatus string

const (
	// Order statuses (typical e-commerce flow)
	OrderStatusPending    OrderStatus = "pending"    // Order placed, awaiting confirmation
	OrderStatusConfirmed  OrderStatus = "confirmed"  // Confirmed by the store
	OrderStatusProcessing OrderStatus = "processing" // Being packed
	OrderStatusShipped    OrderStatus = "shipped"    // Out for delivery
	OrderStatusDelivered  OrderStatus = "delivered"  // Customer received the items
	OrderStatusCancelled  OrderStatus = "cancelled"  // Cancelled before shipping
)

// StatusEntry is one append-only status history record.
type StatusEntry struct {
	Status    OrderStatus `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	Note      string      `json:"note"`
	Location  string      `json:"location,omitempty"`
}

// OrderItem is an immutable snapshot of a cart item taken at order creation.
// Catalog price changes never affect placed orders.
type OrderItem struct {
	ID           string  `json:"id"`
	ProductID    string  `json:"productId"`
	ProductName  string  `json:"productName"`
	ProductImage string  `json:"productImage"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unitPrice"`
	TotalPrice   float64 `json:"totalPrice"`
}

type ShippingAddress struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
	Address   string `json:"address" binding:"required"`
	City      string `json:"city" binding:"required"`
	State     string `json:"state" binding:"required"`
	ZipCode   string `json:"zipCode" binding:"required"`
	Country   string `json:"country" binding:"required"`
}

type BillingAddress struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Address   string `json:"address" binding:"required"`
	City      string `json:"city" binding:"required"`
	State     string `json:"state" binding:"required"`
	ZipCode   string `json:"zipCode" binding:"required"`
	Country   string `json:"country" binding:"required"`
}

// PaymentMethod is the descriptor stored on an order. Raw card data is never
// kept, only the masked tail and detected brand.
type PaymentMethod struct {
	Type  string `json:"type"` // "card", "paypal", "apple_pay"
	Last4 string `json:"last4,omitempty"`
	Brand string `json:"brand,omitempty"`
}

type OrderPricing struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

type ShippingInfo struct {
	Method            string `json:"method"`
	Carrier           string `json:"carrier"`
	TrackingNumber    string `json:"trackingNumber"`
	TrackingURL       string `json:"trackingUrl"`
	EstimatedDelivery string `json:"estimatedDelivery"`
}

type Order struct {
	ID              string          `json:"id"`
	OrderNumber     string          `json:"orderNumber"`
	Status          OrderStatus     `json:"status"`
	StatusHistory   []StatusEntry   `json:"statusHistory"`
	TotalAmount     float64         `json:"totalAmount"`
	Currency        string          `json:"currency"`
	Items           []OrderItem     `json:"items"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	BillingAddress  BillingAddress  `json:"billingAddress"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod"`
	Pricing         OrderPricing    `json:"pricing"`
	Shipping        ShippingInfo    `json:"shipping"`
	OrderDate       time.Time       `json:"orderDate"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// SavedPaymentMethod is a masked card stored per user. At most one may be the
// default at a time.
type SavedPaymentMethod struct {
	ID             string `json:"id"`
	Type           string `json:"type"`
	IsDefault      bool   `json:"isDefault"`
	Last4          string `json:"last4"`
	Brand          string `json:"brand"`
	ExpiryMonth    string `json:"expiryMonth"`
	ExpiryYear     string `json:"expiryYear"`
	CardholderName string `json:"cardholderName"`
}
