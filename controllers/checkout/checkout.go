package checkoutControllers

import (
	"math"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/LeeCheeHoong/PetCare-Portal/apierr"
	cartControllers "github.com/LeeCheeHoong/PetCare-Portal/controllers/cart"
	"github.com/LeeCheeHoong/PetCare-Portal/middleware"
	"github.com/LeeCheeHoong/PetCare-Portal/models"
	"github.com/LeeCheeHoong/PetCare-Portal/store"
)

type shippingRate struct {
	Name     string
	BaseCost float64
	Days     int
}

// shippingRateIDs fixes the quote ordering; "standard" is always first and
// serves as the default method.
var shippingRateIDs = []string{"standard", "express", "overnight"}

var shippingRates = map[string]shippingRate{
	"standard":  {Name: "Standard Shipping", BaseCost: 0.0, Days: 5},
	"express":   {Name: "Express Shipping", BaseCost: 15.99, Days: 2},
	"overnight": {Name: "Overnight Shipping", BaseCost: 29.99, Days: 1},
}

type ShippingMethod struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Cost          float64 `json:"cost"`
	EstimatedDays int     `json:"estimatedDays"`
}

type ShippingValidationResponse struct {
	Valid            bool    `json:"valid"`
	Message          string  `json:"message"`
	SuggestedAddress *string `json:"suggestedAddress"`
}

type ShippingCalculationResponse struct {
	Success         bool             `json:"success"`
	Cost            float64          `json:"cost"`
	Currency        string           `json:"currency"`
	EstimatedDays   int              `json:"estimatedDays"`
	ShippingMethods []ShippingMethod `json:"shippingMethods"`
}

// PaymentMethodInput either references a saved method by id or carries the
// full card details for a new one.
type PaymentMethodInput struct {
	ID             string `json:"id"`
	CardNumber     string `json:"cardNumber"`
	ExpiryMonth    string `json:"expiryMonth"`
	ExpiryYear     string `json:"expiryYear"`
	CVV            string `json:"cvv"`
	CardholderName string `json:"cardholderName"`
	IsDefault      bool   `json:"isDefault"`
}

type OrderSummary struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

type CalculateShippingRequest struct {
	Address  models.ShippingAddress `json:"address" binding:"required"`
	Subtotal float64                `json:"subtotal"`
}

var nonDigits = regexp.MustCompile(`\D`)

// ---------- Core Logic ----------

// ValidateShippingAddress checks the fields gin binding cannot express. The
// structural required/email checks happen at bind time.
func ValidateShippingAddress(address models.ShippingAddress) ShippingValidationResponse {
	var errors []string

	phoneDigits := nonDigits.ReplaceAllString(address.Phone, "")
	if len(phoneDigits) < 10 {
		errors = append(errors, "Phone number must have at least 10 digits")
	}

	if len(errors) > 0 {
		return ShippingValidationResponse{Valid: false, Message: strings.Join(errors, "; ")}
	}
	return ShippingValidationResponse{Valid: true, Message: "Address is valid"}
}

// CalculateShipping quotes every shipping method for the address. Standard
// shipping is free once the cart subtotal crosses the free-shipping threshold.
func CalculateShipping(address models.ShippingAddress, subtotal float64) (ShippingCalculationResponse, error) {
	validation := ValidateShippingAddress(address)
	if !validation.Valid {
		return ShippingCalculationResponse{}, apierr.InvalidRequest("Invalid shipping address: %s", validation.Message)
	}

	methods := make([]ShippingMethod, 0, len(shippingRateIDs))
	for _, id := range shippingRateIDs {
		rate := shippingRates[id]
		cost := rate.BaseCost
		if id == "standard" && subtotal >= cartControllers.FreeShippingThreshold {
			cost = 0.0
		}
		methods = append(methods, ShippingMethod{
			ID:            id,
			Name:          rate.Name,
			Cost:          cost,
			EstimatedDays: rate.Days,
		})
	}

	defaultMethod := methods[0]
	return ShippingCalculationResponse{
		Success:         true,
		Cost:            defaultMethod.Cost,
		Currency:        "USD",
		EstimatedDays:   defaultMethod.EstimatedDays,
		ShippingMethods: methods,
	}, nil
}

var cardSeparators = regexp.MustCompile(`[\s-]`)

// ValidateCardNumber runs the Luhn check after stripping spaces and dashes.
func ValidateCardNumber(cardNumber string) bool {
	cardNumber = cardSeparators.ReplaceAllString(cardNumber, "")
	if cardNumber == "" {
		return false
	}
	for _, r := range cardNumber {
		if r < '0' || r > '9' {
			return false
		}
	}

	checksum := 0
	double := false
	for i := len(cardNumber) - 1; i >= 0; i-- {
		d := int(cardNumber[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		checksum += d
		double = !double
	}
	return checksum%10 == 0
}

func DetectCardBrand(cardNumber string) string {
	cardNumber = cardSeparators.ReplaceAllString(cardNumber, "")
	switch {
	case strings.HasPrefix(cardNumber, "4"):
		return "Visa"
	case len(cardNumber) >= 2 && cardNumber[0] == '5' && cardNumber[1] >= '1' && cardNumber[1] <= '5':
		return "Mastercard"
	case strings.HasPrefix(cardNumber, "34") || strings.HasPrefix(cardNumber, "37"):
		return "American Express"
	case strings.HasPrefix(cardNumber, "6011") || strings.HasPrefix(cardNumber, "65"):
		return "Discover"
	default:
		return "Unknown"
	}
}

// AddPaymentMethod saves a new card (masked, only last4 and brand retained)
// or resolves an existing one by id.
func AddPaymentMethod(s *store.Stores, userID string, input PaymentMethodInput) (models.SavedPaymentMethod, error) {
	if input.ID == "" {
		if input.CardNumber == "" || input.ExpiryMonth == "" || input.ExpiryYear == "" ||
			input.CVV == "" || input.CardholderName == "" {
			return models.SavedPaymentMethod{}, apierr.InvalidRequest(
				"Card number, expiry date, CVV, and cardholder name are required for new cards")
		}

		if !ValidateCardNumber(input.CardNumber) {
			return models.SavedPaymentMethod{}, apierr.InvalidRequest("Invalid card number")
		}

		normalized := cardSeparators.ReplaceAllString(input.CardNumber, "")
		last4 := normalized
		if len(last4) > 4 {
			last4 = last4[len(last4)-4:]
		}
		method := models.SavedPaymentMethod{
			ID:             models.NewID("pm"),
			Type:           "card",
			IsDefault:      input.IsDefault,
			Last4:          last4,
			Brand:          DetectCardBrand(input.CardNumber),
			ExpiryMonth:    input.ExpiryMonth,
			ExpiryYear:     input.ExpiryYear,
			CardholderName: input.CardholderName,
		}

		if input.IsDefault {
			s.PaymentMethods.ClearDefaults(userID)
		}
		s.PaymentMethods.Add(userID, method)
		return method, nil
	}

	if method, ok := s.PaymentMethods.Get(userID, input.ID); ok {
		return method, nil
	}
	return models.SavedPaymentMethod{}, apierr.NotFound("Payment method with id '%s' not found", input.ID)
}

// ValidateOrderSummary cross-checks client totals against server figures,
// allowing a one-cent rounding tolerance per field.
func ValidateOrderSummary(summary OrderSummary, actualSubtotal, actualTax, actualShipping float64) error {
	const tolerance = 0.01

	if math.Abs(summary.Subtotal-actualSubtotal) > tolerance {
		return apierr.InvalidRequest("Subtotal mismatch. Expected %v, got %v", actualSubtotal, summary.Subtotal)
	}
	if math.Abs(summary.Tax-actualTax) > tolerance {
		return apierr.InvalidRequest("Tax mismatch. Expected %v, got %v", actualTax, summary.Tax)
	}
	if math.Abs(summary.Shipping-actualShipping) > tolerance {
		return apierr.InvalidRequest("Shipping mismatch. Expected %v, got %v", actualShipping, summary.Shipping)
	}
	return nil
}

// ---------- Handlers ----------

// POST /api/shipping/validate
func ValidateShipping() gin.HandlerFunc {
	return func(c *gin.Context) {
		var address models.ShippingAddress
		if err := c.ShouldBindJSON(&address); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, ValidateShippingAddress(address))
	}
}

// POST /api/shipping/calculate
func CalculateShippingHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CalculateShippingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		// subtotal may also arrive as a query parameter
		if v := c.Query("subtotal"); v != "" {
			if subtotal, err := strconv.ParseFloat(v, 64); err == nil {
				req.Subtotal = subtotal
			}
		}
		resp, err := CalculateShipping(req.Address, req.Subtotal)
		if err != nil {
			apierr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// GET /api/payment-methods
func GetPaymentMethods(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.PaymentMethods.List(middleware.UserID(c)))
	}
}

// POST /api/payment-methods
func AddPaymentMethodHandler(s *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PaymentMethodInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		method, err := AddPaymentMethod(s, middleware.UserID(c), input)
		if err != nil {
			apierr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, method)
	}
}
