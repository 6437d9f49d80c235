package checkoutControllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeeCheeHoong/PetCare-Portal/apierr"
	"github.com/LeeCheeHoong/PetCare-Portal/memstore"
	"github.com/LeeCheeHoong/PetCare-Portal/models"
)

func validAddress() models.ShippingAddress {
	return models.ShippingAddress{
		FirstName: "Jane", LastName: "Doe", Email: "jane@example.com",
		Phone: "555-123-4567", Address: "1 Main St", City: "Springfield",
		State: "IL", ZipCode: "62701", Country: "US",
	}
}

func TestValidateShippingAddress(t *testing.T) {
	resp := ValidateShippingAddress(validAddress())
	assert.True(t, resp.Valid)
	assert.Equal(t, "Address is valid", resp.Message)
}

func TestValidateShippingAddressShortPhone(t *testing.T) {
	addr := validAddress()
	addr.Phone = "555-1234"
	resp := ValidateShippingAddress(addr)
	assert.False(t, resp.Valid)
	assert.Equal(t, "Phone number must have at least 10 digits", resp.Message)
}

func TestValidateShippingAddressStripsFormatting(t *testing.T) {
	addr := validAddress()
	addr.Phone = "(555) 123-4567"
	assert.True(t, ValidateShippingAddress(addr).Valid)
}

func TestCalculateShippingQuotesAllMethods(t *testing.T) {
	resp, err := CalculateShipping(validAddress(), 20.0)
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "USD", resp.Currency)
	require.Len(t, resp.ShippingMethods, 3)
	assert.Equal(t, "standard", resp.ShippingMethods[0].ID)
	assert.Equal(t, "express", resp.ShippingMethods[1].ID)
	assert.Equal(t, "overnight", resp.ShippingMethods[2].ID)
	assert.InDelta(t, 15.99, resp.ShippingMethods[1].Cost, 0.001)
	assert.InDelta(t, 29.99, resp.ShippingMethods[2].Cost, 0.001)

	// selected cost echoes the standard method
	assert.Equal(t, resp.ShippingMethods[0].Cost, resp.Cost)
	assert.Equal(t, resp.ShippingMethods[0].EstimatedDays, resp.EstimatedDays)
}

func TestCalculateShippingFreeStandardOverThreshold(t *testing.T) {
	resp, err := CalculateShipping(validAddress(), 75.0)
	require.NoError(t, err)
	assert.Zero(t, resp.ShippingMethods[0].Cost)
	// express and overnight keep their base cost
	assert.InDelta(t, 15.99, resp.ShippingMethods[1].Cost, 0.001)
}

func TestCalculateShippingRejectsInvalidAddress(t *testing.T) {
	addr := validAddress()
	addr.Phone = "123"
	_, err := CalculateShipping(addr, 10.0)
	require.Error(t, err)
	assert.Equal(t, 400, apierr.StatusOf(err))
	assert.Contains(t, err.Error(), "Invalid shipping address:")
}

func TestValidateCardNumber(t *testing.T) {
	assert.True(t, ValidateCardNumber("4532015112830366"))
	assert.True(t, ValidateCardNumber("4532 0151 1283 0366"))
	assert.True(t, ValidateCardNumber("4532-0151-1283-0366"))
	assert.False(t, ValidateCardNumber("4532015112830367"))
	assert.False(t, ValidateCardNumber("4532a15112830366"))
	assert.False(t, ValidateCardNumber(""))
}

func TestDetectCardBrand(t *testing.T) {
	assert.Equal(t, "Visa", DetectCardBrand("4242424242424242"))
	assert.Equal(t, "Mastercard", DetectCardBrand("5500005555555559"))
	assert.Equal(t, "American Express", DetectCardBrand("340000000000009"))
	assert.Equal(t, "American Express", DetectCardBrand("370000000000002"))
	assert.Equal(t, "Discover", DetectCardBrand("6011000000000004"))
	assert.Equal(t, "Discover", DetectCardBrand("6500000000000002"))
	assert.Equal(t, "Unknown", DetectCardBrand("9999999999999999"))
}

func TestAddPaymentMethodMasksCard(t *testing.T) {
	s := memstore.New()

	method, err := AddPaymentMethod(s, "user1", PaymentMethodInput{
		CardNumber:     "4532 0151 1283 0366",
		ExpiryMonth:    "09",
		ExpiryYear:     "2028",
		CVV:            "123",
		CardholderName: "Jane Doe",
	})
	require.NoError(t, err)

	assert.Equal(t, "card", method.Type)
	assert.Equal(t, "0366", method.Last4)
	assert.Equal(t, "Visa", method.Brand)
	assert.False(t, method.IsDefault)
}

func TestAddPaymentMethodShortCardNumber(t *testing.T) {
	s := memstore.New()

	// "0" passes the Luhn checksum; the mask keeps the whole number when it
	// is shorter than four digits
	var method models.SavedPaymentMethod
	var err error
	assert.NotPanics(t, func() {
		method, err = AddPaymentMethod(s, "user1", PaymentMethodInput{
			CardNumber:     "0",
			ExpiryMonth:    "09",
			ExpiryYear:     "2028",
			CVV:            "123",
			CardholderName: "Jane Doe",
		})
	})
	require.NoError(t, err)
	assert.Equal(t, "0", method.Last4)
	assert.Equal(t, "Unknown", method.Brand)
}

func TestAddPaymentMethodDefaultIsExclusive(t *testing.T) {
	s := memstore.New()

	method, err := AddPaymentMethod(s, "user1", PaymentMethodInput{
		CardNumber:     "4532015112830366",
		ExpiryMonth:    "09",
		ExpiryYear:     "2028",
		CVV:            "123",
		CardholderName: "Jane Doe",
		IsDefault:      true,
	})
	require.NoError(t, err)
	assert.True(t, method.IsDefault)

	defaults := 0
	for _, pm := range s.PaymentMethods.List("user1") {
		if pm.IsDefault {
			defaults++
			assert.Equal(t, method.ID, pm.ID)
		}
	}
	assert.Equal(t, 1, defaults)
}

func TestAddPaymentMethodMissingFields(t *testing.T) {
	s := memstore.New()

	_, err := AddPaymentMethod(s, "user1", PaymentMethodInput{CardNumber: "4532015112830366"})
	require.Error(t, err)
	assert.Equal(t, "Card number, expiry date, CVV, and cardholder name are required for new cards", err.Error())
}

func TestAddPaymentMethodInvalidLuhn(t *testing.T) {
	s := memstore.New()

	_, err := AddPaymentMethod(s, "user1", PaymentMethodInput{
		CardNumber:     "4532015112830367",
		ExpiryMonth:    "09",
		ExpiryYear:     "2028",
		CVV:            "123",
		CardholderName: "Jane Doe",
	})
	require.Error(t, err)
	assert.Equal(t, "Invalid card number", err.Error())
}

func TestAddPaymentMethodByID(t *testing.T) {
	s := memstore.New()

	// every user starts with a seeded default card
	method, err := AddPaymentMethod(s, "user1", PaymentMethodInput{ID: "pm_default"})
	require.NoError(t, err)
	assert.Equal(t, "pm_default", method.ID)
	assert.Equal(t, "4242", method.Last4)

	_, err = AddPaymentMethod(s, "user1", PaymentMethodInput{ID: "pm_missing"})
	require.Error(t, err)
	assert.Equal(t, 404, apierr.StatusOf(err))
}

func TestValidateOrderSummary(t *testing.T) {
	summary := OrderSummary{Subtotal: 40.0, Tax: 3.2, Shipping: 5.99, Total: 49.19}
	require.NoError(t, ValidateOrderSummary(summary, 40.0, 3.2, 5.99))

	// one cent off is within tolerance
	require.NoError(t, ValidateOrderSummary(summary, 40.01, 3.2, 5.99))
}

func TestValidateOrderSummaryMismatchOrder(t *testing.T) {
	summary := OrderSummary{Subtotal: 10.0, Tax: 10.0, Shipping: 10.0}

	err := ValidateOrderSummary(summary, 40.0, 3.2, 5.99)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Subtotal mismatch")

	err = ValidateOrderSummary(summary, 10.0, 3.2, 5.99)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Tax mismatch")

	err = ValidateOrderSummary(summary, 10.0, 10.0, 5.99)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Shipping mismatch")
}
