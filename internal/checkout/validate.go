package checkout

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/labellecuisine/ordering-backend/pkg/types"
)

var validate = validator.New()

// ValidateOrder checks an order request against the checkout rules and
// returns the field-error map. offeredSlots is the pickup slot sequence in
// effect at validation time; a pickup order must name one of them. An
// empty map means the request is valid.
func ValidateOrder(req *OrderRequest, offeredSlots []string) types.FieldErrors {
	fieldErrs := types.FieldErrors{}

	if !req.OrderType.IsValid() {
		fieldErrs.Add("orderType", "must be pickup or delivery")
	}

	if utf8.RuneCountInString(req.CustomerInfo.Name) < 2 {
		fieldErrs.Add("customerInfo.name", "Name is required")
	}
	if err := validate.Var(req.CustomerInfo.Email, "required,email"); err != nil {
		fieldErrs.Add("customerInfo.email", "Valid email is required")
	}
	if utf8.RuneCountInString(req.CustomerInfo.Phone) < 10 {
		fieldErrs.Add("customerInfo.phone", "Valid phone number is required")
	}

	// the variant branch only makes sense once the tag itself is valid
	var details OrderDetails
	if req.OrderType.IsValid() {
		details = req.Details()
	}
	switch {
	case details.Delivery != nil:
		addr := details.Delivery.Address
		if utf8.RuneCountInString(addr.Street) < 5 {
			fieldErrs.Add("deliveryAddress.street", "Street address is required (min 5 characters)")
		}
		if utf8.RuneCountInString(addr.City) < 2 {
			fieldErrs.Add("deliveryAddress.city", "City is required")
		}
		if utf8.RuneCountInString(addr.PostalCode) < 4 {
			fieldErrs.Add("deliveryAddress.postalCode", "Valid postal code is required")
		}
	case details.Pickup != nil:
		if strings.TrimSpace(details.Pickup.Time) == "" {
			fieldErrs.Add("pickupTime", "Please select a pickup time")
		} else if !slotOffered(details.Pickup.Time, offeredSlots) {
			fieldErrs.Add("pickupTime", "Selected pickup time is no longer available")
		}
	}

	if !req.PaymentMethod.IsValid() {
		fieldErrs.Add("paymentMethod", "must be stripe or paypal")
	}

	if len(req.Items) == 0 {
		fieldErrs.Add("items", "Cart cannot be empty")
	}
	for _, item := range req.Items {
		if item.ID <= 0 || strings.TrimSpace(item.Name) == "" || item.Price.IsNegative() || item.Quantity < 1 {
			fieldErrs.Add("items", "each item needs an id, name, non-negative price and quantity of at least 1")
			break
		}
	}

	return fieldErrs
}

func slotOffered(slot string, offered []string) bool {
	for _, candidate := range offered {
		if candidate == slot {
			return true
		}
	}
	return false
}
