package checkout

import (
	"github.com/labellecuisine/ordering-backend/pkg/enums"
	"github.com/labellecuisine/ordering-backend/pkg/types"
)

// CustomerInfo is the contact block every order carries.
type CustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// DeliveryAddress is required when the order type is delivery. Notes are
// free-form and unconstrained.
type DeliveryAddress struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Notes      string `json:"notes,omitempty"`
}

// OrderItem is one submitted cart line.
type OrderItem struct {
	ID       int         `json:"id"`
	Name     string      `json:"name"`
	Price    types.Money `json:"price"`
	Quantity int         `json:"quantity"`
}

// OrderRequest is the wire shape of POST /api/order. The client sends its
// own price breakdown; the service recomputes and verifies it.
type OrderRequest struct {
	OrderType       enums.OrderType     `json:"orderType"`
	CustomerInfo    CustomerInfo        `json:"customerInfo"`
	DeliveryAddress *DeliveryAddress    `json:"deliveryAddress,omitempty"`
	PickupTime      string              `json:"pickupTime,omitempty"`
	PaymentMethod   enums.PaymentMethod `json:"paymentMethod"`
	Items           []OrderItem         `json:"items"`
	Subtotal        types.Money         `json:"subtotal"`
	Tax             types.Money         `json:"tax"`
	DeliveryFee     *types.Money        `json:"deliveryFee,omitempty"`
	Total           types.Money         `json:"total"`
}

// OrderDetails is the tagged variant behind the flat wire shape: exactly
// one of Pickup or Delivery is set, selected by the order type.
type OrderDetails struct {
	Pickup   *PickupDetails
	Delivery *DeliveryDetails
}

// PickupDetails carries the chosen slot for a pickup order.
type PickupDetails struct {
	Time string
}

// DeliveryDetails carries the destination for a delivery order.
type DeliveryDetails struct {
	Address DeliveryAddress
}

// Details folds the optional wire fields into the variant the validation
// and pricing branches switch on.
func (r *OrderRequest) Details() OrderDetails {
	if r.OrderType == enums.OrderTypeDelivery {
		addr := DeliveryAddress{}
		if r.DeliveryAddress != nil {
			addr = *r.DeliveryAddress
		}
		return OrderDetails{Delivery: &DeliveryDetails{Address: addr}}
	}
	return OrderDetails{Pickup: &PickupDetails{Time: r.PickupTime}}
}

// OrderConfirmation is what a successful submission yields.
type OrderConfirmation struct {
	OrderID       string
	Message       string
	EstimatedTime string
}
