package checkout

import (
	"github.com/labellecuisine/ordering-backend/pkg/config"
	"github.com/labellecuisine/ordering-backend/pkg/enums"
	"github.com/labellecuisine/ordering-backend/pkg/types"
)

// Quote is the authoritative server-side price breakdown for a set of
// order items. It is a pure function of the items and the order type.
type Quote struct {
	Subtotal    types.Money `json:"subtotal"`
	DeliveryFee types.Money `json:"deliveryFee"`
	Tax         types.Money `json:"tax"`
	Total       types.Money `json:"total"`
}

// ComputeQuote recomputes the breakdown from scratch. The tax rate applies
// to the subtotal only, never to the delivery fee.
func ComputeQuote(items []OrderItem, orderType enums.OrderType, cfg config.CheckoutConfig) Quote {
	subtotal := types.ZeroMoney()
	for _, item := range items {
		subtotal = subtotal.Add(item.Price.MulInt(item.Quantity))
	}

	fee := types.ZeroMoney()
	if orderType == enums.OrderTypeDelivery {
		fee = types.NewMoney(cfg.DeliveryFee)
	}

	tax := subtotal.MulRate(cfg.TaxRate)

	return Quote{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Tax:         tax,
		Total:       subtotal.Add(fee).Add(tax),
	}
}

// VerifyTotals compares the client-sent breakdown against the recomputed
// quote. Comparison happens at cent precision so binary-float drift in the
// client's arithmetic does not reject an honest payload. A missing
// deliveryFee field is treated as zero.
func VerifyTotals(req *OrderRequest, quote Quote) types.FieldErrors {
	fieldErrs := types.FieldErrors{}

	if !req.Subtotal.EqualRounded(quote.Subtotal) {
		fieldErrs.Add("subtotal", "does not match the priced cart")
	}
	if !req.Tax.EqualRounded(quote.Tax) {
		fieldErrs.Add("tax", "does not match the priced cart")
	}

	sentFee := types.ZeroMoney()
	if req.DeliveryFee != nil {
		sentFee = *req.DeliveryFee
	}
	if !sentFee.EqualRounded(quote.DeliveryFee) {
		fieldErrs.Add("deliveryFee", "does not match the priced cart")
	}

	if !req.Total.EqualRounded(quote.Total) {
		fieldErrs.Add("total", "does not match the priced cart")
	}
	return fieldErrs
}
