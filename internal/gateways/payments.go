package gateways

import (
	"context"
	"time"

	"github.com/labellecuisine/ordering-backend/internal/checkout"
	"github.com/labellecuisine/ordering-backend/pkg/enums"
	"github.com/labellecuisine/ordering-backend/pkg/logger"
	"github.com/labellecuisine/ordering-backend/pkg/types"
)

// SimulatedPaymentProcessor stands in for the real Stripe/PayPal
// integration. It holds the request for a configured delay and then
// authorizes unconditionally.
type SimulatedPaymentProcessor struct {
	delay time.Duration
	logg  *logger.Logger
}

var _ checkout.PaymentProcessor = (*SimulatedPaymentProcessor)(nil)

// NewSimulatedPaymentProcessor builds the processor with the configured
// processing delay.
func NewSimulatedPaymentProcessor(delay time.Duration, logg *logger.Logger) *SimulatedPaymentProcessor {
	return &SimulatedPaymentProcessor{delay: delay, logg: logg}
}

// Authorize waits out the simulated processing delay, honoring context
// cancellation, and reports success.
func (p *SimulatedPaymentProcessor) Authorize(ctx context.Context, method enums.PaymentMethod, amount types.Money) error {
	if p.delay > 0 {
		timer := time.NewTimer(p.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	if p.logg != nil {
		lctx := p.logg.WithFields(ctx, map[string]any{
			"method": method.String(),
			"amount": amount.String(),
		})
		p.logg.Info(lctx, "payment authorized")
	}
	return nil
}
