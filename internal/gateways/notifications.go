package gateways

import (
	"context"
	"time"

	"github.com/labellecuisine/ordering-backend/internal/checkout"
	"github.com/labellecuisine/ordering-backend/internal/contact"
	"github.com/labellecuisine/ordering-backend/pkg/logger"
)

// SimulatedNotifier stands in for the email/CRM collaborator behind both
// submission pipelines.
type SimulatedNotifier struct {
	delay time.Duration
	logg  *logger.Logger
}

var (
	_ checkout.NotificationSender = (*SimulatedNotifier)(nil)
	_ contact.NotificationSender  = (*SimulatedNotifier)(nil)
)

// NewSimulatedNotifier builds the notifier with the configured relay delay.
func NewSimulatedNotifier(delay time.Duration, logg *logger.Logger) *SimulatedNotifier {
	return &SimulatedNotifier{delay: delay, logg: logg}
}

// OrderConfirmation pretends to send the confirmation email for an order.
func (n *SimulatedNotifier) OrderConfirmation(ctx context.Context, email, orderID string) error {
	if err := n.wait(ctx); err != nil {
		return err
	}
	if n.logg != nil {
		lctx := n.logg.WithFields(ctx, map[string]any{
			"email":    email,
			"order_id": orderID,
		})
		n.logg.Info(lctx, "order confirmation sent")
	}
	return nil
}

// ContactMessage pretends to relay a contact form message to the
// restaurant inbox.
func (n *SimulatedNotifier) ContactMessage(ctx context.Context, req *contact.Request) error {
	if err := n.wait(ctx); err != nil {
		return err
	}
	if n.logg != nil {
		lctx := n.logg.WithFields(ctx, map[string]any{
			"email":   req.Email,
			"subject": req.Subject,
		})
		n.logg.Info(lctx, "contact message relayed")
	}
	return nil
}

func (n *SimulatedNotifier) wait(ctx context.Context) error {
	if n.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(n.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
