package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/labellecuisine/ordering-backend/pkg/config"
	"github.com/labellecuisine/ordering-backend/pkg/enums"
	pkgerrors "github.com/labellecuisine/ordering-backend/pkg/errors"
	"github.com/labellecuisine/ordering-backend/pkg/logger"
	"github.com/labellecuisine/ordering-backend/pkg/metrics"
	"github.com/labellecuisine/ordering-backend/pkg/types"
)

// PaymentProcessor is the boundary to the external payment collaborator.
// One call per submission; retry and idempotency design live on the other
// side of this interface.
type PaymentProcessor interface {
	Authorize(ctx context.Context, method enums.PaymentMethod, amount types.Money) error
}

// NotificationSender is the boundary to the external notification
// collaborator (confirmation email, kitchen ticket).
type NotificationSender interface {
	OrderConfirmation(ctx context.Context, email, orderID string) error
}

// Service validates, prices and submits orders.
type Service interface {
	SubmitOrder(ctx context.Context, req *OrderRequest) (*OrderConfirmation, error)
	OfferedPickupSlots() []string
	Price(items []OrderItem, orderType enums.OrderType) Quote
}

type service struct {
	cfg      config.CheckoutConfig
	payments PaymentProcessor
	notify   NotificationSender
	logg     *logger.Logger
	subs     *metrics.SubmissionMetrics
	now      func() time.Time
}

// NewService builds the checkout service. The clock is injected so slot
// generation and order ids are testable; pass nil for time.Now.
func NewService(cfg config.CheckoutConfig, payments PaymentProcessor, notify NotificationSender, logg *logger.Logger, subs *metrics.SubmissionMetrics, now func() time.Time) (Service, error) {
	if payments == nil {
		return nil, fmt.Errorf("payment processor required")
	}
	if notify == nil {
		return nil, fmt.Errorf("notification sender required")
	}
	if now == nil {
		now = time.Now
	}
	return &service{
		cfg:      cfg,
		payments: payments,
		notify:   notify,
		logg:     logg,
		subs:     subs,
		now:      now,
	}, nil
}

// OfferedPickupSlots recomputes the slot sequence from the current
// wall-clock time on every call.
func (s *service) OfferedPickupSlots() []string {
	return PickupSlots(s.now(), s.cfg.MaxSlots)
}

// Price recomputes the breakdown for the given items and order type.
func (s *service) Price(items []OrderItem, orderType enums.OrderType) Quote {
	return ComputeQuote(items, orderType, s.cfg)
}

// SubmitOrder runs the full pipeline: field validation, totals
// verification, payment authorization, id generation, notification.
// Exactly one attempt per submission; no retry on any failure.
func (s *service) SubmitOrder(ctx context.Context, req *OrderRequest) (*OrderConfirmation, error) {
	if req == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid order data")
	}

	fieldErrs := ValidateOrder(req, s.OfferedPickupSlots())
	if !fieldErrs.Empty() {
		s.countOrder(req, "rejected")
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid order data").WithDetails(fieldErrs)
	}

	quote := ComputeQuote(req.Items, req.OrderType, s.cfg)
	if mismatches := VerifyTotals(req, quote); !mismatches.Empty() {
		s.countOrder(req, "rejected")
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid order data").WithDetails(mismatches)
	}

	if err := s.payments.Authorize(ctx, req.PaymentMethod, quote.Total); err != nil {
		s.countOrder(req, "failed")
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "authorize payment")
	}

	orderID := NewOrderID(s.now())

	if s.logg != nil {
		lctx := s.logg.WithFields(ctx, map[string]any{
			"order_id":   orderID,
			"order_type": req.OrderType.String(),
			"customer":   req.CustomerInfo.Email,
			"total":      quote.Total.String(),
			"item_count": len(req.Items),
		})
		s.logg.Info(lctx, "new order received")
	}

	// Confirmation delivery must not hold up the response; a failed
	// notification is logged, never surfaced.
	go func(email, id string) {
		nctx := context.WithoutCancel(ctx)
		if err := s.notify.OrderConfirmation(nctx, email, id); err != nil && s.logg != nil {
			s.logg.Error(nctx, "send order confirmation", err)
		}
	}(req.CustomerInfo.Email, orderID)

	s.countOrder(req, "accepted")

	return &OrderConfirmation{
		OrderID:       orderID,
		Message:       "Order placed successfully",
		EstimatedTime: estimatedTime(req.OrderType),
	}, nil
}

func (s *service) countOrder(req *OrderRequest, outcome string) {
	if s.subs == nil {
		return
	}
	s.subs.IncOrder(req.OrderType.String(), outcome)
}

func estimatedTime(orderType enums.OrderType) string {
	if orderType == enums.OrderTypePickup {
		return "15-20 minutes"
	}
	return "30-45 minutes"
}
