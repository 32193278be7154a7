package checkout

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/labellecuisine/ordering-backend/pkg/enums"
	pkgerrors "github.com/labellecuisine/ordering-backend/pkg/errors"
	"github.com/labellecuisine/ordering-backend/pkg/types"
)

type stubPayments struct {
	err   error
	calls int
}

func (s *stubPayments) Authorize(_ context.Context, _ enums.PaymentMethod, _ types.Money) error {
	s.calls++
	return s.err
}

type stubNotifier struct {
	err  error
	sent chan string
}

func newStubNotifier() *stubNotifier {
	return &stubNotifier{sent: make(chan string, 1)}
}

func (s *stubNotifier) OrderConfirmation(_ context.Context, _, orderID string) error {
	if s.err != nil {
		return s.err
	}
	s.sent <- orderID
	return nil
}

// fixedMidMorning pins the clock at 11:10, so offered slots start at 12:00
// and include 12:30.
func fixedMidMorning() time.Time {
	return time.Date(2026, time.March, 14, 11, 10, 0, 0, time.UTC)
}

func newTestService(t *testing.T, payments *stubPayments, notify *stubNotifier) Service {
	t.Helper()
	svc, err := NewService(testCheckoutConfig(), payments, notify, nil, nil, fixedMidMorning)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestSubmitOrderSuccess(t *testing.T) {
	payments := &stubPayments{}
	notify := newStubNotifier()
	svc := newTestService(t, payments, notify)

	conf, err := svc.SubmitOrder(context.Background(), validPickupRequest())
	if err != nil {
		t.Fatalf("SubmitOrder: %v", err)
	}

	if !regexp.MustCompile(`^ORD-[A-Z0-9]+-[A-Z0-9]+$`).MatchString(conf.OrderID) {
		t.Fatalf("bad order id %q", conf.OrderID)
	}
	if conf.EstimatedTime != "15-20 minutes" {
		t.Fatalf("estimatedTime = %q, want 15-20 minutes", conf.EstimatedTime)
	}
	if conf.Message != "Order placed successfully" {
		t.Fatalf("unexpected message %q", conf.Message)
	}
	if payments.calls != 1 {
		t.Fatalf("expected exactly one authorization attempt, got %d", payments.calls)
	}

	select {
	case sentID := <-notify.sent:
		if sentID != conf.OrderID {
			t.Fatalf("confirmation sent for %q, want %q", sentID, conf.OrderID)
		}
	case <-time.After(time.Second):
		t.Fatal("confirmation was never sent")
	}
}

func TestSubmitOrderDeliveryEstimate(t *testing.T) {
	svc := newTestService(t, &stubPayments{}, newStubNotifier())

	conf, err := svc.SubmitOrder(context.Background(), validDeliveryRequest())
	if err != nil {
		t.Fatalf("SubmitOrder: %v", err)
	}
	if conf.EstimatedTime != "30-45 minutes" {
		t.Fatalf("estimatedTime = %q, want 30-45 minutes", conf.EstimatedTime)
	}
}

func TestSubmitOrderEmptyCartBlockedBeforePayment(t *testing.T) {
	payments := &stubPayments{}
	svc := newTestService(t, payments, newStubNotifier())

	req := validPickupRequest()
	req.Items = nil

	_, err := svc.SubmitOrder(context.Background(), req)
	var appErr *pkgerrors.Error
	if !errors.As(err, &appErr) || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if payments.calls != 0 {
		t.Fatal("payment must not be attempted for an invalid submission")
	}
	details, ok := appErr.Details().(types.FieldErrors)
	if !ok || len(details["items"]) == 0 {
		t.Fatalf("expected items field error, got %v", appErr.Details())
	}
}

func TestSubmitOrderRejectsUnofferedPickupSlot(t *testing.T) {
	svc := newTestService(t, &stubPayments{}, newStubNotifier())

	req := validPickupRequest()
	req.PickupTime = "09:00"

	_, err := svc.SubmitOrder(context.Background(), req)
	var appErr *pkgerrors.Error
	if !errors.As(err, &appErr) || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSubmitOrderRejectsTamperedTotals(t *testing.T) {
	payments := &stubPayments{}
	svc := newTestService(t, payments, newStubNotifier())

	req := validPickupRequest()
	req.Total = types.MustMoney("1")

	_, err := svc.SubmitOrder(context.Background(), req)
	var appErr *pkgerrors.Error
	if !errors.As(err, &appErr) || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if payments.calls != 0 {
		t.Fatal("payment must not be attempted for a mispriced submission")
	}
}

func TestSubmitOrderPaymentFailureIsSingleAttempt(t *testing.T) {
	payments := &stubPayments{err: errors.New("card declined")}
	svc := newTestService(t, payments, newStubNotifier())

	_, err := svc.SubmitOrder(context.Background(), validPickupRequest())
	var appErr *pkgerrors.Error
	if !errors.As(err, &appErr) || appErr.Code() != pkgerrors.CodeInternal {
		t.Fatalf("expected internal error, got %v", err)
	}
	if payments.calls != 1 {
		t.Fatalf("expected exactly one attempt, got %d", payments.calls)
	}
}

func TestOfferedPickupSlotsUseInjectedClock(t *testing.T) {
	svc := newTestService(t, &stubPayments{}, newStubNotifier())

	slots := svc.OfferedPickupSlots()
	if len(slots) == 0 || slots[0] != "12:00" {
		t.Fatalf("expected slots to start at 12:00 for an 11:10 clock, got %v", slots)
	}
	if len(slots) > 12 {
		t.Fatalf("expected at most 12 slots, got %d", len(slots))
	}
}
