package contact

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	pkgerrors "github.com/labellecuisine/ordering-backend/pkg/errors"
	"github.com/labellecuisine/ordering-backend/pkg/logger"
	"github.com/labellecuisine/ordering-backend/pkg/metrics"
	"github.com/labellecuisine/ordering-backend/pkg/types"
)

var validate = validator.New()

// Request is the wire shape of POST /api/contact. Phone is the only
// optional field.
type Request struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Receipt carries the human-readable confirmation for a delivered message.
type Receipt struct {
	Message string
}

// NotificationSender is the boundary to the external collaborator that
// relays the message to the restaurant.
type NotificationSender interface {
	ContactMessage(ctx context.Context, req *Request) error
}

// Service validates and relays contact form submissions.
type Service interface {
	Submit(ctx context.Context, req *Request) (*Receipt, error)
}

type service struct {
	notify NotificationSender
	logg   *logger.Logger
	subs   *metrics.SubmissionMetrics
}

// NewService builds the contact service.
func NewService(notify NotificationSender, logg *logger.Logger, subs *metrics.SubmissionMetrics) (Service, error) {
	if notify == nil {
		return nil, fmt.Errorf("notification sender required")
	}
	return &service{notify: notify, logg: logg, subs: subs}, nil
}

// Validate checks the request and returns the field-error map. An empty
// map means the request is valid.
func Validate(req *Request) types.FieldErrors {
	fieldErrs := types.FieldErrors{}

	if utf8.RuneCountInString(req.Name) < 2 {
		fieldErrs.Add("name", "Name is required")
	}
	if err := validate.Var(req.Email, "required,email"); err != nil {
		fieldErrs.Add("email", "Valid email is required")
	}
	if strings.TrimSpace(req.Subject) == "" {
		fieldErrs.Add("subject", "Subject is required")
	}
	if strings.TrimSpace(req.Message) == "" {
		fieldErrs.Add("message", "Message is required")
	}
	return fieldErrs
}

// Submit validates the message and hands it to the notification
// collaborator. One attempt; a failed relay is surfaced for manual
// resubmission, never retried.
func (s *service) Submit(ctx context.Context, req *Request) (*Receipt, error) {
	if req == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid form data")
	}

	if fieldErrs := Validate(req); !fieldErrs.Empty() {
		s.count("rejected")
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid form data").WithDetails(fieldErrs)
	}

	if err := s.notify.ContactMessage(ctx, req); err != nil {
		s.count("failed")
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "relay contact message")
	}

	if s.logg != nil {
		lctx := s.logg.WithFields(ctx, map[string]any{
			"email":   req.Email,
			"subject": req.Subject,
		})
		s.logg.Info(lctx, "contact form submission")
	}
	s.count("accepted")

	return &Receipt{Message: "Thank you for your message. We'll get back to you soon!"}, nil
}

func (s *service) count(outcome string) {
	if s.subs == nil {
		return
	}
	s.subs.IncContact(outcome)
}
