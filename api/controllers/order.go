package controllers

import (
	"context"
	"net/http"

	"github.com/labellecuisine/ordering-backend/api/responses"
	"github.com/labellecuisine/ordering-backend/internal/checkout"
	pkgerrors "github.com/labellecuisine/ordering-backend/pkg/errors"
	"github.com/labellecuisine/ordering-backend/pkg/logger"
	"github.com/labellecuisine/ordering-backend/pkg/types"
)

// The order endpoint's envelopes are part of the public storefront
// contract and predate the standard data/error shape, so they are written
// verbatim rather than through the response helpers.
type orderSuccessResponse struct {
	Success       bool   `json:"success"`
	OrderID       string `json:"orderId"`
	Message       string `json:"message"`
	EstimatedTime string `json:"estimatedTime"`
}

type orderValidationResponse struct {
	Error   string            `json:"error"`
	Details types.FieldErrors `json:"details"`
}

type orderFailureResponse struct {
	Error string `json:"error"`
}

// OrderSubmit handles POST /api/order.
func OrderSubmit(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if svc == nil {
			responses.WriteJSON(w, http.StatusInternalServerError, orderFailureResponse{Error: "Failed to process order. Please try again."})
			return
		}

		var req checkout.OrderRequest
		fieldErrs, err := decodeBody(r, &req)
		if err != nil {
			// an unreadable body is an unexpected failure, not a
			// field validation error
			if logg != nil {
				logg.Error(ctx, "decode order request", err)
			}
			responses.WriteJSON(w, http.StatusInternalServerError, orderFailureResponse{Error: "Failed to process order. Please try again."})
			return
		}
		if !fieldErrs.Empty() {
			responses.WriteJSON(w, http.StatusBadRequest, orderValidationResponse{
				Error:   "Invalid order data",
				Details: fieldErrs,
			})
			return
		}

		conf, err := svc.SubmitOrder(ctx, &req)
		if err != nil {
			writeOrderError(ctx, logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusCreated, orderSuccessResponse{
			Success:       true,
			OrderID:       conf.OrderID,
			Message:       conf.Message,
			EstimatedTime: conf.EstimatedTime,
		})
	}
}

func writeOrderError(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error) {
	if logg != nil {
		logg.Error(ctx, "order submission failed", err)
	}

	typed := pkgerrors.As(err)
	if typed != nil && typed.Code() == pkgerrors.CodeValidation {
		details, _ := typed.Details().(types.FieldErrors)
		if details == nil {
			details = types.FieldErrors{}
		}
		responses.WriteJSON(w, http.StatusBadRequest, orderValidationResponse{
			Error:   "Invalid order data",
			Details: details,
		})
		return
	}

	responses.WriteJSON(w, http.StatusInternalServerError, orderFailureResponse{Error: "Failed to process order. Please try again."})
}

// PickupSlots handles GET /api/checkout/pickup-slots.
func PickupSlots(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}
		responses.WriteSuccess(w, map[string]any{"slots": svc.OfferedPickupSlots()})
	}
}
