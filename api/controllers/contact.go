package controllers

import (
	"context"
	"net/http"

	"github.com/labellecuisine/ordering-backend/api/responses"
	"github.com/labellecuisine/ordering-backend/internal/contact"
	pkgerrors "github.com/labellecuisine/ordering-backend/pkg/errors"
	"github.com/labellecuisine/ordering-backend/pkg/logger"
	"github.com/labellecuisine/ordering-backend/pkg/types"
)

type contactSuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type contactValidationResponse struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Details types.FieldErrors `json:"details"`
}

type contactFailureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ContactSubmit handles POST /api/contact. Like the order endpoint, its
// envelopes are fixed by the public storefront contract.
func ContactSubmit(svc contact.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if svc == nil {
			responses.WriteJSON(w, http.StatusInternalServerError, contactFailureResponse{Error: "Failed to process your request. Please try again."})
			return
		}

		var req contact.Request
		fieldErrs, err := decodeBody(r, &req)
		if err != nil {
			if logg != nil {
				logg.Error(ctx, "decode contact request", err)
			}
			responses.WriteJSON(w, http.StatusInternalServerError, contactFailureResponse{Error: "Failed to process your request. Please try again."})
			return
		}
		if !fieldErrs.Empty() {
			responses.WriteJSON(w, http.StatusBadRequest, contactValidationResponse{
				Success: false,
				Error:   "Invalid form data",
				Details: fieldErrs,
			})
			return
		}

		receipt, err := svc.Submit(ctx, &req)
		if err != nil {
			writeContactError(ctx, logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, contactSuccessResponse{
			Success: true,
			Message: receipt.Message,
		})
	}
}

func writeContactError(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error) {
	if logg != nil {
		logg.Error(ctx, "contact submission failed", err)
	}

	typed := pkgerrors.As(err)
	if typed != nil && typed.Code() == pkgerrors.CodeValidation {
		details, _ := typed.Details().(types.FieldErrors)
		if details == nil {
			details = types.FieldErrors{}
		}
		responses.WriteJSON(w, http.StatusBadRequest, contactValidationResponse{
			Success: false,
			Error:   "Invalid form data",
			Details: details,
		})
		return
	}

	responses.WriteJSON(w, http.StatusInternalServerError, contactFailureResponse{Error: "Failed to process your request. Please try again."})
}
