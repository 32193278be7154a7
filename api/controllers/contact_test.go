package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labellecuisine/ordering-backend/internal/contact"
	pkgerrors "github.com/labellecuisine/ordering-backend/pkg/errors"
	"github.com/labellecuisine/ordering-backend/pkg/types"
)

type stubContactService struct {
	receipt *contact.Receipt
	err     error
}

func (s stubContactService) Submit(context.Context, *contact.Request) (*contact.Receipt, error) {
	return s.receipt, s.err
}

const validContactBody = `{
	"name": "Claire Fontaine",
	"email": "claire@example.com",
	"subject": "Private dining",
	"message": "Do you host groups of twelve on Saturdays?"
}`

func TestContactSubmitSuccess(t *testing.T) {
	handler := ContactSubmit(stubContactService{receipt: &contact.Receipt{
		Message: "Thank you for your message. We'll get back to you soon!",
	}}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(validContactBody))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body.Success || body.Message == "" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestContactSubmitValidationFailure(t *testing.T) {
	fieldErrs := types.FieldErrors{}
	fieldErrs.Add("email", "Valid email is required")
	handler := ContactSubmit(stubContactService{
		err: pkgerrors.New(pkgerrors.CodeValidation, "Invalid form data").WithDetails(fieldErrs),
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(validContactBody))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}

	var body struct {
		Success bool                `json:"success"`
		Error   string              `json:"error"`
		Details map[string][]string `json:"details"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Success {
		t.Fatal("success must be false on validation failure")
	}
	if body.Error != "Invalid form data" || len(body.Details["email"]) == 0 {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestContactSubmitUnexpectedFailure(t *testing.T) {
	handler := ContactSubmit(stubContactService{err: errors.New("smtp down")}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(validContactBody))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", resp.Code)
	}

	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Success || body.Error != "Failed to process your request. Please try again." {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestContactSubmitWrongTypedFieldIsValidation(t *testing.T) {
	handler := ContactSubmit(stubContactService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{"name":123,"email":"sophie@example.com"}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d: %s", resp.Code, resp.Body.String())
	}

	var body struct {
		Success bool                `json:"success"`
		Error   string              `json:"error"`
		Details map[string][]string `json:"details"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Success || body.Error != "Invalid form data" {
		t.Fatalf("unexpected body %+v", body)
	}
	if len(body.Details["name"]) == 0 {
		t.Fatalf("expected a name detail, got %v", body.Details)
	}
}
