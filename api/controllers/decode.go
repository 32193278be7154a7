package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"

	"github.com/labellecuisine/ordering-backend/pkg/types"
)

// decodeBody reads a fixed-contract endpoint body. A wrong-typed field
// inside well-formed JSON comes back as field errors so the caller can
// answer with the validation envelope; only an unreadable body is returned
// as an error.
func decodeBody(r *http.Request, dst any) (types.FieldErrors, error) {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return nil, nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		fieldErrs := types.FieldErrors{}
		fieldErrs.Add(field, "Expected "+jsonTypeName(typeErr.Type)+", received "+typeErr.Value)
		return fieldErrs, nil
	}

	if errors.Is(err, types.ErrInvalidMoney) {
		fieldErrs := types.FieldErrors{}
		fieldErrs.Add("body", "Expected number")
		return fieldErrs, nil
	}

	return nil, err
}

func jsonTypeName(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.String:
		return "string"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}
