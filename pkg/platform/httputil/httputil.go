// Package httputil centralizes JSON response writing and request decoding so
// every handler produces the same envelopes.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	"mirath/pkg/apperrors"
)

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates an error into the JSON error envelope. Internal
// errors omit the description so server details never reach clients.
func WriteError(w http.ResponseWriter, err error) {
	code := apperrors.CodeInternal
	description := ""

	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		code = appErr.Code
		if code != apperrors.CodeInternal {
			description = appErr.Description
		}
	}

	body := map[string]string{"error": string(code)}
	if description != "" {
		body["error_description"] = description
	}
	WriteJSON(w, apperrors.ToHTTPStatus(code), body)
}

// Decode reads a JSON request body into dst, rejecting unknown fields.
func Decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return apperrors.New(apperrors.CodeBadRequest, "invalid request body: "+err.Error())
	}
	return nil
}
