// Package httputil centralizes JSON request decoding and response writing so
// handlers stay thin and error envelopes stay consistent.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "veriface/pkg/domain-errors"
)

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a domain error into a JSON error envelope. Internal
// and unavailable errors omit the description so infrastructure details never
// leak to clients.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	body := map[string]string{"error": string(code)}

	if code != dErrors.CodeInternal && code != dErrors.CodeUnavailable {
		var e *dErrors.Error
		if errors.As(err, &e) && e.Message != "" {
			body["error_description"] = e.Message
		}
	}

	WriteJSON(w, dErrors.ToHTTPStatus(code), body)
}

// Decode reads a JSON request body into T, writing a bad request envelope on
// failure. The boolean reports whether decoding succeeded.
func Decode[T any](w http.ResponseWriter, r *http.Request) (T, bool) {
	var v T
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return v, false
	}
	return v, true
}
