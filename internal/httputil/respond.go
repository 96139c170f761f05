// Package httputil provides JSON request/response helpers shared by the
// HTTP handlers. Every response body carries the {success, ...} envelope.
package httputil

import (
	"encoding/json"
	"net/http"
)

// maxRequestBodyBytes bounds inbound JSON bodies.
const maxRequestBodyBytes = 1 << 20 // 1 MiB

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes a {success:false, error:msg} envelope.
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, map[string]any{
		"success": false,
		"error":   msg,
	})
}

// BadRequest writes a 400 response with a generic error message.
func BadRequest(w http.ResponseWriter, msg string) {
	WriteError(w, http.StatusBadRequest, msg)
}

// BadRequestDetails writes a 400 response enumerating per-field failures.
func BadRequestDetails(w http.ResponseWriter, msg string, details map[string]string) {
	WriteJSON(w, http.StatusBadRequest, map[string]any{
		"success": false,
		"error":   msg,
		"details": details,
	})
}

// NotFound writes a 404 response.
func NotFound(w http.ResponseWriter, msg string) {
	WriteError(w, http.StatusNotFound, msg)
}

// Forbidden writes a 403 response.
func Forbidden(w http.ResponseWriter, msg string) {
	WriteError(w, http.StatusForbidden, msg)
}

// InternalError writes a 500 response. Callers must log the underlying
// error themselves; the message here is intentionally opaque.
func InternalError(w http.ResponseWriter, msg string) {
	WriteError(w, http.StatusInternalServerError, msg)
}

// DecodeJSON decodes the request body into v. On failure it writes a 400
// response and returns false.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		BadRequest(w, "invalid JSON body")
		return false
	}
	return true
}
