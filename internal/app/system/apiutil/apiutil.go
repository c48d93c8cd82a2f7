// internal/app/system/apiutil/apiutil.go

// Package apiutil implements the JSON contract shared by every API endpoint:
// responses always carry a boolean success flag, and failures add a
// human-readable message.
package apiutil

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Dhivanan46/Hire-hub/internal/app/system/limits"
)

// failure is the wire shape of every error response.
type failure struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Respond writes v as JSON with the given status. v is expected to carry its
// own Success field.
func Respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Fail writes the standard failure envelope.
func Fail(w http.ResponseWriter, status int, message string) {
	Respond(w, status, failure{Success: false, Message: message})
}

// DecodeJSON reads a JSON request body into dst, capping the body size.
// The returned error message is safe to surface to the caller.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxJSONBodySize)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return errors.New("request body too large")
		}
		return errors.New("invalid JSON body")
	}
	return nil
}
