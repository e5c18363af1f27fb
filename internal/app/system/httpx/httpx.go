// Package httpx holds the JSON request/response conventions shared by
// every API feature: a decode helper, a respond helper, and the mapping
// from domain errors to the stable status codes the SPA relies on.
package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gasaunivers/campushub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// errorBody is the envelope for every failure response. The SPA shows
// Message as-is; nothing else is leaked.
type errorBody struct {
	Message string `json:"message"`
}

// Respond writes v as JSON with the given status code.
func Respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes a {"message": …} envelope with the given status code.
func Error(w http.ResponseWriter, status int, message string) {
	Respond(w, status, errorBody{Message: message})
}

// Decode parses the request body as JSON into dst.
func Decode(r *http.Request, dst any) error {
	if r.Body == nil {
		return fmt.Errorf("empty body")
	}
	return json.NewDecoder(r.Body).Decode(dst)
}

// BadRequest responds 400 with the error's message. Use for validation
// errors whose text is already user-facing.
func BadRequest(w http.ResponseWriter, err error) {
	Error(w, http.StatusBadRequest, err.Error())
}

// NotFound responds 404 with the canonical message.
func NotFound(w http.ResponseWriter) {
	Error(w, http.StatusNotFound, "Not found")
}

// Forbidden responds 403 with the canonical message.
func Forbidden(w http.ResponseWriter) {
	Error(w, http.StatusForbidden, "Forbidden")
}

// Unauthorized responds 401 with the canonical message.
func Unauthorized(w http.ResponseWriter) {
	Error(w, http.StatusUnauthorized, "Unauthorized")
}

// ServerError logs err and responds 500 with a generic message, never
// leaking internals to the client.
func ServerError(w http.ResponseWriter, log *zap.Logger, op string, err error) {
	log.Error(op, zap.Error(err))
	Error(w, http.StatusInternalServerError, "Server error")
}

// DomainError maps a store/domain error to its response: validation
// errors become 400s with their own message, a missing document becomes
// 404, everything else is a logged 500.
func DomainError(w http.ResponseWriter, log *zap.Logger, op string, err error) {
	switch {
	case errors.Is(err, models.ErrMissingFields),
		errors.Is(err, models.ErrMissingDates),
		errors.Is(err, models.ErrInvalidType),
		errors.Is(err, models.ErrIndividuelExactlyOne),
		errors.Is(err, models.ErrCollectifAtLeastOne):
		BadRequest(w, err)
	case errors.Is(err, mongo.ErrNoDocuments):
		NotFound(w)
	default:
		ServerError(w, log, op, err)
	}
}
