package helpers

import (
	"encoding/json"
	"errors"
	"net/http"

	"groupschedule/internal/domain"
)

// ErrorResponse is the body of every failed request.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse is the body of mutations that return no data.
// swagger:model SuccessResponse
type SuccessResponse struct {
	Success bool `json:"success"`
}

// Generic messages for statuses whose cause must not leak to clients.
const (
	MsgNotFound      = "event not found"
	MsgUnauthorized  = "passphrase does not match"
	MsgInternalError = "internal server error"
	MsgInvalidBody   = "invalid JSON body"
)

// WriteJSON sets Content-Type to application/json, writes statusCode, and encodes body.
func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteJSONError writes {"error": message} with statusCode.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: message})
}

// WriteSuccess writes 200 {"success": true}.
func WriteSuccess(w http.ResponseWriter) {
	WriteJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

// ErrorStatus maps a service error to its HTTP status and client-facing message.
// Validation messages are passed through; storage and unexpected faults are not.
func ErrorStatus(err error) (int, string) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Message
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, MsgUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, MsgNotFound
	default:
		return http.StatusInternalServerError, MsgInternalError
	}
}
