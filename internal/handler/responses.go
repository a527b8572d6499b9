package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/osse101/LithosProtocol_Go/internal/auth"
	"github.com/osse101/LithosProtocol_Go/internal/domain"
	"github.com/osse101/LithosProtocol_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response. Code is the stable machine
// readable error code when the failure came from the economy.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// headers are already sent
		logger.Error(LogMsgEncodeFailed, "error", err)
		return
	}
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// conflictCodes are preconditions that fail because the action already happened
var conflictCodes = map[string]bool{
	"ALREADY_REGISTERED":            true,
	"QUEST_ALREADY_COMPLETED":       true,
	"DAILY_QUEST_ALREADY_COMPLETED": true,
	"ALREADY_ENTERED_TOURNAMENT":    true,
}

// mapServiceError converts a service error to an HTTP status, a user-facing
// message and the domain error code
func mapServiceError(err error) (int, string, string) {
	if errors.Is(err, auth.ErrMissingToken) || errors.Is(err, auth.ErrInvalidToken) {
		return http.StatusUnauthorized, ErrMsgMissingCaller, ""
	}

	code := domain.ErrorCode(err)
	switch domain.ErrorClassOf(err) {
	case domain.ClassAuthorization:
		return http.StatusForbidden, ErrMsgUnauthorized, code
	case domain.ClassNotFound:
		return http.StatusNotFound, ErrMsgNotFound, code
	case domain.ClassPrecondition:
		if conflictCodes[code] {
			return http.StatusConflict, ErrMsgConflict, code
		}
		return http.StatusUnprocessableEntity, ErrMsgPrecondition, code
	case domain.ClassBounds:
		return http.StatusBadRequest, ErrMsgBounds, code
	case domain.ClassHalted:
		return http.StatusServiceUnavailable, ErrMsgPausedError, code
	default:
		return http.StatusInternalServerError, ErrMsgGenericServerError, ""
	}
}

// respondServiceError logs a failed operation and writes the mapped error.
// Expected rejections log at Warn; unclassified failures at Error.
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, message, code := mapServiceError(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
		log.Error(LogMsgOperationFault, "operation", op, "error", err)
	} else {
		log.Warn(LogMsgOperationFailed, "operation", op, "code", code, "error", err)
	}
	respondJSON(w, status, ErrorResponse{Error: message, Code: code})
}

// RespondAuthError writes the 401 used when a request carries no valid
// bearer token. It is shared with the server's caller middleware.
func RespondAuthError(w http.ResponseWriter, r *http.Request, err error) {
	respondJSON(w, http.StatusUnauthorized, ErrorResponse{Error: ErrMsgMissingCaller})
}
