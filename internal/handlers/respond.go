// Package handlers provides the HTTP handler implementations for the
// Slack bridge API.
package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	slackclient "github.com/mdasif-me/slack-bot/internal/slack"
	"github.com/mdasif-me/slack-bot/pkg/types"
)

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	// Encode errors past this point cannot be reported to the client;
	// the access log still records the request.
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes err as a JSON error response, deriving the HTTP status
// and machine code from the error type.
func writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	code := slackclient.GetErrorCode(err)
	if code == "" {
		code = types.ErrCodeSlackError
	}

	status := statusForError(err)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", zap.String("code", code), zap.Error(err))
	} else {
		logger.Debug("request rejected", zap.String("code", code), zap.Error(err))
	}

	writeJSON(w, status, types.ErrorResponse{
		OK:      false,
		Error:   code,
		Message: err.Error(),
	})
}

// badRequest writes a 400 with the given machine code and message.
func badRequest(w http.ResponseWriter, code, message string) {
	writeJSON(w, http.StatusBadRequest, types.ErrorResponse{
		OK:      false,
		Error:   code,
		Message: message,
	})
}

// statusForError maps typed Slack errors to HTTP status codes.
// Validation errors carry no predicate and fall through to the code switch.
func statusForError(err error) int {
	switch {
	case slackclient.IsInvalidToken(err):
		return http.StatusUnauthorized
	case slackclient.IsMissingScope(err), slackclient.IsPermissionDenied(err), slackclient.IsNotInChannel(err):
		return http.StatusForbidden
	case slackclient.IsChannelNotFound(err), slackclient.IsMessageNotFound(err):
		return http.StatusNotFound
	case slackclient.IsRateLimited(err):
		return http.StatusTooManyRequests
	}

	switch slackclient.GetErrorCode(err) {
	case types.ErrCodeInvalidRequest, types.ErrCodeMissingText, types.ErrCodeMissingChannel:
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}
