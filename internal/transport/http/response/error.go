package response

import (
	"errors"
	"net/http"

	"github.com/aishki/bazario/internal/domain"
	"github.com/aishki/bazario/internal/logger"
)

// ErrorBody is the flat error shape every failed request carries.
type ErrorBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// WriteError converts a domain error into a consistent JSON HTTP error response.
// Non-domain errors are treated as internal errors (500) without leaking details.
// Causes of 5xx responses are logged server-side; the client only sees the
// safe message.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	message := "Internal error"

	var de *domain.Error
	if errors.As(err, &de) {
		status = statusFromKind(de.Kind)
		message = de.Message
	}

	if status >= http.StatusInternalServerError {
		log := logger.WithCtx(r.Context())
		log.Error().
			Err(err).
			Str("path", r.URL.Path).
			Msg("request failed")
	}

	WriteJSON(w, status, ErrorBody{Status: "error", Message: message})
}

// statusFromKind maps domain error kinds to HTTP status codes.
func statusFromKind(kind domain.ErrKind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindAuth:
		return http.StatusUnauthorized
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindStore, domain.KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
