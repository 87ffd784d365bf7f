// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to StatusOf for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/httpx"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/logger"
	catalogdomain "github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/domain"
)

// Responder writes mapped error responses. In production, 5xx messages are
// replaced with the generic status text.
type Responder struct {
	production bool
	log        logger.Logger
}

// NewResponder returns a Responder. log may be nil.
func NewResponder(production bool, log logger.Logger) *Responder {
	return &Responder{production: production, log: log}
}

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Unrecognized errors become 500 and are logged with the request context.
func (h *Responder) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusOf(err)
	if status >= http.StatusInternalServerError && h.log != nil {
		h.log.ErrorContext(r.Context(), "request failed", "error", err, "path", r.URL.Path)
	}
	httpx.JSONError(w, status, httpx.SafeError(err, status, h.production))
}

// StatusOf returns the HTTP status for err.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, catalogdomain.ErrInvalidName),
		errors.Is(err, catalogdomain.ErrInvalidCategory),
		errors.Is(err, catalogdomain.ErrInvalidWeight),
		errors.Is(err, catalogdomain.ErrContentRejected):
		return http.StatusBadRequest // 400
	case errors.Is(err, catalogdomain.ErrItemNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, catalogdomain.ErrDuplicateItem):
		return http.StatusConflict // 409
	case errors.Is(err, catalogdomain.ErrRateLimitExceeded):
		return http.StatusTooManyRequests // 429
	default:
		return http.StatusInternalServerError // 500
	}
}
