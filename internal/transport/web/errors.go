package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/notejam/internal/domain"
)

// retryAfterSeconds is sent with 503 responses.
const retryAfterSeconds = 5

// handleError renders the page for an error that escaped a handler.
// Form-level errors (validation, duplicate email, foreign pad) are handled
// by the handlers themselves and never reach here.
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		h.errorPage(w, r, http.StatusNotFound, "Not found", "")

	case errors.Is(err, domain.ErrUnauthorized):
		http.Redirect(w, r, "/signin", http.StatusFound)

	case errors.Is(err, domain.ErrStoreUnavailable), errors.Is(err, context.DeadlineExceeded):
		h.log.WarnContext(r.Context(), "store unavailable",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds))
		h.errorPage(w, r, http.StatusServiceUnavailable, "Service temporarily unavailable", "")

	default:
		h.log.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		detail := ""
		if h.opts.Development {
			detail = err.Error()
		}
		h.errorPage(w, r, http.StatusInternalServerError, "Something went wrong", detail)
	}
}

// StoreErrorHandler renders store failures raised by middleware running
// before the router, such as session resolution.
func (h *Handler) StoreErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	h.handleError(w, r, err)
}

// errorPage renders the error view without loading the sidebar, which may be
// the thing that failed.
func (h *Handler) errorPage(w http.ResponseWriter, r *http.Request, status int, title, detail string) {
	p := &Page{
		Title:       title,
		User:        currentUser(r),
		ErrorDetail: detail,
	}
	h.write(w, r, status, viewError, p)
}

// formMessages extracts user-facing messages from errors a form can show.
// ok is false when err is not a form error.
func formMessages(err error) (messages []string, ok bool) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return ve.Messages(), true
	case errors.Is(err, domain.ErrDuplicateEmail):
		return []string{"User with this email already exists."}, true
	case errors.Is(err, domain.ErrForeignOwnerPad):
		return []string{"Pad not found."}, true
	}
	return nil, false
}
