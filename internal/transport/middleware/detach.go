package middleware

import (
	"context"
	"net/http"
	"time"
)

// Detach replaces the request context with one that survives the client
// going away but expires after timeout. Store calls made by the handler run
// to completion or to the deadline, never half way because of a disconnect.
// Context values (request id, identity) are kept.
func Detach(timeout time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), timeout)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
