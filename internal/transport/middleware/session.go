package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/notejam/internal/domain"
	"github.com/heartmarshall/notejam/pkg/ctxutil"
)

type sessionResolver interface {
	Resolve(ctx context.Context, rawToken string) (domain.Identity, error)
}

type identityKey struct{}

// WithIdentity stores the resolved identity in ctx.
func WithIdentity(ctx context.Context, id domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromCtx returns the identity stored by Session, or Anonymous.
func IdentityFromCtx(ctx context.Context) domain.Identity {
	if id, ok := ctx.Value(identityKey{}).(domain.Identity); ok {
		return id
	}
	return domain.Anonymous()
}

// SessionOptions configures the Session middleware.
type SessionOptions struct {
	CookieName string
	Secure     bool

	// OnError renders a store failure. Defaults to a plain 503.
	OnError func(w http.ResponseWriter, r *http.Request, err error)
}

// Session resolves the session cookie into a domain.Identity for every
// request. Authenticated requests also get the user id via ctxutil.
// A cookie that no longer maps to a live session is cleared.
func Session(resolver sessionResolver, opts SessionOptions, logger *slog.Logger) Middleware {
	onError := opts.OnError
	if onError == nil {
		onError = func(w http.ResponseWriter, _ *http.Request, _ error) {
			w.Header().Set("Retry-After", "5")
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := ""
			if c, err := r.Cookie(opts.CookieName); err == nil {
				raw = c.Value
			}

			identity, err := resolver.Resolve(r.Context(), raw)
			if err != nil {
				logger.ErrorContext(r.Context(), "resolve session", slog.String("error", err.Error()))
				onError(w, r, err)
				return
			}

			ctx := WithIdentity(r.Context(), identity)
			if identity.IsAuthenticated() {
				ctx = ctxutil.WithUserID(ctx, identity.User.ID)
				markUser(ctx, identity.User.ID)
			} else if raw != "" {
				ClearSessionCookie(w, opts.CookieName, opts.Secure)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth redirects requests without an authenticated identity to
// redirectTo before any handler or resource loader runs.
func RequireAuth(redirectTo string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !IdentityFromCtx(r.Context()).IsAuthenticated() {
				http.Redirect(w, r, redirectTo, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SetSessionCookie writes the raw session token cookie.
func SetSessionCookie(w http.ResponseWriter, name, token string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie on the client.
func ClearSessionCookie(w http.ResponseWriter, name string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// userTracker lets Logger, which wraps Session, see who the request belonged to.
type userTracker struct {
	userID int64
}

type userTrackerKey struct{}

func withUserTracker(ctx context.Context, t *userTracker) context.Context {
	return context.WithValue(ctx, userTrackerKey{}, t)
}

func markUser(ctx context.Context, id int64) {
	if t, ok := ctx.Value(userTrackerKey{}).(*userTracker); ok {
		t.userID = id
	}
}
