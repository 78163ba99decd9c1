package web

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/notejam/internal/domain"
	"github.com/heartmarshall/notejam/internal/transport/dataloader"
	"github.com/heartmarshall/notejam/internal/transport/middleware"
)

type sessionResolver interface {
	Resolve(ctx context.Context, rawToken string) (domain.Identity, error)
}

type padBatchRepo interface {
	GetOwnedByIDs(ctx context.Context, ownerID int64, ids []int64) ([]domain.Pad, error)
}

type healthRoutes interface {
	Register(mux *http.ServeMux)
}

// RouterDeps holds everything NewRouter wires together.
type RouterDeps struct {
	Handler      *Handler
	Health       healthRoutes
	Sessions     sessionResolver
	PadBatch     padBatchRepo
	Limiter      *middleware.RateLimiter
	Logger       *slog.Logger
	QueryTimeout time.Duration
	// SignInPerMinute caps sign-in attempts per client IP.
	SignInPerMinute int
}

// NewRouter returns the root handler. Probes bypass the session layer;
// every other route goes through session resolution, and protected routes
// through RequireAuth before any resource loader or handler runs.
func NewRouter(d RouterDeps) http.Handler {
	h := d.Handler
	app := http.NewServeMux()

	authed := middleware.Chain(
		middleware.RequireAuth("/signin"),
		dataloader.Middleware(d.PadBatch),
	)
	protect := func(fn http.HandlerFunc) http.Handler { return authed(fn) }
	limitSignIn := d.Limiter.Limit(d.SignInPerMinute, http.MethodPost)

	// Account
	app.HandleFunc("GET /signup", h.signupForm)
	app.HandleFunc("POST /signup", h.signup)
	app.HandleFunc("GET /signin", h.signinForm)
	app.Handle("POST /signin", limitSignIn(http.HandlerFunc(h.signin)))
	app.HandleFunc("GET /signout", h.signout)
	app.HandleFunc("GET /forgot-password", h.forgotForm)
	app.HandleFunc("POST /forgot-password", h.forgot)
	app.Handle("GET /settings", protect(h.settingsForm))
	app.Handle("POST /settings", protect(h.settings))

	// Notes listing
	app.Handle("GET /{$}", protect(h.notesList))

	// Pads
	app.Handle("GET /pads/create", protect(h.padCreateForm))
	app.Handle("POST /pads/create", protect(h.padCreate))
	app.Handle("GET /pads/{id}", protect(h.withPad(h.padNotes)))
	app.Handle("GET /pads/{id}/edit", protect(h.withPad(h.padEditForm)))
	app.Handle("POST /pads/{id}/edit", protect(h.withPad(h.padEdit)))
	app.Handle("GET /pads/{id}/delete", protect(h.withPad(h.padDeleteForm)))
	app.Handle("POST /pads/{id}/delete", protect(h.withPad(h.padDelete)))

	// Notes
	app.Handle("GET /notes/create", protect(h.noteCreateForm))
	app.Handle("POST /notes/create", protect(h.noteCreate))
	app.Handle("GET /notes/{id}", protect(h.withNote(h.noteView)))
	app.Handle("GET /notes/{id}/edit", protect(h.withNote(h.noteEditForm)))
	app.Handle("POST /notes/{id}/edit", protect(h.withNote(h.noteEdit)))
	app.Handle("GET /notes/{id}/delete", protect(h.withNote(h.noteDeleteForm)))
	app.Handle("POST /notes/{id}/delete", protect(h.withNote(h.noteDelete)))

	app.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		h.handleError(w, r, domain.ErrNotFound)
	})

	session := middleware.Session(d.Sessions, middleware.SessionOptions{
		CookieName: h.opts.SessionCookie,
		Secure:     h.opts.SecureCookies,
		OnError:    h.StoreErrorHandler,
	}, d.Logger)

	root := http.NewServeMux()
	if d.Health != nil {
		d.Health.Register(root)
	}
	root.Handle("/", middleware.Chain(
		middleware.SecureHeaders(),
		middleware.Detach(d.QueryTimeout),
		session,
	)(app))

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.Recovery(d.Logger),
	)(root)
}
