// Package web serves the server-rendered HTML interface: account forms,
// pads and notes. Every /pads/{id} and /notes/{id} route resolves the
// resource under the signed-in user before its handler runs.
package web

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/heartmarshall/notejam/internal/auth"
	"github.com/heartmarshall/notejam/internal/domain"
	"github.com/heartmarshall/notejam/internal/service/access"
	authsvc "github.com/heartmarshall/notejam/internal/service/auth"
	notesvc "github.com/heartmarshall/notejam/internal/service/note"
	padsvc "github.com/heartmarshall/notejam/internal/service/pad"
	"github.com/heartmarshall/notejam/internal/transport/middleware"
)

// ---------------------------------------------------------------------------
// Service interfaces (consumer-defined)
// ---------------------------------------------------------------------------

type authService interface {
	Register(ctx context.Context, input authsvc.RegisterInput) (*domain.User, error)
	SignIn(ctx context.Context, input authsvc.SignInInput) (*authsvc.SignInResult, error)
	SignOut(ctx context.Context, rawToken string) (domain.Identity, error)
	ChangePassword(ctx context.Context, input authsvc.ChangePasswordInput) error
	ForgotPassword(ctx context.Context, email string) error
}

type padService interface {
	Load(ctx context.Context, id, ownerID int64) (access.Owned[domain.Pad], error)
	List(ctx context.Context, ownerID int64) ([]domain.Pad, error)
	Create(ctx context.Context, ownerID int64, input padsvc.PadInput) (*domain.Pad, error)
	Update(ctx context.Context, owned access.Owned[domain.Pad], input padsvc.PadInput) (*domain.Pad, error)
	Delete(ctx context.Context, owned access.Owned[domain.Pad]) error
}

type noteService interface {
	Load(ctx context.Context, id, ownerID int64) (access.Owned[domain.Note], error)
	List(ctx context.Context, ownerID int64, order domain.NoteOrder) ([]domain.Note, error)
	ListByPad(ctx context.Context, pad access.Owned[domain.Pad], order domain.NoteOrder) ([]domain.Note, error)
	Create(ctx context.Context, ownerID int64, input notesvc.NoteInput) (*domain.Note, error)
	Update(ctx context.Context, owned access.Owned[domain.Note], input notesvc.NoteInput) (*domain.Note, error)
	Delete(ctx context.Context, owned access.Owned[domain.Note]) error
}

// Options holds the cookie and environment settings the handlers need.
type Options struct {
	SessionCookie string
	SecureCookies bool
	// Development exposes error details on the 500 page.
	Development bool
}

// Handler serves all HTML routes.
type Handler struct {
	auth   authService
	pads   padService
	notes  noteService
	render Renderer
	flash  *FlashStore
	opts   Options
	log    *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(
	logger *slog.Logger,
	authSvc authService,
	pads padService,
	notes noteService,
	render Renderer,
	flash *FlashStore,
	opts Options,
) *Handler {
	return &Handler{
		auth:   authSvc,
		pads:   pads,
		notes:  notes,
		render: render,
		flash:  flash,
		opts:   opts,
		log:    logger.With("handler", "web"),
	}
}

// ---------------------------------------------------------------------------
// Page assembly
// ---------------------------------------------------------------------------

// Page is the data every template receives.
type Page struct {
	Title  string
	User   *domain.User
	Pads   []domain.Pad
	Flash  auth.Flash
	Errors []string
	Form   url.Values
	Data   any

	ErrorDetail string
}

// page prepares the common page data: the one-shot flash message and, for a
// signed-in user, the pad sidebar.
func (h *Handler) page(w http.ResponseWriter, r *http.Request, title string) (*Page, error) {
	p := &Page{
		Title: title,
		Flash: h.flash.Pop(w, r),
		Form:  url.Values{},
	}

	identity := middleware.IdentityFromCtx(r.Context())
	if identity.IsAuthenticated() {
		p.User = identity.User
		pads, err := h.pads.List(r.Context(), identity.User.ID)
		if err != nil {
			return nil, err
		}
		p.Pads = pads
	}

	return p, nil
}

// show renders view with a freshly assembled page.
func (h *Handler) show(w http.ResponseWriter, r *http.Request, status int, view, title string, data any) {
	p, err := h.page(w, r, title)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	p.Data = data
	h.write(w, r, status, view, p)
}

// showForm re-renders a form with the submitted values and error messages.
func (h *Handler) showForm(w http.ResponseWriter, r *http.Request, view, title string, data any, messages []string) {
	p, err := h.page(w, r, title)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	p.Data = data
	p.Errors = messages
	p.Form = r.PostForm
	h.write(w, r, http.StatusOK, view, p)
}

func (h *Handler) write(w http.ResponseWriter, r *http.Request, status int, view string, p *Page) {
	if err := h.render.Render(w, status, view, p); err != nil {
		h.log.ErrorContext(r.Context(), "render failed",
			slog.String("view", view),
			slog.String("error", err.Error()),
		)
	}
}

// redirect sets a flash message and redirects with 302.
func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, to string, f auth.Flash) {
	if !f.IsEmpty() {
		h.flash.Set(w, f)
	}
	http.Redirect(w, r, to, http.StatusFound)
}

// ---------------------------------------------------------------------------
// Request helpers
// ---------------------------------------------------------------------------

// currentUser returns the signed-in user. Routes behind RequireAuth always have one.
func currentUser(r *http.Request) *domain.User {
	return middleware.IdentityFromCtx(r.Context()).User
}

// pathID parses the {id} wildcard. Malformed ids are reported as not found.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// optionalID parses an optional numeric form or query value. Empty means nil.
func optionalID(v string) (*int64, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, false
	}
	return &id, true
}

func (h *Handler) sessionToken(r *http.Request) string {
	if c, err := r.Cookie(h.opts.SessionCookie); err == nil {
		return c.Value
	}
	return ""
}
