package web

import (
	"context"
	"net/http"

	"github.com/heartmarshall/notejam/internal/domain"
	"github.com/heartmarshall/notejam/internal/service/access"
)

type ownedPadKey struct{}
type ownedNoteKey struct{}

// withPad resolves {id} to a pad owned by the signed-in user and makes it
// available to next. Anything else is a 404 before next runs.
func (h *Handler) withPad(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			h.handleError(w, r, domain.ErrNotFound)
			return
		}

		owned, err := h.pads.Load(r.Context(), id, currentUser(r).ID)
		if err != nil {
			h.handleError(w, r, err)
			return
		}

		next(w, r.WithContext(context.WithValue(r.Context(), ownedPadKey{}, owned)))
	}
}

// withNote is withPad for notes.
func (h *Handler) withNote(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			h.handleError(w, r, domain.ErrNotFound)
			return
		}

		owned, err := h.notes.Load(r.Context(), id, currentUser(r).ID)
		if err != nil {
			h.handleError(w, r, err)
			return
		}

		next(w, r.WithContext(context.WithValue(r.Context(), ownedNoteKey{}, owned)))
	}
}

// padFromCtx returns the pad loaded by withPad.
func padFromCtx(ctx context.Context) access.Owned[domain.Pad] {
	owned, _ := ctx.Value(ownedPadKey{}).(access.Owned[domain.Pad])
	return owned
}

// noteFromCtx returns the note loaded by withNote.
func noteFromCtx(ctx context.Context) access.Owned[domain.Note] {
	owned, _ := ctx.Value(ownedNoteKey{}).(access.Owned[domain.Note])
	return owned
}
