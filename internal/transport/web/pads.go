package web

import (
	"fmt"
	"net/http"

	"github.com/heartmarshall/notejam/internal/domain"
	padsvc "github.com/heartmarshall/notejam/internal/service/pad"
)

// padFormData feeds the create and edit pad form. Pad is nil on create.
type padFormData struct {
	Pad *domain.Pad
}

func (h *Handler) padCreateForm(w http.ResponseWriter, r *http.Request) {
	h.show(w, r, http.StatusOK, viewPadForm, "New pad", padFormData{})
}

func (h *Handler) padCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.showForm(w, r, viewPadForm, "New pad", padFormData{}, []string{"Invalid form."})
		return
	}

	_, err := h.pads.Create(r.Context(), currentUser(r).ID, padsvc.PadInput{Name: r.PostForm.Get("name")})
	if err != nil {
		if msgs, ok := formMessages(err); ok {
			h.showForm(w, r, viewPadForm, "New pad", padFormData{}, msgs)
			return
		}
		h.handleError(w, r, err)
		return
	}

	h.redirect(w, r, "/", success("Pad is successfully created"))
}

func (h *Handler) padNotes(w http.ResponseWriter, r *http.Request) {
	owned := padFromCtx(r.Context())
	order := domain.ParseNoteOrder(r.URL.Query().Get("order"))

	notes, err := h.notes.ListByPad(r.Context(), owned, order)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	pad := owned.Value()
	rows := make([]noteRow, len(notes))
	for i, n := range notes {
		rows[i] = noteRow{Note: n, Pad: &pad}
	}

	h.show(w, r, http.StatusOK, viewNotes, fmt.Sprintf("%s (%d)", pad.Name, len(notes)), notesData{
		Pad:   &pad,
		Notes: rows,
		Order: string(order),
	})
}

func (h *Handler) padEditForm(w http.ResponseWriter, r *http.Request) {
	pad := padFromCtx(r.Context()).Value()
	h.show(w, r, http.StatusOK, viewPadForm, pad.Name, padFormData{Pad: &pad})
}

func (h *Handler) padEdit(w http.ResponseWriter, r *http.Request) {
	owned := padFromCtx(r.Context())
	pad := owned.Value()

	if err := r.ParseForm(); err != nil {
		h.showForm(w, r, viewPadForm, pad.Name, padFormData{Pad: &pad}, []string{"Invalid form."})
		return
	}

	updated, err := h.pads.Update(r.Context(), owned, padsvc.PadInput{Name: r.PostForm.Get("name")})
	if err != nil {
		if msgs, ok := formMessages(err); ok {
			h.showForm(w, r, viewPadForm, pad.Name, padFormData{Pad: &pad}, msgs)
			return
		}
		h.handleError(w, r, err)
		return
	}

	h.redirect(w, r, fmt.Sprintf("/pads/%d", updated.ID), success("Pad is successfully updated"))
}

func (h *Handler) padDeleteForm(w http.ResponseWriter, r *http.Request) {
	pad := padFromCtx(r.Context()).Value()
	h.show(w, r, http.StatusOK, viewPadDelete, pad.Name, padFormData{Pad: &pad})
}

func (h *Handler) padDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.pads.Delete(r.Context(), padFromCtx(r.Context())); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.redirect(w, r, "/", success("Pad is successfully deleted"))
}
