package web

import (
	"fmt"
	"net/http"

	"github.com/heartmarshall/notejam/internal/domain"
	notesvc "github.com/heartmarshall/notejam/internal/service/note"
	"github.com/heartmarshall/notejam/internal/transport/dataloader"
)

// noteRow is a note with its pad resolved. Pad is nil when the note has no
// pad or the pad was deleted.
type noteRow struct {
	Note domain.Note
	Pad  *domain.Pad
}

// notesData feeds the notes listing. Pad is set when listing one pad.
type notesData struct {
	Pad   *domain.Pad
	Notes []noteRow
	Order string
}

// noteFormData feeds the create and edit note form. Note is nil on create.
type noteFormData struct {
	Note  *domain.Note
	PadID int64
}

// noteViewData feeds the single note and delete confirmation views.
type noteViewData struct {
	Note domain.Note
	Pad  *domain.Pad
}

func (h *Handler) notesList(w http.ResponseWriter, r *http.Request) {
	order := domain.ParseNoteOrder(r.URL.Query().Get("order"))

	notes, err := h.notes.List(r.Context(), currentUser(r).ID, order)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	pads, err := dataloader.PadsForNotes(r.Context(), notes)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	rows := make([]noteRow, len(notes))
	for i, n := range notes {
		rows[i] = noteRow{Note: n, Pad: pads[i]}
	}

	h.show(w, r, http.StatusOK, viewNotes, fmt.Sprintf("All notes (%d)", len(notes)), notesData{
		Notes: rows,
		Order: string(order),
	})
}

func (h *Handler) noteCreateForm(w http.ResponseWriter, r *http.Request) {
	data := noteFormData{}
	if padID, ok := optionalID(r.URL.Query().Get("pad")); ok && padID != nil {
		data.PadID = *padID
	}
	h.show(w, r, http.StatusOK, viewNoteForm, "New note", data)
}

func (h *Handler) noteCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.showForm(w, r, viewNoteForm, "New note", noteFormData{}, []string{"Invalid form."})
		return
	}

	padID, ok := optionalID(r.PostForm.Get("pad"))
	if !ok {
		h.showForm(w, r, viewNoteForm, "New note", noteFormData{}, []string{"Invalid pad."})
		return
	}

	data := noteFormData{}
	if padID != nil {
		data.PadID = *padID
	}

	_, err := h.notes.Create(r.Context(), currentUser(r).ID, notesvc.NoteInput{
		Name:  r.PostForm.Get("name"),
		Text:  r.PostForm.Get("text"),
		PadID: padID,
	})
	if err != nil {
		if msgs, ok := formMessages(err); ok {
			h.showForm(w, r, viewNoteForm, "New note", data, msgs)
			return
		}
		h.handleError(w, r, err)
		return
	}

	h.redirect(w, r, "/", success("Note is successfully created"))
}

func (h *Handler) noteView(w http.ResponseWriter, r *http.Request) {
	note := noteFromCtx(r.Context()).Value()

	pads, err := dataloader.PadsForNotes(r.Context(), []domain.Note{note})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.show(w, r, http.StatusOK, viewNoteView, note.Name, noteViewData{Note: note, Pad: pads[0]})
}

func (h *Handler) noteEditForm(w http.ResponseWriter, r *http.Request) {
	note := noteFromCtx(r.Context()).Value()
	h.show(w, r, http.StatusOK, viewNoteForm, note.Name, noteFormData{Note: &note})
}

func (h *Handler) noteEdit(w http.ResponseWriter, r *http.Request) {
	owned := noteFromCtx(r.Context())
	note := owned.Value()

	if err := r.ParseForm(); err != nil {
		h.showForm(w, r, viewNoteForm, note.Name, noteFormData{Note: &note}, []string{"Invalid form."})
		return
	}

	updated, err := h.notes.Update(r.Context(), owned, notesvc.NoteInput{
		Name: r.PostForm.Get("name"),
		Text: r.PostForm.Get("text"),
	})
	if err != nil {
		if msgs, ok := formMessages(err); ok {
			h.showForm(w, r, viewNoteForm, note.Name, noteFormData{Note: &note}, msgs)
			return
		}
		h.handleError(w, r, err)
		return
	}

	h.redirect(w, r, fmt.Sprintf("/notes/%d", updated.ID), success("Note is successfully updated"))
}

func (h *Handler) noteDeleteForm(w http.ResponseWriter, r *http.Request) {
	note := noteFromCtx(r.Context()).Value()
	h.show(w, r, http.StatusOK, viewNoteDelete, note.Name, noteViewData{Note: note})
}

func (h *Handler) noteDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.notes.Delete(r.Context(), noteFromCtx(r.Context())); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.redirect(w, r, "/", success("Note is successfully deleted"))
}
