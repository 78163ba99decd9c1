package domain

import "time"

// Note is a text document owned by one user and optionally filed under a pad.
// PadID may point at a pad that has since been deleted.
type Note struct {
	ID        int64
	UserID    int64
	PadID     *int64
	Name      string
	Text      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasPad reports whether the note references a pad.
func (n *Note) HasPad() bool { return n.PadID != nil }

// NoteOrder is a whitelisted sort key for note listings.
type NoteOrder string

const (
	NoteOrderNameAsc       NoteOrder = "name"
	NoteOrderNameDesc      NoteOrder = "-name"
	NoteOrderUpdatedAtAsc  NoteOrder = "updated_at"
	NoteOrderUpdatedAtDesc NoteOrder = "-updated_at"
)

func (o NoteOrder) String() string { return string(o) }

func (o NoteOrder) IsValid() bool {
	switch o {
	case NoteOrderNameAsc, NoteOrderNameDesc, NoteOrderUpdatedAtAsc, NoteOrderUpdatedAtDesc:
		return true
	}
	return false
}

// ParseNoteOrder returns the order for s, falling back to most recently updated first.
func ParseNoteOrder(s string) NoteOrder {
	o := NoteOrder(s)
	if !o.IsValid() {
		return NoteOrderUpdatedAtDesc
	}
	return o
}
