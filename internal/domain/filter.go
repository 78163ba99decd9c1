package domain

// NoteFilter selects a user's notes for listing.
type NoteFilter struct {
	OwnerID int64

	// PadID restricts the listing to notes filed under the pad. nil lists all notes.
	PadID *int64

	// Order is a whitelisted sort key. Invalid values fall back to
	// NoteOrderUpdatedAtDesc.
	Order NoteOrder
}
