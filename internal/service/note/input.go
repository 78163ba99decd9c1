package note

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/notejam/internal/domain"
)

const maxNameLength = 100

// NoteInput holds the fields of a note form.
// PadID is only read on create; nil files the note under no pad.
type NoteInput struct {
	Name  string
	Text  string
	PadID *int64
}

// Validate validates the note input. Call after normalization.
func (i NoteInput) Validate() error {
	var errs []domain.FieldError

	switch {
	case i.Name == "":
		errs = append(errs, domain.FieldError{Field: "name", Message: "Name is required."})
	case utf8.RuneCountInString(i.Name) > maxNameLength:
		errs = append(errs, domain.FieldError{Field: "name", Message: "Name must be at most 100 characters."})
	}

	if strings.TrimSpace(i.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "Text is required."})
	}

	if i.PadID != nil && *i.PadID <= 0 {
		errs = append(errs, domain.FieldError{Field: "pad", Message: "Invalid pad."})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i NoteInput) normalized() NoteInput {
	i.Name = domain.NormalizeName(i.Name)
	return i
}
