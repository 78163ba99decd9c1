package pad

import (
	"unicode/utf8"

	"github.com/heartmarshall/notejam/internal/domain"
)

const maxNameLength = 100

// PadInput holds the editable fields of a pad.
type PadInput struct {
	Name string
}

// Validate validates the pad input. Call after normalization.
func (i PadInput) Validate() error {
	var errs []domain.FieldError

	switch {
	case i.Name == "":
		errs = append(errs, domain.FieldError{Field: "name", Message: "Name is required."})
	case utf8.RuneCountInString(i.Name) > maxNameLength:
		errs = append(errs, domain.FieldError{Field: "name", Message: "Name must be at most 100 characters."})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i PadInput) normalized() PadInput {
	i.Name = domain.NormalizeName(i.Name)
	return i
}
