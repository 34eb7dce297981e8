package errs

import (
	"fmt"
	"sort"
	"strings"
)

// FieldErrors collects per-field messages so several independent checks can
// be reported together.
type FieldErrors struct {
	fields map[string][]string
}

func NewFieldErrors() *FieldErrors {
	return &FieldErrors{fields: map[string][]string{}}
}

func (f *FieldErrors) Add(field, msg string) {
	f.fields[field] = append(f.fields[field], msg)
}

func (f *FieldErrors) Empty() bool {
	return len(f.fields) == 0
}

// Fields returns a copy of the collected messages.
func (f *FieldErrors) Fields() map[string][]string {
	out := make(map[string][]string, len(f.fields))
	for k, v := range f.fields {
		out[k] = append([]string(nil), v...)
	}
	return out
}

func (f *FieldErrors) Error() string {
	keys := make([]string, 0, len(f.fields))
	for k := range f.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(f.fields[k], "; "))
	}
	return "invalid fields: " + strings.Join(parts, ", ")
}

// Err returns nil when nothing was collected, otherwise the collection marked
// as a validation error.
func (f *FieldErrors) Err() error {
	if f.Empty() {
		return nil
	}
	return Mark(f, ErrValidation)
}

// FieldError is shorthand for a single-field validation error.
func FieldError(field, msg string) error {
	fe := NewFieldErrors()
	fe.Add(field, msg)
	return fe.Err()
}

// AsFieldErrors extracts the field map carried by err, if any.
func AsFieldErrors(err error) (map[string][]string, bool) {
	var fe *FieldErrors
	if !As(err, &fe) {
		return nil, false
	}
	return fe.Fields(), true
}

// MissingReference reports a field whose identifier points at nothing.
func MissingReference(field string, id fmt.Stringer) error {
	return FieldError(field, MissingReferenceMessage(id))
}

func MissingReferenceMessage(id fmt.Stringer) string {
	return fmt.Sprintf("Invalid pk %q - object does not exist.", id.String())
}
