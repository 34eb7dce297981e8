//go:build unit

package errs_test

import (
	"testing"

	"property-rental/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMarkAndCategory(t *testing.T) {
	errCapacity := errs.Mark(errs.New("capacity exceeded"), errs.ErrBusinessRule)

	wrapped := errs.Wrap(errCapacity, "create reservation")

	assert.True(t, errs.Is(wrapped, errCapacity))
	assert.True(t, errs.Is(wrapped, errs.ErrBusinessRule))
	assert.False(t, errs.Is(wrapped, errs.ErrNotFound))
	assert.Equal(t, errs.ErrBusinessRule, errs.Category(wrapped))
	assert.Nil(t, errs.Category(errs.New("plain")))
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "noop"))
	assert.Equal(t, errs.ErrNotFound, errs.Mark(nil, errs.ErrNotFound))
}

func TestExtractStackLines(t *testing.T) {
	lines := errs.ExtractStackLines(errs.New("boom"), 3)
	assert.LessOrEqual(t, len(lines), 3)
	assert.Contains(t, lines[0], "boom")
	assert.Nil(t, errs.ExtractStackLines(nil, 3))
}

func TestFieldErrors(t *testing.T) {
	fe := errs.NewFieldErrors()
	assert.NoError(t, fe.Err())

	fe.Add("start_date", "The start date must be in the future.")
	fe.Add("end_date", "The end date must be in the future.")

	err := errs.Wrap(fe.Err(), "validate reservation")
	assert.True(t, errs.Is(err, errs.ErrValidation))

	fields, ok := errs.AsFieldErrors(err)
	assert.True(t, ok)
	assert.Equal(t, map[string][]string{
		"start_date": {"The start date must be in the future."},
		"end_date":   {"The end date must be in the future."},
	}, fields)
	assert.Equal(t, "invalid fields: end_date: The end date must be in the future., start_date: The start date must be in the future.", fe.Error())

	_, ok = errs.AsFieldErrors(errs.New("plain"))
	assert.False(t, ok)
}

func TestMessage(t *testing.T) {
	errSlot := errs.Mark(errs.New("The property is not available for the selected dates."), errs.ErrBusinessRule)

	assert.Equal(t, "The property is not available for the selected dates.", errs.Message(errs.Wrap(errSlot, "create reservation")))
	assert.Equal(t, "", errs.Message(nil))
}

type stringer string

func (s stringer) String() string { return string(s) }

func TestMissingReference(t *testing.T) {
	err := errs.MissingReference("property", stringer("8a1c"))

	assert.True(t, errs.Is(err, errs.ErrValidation))
	fields, ok := errs.AsFieldErrors(err)
	assert.True(t, ok)
	assert.Equal(t, []string{`Invalid pk "8a1c" - object does not exist.`}, fields["property"])
}
