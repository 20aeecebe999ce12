package site

import (
	"errors"
	"fmt"
)

var (
	// ErrInputNotFound is returned when an input file does not exist.
	ErrInputNotFound = errors.New("input not found")

	// ErrInputMalformed is returned when an input document cannot be decoded.
	ErrInputMalformed = errors.New("input malformed")

	// ErrMissingField is returned when a record lacks a required field.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidDate is returned when a workshop date is not a YYYY-MM-DD calendar date.
	ErrInvalidDate = errors.New("invalid date")
)

// RecordError locates a validation failure within the input records.
type RecordError struct {
	Kind  string // "member" or "workshop"
	Index int
	Field string
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("%s #%d: field %q: %v", e.Kind, e.Index, e.Field, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
