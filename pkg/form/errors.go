package form

import "errors"

var (
	// ErrUnknownField is returned when a field name is not part of the form.
	ErrUnknownField = errors.New("form: unknown field")
	// ErrValueType is returned when a Go value does not fit the field.
	ErrValueType = errors.New("form: value type does not match field")
	// ErrInvalid is returned by Submit when the form has validation errors.
	// Nothing is submitted in that case.
	ErrInvalid = errors.New("form: submit blocked by validation errors")
)
