package model

import "fmt"

// ValidationKind classifies a rejected input.
type ValidationKind string

const ValidationBadInput ValidationKind = "bad_input"

// ValidationError reports input rejected before any processing.
type ValidationError struct {
	Kind  ValidationKind
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation %s: %s: %v", e.Kind, e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewBadInput builds a bad_input ValidationError for field.
func NewBadInput(field string, err error) *ValidationError {
	return &ValidationError{Kind: ValidationBadInput, Field: field, Err: err}
}
