package store

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrorKind classifies a store failure.
type ErrorKind string

const (
	KindUnavailable ErrorKind = "unavailable"
	KindConflict    ErrorKind = "conflict"
)

var (
	ErrNoMatch       = errors.New("no record matches filters")
	ErrDuplicateID   = errors.New("record id already exists")
	ErrInvalidField  = errors.New("invalid field name")
	ErrEmptyFilters  = errors.New("filters are required")
	ErrUnknownDriver = errors.New("unknown store driver")
)

// StoreError is returned by every Store operation that fails.
type StoreError struct {
	Kind       ErrorKind
	Op         string
	Collection string
	Err        error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s %s: %s: %v", e.Op, e.Collection, e.Kind, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Unavailable wraps err as an unavailable StoreError.
func Unavailable(op, collection string, err error) *StoreError {
	return &StoreError{Kind: KindUnavailable, Op: op, Collection: collection, Err: err}
}

// Conflict wraps err as a conflict StoreError.
func Conflict(op, collection string, err error) *StoreError {
	return &StoreError{Kind: KindConflict, Op: op, Collection: collection, Err: err}
}

// IsKind reports whether err is a StoreError of kind k.
func IsKind(err error, k ErrorKind) bool {
	var se *StoreError
	return errors.As(err, &se) && se.Kind == k
}

var fieldPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidField reports whether name may be used as a filter or order field.
func ValidField(name string) bool {
	return fieldPattern.MatchString(name)
}
