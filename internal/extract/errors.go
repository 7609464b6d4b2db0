package extract

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies an extraction failure.
type Kind string

const KindSchemaMismatch Kind = "schema_mismatch"

var (
	ErrNotJSON        = errors.New("output is not valid JSON")
	ErrSchemaMismatch = errors.New("output does not match schema")
)

// ExtractionError reports model output that could not be turned into a typed value.
type ExtractionError struct {
	Kind      Kind
	Extractor string
	Details   []string
	Err       error
}

func (e *ExtractionError) Error() string {
	if len(e.Details) == 0 {
		return fmt.Sprintf("extract %s: %s: %v", e.Extractor, e.Kind, e.Err)
	}
	return fmt.Sprintf("extract %s: %s: %v: %s", e.Extractor, e.Kind, e.Err, strings.Join(e.Details, "; "))
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

func mismatch(extractor string, err error, details ...string) *ExtractionError {
	return &ExtractionError{Kind: KindSchemaMismatch, Extractor: extractor, Details: details, Err: err}
}
