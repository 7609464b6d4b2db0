package errors

import "fmt"

// HTTPError is a domain error that carries the HTTP status and error code it
// should be reported with.
type HTTPError struct {
	Code       int    `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// NewHTTPError returns an HTTPError reported with status 400.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message, StatusCode: 400}
}

// WithStatus returns a copy of e reported with status.
func (e *HTTPError) WithStatus(status int) *HTTPError {
	cp := *e
	cp.StatusCode = status
	return &cp
}
