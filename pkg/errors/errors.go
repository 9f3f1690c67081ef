package errors

import "fmt"

// HTTPError is an error the delivery layer can surface directly to clients.
// Code is an HTTP status code (400-599) or an application error code; codes
// outside the HTTP status range are reported with status 400.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("error %d: %s", e.Code, e.Message)
}

// StatusCode returns the HTTP status to respond with.
func (e *HTTPError) StatusCode() int {
	if e.Code >= 400 && e.Code < 600 {
		return e.Code
	}
	return 400
}
