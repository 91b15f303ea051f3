package apierror

import "net/http"

type (
	// An Error is the API's uniform failure shape. Business failures render
	// as {success: false, message: "..."} with HTTP 200, transport-level
	// problems carry a real HTTP status code instead.
	Error struct {
		HTTPCode int    `json:"-"`
		Success  bool   `json:"success"`
		Message  string `json:"message"`
	}
)

// StatusCode returns the HTTP status code the error renders with.
func StatusCode(err error) int {
	if apierr, ok := err.(*Error); ok && apierr.HTTPCode != 0 {
		return apierr.HTTPCode
	}
	return http.StatusInternalServerError
}

// New returns a business failure, rendered with HTTP 200.
func New(message string) *Error {
	return &Error{HTTPCode: http.StatusOK, Message: message}
}

// NewWithCode returns a new Error rendered with the given HTTP status code.
func NewWithCode(code int, message string) *Error {
	return &Error{HTTPCode: code, Message: message}
}

// Error implements error interface.
func (e *Error) Error() string {
	return e.Message
}
