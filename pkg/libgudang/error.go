package libgudang

import (
	"encoding/json"
	"fmt"
	"io"
)

// An APIError represents an HTTP error returned by the remote store.
type APIError struct {
	StatusCode int
	Message    string `json:"message"`
}

func parseAPIError(r io.Reader, code int) error {
	var apierr APIError
	dec := json.NewDecoder(r)
	if err := dec.Decode(&apierr); err != nil {
		apierr.Message = ""
	}
	apierr.StatusCode = code
	return &apierr
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("HTTP %d - %s", e.StatusCode, e.Message)
}
