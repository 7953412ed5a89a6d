package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error is a non-2xx response from the remote API.
type Error struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *Error) Error() string {
	switch {
	case e.Code != "" && e.Message != "":
		return fmt.Sprintf("api error %s (%d): %s", e.Code, e.StatusCode, e.Message)
	case e.Code != "":
		return fmt.Sprintf("api error %s (%d)", e.Code, e.StatusCode)
	case e.Message != "":
		return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("api error (%d)", e.StatusCode)
	}
}

type errorPayload struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func decodeError(statusCode int, body []byte) error {
	apiErr := &Error{StatusCode: statusCode}
	var payload errorPayload
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Code = payload.Error
		apiErr.Message = payload.Message
	} else {
		apiErr.Message = strings.TrimSpace(string(body))
	}
	return apiErr
}

// IsNotFound reports whether err is a 404 from the remote API.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsConflict reports whether err is a 409 from the remote API. A conflicting
// reaction id is reconciled by the next successful fetch, callers treat it
// like any transient failure.
func IsConflict(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusConflict
}

// IsUnauthorized reports whether err is a 401 from the remote API.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}
