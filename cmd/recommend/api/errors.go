package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Operations reported in Error.Op.
const (
	OpRequest = "request"
	OpStatus  = "status"
	OpDecode  = "decode"
)

// Error describes a failed /recommend call.
type Error struct {
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := "recommend " + e.Op + " failed"
	if e.Status != 0 {
		msg += fmt.Sprintf(" (HTTP %d)", e.Status)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += " - " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ValidationError reports a payload that does not match the expected response shape.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

// IsNotFound reports whether the backend could not match the query to a song.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// Reason returns a short, user-facing description of err.
func Reason(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return err.Error()
	}
	switch {
	case apiErr.Message != "":
		return apiErr.Message
	case apiErr.Op == OpRequest:
		return "backend unreachable"
	case apiErr.Op == OpDecode && apiErr.Err != nil:
		return "unexpected response: " + apiErr.Err.Error()
	case apiErr.Status != 0:
		return fmt.Sprintf("backend returned HTTP %d", apiErr.Status)
	default:
		return apiErr.Error()
	}
}
