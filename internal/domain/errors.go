package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownSessionType = errors.New("unknown session type")
	ErrMalformedDate      = errors.New("malformed date")
	ErrInvalidLegend      = errors.New("invalid legend")
	ErrSessionNotFound    = errors.New("session not found")
	ErrVideoKindInvalid   = errors.New("invalid video kind")
)

// UnknownSessionTypeError reports a session type outside the legend's table.
type UnknownSessionTypeError struct {
	SessionType SessionType
}

func (e *UnknownSessionTypeError) Error() string {
	return fmt.Sprintf("%s %q", ErrUnknownSessionType, string(e.SessionType))
}

func (e *UnknownSessionTypeError) Unwrap() error {
	return ErrUnknownSessionType
}

// MalformedDateError reports a date that is not a zero-padded YYYY-MM-DD calendar date.
type MalformedDateError struct {
	Value string
	Err   error
}

func (e *MalformedDateError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %q", ErrMalformedDate, e.Value)
	}
	return fmt.Sprintf("%s %q: %v", ErrMalformedDate, e.Value, e.Err)
}

func (e *MalformedDateError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformedDate}
	}
	return []error{ErrMalformedDate, e.Err}
}
