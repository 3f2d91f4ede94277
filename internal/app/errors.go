package app

import (
	"errors"
	"fmt"

	"github.com/dkeye/Waterdeep/internal/core"
)

var (
	ErrMalformedResponse = errors.New("malformed games response")
	ErrTransport         = errors.New("transport failure")

	ErrWorkflowBusy      = errors.New("join workflow already running")
	ErrNoColorsAvailable = errors.New("no colors available")
	ErrColorNotOffered   = errors.New("color was not offered")
	ErrEmptyName         = errors.New("dialog returned an empty name")
)

// MalformedResponseError means the games payload was not a JSON array.
// The cache is left as it was.
type MalformedResponseError struct {
	Reason string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", ErrMalformedResponse, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", ErrMalformedResponse, e.Reason)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

func (e *MalformedResponseError) Is(target error) bool { return target == ErrMalformedResponse }

// TransportError wraps a failed request. Status is the HTTP status when the
// server answered, zero otherwise.
type TransportError struct {
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (status %d): %v", ErrTransport, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: %v", ErrTransport, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

func asTransportError(err error) *TransportError {
	var te *TransportError
	if errors.As(err, &te) {
		return te
	}
	te = &TransportError{Err: err}
	var se *core.StatusError
	if errors.As(err, &se) {
		te.Status = se.Status
	}
	return te
}
