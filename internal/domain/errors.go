package domain

import (
	"errors"
	"fmt"
)

var (
	ErrDecode       = errors.New("decode failed")
	ErrUnknownColor = errors.New("unknown color")
)

// DecodeError reports a single JSON record that does not satisfy the
// Player or Game shape. It matches ErrDecode with errors.Is.
type DecodeError struct {
	Record string
	Field  string
	Value  string
	Err    error
}

func (e *DecodeError) Error() string {
	msg := "decode " + e.Record
	if e.Field != "" {
		msg += "." + e.Field
	}
	if e.Value != "" {
		msg += fmt.Sprintf(" (%q)", e.Value)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }
