package core

import (
	"context"
	"fmt"
)

// Transport is the request primitive used to talk to the lobby server.
// Paths are relative to the server base URL. WithCredentials controls
// whether the session cookie travels with the request.
type Transport interface {
	Get(ctx context.Context, path string, withCredentials bool) ([]byte, error)
	PostJSON(ctx context.Context, path string, body any, withCredentials bool) ([]byte, error)
}

// StatusError is returned by a Transport when the server answered with a
// non-2xx status.
type StatusError struct {
	Method string
	Path   string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.Status)
}
