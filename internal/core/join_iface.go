package core

import (
	"context"

	"github.com/dkeye/Waterdeep/internal/domain"
)

// JoinBoundary performs the actual join against server state.
type JoinBoundary interface {
	Join(ctx context.Context, gameID, name string, color domain.Color) error
}
