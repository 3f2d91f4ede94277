package core

import (
	"context"
	"io"
)

// PlayerCard is the presentation record for one player marker.
type PlayerCard struct {
	Name      string `json:"name"`
	IconClass string `json:"iconClass"`
}

// GameCard is a read-only view of a game for renderers.
type GameCard struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Started bool         `json:"started"`
	Players []PlayerCard `json:"players"`
}

type Renderer interface {
	Render(ctx context.Context, w io.Writer, cards []GameCard) error
}
