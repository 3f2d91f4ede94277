package app

import (
	"fmt"

	"github.com/dkeye/Waterdeep/internal/core"
	"github.com/dkeye/Waterdeep/internal/domain"
)

const (
	PolicyAll          = "all"
	PolicyExcludeTaken = "exclude_taken"
)

// AllColors offers every color regardless of who already holds it.
// The server has the final word on collisions.
type AllColors struct{}

func (AllColors) Available(domain.Game) []domain.Color {
	return domain.AllColors()
}

// ExcludeTakenColors offers only colors no player of the game holds yet.
type ExcludeTakenColors struct{}

func (ExcludeTakenColors) Available(game domain.Game) []domain.Color {
	var taken [domain.NumColors]bool
	for _, c := range game.TakenColors() {
		if c.Valid() {
			taken[c] = true
		}
	}
	out := make([]domain.Color, 0, domain.NumColors)
	for _, c := range domain.AllColors() {
		if !taken[c] {
			out = append(out, c)
		}
	}
	return out
}

func PolicyByName(name string) (core.ColorPolicy, error) {
	switch name {
	case "", PolicyAll:
		return AllColors{}, nil
	case PolicyExcludeTaken:
		return ExcludeTakenColors{}, nil
	}
	return nil, fmt.Errorf("unknown color policy %q", name)
}
