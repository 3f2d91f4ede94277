package core

import "github.com/dkeye/Waterdeep/internal/domain"

// ColorPolicy decides which colors the join dialog offers for a game.
type ColorPolicy interface {
	Available(game domain.Game) []domain.Color
}
