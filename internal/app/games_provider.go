package app

import (
	"sync"

	"github.com/dkeye/Waterdeep/internal/core"
)

// GamesProvider hands out the one Games instance of the process.
// It is built by the composition root and passed to whoever needs it.
type GamesProvider struct {
	transport core.Transport
	path      string

	once  sync.Once
	games *Games
}

func NewGamesProvider(transport core.Transport, path string) *GamesProvider {
	return &GamesProvider{transport: transport, path: path}
}

func (p *GamesProvider) Games() *Games {
	p.once.Do(func() {
		p.games = NewGames(p.transport, p.path)
	})
	return p.games
}
