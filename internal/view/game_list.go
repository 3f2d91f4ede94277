// Package view turns the games list into join buttons and hands their
// presentation records to a renderer.
package view

import (
	"context"
	"io"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Waterdeep/internal/app"
	"github.com/dkeye/Waterdeep/internal/core"
	"github.com/dkeye/Waterdeep/internal/domain"
)

// GameButton is the join affordance of a single game. Each button owns its
// own workflow, so two buttons never share dialog state.
type GameButton struct {
	game     domain.Game
	workflow *app.JoinWorkflow
}

func newGameButton(game domain.Game, workflow *app.JoinWorkflow) *GameButton {
	return &GameButton{game: game.Clone(), workflow: workflow}
}

func (b *GameButton) Game() domain.Game { return b.game.Clone() }

func (b *GameButton) Markers() []PlayerMarker {
	out := make([]PlayerMarker, 0, len(b.game.Players))
	for _, p := range b.game.Players {
		class, ok := IconClass(p.Color())
		if !ok {
			log.Warn().Str("module", "view").Str("game", b.game.ID).Str("color", p.Color().String()).Msg("no marker for color")
		}
		out = append(out, PlayerMarker{Name: p.Name(), IconClass: class})
	}
	return out
}

// Click starts the join workflow for this button's game.
func (b *GameButton) Click(ctx context.Context) error {
	return b.workflow.Start(ctx, b.game)
}

func (b *GameButton) card() core.GameCard {
	markers := b.Markers()
	players := make([]core.PlayerCard, len(markers))
	for i, m := range markers {
		players[i] = core.PlayerCard{Name: m.Name, IconClass: m.IconClass}
	}
	return core.GameCard{
		ID:      b.game.ID,
		Name:    b.game.Name,
		Started: b.game.Started,
		Players: players,
	}
}

// GameList holds one button per game, in the order the games were given.
type GameList struct {
	newWorkflow func() *app.JoinWorkflow

	mu      sync.RWMutex
	buttons []*GameButton
}

func NewGameList(games []domain.Game, newWorkflow func() *app.JoinWorkflow) *GameList {
	l := &GameList{newWorkflow: newWorkflow}
	l.Set(games)
	return l
}

// Set replaces every button with fresh ones built from games.
func (l *GameList) Set(games []domain.Game) {
	buttons := make([]*GameButton, len(games))
	for i, g := range games {
		buttons[i] = newGameButton(g, l.newWorkflow())
	}
	l.mu.Lock()
	l.buttons = buttons
	l.mu.Unlock()
	log.Debug().Str("module", "view").Int("buttons", len(buttons)).Msg("game list rebuilt")
}

func (l *GameList) Buttons() []*GameButton {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]*GameButton(nil), l.buttons...)
}

// Button returns the button of the game with the given id.
func (l *GameList) Button(gameID string) (*GameButton, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, b := range l.buttons {
		if b.game.ID == gameID {
			return b, true
		}
	}
	return nil, false
}

// Bind keeps the list in step with every list games publishes.
func (l *GameList) Bind(games *app.Games) (unbind func()) {
	return games.Subscribe(l.Set)
}

func (l *GameList) Cards() []core.GameCard {
	buttons := l.Buttons()
	cards := make([]core.GameCard, len(buttons))
	for i, b := range buttons {
		cards[i] = b.card()
	}
	return cards
}

func (l *GameList) Render(ctx context.Context, w io.Writer, r core.Renderer) error {
	return r.Render(ctx, w, l.Cards())
}
