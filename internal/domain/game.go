package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Game is an in-progress game as listed by the server.
// Players keep the server order, which is the seating order.
type Game struct {
	ID      string
	Name    string
	Started bool
	Players []Player
}

type gameWire struct {
	Key     string            `json:"key"`
	Name    string            `json:"name"`
	Started bool              `json:"started"`
	Players []json.RawMessage `json:"players"`
}

// DecodeGame builds a Game from its wire object. A single bad player fails
// the whole game.
func DecodeGame(raw []byte) (Game, error) {
	if !isObject(raw) {
		return Game{}, &DecodeError{Record: "game", Err: errors.New("not a JSON object")}
	}
	var w gameWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return Game{}, &DecodeError{Record: "game", Err: err}
	}
	g := Game{
		ID:      w.Key,
		Name:    w.Name,
		Started: w.Started,
		Players: make([]Player, 0, len(w.Players)),
	}
	for i, pr := range w.Players {
		p, err := DecodePlayer(pr)
		if err != nil {
			return Game{}, &DecodeError{Record: "game", Field: fmt.Sprintf("players[%d]", i), Err: err}
		}
		g.Players = append(g.Players, p)
	}
	return g, nil
}

// TakenColors lists the colors held by the game's players, in seat order.
func (g Game) TakenColors() []Color {
	out := make([]Color, 0, len(g.Players))
	for _, p := range g.Players {
		out = append(out, p.Color())
	}
	return out
}

// IsFull reports whether every color is already taken.
func (g Game) IsFull() bool {
	var seen [NumColors]bool
	n := 0
	for _, p := range g.Players {
		if c := p.Color(); c.Valid() && !seen[c] {
			seen[c] = true
			n++
		}
	}
	return n == NumColors
}

func (g Game) Moderator() (Player, bool) {
	for _, p := range g.Players {
		if p.IsModerator() {
			return p, true
		}
	}
	return Player{}, false
}

// Clone returns a copy that shares no slice memory with g.
func (g Game) Clone() Game {
	c := g
	c.Players = append([]Player(nil), g.Players...)
	return c
}
