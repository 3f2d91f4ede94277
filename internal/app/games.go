package app

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Waterdeep/internal/core"
	"github.com/dkeye/Waterdeep/internal/domain"
)

// LoadResult is what LoadGamesAsync delivers, exactly once.
type LoadResult struct {
	Games []domain.Game
	Err   error
}

type subscriber struct {
	id int
	fn func([]domain.Game)
}

// Games fetches the list of in-progress games and keeps the last good one.
// Games that fail to decode are logged and dropped; the rest survive.
type Games struct {
	transport core.Transport
	path      string

	// notifyMu orders cache swaps and notifications, so the last list a
	// subscriber sees is the list Cached returns.
	notifyMu sync.Mutex

	mu     sync.RWMutex
	cache  []domain.Game
	subs   []subscriber
	nextID int
}

func NewGames(transport core.Transport, path string) *Games {
	return &Games{
		transport: transport,
		path:      path,
		cache:     []domain.Game{},
	}
}

// Cached returns a copy of the last successfully loaded list.
func (g *Games) Cached() []domain.Game {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return cloneGames(g.cache)
}

// Subscribe registers fn to receive every newly loaded list, in the order the
// loads completed. Failed loads publish nothing. fn runs on the loading
// goroutine and must not call LoadGames itself.
func (g *Games) Subscribe(fn func([]domain.Game)) (unsubscribe func()) {
	g.mu.Lock()
	id := g.nextID
	g.nextID++
	g.subs = append(g.subs, subscriber{id: id, fn: fn})
	g.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			defer g.mu.Unlock()
			for i, s := range g.subs {
				if s.id == id {
					g.subs = append(g.subs[:i:i], g.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// LoadGames requests the games list, replaces the cache with every game that
// decoded and notifies subscribers. On transport or shape failure the cache
// stays untouched and nobody is notified.
func (g *Games) LoadGames(ctx context.Context) ([]domain.Game, error) {
	logger := log.With().
		Str("module", "app.games").
		Str("path", g.path).
		Logger()

	raw, err := g.transport.Get(ctx, g.path, true)
	if err != nil {
		te := asTransportError(err)
		logger.Error().Err(err).Int("status", te.Status).Msg("games request failed")
		return nil, te
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		logger.Error().Msg("games response is not an array")
		return nil, &MalformedResponseError{Reason: "payload is not a JSON array"}
	}
	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		logger.Error().Err(err).Msg("games response is not valid JSON")
		return nil, &MalformedResponseError{Reason: "invalid JSON", Err: err}
	}

	games := make([]domain.Game, 0, len(items))
	for i, item := range items {
		game, err := domain.DecodeGame(item)
		if err != nil {
			logger.Warn().Err(err).Int("index", i).Msg("dropping game that failed to decode")
			continue
		}
		games = append(games, game)
	}

	g.notifyMu.Lock()
	defer g.notifyMu.Unlock()

	g.mu.Lock()
	g.cache = games
	subs := append([]subscriber(nil), g.subs...)
	g.mu.Unlock()

	logger.Info().
		Int("count", len(games)).
		Int("dropped", len(items)-len(games)).
		Msg("games loaded")

	for _, s := range subs {
		s.fn(cloneGames(games))
	}
	return cloneGames(games), nil
}

// LoadGamesAsync runs LoadGames in the background. The returned channel is
// buffered, so callers may drop it without leaking the goroutine.
func (g *Games) LoadGamesAsync(ctx context.Context) <-chan LoadResult {
	ch := make(chan LoadResult, 1)
	go func() {
		defer close(ch)
		games, err := g.LoadGames(ctx)
		ch <- LoadResult{Games: games, Err: err}
	}()
	return ch
}

func cloneGames(in []domain.Game) []domain.Game {
	out := make([]domain.Game, len(in))
	for i, game := range in {
		out[i] = game.Clone()
	}
	return out
}
