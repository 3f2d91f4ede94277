package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Waterdeep/internal/core"
	"github.com/dkeye/Waterdeep/internal/domain"
)

type joinRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type joinResponse struct {
	Result domain.JoinResult `json:"result"`
}

// JoinRejectedError is returned when the server answered a join with
// anything but SUCCESS.
type JoinRejectedError struct {
	GameID string
	Result domain.JoinResult
}

func (e *JoinRejectedError) Error() string {
	return fmt.Sprintf("join %s rejected: %s", e.GameID, e.Result)
}

// JoinClient posts join requests to <gamesPath>/<game key>.
type JoinClient struct {
	transport core.Transport
	gamesPath string
}

func NewJoinClient(transport core.Transport, gamesPath string) *JoinClient {
	return &JoinClient{transport: transport, gamesPath: strings.TrimRight(gamesPath, "/")}
}

func (j *JoinClient) Join(ctx context.Context, gameID, name string, color domain.Color) error {
	path := j.gamesPath + "/" + url.PathEscape(gameID)
	raw, err := j.transport.PostJSON(ctx, path, joinRequest{Name: name, Color: color.String()}, true)
	if err != nil {
		return fmt.Errorf("join request: %w", err)
	}

	var resp joinResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return fmt.Errorf("decode join response: %w", err)
	}
	if !resp.Result.Known() {
		return fmt.Errorf("decode join response: unknown result %q", resp.Result)
	}
	if resp.Result != domain.JoinSuccess {
		return &JoinRejectedError{GameID: gameID, Result: resp.Result}
	}
	log.Info().Str("module", "adapters.http").Str("game", gameID).Str("name", name).Msg("join accepted")
	return nil
}
