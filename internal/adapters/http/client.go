package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Waterdeep/internal/core"
)

const maxResponseBytes = 4 << 20

// Client is the lobby server transport. Requests made with credentials share
// a cookie jar, so the session cookie set by the server is sent back;
// requests without credentials never see it.
type Client struct {
	baseURL *url.URL
	plain   *http.Client
	session *http.Client
}

func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", baseURL)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	return &Client{
		baseURL: u,
		plain:   &http.Client{Timeout: timeout},
		session: &http.Client{Timeout: timeout, Jar: jar},
	}, nil
}

func (c *Client) Get(ctx context.Context, path string, withCredentials bool) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, nil, withCredentials)
}

func (c *Client) PostJSON(ctx context.Context, path string, body any, withCredentials bool) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode %s body: %w", path, err)
	}
	return c.do(ctx, http.MethodPost, path, b, withCredentials)
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, withCredentials bool) ([]byte, error) {
	reqID := uuid.NewString()
	logger := log.With().
		Str("module", "adapters.http").
		Str("method", method).
		Str("path", path).
		Str("request_id", reqID).
		Logger()

	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.resolve(path), rd)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	hc := c.plain
	if withCredentials {
		hc = c.session
	}

	start := time.Now()
	resp, err := hc.Do(req)
	if err != nil {
		logger.Error().Err(err).Msg("request failed")
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		logger.Error().Err(err).Int("status", resp.StatusCode).Msg("read response failed")
		return nil, fmt.Errorf("read %s %s: %w", method, path, err)
	}

	logger.Debug().
		Int("status", resp.StatusCode).
		Int("bytes", len(data)).
		Dur("took", time.Since(start)).
		Msg("request done")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &core.StatusError{Method: method, Path: path, Status: resp.StatusCode}
	}
	return data, nil
}

// resolve joins path onto the base URL. path is expected to be escaped.
func (c *Client) resolve(path string) string {
	return c.baseURL.String() + "/" + strings.TrimLeft(path, "/")
}
