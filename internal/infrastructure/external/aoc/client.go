package aoc

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/aoc-hub/aoc-discord-bot/internal/domain/shared"
	"github.com/aoc-hub/aoc-discord-bot/internal/domain/standings"
)

// ══════════════════════════════════════════════════════════════════════════════
// CONFIGURATION
// ══════════════════════════════════════════════════════════════════════════════

// ClientConfig contains configuration for the AoC client.
type ClientConfig struct {
	// LeaderboardURL is the full private leaderboard JSON URL,
	// e.g. https://adventofcode.com/2024/leaderboard/private/view/123456.json
	LeaderboardURL string

	// SessionCookie is the adventofcode.com session cookie value. It is an
	// opaque credential passed through as-is; the client never refreshes it.
	SessionCookie string

	// Timeout is the HTTP request timeout.
	Timeout time.Duration

	// UserAgent identifies the bot to the AoC maintainers, as they request.
	UserAgent string

	// Logger for structured logging.
	Logger *slog.Logger

	// Debug enables debug logging.
	Debug bool
}

// DefaultClientConfig returns sensible defaults.
func DefaultClientConfig(leaderboardURL, sessionCookie string) ClientConfig {
	return ClientConfig{
		LeaderboardURL: leaderboardURL,
		SessionCookie:  sessionCookie,
		Timeout:        30 * time.Second,
		UserAgent:      "aoc-discord-bot",
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// CLIENT
// ══════════════════════════════════════════════════════════════════════════════

// Client fetches the private leaderboard from adventofcode.com.
type Client struct {
	config     ClientConfig
	httpClient *http.Client
	logger     *slog.Logger
	mapper     *Mapper
}

// NewClient creates a new AoC client.
func NewClient(config ClientConfig) *Client {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		logger: config.Logger,
		mapper: NewMapper(),
	}
}

// Fetch retrieves the raw leaderboard document. Fails with
// ErrSourceUnavailable on any transport error or non-success status.
func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.LeaderboardURL, nil)
	if err != nil {
		return nil, shared.WrapError("aoc", "Fetch", shared.ErrSourceUnavailable,
			"create request", err)
	}
	req.Header.Set("Cookie", "session="+c.config.SessionCookie)
	req.Header.Set("Accept", "application/json")
	if c.config.UserAgent != "" {
		req.Header.Set("User-Agent", c.config.UserAgent)
	}

	if c.config.Debug {
		c.logger.Debug("aoc fetch", "url", c.config.LeaderboardURL)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, shared.WrapError("aoc", "Fetch", shared.ErrSourceUnavailable,
			"http request", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, shared.WrapError("aoc", "Fetch", shared.ErrSourceUnavailable,
			"read response", err)
	}

	if resp.StatusCode != http.StatusOK {
		// AoC answers redirects or 404s rather than 401 when the session
		// cookie is stale; all of them are "source unavailable" here.
		return nil, shared.NewDomainError("aoc", "Fetch", shared.ErrSourceUnavailable,
			fmt.Sprintf("unexpected status %d", resp.StatusCode))
	}
	return body, nil
}

// FetchStandings fetches and parses the leaderboard into a snapshot.
func (c *Client) FetchStandings(ctx context.Context) (*standings.Snapshot, error) {
	raw, err := c.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	members, err := c.mapper.Parse(raw)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("aoc standings parsed", "members", len(members))
	return standings.NewSnapshot(members, time.Now()), nil
}
