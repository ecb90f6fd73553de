// Package discord implements a minimal Discord API wrapper.
// This package provides the two surfaces the bot needs: a REST client for
// sending messages and resolving channel names, and a gateway session for
// receiving message events over websocket.
package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// ══════════════════════════════════════════════════════════════════════════════
// CONFIGURATION
// ══════════════════════════════════════════════════════════════════════════════

// ClientConfig contains configuration for the Discord REST client.
type ClientConfig struct {
	// Token is the Discord bot token.
	Token string

	// BaseURL is the Discord API base URL.
	BaseURL string

	// Timeout is the HTTP request timeout.
	Timeout time.Duration

	// Logger for structured logging.
	Logger *slog.Logger

	// Debug enables debug logging.
	Debug bool
}

// DefaultClientConfig returns sensible defaults.
func DefaultClientConfig(token string) ClientConfig {
	return ClientConfig{
		Token:   token,
		BaseURL: "https://discord.com/api/v10",
		Timeout: 30 * time.Second,
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// API TYPES
// ══════════════════════════════════════════════════════════════════════════════

// Channel represents a Discord channel.
type Channel struct {
	ID   string `json:"id"`
	Type int    `json:"type"`
	Name string `json:"name,omitempty"`
}

// User represents a Discord user.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Bot      bool   `json:"bot,omitempty"`
}

// Message represents a Discord message.
type Message struct {
	ID        string `json:"id"`
	ChannelID string `json:"channel_id"`
	Content   string `json:"content"`
	Author    *User  `json:"author,omitempty"`
}

// Guild represents a Discord guild (server).
type Guild struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// APIError is a non-success response from the Discord API.
type APIError struct {
	Status  int    `json:"-"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("discord api: status %d code %d: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("discord api: status %d", e.Status)
}

// ══════════════════════════════════════════════════════════════════════════════
// CLIENT
// ══════════════════════════════════════════════════════════════════════════════

// Client is the Discord REST client. It implements the outbound message sink
// and resolves channel metadata for the command router's channel gating.
type Client struct {
	config     ClientConfig
	httpClient *http.Client
	logger     *slog.Logger

	// Channel names are immutable enough for gating purposes; resolved
	// channels are memoized for the process lifetime.
	channelMu    sync.RWMutex
	channelCache map[string]*Channel
}

// NewClient creates a new Discord REST client.
func NewClient(config ClientConfig) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultClientConfig(config.Token).BaseURL
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultClientConfig(config.Token).Timeout
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		logger:       config.Logger,
		channelCache: make(map[string]*Channel),
	}
}

// SendMessage posts a text message to the given channel. Failures are
// propagated to the caller, never retried here.
func (c *Client) SendMessage(ctx context.Context, channelID, content string) error {
	body := struct {
		Content string `json:"content"`
	}{Content: content}

	path := fmt.Sprintf("/channels/%s/messages", channelID)
	if err := c.doRequest(ctx, http.MethodPost, path, body, nil); err != nil {
		return fmt.Errorf("send message to channel %s: %w", channelID, err)
	}
	return nil
}

// GetChannel fetches channel metadata, memoizing the result.
func (c *Client) GetChannel(ctx context.Context, channelID string) (*Channel, error) {
	c.channelMu.RLock()
	cached, ok := c.channelCache[channelID]
	c.channelMu.RUnlock()
	if ok {
		return cached, nil
	}

	var channel Channel
	path := fmt.Sprintf("/channels/%s", channelID)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &channel); err != nil {
		return nil, fmt.Errorf("get channel %s: %w", channelID, err)
	}

	c.channelMu.Lock()
	c.channelCache[channelID] = &channel
	c.channelMu.Unlock()
	return &channel, nil
}

// doRequest performs a single authenticated HTTP request.
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	fullURL := c.config.BaseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bot "+c.config.Token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if c.config.Debug {
		c.logger.Debug("discord api request", "method", method, "path", path)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		// Best effort: Discord error bodies are JSON but may be empty.
		_ = json.Unmarshal(respBody, apiErr)
		return apiErr
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}
	return nil
}
