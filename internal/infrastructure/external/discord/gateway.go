package discord

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/aoc-hub/aoc-discord-bot/pkg/retry"
)

// ══════════════════════════════════════════════════════════════════════════════
// GATEWAY PROTOCOL
// ══════════════════════════════════════════════════════════════════════════════

// Gateway opcodes.
const (
	opDispatch       = 0
	opHeartbeat      = 1
	opIdentify       = 2
	opReconnect      = 7
	opInvalidSession = 9
	opHello          = 10
	opHeartbeatACK   = 11
)

// Gateway intents the bot needs: guilds, guild messages, and message content.
const (
	intentGuilds         = 1 << 0
	intentGuildMessages  = 1 << 9
	intentMessageContent = 1 << 15

	defaultIntents = intentGuilds | intentGuildMessages | intentMessageContent
)

// payload is the envelope every gateway frame uses.
type payload struct {
	Op int             `json:"op"`
	D  json.RawMessage `json:"d,omitempty"`
	S  *int64          `json:"s,omitempty"`
	T  string          `json:"t,omitempty"`
}

type helloData struct {
	HeartbeatInterval int `json:"heartbeat_interval"`
}

type identifyData struct {
	Token      string             `json:"token"`
	Intents    int                `json:"intents"`
	Properties identifyProperties `json:"properties"`
}

type identifyProperties struct {
	OS      string `json:"os"`
	Browser string `json:"browser"`
	Device  string `json:"device"`
}

type readyData struct {
	SessionID string  `json:"session_id"`
	User      User    `json:"user"`
	Guilds    []Guild `json:"guilds"`
}

// ══════════════════════════════════════════════════════════════════════════════
// GATEWAY SESSION
// ══════════════════════════════════════════════════════════════════════════════

// GatewayConfig contains configuration for the gateway session.
type GatewayConfig struct {
	// Token is the Discord bot token.
	Token string

	// URL is the gateway websocket URL.
	URL string

	// Intents is the gateway intent bitmask.
	Intents int

	// Reconnect configures the reconnection backoff.
	Reconnect retry.Config

	// Logger for structured logging.
	Logger *slog.Logger
}

// DefaultGatewayConfig returns sensible defaults.
func DefaultGatewayConfig(token string) GatewayConfig {
	return GatewayConfig{
		Token:     token,
		URL:       "wss://gateway.discord.gg/?v=10&encoding=json",
		Intents:   defaultIntents,
		Reconnect: retry.DefaultConfig(),
	}
}

// MessageHandler receives every MESSAGE_CREATE dispatched by the gateway.
// Handlers are invoked on their own goroutine and must not block the session.
type MessageHandler func(ctx context.Context, msg Message)

// Gateway maintains a websocket session with the Discord gateway: it
// identifies, answers heartbeats, and dispatches MESSAGE_CREATE events to the
// registered handler. Dropped connections are re-established with backoff.
type Gateway struct {
	config  GatewayConfig
	logger  *slog.Logger
	handler MessageHandler

	// seq is the last dispatch sequence number, echoed in heartbeats.
	seq atomic.Int64

	// writeMu serializes websocket writes (heartbeat loop vs identify).
	writeMu sync.Mutex
	conn    *websocket.Conn
}

// NewGateway creates a gateway session. The handler receives all
// MESSAGE_CREATE events once Run is started.
func NewGateway(config GatewayConfig, handler MessageHandler) *Gateway {
	if config.URL == "" {
		config.URL = DefaultGatewayConfig(config.Token).URL
	}
	if config.Intents == 0 {
		config.Intents = defaultIntents
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Gateway{
		config:  config,
		logger:  config.Logger,
		handler: handler,
	}
}

// Run connects to the gateway and blocks, reconnecting on failure, until the
// context is cancelled.
func (g *Gateway) Run(ctx context.Context) error {
	backoff := retry.NewBackoff(g.config.Reconnect)

	for {
		started := time.Now()
		err := g.runOnce(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		// A session that held for a while was a real connection; start the
		// backoff sequence over instead of punishing the next reconnect.
		if time.Since(started) > time.Minute {
			backoff.Reset()
		}
		if backoff.Exhausted() {
			return fmt.Errorf("gateway: giving up after %d attempts: %w", backoff.Attempt(), err)
		}

		g.logger.Warn("gateway session ended, reconnecting",
			"error", err,
			"attempt", backoff.Attempt()+1,
		)
		if err := backoff.Wait(ctx); err != nil {
			return err
		}
	}
}

// runOnce runs a single connect-identify-read session.
func (g *Gateway) runOnce(ctx context.Context) error {
	dialer := websocket.Dialer{HandshakeTimeout: 30 * time.Second}
	conn, _, err := dialer.DialContext(ctx, g.config.URL, nil)
	if err != nil {
		return fmt.Errorf("dial gateway: %w", err)
	}
	g.conn = conn
	defer conn.Close()

	// Close the socket when the context is cancelled so ReadMessage unblocks.
	sessionCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		<-sessionCtx.Done()
		conn.Close()
	}()

	// First frame must be HELLO with the heartbeat interval.
	var hello payload
	if err := conn.ReadJSON(&hello); err != nil {
		return fmt.Errorf("read hello: %w", err)
	}
	if hello.Op != opHello {
		return fmt.Errorf("expected hello, got op %d", hello.Op)
	}
	var hd helloData
	if err := json.Unmarshal(hello.D, &hd); err != nil {
		return fmt.Errorf("parse hello: %w", err)
	}

	heartbeatInterval := time.Duration(hd.HeartbeatInterval) * time.Millisecond
	go g.heartbeatLoop(sessionCtx, heartbeatInterval)

	if err := g.identify(); err != nil {
		return fmt.Errorf("identify: %w", err)
	}

	return g.readLoop(sessionCtx)
}

// identify sends the IDENTIFY frame.
func (g *Gateway) identify() error {
	d, err := json.Marshal(identifyData{
		Token:   g.config.Token,
		Intents: g.config.Intents,
		Properties: identifyProperties{
			OS:      "linux",
			Browser: "aoc-discord-bot",
			Device:  "aoc-discord-bot",
		},
	})
	if err != nil {
		return err
	}
	return g.writePayload(payload{Op: opIdentify, D: d})
}

// heartbeatLoop sends heartbeats at the interval the gateway announced.
func (g *Gateway) heartbeatLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			seq := g.seq.Load()
			d, _ := json.Marshal(seq)
			if err := g.writePayload(payload{Op: opHeartbeat, D: d}); err != nil {
				g.logger.Warn("heartbeat write failed", "error", err)
				return
			}
		}
	}
}

// readLoop reads and dispatches frames until the connection fails.
func (g *Gateway) readLoop(ctx context.Context) error {
	for {
		var frame payload
		if err := g.conn.ReadJSON(&frame); err != nil {
			return fmt.Errorf("read frame: %w", err)
		}
		if frame.S != nil {
			g.seq.Store(*frame.S)
		}

		switch frame.Op {
		case opDispatch:
			g.dispatch(ctx, frame)
		case opHeartbeat:
			// The gateway may request an immediate heartbeat.
			seq := g.seq.Load()
			d, _ := json.Marshal(seq)
			if err := g.writePayload(payload{Op: opHeartbeat, D: d}); err != nil {
				return fmt.Errorf("requested heartbeat: %w", err)
			}
		case opHeartbeatACK:
			// Nothing to do.
		case opReconnect, opInvalidSession:
			return fmt.Errorf("gateway requested reconnect (op %d)", frame.Op)
		}
	}
}

// dispatch routes a single dispatch frame by event type.
func (g *Gateway) dispatch(ctx context.Context, frame payload) {
	switch frame.T {
	case "READY":
		var ready readyData
		if err := json.Unmarshal(frame.D, &ready); err != nil {
			g.logger.Warn("parse ready", "error", err)
			return
		}
		g.logger.Info("connected to Discord",
			"user", ready.User.Username,
			"guilds", len(ready.Guilds),
		)
	case "MESSAGE_CREATE":
		var msg Message
		if err := json.Unmarshal(frame.D, &msg); err != nil {
			g.logger.Warn("parse message_create", "error", err)
			return
		}
		if g.handler != nil {
			go g.handler(ctx, msg)
		}
	}
}

// writePayload writes one frame, serializing writers.
func (g *Gateway) writePayload(p payload) error {
	g.writeMu.Lock()
	defer g.writeMu.Unlock()
	return g.conn.WriteJSON(p)
}
