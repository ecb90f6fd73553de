// Package discord implements the Discord command interface for the bot.
// This package is the entry point for all chat interactions: it gates
// messages by channel name, parses commands, and routes them to handlers.
package discord

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/aoc-hub/aoc-discord-bot/internal/domain/shared"
	discordapi "github.com/aoc-hub/aoc-discord-bot/internal/infrastructure/external/discord"
)

// ══════════════════════════════════════════════════════════════════════════════
// ROUTER CONFIGURATION
// ══════════════════════════════════════════════════════════════════════════════

// RouterConfig contains configuration for the command router.
type RouterConfig struct {
	// Prefix is the command prefix, e.g. "!".
	Prefix string

	// ChannelName gates commands: only channels whose name contains this
	// substring get responses. Other channels are silently ignored.
	ChannelName string

	// Logger for structured logging.
	Logger *slog.Logger

	// Debug enables debug logging of routing decisions.
	Debug bool
}

// DefaultRouterConfig returns sensible defaults.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		Prefix:      "!",
		ChannelName: "advent-of-code",
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// COLLABORATOR INTERFACES
// ══════════════════════════════════════════════════════════════════════════════

// Sink accepts one outbound text block at a time. Send failures are
// propagated, not retried.
type Sink interface {
	SendMessage(ctx context.Context, channelID, content string) error
}

// ChannelResolver resolves channel metadata for channel-name gating.
type ChannelResolver interface {
	GetChannel(ctx context.Context, channelID string) (*discordapi.Channel, error)
}

// CommandContext carries the parsed command through to a handler.
type CommandContext struct {
	// RequestID correlates all log lines for one command invocation.
	RequestID string

	// ChannelID is where the reply goes.
	ChannelID string

	// Args is the raw text after the command word, trimmed. Multi-word
	// arguments (player names with spaces) arrive as one string.
	Args string
}

// CommandHandler is the interface command handlers implement. It returns the
// outbound message blocks to send, in order. Expected outcomes (unknown
// player, day without scores) are rendered as friendly blocks by the handler
// itself; only operational failures come back as errors.
type CommandHandler interface {
	Handle(ctx context.Context, cmdCtx CommandContext) ([]string, error)
}

// ══════════════════════════════════════════════════════════════════════════════
// ROUTER
// ══════════════════════════════════════════════════════════════════════════════

// failureReply is the generic response for operational failures. Details stay
// in the logs, not in the channel.
const failureReply = "Whoops, something went wrong talking to Advent of Code. Try again in a bit."

// Router dispatches gateway messages to command handlers.
type Router struct {
	config   RouterConfig
	sink     Sink
	channels ChannelResolver
	handlers map[string]CommandHandler
	logger   *slog.Logger
}

// NewRouter creates a router sending replies through the given sink.
func NewRouter(config RouterConfig, sink Sink, channels ChannelResolver) *Router {
	if config.Prefix == "" {
		config.Prefix = DefaultRouterConfig().Prefix
	}
	if config.ChannelName == "" {
		config.ChannelName = DefaultRouterConfig().ChannelName
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Router{
		config:   config,
		sink:     sink,
		channels: channels,
		handlers: make(map[string]CommandHandler),
		logger:   config.Logger,
	}
}

// Register registers a handler for a command name (without prefix).
func (r *Router) Register(name string, handler CommandHandler) {
	r.handlers[strings.ToLower(name)] = handler
}

// HandleMessage routes one gateway message. Non-commands, bot authors,
// unknown commands and non-matching channels are all ignored without a reply.
func (r *Router) HandleMessage(ctx context.Context, msg discordapi.Message) {
	if msg.Author != nil && msg.Author.Bot {
		return
	}
	if !strings.HasPrefix(msg.Content, r.config.Prefix) {
		return
	}

	name, args := splitCommand(strings.TrimPrefix(msg.Content, r.config.Prefix))
	handler, ok := r.handlers[strings.ToLower(name)]
	if !ok {
		return
	}

	allowed, err := r.channelAllowed(ctx, msg.ChannelID)
	if err != nil {
		r.logger.Warn("channel gate lookup failed", "channel_id", msg.ChannelID, "error", err)
		return
	}
	if !allowed {
		if r.config.Debug {
			r.logger.Debug("command outside gated channel", "command", name, "channel_id", msg.ChannelID)
		}
		return
	}

	cmdCtx := CommandContext{
		RequestID: uuid.NewString(),
		ChannelID: msg.ChannelID,
		Args:      args,
	}
	log := r.logger.With("request_id", cmdCtx.RequestID, "command", name)
	log.Info("command requested", "args", args)

	blocks, err := handler.Handle(ctx, cmdCtx)
	if err != nil {
		if shared.IsOperational(err) {
			log.Error("command failed", "error", err)
		} else {
			log.Warn("command failed", "error", err)
		}
		blocks = []string{failureReply}
	}

	for _, block := range blocks {
		if err := r.sink.SendMessage(ctx, cmdCtx.ChannelID, block); err != nil {
			log.Error("send reply failed", "error", err)
			return
		}
	}
}

// channelAllowed applies the channel-name gate.
func (r *Router) channelAllowed(ctx context.Context, channelID string) (bool, error) {
	channel, err := r.channels.GetChannel(ctx, channelID)
	if err != nil {
		return false, err
	}
	return strings.Contains(channel.Name, r.config.ChannelName), nil
}

// splitCommand separates the command word from its argument string.
func splitCommand(s string) (name, args string) {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i], strings.TrimSpace(s[i+1:])
	}
	return s, ""
}
