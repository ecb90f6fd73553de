package handler

import (
	"context"
	"errors"

	"github.com/aoc-hub/aoc-discord-bot/internal/domain/ranking"
	"github.com/aoc-hub/aoc-discord-bot/internal/domain/shared"
	botiface "github.com/aoc-hub/aoc-discord-bot/internal/interface/discord"
	"github.com/aoc-hub/aoc-discord-bot/internal/interface/discord/presenter"
)

// RankHandler handles !rank <name…>: the overall-ranking row of one player,
// matched case-insensitively. Names with spaces arrive as one argument
// string, so "!rank Ada Lovelace" just works.
type RankHandler struct {
	standings Standings
}

// NewRankHandler creates a new RankHandler.
func NewRankHandler(standings Standings) *RankHandler {
	return &RankHandler{standings: standings}
}

// Handle implements botiface.CommandHandler.
func (h *RankHandler) Handle(ctx context.Context, cmdCtx botiface.CommandContext) ([]string, error) {
	if cmdCtx.Args == "" {
		return []string{unknownPlayerText}, nil
	}

	snap, err := h.standings.Get(ctx)
	if err != nil {
		return nil, err
	}

	entry, err := ranking.LookupByName(snap, cmdCtx.Args)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) || errors.Is(err, shared.ErrNoData) {
			return []string{unknownPlayerText}, nil
		}
		return nil, err
	}

	return []string{presenter.CodeBlock(presenter.RenderOne(entry, presenter.WithPoints))}, nil
}
