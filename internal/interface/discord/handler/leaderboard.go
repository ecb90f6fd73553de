package handler

import (
	"context"
	"errors"
	"strconv"

	"github.com/aoc-hub/aoc-discord-bot/internal/domain/ranking"
	"github.com/aoc-hub/aoc-discord-bot/internal/domain/shared"
	botiface "github.com/aoc-hub/aoc-discord-bot/internal/interface/discord"
	"github.com/aoc-hub/aoc-discord-bot/internal/interface/discord/presenter"
)

// defaultLeaderboardLimit is how many members !leaderboard shows when no
// count argument is given.
const defaultLeaderboardLimit = 20

// LeaderboardHandler handles !leaderboard [n]: the overall ranking, top n.
type LeaderboardHandler struct {
	standings Standings
}

// NewLeaderboardHandler creates a new LeaderboardHandler.
func NewLeaderboardHandler(standings Standings) *LeaderboardHandler {
	return &LeaderboardHandler{standings: standings}
}

// Handle implements botiface.CommandHandler.
func (h *LeaderboardHandler) Handle(ctx context.Context, cmdCtx botiface.CommandContext) ([]string, error) {
	limit := defaultLeaderboardLimit
	if cmdCtx.Args != "" {
		n, err := strconv.Atoi(cmdCtx.Args)
		if err == nil && n > 0 {
			limit = n
		}
	}

	snap, err := h.standings.Get(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := ranking.Overall(snap)
	if err != nil {
		if errors.Is(err, shared.ErrNoData) {
			return []string{presenter.CodeBlock(emptyBoardReply)}, nil
		}
		return nil, err
	}
	if limit < len(entries) {
		entries = entries[:limit]
	}

	rows := presenter.Render(entries, presenter.WithPoints)
	return presenter.Paginate(rows, presenter.MaxMessageLen), nil
}
