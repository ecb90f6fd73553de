package handler

import (
	"context"
	"errors"

	"github.com/aoc-hub/aoc-discord-bot/internal/domain/ranking"
	"github.com/aoc-hub/aoc-discord-bot/internal/domain/shared"
	botiface "github.com/aoc-hub/aoc-discord-bot/internal/interface/discord"
	"github.com/aoc-hub/aoc-discord-bot/internal/interface/discord/presenter"
)

// KeenHandler handles !keen: the first member to reach the current maximum
// star count.
type KeenHandler struct {
	standings Standings
}

// NewKeenHandler creates a new KeenHandler.
func NewKeenHandler(standings Standings) *KeenHandler {
	return &KeenHandler{standings: standings}
}

// Handle implements botiface.CommandHandler.
func (h *KeenHandler) Handle(ctx context.Context, cmdCtx botiface.CommandContext) ([]string, error) {
	snap, err := h.standings.Get(ctx)
	if err != nil {
		return nil, err
	}

	entry, err := ranking.FirstToMaxStars(snap)
	if err != nil {
		if errors.Is(err, shared.ErrNoData) {
			return []string{presenter.CodeBlock(emptyBoardReply)}, nil
		}
		return nil, err
	}

	reply := "Today's keenest bean is:\n" +
		presenter.CodeBlock(presenter.RenderOne(entry, presenter.WithPoints))
	return []string{reply}, nil
}
