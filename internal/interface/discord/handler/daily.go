package handler

import (
	"context"
	"errors"
	"time"

	"github.com/aoc-hub/aoc-discord-bot/internal/domain/ranking"
	"github.com/aoc-hub/aoc-discord-bot/internal/domain/shared"
	botiface "github.com/aoc-hub/aoc-discord-bot/internal/interface/discord"
	"github.com/aoc-hub/aoc-discord-bot/internal/interface/discord/presenter"
	"github.com/aoc-hub/aoc-discord-bot/pkg/timeutil"
)

// DailyHandler handles !daily [day]: the completion-score ranking for one
// contest day. The day defaults to the most recently unlocked puzzle, so at
// 04:59 UTC it still shows the previous day's board.
type DailyHandler struct {
	standings Standings

	// now is swappable for tests.
	now func() time.Time
}

// NewDailyHandler creates a new DailyHandler.
func NewDailyHandler(standings Standings) *DailyHandler {
	return &DailyHandler{
		standings: standings,
		now:       time.Now,
	}
}

// Handle implements botiface.CommandHandler.
func (h *DailyHandler) Handle(ctx context.Context, cmdCtx botiface.CommandContext) ([]string, error) {
	day := cmdCtx.Args
	if day == "" {
		day = timeutil.CurrentContestDay(h.now())
	}

	snap, err := h.standings.Get(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := ranking.DailyScore(snap, day)
	if err != nil {
		if errors.Is(err, shared.ErrNoData) {
			return []string{presenter.CodeBlock(noScoresReply)}, nil
		}
		return nil, err
	}

	rows := presenter.Render(entries, presenter.WithPoints)
	return presenter.Paginate(rows, presenter.MaxMessageLen), nil
}
