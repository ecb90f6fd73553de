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

// StarsHandler handles !stars [day]: every star earned on one contest day in
// chronological order, so a member can appear twice. The stars column shows
// which star each row is; the points template is omitted since the weight
// would just mirror the row order.
type StarsHandler struct {
	standings Standings

	// now is swappable for tests.
	now func() time.Time
}

// NewStarsHandler creates a new StarsHandler.
func NewStarsHandler(standings Standings) *StarsHandler {
	return &StarsHandler{
		standings: standings,
		now:       time.Now,
	}
}

// Handle implements botiface.CommandHandler.
func (h *StarsHandler) Handle(ctx context.Context, cmdCtx botiface.CommandContext) ([]string, error) {
	day := cmdCtx.Args
	if day == "" {
		day = timeutil.CurrentContestDay(h.now())
	}

	snap, err := h.standings.Get(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := ranking.DailyChronological(snap, day)
	if err != nil {
		if errors.Is(err, shared.ErrNoData) {
			return []string{presenter.CodeBlock(noScoresReply)}, nil
		}
		return nil, err
	}

	rows := presenter.Render(entries, presenter.WithoutPoints)
	return presenter.Paginate(rows, presenter.MaxMessageLen), nil
}
