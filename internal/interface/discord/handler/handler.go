// Package handler contains the Discord command handlers.
// Each handler is one use case: it pulls a snapshot through the standings
// cache, runs a ranking over it, and renders the reply blocks. Expected
// outcomes (unknown player, empty day) become friendly messages here;
// operational failures propagate to the router.
package handler

import (
	"context"

	"github.com/aoc-hub/aoc-discord-bot/internal/domain/standings"
)

// Standings provides the current standings snapshot. Implemented by the
// TTL'd standings cache; handlers never fetch directly.
type Standings interface {
	Get(ctx context.Context) (*standings.Snapshot, error)
}

// Friendly replies for expected empty outcomes.
const (
	noScoresReply     = "No Scores for this day yet"
	emptyBoardReply   = "Nobody is on the leaderboard yet"
	unknownPlayerText = "Whoops, it looks like I can't find that player, are you sure they're playing?"
)
