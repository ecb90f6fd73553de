// Package standings содержит доменную модель таблицы результатов Advent of Code.
// A Member is one contestant on the private leaderboard; a Snapshot is the
// immutable result of one fetch of the whole board.
package standings

import (
	"fmt"

	"github.com/aoc-hub/aoc-discord-bot/internal/domain/shared"
)

// Star indexes as they appear in the AoC completion structure.
// Each contest day has two completion milestones.
const (
	StarOne = "1"
	StarTwo = "2"
)

// DayCompletion maps a star index (StarOne, StarTwo) to the epoch-second
// timestamp that star was earned. Entries exist only for stars actually
// earned; absence means not completed.
type DayCompletion map[string]int64

// Member represents one contestant on the leaderboard.
type Member struct {
	// ID is the opaque AoC member identifier, unique and stable across refreshes.
	ID string

	// Name is the display name. Never empty after Normalize.
	Name string

	// LocalScore is the contest-local ranking score.
	LocalScore int

	// StarCount is the total number of stars earned.
	StarCount int

	// LastStarTS is the epoch-second timestamp of the most recent star.
	LastStarTS int64

	// CompletionByDay maps a day-of-month key ("1".."25", as it appears in
	// the contest calendar) to that day's star completions.
	CompletionByDay map[string]DayCompletion
}

// Normalize replaces an empty display name with a deterministic placeholder
// derived from the member ID. Anonymous AoC accounts have no name in the feed.
func (m *Member) Normalize() {
	if m.Name == "" {
		m.Name = "anon #" + m.ID
	}
}

// Validate checks the entity invariants.
func (m *Member) Validate() error {
	if m.ID == "" {
		return shared.NewDomainError("standings", "Validate", shared.ErrMalformedSource, "member has no id")
	}
	if m.Name == "" {
		return shared.NewDomainError("standings", "Validate", shared.ErrMalformedSource,
			fmt.Sprintf("member %s has an empty name after normalization", m.ID))
	}
	return nil
}

// HasDay reports whether the member has any completion data for the given day key.
func (m *Member) HasDay(day string) bool {
	_, ok := m.CompletionByDay[day]
	return ok
}

// StarTimestamp returns the timestamp the member earned the given star on the
// given day, and whether that star was earned at all.
func (m *Member) StarTimestamp(day, star string) (int64, bool) {
	dc, ok := m.CompletionByDay[day]
	if !ok {
		return 0, false
	}
	ts, ok := dc[star]
	return ts, ok
}
