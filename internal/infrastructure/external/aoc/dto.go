// Package aoc implements the Advent of Code private leaderboard client.
// This package handles all communication with adventofcode.com: fetching the
// leaderboard JSON with the session cookie and mapping it into the domain
// standings model.
package aoc

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ══════════════════════════════════════════════════════════════════════════════
// LEADERBOARD DTOs
// The AoC feed is an external, versioned contract. Unknown fields are ignored
// and numeric fields arrive either as JSON numbers or as decimal strings
// depending on feed vintage, so every numeric field goes through FlexInt.
// ══════════════════════════════════════════════════════════════════════════════

// LeaderboardDTO is the top-level document returned by
// /{year}/leaderboard/private/view/{id}.json.
type LeaderboardDTO struct {
	// OwnerID is the leaderboard owner's member ID.
	OwnerID FlexInt `json:"owner_id"`

	// Event is the contest year, e.g. "2024".
	Event string `json:"event"`

	// Members is the member collection keyed by member ID.
	Members map[string]MemberDTO `json:"members"`
}

// MemberDTO represents one contestant as returned by the AoC feed.
type MemberDTO struct {
	// ID is the numeric member identifier.
	ID *FlexInt `json:"id"`

	// Name is the display name. Null for anonymous accounts.
	Name *string `json:"name"`

	// LocalScore is the private-leaderboard score.
	LocalScore *FlexInt `json:"local_score"`

	// GlobalScore is the global-leaderboard score (unused, tolerated).
	GlobalScore *FlexInt `json:"global_score"`

	// Stars is the total star count.
	Stars *FlexInt `json:"stars"`

	// LastStarTS is the epoch-second timestamp of the most recent star.
	LastStarTS *FlexInt `json:"last_star_ts"`

	// CompletionDayLevel maps day-of-month keys ("1".."25") to per-star
	// completion records.
	CompletionDayLevel map[string]map[string]StarDTO `json:"completion_day_level"`
}

// StarDTO is a single star completion record.
type StarDTO struct {
	// GetStarTS is the epoch-second timestamp the star was earned.
	GetStarTS *FlexInt `json:"get_star_ts"`

	// StarIndex is a feed-internal ordinal (unused, tolerated).
	StarIndex *FlexInt `json:"star_index"`
}

// FlexInt is an int64 that unmarshals from either a JSON number or a decimal
// string. Early AoC feeds served "last_star_ts": "0" while current ones serve
// a plain number.
type FlexInt int64

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("flexint: empty input")
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("flexint: %w", err)
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("flexint: %q is not numeric", s)
		}
		*f = FlexInt(n)
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("flexint: %w", err)
	}
	*f = FlexInt(n)
	return nil
}

// Int64 returns the underlying value.
func (f FlexInt) Int64() int64 {
	return int64(f)
}

// Int returns the underlying value truncated to int.
func (f FlexInt) Int() int {
	return int(f)
}

// String returns the decimal representation.
func (f FlexInt) String() string {
	return strconv.FormatInt(int64(f), 10)
}
