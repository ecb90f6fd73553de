// Package ranking derives leaderboard orderings from a standings snapshot.
// All algorithms are pure functions over an immutable snapshot: they allocate
// their own result slices and never touch shared state, so callers need no
// synchronization. Entries are derived per request and never cached.
package ranking

import (
	"sort"
	"strings"

	"github.com/aoc-hub/aoc-discord-bot/internal/domain/shared"
	"github.com/aoc-hub/aoc-discord-bot/internal/domain/standings"
)

// Entry is one row of a derived, request-specific leaderboard.
type Entry struct {
	// Rank is the 1-based position of the member in this ranking.
	Rank int

	// Member is the contestant this row describes.
	Member standings.Member

	// Points is the primary score for this ranking. For the overall ranking
	// it is the contest-local score; for the daily rankings it is the
	// derived completion points.
	Points int

	// Stars is the star figure shown for this row. For the overall ranking
	// it is the member's total star count; for the daily rankings it is the
	// highest star index involved (1 or 2).
	Stars int

	// StarTime is the epoch-second timestamp used for the row's time column.
	StarTime int64
}

// Overall orders all members by the composite key: local score descending,
// star count descending, last star timestamp ascending (earlier wins ties,
// rewarding speed), with member ID ascending as the final deterministic
// tiebreak. Ranks are consecutive 1-based positions with no gap collapsing.
//
// The order is produced by a single explicit comparator rather than chained
// stable sorts, so it does not depend on any sort-stability guarantee.
func Overall(snap *standings.Snapshot) ([]Entry, error) {
	if snap.IsEmpty() {
		return nil, shared.NewDomainError("ranking", "Overall", shared.ErrNoData, "standings are empty")
	}

	members := make([]standings.Member, len(snap.Members))
	copy(members, snap.Members)

	sort.Slice(members, func(i, j int) bool {
		a, b := members[i], members[j]
		if a.LocalScore != b.LocalScore {
			return a.LocalScore > b.LocalScore
		}
		if a.StarCount != b.StarCount {
			return a.StarCount > b.StarCount
		}
		if a.LastStarTS != b.LastStarTS {
			return a.LastStarTS < b.LastStarTS
		}
		return a.ID < b.ID
	})

	entries := make([]Entry, len(members))
	for i, m := range members {
		entries[i] = Entry{
			Rank:     i + 1,
			Member:   m,
			Points:   m.LocalScore,
			Stars:    m.StarCount,
			StarTime: m.LastStarTS,
		}
	}
	return entries, nil
}

// LookupByName finds a member in the overall ranking by display name,
// case-insensitively. Returns ErrNotFound when no member matches.
func LookupByName(snap *standings.Snapshot, name string) (Entry, error) {
	entries, err := Overall(snap)
	if err != nil {
		return Entry{}, err
	}

	for _, e := range entries {
		if strings.EqualFold(e.Member.Name, name) {
			return e, nil
		}
	}
	return Entry{}, shared.NewDomainError("ranking", "LookupByName", shared.ErrNotFound,
		"no member named "+name)
}

// FirstToMaxStars returns the overall-ranking entry of the member who reached
// the current maximum star count first (smallest last-star timestamp among
// the members holding the maximum).
func FirstToMaxStars(snap *standings.Snapshot) (Entry, error) {
	entries, err := Overall(snap)
	if err != nil {
		return Entry{}, err
	}

	maxStars := 0
	for _, e := range entries {
		if e.Member.StarCount > maxStars {
			maxStars = e.Member.StarCount
		}
	}

	var best *Entry
	for i := range entries {
		e := &entries[i]
		if e.Member.StarCount != maxStars {
			continue
		}
		if best == nil || e.Member.LastStarTS < best.Member.LastStarTS {
			best = e
		}
	}
	// best is always set: entries is non-empty past the Overall error check.
	return *best, nil
}
