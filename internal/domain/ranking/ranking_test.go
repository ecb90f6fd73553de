package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aoc-hub/aoc-discord-bot/internal/domain/shared"
	"github.com/aoc-hub/aoc-discord-bot/internal/domain/standings"
)

func snapshotOf(members ...standings.Member) *standings.Snapshot {
	for i := range members {
		members[i].Normalize()
	}
	return standings.NewSnapshot(members, time.Unix(1700000000, 0))
}

func TestOverall_CompositeOrder(t *testing.T) {
	snap := snapshotOf(
		standings.Member{ID: "1", Name: "Ada", LocalScore: 50, StarCount: 10, LastStarTS: 300},
		standings.Member{ID: "2", Name: "Bob", LocalScore: 80, StarCount: 8, LastStarTS: 400},
		standings.Member{ID: "3", Name: "Cee", LocalScore: 50, StarCount: 12, LastStarTS: 200},
		standings.Member{ID: "4", Name: "Dee", LocalScore: 50, StarCount: 12, LastStarTS: 100},
	)

	entries, err := Overall(snap)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	// Score first, then stars, then earlier last star.
	assert.Equal(t, "Bob", entries[0].Member.Name)
	assert.Equal(t, "Dee", entries[1].Member.Name)
	assert.Equal(t, "Cee", entries[2].Member.Name)
	assert.Equal(t, "Ada", entries[3].Member.Name)

	for i, e := range entries {
		assert.Equal(t, i+1, e.Rank)
	}
}

func TestOverall_IsTotalOrder(t *testing.T) {
	snap := snapshotOf(
		standings.Member{ID: "a", Name: "A", LocalScore: 10, StarCount: 4, LastStarTS: 50},
		standings.Member{ID: "b", Name: "B", LocalScore: 10, StarCount: 4, LastStarTS: 50},
		standings.Member{ID: "c", Name: "C", LocalScore: 30, StarCount: 2, LastStarTS: 10},
		standings.Member{ID: "d", Name: "D", LocalScore: 10, StarCount: 6, LastStarTS: 90},
	)

	entries, err := Overall(snap)
	require.NoError(t, err)

	// Any higher-ranked entry has a (score, stars, -ts) tuple >= the lower
	// one's, lexicographically.
	for i := 0; i < len(entries)-1; i++ {
		hi, lo := entries[i], entries[i+1]
		switch {
		case hi.Member.LocalScore != lo.Member.LocalScore:
			assert.Greater(t, hi.Member.LocalScore, lo.Member.LocalScore)
		case hi.Member.StarCount != lo.Member.StarCount:
			assert.Greater(t, hi.Member.StarCount, lo.Member.StarCount)
		case hi.Member.LastStarTS != lo.Member.LastStarTS:
			assert.Less(t, hi.Member.LastStarTS, lo.Member.LastStarTS)
		default:
			assert.Less(t, hi.Member.ID, lo.Member.ID)
		}
	}
}

func TestOverall_TieOrderIsDeterministic(t *testing.T) {
	a := standings.Member{ID: "200", Name: "Twin1", LocalScore: 5, StarCount: 2, LastStarTS: 99}
	b := standings.Member{ID: "100", Name: "Twin2", LocalScore: 5, StarCount: 2, LastStarTS: 99}

	first, err := Overall(snapshotOf(a, b))
	require.NoError(t, err)
	second, err := Overall(snapshotOf(b, a))
	require.NoError(t, err)

	// Identical keys still rank in one deterministic order: ID ascending.
	assert.Equal(t, "100", first[0].Member.ID)
	assert.Equal(t, first[0].Member.ID, second[0].Member.ID)
	assert.Equal(t, 1, first[0].Rank)
	assert.Equal(t, 2, first[1].Rank)
}

func TestOverall_AnonymousPlacement(t *testing.T) {
	anon := standings.Member{ID: "123", Name: "", LocalScore: 50, StarCount: 2, LastStarTS: 100}
	bob := standings.Member{ID: "456", Name: "Bob", LocalScore: 80, StarCount: 2, LastStarTS: 50}

	snap := snapshotOf(anon, bob)
	entries, err := Overall(snap)
	require.NoError(t, err)

	assert.Equal(t, "Bob", entries[0].Member.Name)
	assert.Equal(t, "anon #123", entries[1].Member.Name)
}

func TestOverall_Empty(t *testing.T) {
	_, err := Overall(snapshotOf())
	assert.ErrorIs(t, err, shared.ErrNoData)
}

func TestLookupByName_CaseInsensitive(t *testing.T) {
	snap := snapshotOf(
		standings.Member{ID: "1", Name: "Alice", LocalScore: 10, StarCount: 3, LastStarTS: 100},
		standings.Member{ID: "2", Name: "Bob", LocalScore: 20, StarCount: 3, LastStarTS: 100},
	)

	entry, err := LookupByName(snap, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", entry.Member.Name)
	assert.Equal(t, 2, entry.Rank)

	entry, err = LookupByName(snap, "BOB")
	require.NoError(t, err)
	assert.Equal(t, 1, entry.Rank)
}

func TestLookupByName_NotFound(t *testing.T) {
	snap := snapshotOf(
		standings.Member{ID: "1", Name: "Alice", LocalScore: 10, StarCount: 3, LastStarTS: 100},
	)

	_, err := LookupByName(snap, "mallory")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestFirstToMaxStars(t *testing.T) {
	snap := snapshotOf(
		standings.Member{ID: "1", Name: "Slow", LocalScore: 90, StarCount: 10, LastStarTS: 500},
		standings.Member{ID: "2", Name: "Fast", LocalScore: 70, StarCount: 10, LastStarTS: 300},
		standings.Member{ID: "3", Name: "Behind", LocalScore: 99, StarCount: 4, LastStarTS: 100},
	)

	entry, err := FirstToMaxStars(snap)
	require.NoError(t, err)

	// Fast reached the shared maximum of 10 stars before Slow, regardless of
	// local score.
	assert.Equal(t, "Fast", entry.Member.Name)
	assert.Equal(t, 10, entry.Member.StarCount)
}

func TestFirstToMaxStars_Empty(t *testing.T) {
	_, err := FirstToMaxStars(snapshotOf())
	assert.ErrorIs(t, err, shared.ErrNoData)
}
