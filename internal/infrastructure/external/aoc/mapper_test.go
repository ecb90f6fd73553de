package aoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aoc-hub/aoc-discord-bot/internal/domain/shared"
)

const sampleLeaderboard = `{
    "owner_id": 123456,
    "event": "2024",
    "members": {
        "123456": {
            "id": 123456,
            "name": "Ada Lovelace",
            "local_score": 50,
            "global_score": 0,
            "stars": 3,
            "last_star_ts": 1701500000,
            "completion_day_level": {
                "1": {
                    "1": {"get_star_ts": 1701410000, "star_index": 1},
                    "2": {"get_star_ts": 1701420000, "star_index": 2}
                },
                "2": {
                    "1": {"get_star_ts": 1701500000, "star_index": 3}
                }
            }
        },
        "789012": {
            "id": 789012,
            "name": null,
            "local_score": 12,
            "stars": 1,
            "last_star_ts": "1701450000",
            "completion_day_level": {
                "1": {
                    "1": {"get_star_ts": "1701450000"}
                }
            }
        }
    }
}`

func TestMapper_Parse(t *testing.T) {
	members, err := NewMapper().Parse([]byte(sampleLeaderboard))
	require.NoError(t, err)
	require.Len(t, members, 2)

	// Sorted by ID for a deterministic document order.
	ada := members[0]
	assert.Equal(t, "123456", ada.ID)
	assert.Equal(t, "Ada Lovelace", ada.Name)
	assert.Equal(t, 50, ada.LocalScore)
	assert.Equal(t, 3, ada.StarCount)
	assert.Equal(t, int64(1701500000), ada.LastStarTS)

	ts, ok := ada.StarTimestamp("1", "2")
	require.True(t, ok)
	assert.Equal(t, int64(1701420000), ts)

	_, ok = ada.StarTimestamp("2", "2")
	assert.False(t, ok, "day 2 star 2 was not earned")
	_, ok = ada.StarTimestamp("3", "1")
	assert.False(t, ok, "no data for day 3")
}

func TestMapper_Parse_AnonymousName(t *testing.T) {
	members, err := NewMapper().Parse([]byte(sampleLeaderboard))
	require.NoError(t, err)

	anon := members[1]
	assert.Equal(t, "anon #789012", anon.Name)
}

func TestMapper_Parse_StringNumerics(t *testing.T) {
	// The second member's last_star_ts and get_star_ts are decimal strings,
	// as old feed vintages serve them.
	members, err := NewMapper().Parse([]byte(sampleLeaderboard))
	require.NoError(t, err)

	anon := members[1]
	assert.Equal(t, int64(1701450000), anon.LastStarTS)
	ts, ok := anon.StarTimestamp("1", "1")
	require.True(t, ok)
	assert.Equal(t, int64(1701450000), ts)
}

func TestMapper_Parse_IgnoresUnknownFields(t *testing.T) {
	doc := `{
        "members": {
            "1": {"name": "X", "local_score": 1, "stars": 0, "last_star_ts": 0, "links": {"extra": true}}
        },
        "some_future_field": [1, 2, 3]
    }`

	members, err := NewMapper().Parse([]byte(doc))
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "X", members[0].Name)
}

func TestMapper_Parse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{"members": `},
		{"no members collection", `{"event": "2024"}`},
		{"missing local_score", `{"members": {"1": {"name": "X", "stars": 1, "last_star_ts": 5}}}`},
		{"missing stars", `{"members": {"1": {"name": "X", "local_score": 1, "last_star_ts": 5}}}`},
		{"missing last_star_ts", `{"members": {"1": {"name": "X", "local_score": 1, "stars": 1}}}`},
		{"non-numeric score", `{"members": {"1": {"name": "X", "local_score": "ten", "stars": 1, "last_star_ts": 5}}}`},
		{"star without timestamp", `{"members": {"1": {"name": "X", "local_score": 1, "stars": 1, "last_star_ts": 5,
            "completion_day_level": {"1": {"1": {"star_index": 1}}}}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMapper().Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, shared.ErrMalformedSource)
		})
	}
}
