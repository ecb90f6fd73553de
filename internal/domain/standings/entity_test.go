package standings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aoc-hub/aoc-discord-bot/internal/domain/shared"
)

func TestMember_Normalize(t *testing.T) {
	anon := Member{ID: "789012"}
	anon.Normalize()
	assert.Equal(t, "anon #789012", anon.Name)

	named := Member{ID: "1", Name: "Ada"}
	named.Normalize()
	assert.Equal(t, "Ada", named.Name, "existing names are left alone")
}

func TestMember_Validate(t *testing.T) {
	m := Member{ID: "1", Name: "Ada"}
	assert.NoError(t, m.Validate())

	noID := Member{Name: "Ada"}
	assert.ErrorIs(t, noID.Validate(), shared.ErrMalformedSource)

	noName := Member{ID: "1"}
	assert.ErrorIs(t, noName.Validate(), shared.ErrMalformedSource)
}

func TestMember_StarTimestamp(t *testing.T) {
	m := Member{
		ID:   "1",
		Name: "Ada",
		CompletionByDay: map[string]DayCompletion{
			"5": {StarOne: 100, StarTwo: 250},
			"6": {StarOne: 300},
		},
	}

	ts, ok := m.StarTimestamp("5", StarTwo)
	assert.True(t, ok)
	assert.Equal(t, int64(250), ts)

	_, ok = m.StarTimestamp("6", StarTwo)
	assert.False(t, ok, "second star not earned")

	_, ok = m.StarTimestamp("9", StarOne)
	assert.False(t, ok, "day not attempted")

	assert.True(t, m.HasDay("6"))
	assert.False(t, m.HasDay("9"))
}

func TestSnapshot_Age(t *testing.T) {
	fetched := time.Unix(1700000000, 0)
	snap := NewSnapshot(nil, fetched)

	assert.True(t, snap.IsEmpty())
	assert.Zero(t, snap.Len())
	assert.Equal(t, 10*time.Minute, snap.Age(fetched.Add(10*time.Minute)))
}
