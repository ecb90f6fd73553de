package presenter

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aoc-hub/aoc-discord-bot/internal/domain/ranking"
	"github.com/aoc-hub/aoc-discord-bot/internal/domain/standings"
	"github.com/aoc-hub/aoc-discord-bot/pkg/timeutil"
)

func entry(rank int, name string, points, stars int, starTS int64) ranking.Entry {
	return ranking.Entry{
		Rank:     rank,
		Member:   standings.Member{ID: name, Name: name},
		Points:   points,
		Stars:    stars,
		StarTime: starTS,
	}
}

func TestRender_WithPoints(t *testing.T) {
	entries := []ranking.Entry{
		entry(1, "Ada Lovelace", 120, 14, 1700000000),
		entry(2, "Bob", 9, 3, 1700003600),
	}

	rows := Render(entries, WithPoints)
	require.Len(t, rows, 2)

	wantFirst := fmt.Sprintf(" 1) Ada Lovelace (120) 14* (%s)\n",
		timeutil.FormatStarTime(1700000000))
	wantSecond := fmt.Sprintf(" 2) Bob          (  9)  3* (%s)\n",
		timeutil.FormatStarTime(1700003600))
	assert.Equal(t, wantFirst, rows[0])
	assert.Equal(t, wantSecond, rows[1])
}

func TestRender_WithoutPoints(t *testing.T) {
	rows := Render([]ranking.Entry{entry(3, "Carol", 50, 7, 1700000000)}, WithoutPoints)
	require.Len(t, rows, 1)

	want := fmt.Sprintf(" 3) Carol 7* (%s)\n", timeutil.FormatStarTime(1700000000))
	assert.Equal(t, want, rows[0])
	assert.NotContains(t, rows[0], "(50)", "points column is omitted")
}

func TestRender_ColumnsAlign(t *testing.T) {
	entries := []ranking.Entry{
		entry(1, "A", 1000, 50, 1700000000),
		entry(2, "Somebody Longer", 5, 1, 1700000000),
	}

	rows := Render(entries, WithPoints)
	require.Len(t, rows, 2)

	// Fixed-width tables: every row in a set shares one length.
	assert.Equal(t, len(rows[0]), len(rows[1]))
	for _, row := range rows {
		assert.True(t, strings.HasSuffix(row, "\n"))
	}
}

func TestRender_Empty(t *testing.T) {
	assert.Nil(t, Render(nil, WithPoints))
}

func TestRenderOne_FitsWidthsToEntry(t *testing.T) {
	row := RenderOne(entry(12, "Dee", 345, 21, 1700000000), WithPoints)

	want := fmt.Sprintf("12) Dee (345) 21* (%s)\n", timeutil.FormatStarTime(1700000000))
	assert.Equal(t, want, row)
}
