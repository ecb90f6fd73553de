// Package presenter форматирует рейтинги для отправки в Discord.
// Presenters turn ranking entries into fixed-width text rows and split them
// into code blocks that fit Discord's message size limit. Pure transforms:
// no I/O, no shared state.
package presenter

import (
	"fmt"
	"strconv"

	"github.com/aoc-hub/aoc-discord-bot/internal/domain/ranking"
	"github.com/aoc-hub/aoc-discord-bot/pkg/timeutil"
)

// Template selects the row layout for a rendered table.
type Template int

const (
	// WithPoints renders `rank) name (points) stars* (HH:MM DD/MM)`.
	// Used by the overall and daily-score rankings.
	WithPoints Template = iota

	// WithoutPoints renders `rank) name stars* (HH:MM DD/MM)`.
	// Used by the chronological star listing, where the weight column would
	// just repeat the row order.
	WithoutPoints
)

// ══════════════════════════════════════════════════════════════════════════════
// TABLE FORMATTER
// ══════════════════════════════════════════════════════════════════════════════

// Render formats ranking entries as column-aligned rows, one string per row,
// each terminated by a newline. Column widths are computed once per call from
// the entry set itself and always expand to fit: names and numbers are never
// truncated. The rank column is right-aligned in a fixed 2-character field.
func Render(entries []ranking.Entry, tpl Template) []string {
	if len(entries) == 0 {
		return nil
	}

	namePad, pointsPad, starsPad := columnWidths(entries)

	rows := make([]string, len(entries))
	for i, e := range entries {
		starTime := timeutil.FormatStarTime(e.StarTime)
		switch tpl {
		case WithoutPoints:
			rows[i] = fmt.Sprintf("%2d) %-*s %*d* (%s)\n",
				e.Rank, namePad, e.Member.Name, starsPad, e.Stars, starTime)
		default:
			rows[i] = fmt.Sprintf("%2d) %-*s (%*d) %*d* (%s)\n",
				e.Rank, namePad, e.Member.Name, pointsPad, e.Points, starsPad, e.Stars, starTime)
		}
	}
	return rows
}

// RenderOne formats a single entry with widths fitted to that entry alone.
// Used by the rank and keen replies.
func RenderOne(e ranking.Entry, tpl Template) string {
	rows := Render([]ranking.Entry{e}, tpl)
	return rows[0]
}

// columnWidths computes the name, points and stars column widths for the set.
func columnWidths(entries []ranking.Entry) (namePad, pointsPad, starsPad int) {
	maxPoints, maxStars := 0, 0
	for _, e := range entries {
		if n := len(e.Member.Name); n > namePad {
			namePad = n
		}
		if e.Points > maxPoints {
			maxPoints = e.Points
		}
		if e.Stars > maxStars {
			maxStars = e.Stars
		}
	}
	pointsPad = len(strconv.Itoa(maxPoints))
	starsPad = len(strconv.Itoa(maxStars))
	return namePad, pointsPad, starsPad
}
