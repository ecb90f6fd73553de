// Package timeutil provides time helpers for the Advent of Code calendar.
// Puzzles unlock at midnight US Eastern (UTC-5) each December day, so "the
// current contest day" is defined by that clock, not the server's.
// No external dependencies - uses only standard library.
package timeutil

import (
	"strconv"
	"time"
)

// UnlockTZ is the puzzle unlock timezone (UTC-5, no DST applied: AoC runs in
// December, outside US daylight saving).
var UnlockTZ = time.FixedZone("EST", -5*60*60)

// starTimeLayout renders an epoch timestamp as `HH:MM DD/MM`.
const starTimeLayout = "15:04 02/01"

// CurrentContestDay returns the day-of-month key of the most recently
// unlocked puzzle, as a bare string matching the feed's completion keys.
// At 04:59 UTC the previous day's puzzle is still the current one.
func CurrentContestDay(now time.Time) string {
	return strconv.Itoa(now.In(UnlockTZ).Day())
}

// FormatStarTime renders an epoch-second star timestamp in local time.
func FormatStarTime(ts int64) string {
	return time.Unix(ts, 0).Format(starTimeLayout)
}

// FormatStarTimeIn renders an epoch-second star timestamp in the given
// location. Useful for tests that must not depend on the host timezone.
func FormatStarTimeIn(ts int64, loc *time.Location) string {
	return time.Unix(ts, 0).In(loc).Format(starTimeLayout)
}
