package ranking

import (
	"sort"

	"github.com/aoc-hub/aoc-discord-bot/internal/domain/shared"
	"github.com/aoc-hub/aoc-discord-bot/internal/domain/standings"
)

// starRecord is one (member, timestamp) pair for a single star on one day.
type starRecord struct {
	member standings.Member
	ts     int64
	star   int
}

// DailyScore ranks the members who completed at least one star on the given
// contest day. Points are awarded per star pass: the members holding that
// star are sorted by its timestamp ascending and the i-th earliest receives
// count-i points, where count is the number of members with any completion
// for the day. A member's two star scores sum; members with only the first
// star contribute zero second-star points. The row timestamp is the highest
// star the member completed. Final order is points descending, timestamp
// ascending, member ID ascending.
//
// Day keys are bare day-of-month strings ("1".."25"). This is only
// unambiguous within a single contest's December; the matching is not
// month-qualified.
//
// Returns ErrNoData when the standings are empty or no member has any
// completion for the day.
func DailyScore(snap *standings.Snapshot, day string) ([]Entry, error) {
	if snap.IsEmpty() {
		return nil, shared.NewDomainError("ranking", "DailyScore", shared.ErrNoData, "standings are empty")
	}

	first := starsForDay(snap, day, standings.StarOne)
	second := starsForDay(snap, day, standings.StarTwo)

	count := 0
	for _, m := range snap.Members {
		if m.HasDay(day) {
			count++
		}
	}
	if len(first) == 0 {
		return nil, shared.NewDomainError("ranking", "DailyScore", shared.ErrNoData,
			"no completions for day "+day)
	}

	type row struct {
		points int
		stars  int
		ts     int64
	}
	rows := make(map[string]*row, len(first))
	order := make([]standings.Member, 0, len(first))

	for i, rec := range first {
		rows[rec.member.ID] = &row{
			points: count - i,
			stars:  1,
			ts:     rec.ts,
		}
		order = append(order, rec.member)
	}
	for i, rec := range second {
		r, ok := rows[rec.member.ID]
		if !ok {
			// A second star without a first cannot happen in a well-formed
			// feed; skip rather than invent a row with no first-star points.
			continue
		}
		r.points += count - i
		r.stars = 2
		r.ts = rec.ts
	}

	entries := make([]Entry, 0, len(order))
	for _, m := range order {
		r := rows[m.ID]
		entries = append(entries, Entry{
			Member:   m,
			Points:   r.points,
			Stars:    r.stars,
			StarTime: r.ts,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.StarTime != b.StarTime {
			return a.StarTime < b.StarTime
		}
		return a.Member.ID < b.Member.ID
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

// DailyChronological lists every star earned on the given day as its own row,
// ordered by completion time ascending, so a member can appear up to twice.
// Each event carries an informational weight of totalEvents-i (the same
// earlier-is-more scheme as DailyScore, over events instead of members); the
// display order stays purely chronological, answering "who got each star
// first" rather than "who scored most".
//
// Returns ErrNoData when the standings are empty or the day has no stars.
func DailyChronological(snap *standings.Snapshot, day string) ([]Entry, error) {
	if snap.IsEmpty() {
		return nil, shared.NewDomainError("ranking", "DailyChronological", shared.ErrNoData, "standings are empty")
	}

	events := starsForDay(snap, day, standings.StarOne)
	events = append(events, starsForDay(snap, day, standings.StarTwo)...)
	if len(events) == 0 {
		return nil, shared.NewDomainError("ranking", "DailyChronological", shared.ErrNoData,
			"no stars for day "+day)
	}

	sort.Slice(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if a.ts != b.ts {
			return a.ts < b.ts
		}
		if a.member.ID != b.member.ID {
			return a.member.ID < b.member.ID
		}
		return a.star < b.star
	})

	total := len(events)
	entries := make([]Entry, total)
	for i, rec := range events {
		entries[i] = Entry{
			Rank:     i + 1,
			Member:   rec.member,
			Points:   total - i,
			Stars:    rec.star,
			StarTime: rec.ts,
		}
	}
	return entries, nil
}

// starsForDay collects the members that earned the given star on the given
// day, sorted by that star's timestamp ascending (member ID breaks exact
// timestamp ties deterministically).
func starsForDay(snap *standings.Snapshot, day, star string) []starRecord {
	var recs []starRecord
	for _, m := range snap.Members {
		if ts, ok := m.StarTimestamp(day, star); ok {
			idx := 1
			if star == standings.StarTwo {
				idx = 2
			}
			recs = append(recs, starRecord{member: m, ts: ts, star: idx})
		}
	}
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].ts != recs[j].ts {
			return recs[i].ts < recs[j].ts
		}
		return recs[i].member.ID < recs[j].member.ID
	})
	return recs
}
