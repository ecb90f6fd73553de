package standings

import (
	"time"
)

// Snapshot represents the whole leaderboard at one fetch time.
// A snapshot is produced atomically by one refresh and is never mutated
// afterwards; the next refresh supersedes it wholesale, so concurrent readers
// always see a consistent view.
type Snapshot struct {
	// Members is the ordered list of contestants as parsed from the feed.
	Members []Member

	// FetchedAt is when this snapshot was fetched from the source.
	FetchedAt time.Time
}

// NewSnapshot creates a snapshot from a parsed member list.
func NewSnapshot(members []Member, fetchedAt time.Time) *Snapshot {
	return &Snapshot{
		Members:   members,
		FetchedAt: fetchedAt,
	}
}

// Len returns the number of members in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.Members)
}

// IsEmpty reports whether the snapshot holds no members.
func (s *Snapshot) IsEmpty() bool {
	return len(s.Members) == 0
}

// Age returns how long ago the snapshot was fetched.
func (s *Snapshot) Age(now time.Time) time.Duration {
	return now.Sub(s.FetchedAt)
}
