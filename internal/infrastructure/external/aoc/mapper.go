package aoc

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/aoc-hub/aoc-discord-bot/internal/domain/shared"
	"github.com/aoc-hub/aoc-discord-bot/internal/domain/standings"
)

// ══════════════════════════════════════════════════════════════════════════════
// MAPPER
// Converts the raw AoC feed into domain Members. Pure: no side effects, no
// network. This is the only place the feed schema is interpreted.
// ══════════════════════════════════════════════════════════════════════════════

// Mapper converts AoC DTOs to domain entities.
type Mapper struct{}

// NewMapper creates a new Mapper.
func NewMapper() *Mapper {
	return &Mapper{}
}

// Parse parses a raw leaderboard document into the canonical member set.
// Members are returned sorted by ID so one document always yields one order.
// Fails with ErrMalformedSource when the document has no member collection or
// a required numeric field is absent or non-numeric.
func (m *Mapper) Parse(raw []byte) ([]standings.Member, error) {
	var doc LeaderboardDTO
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, shared.WrapError("aoc", "Parse", shared.ErrMalformedSource,
			"leaderboard document is not valid JSON", err)
	}
	if doc.Members == nil {
		return nil, shared.NewDomainError("aoc", "Parse", shared.ErrMalformedSource,
			"document has no members collection")
	}

	members := make([]standings.Member, 0, len(doc.Members))
	for id, dto := range doc.Members {
		member, err := m.memberFromDTO(id, dto)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	sort.Slice(members, func(i, j int) bool {
		return members[i].ID < members[j].ID
	})
	return members, nil
}

// memberFromDTO maps one member record. The map key is the authoritative ID;
// the record's own id field is redundant and may be absent in old feeds.
func (m *Mapper) memberFromDTO(id string, dto MemberDTO) (standings.Member, error) {
	if dto.LocalScore == nil {
		return standings.Member{}, m.missingField(id, "local_score")
	}
	if dto.Stars == nil {
		return standings.Member{}, m.missingField(id, "stars")
	}
	if dto.LastStarTS == nil {
		return standings.Member{}, m.missingField(id, "last_star_ts")
	}

	member := standings.Member{
		ID:         id,
		LocalScore: dto.LocalScore.Int(),
		StarCount:  dto.Stars.Int(),
		LastStarTS: dto.LastStarTS.Int64(),
	}
	if dto.Name != nil {
		member.Name = *dto.Name
	}
	member.Normalize()

	if len(dto.CompletionDayLevel) > 0 {
		member.CompletionByDay = make(map[string]standings.DayCompletion, len(dto.CompletionDayLevel))
		for day, levels := range dto.CompletionDayLevel {
			dc := make(standings.DayCompletion, len(levels))
			for star, rec := range levels {
				if rec.GetStarTS == nil {
					return standings.Member{}, shared.NewDomainError("aoc", "Parse", shared.ErrMalformedSource,
						fmt.Sprintf("member %s day %s star %s has no get_star_ts", id, day, star))
				}
				dc[star] = rec.GetStarTS.Int64()
			}
			member.CompletionByDay[day] = dc
		}
	}

	if err := member.Validate(); err != nil {
		return standings.Member{}, err
	}
	return member, nil
}

func (m *Mapper) missingField(id, field string) error {
	return shared.NewDomainError("aoc", "Parse", shared.ErrMalformedSource,
		fmt.Sprintf("member %s is missing required field %s", id, field))
}
