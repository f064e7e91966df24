package standings

import (
	"sort"

	"github.com/charmbracelet/log"

	"github.com/mauv0809/beachking/internal/config"
)

// wildcardCandidate tags a non-qualified player with the ranking keys used for
// cross-group comparison.
type wildcardCandidate struct {
	playerID          string
	totalPoints       int
	pointDifferential int
}

// SelectAdvancing computes each group's standings from its own matches, takes
// the top advanceCount players per group (or the whole group when it is
// smaller), and fills wildcardCount extra slots from the best remaining
// players across all groups, ranked by total points and then point
// differential. Cross-group point differential is an imperfect comparison
// when group sizes differ, but it is deterministic, which the guaranteed
// slots cannot give on their own.
//
// A player already holding a guaranteed slot is never added again as a
// wildcard.
func (s *service) SelectAdvancing(groups []GroupStandings, advanceCount, wildcardCount int) ([]string, error) {
	if advanceCount < 0 {
		return nil, config.ErrNegativeAdvanceCount
	}
	if wildcardCount < 0 {
		return nil, config.ErrNegativeWildcardCount
	}

	advancing := make([]string, 0, len(groups)*advanceCount+wildcardCount)
	var pool []wildcardCandidate

	for _, group := range groups {
		table := s.Compute(group.Matches, group.Players)

		qualified := advanceCount
		if qualified > len(table) {
			qualified = len(table)
		}
		for _, row := range table[:qualified] {
			advancing = append(advancing, row.PlayerID)
		}
		for _, row := range table[qualified:] {
			pool = append(pool, wildcardCandidate{
				playerID:          row.PlayerID,
				totalPoints:       row.TotalPoints,
				pointDifferential: row.PointDifferential,
			})
		}
	}

	sort.SliceStable(pool, func(i, j int) bool {
		if pool[i].totalPoints != pool[j].totalPoints {
			return pool[i].totalPoints > pool[j].totalPoints
		}
		return pool[i].pointDifferential > pool[j].pointDifferential
	})

	taken := make(map[string]bool, len(advancing))
	for _, playerID := range advancing {
		taken[playerID] = true
	}

	// Only the first wildcardCount candidates are considered; a candidate
	// already holding a guaranteed slot is skipped, not replaced.
	wildcards := 0
	for i := 0; i < wildcardCount && i < len(pool); i++ {
		candidate := pool[i]
		if taken[candidate.playerID] {
			continue
		}
		advancing = append(advancing, candidate.playerID)
		taken[candidate.playerID] = true
		wildcards++
	}

	log.Info("Selected advancing players", "groups", len(groups), "guaranteed", len(advancing)-wildcards, "wildcards", wildcards)
	return advancing, nil
}
