package grouping

import (
	"github.com/charmbracelet/log"

	"github.com/mauv0809/beachking/internal/config"
)

// Partition splits players into groups of up to groupSize, consuming the roster
// strictly in input order. The caller controls seeding order; no shuffling
// happens here, so the result is deterministic for a fixed input.
//
// A roster smaller than groupSize becomes a single group rather than being
// split below a viable size. The final group takes the remainder and may be
// smaller than groupSize, but is never empty.
func Partition(players []string, groupSize int) ([][]string, error) {
	if groupSize < 1 {
		return nil, config.ErrInvalidGroupSize
	}

	if len(players) < groupSize {
		log.Debug("Roster smaller than group size, keeping a single group", "players", len(players), "groupSize", groupSize)
		group := make([]string, len(players))
		copy(group, players)
		return [][]string{group}, nil
	}

	groups := make([][]string, 0, (len(players)+groupSize-1)/groupSize)
	for start := 0; start < len(players); start += groupSize {
		end := start + groupSize
		if end > len(players) {
			end = len(players)
		}
		group := make([]string, end-start)
		copy(group, players[start:end])
		groups = append(groups, group)
	}

	log.Debug("Partitioned roster", "players", len(players), "groups", len(groups), "groupSize", groupSize)
	return groups, nil
}
