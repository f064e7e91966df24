package generator

import (
	"github.com/charmbracelet/log"

	"github.com/mauv0809/beachking/internal/tournament"
)

// service implements match generation for all supported formats.
type service struct{}

var _ Generator = (*service)(nil)

// New creates a new match generator.
func New() Generator {
	return &service{}
}

// GroupMatches generates every way to split four group members into two
// doubles teams. Every unordered pair (in roster order) plays as team1 against
// every unordered pair drawn from the remaining players as team2. This
// intentionally reuses the same four players across different team splits:
// partners rotate every match, which is the point of the King-of-the-Beach
// format. Team labels carry no meaning, so a split is emitted only once, with
// the earliest-seeded player of the four on team1; a group of n players yields
// exactly 3*C(n,4) matches.
//
// Groups of fewer than four players cannot form two teams and play no matches.
func (s *service) GroupMatches(group []string) []tournament.Match {
	if len(group) < 4 {
		log.Warn("Group too small for doubles, no matches generated", "players", len(group))
		return []tournament.Match{}
	}

	var matches []tournament.Match
	for i := 0; i < len(group); i++ {
		for j := i + 1; j < len(group); j++ {
			// Roster indices of the players not on the first team, in order.
			remaining := make([]int, 0, len(group)-2)
			for r := 0; r < len(group); r++ {
				if r != i && r != j {
					remaining = append(remaining, r)
				}
			}

			for k := 0; k < len(remaining); k++ {
				if remaining[k] < i {
					// This split already came out with the teams swapped,
					// back when the current team2 was team1.
					continue
				}
				for l := k + 1; l < len(remaining); l++ {
					matches = append(matches, tournament.NewMatch(
						[]string{group[i], group[j]},
						[]string{group[remaining[k]], group[remaining[l]]},
					))
				}
			}
		}
	}

	log.Debug("Generated group matches", "players", len(group), "matches", len(matches))
	return matches
}

// KnockoutRound pairs the players of a single elimination round, top seed
// against bottom seed. The list is padded with byes to the next power of two,
// so a pairing against a bye slot produces a match with an empty side. Bye
// matches are never played; the seeded player advances automatically.
//
// Zero or one players yield no matches: an empty bracket has nothing to pair
// and a single player is already the champion.
func (s *service) KnockoutRound(players []string) []tournament.Match {
	if len(players) < 2 {
		return []tournament.Match{}
	}

	size := nextPowerOfTwo(len(players))

	matches := make([]tournament.Match, 0, size/2)
	for i := 0; i < size/2; i++ {
		team1 := seedTeam(players, i)
		team2 := seedTeam(players, size-1-i)
		matches = append(matches, tournament.NewMatch(team1, team2))
	}

	log.Debug("Generated knockout round", "players", len(players), "bracketSize", size, "matches", len(matches))
	return matches
}

// RoundRobin generates every unordered singles pairing among the players.
func (s *service) RoundRobin(players []string) []tournament.Match {
	var matches []tournament.Match
	for i := 0; i < len(players); i++ {
		for j := i + 1; j < len(players); j++ {
			matches = append(matches, tournament.NewMatch(
				[]string{players[i]},
				[]string{players[j]},
			))
		}
	}

	log.Debug("Generated round robin", "players", len(players), "matches", len(matches))
	return matches
}

// seedTeam returns the singles team at the given seed index, or an empty team
// when the index falls in the padded bye region.
func seedTeam(players []string, index int) []string {
	if index >= len(players) {
		return []string{}
	}
	return []string{players[index]}
}

func nextPowerOfTwo(n int) int {
	size := 1
	for size < n {
		size *= 2
	}
	return size
}
