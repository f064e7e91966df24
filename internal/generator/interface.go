package generator

import "github.com/mauv0809/beachking/internal/tournament"

// Generator produces the required matches for a phase of a tournament.
type Generator interface {
	// GroupMatches generates every King-of-the-Beach doubles match for one group.
	GroupMatches(group []string) []tournament.Match

	// KnockoutRound generates a single knockout round from the given players,
	// padding to the next power of two with byes. Winners of this round feed
	// the next call.
	KnockoutRound(players []string) []tournament.Match

	// RoundRobin generates every singles pairing among the given players.
	RoundRobin(players []string) []tournament.Match
}
