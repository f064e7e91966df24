package engine

import (
	"time"

	"github.com/mauv0809/beachking/internal/config"
	"github.com/mauv0809/beachking/internal/standings"
	"github.com/mauv0809/beachking/internal/tournament"
)

// Engine plans tournament phases and ranks their results. It holds no state
// between calls; every method is a pure computation over its arguments.
type Engine interface {
	// PlanGroupPhase partitions the roster into groups, generates every
	// King-of-the-Beach match and schedules them onto courts.
	PlanGroupPhase(roster []string, cfg config.Tournament, startTime time.Time) (*Plan, error)

	// PlanKnockoutRound generates and schedules one knockout round. Byes are
	// returned pre-completed; feed the round's winners back in for the next.
	PlanKnockoutRound(players []string, cfg config.Tournament, startTime time.Time) (*Plan, error)

	// PlanRoundRobin generates and schedules a singles round-robin.
	PlanRoundRobin(roster []string, cfg config.Tournament, startTime time.Time) (*Plan, error)

	// Standings ranks the listed players by their completed matches.
	Standings(matches []tournament.Match, players []string) []standings.Standing

	// Advance selects the players progressing from a group phase.
	Advance(groups []standings.GroupStandings, cfg config.Tournament) ([]string, error)
}
