package standings

import "github.com/mauv0809/beachking/internal/tournament"

// Calculator turns recorded match results into ranked tables and advancement
// decisions.
type Calculator interface {
	// Compute builds the ranked standings for the listed players from their
	// completed matches. Players without completed matches keep all-zero rows.
	Compute(matches []tournament.Match, players []string) []Standing

	// SelectAdvancing picks the players who progress to the knockout stage:
	// the top advanceCount of every group plus wildcardCount best remaining
	// players across all groups.
	SelectAdvancing(groups []GroupStandings, advanceCount, wildcardCount int) ([]string, error)
}
