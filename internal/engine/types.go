package engine

import "github.com/mauv0809/beachking/internal/tournament"

// Plan is the scheduled output of one tournament phase: the groups that were
// formed (empty for knockout and round-robin phases) and every generated
// match with court and start time assigned. Bye matches carry no court and
// are already completed.
type Plan struct {
	Format  tournament.Format  `json:"format"`
	Groups  []tournament.Group `json:"groups,omitempty"`
	Matches []tournament.Match `json:"matches"`
}

// RealMatches returns the matches that actually get played.
func (p *Plan) RealMatches() []tournament.Match {
	real := make([]tournament.Match, 0, len(p.Matches))
	for _, m := range p.Matches {
		if !m.IsBye() {
			real = append(real, m)
		}
	}
	return real
}
