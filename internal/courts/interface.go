package courts

import (
	"time"

	"github.com/mauv0809/beachking/internal/tournament"
)

// Allocator assigns generated matches to courts and start times.
type Allocator interface {
	// Schedule assigns each match, in input order, to the earliest available
	// court starting from startTime, with every match taking avgMatchMinutes.
	Schedule(matches []tournament.Match, numCourts int, startTime time.Time, avgMatchMinutes int) ([]tournament.Match, error)

	// MaxMatches returns how many matches fit in the tournament's court time.
	MaxMatches(numCourts, numDays, hoursPerDay, avgMatchMinutes int) int
}
