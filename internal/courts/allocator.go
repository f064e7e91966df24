package courts

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/mauv0809/beachking/internal/config"
	"github.com/mauv0809/beachking/internal/tournament"
)

// service implements greedy list scheduling over a fixed set of courts.
type service struct{}

var _ Allocator = (*service)(nil)

// New creates a new court allocator.
func New() Allocator {
	return &service{}
}

// Schedule assigns each match to the court that frees up first. Court
// availability lives in a map local to this call, so concurrent Schedule calls
// never share state. Ties go to the lowest court number because courts are
// scanned in ascending order with a strict comparison.
//
// The input slice is not modified; scheduled copies are returned. Greedy list
// scheduling is not optimal for heterogeneous durations, but every match here
// takes avgMatchMinutes, so no court ever holds two overlapping matches and
// the makespan is ceil(len(matches)/numCourts)*avgMatchMinutes.
func (s *service) Schedule(matches []tournament.Match, numCourts int, startTime time.Time, avgMatchMinutes int) ([]tournament.Match, error) {
	if numCourts < 1 {
		return nil, config.ErrInvalidCourtCount
	}
	if avgMatchMinutes < 1 {
		return nil, config.ErrInvalidMatchDuration
	}

	nextFree := make(map[int]time.Time, numCourts)
	for court := 1; court <= numCourts; court++ {
		nextFree[court] = startTime
	}

	duration := time.Duration(avgMatchMinutes) * time.Minute
	scheduled := make([]tournament.Match, 0, len(matches))

	for _, match := range matches {
		court := 1
		earliest := nextFree[1]
		for candidate := 2; candidate <= numCourts; candidate++ {
			if nextFree[candidate].Before(earliest) {
				earliest = nextFree[candidate]
				court = candidate
			}
		}

		match.CourtNumber = court
		match.ScheduledTime = earliest
		match.Status = tournament.StatusScheduled
		nextFree[court] = earliest.Add(duration)

		scheduled = append(scheduled, match)
	}

	log.Debug("Scheduled matches onto courts", "matches", len(scheduled), "courts", numCourts, "start", startTime)
	return scheduled, nil
}

// MaxMatches returns how many fixed-duration matches fit into the total court
// minutes available across the tournament.
func (s *service) MaxMatches(numCourts, numDays, hoursPerDay, avgMatchMinutes int) int {
	if avgMatchMinutes < 1 {
		return 0
	}
	totalMinutes := numCourts * numDays * hoursPerDay * 60
	return totalMinutes / avgMatchMinutes
}
