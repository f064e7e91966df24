package courts

import (
	"sync"
	"time"

	"github.com/mauv0809/beachking/internal/tournament"
)

// Mock is a mock implementation of the Allocator interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	ScheduleFunc   func(matches []tournament.Match, numCourts int, startTime time.Time, avgMatchMinutes int) ([]tournament.Match, error)
	MaxMatchesFunc func(numCourts, numDays, hoursPerDay, avgMatchMinutes int) int

	// Call records
	ScheduleCalls   []ScheduleCall
	MaxMatchesCalls int
}

// ScheduleCall records the arguments of one Schedule invocation.
type ScheduleCall struct {
	Matches         []tournament.Match
	NumCourts       int
	StartTime       time.Time
	AvgMatchMinutes int
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ScheduleCalls = nil
	m.MaxMatchesCalls = 0
}

func (m *Mock) Schedule(matches []tournament.Match, numCourts int, startTime time.Time, avgMatchMinutes int) ([]tournament.Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ScheduleCalls = append(m.ScheduleCalls, ScheduleCall{
		Matches:         matches,
		NumCourts:       numCourts,
		StartTime:       startTime,
		AvgMatchMinutes: avgMatchMinutes,
	})
	if m.ScheduleFunc != nil {
		return m.ScheduleFunc(matches, numCourts, startTime, avgMatchMinutes)
	}
	return matches, nil
}

func (m *Mock) MaxMatches(numCourts, numDays, hoursPerDay, avgMatchMinutes int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MaxMatchesCalls++
	if m.MaxMatchesFunc != nil {
		return m.MaxMatchesFunc(numCourts, numDays, hoursPerDay, avgMatchMinutes)
	}
	return 0
}
