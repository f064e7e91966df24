package engine

import (
	"sync"
	"time"

	"github.com/mauv0809/beachking/internal/config"
	"github.com/mauv0809/beachking/internal/standings"
	"github.com/mauv0809/beachking/internal/tournament"
)

// Mock is a mock implementation of the Engine interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	PlanGroupPhaseFunc    func(roster []string, cfg config.Tournament, startTime time.Time) (*Plan, error)
	PlanKnockoutRoundFunc func(players []string, cfg config.Tournament, startTime time.Time) (*Plan, error)
	PlanRoundRobinFunc    func(roster []string, cfg config.Tournament, startTime time.Time) (*Plan, error)
	StandingsFunc         func(matches []tournament.Match, players []string) []standings.Standing
	AdvanceFunc           func(groups []standings.GroupStandings, cfg config.Tournament) ([]string, error)

	// Call records
	PlanGroupPhaseCalls    [][]string
	PlanKnockoutRoundCalls [][]string
	PlanRoundRobinCalls    [][]string
	StandingsCalls         int
	AdvanceCalls           int
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PlanGroupPhaseCalls = nil
	m.PlanKnockoutRoundCalls = nil
	m.PlanRoundRobinCalls = nil
	m.StandingsCalls = 0
	m.AdvanceCalls = 0
}

func (m *Mock) PlanGroupPhase(roster []string, cfg config.Tournament, startTime time.Time) (*Plan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PlanGroupPhaseCalls = append(m.PlanGroupPhaseCalls, roster)
	if m.PlanGroupPhaseFunc != nil {
		return m.PlanGroupPhaseFunc(roster, cfg, startTime)
	}
	return &Plan{Format: tournament.FormatKingOfTheBeach}, nil
}

func (m *Mock) PlanKnockoutRound(players []string, cfg config.Tournament, startTime time.Time) (*Plan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PlanKnockoutRoundCalls = append(m.PlanKnockoutRoundCalls, players)
	if m.PlanKnockoutRoundFunc != nil {
		return m.PlanKnockoutRoundFunc(players, cfg, startTime)
	}
	return &Plan{Format: tournament.FormatSingleElimination}, nil
}

func (m *Mock) PlanRoundRobin(roster []string, cfg config.Tournament, startTime time.Time) (*Plan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PlanRoundRobinCalls = append(m.PlanRoundRobinCalls, roster)
	if m.PlanRoundRobinFunc != nil {
		return m.PlanRoundRobinFunc(roster, cfg, startTime)
	}
	return &Plan{Format: tournament.FormatRoundRobin}, nil
}

func (m *Mock) Standings(matches []tournament.Match, players []string) []standings.Standing {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StandingsCalls++
	if m.StandingsFunc != nil {
		return m.StandingsFunc(matches, players)
	}
	return []standings.Standing{}
}

func (m *Mock) Advance(groups []standings.GroupStandings, cfg config.Tournament) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AdvanceCalls++
	if m.AdvanceFunc != nil {
		return m.AdvanceFunc(groups, cfg)
	}
	return []string{}, nil
}
