package generator

import (
	"sync"

	"github.com/mauv0809/beachking/internal/tournament"
)

// Mock is a mock implementation of the Generator interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	GroupMatchesFunc  func(group []string) []tournament.Match
	KnockoutRoundFunc func(players []string) []tournament.Match
	RoundRobinFunc    func(players []string) []tournament.Match

	// Call records
	GroupMatchesCalls  [][]string
	KnockoutRoundCalls [][]string
	RoundRobinCalls    [][]string
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GroupMatchesCalls = nil
	m.KnockoutRoundCalls = nil
	m.RoundRobinCalls = nil
}

func (m *Mock) GroupMatches(group []string) []tournament.Match {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GroupMatchesCalls = append(m.GroupMatchesCalls, group)
	if m.GroupMatchesFunc != nil {
		return m.GroupMatchesFunc(group)
	}
	return []tournament.Match{}
}

func (m *Mock) KnockoutRound(players []string) []tournament.Match {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.KnockoutRoundCalls = append(m.KnockoutRoundCalls, players)
	if m.KnockoutRoundFunc != nil {
		return m.KnockoutRoundFunc(players)
	}
	return []tournament.Match{}
}

func (m *Mock) RoundRobin(players []string) []tournament.Match {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RoundRobinCalls = append(m.RoundRobinCalls, players)
	if m.RoundRobinFunc != nil {
		return m.RoundRobinFunc(players)
	}
	return []tournament.Match{}
}
