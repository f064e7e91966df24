package standings

import (
	"sync"

	"github.com/mauv0809/beachking/internal/tournament"
)

// Mock is a mock implementation of the Calculator interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	ComputeFunc         func(matches []tournament.Match, players []string) []Standing
	SelectAdvancingFunc func(groups []GroupStandings, advanceCount, wildcardCount int) ([]string, error)

	// Call records
	ComputeCalls         []ComputeCall
	SelectAdvancingCalls []SelectAdvancingCall
}

// ComputeCall records the arguments of one Compute invocation.
type ComputeCall struct {
	Matches []tournament.Match
	Players []string
}

// SelectAdvancingCall records the arguments of one SelectAdvancing invocation.
type SelectAdvancingCall struct {
	Groups        []GroupStandings
	AdvanceCount  int
	WildcardCount int
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ComputeCalls = nil
	m.SelectAdvancingCalls = nil
}

func (m *Mock) Compute(matches []tournament.Match, players []string) []Standing {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ComputeCalls = append(m.ComputeCalls, ComputeCall{Matches: matches, Players: players})
	if m.ComputeFunc != nil {
		return m.ComputeFunc(matches, players)
	}
	return []Standing{}
}

func (m *Mock) SelectAdvancing(groups []GroupStandings, advanceCount, wildcardCount int) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SelectAdvancingCalls = append(m.SelectAdvancingCalls, SelectAdvancingCall{
		Groups:        groups,
		AdvanceCount:  advanceCount,
		WildcardCount: wildcardCount,
	})
	if m.SelectAdvancingFunc != nil {
		return m.SelectAdvancingFunc(groups, advanceCount, wildcardCount)
	}
	return []string{}, nil
}
