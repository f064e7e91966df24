package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                sync.Mutex
	plansGenerated    int
	matchesGenerated  int
	planDurations     []float64
	standingsComputed int
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		planDurations: make([]float64, 0),
	}
}

func (m *Mock) IncPlansGenerated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.plansGenerated++
}

func (m *Mock) AddMatchesGenerated(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesGenerated += count
}

func (m *Mock) ObservePlanDuration(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.planDurations = append(m.planDurations, seconds)
}

func (m *Mock) IncStandingsComputed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.standingsComputed++
}

// PlansGenerated returns the number of times IncPlansGenerated was called.
func (m *Mock) PlansGenerated() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.plansGenerated
}

// MatchesGenerated returns the accumulated match count.
func (m *Mock) MatchesGenerated() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesGenerated
}

// PlanDurations returns the observed plan durations.
func (m *Mock) PlanDurations() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	durations := make([]float64, len(m.planDurations))
	copy(durations, m.planDurations)
	return durations
}

// StandingsComputed returns the number of times IncStandingsComputed was called.
func (m *Mock) StandingsComputed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.standingsComputed
}
