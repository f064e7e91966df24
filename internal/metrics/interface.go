package metrics

// Metrics defines the instrumentation recorded by the scheduling engine.
type Metrics interface {
	IncPlansGenerated()
	AddMatchesGenerated(count int)
	ObservePlanDuration(seconds float64)
	IncStandingsComputed()
}
