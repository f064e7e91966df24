package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// Service holds the Prometheus collectors for the engine.
type Service struct {
	PlansGenerated    prometheus.Counter
	MatchesGenerated  prometheus.Counter
	PlanDuration      prometheus.Histogram
	StandingsComputed prometheus.Counter
}

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		PlansGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "beachking_plans_generated_total",
			Help: "The total number of phase plans generated.",
		}),
		MatchesGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "beachking_matches_generated_total",
			Help: "The total number of matches generated across all plans.",
		}),
		PlanDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "beachking_plan_duration_seconds",
			Help:    "The duration of individual plan computations.",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		StandingsComputed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "beachking_standings_computed_total",
			Help: "The total number of standings tables computed.",
		}),
	}

	reg.MustRegister(
		s.PlansGenerated,
		s.MatchesGenerated,
		s.PlanDuration,
		s.StandingsComputed,
	)

	return s
}

func (s *Service) IncPlansGenerated() {
	s.PlansGenerated.Inc()
}

func (s *Service) AddMatchesGenerated(count int) {
	s.MatchesGenerated.Add(float64(count))
}

func (s *Service) ObservePlanDuration(seconds float64) {
	s.PlanDuration.Observe(seconds)
}

func (s *Service) IncStandingsComputed() {
	s.StandingsComputed.Inc()
}
