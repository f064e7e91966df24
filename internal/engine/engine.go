package engine

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mauv0809/beachking/internal/config"
	"github.com/mauv0809/beachking/internal/courts"
	"github.com/mauv0809/beachking/internal/generator"
	"github.com/mauv0809/beachking/internal/grouping"
	"github.com/mauv0809/beachking/internal/metrics"
	"github.com/mauv0809/beachking/internal/standings"
	"github.com/mauv0809/beachking/internal/tournament"
)

// Planner composes the generator, allocator and calculator into full phase
// plans. All dependencies are interfaces so consumers can swap in mocks.
type Planner struct {
	generator generator.Generator
	allocator courts.Allocator
	standings standings.Calculator
	metrics   metrics.Metrics
}

var _ Engine = (*Planner)(nil)

// New creates a new Planner.
func New(gen generator.Generator, alloc courts.Allocator, calc standings.Calculator, metrics metrics.Metrics) *Planner {
	return &Planner{
		generator: gen,
		allocator: alloc,
		standings: calc,
		metrics:   metrics,
	}
}

// PlanGroupPhase partitions the roster in seeding order, generates each
// group's matches and schedules the combined, group-ordered list onto courts.
func (p *Planner) PlanGroupPhase(roster []string, cfg config.Tournament, startTime time.Time) (*Plan, error) {
	started := time.Now()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tournament configuration: %w", err)
	}

	partitions, err := grouping.Partition(roster, cfg.GroupSize)
	if err != nil {
		return nil, fmt.Errorf("failed to partition roster: %w", err)
	}

	groups := make([]tournament.Group, 0, len(partitions))
	var matches []tournament.Match
	for i, players := range partitions {
		group := tournament.Group{
			ID:      fmt.Sprintf("group-%d", i+1),
			Players: players,
		}
		groups = append(groups, group)
		matches = append(matches, p.generator.GroupMatches(players)...)
	}

	p.warnIfOverCapacity(len(matches), cfg)

	scheduled, err := p.allocator.Schedule(matches, cfg.NumCourts, startTime, cfg.AvgMatchMinutes)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule group phase: %w", err)
	}

	p.observePlan(len(scheduled), started)
	log.Info("Planned group phase", "players", len(roster), "groups", len(groups), "matches", len(scheduled))
	return &Plan{
		Format:  tournament.FormatKingOfTheBeach,
		Groups:  groups,
		Matches: scheduled,
	}, nil
}

// PlanKnockoutRound generates one single-elimination round and schedules its
// real matches. Bye matches come back completed with no court: the seeded
// player advances without playing, and the caller is expected to carry that
// winner into the next round's player list.
func (p *Planner) PlanKnockoutRound(players []string, cfg config.Tournament, startTime time.Time) (*Plan, error) {
	started := time.Now()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tournament configuration: %w", err)
	}

	generated := p.generator.KnockoutRound(players)

	real := make([]tournament.Match, 0, len(generated))
	for _, m := range generated {
		if !m.IsBye() {
			real = append(real, m)
		}
	}

	scheduled, err := p.allocator.Schedule(real, cfg.NumCourts, startTime, cfg.AvgMatchMinutes)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule knockout round: %w", err)
	}

	// Reassemble in bracket order, completing the byes in place.
	next := 0
	round := make([]tournament.Match, 0, len(generated))
	for _, m := range generated {
		if m.IsBye() {
			m.Status = tournament.StatusCompleted
			round = append(round, m)
			continue
		}
		round = append(round, scheduled[next])
		next++
	}

	p.observePlan(len(round), started)
	log.Info("Planned knockout round", "players", len(players), "matches", len(round), "byes", len(round)-len(real))
	return &Plan{
		Format:  tournament.FormatSingleElimination,
		Matches: round,
	}, nil
}

// PlanRoundRobin generates and schedules every singles pairing of the roster.
func (p *Planner) PlanRoundRobin(roster []string, cfg config.Tournament, startTime time.Time) (*Plan, error) {
	started := time.Now()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tournament configuration: %w", err)
	}

	matches := p.generator.RoundRobin(roster)
	p.warnIfOverCapacity(len(matches), cfg)

	scheduled, err := p.allocator.Schedule(matches, cfg.NumCourts, startTime, cfg.AvgMatchMinutes)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule round robin: %w", err)
	}

	p.observePlan(len(scheduled), started)
	log.Info("Planned round robin", "players", len(roster), "matches", len(scheduled))
	return &Plan{
		Format:  tournament.FormatRoundRobin,
		Matches: scheduled,
	}, nil
}

// Standings ranks the listed players by their completed matches.
func (p *Planner) Standings(matches []tournament.Match, players []string) []standings.Standing {
	table := p.standings.Compute(matches, players)
	p.metrics.IncStandingsComputed()
	return table
}

// Advance selects the players progressing from a group phase to the knockout.
func (p *Planner) Advance(groups []standings.GroupStandings, cfg config.Tournament) ([]string, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tournament configuration: %w", err)
	}
	advancing, err := p.standings.SelectAdvancing(groups, cfg.AdvanceCount, cfg.WildcardCount)
	if err != nil {
		return nil, fmt.Errorf("failed to select advancing players: %w", err)
	}
	return advancing, nil
}

func (p *Planner) warnIfOverCapacity(matchCount int, cfg config.Tournament) {
	if cfg.NumDays < 1 || cfg.HoursPerDay < 1 {
		return
	}
	capacity := p.allocator.MaxMatches(cfg.NumCourts, cfg.NumDays, cfg.HoursPerDay, cfg.AvgMatchMinutes)
	if matchCount > capacity {
		log.Warn("Generated more matches than the courts can hold", "matches", matchCount, "capacity", capacity)
	}
}

func (p *Planner) observePlan(matchCount int, started time.Time) {
	p.metrics.IncPlansGenerated()
	p.metrics.AddMatchesGenerated(matchCount)
	p.metrics.ObservePlanDuration(time.Since(started).Seconds())
}
