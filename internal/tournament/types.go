package tournament

import (
	"time"

	"github.com/google/uuid"
)

// MatchStatus represents the lifecycle status of a match
type MatchStatus string

const (
	StatusScheduled  MatchStatus = "scheduled"
	StatusInProgress MatchStatus = "in_progress"
	StatusCompleted  MatchStatus = "completed"
)

// Format represents a supported tournament format
type Format string

const (
	FormatKingOfTheBeach    Format = "king_of_the_beach"
	FormatRoundRobin        Format = "round_robin"
	FormatSingleElimination Format = "single_elimination"
)

// Match represents a single match between two teams. Teams hold player IDs:
// two per side for doubles, one per side for knockout/round-robin singles.
// An empty side marks a bye.
type Match struct {
	ID            string      `json:"id"`
	Team1         []string    `json:"team1"`
	Team2         []string    `json:"team2"`
	CourtNumber   int         `json:"court_number,omitempty"`
	ScheduledTime time.Time   `json:"scheduled_time,omitzero"`
	Status        MatchStatus `json:"status"`
	Team1Score    *int        `json:"team1_score,omitempty"`
	Team2Score    *int        `json:"team2_score,omitempty"`
}

// Group represents one pool of players in a group phase.
type Group struct {
	ID      string   `json:"id"`
	Players []string `json:"players"`
}

// NewMatch creates an unscheduled match between the given teams.
func NewMatch(team1, team2 []string) Match {
	return Match{
		ID:    uuid.New().String(),
		Team1: team1,
		Team2: team2,
	}
}

// IsBye reports whether the match has an empty side. Bye matches are never
// played or scored; the player on the non-empty side advances automatically.
func (m Match) IsBye() bool {
	return len(m.Team1) == 0 || len(m.Team2) == 0
}

// ByeWinner returns the players on the non-empty side of a bye match.
// It returns nil for a regular match.
func (m Match) ByeWinner() []string {
	if !m.IsBye() {
		return nil
	}
	if len(m.Team1) > 0 {
		return m.Team1
	}
	return m.Team2
}
