package standings

import "github.com/mauv0809/beachking/internal/tournament"

// Standing represents one player's row in a ranking table. Doubles partners
// are charged identically: every member of a team gets the full team score.
type Standing struct {
	PlayerID          string `json:"player_id"`
	Wins              int    `json:"wins"`
	Draws             int    `json:"draws"`
	Losses            int    `json:"losses"`
	PointsFor         int    `json:"points_for"`
	PointsAgainst     int    `json:"points_against"`
	PointDifferential int    `json:"point_differential"`
	TotalPoints       int    `json:"total_points"`
}

// GroupStandings carries one group's players together with the matches they
// played, so standings are computed per group from that group's results only.
type GroupStandings struct {
	GroupID string             `json:"group_id"`
	Players []string           `json:"players"`
	Matches []tournament.Match `json:"matches"`
}

// Points awarded per result.
const (
	pointsPerWin  = 3
	pointsPerDraw = 1
)
