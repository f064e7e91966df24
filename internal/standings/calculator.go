package standings

import (
	"sort"

	"github.com/charmbracelet/log"

	"github.com/mauv0809/beachking/internal/tournament"
)

// service implements standings calculation and advancement selection.
type service struct{}

var _ Calculator = (*service)(nil)

// New creates a new standings calculator.
func New() Calculator {
	return &service{}
}

// Compute aggregates completed match results into one ranked row per player.
// Every listed player starts from a zero row, so players without results stay
// in the table at the bottom. A completed match with a missing score counts
// that side as 0 rather than being rejected; the external layer decides
// whether such results are acceptable before recording them.
//
// Ranking is total points (3 win / 1 draw / 0 loss) descending, then point
// differential, then points for. The sort is stable, so fully tied players
// keep their input order.
func (s *service) Compute(matches []tournament.Match, players []string) []Standing {
	rows := make(map[string]*Standing, len(players))
	order := make([]string, 0, len(players))
	for _, playerID := range players {
		if _, ok := rows[playerID]; ok {
			continue
		}
		rows[playerID] = &Standing{PlayerID: playerID}
		order = append(order, playerID)
	}

	completed := 0
	for _, match := range matches {
		if match.Status != tournament.StatusCompleted || match.IsBye() {
			continue
		}
		completed++

		team1Score := scoreOrZero(match.Team1Score)
		team2Score := scoreOrZero(match.Team2Score)

		for _, playerID := range match.Team1 {
			accumulate(rows, playerID, &order, team1Score, team2Score)
		}
		for _, playerID := range match.Team2 {
			accumulate(rows, playerID, &order, team2Score, team1Score)
		}
	}

	table := make([]Standing, 0, len(order))
	for _, playerID := range order {
		row := rows[playerID]
		row.PointDifferential = row.PointsFor - row.PointsAgainst
		table = append(table, *row)
	}

	sort.SliceStable(table, func(i, j int) bool {
		if table[i].TotalPoints != table[j].TotalPoints {
			return table[i].TotalPoints > table[j].TotalPoints
		}
		if table[i].PointDifferential != table[j].PointDifferential {
			return table[i].PointDifferential > table[j].PointDifferential
		}
		return table[i].PointsFor > table[j].PointsFor
	})

	log.Debug("Computed standings", "players", len(table), "completedMatches", completed)
	return table
}

// accumulate charges one completed result to a player's row, creating the row
// for players that appear in a match but not in the roster list.
func accumulate(rows map[string]*Standing, playerID string, order *[]string, scored, conceded int) {
	row, ok := rows[playerID]
	if !ok {
		row = &Standing{PlayerID: playerID}
		rows[playerID] = row
		*order = append(*order, playerID)
	}

	row.PointsFor += scored
	row.PointsAgainst += conceded

	switch {
	case scored > conceded:
		row.Wins++
		row.TotalPoints += pointsPerWin
	case scored == conceded:
		row.Draws++
		row.TotalPoints += pointsPerDraw
	default:
		row.Losses++
	}
}

func scoreOrZero(score *int) int {
	if score == nil {
		return 0
	}
	return *score
}
