package tournament_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauv0809/beachking/internal/tournament"
)

func TestNewMatch(t *testing.T) {
	m := tournament.NewMatch([]string{"a", "b"}, []string{"c", "d"})

	assert.NotEmpty(t, m.ID)
	assert.Empty(t, m.Status)
	assert.Nil(t, m.Team1Score)
	assert.Nil(t, m.Team2Score)

	other := tournament.NewMatch([]string{"a", "b"}, []string{"c", "d"})
	assert.NotEqual(t, m.ID, other.ID)
}

func TestIsByeAndByeWinner(t *testing.T) {
	regular := tournament.NewMatch([]string{"a"}, []string{"b"})
	assert.False(t, regular.IsBye())
	assert.Nil(t, regular.ByeWinner())

	bye := tournament.NewMatch([]string{"a"}, []string{})
	assert.True(t, bye.IsBye())
	assert.Equal(t, []string{"a"}, bye.ByeWinner())

	reversed := tournament.NewMatch([]string{}, []string{"b"})
	assert.True(t, reversed.IsBye())
	assert.Equal(t, []string{"b"}, reversed.ByeWinner())
}

func TestMatchJSONOmitsUnsetSchedule(t *testing.T) {
	unscheduled := tournament.NewMatch([]string{"a"}, []string{"b"})
	data, err := json.Marshal(unscheduled)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "scheduled_time")
	assert.NotContains(t, string(data), "court_number")

	scheduled := unscheduled
	scheduled.CourtNumber = 1
	scheduled.ScheduledTime = time.Date(2025, 7, 5, 9, 0, 0, 0, time.UTC)
	data, err = json.Marshal(scheduled)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"scheduled_time":"2025-07-05T09:00:00Z"`)
	assert.Contains(t, string(data), `"court_number":1`)
}
