package generator_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauv0809/beachking/internal/generator"
	"github.com/mauv0809/beachking/internal/tournament"
)

func teams(m tournament.Match) [2][]string {
	return [2][]string{m.Team1, m.Team2}
}

func TestGroupMatchesFourPlayers(t *testing.T) {
	gen := generator.New()

	matches := gen.GroupMatches([]string{"A", "B", "C", "D"})
	require.Len(t, matches, 3)

	assert.Equal(t, [2][]string{{"A", "B"}, {"C", "D"}}, teams(matches[0]))
	assert.Equal(t, [2][]string{{"A", "C"}, {"B", "D"}}, teams(matches[1]))
	assert.Equal(t, [2][]string{{"A", "D"}, {"B", "C"}}, teams(matches[2]))

	for _, m := range matches {
		assert.NotEmpty(t, m.ID)
		assert.False(t, m.IsBye())
	}
}

// binomial4 computes C(n,4).
func binomial4(n int) int {
	return n * (n - 1) * (n - 2) * (n - 3) / 24
}

func TestGroupMatchesCount(t *testing.T) {
	gen := generator.New()

	for n := 4; n <= 8; n++ {
		t.Run(fmt.Sprintf("%d players", n), func(t *testing.T) {
			group := make([]string, n)
			for i := range group {
				group[i] = fmt.Sprintf("p%d", i+1)
			}

			matches := gen.GroupMatches(group)
			assert.Len(t, matches, 3*binomial4(n))
		})
	}
}

func TestGroupMatchesTooFewPlayers(t *testing.T) {
	gen := generator.New()

	for n := 0; n < 4; n++ {
		group := make([]string, n)
		for i := range group {
			group[i] = fmt.Sprintf("p%d", i+1)
		}
		assert.Empty(t, gen.GroupMatches(group))
	}
}

func TestGroupMatchesEmitsEachSplitOnce(t *testing.T) {
	gen := generator.New()

	matches := gen.GroupMatches([]string{"A", "B", "C", "D", "E", "F"})
	require.Len(t, matches, 3*binomial4(6))

	// Team labels carry no meaning: a pairing and its mirror image are the
	// same match, so no split may appear twice with the teams swapped.
	seen := make(map[string]bool, len(matches))
	for _, m := range matches {
		require.Len(t, m.Team1, 2)
		require.Len(t, m.Team2, 2)

		split := sortedPair(m.Team1) + "|" + sortedPair(m.Team2)
		mirror := sortedPair(m.Team2) + "|" + sortedPair(m.Team1)
		assert.False(t, seen[split], "split %s emitted twice", split)
		assert.False(t, seen[mirror], "split %s emitted with teams swapped", split)
		seen[split] = true
	}
}

func sortedPair(team []string) string {
	if team[0] < team[1] {
		return team[0] + team[1]
	}
	return team[1] + team[0]
}

func TestGroupMatchesUniqueIDs(t *testing.T) {
	gen := generator.New()

	matches := gen.GroupMatches([]string{"A", "B", "C", "D", "E"})
	seen := make(map[string]bool, len(matches))
	for _, m := range matches {
		assert.False(t, seen[m.ID], "duplicate match ID %s", m.ID)
		seen[m.ID] = true
	}
}

func TestKnockoutRoundPowerOfTwo(t *testing.T) {
	gen := generator.New()

	matches := gen.KnockoutRound([]string{"p1", "p2", "p3", "p4"})
	require.Len(t, matches, 2)

	assert.Equal(t, [2][]string{{"p1"}, {"p4"}}, teams(matches[0]))
	assert.Equal(t, [2][]string{{"p2"}, {"p3"}}, teams(matches[1]))
	for _, m := range matches {
		assert.False(t, m.IsBye())
	}
}

func TestKnockoutRoundWithByes(t *testing.T) {
	gen := generator.New()

	// 5 players pad to a bracket of 8: four pairings, the three top seeds
	// drawing the padded bye slots.
	matches := gen.KnockoutRound([]string{"p1", "p2", "p3", "p4", "p5"})
	require.Len(t, matches, 4)

	byes := 0
	for _, m := range matches {
		if m.IsBye() {
			byes++
		}
	}
	assert.Equal(t, 3, byes)

	assert.Equal(t, []string{"p1"}, matches[0].ByeWinner())
	assert.Equal(t, []string{"p2"}, matches[1].ByeWinner())
	assert.Equal(t, []string{"p3"}, matches[2].ByeWinner())
	assert.Equal(t, [2][]string{{"p4"}, {"p5"}}, teams(matches[3]))
}

func TestKnockoutRoundSingleBye(t *testing.T) {
	gen := generator.New()

	// 7 players pad to 8: exactly one match has an empty side.
	matches := gen.KnockoutRound([]string{"p1", "p2", "p3", "p4", "p5", "p6", "p7"})
	require.Len(t, matches, 4)

	byes := 0
	for _, m := range matches {
		if m.IsBye() {
			byes++
		}
	}
	assert.Equal(t, 1, byes)
	assert.Equal(t, []string{"p1"}, matches[0].ByeWinner())
}

func TestKnockoutRoundDegenerate(t *testing.T) {
	gen := generator.New()

	assert.Empty(t, gen.KnockoutRound(nil))
	// A single player is already the champion, not an error.
	assert.Empty(t, gen.KnockoutRound([]string{"champ"}))

	matches := gen.KnockoutRound([]string{"p1", "p2"})
	require.Len(t, matches, 1)
	assert.Equal(t, [2][]string{{"p1"}, {"p2"}}, teams(matches[0]))
}

func TestRoundRobin(t *testing.T) {
	gen := generator.New()

	matches := gen.RoundRobin([]string{"p1", "p2", "p3", "p4"})
	require.Len(t, matches, 6)

	assert.Equal(t, [2][]string{{"p1"}, {"p2"}}, teams(matches[0]))
	assert.Equal(t, [2][]string{{"p1"}, {"p3"}}, teams(matches[1]))
	assert.Equal(t, [2][]string{{"p1"}, {"p4"}}, teams(matches[2]))
	assert.Equal(t, [2][]string{{"p2"}, {"p3"}}, teams(matches[3]))
	assert.Equal(t, [2][]string{{"p2"}, {"p4"}}, teams(matches[4]))
	assert.Equal(t, [2][]string{{"p3"}, {"p4"}}, teams(matches[5]))
}
