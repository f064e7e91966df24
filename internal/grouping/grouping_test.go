package grouping_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauv0809/beachking/internal/config"
	"github.com/mauv0809/beachking/internal/grouping"
)

func TestPartition(t *testing.T) {
	tests := []struct {
		name      string
		players   []string
		groupSize int
		expected  [][]string
	}{
		{
			name:      "fewer players than group size stays one group",
			players:   []string{"anna", "ben", "carl"},
			groupSize: 5,
			expected:  [][]string{{"anna", "ben", "carl"}},
		},
		{
			name:      "exact multiple fills every group",
			players:   []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7", "p8"},
			groupSize: 4,
			expected:  [][]string{{"p1", "p2", "p3", "p4"}, {"p5", "p6", "p7", "p8"}},
		},
		{
			name:      "remainder goes to a smaller final group",
			players:   []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7"},
			groupSize: 3,
			expected:  [][]string{{"p1", "p2", "p3"}, {"p4", "p5", "p6"}, {"p7"}},
		},
		{
			name:      "single player roster",
			players:   []string{"solo"},
			groupSize: 4,
			expected:  [][]string{{"solo"}},
		},
		{
			name:      "group size one",
			players:   []string{"p1", "p2"},
			groupSize: 1,
			expected:  [][]string{{"p1"}, {"p2"}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			groups, err := grouping.Partition(tc.players, tc.groupSize)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, groups)
		})
	}
}

func TestPartitionRejectsInvalidGroupSize(t *testing.T) {
	_, err := grouping.Partition([]string{"p1", "p2"}, 0)
	assert.ErrorIs(t, err, config.ErrInvalidGroupSize)

	_, err = grouping.Partition([]string{"p1", "p2"}, -3)
	assert.ErrorIs(t, err, config.ErrInvalidGroupSize)
}

func TestPartitionPreservesOrderAndTotal(t *testing.T) {
	players := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"}

	groups, err := grouping.Partition(players, 4)
	require.NoError(t, err)

	var flattened []string
	for i, group := range groups {
		assert.NotEmpty(t, group)
		if i < len(groups)-1 {
			assert.Len(t, group, 4)
		}
		flattened = append(flattened, group...)
	}
	assert.Equal(t, players, flattened)
}

func TestPartitionDoesNotAliasInput(t *testing.T) {
	players := []string{"a", "b", "c", "d"}
	groups, err := grouping.Partition(players, 2)
	require.NoError(t, err)

	groups[0][0] = "mutated"
	assert.Equal(t, "a", players[0])
}
