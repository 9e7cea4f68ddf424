package mesh

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEdgeNodesHaveNilNeighbors(t *testing.T) {
	m := New[int](3)

	corner := m.Neighbors(1, 1)
	require.Nil(t, corner.North)
	require.Nil(t, corner.West)
	require.NotNil(t, corner.South)
	require.NotNil(t, corner.East)

	opposite := m.Neighbors(3, 3)
	require.Nil(t, opposite.South)
	require.Nil(t, opposite.East)
	require.NotNil(t, opposite.North)
	require.NotNil(t, opposite.West)
}

func TestInteriorNodeHasAllFourNeighbors(t *testing.T) {
	m := New[int](3)
	nb := m.Neighbors(2, 2)
	require.NotNil(t, nb.North)
	require.NotNil(t, nb.South)
	require.NotNil(t, nb.East)
	require.NotNil(t, nb.West)
}

func TestSharedChannelEndpoints(t *testing.T) {
	m := New[int](2)

	n11 := m.Neighbors(1, 1)
	n21 := m.Neighbors(2, 1)
	require.Equal(t, n11.South, n21.North)

	n12 := m.Neighbors(1, 2)
	require.Equal(t, n11.East, n12.West)
}

func TestQ(t *testing.T) {
	require.Equal(t, 5, New[int](5).Q())
}
