package stats

import (
	"testing"

	"github.com/aukilabs/yggdrasil/tpntree"
	"github.com/stretchr/testify/require"
)

type point []float64

func (p point) Coordinates() []float64 { return p }

func TestVarianceAlone(t *testing.T) {
	tree := tpntree.Root[float64](1.0, 2)
	require.Equal(t, 0.0, Variance(tree))
}

func TestVarianceWithChildren(t *testing.T) {
	tree := tpntree.Root[float64](1.0, 2)
	require.NoError(t, tree.Divide())

	for i, child := range tree.Children() {
		child.SetData(float64(i))
	}

	// population variance of 0,1,2,3
	require.Equal(t, 1.25, Variance(tree))
}

func TestVarianceMissingPayloadsCountAsZero(t *testing.T) {
	tree := tpntree.Root[float64](1.0, 1)
	require.NoError(t, tree.Divide())

	child, ok := tree.Child(0)
	require.True(t, ok)
	child.SetData(2)

	// values 2,0
	require.Equal(t, 1.0, Variance(tree))
}

func TestOccupancy(t *testing.T) {
	tree := tpntree.Root[[]point](1.0, 2)

	divisionCondition := func(n *tpntree.Tree[[]point]) bool {
		return n.Data() != nil
	}

	require.NoError(t, tpntree.InsertByCoordinates(tree, point{0.9, 0.9}, divisionCondition))
	require.NoError(t, tpntree.InsertByCoordinates(tree, point{-0.9, -0.9}, divisionCondition))

	levels := Occupancy(tree)
	require.Len(t, levels, 2)

	require.Equal(t, 0, levels[0].Level)
	require.Equal(t, 1, levels[0].NodeCount)
	require.Equal(t, 0, levels[0].LeafCount)
	require.Equal(t, 0, levels[0].ItemCount)

	require.Equal(t, 1, levels[1].Level)
	require.Equal(t, 4, levels[1].NodeCount)
	require.Equal(t, 4, levels[1].LeafCount)
	require.Equal(t, 2, levels[1].ItemCount)
}
