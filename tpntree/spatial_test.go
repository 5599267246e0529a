package tpntree

import (
	"testing"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/stretchr/testify/require"
)

type point []float64

func (p point) Coordinates() []float64 { return p }

func TestSpans(t *testing.T) {
	root := Root[[]point](1.0, 3)

	require.True(t, root.Spans([]float64{0.5, 0.5, 0.5}))
	require.True(t, root.Spans([]float64{1, 1, 1}))
	require.True(t, root.Spans([]float64{-1, -1, -1}))
	require.False(t, root.Spans([]float64{1.5, 0.5, 0.5}))
	require.False(t, root.Spans([]float64{0.5, -1.0001, 0.5}))
	require.False(t, root.Spans([]float64{0.5, 0.5}))
}

func TestInsertIntoRoot(t *testing.T) {
	root := Root[[]point](1.0, 3)
	data := point{1, 1, 1}

	require.NoError(t, InsertByCoordinates(root, data, never))
	require.True(t, root.IsLeaf())

	node, err := FindByCoordinates(root, point{0, 0, 0})
	require.NoError(t, err)
	require.NotNil(t, node.Data())
	require.Contains(t, *node.Data(), data)
}

func TestInsertOutsideRoot(t *testing.T) {
	root := Root[[]point](1.0, 3)

	err := InsertByCoordinates(root, point{1, 1.5, 1}, never)
	require.Error(t, err)
	require.Equal(t, ErrTypeDoesNotSpan, errors.Type(err))

	// the failed insert left the tree untouched:
	require.True(t, root.IsLeaf())
	require.Nil(t, root.Data())
}

func TestInsertDimensionMismatch(t *testing.T) {
	root := Root[[]point](1.0, 3)

	err := InsertByCoordinates(root, point{1, 1}, never)
	require.Error(t, err)
	require.Equal(t, ErrTypeDimensionMismatch, errors.Type(err))
	require.Nil(t, root.Data())
}

func TestInsertAndSplit(t *testing.T) {
	root := Root[[]point](1.0, 3)

	divisionCondition := func(tree *Tree[[]point]) bool {
		return tree.Data() != nil
	}

	dataOne := point{1, 1, 1}
	dataTwo := point{-1, -1, -1}

	require.NoError(t, InsertByCoordinates(root, dataOne, divisionCondition))
	require.NoError(t, InsertByCoordinates(root, dataTwo, divisionCondition))

	require.Equal(t, 8, root.ChildCount())
	require.Nil(t, root.Data())

	node, err := FindByCoordinates(root, point{0.5, 0.5, 0.5})
	require.NoError(t, err)
	require.Equal(t, []float64{0.5, 0.5, 0.5}, node.Coordinates())
	require.Contains(t, *node.Data(), dataOne)

	node, err = FindByCoordinates(root, point{-0.5, -0.5, -0.5})
	require.NoError(t, err)
	require.Equal(t, []float64{-0.5, -0.5, -0.5}, node.Coordinates())
	require.Contains(t, *node.Data(), dataTwo)
}

func TestInsertBoundaryTieBreak(t *testing.T) {
	root := Root[[]point](1.0, 2)
	require.NoError(t, root.Divide())

	// the origin lies on the shared faces of all four children, the first
	// spanning child in enumeration order wins:
	origin := point{0, 0}
	require.NoError(t, InsertByCoordinates(root, origin, never))

	child, ok := root.Child(0)
	require.True(t, ok)
	require.NotNil(t, child.Data())
	require.Contains(t, *child.Data(), origin)

	node, err := FindByCoordinates(root, origin)
	require.NoError(t, err)
	require.Equal(t, child, node)
}

func TestFindOutsideRoot(t *testing.T) {
	root := Root[[]point](1.0, 2)

	_, err := FindByCoordinates(root, point{2, 0})
	require.Error(t, err)
	require.Equal(t, ErrTypeDoesNotSpan, errors.Type(err))
}

func TestFindByPoint(t *testing.T) {
	root := Root[float64](1.0, 2)
	require.NoError(t, root.Divide())

	node, err := FindByPoint(root, []float64{-0.75, 0.75})
	require.NoError(t, err)
	require.Equal(t, []float64{-0.5, 0.5}, node.Coordinates())

	_, err = FindByPoint(root, []float64{0.5})
	require.Error(t, err)
	require.Equal(t, ErrTypeDimensionMismatch, errors.Type(err))
}

func TestInsertDeep(t *testing.T) {
	root := Root[[]point](2.0, 2)

	// split until a leaf holds at most one item:
	divisionCondition := func(tree *Tree[[]point]) bool {
		return tree.Data() != nil && len(*tree.Data()) >= 1
	}

	inserted := []point{
		{1.5, 1.5},
		{1.4, 1.4},
		{1.3, 1.3},
		{-1.5, 0.5},
	}
	for _, p := range inserted {
		require.NoError(t, InsertByCoordinates(root, p, divisionCondition))
	}

	for _, p := range inserted {
		node, err := FindByCoordinates(root, p)
		require.NoError(t, err)
		require.NotNil(t, node.Data())
		require.Contains(t, *node.Data(), p)
	}

	// internal nodes hold no payload:
	it := root.IterBreadthFirst()
	for node, ok := it.Next(); ok; node, ok = it.Next() {
		if !node.IsLeaf() {
			require.Nil(t, node.Data())
		}
	}
}

func never(*Tree[[]point]) bool { return false }
