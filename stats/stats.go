// Package stats provides numeric aggregations over tpntree nodes. It
// consumes the children-iteration surface of the tree and holds no state of
// its own.
package stats

import (
	"github.com/aukilabs/yggdrasil/tpntree"
	"gonum.org/v1/gonum/stat"
)

// Variance returns the population variance of the scalar payloads of the
// direct children of t. A childless node has a variance of zero, children
// without a payload count as zero.
func Variance(t *tpntree.Tree[float64]) float64 {
	if t.ChildCount() == 0 {
		return 0
	}

	values := make([]float64, 0, t.ChildCount())
	for _, child := range t.Children() {
		var v float64
		if d := child.Data(); d != nil {
			v = *d
		}
		values = append(values, v)
	}

	return stat.PopVariance(values, nil)
}

// LeafLoadVariance returns the population variance of the payload item count
// across the leaves of the subtree rooted at t.
func LeafLoadVariance[T any](t *tpntree.Tree[[]T]) float64 {
	var loads []float64

	it := t.IterDepthFirst()
	for node, ok := it.Next(); ok; node, ok = it.Next() {
		if !node.IsLeaf() {
			continue
		}
		var n int
		if d := node.Data(); d != nil {
			n = len(*d)
		}
		loads = append(loads, float64(n))
	}

	if len(loads) == 0 {
		return 0
	}
	return stat.PopVariance(loads, nil)
}

// LevelOccupancy describes how many nodes and payload items live at one tree
// depth.
type LevelOccupancy struct {
	Level     int `json:"level"`
	NodeCount int `json:"node_count"`
	LeafCount int `json:"leaf_count"`
	ItemCount int `json:"item_count"`
}

// Occupancy walks the subtree rooted at t in level order and reports the
// per-level node, leaf and item counts.
func Occupancy[T any](t *tpntree.Tree[[]T]) []LevelOccupancy {
	var levels []LevelOccupancy

	it := t.IterBreadthFirst()
	for node, ok := it.Next(); ok; node, ok = it.Next() {
		depth := node.Level() - t.Level()
		for depth >= len(levels) {
			levels = append(levels, LevelOccupancy{Level: t.Level() + len(levels)})
		}

		levels[depth].NodeCount++
		if node.IsLeaf() {
			levels[depth].LeafCount++
		}
		if d := node.Data(); d != nil {
			levels[depth].ItemCount += len(*d)
		}
	}

	return levels
}
