// Package tpntree implements an N-dimensional generalization of a quadtree,
// the two-power-n-tree: every divided node has exactly 2^N children, where N
// is the number of spatial dimensions.
//
// A tree node describes a hyperrectangular region by its center coordinates
// and a per-axis span (half-extent, so the full edge length along axis i is
// 2*span[i]). Children are owned by their parent and partition the parent
// region into 2^N congruent sub-regions.
//
// The tree performs no locking. Callers that share a tree across goroutines
// must impose their own mutual exclusion around the whole structure.
package tpntree

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
)

// Tree is a node of a two-power-n-tree holding an optional payload of type T.
type Tree[T any] struct {
	coordinates []float64
	span        []float64
	level       int
	children    []Tree[T]
	data        *T
}

// New creates a tree node with explicit center coordinates, per-axis span and
// level. The dimension of the node is the length of the coordinate vector,
// which must match the length of the span vector.
//
// Most callers want Root instead.
func New[T any](coordinates, span []float64, level int) (*Tree[T], error) {
	if len(coordinates) != len(span) {
		return nil, errors.New("coordinates do not match span dimensions").
			WithType(ErrTypeDimensionMismatch).
			WithTag("coordinate_dimensions", len(coordinates)).
			WithTag("span_dimensions", len(span))
	}

	return &Tree[T]{
		coordinates: coordinates,
		span:        span,
		level:       level,
	}, nil
}

// Root creates a tree node centered at the zero vector with a uniform span
// along every axis, at level zero.
func Root[T any](span float64, dimensions int) *Tree[T] {
	coordinates := make([]float64, dimensions)
	spans := make([]float64, dimensions)
	for i := range spans {
		spans[i] = span
	}

	return &Tree[T]{
		coordinates: coordinates,
		span:        spans,
	}
}

// Divide splits the node region into 2^N children, each spanning half the
// parent span along every axis.
//
// Children are enumerated by a counter from 0 to 2^N-1 read as an N-bit
// pattern: bit i selects the offset direction on axis i, a zero bit placing
// the child at +span[i]/2 and a one bit at -span[i]/2. Every sign combination
// occurs exactly once. This enumeration order is relied upon by the locator
// tie-break and the traversal iterators.
//
// Dividing an already divided node fails with ErrTypeCanNotDivide and leaves
// the node untouched. Division is irreversible.
func (t *Tree[T]) Divide() error {
	if len(t.children) != 0 {
		return errors.New("tree is already divided").
			WithType(ErrTypeCanNotDivide).
			WithTag("level", t.level).
			WithTag("child_count", len(t.children))
	}

	n := len(t.coordinates)
	children := make([]Tree[T], 0, 1<<n)

	for pattern := 0; pattern < 1<<n; pattern++ {
		coordinates := make([]float64, n)
		span := make([]float64, n)

		for i := 0; i < n; i++ {
			span[i] = t.span[i] / 2
			bit := float64(pattern >> i & 1)
			coordinates[i] = t.coordinates[i] + span[i] - t.span[i]*bit
		}

		children = append(children, Tree[T]{
			coordinates: coordinates,
			span:        span,
			level:       t.level + 1,
		})
	}

	t.children = children
	return nil
}

// Child returns the child at the given enumeration-order position.
func (t *Tree[T]) Child(i int) (*Tree[T], bool) {
	if i < 0 || i >= len(t.children) {
		return nil, false
	}
	return &t.children[i], true
}

// Children returns the direct children in enumeration order. The returned
// slice is a view, it must not be grown or reordered by the caller.
func (t *Tree[T]) Children() []*Tree[T] {
	children := make([]*Tree[T], len(t.children))
	for i := range t.children {
		children[i] = &t.children[i]
	}
	return children
}

func (t *Tree[T]) ChildCount() int {
	return len(t.children)
}

func (t *Tree[T]) IsLeaf() bool {
	return len(t.children) == 0
}

func (t *Tree[T]) IsRoot() bool {
	return t.level == 0
}

// Coordinates returns the center of the node region. The returned slice is
// owned by the node and must not be modified.
func (t *Tree[T]) Coordinates() []float64 {
	return t.coordinates
}

// Span returns the per-axis half-extent of the node region. The returned
// slice is owned by the node and must not be modified.
func (t *Tree[T]) Span() []float64 {
	return t.span
}

func (t *Tree[T]) Level() int {
	return t.level
}

func (t *Tree[T]) Dimensions() int {
	return len(t.coordinates)
}

// Data returns the node payload, or nil when the node holds none.
func (t *Tree[T]) Data() *T {
	return t.data
}

// SetData sets the node payload.
func (t *Tree[T]) SetData(v T) {
	t.data = &v
}

// TakeData removes the payload from the node and returns it. The boolean
// reports whether a payload was present.
func (t *Tree[T]) TakeData() (T, bool) {
	if t.data == nil {
		var zero T
		return zero, false
	}
	data := *t.data
	t.data = nil
	return data, true
}

// AdjacentTrees constructs the 2*N same-sized lattice neighbors of the node
// region, two per axis. The result is ordered axis-major, for each axis first
// the neighbor offset by +2*span[i], then the one offset by -2*span[i].
//
// The returned nodes are fresh, unattached level-zero trees. No existing tree
// is consulted or modified.
func (t *Tree[T]) AdjacentTrees() []*Tree[T] {
	adjacent := make([]*Tree[T], 0, 2*len(t.coordinates))

	for i := range t.coordinates {
		above := make([]float64, len(t.coordinates))
		below := make([]float64, len(t.coordinates))
		copy(above, t.coordinates)
		copy(below, t.coordinates)
		above[i] += t.span[i] * 2
		below[i] -= t.span[i] * 2

		adjacent = append(adjacent,
			&Tree[T]{coordinates: above, span: append([]float64(nil), t.span...)},
			&Tree[T]{coordinates: below, span: append([]float64(nil), t.span...)},
		)
	}

	return adjacent
}
