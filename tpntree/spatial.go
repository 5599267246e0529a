package tpntree

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
)

// Coordinater is the contract a payload type satisfies to be located
// spatially. The returned coordinate count must equal the tree dimension.
type Coordinater interface {
	Coordinates() []float64
}

// Spans reports whether the node region contains the given point. The check
// is a closed interval on every axis, so sibling regions overlap exactly on
// their shared boundary faces.
func (t *Tree[T]) Spans(point []float64) bool {
	if len(point) != len(t.coordinates) {
		return false
	}

	for i, c := range t.coordinates {
		if point[i] > c+t.span[i] || point[i] < c-t.span[i] {
			return false
		}
	}
	return true
}

// InsertByCoordinates inserts data into the subtree node whose region
// contains its coordinates, walking down from t.
//
// divisionCondition is evaluated against a leaf before it absorbs the data.
// When it returns true the leaf is divided first and its accumulated items,
// together with the new one, are pushed down into the spanning children.
// When it returns false the data is appended to the leaf payload bag. A
// point lying on a shared boundary face is spanned by more than one child;
// the first spanning child in enumeration order wins.
//
// Fails with ErrTypeDimensionMismatch when the data coordinate count does
// not match the tree dimension, and with ErrTypeDoesNotSpan when t is a root
// whose region does not contain the data. On failure the tree is unchanged.
//
// A divisionCondition that keeps requesting division on ever smaller spans
// recurses without bound. Terminating is the caller's responsibility.
func InsertByCoordinates[T Coordinater](t *Tree[[]T], data T, divisionCondition func(*Tree[[]T]) bool) error {
	point := data.Coordinates()
	if len(point) != len(t.coordinates) {
		return errors.New("data dimension does not match tree dimension").
			WithType(ErrTypeDimensionMismatch).
			WithTag("data_dimensions", len(point)).
			WithTag("tree_dimensions", len(t.coordinates))
	}

	if t.IsRoot() && !t.Spans(point) {
		return errors.New("tree does not span data coordinates").
			WithType(ErrTypeDoesNotSpan).
			WithTag("coordinates", point)
	}

	return insert(t, data, divisionCondition)
}

func insert[T Coordinater](t *Tree[[]T], data T, divisionCondition func(*Tree[[]T]) bool) error {
	if !t.IsLeaf() {
		return insertIntoChildren(t, data, divisionCondition)
	}

	if divisionCondition(t) {
		if err := t.Divide(); err != nil {
			return err
		}

		items, _ := t.TakeData()
		for _, item := range append(items, data) {
			if err := insertIntoChildren(t, item, divisionCondition); err != nil {
				return err
			}
		}
		return nil
	}

	if t.data == nil {
		t.data = &[]T{}
	}
	*t.data = append(*t.data, data)
	return nil
}

func insertIntoChildren[T Coordinater](t *Tree[[]T], data T, divisionCondition func(*Tree[[]T]) bool) error {
	point := data.Coordinates()

	for i := range t.children {
		if t.children[i].Spans(point) {
			return insert(&t.children[i], data, divisionCondition)
		}
	}

	// Children tile the parent region, a spanned parent always has a
	// spanning child.
	return errors.New("no child spans data coordinates").
		WithType(ErrTypeDoesNotSpan).
		WithTag("coordinates", point)
}

// FindByCoordinates returns the deepest node whose region contains the
// coordinates of data, descending through the first spanning child in
// enumeration order at every level.
//
// Fails with ErrTypeDimensionMismatch on a coordinate count mismatch and
// with ErrTypeDoesNotSpan when t is a root that does not span the data.
func FindByCoordinates[T Coordinater](t *Tree[[]T], data T) (*Tree[[]T], error) {
	return FindByPoint(t, data.Coordinates())
}

// FindByPoint is FindByCoordinates over raw point coordinates. It works for
// any payload type.
func FindByPoint[T any](t *Tree[T], point []float64) (*Tree[T], error) {
	if len(point) != len(t.coordinates) {
		return nil, errors.New("point dimension does not match tree dimension").
			WithType(ErrTypeDimensionMismatch).
			WithTag("point_dimensions", len(point)).
			WithTag("tree_dimensions", len(t.coordinates))
	}

	if t.IsRoot() && !t.Spans(point) {
		return nil, errors.New("tree does not span point coordinates").
			WithType(ErrTypeDoesNotSpan).
			WithTag("coordinates", point)
	}

	node := t
descend:
	for !node.IsLeaf() {
		for i := range node.children {
			if node.children[i].Spans(point) {
				node = &node.children[i]
				continue descend
			}
		}
		break
	}
	return node, nil
}
