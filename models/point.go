package models

import (
	"github.com/google/uuid"
)

// Point is a payload item located by its position. It satisfies the
// tpntree.Coordinater contract.
type Point struct {
	ID       string    `json:"id"`
	Position []float64 `json:"position"`
}

func NewPoint(position []float64) Point {
	return Point{
		ID:       uuid.NewString(),
		Position: position,
	}
}

func (p Point) Coordinates() []float64 {
	return p.Position
}
