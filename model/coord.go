package model

import (
	"cmp"
	"slices"
)

// Coord is a 2-d board coordinate. Cells are identified by their Coord and
// copied by value everywhere.
type Coord struct {
	X int
	Y int
}

// Compare orders coordinates by X, then Y.
func (c Coord) Compare(o Coord) int {
	if r := cmp.Compare(c.X, o.X); r != 0 {
		return r
	}
	return cmp.Compare(c.Y, o.Y)
}

// SortCoords sorts cells in place into (X, then Y) order.
func SortCoords(cells []Coord) {
	slices.SortFunc(cells, Coord.Compare)
}
