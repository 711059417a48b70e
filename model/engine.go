package model

import (
	"github.com/pkg/errors"

	"github.com/Steinstark/game-of-life/rules"
)

// MaxBoardSize bounds the board width and height. Advancing keeps a count
// map entry for every tile adjacent to a live cell, so the bound caps the
// bookkeeping at live-cell count x 9 rather than board area.
const MaxBoardSize = 2048

// Engine holds the live cells for one generation of a bounded Game of Life
// board. Advance computes the next generation in a single atomic swap. The
// engine does no internal locking; callers serialize access (see
// sim.Controller).
type Engine struct {
	width      int
	height     int
	live       map[Coord]struct{}
	generation int
}

// New creates an engine for a width x height board seeded with cells.
// Width and height must be in [1, MaxBoardSize]. cells may be empty but not
// nil. The seed is copied, and coordinates outside the board are dropped so
// a live cell is never materialized off the board.
func New(width, height int, cells []Coord) (*Engine, error) {
	if width < 1 || width > MaxBoardSize {
		return nil, errors.Errorf("[New] width %d is outside the legal range [1..%d]", width, MaxBoardSize)
	}
	if height < 1 || height > MaxBoardSize {
		return nil, errors.Errorf("[New] height %d is outside the legal range [1..%d]", height, MaxBoardSize)
	}
	if cells == nil {
		return nil, errors.New("[New] initial cells must not be nil")
	}

	e := &Engine{
		width:  width,
		height: height,
		live:   make(map[Coord]struct{}, len(cells)),
	}
	for _, c := range cells {
		if e.inside(c) {
			e.live[c] = struct{}{}
		}
	}
	return e, nil
}

// Width returns the board width
func (e *Engine) Width() int { return e.width }

// Height returns the board height
func (e *Engine) Height() int { return e.height }

// Generation returns the current generation counter
func (e *Engine) Generation() int { return e.generation }

// Population returns the number of live cells
func (e *Engine) Population() int { return len(e.live) }

// Advance computes the next generation and swaps it in, reporting whether
// the live-cell set changed. Once it returns false the board is a fixed
// point and every further call returns false. The generation counter
// advances either way.
func (e *Engine) Advance() bool {
	counts := countPool.Get()
	for c := range e.live {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				counts[Coord{X: c.X + dx, Y: c.Y + dy}]++
			}
		}
		// The 3x3 sweep counted the cell as its own neighbor; undo that.
		counts[c]--
	}

	next := make(map[Coord]struct{}, len(e.live))
	for c, neighbors := range counts {
		if !e.inside(c) {
			continue
		}
		_, alive := e.live[c]
		if rules.Survives(neighbors, alive) {
			next[c] = struct{}{}
		}
	}
	countPool.Put(counts)

	changed := !sameCells(e.live, next)
	e.live = next
	e.generation++
	return changed
}

// LiveCells returns a sorted snapshot of the current live-cell set. The
// snapshot is a copy; mutating it cannot reach engine state.
func (e *Engine) LiveCells() []Coord {
	cells := make([]Coord, 0, len(e.live))
	for c := range e.live {
		cells = append(cells, c)
	}
	SortCoords(cells)
	return cells
}

func (e *Engine) inside(c Coord) bool {
	return c.X >= 0 && c.X < e.width && c.Y >= 0 && c.Y < e.height
}

func sameCells(a, b map[Coord]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for c := range a {
		if _, ok := b[c]; !ok {
			return false
		}
	}
	return true
}
