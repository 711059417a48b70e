package sim

import (
	"sync"

	"github.com/Steinstark/game-of-life/model"
)

// Board owns the displayed board state the edit surface and the simulation
// loop share: the live-cell set currently on screen plus the edit-lock and
// dirty flags. One mutex guards all of it, so a lock check and the cell flip
// it gates can never be split by a concurrent writer.
type Board struct {
	// OnPush, when set, is called with each snapshot accepted by
	// PushLiveCells, after the board mutex is released. The simulation loop
	// invokes pushes from inside a tick, so the callback must not call back
	// into the controller.
	OnPush func(cells []model.Coord)

	mu     sync.Mutex
	width  int
	height int
	cells  map[model.Coord]struct{}
	locked bool
	dirty  bool
}

// NewBoard creates an unlocked board displaying the given cells. Cells off
// the board are dropped, the same bounds rule Toggle enforces, so the
// displayed seed always matches what the engine accepts.
func NewBoard(width, height int, cells []model.Coord) *Board {
	b := &Board{
		width:  width,
		height: height,
		cells:  make(map[model.Coord]struct{}, len(cells)),
	}
	for _, c := range cells {
		if c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height {
			b.cells[c] = struct{}{}
		}
	}
	return b
}

// Width returns the board width
func (b *Board) Width() int { return b.width }

// Height returns the board height
func (b *Board) Height() int { return b.height }

// LiveCells returns the displayed live cells in sorted order.
func (b *Board) LiveCells() []model.Coord {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshot()
}

// WasEdited reports whether the board was manually edited since the last
// call. The flag clears on read.
func (b *Board) WasEdited() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	dirty := b.dirty
	b.dirty = false
	return dirty
}

// PushLiveCells replaces the entire displayed set. Pushes come from the
// simulation loop and do not count as edits.
func (b *Board) PushLiveCells(cells []model.Coord) {
	b.mu.Lock()
	b.cells = make(map[model.Coord]struct{}, len(cells))
	for _, c := range cells {
		b.cells[c] = struct{}{}
	}
	snapshot := b.snapshot()
	b.mu.Unlock()

	if b.OnPush != nil {
		b.OnPush(snapshot)
	}
}

// SetEditLocked locks or unlocks the board for manual edits.
func (b *Board) SetEditLocked(locked bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.locked = locked
}

// EditLocked reports whether manual edits are currently rejected.
func (b *Board) EditLocked() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.locked
}

// Toggle flips the cell at (x, y) and marks the board dirty. It reports
// whether the edit was applied; edits are rejected while the board is locked
// or when (x, y) is off the board.
func (b *Board) Toggle(x, y int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.locked {
		return false
	}
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return false
	}

	c := model.Coord{X: x, Y: y}
	if _, ok := b.cells[c]; ok {
		delete(b.cells, c)
	} else {
		b.cells[c] = struct{}{}
	}
	b.dirty = true
	return true
}

// snapshot copies the displayed set into a sorted slice. Caller holds b.mu.
func (b *Board) snapshot() []model.Coord {
	cells := make([]model.Coord, 0, len(b.cells))
	for c := range b.cells {
		cells = append(cells, c)
	}
	model.SortCoords(cells)
	return cells
}
