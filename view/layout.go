// Package view maps between screen coordinates and grid cells for the interactive front ends.
package view

// Layout describes a board of Cols x Rows cells, each CellW x CellH screen units,
// drawn from the top-left corner of the screen. Cell row 0 is the bottom row.
type Layout struct {
	Cols, Rows   int
	CellW, CellH int
}

// Width is the drawn board width in screen units
func (l Layout) Width() int { return l.Cols * l.CellW }

// Height is the drawn board height in screen units
func (l Layout) Height() int { return l.Rows * l.CellH }

// CellAt maps a screen position to the cell containing it. ok is false outside the board.
func (l Layout) CellAt(px, py int) (x, y int, ok bool) {
	if l.CellW <= 0 || l.CellH <= 0 || px < 0 || py < 0 || px >= l.Width() || py >= l.Height() {
		return 0, 0, false
	}
	return px / l.CellW, l.Rows - 1 - py/l.CellH, true
}

// CellRect returns the top-left screen position of cell (x, y)
func (l Layout) CellRect(x, y int) (px, py int) {
	return x * l.CellW, (l.Rows - 1 - y) * l.CellH
}
