package model

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidDimensions is returned when a grid is requested with a non-positive size.
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
	// ErrOutOfBounds is returned for cell access outside the grid.
	ErrOutOfBounds = errors.New("cell out of bounds")
)

// Grid is one generation of the board. Cells are stored as cells[y][x].
type Grid struct {
	width  int
	height int
	cells  [][]bool
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] got %dx%d", width, height)
	}
	return newGrid(width, height), nil
}

func newGrid(width, height int) *Grid {
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

// Reset resizes the grid and kills every cell
func (g *Grid) Reset(width, height int) {
	g.width = width
	g.height = height

	// Resize cells if needed
	if len(g.cells) != height {
		g.cells = make([][]bool, height)
	}
	for i := range g.cells {
		if len(g.cells[i]) != width {
			g.cells[i] = make([]bool, width)
		} else {
			clear(g.cells[i])
		}
	}
}

// Clear kills all cells
func (g *Grid) Clear() {
	for y := 0; y < g.height; y++ {
		clear(g.cells[y])
	}
}

// InBounds reports whether (x, y) addresses a cell of the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// SetAlive sets a single cell. Nothing changes for coordinates outside the grid.
func (g *Grid) SetAlive(x, y int, alive bool) error {
	if !g.InBounds(x, y) {
		return errors.Wrapf(ErrOutOfBounds, "[SetAlive] (%d,%d) outside %dx%d", x, y, g.width, g.height)
	}
	g.cells[y][x] = alive
	return nil
}

// IsAlive returns the state of a cell; anything outside the grid is dead
func (g *Grid) IsAlive(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.cells[y][x]
}

// CountNeighbors counts living neighbors of (x, y) without wrapping around the edges.
// The caller must pass in-bounds coordinates.
func (g *Grid) CountNeighbors(x, y int) int {
	count := 0

	// Clamp the neighborhood once instead of checking every neighbor
	minX := max(0, x-1)
	maxX := min(g.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.height-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		row := g.cells[ny]
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			if row[nx] {
				count++
			}
		}
	}

	return count
}

// NeighborCandidates returns how many neighbor positions of (x, y) lie inside the grid
func (g *Grid) NeighborCandidates(x, y int) int {
	cols := min(g.width-1, x+1) - max(0, x-1) + 1
	rows := min(g.height-1, y+1) - max(0, y-1) + 1
	return cols*rows - 1
}

// CountAlive returns the total number of living cells
func (g *Grid) CountAlive() (count int) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x] {
				count++
			}
		}
	}
	return
}

// bounds is the smallest rectangle holding every live cell
type bounds struct {
	minX, maxX, minY, maxY int
	valid                  bool
}

func (g *Grid) activeBounds() (b bounds) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if !g.cells[y][x] {
				continue
			}
			if !b.valid {
				b = bounds{minX: x, maxX: x, minY: y, maxY: y, valid: true}
				continue
			}
			b.minX = min(b.minX, x)
			b.maxX = max(b.maxX, x)
			b.minY = min(b.minY, y)
			b.maxY = max(b.maxY, y)
		}
	}
	return
}

func (b bounds) area() int {
	if !b.valid {
		return 0
	}
	return (b.maxX - b.minX + 1) * (b.maxY - b.minY + 1)
}

// Snapshot copies the current state into an immutable view
func (g *Grid) Snapshot() Snapshot {
	cells := make([]bool, g.width*g.height)
	for y := 0; y < g.height; y++ {
		copy(cells[y*g.width:(y+1)*g.width], g.cells[y])
	}
	return Snapshot{width: g.width, height: g.height, cells: cells}
}
