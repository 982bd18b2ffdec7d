package model

// Snapshot is a read-only copy of one generation, safe to keep across ticks.
type Snapshot struct {
	width  int
	height int
	cells  []bool
}

// Width returns the number of columns
func (s Snapshot) Width() int { return s.width }

// Height returns the number of rows
func (s Snapshot) Height() int { return s.height }

// Alive reports the state of (x, y); cells outside the snapshot are dead.
func (s Snapshot) Alive(x, y int) bool {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return false
	}
	return s.cells[y*s.width+x]
}

// Each calls fn for every cell, row by row starting at y = 0.
func (s Snapshot) Each(fn func(x, y int, alive bool)) {
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			fn(x, y, s.cells[y*s.width+x])
		}
	}
}

// LiveCells returns the number of living cells
func (s Snapshot) LiveCells() (count int) {
	for _, alive := range s.cells {
		if alive {
			count++
		}
	}
	return
}

// BoundingBoxSize returns the area of the smallest rectangle holding every live cell
func (s Snapshot) BoundingBoxSize() int {
	var b bounds
	s.Each(func(x, y int, alive bool) {
		if !alive {
			return
		}
		if !b.valid {
			b = bounds{minX: x, maxX: x, minY: y, maxY: y, valid: true}
			return
		}
		b.minX = min(b.minX, x)
		b.maxX = max(b.maxX, x)
		b.minY = min(b.minY, y)
		b.maxY = max(b.maxY, y)
	})
	return b.area()
}
