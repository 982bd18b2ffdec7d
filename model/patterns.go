package model

import (
	"math/rand"
	"strings"
)

// PlaceFunc brings a single cell to life. It reports whether a new cell was placed.
type PlaceFunc func(x, y int) bool

// Pattern is a named set of live cells relative to an origin, y growing upwards.
type Pattern struct {
	Name  string
	Cells [][2]int
}

var (
	// Blinker is the horizontal period-2 oscillator
	Blinker = Pattern{Name: "blinker", Cells: [][2]int{{0, 0}, {1, 0}, {2, 0}}}
	// Glider travels diagonally towards +x, -y
	Glider = Pattern{Name: "glider", Cells: [][2]int{{1, 2}, {2, 1}, {0, 0}, {1, 0}, {2, 0}}}
	// Block is the 2x2 still life
	Block = Pattern{Name: "block", Cells: [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}}
)

var patterns = map[string]Pattern{
	Blinker.Name: Blinker,
	Glider.Name:  Glider,
	Block.Name:   Block,
}

// PatternByName looks up one of the built-in patterns
func PatternByName(name string) (Pattern, bool) {
	p, ok := patterns[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// Place lays the pattern out at the given origin and returns how many cells were newly placed
func (p Pattern) Place(originX, originY int, place PlaceFunc) (placed int) {
	for _, c := range p.Cells {
		if place(originX+c[0], originY+c[1]) {
			placed++
		}
	}
	return
}

// RandomPlacement picks random cells until count of them were placed or the grid is full.
func RandomPlacement(rng *rand.Rand, width, height, count int, place PlaceFunc) (placed int) {
	if count <= 0 || width <= 0 || height <= 0 {
		return 0
	}

	order := rng.Perm(width * height)
	for _, idx := range order {
		if placed == count {
			break
		}
		if place(idx%width, idx/width) {
			placed++
		}
	}
	return
}
