package rules

const (
	// MaxNeighbors is the size of the Moore neighborhood of an interior cell.
	MaxNeighbors = 8

	birthCount   = 3
	surviveLower = 2
	surviveUpper = 3
)

/*
ApplyConwayRules reports whether a cell is alive in the next generation.

A live cell survives with 2 or 3 live neighbors and dies otherwise.
A dead cell is born with exactly 3 live neighbors and stays dead otherwise.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors >= surviveLower && neighbors <= surviveUpper
	}
	return neighbors == birthCount
}
