package model

import "sync"

// GridPool recycles retired generations so a running game stops allocating once warm.
type GridPool struct {
	grids sync.Pool
}

func NewGridPool() *GridPool {
	p := &GridPool{}
	p.grids.New = func() any { return new(Grid) }
	return p
}

// Get hands out a dead width x height grid
func (p *GridPool) Get(width, height int) *Grid {
	g := p.grids.Get().(*Grid)
	g.Reset(width, height)
	return g
}

// Put retires g. It must not be used by the caller afterwards.
func (p *GridPool) Put(g *Grid) {
	if g == nil {
		return
	}
	g.Clear()
	p.grids.Put(g)
}

// GridToPool retires grid into pool; without a pool the grid is left to the garbage collector
func GridToPool(grid *Grid, pool *GridPool) {
	if pool != nil {
		pool.Put(grid)
	}
}
