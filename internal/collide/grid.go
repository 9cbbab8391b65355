package collide

import (
	"math"

	"github.com/san-kum/ballpit/internal/pit"
)

type cellKey struct {
	x, y, z int
}

// hashGrid is a uniform spatial hash used for populations large enough
// that the brute-force pair sweep would dominate the frame. Cells are
// sized to the largest diameter in the population, so every overlapping
// pair is found in the 3x3x3 neighborhood of one of its members.
type hashGrid struct {
	cells    map[cellKey][]int
	cellSize float64
}

func newHashGrid() *hashGrid {
	return &hashGrid{cells: make(map[cellKey][]int)}
}

func (g *hashGrid) rebuild(ps []pit.Particle) {
	maxR := 0.0
	for i := range ps {
		if ps[i].Radius > maxR {
			maxR = ps[i].Radius
		}
	}
	g.cellSize = 2 * maxR
	if g.cellSize <= 0 {
		g.cellSize = 1
	}

	for k := range g.cells {
		g.cells[k] = g.cells[k][:0]
	}
	for i := range ps {
		k := g.keyFor(ps[i].Pos)
		g.cells[k] = append(g.cells[k], i)
	}
}

func (g *hashGrid) keyFor(p pit.Vec3) cellKey {
	return cellKey{
		x: int(math.Floor(p.X / g.cellSize)),
		y: int(math.Floor(p.Y / g.cellSize)),
		z: int(math.Floor(p.Z / g.cellSize)),
	}
}

// forEachPair visits every candidate pair (i < j) whose members share a
// cell neighborhood. Pairs in the same cell are visited once; pairs in
// distinct cells are deduplicated by only scanning each particle's own
// neighborhood for larger indices.
func (g *hashGrid) forEachPair(ps []pit.Particle, fn func(i, j int)) {
	g.rebuild(ps)

	for i := range ps {
		base := g.keyFor(ps[i].Pos)
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				for dz := -1; dz <= 1; dz++ {
					k := cellKey{base.x + dx, base.y + dy, base.z + dz}
					for _, j := range g.cells[k] {
						if j > i {
							fn(i, j)
						}
					}
				}
			}
		}
	}
}
