// Package collide enforces the containment and separation invariants of
// the ball pit: no particle center leaves the bounds, and overlapping
// pairs are pushed apart with a momentum-conserving bounce.
//
// Each frame runs the boundary pass first, then the pairwise pass, so a
// particle already clamped to a wall can still be pushed by a collision
// in the same step. A second boundary pass closes the frame: a pair
// separation can shove a particle past a wall, and the invariant is
// that no frame ends with a particle outside the box. Pair masses are
// uniform: both particles of a pair share the positional correction and
// the normal impulse equally.
package collide

import (
	"github.com/san-kum/ballpit/internal/pit"
)

// Above this population the pair pass switches from the O(n²) sweep to a
// spatial hash grid. Observable behavior is identical.
const gridThreshold = 128

// Resolver corrects positions and velocities for boundary and
// inter-particle overlaps.
type Resolver struct {
	WallBounce  float64 // wall restitution in [0,1]
	Restitution float64 // pair restitution in [0,1]

	grid *hashGrid
}

func New(wallBounce, restitution float64) *Resolver {
	return &Resolver{
		WallBounce:  wallBounce,
		Restitution: restitution,
		grid:        newHashGrid(),
	}
}

// Resolve runs one full collision pass: walls, pairs, then walls again
// to reclaim anything a pair push moved outside the box.
func (r *Resolver) Resolve(ps []pit.Particle, bounds pit.Bounds) {
	for i := range ps {
		r.resolveWalls(&ps[i], bounds)
	}
	r.resolvePairs(ps)
	for i := range ps {
		r.resolveWalls(&ps[i], bounds)
	}
}

// resolveWalls clamps the particle into bounds, reflecting the offending
// velocity component scaled by WallBounce. Axes are handled
// independently so corner contacts resolve on both axes in one step.
//
// A particle carrying NaN or Inf is a bug sentinel, not an error: it is
// reset to rest on the floor of the box instead of propagating.
func (r *Resolver) resolveWalls(p *pit.Particle, b pit.Bounds) {
	if !p.Pos.IsValid() || !p.Vel.IsValid() {
		c := b.Center()
		p.Pos = pit.Vec3{X: c.X, Y: b.Min.Y + p.Radius, Z: c.Z}
		p.Vel = pit.Vec3{}
		return
	}

	clampAxis(&p.Pos.X, &p.Vel.X, b.Min.X, b.Max.X, p.Radius, r.WallBounce)
	clampAxis(&p.Pos.Y, &p.Vel.Y, b.Min.Y, b.Max.Y, p.Radius, r.WallBounce)
	clampAxis(&p.Pos.Z, &p.Vel.Z, b.Min.Z, b.Max.Z, p.Radius, r.WallBounce)
}

func clampAxis(pos, vel *float64, lo, hi, radius, bounce float64) {
	if *pos-radius < lo {
		*pos = lo + radius
		if *vel < 0 {
			*vel = -*vel * bounce
		}
	} else if *pos+radius > hi {
		*pos = hi - radius
		if *vel > 0 {
			*vel = -*vel * bounce
		}
	}
}

func (r *Resolver) resolvePairs(ps []pit.Particle) {
	if len(ps) < 2 {
		return
	}
	if len(ps) < gridThreshold {
		for i := 0; i < len(ps)-1; i++ {
			for j := i + 1; j < len(ps); j++ {
				r.resolvePair(&ps[i], &ps[j])
			}
		}
		return
	}
	r.grid.forEachPair(ps, func(i, j int) {
		r.resolvePair(&ps[i], &ps[j])
	})
}

// resolvePair separates an overlapping pair along the contact normal and
// exchanges the normal velocity components scaled by Restitution.
// Tangential components are untouched.
func (r *Resolver) resolvePair(a, b *pit.Particle) {
	n := b.Pos.Sub(a.Pos)
	sum := a.Radius + b.Radius
	d2 := n.LengthSq()
	if d2 >= sum*sum {
		return
	}

	d := n.Length()
	if d < 1e-12 {
		// Coincident centers: pick an arbitrary separation axis and
		// push by the full radius sum.
		n = pit.Vec3{X: 1}
		d = 0
	} else {
		n = n.Scale(1 / d)
	}

	// Uniform mass: split the overlap evenly.
	push := n.Scale((sum - d) / 2)
	a.Pos = a.Pos.Sub(push)
	b.Pos = b.Pos.Add(push)

	// Closing speed along the normal; positive means approaching.
	closing := a.Vel.Sub(b.Vel).Dot(n)
	if closing <= 0 {
		return
	}

	impulse := n.Scale((1 + r.Restitution) / 2 * closing)
	a.Vel = a.Vel.Sub(impulse)
	b.Vel = b.Vel.Add(impulse)
}
