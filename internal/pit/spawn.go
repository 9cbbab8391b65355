package pit

import "math/rand"

// Initial speeds are a small fraction of the box height per second, so a
// fresh population drifts rather than explodes.
const spawnSpeedScale = 0.05

// NewPopulation allocates count particles inside bounds. Positions are
// uniform within the box inset by each particle's radius, velocities are
// small and random, radii are sampled from [rmin, rmax], and colors cycle
// through paletteLen palette slots. Initial overlap between particles is
// allowed; the first collision pass separates them.
//
// count is clamped to a non-negative value and paletteLen to at least 1.
func NewPopulation(rng *rand.Rand, count int, bounds Bounds, rmin, rmax float64, paletteLen int) []Particle {
	if count < 0 {
		count = 0
	}
	if paletteLen < 1 {
		paletteLen = 1
	}
	if rmax < rmin {
		rmin, rmax = rmax, rmin
	}

	size := bounds.Size()
	speed := size.Y * spawnSpeedScale

	ps := make([]Particle, count)
	for i := range ps {
		r := rmin + rng.Float64()*(rmax-rmin)
		ps[i] = Particle{
			Pos: Vec3{
				X: spawnCoord(rng, bounds.Min.X, bounds.Max.X, r),
				Y: spawnCoord(rng, bounds.Min.Y, bounds.Max.Y, r),
				Z: spawnCoord(rng, bounds.Min.Z, bounds.Max.Z, r),
			},
			Vel: Vec3{
				X: (rng.Float64()*2 - 1) * speed,
				Y: (rng.Float64()*2 - 1) * speed,
				Z: (rng.Float64()*2 - 1) * speed,
			},
			Radius: r,
			Color:  i % paletteLen,
		}
	}
	return ps
}

// spawnCoord picks a coordinate so the sphere fits between lo and hi. If
// the radius exceeds the half-extent the axis midpoint is used.
func spawnCoord(rng *rand.Rand, lo, hi, radius float64) float64 {
	lo, hi = lo+radius, hi-radius
	if hi <= lo {
		return (lo + hi) / 2
	}
	return lo + rng.Float64()*(hi-lo)
}
