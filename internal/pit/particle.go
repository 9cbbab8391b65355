package pit

// Particle is one ball. Radius and Color are fixed at creation; Pos and
// Vel are rewritten every frame by the integrator and the resolver.
// Color indexes into the configured palette.
type Particle struct {
	Pos    Vec3
	Vel    Vec3
	Radius float64
	Color  int
}

// Bounds is the axis-aligned box particles are confined to. It is derived
// from the rendering viewport and recomputed on resize.
type Bounds struct {
	Min, Max Vec3
}

// NewBounds returns a box of the given extents centered at the origin.
func NewBounds(width, height, depth float64) Bounds {
	hw, hh, hd := width/2, height/2, depth/2
	return Bounds{
		Min: Vec3{-hw, -hh, -hd},
		Max: Vec3{hw, hh, hd},
	}
}

func (b Bounds) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

func (b Bounds) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Float slack for containment checks: clamping assigns pos = wall ±
// radius, and re-deriving the wall coordinate can be off by an ulp.
const containEps = 1e-9

// Contains reports whether a sphere of the given radius at p fits fully
// inside the box on every axis, within numerical tolerance.
func (b Bounds) Contains(p Vec3, radius float64) bool {
	return p.X-radius >= b.Min.X-containEps && p.X+radius <= b.Max.X+containEps &&
		p.Y-radius >= b.Min.Y-containEps && p.Y+radius <= b.Max.Y+containEps &&
		p.Z-radius >= b.Min.Z-containEps && p.Z+radius <= b.Max.Z+containEps
}
