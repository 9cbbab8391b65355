// Package metrics provides frame observers that summarize a running
// simulation: kinetic energy, boundary containment, and residual pair
// overlap. They attach to a sim.Engine and never mutate particle state.
package metrics

import (
	"math"

	"github.com/san-kum/ballpit/internal/pit"
)

// KineticEnergy tracks the population's total kinetic energy per frame
// (uniform unit mass). Drift is the largest relative deviation from the
// first observed frame, which should stay near zero under lossless
// settings.
type KineticEnergy struct {
	samples  int
	last     float64
	total    float64
	initial  float64
	maxDrift float64
}

func NewKineticEnergy() *KineticEnergy { return &KineticEnergy{} }

func (k *KineticEnergy) Name() string { return "kinetic_energy" }

func (k *KineticEnergy) OnFrame(ps []pit.Particle, t float64) {
	e := 0.0
	for i := range ps {
		e += 0.5 * ps[i].Vel.LengthSq()
	}
	k.last = e
	k.total += e
	if k.samples == 0 {
		k.initial = e
	} else if k.initial != 0 {
		drift := math.Abs(e-k.initial) / math.Abs(k.initial)
		if drift > k.maxDrift {
			k.maxDrift = drift
		}
	}
	k.samples++
}

// Value returns the mean kinetic energy over all observed frames.
func (k *KineticEnergy) Value() float64 {
	if k.samples == 0 {
		return 0
	}
	return k.total / float64(k.samples)
}

func (k *KineticEnergy) Last() float64  { return k.last }
func (k *KineticEnergy) Drift() float64 { return k.maxDrift }

func (k *KineticEnergy) Reset() { *k = KineticEnergy{} }

// Containment counts particle-frames that violate the bounds invariant.
// The bounds are read through a getter because they change on resize.
type Containment struct {
	BoundsFn   func() pit.Bounds
	violations int
	frames     int
}

func NewContainment(boundsFn func() pit.Bounds) *Containment {
	return &Containment{BoundsFn: boundsFn}
}

func (c *Containment) Name() string { return "containment_violations" }

func (c *Containment) OnFrame(ps []pit.Particle, t float64) {
	b := c.BoundsFn()
	for i := range ps {
		if !b.Contains(ps[i].Pos, ps[i].Radius) {
			c.violations++
		}
	}
	c.frames++
}

func (c *Containment) Value() float64 { return float64(c.violations) }

func (c *Containment) Reset() {
	c.violations = 0
	c.frames = 0
}

// MaxPenetration records the deepest residual pair overlap seen after
// any collision pass. A well-behaved resolver keeps this within a small
// numerical tolerance of zero.
type MaxPenetration struct {
	max float64
}

func NewMaxPenetration() *MaxPenetration { return &MaxPenetration{} }

func (m *MaxPenetration) Name() string { return "max_penetration" }

func (m *MaxPenetration) OnFrame(ps []pit.Particle, t float64) {
	for i := 0; i < len(ps)-1; i++ {
		for j := i + 1; j < len(ps); j++ {
			sum := ps[i].Radius + ps[j].Radius
			d := ps[i].Pos.Sub(ps[j].Pos).Length()
			if depth := sum - d; depth > m.max {
				m.max = depth
			}
		}
	}
}

func (m *MaxPenetration) Value() float64 { return m.max }

func (m *MaxPenetration) Reset() { m.max = 0 }
