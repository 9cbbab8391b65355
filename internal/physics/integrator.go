package physics

import (
	"math"

	"github.com/san-kum/ballpit/internal/pit"
)

const (
	// Damping is configured as a per-step factor at this frame rate;
	// Step raises it to dt*refRate so the decay is frame-rate
	// independent.
	refRate = 60.0

	// Softening keeps the pointer attraction finite at zero distance.
	attractSoftening = 0.25
)

// Integrator advances every particle's velocity and position by one time
// step, applying gravity, optional pointer attraction, and damping.
// Velocity persists across frames; nothing is accumulated or reset here.
type Integrator struct {
	Gravity  float64 // magnitude, pulls along -Y
	Friction float64 // per-step velocity factor in (0,1], at 60 fps
	Attract  float64 // pointer attraction strength
	MaxSpeed float64 // velocity magnitude cap, 0 = uncapped
	MaxDt    float64 // upper bound on dt, 0 = uncapped
}

func New(gravity, friction float64) *Integrator {
	return &Integrator{
		Gravity:  gravity,
		Friction: friction,
		MaxDt:    1.0 / 30.0,
	}
}

// ClampDt bounds a measured frame delta so a stalled frame cannot make
// particles tunnel through walls.
func (g *Integrator) ClampDt(dt float64) float64 {
	if dt < 0 {
		return 0
	}
	if g.MaxDt > 0 && dt > g.MaxDt {
		return g.MaxDt
	}
	return dt
}

// Step integrates all particles over dt seconds. If follow is true the
// population is additionally attracted toward target, tempered by
// distance so the force stays finite as a particle crosses the target.
func (g *Integrator) Step(ps []pit.Particle, target pit.Vec3, follow bool, dt float64) {
	dt = g.ClampDt(dt)
	if dt == 0 {
		return
	}

	damp := math.Pow(g.Friction, dt*refRate)

	for i := range ps {
		p := &ps[i]

		p.Vel.Y -= g.Gravity * dt

		if follow && g.Attract > 0 {
			dir := target.Sub(p.Pos)
			dist := dir.Length()
			p.Vel = p.Vel.Add(dir.Scale(g.Attract * dt / (dist + attractSoftening)))
		}

		p.Vel = p.Vel.Scale(damp)

		if g.MaxSpeed > 0 {
			if sp := p.Vel.Length(); sp > g.MaxSpeed {
				p.Vel = p.Vel.Scale(g.MaxSpeed / sp)
			}
		}

		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	}
}
