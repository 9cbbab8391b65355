package sim_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/ballpit/internal/collide"
	"github.com/san-kum/ballpit/internal/config"
	"github.com/san-kum/ballpit/internal/physics"
	"github.com/san-kum/ballpit/internal/pit"
	"github.com/san-kum/ballpit/internal/sim"
)

const frameDt = 1.0 / 60.0

func kinetic(ps []pit.Particle) float64 {
	var e float64
	for i := range ps {
		e += 0.5 * ps[i].Vel.LengthSq()
	}
	return e
}

func meanDistance(ps []pit.Particle, to pit.Vec3) float64 {
	var sum float64
	for i := range ps {
		sum += ps[i].Pos.Sub(to).Length()
	}
	return sum / float64(len(ps))
}

var _ = Describe("frame pipeline invariants", func() {
	Describe("containment", func() {
		It("keeps every particle inside the bounds on every frame", func() {
			cfg := config.DefaultConfig()
			cfg.Count = 150
			cfg.Seed = 5
			e := sim.New(cfg)
			e.Start()

			for frame := 0; frame < 300; frame++ {
				e.Step(frameDt)
				for i, p := range e.Particles() {
					Expect(e.Bounds().Contains(p.Pos, p.Radius)).To(BeTrue(),
						"particle %d escaped on frame %d at %+v", i, frame, p.Pos)
				}
			}
		})

		It("restores containment within one frame of a shrink", func() {
			cfg := config.DefaultConfig()
			cfg.Count = 150
			cfg.Seed = 5
			e := sim.New(cfg)
			e.Start()
			for frame := 0; frame < 60; frame++ {
				e.Step(frameDt)
			}

			e.Resize(500, 1000)
			e.Step(frameDt)

			for i, p := range e.Particles() {
				Expect(e.Bounds().Contains(p.Pos, p.Radius)).To(BeTrue(),
					"particle %d outside the shrunk bounds at %+v", i, p.Pos)
			}
		})
	})

	Describe("overlap", func() {
		It("leaves no deep overlap once the population settles", func() {
			cfg := config.DefaultConfig()
			cfg.Count = 150
			cfg.Seed = 5
			e := sim.New(cfg)
			e.Start()
			for frame := 0; frame < 600; frame++ {
				e.Step(frameDt)
			}

			// Single-pass resolution leaves transient contact overlap
			// in a resting pile; it must stay shallow relative to the
			// smallest radius.
			const tol = 0.1
			ps := e.Particles()
			for i := 0; i < len(ps)-1; i++ {
				for j := i + 1; j < len(ps); j++ {
					sum := ps[i].Radius + ps[j].Radius
					d := ps[i].Pos.Sub(ps[j].Pos).Length()
					Expect(sum - d).To(BeNumerically("<", tol),
						"deep overlap between %d and %d", i, j)
				}
			}
		})
	})

	Describe("energy", func() {
		It("is conserved with lossless parameters", func() {
			cfg := config.DefaultConfig()
			cfg.Count = 60
			cfg.Seed = 2
			cfg.Gravity = 0
			cfg.Friction = 1
			cfg.WallBounce = 1
			cfg.FollowCursor = false
			e := sim.New(cfg)
			e.Start()

			e.Step(frameDt)
			start := kinetic(e.Particles())
			Expect(start).To(BeNumerically(">", 0))

			for frame := 0; frame < 500; frame++ {
				e.Step(frameDt)
			}
			end := kinetic(e.Particles())

			Expect(end).To(BeNumerically("~", start, start*1e-6))
		})
	})

	Describe("pointer attraction", func() {
		It("draws the population toward a persistent target", func() {
			cfg := config.DefaultConfig()
			cfg.Count = 8
			cfg.Seed = 11
			cfg.Gravity = 0
			cfg.Friction = 0.95
			cfg.WallBounce = 0.5
			cfg.MinRadius = 0.1
			cfg.MaxRadius = 0.15
			e := sim.New(cfg)
			e.Tracker().SetWorld(pit.Vec3{})
			e.Start()

			start := meanDistance(e.Particles(), pit.Vec3{})
			for frame := 0; frame < 600; frame++ {
				e.Step(frameDt)
			}
			end := meanDistance(e.Particles(), pit.Vec3{})

			Expect(end).To(BeNumerically("<", start*0.5))
			Expect(end).To(BeNumerically("<", 2.0))
		})
	})

	Describe("settling", func() {
		It("brings a small population to rest on the floor", func() {
			bounds := pit.NewBounds(1, 1, 1)
			integ := physics.New(1.0, 0.99)
			res := collide.New(0.8, 0.8)

			const radius = 0.05
			xs := []float64{-0.3, -0.1, 0.1, 0.3}
			ps := make([]pit.Particle, len(xs))
			for i, x := range xs {
				ps[i] = pit.Particle{
					Pos:    pit.Vec3{X: x, Y: 0.1 + 0.05*float64(i)},
					Radius: radius,
					Color:  i,
				}
			}

			for frame := 0; frame < 1200; frame++ {
				integ.Step(ps, pit.Vec3{}, false, frameDt)
				res.Resolve(ps, bounds)
			}

			floor := bounds.Min.Y + radius
			for i, p := range ps {
				// Residual micro-bounce keeps speeds near
				// restitution * gravity * dt, well under the rest
				// threshold.
				Expect(p.Vel.Length()).To(BeNumerically("<", 0.05),
					"particle %d still moving", i)
				Expect(p.Pos.Y).To(BeNumerically(">=", floor-1e-9))
				Expect(p.Pos.Y).To(BeNumerically("<", floor+0.01),
					"particle %d not resting on the floor", i)
				// No horizontal forces act, so X never moves.
				Expect(p.Pos.X).To(Equal(xs[i]))
			}
		})
	})
})
