package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/ballpit/internal/pit"
)

func TestKineticEnergy(t *testing.T) {
	k := NewKineticEnergy()
	ps := []pit.Particle{
		{Vel: pit.Vec3{X: 2}},       // 2.0
		{Vel: pit.Vec3{X: 3, Y: 4}}, // 12.5
	}

	k.OnFrame(ps, 0)
	if k.Last() != 14.5 {
		t.Errorf("expected energy 14.5, got %f", k.Last())
	}
	if k.Drift() != 0 {
		t.Error("single frame has no drift")
	}

	ps[0].Vel = pit.Vec3{X: 4} // 8.0, total 20.5
	k.OnFrame(ps, 1)
	if k.Last() != 20.5 {
		t.Errorf("expected energy 20.5, got %f", k.Last())
	}
	if want := (14.5 + 20.5) / 2; k.Value() != want {
		t.Errorf("expected mean %f, got %f", want, k.Value())
	}
	if want := 6.0 / 14.5; math.Abs(k.Drift()-want) > 1e-12 {
		t.Errorf("expected drift %f, got %f", want, k.Drift())
	}

	k.Reset()
	if k.Value() != 0 || k.Last() != 0 || k.Drift() != 0 {
		t.Error("reset must zero all accumulators")
	}
}

func TestContainment(t *testing.T) {
	b := pit.NewBounds(10, 10, 10)
	c := NewContainment(func() pit.Bounds { return b })

	inside := pit.Particle{Pos: pit.Vec3{}, Radius: 0.5}
	outside := pit.Particle{Pos: pit.Vec3{X: 5.2}, Radius: 0.5}

	c.OnFrame([]pit.Particle{inside, outside}, 0)
	c.OnFrame([]pit.Particle{inside, inside}, 1)

	if c.Value() != 1 {
		t.Errorf("expected 1 violation, got %f", c.Value())
	}

	c.Reset()
	if c.Value() != 0 {
		t.Error("reset must clear violations")
	}
}

func TestContainmentFollowsResize(t *testing.T) {
	b := pit.NewBounds(10, 10, 10)
	c := NewContainment(func() pit.Bounds { return b })
	p := pit.Particle{Pos: pit.Vec3{X: 4}, Radius: 0.5}

	c.OnFrame([]pit.Particle{p}, 0)
	b = pit.NewBounds(4, 4, 4)
	c.OnFrame([]pit.Particle{p}, 1)

	if c.Value() != 1 {
		t.Errorf("shrunk bounds must produce a violation, got %f", c.Value())
	}
}

func TestMaxPenetration(t *testing.T) {
	m := NewMaxPenetration()
	ps := []pit.Particle{
		{Pos: pit.Vec3{X: 0}, Radius: 0.5},
		{Pos: pit.Vec3{X: 0.8}, Radius: 0.5}, // depth 0.2
		{Pos: pit.Vec3{X: 5}, Radius: 0.5},   // clear of both
	}

	m.OnFrame(ps, 0)
	if math.Abs(m.Value()-0.2) > 1e-12 {
		t.Errorf("expected depth 0.2, got %f", m.Value())
	}

	// Max is sticky across frames.
	ps[1].Pos.X = 2
	m.OnFrame(ps, 1)
	if math.Abs(m.Value()-0.2) > 1e-12 {
		t.Errorf("max must persist after separation, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("reset must zero the max")
	}
}
