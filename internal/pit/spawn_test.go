package pit

import (
	"math/rand"
	"testing"
)

func TestNewPopulation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b := NewBounds(10, 8, 4)
	ps := NewPopulation(rng, 50, b, 0.2, 0.5, 3)

	if len(ps) != 50 {
		t.Fatalf("expected 50 particles, got %d", len(ps))
	}
	for i, p := range ps {
		if p.Radius < 0.2 || p.Radius > 0.5 {
			t.Errorf("particle %d: radius %f outside [0.2, 0.5]", i, p.Radius)
		}
		if !b.Contains(p.Pos, p.Radius) {
			t.Errorf("particle %d: spawned outside bounds at %+v", i, p.Pos)
		}
		if p.Color != i%3 {
			t.Errorf("particle %d: expected color %d, got %d", i, i%3, p.Color)
		}
	}
}

func TestNewPopulationClampsCount(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b := NewBounds(10, 10, 10)

	if got := NewPopulation(rng, -5, b, 0.1, 0.2, 1); len(got) != 0 {
		t.Errorf("negative count: expected empty population, got %d", len(got))
	}
	if got := NewPopulation(rng, 0, b, 0.1, 0.2, 1); len(got) != 0 {
		t.Errorf("zero count: expected empty population, got %d", len(got))
	}
}

func TestNewPopulationSwappedRadiusRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b := NewBounds(10, 10, 10)
	ps := NewPopulation(rng, 20, b, 0.9, 0.3, 1)
	for i, p := range ps {
		if p.Radius < 0.3 || p.Radius > 0.9 {
			t.Errorf("particle %d: radius %f outside swapped range", i, p.Radius)
		}
	}
}

func TestNewPopulationOversizedRadius(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b := NewBounds(1, 1, 1)
	// Radius bigger than the half-extent: particles sit on axis midpoints.
	ps := NewPopulation(rng, 4, b, 2, 2, 1)
	for i, p := range ps {
		if p.Pos != (Vec3{}) {
			t.Errorf("particle %d: expected centered spawn, got %+v", i, p.Pos)
		}
	}
}
