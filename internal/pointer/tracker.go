// Package pointer maps raw pointer input in screen space onto the
// attraction target in simulation space.
package pointer

import "github.com/san-kum/ballpit/internal/pit"

// Tracker holds the optional pointer target read by the integrator each
// frame. When follow-cursor is disabled, or the pointer is outside the
// interactive surface, there is no target.
type Tracker struct {
	enabled bool

	vpW, vpH float64
	bounds   pit.Bounds

	target pit.Vec3
	active bool
}

func New(enabled bool) *Tracker {
	return &Tracker{enabled: enabled}
}

func (t *Tracker) Enabled() bool { return t.enabled }

// SetViewport records the interactive surface size in pixels and the
// current simulation bounds. Called by the engine on resize; until then
// PointAt has no surface to map from and produces no target.
func (t *Tracker) SetViewport(w, h float64, bounds pit.Bounds) {
	t.vpW, t.vpH = w, h
	t.bounds = bounds
}

// PointAt maps screen coordinates (origin top-left, y down) onto the
// z=0 plane of the simulation box. Coordinates outside the viewport
// clear the target.
func (t *Tracker) PointAt(sx, sy float64) {
	if !t.enabled || t.vpW <= 0 || t.vpH <= 0 {
		t.active = false
		return
	}
	if sx < 0 || sx > t.vpW || sy < 0 || sy > t.vpH {
		t.active = false
		return
	}
	size := t.bounds.Size()
	t.target = pit.Vec3{
		X: t.bounds.Min.X + sx/t.vpW*size.X,
		Y: t.bounds.Max.Y - sy/t.vpH*size.Y,
		Z: 0,
	}
	t.active = true
}

// SetWorld installs a target already expressed in simulation space.
// Used by front ends that do their own projection (the GUI ray-casts
// the mouse onto the z=0 plane through its camera).
func (t *Tracker) SetWorld(v pit.Vec3) {
	if !t.enabled {
		return
	}
	t.target = v
	t.active = true
}

// Clear drops the target, e.g. when the pointer leaves the surface.
func (t *Tracker) Clear() {
	t.active = false
}

// Target returns the current attraction point and whether one exists.
func (t *Tracker) Target() (pit.Vec3, bool) {
	if !t.enabled || !t.active {
		return pit.Vec3{}, false
	}
	return t.target, true
}
