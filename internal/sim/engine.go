// Package sim owns the per-frame pipeline and the lifecycle of one ball
// pit instance.
//
// Within a frame the four stages run strictly in order: pointer target
// read, integration, collision resolution, observer/render callbacks.
// Frames are strictly sequential; the engine is single-flight by
// construction and holds no locks. Stop is the only operation that may
// be called from another goroutine: a frame signal arriving after Stop
// is a no-op, never a crash.
package sim

import (
	"context"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/san-kum/ballpit/internal/collide"
	"github.com/san-kum/ballpit/internal/config"
	"github.com/san-kum/ballpit/internal/physics"
	"github.com/san-kum/ballpit/internal/pit"
	"github.com/san-kum/ballpit/internal/pointer"
)

// World extents: the box height is fixed in simulation units; width
// follows the viewport aspect ratio, depth stays constant so the pit
// reads as a shallow tray.
const (
	worldHeight = 12.0
	worldDepth  = 5.0
)

// Observer is notified after each completed frame, before the next one
// may begin. Observers must not mutate the particle slice.
type Observer interface {
	OnFrame(ps []pit.Particle, t float64)
}

// Engine drives the pipeline and owns all mutable simulation state.
type Engine struct {
	particles []pit.Particle
	bounds    pit.Bounds

	integ    *physics.Integrator
	resolver *collide.Resolver
	tracker  *pointer.Tracker

	observers []Observer

	running atomic.Bool
	frames  uint64
	t       float64
}

// New builds an engine from a configuration. The config is normalized
// first, so even a hostile config yields a working instance.
func New(cfg *config.Config) *Engine {
	cfg.Normalize()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	bounds := pit.NewBounds(worldHeight*16.0/9.0, worldHeight, worldDepth)

	integ := physics.New(cfg.Gravity, cfg.Friction)
	integ.Attract = cfg.Attract
	integ.MaxSpeed = cfg.MaxSpeed
	integ.MaxDt = cfg.MaxDt

	// The tracker gets no viewport until the front end reports one via
	// Resize; screen-space pointer input is a no-op before then.
	return &Engine{
		particles: pit.NewPopulation(rng, cfg.Count, bounds, cfg.MinRadius, cfg.MaxRadius, len(cfg.Palette())),
		bounds:    bounds,
		integ:     integ,
		resolver:  collide.New(cfg.WallBounce, cfg.WallBounce),
		tracker:   pointer.New(cfg.FollowCursor),
	}
}

func (e *Engine) AddObserver(o Observer) {
	e.observers = append(e.observers, o)
}

// Start enables frame processing. Idempotent.
func (e *Engine) Start() { e.running.Store(true) }

// Stop tears the instance down: any frame signal arriving afterwards is
// ignored, freezing the particle state and frame counter.
func (e *Engine) Stop() { e.running.Store(false) }

func (e *Engine) Running() bool { return e.running.Load() }

// Step runs one full pipeline pass over dt seconds of simulated time.
// It is a no-op before Start and after Stop.
func (e *Engine) Step(dt float64) {
	if !e.running.Load() {
		return
	}
	dt = e.integ.ClampDt(dt)

	target, follow := e.tracker.Target()
	e.integ.Step(e.particles, target, follow, dt)
	e.resolver.Resolve(e.particles, e.bounds)

	e.t += dt
	e.frames++

	for _, o := range e.observers {
		o.OnFrame(e.particles, e.t)
	}
}

// Resize recomputes the simulation bounds from new viewport pixel
// dimensions. The next collision pass pulls any stranded particle back
// inside, so containment holds within one frame of a shrink.
func (e *Engine) Resize(widthPx, heightPx float64) {
	if widthPx <= 0 || heightPx <= 0 {
		return
	}
	aspect := widthPx / heightPx
	e.bounds = pit.NewBounds(worldHeight*aspect, worldHeight, worldDepth)
	e.tracker.SetViewport(widthPx, heightPx, e.bounds)
}

func (e *Engine) Particles() []pit.Particle { return e.particles }
func (e *Engine) Bounds() pit.Bounds        { return e.bounds }
func (e *Engine) Tracker() *pointer.Tracker { return e.tracker }
func (e *Engine) Frames() uint64            { return e.frames }
func (e *Engine) Time() float64             { return e.t }

// Result holds the output of a headless run.
type Result struct {
	Frames    uint64
	Duration  float64
	Times     []float64
	Snapshots [][]pit.Particle
	Metrics   map[string]float64
}

// RunHeadless steps the engine at a fixed dt for the given duration
// without a render surface, sampling a snapshot every sampleEvery
// frames. It honors context cancellation between frames and stops the
// engine on return.
func (e *Engine) RunHeadless(ctx context.Context, duration, dt float64, sampleEvery int) (*Result, error) {
	if sampleEvery < 1 {
		sampleEvery = 1
	}
	e.Start()
	defer e.Stop()

	res := &Result{Metrics: make(map[string]float64)}
	steps := int(duration / dt)
	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return res, ctx.Err()
		default:
		}
		e.Step(dt)
		if i%sampleEvery == 0 {
			snap := make([]pit.Particle, len(e.particles))
			copy(snap, e.particles)
			res.Snapshots = append(res.Snapshots, snap)
			res.Times = append(res.Times, e.t)
		}
	}
	res.Frames = e.frames
	res.Duration = e.t
	return res, nil
}
