// Package gui renders the ball pit in a raylib window. The window's
// frame loop drives the engine: one Step per drawn frame, mouse
// ray-cast onto the pit's front plane for cursor attraction.
package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/ballpit/internal/config"
	"github.com/san-kum/ballpit/internal/pit"
	"github.com/san-kum/ballpit/internal/sim"
)

const (
	windowW = 1280
	windowH = 720
	title   = "ballpit"
)

type App struct {
	eng     *sim.Engine
	cfg     *config.Config
	palette []rl.Color
	camera  rl.Camera3D

	paused     bool
	showBounds bool
	showHUD    bool
}

func NewApp(cfg *config.Config) *App {
	cfg.Normalize()
	pal := cfg.Palette()
	colors := make([]rl.Color, len(pal))
	for i, c := range pal {
		r, g, b := c.RGB255()
		colors[i] = rl.NewColor(r, g, b, 255)
	}

	return &App{
		eng:     sim.New(cfg),
		cfg:     cfg,
		palette: colors,
		camera: rl.NewCamera3D(
			rl.NewVector3(0, 0, 22),
			rl.NewVector3(0, 0, 0),
			rl.NewVector3(0, 1, 0),
			45.0,
			rl.CameraPerspective,
		),
		showBounds: false,
		showHUD:    true,
	}
}

// Run opens the window and blocks until it closes. The only fatal
// condition is a render surface that cannot be acquired; everything
// else degrades silently per the widget contract.
func Run(cfg *config.Config) error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(windowW, windowH, title)
	if !rl.IsWindowReady() {
		return pit.ErrNoRenderSurface
	}
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	app := NewApp(cfg)
	app.eng.Resize(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
	app.eng.Start()
	defer app.eng.Stop()

	for !rl.WindowShouldClose() {
		app.Update()
		app.Draw()
	}
	return nil
}

func (a *App) Update() {
	if rl.IsWindowResized() {
		a.eng.Resize(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		a.paused = !a.paused
	}
	if rl.IsKeyPressed(rl.KeyB) {
		a.showBounds = !a.showBounds
	}
	if rl.IsKeyPressed(rl.KeyH) {
		a.showHUD = !a.showHUD
	}
	if rl.IsKeyPressed(rl.KeyR) {
		running := a.eng.Running()
		a.eng.Stop()
		a.eng = sim.New(a.cfg)
		a.eng.Resize(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
		if running {
			a.eng.Start()
		}
	}

	a.updatePointer()

	if !a.paused {
		a.eng.Step(float64(rl.GetFrameTime()))
	}
}

// updatePointer ray-casts the mouse through the camera onto the z=0
// plane and feeds the hit to the tracker. A ray parallel to the plane,
// or a cursor outside the window, clears the target.
func (a *App) updatePointer() {
	tr := a.eng.Tracker()
	if !tr.Enabled() {
		return
	}
	if !rl.IsCursorOnScreen() {
		tr.Clear()
		return
	}
	ray := rl.GetMouseRay(rl.GetMousePosition(), a.camera)
	if ray.Direction.Z == 0 {
		tr.Clear()
		return
	}
	t := -ray.Position.Z / ray.Direction.Z
	if t <= 0 {
		tr.Clear()
		return
	}
	tr.SetWorld(pit.Vec3{
		X: float64(ray.Position.X + t*ray.Direction.X),
		Y: float64(ray.Position.Y + t*ray.Direction.Y),
		Z: 0,
	})
}
