package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colBg     = rl.NewColor(12, 12, 16, 255)
	colBounds = rl.NewColor(70, 70, 90, 255)
	colCursor = rl.NewColor(255, 255, 255, 90)
	colText   = rl.NewColor(140, 140, 150, 255)
)

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(colBg)

	rl.BeginMode3D(a.camera)
	a.drawParticles()
	if a.showBounds {
		a.drawBounds()
	}
	a.drawCursor()
	rl.EndMode3D()

	if a.showHUD {
		a.drawHUD()
	}
	rl.EndDrawing()
}

func (a *App) drawParticles() {
	for _, p := range a.eng.Particles() {
		col := rl.White
		if len(a.palette) > 0 {
			col = a.palette[p.Color%len(a.palette)]
		}
		pos := rl.NewVector3(float32(p.Pos.X), float32(p.Pos.Y), float32(p.Pos.Z))
		rl.DrawSphere(pos, float32(p.Radius), col)
	}
}

func (a *App) drawBounds() {
	b := a.eng.Bounds()
	size := b.Size()
	c := b.Center()
	rl.DrawCubeWires(
		rl.NewVector3(float32(c.X), float32(c.Y), float32(c.Z)),
		float32(size.X), float32(size.Y), float32(size.Z),
		colBounds)
}

func (a *App) drawCursor() {
	if target, ok := a.eng.Tracker().Target(); ok {
		pos := rl.NewVector3(float32(target.X), float32(target.Y), float32(target.Z))
		rl.DrawSphere(pos, 0.25, colCursor)
	}
}

func (a *App) drawHUD() {
	status := "running"
	if a.paused {
		status = "paused"
	}
	line := fmt.Sprintf("%d balls  %d fps  frame %d  %s",
		len(a.eng.Particles()), rl.GetFPS(), a.eng.Frames(), status)
	rl.DrawText(line, 12, 12, 18, colText)
	rl.DrawText("SPACE pause  R respawn  B bounds  H hud", 12, int32(rl.GetScreenHeight())-28, 16, colText)
}
