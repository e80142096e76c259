package main

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/spacefabric/debugui"
	debugui_ebiten "github.com/plus3/spacefabric/debugui/ebiten"
	"github.com/plus3/spacefabric/render"
	"github.com/plus3/spacefabric/scene"
)

const wheelMassStep = 0.05

// Game implements ebiten.Game: input feeds the probe, the scheduler deforms
// the fabric and Draw strokes it.
type Game struct {
	Scene     *scene.Scene
	Scheduler *scene.Scheduler
	Fabric    *render.FabricRenderer
	Stars     render.StarRenderer

	// Nil when the debug UI is disabled.
	Imgui *debugui_ebiten.ImguiBackend
	UI    *debugui.System

	projector  render.Projector
	width      int
	height     int
	lastUpdate time.Time
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.handleInput()

	now := time.Now()
	var dt float64
	if !g.lastUpdate.IsZero() {
		dt = now.Sub(g.lastUpdate).Seconds()
	}
	g.lastUpdate = now

	if g.Imgui != nil {
		g.Imgui.BeginFrame()
	}
	g.Scheduler.Once(dt)
	if g.Imgui != nil {
		g.Imgui.EndFrame()
	}
	return nil
}

func (g *Game) handleInput() {
	if g.UI != nil && g.UI.Input.WantCaptureKeyboard {
		return
	}
	probe := &g.Scene.Probe
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		probe.Enabled = !probe.Enabled
	}

	if g.UI != nil && g.UI.Input.WantCaptureMouse {
		return
	}
	if g.width > 0 {
		cx, cy := ebiten.CursorPosition()
		probe.Position = g.projector.Unproject(float32(cx), float32(cy))
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		probe.Mass = max(0, probe.Mass+wy*wheelMassStep)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	g.Fabric.Draw(screen, g.Scene.Mesh, g.projector)
	g.Stars.Draw(screen, g.Scene, g.projector)

	if g.Imgui != nil {
		g.Imgui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.Imgui != nil {
		g.Imgui.Layout(outsideWidth, outsideHeight)
	}
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.projector = render.Fit(g.Scene.Mesh, outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
