package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/spacefabric/debugui"
	debugui_ebiten "github.com/plus3/spacefabric/debugui/ebiten"
	"github.com/plus3/spacefabric/fabric"
	"github.com/plus3/spacefabric/render"
	"github.com/plus3/spacefabric/scene"
	"github.com/plus3/spacefabric/star"
)

const (
	windowTitle = "Space Fabric"
	sunRadius   = 0.08
)

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	f, err := parseFlags(fs, os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to parse flags: %v", err)
	}
	opts, err := f.meshOptions(fs)
	if err != nil {
		log.Fatalf("Invalid fabric options: %v", err)
	}

	mesh, err := fabric.New(opts)
	if err != nil {
		log.Fatalf("Failed to build fabric: %v", err)
	}
	log.Printf("Fabric %dx%d, spacing %g, %s falloff, epsilon %g", opts.Rows, opts.Columns, opts.Spacing, opts.Falloff, opts.Epsilon)

	sc := scene.New(mesh)
	if !f.hideSun {
		sun := star.New(fabric.Vec2{}, sunRadius, float32(f.sunMass))
		sc.Add(sun)
		log.Printf("Sun: %.2f solar masses, class %s", sun.Mass, sun.Class())
	}
	sc.Probe = scene.Probe{Enabled: true, Mass: f.probe}

	game := &Game{
		Scene:     sc,
		Scheduler: scene.NewScheduler(sc),
		Fabric:    &render.FabricRenderer{Shaded: !f.noShade, Width: float32(f.lineSize)},
	}
	game.Scheduler.Register(&scene.DeformSystem{})
	game.Scheduler.Register(&scene.MetricsSystem{})

	if f.debug {
		game.Imgui = debugui_ebiten.NewImguiBackend(windowTitle, f.width, f.height)
		game.UI = &debugui.System{}
		game.UI.Add(debugui.FabricPanel(sc, game.Fabric))
		game.UI.Add(debugui.PerformancePanel(sc, game.Scheduler))
		game.Scheduler.Register(game.UI)
	} else {
		ebiten.SetWindowSize(f.width, f.height)
		ebiten.SetWindowTitle(windowTitle)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
