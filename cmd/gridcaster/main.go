package main

import (
	"flag"
	"log"

	"github.com/jdeal-mediamath/clockwork"

	"chosenoffset.com/gridcaster/internal/config"
	"chosenoffset.com/gridcaster/internal/game"
	"chosenoffset.com/gridcaster/internal/render"
	ebitenrender "chosenoffset.com/gridcaster/internal/render/ebiten"
	terminalrender "chosenoffset.com/gridcaster/internal/render/terminal"
	"chosenoffset.com/gridcaster/internal/world"
)

func main() {
	// Command-line flags
	worldFile := flag.String("world", "data/loop.json", "World file to load")
	configFile := flag.String("config", "data/config.json", "Config file to load")
	backend := flag.String("backend", "ebiten", "Render backend: ebiten or terminal")
	debug := flag.Bool("debug", false, "Enable the top-down debug overlay")
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *debug {
		cfg.DebugOverlay = true
	}

	log.Printf("Loading world: %s", *worldFile)
	w, err := world.LoadWorld(*worldFile)
	if err != nil {
		log.Fatalf("Failed to load world: %v", err)
	}
	log.Printf("Loaded world: %s (%d wall cells)", w.Data.Name, w.Walls.Len())

	clock := clockwork.NewRealClock()

	var (
		renderer render.Renderer
		inputMgr render.InputManager
		engine   render.Engine
	)
	switch *backend {
	case "ebiten":
		renderer = ebitenrender.NewRenderer()
		inputMgr = ebitenrender.NewInputManager()
		engine = ebitenrender.NewEngine(clock)
	case "terminal":
		termInput := terminalrender.NewInputManager()
		renderer = terminalrender.NewRenderer()
		inputMgr = termInput
		engine = terminalrender.NewEngine(clock, termInput)
	default:
		log.Fatalf("Unknown backend: %s", *backend)
	}

	g := game.NewGame(cfg, w, renderer, inputMgr)

	engine.SetWindowSize(800, 600)
	engine.SetWindowTitle("Gridcaster - WASD to move, arrows to turn")

	log.Printf("Starting game...")
	if err := engine.Run(g); err != nil {
		log.Fatal(err)
	}
}
