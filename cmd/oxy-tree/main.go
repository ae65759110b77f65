package main

import (
	"flag"
	"log"
	"math"

	"github.com/Carmen-Shannon/oxy-tree/engine"
	"github.com/Carmen-Shannon/oxy-tree/engine/audio"
	"github.com/Carmen-Shannon/oxy-tree/engine/camera"
	"github.com/Carmen-Shannon/oxy-tree/engine/config"
	"github.com/Carmen-Shannon/oxy-tree/engine/overlay"
	"github.com/Carmen-Shannon/oxy-tree/engine/renderer"
	"github.com/Carmen-Shannon/oxy-tree/engine/scene"
	"github.com/Carmen-Shannon/oxy-tree/engine/tree"
	"github.com/Carmen-Shannon/oxy-tree/engine/window"
)

var (
	configPath = flag.String("config", "", "path to a YAML scene config")
	profile    = flag.Bool("profile", false, "log frame and memory stats once per second")
	frameLimit = flag.Float64("fps", 0, "frame rate cap, 0 for uncapped")
	software   = flag.Bool("software", false, "force the fallback software adapter")
	cycle      = flag.Float64("cycle", 0, "seconds between automatic scatter toggles, 0 to disable")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("[Config] %v", err)
	}
	background, err := cfg.BackgroundColor()
	if err != nil {
		log.Fatalf("[Config] %v", err)
	}

	t, err := tree.NewTree(cfg)
	if err != nil {
		log.Fatalf("[Tree] %v", err)
	}

	// ── Window + Renderer ───────────────────────────────────────────────
	win := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithWidth(cfg.Window.Width),
		window.WithHeight(cfg.Window.Height),
	)

	presentMode := renderer.PresentModeUncapped
	if cfg.Window.VSync {
		presentMode = renderer.PresentModeVSync
	}
	r := renderer.NewRenderer(
		renderer.BackendTypeWGPU,
		win,
		renderer.WithPresentMode(presentMode),
		renderer.WithMSAA(renderer.ParseMSAA(cfg.Window.MSAA)),
		renderer.WithClearColor(background),
		renderer.WithForceSoftwareRenderer(*software),
	)

	// ── Camera ──────────────────────────────────────────────────────────
	eye := cfg.Camera.Position
	cam := camera.NewCamera(
		camera.WithFov(cfg.Camera.FOV*math.Pi/180),
		camera.WithAspect(float32(win.Width())/float32(win.Height())),
		camera.WithController(camera.NewOrbitController(
			camera.WithEyePosition(eye.X, eye.Y, eye.Z),
			camera.WithRadiusBounds(cfg.Camera.MinDistance, cfg.Camera.MaxDistance),
			camera.WithPolarBounds(cfg.Camera.MinPolar*math.Pi/180, cfg.Camera.MaxPolar*math.Pi/180),
			camera.WithAutoRotate(cfg.Camera.AutoRotateSpeed),
		)),
	)

	// ── Scene ───────────────────────────────────────────────────────────
	sc := scene.NewScene(r, cam, t, scene.WithName("Christmas Tree"))
	if err := sc.Init(); err != nil {
		log.Fatalf("[Scene] %v", err)
	}

	// ── Audio ───────────────────────────────────────────────────────────
	player := audio.NewPlayer(
		audio.WithEnabled(cfg.Audio.Enabled),
		audio.WithVolume(cfg.Audio.Volume),
	)
	if err := player.Init(); err != nil {
		log.Printf("[Audio] %v, continuing without sound", err)
	}

	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithScene(0, sc),
		engine.WithPlayer(player),
		engine.WithOverlay(overlay.NewOverlay(t.State(), overlay.WithTitle(cfg.Window.Title))),
		engine.WithProfiling(*profile),
		engine.WithRenderFrameLimit(*frameLimit),
	)
	if *cycle > 0 {
		eng.SetTickCallback(engine.AutoToggle(eng, float32(*cycle)))
	}
	eng.Run()
}
