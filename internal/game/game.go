package game

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"minigolf/internal/aim"
	"minigolf/internal/assets"
	"minigolf/internal/camera"
	"minigolf/internal/components"
	"minigolf/internal/config"
	"minigolf/internal/engine"
	"minigolf/internal/golf"
	"minigolf/internal/input"
	"minigolf/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Game struct {
	Config     *config.Config
	ConfigPath string
	World      *world.World
	Assets     *assets.Manager
	Loader     *assets.Loader
	States     *StateMachine

	Course    *golf.Course
	Shooter   *golf.Shooter
	Respawner *golf.Respawner
	FlyCam    *camera.FlyCamera

	DebugMode bool
	Flying    bool

	marker  golf.MarkerFunc
	block   golf.BlockFunc
	exists  func(path string) bool
	poll    func() input.State
	watcher *config.Watcher

	// Generated models not owned by the asset cache
	builtin []rl.Model

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

func New(cfg *config.Config, configPath string) *Game {
	g := &Game{
		Config:     cfg,
		ConfigPath: configPath,
		World:      world.New(),
		Assets:     assets.NewManager(nil),
		marker:     sphereMarker,
		block:      cubeBlock,
		exists:     fileExists,
	}
	g.Loader = assets.NewLoader(g.Assets)
	g.poll = func() input.State {
		return input.Poll(input.DefaultBindings(g.Config.RestartKey()))
	}

	g.States = NewStateMachine(StateLoading)
	g.States.OnEnter(StateLoading, g.enterLoading)
	g.States.OnUpdate(StateLoading, g.updateLoading)
	g.States.OnEnter(StateInGame, g.enterInGame)
	g.States.OnUpdate(StateInGame, g.updateInGame)
	return g
}

// sphereMarker builds one power indicator mesh.
func sphereMarker(radius float32) rl.Model {
	return rl.LoadModelFromMesh(rl.GenMeshSphere(radius, 12, 12))
}

func cubeBlock(size rl.Vector3) rl.Model {
	return rl.LoadModelFromMesh(rl.GenMeshCube(size.X, size.Y, size.Z))
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Run opens the window and runs the frame loop until the window closes or
// asset loading fails.
func (g *Game) Run() error {
	win := g.Config.Window
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(win.Width, win.Height, win.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(win.TargetFPS)

	defer g.Assets.Unload()
	defer g.unloadBuiltin()
	defer g.World.Unload()

	g.startWatcher()
	defer g.stopWatcher()

	for !rl.WindowShouldClose() {
		if err := g.Update(rl.GetFrameTime()); err != nil {
			return err
		}
		g.Draw()
	}
	return nil
}

func (g *Game) Update(deltaTime float32) error {
	updateStart := time.Now()
	err := g.States.Update(deltaTime)
	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
	return err
}

// enterLoading queues the model files that exist. Missing ones are replaced
// by built-in geometry when entering InGame.
func (g *Game) enterLoading() error {
	for _, path := range []string{g.Config.Assets.Course, g.Config.Assets.Ball} {
		if !g.exists(path) {
			log.Printf("Assets: %s not found, using built-in model", path)
			continue
		}
		g.Loader.Queue(path)
	}
	return nil
}

func (g *Game) updateLoading(float32) error {
	switch g.Loader.Poll() {
	case assets.Failed:
		return fmt.Errorf("game: loading assets: %w", g.Loader.Err())
	case assets.Loaded, assets.NotLoaded:
		// NotLoaded means nothing was queued
		log.Printf("Game: assets loaded, entering %s", StateInGame)
		g.States.Set(StateInGame)
	}
	return nil
}

func (g *Game) enterInGame() error {
	g.World.PhysicsWorld.Gravity = rl.Vector3{Y: g.Config.Physics.Gravity}

	if courseModel, ok := g.Loader.Model(g.Config.Assets.Course); ok {
		g.Course = golf.BuildCourse(g.World, courseModel, g.Config)
	} else {
		g.Course = golf.BuildBlockCourse(g.World, golf.DefaultBlocks(), g.Config, g.block)
	}
	ballModel, ok := g.Loader.Model(g.Config.Assets.Ball)
	if !ok {
		ballModel = g.builtinBall()
	}
	log.Printf("Game: course has %d floor and %d wall triangles",
		engine.GetComponent[*components.MeshCollider](g.Course.Floor).TriangleCount(),
		engine.GetComponent[*components.MeshCollider](g.Course.Wall).TriangleCount())

	g.spawnCamera()

	g.Respawner = golf.NewRespawner(g.World, ballModel, g.Config)
	golf.SpawnBall(g.World, ballModel, g.Config)

	g.Shooter = golf.NewShooter(g.World, g.Config, g.marker)
	g.Respawner.OnRespawn.AddListener(func(*engine.GameObject) {
		g.Shooter.Reset()
		g.Shooter.Strokes = 0
	})
	return nil
}

// builtinBall is a plain sphere sized to the configured ball radius.
func (g *Game) builtinBall() rl.Model {
	if g.marker == nil {
		return rl.Model{}
	}
	model := g.marker(g.Config.Ball.Radius)
	g.builtin = append(g.builtin, model)
	return model
}

func (g *Game) unloadBuiltin() {
	for _, model := range g.builtin {
		rl.UnloadModel(model)
	}
	g.builtin = nil
}

func (g *Game) spawnCamera() {
	cfg := g.Config.Camera
	obj := engine.NewGameObject("Camera")
	obj.Transform.Position = cfg.Position.Raylib()
	cam := components.NewCamera()
	cam.FOV = cfg.FOV
	cam.Target = cfg.Target.Raylib()
	obj.AddComponent(cam)
	g.World.SpawnObject(obj)

	g.FlyCam = camera.New(obj.Transform.Position)
	g.FlyCam.FOV = cfg.FOV
	g.FlyCam.LookAt(cfg.Position.Raylib(), cfg.Target.Raylib())
}

func (g *Game) updateInGame(deltaTime float32) error {
	g.step(g.poll(), deltaTime)
	return nil
}

// step runs one gameplay frame: aim and shoot, restart, physics, then config reload.
func (g *Game) step(in input.State, deltaTime float32) {
	if in.ToggleDebug {
		g.DebugMode = !g.DebugMode
	}
	if in.ToggleFlyCam {
		g.Flying = !g.Flying
		log.Printf("Game: fly camera %v", g.Flying)
	}
	if g.Flying && g.FlyCam != nil {
		g.FlyCam.Update(deltaTime, in.Fly)
	}

	pointer := golf.Pointer{Held: in.LeftHeld, Released: in.LeftReleased}
	if cam, ok := g.ActiveCamera(); ok {
		pointer.Ray, pointer.HasRay = aim.ScreenRay(cam, in.Cursor, in.Viewport)
	}
	g.Shooter.Update(pointer)
	g.Respawner.Update(in.Restart)

	g.World.Update(deltaTime)

	g.checkReload()
}

// ActiveCamera is the fly camera when enabled, the course camera otherwise.
func (g *Game) ActiveCamera() (rl.Camera3D, bool) {
	if g.Flying && g.FlyCam != nil {
		return g.FlyCam.GetRaylibCamera(), true
	}
	return g.World.Camera()
}

func (g *Game) Draw() {
	drawStart := time.Now()
	rl.BeginDrawing()
	rl.ClearBackground(rl.RayWhite)

	if g.States.Current() == StateInGame {
		if cam, ok := g.ActiveCamera(); ok {
			rl.BeginMode3D(cam)
			g.World.Draw()
			if g.DebugMode {
				g.drawDebug3D()
			}
			rl.EndMode3D()
		}
	}

	if g.DebugMode {
		rl.DrawFPS(10, 10)
		strokes := 0
		if g.Shooter != nil {
			strokes = g.Shooter.Strokes
		}
		rl.DrawText(fmt.Sprintf("Strokes: %d  Update: %.2fms  Draw: %.2fms", strokes, g.updateMs, g.drawMs), 10, 34, 20, rl.DarkGray)
	}

	rl.EndDrawing()
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0
}

func (g *Game) drawDebug3D() {
	if g.Shooter != nil {
		if p, ok := g.Shooter.AimPoint(); ok {
			rl.DrawSphereWires(p, 0.1, 8, 8, rl.Red)
		}
	}
	if ball := golf.FindBall(g.World); ball != nil {
		if sphere := engine.GetComponent[*components.SphereCollider](ball); sphere != nil {
			rl.DrawSphereWires(sphere.GetCenter(), sphere.Radius, 8, 8, rl.Green)
		}
	}
	if g.Course != nil {
		if box := engine.GetComponent[*components.BoxCollider](g.Course.ClickPlane); box != nil {
			b := box.Bounds()
			rl.DrawBoundingBox(rl.BoundingBox{Min: b.Min, Max: b.Max}, rl.SkyBlue)
		}
	}
}

func (g *Game) startWatcher() {
	if g.ConfigPath == "" {
		return
	}
	w, err := config.NewWatcher(filepath.Dir(g.ConfigPath))
	if err != nil {
		log.Printf("Config: hot reload disabled: %v", err)
		return
	}
	g.watcher = w
}

func (g *Game) stopWatcher() {
	if g.watcher != nil {
		_ = g.watcher.Close()
		g.watcher = nil
	}
}

func (g *Game) checkReload() {
	if g.watcher == nil {
		return
	}
	for _, err := range g.watcher.DrainErrors() {
		log.Printf("Config: watcher error: %v", err)
	}
	if g.watcher.Changed(g.ConfigPath) {
		_ = g.Reload()
	}
}

// Reload re-reads the config file. On error the current config is kept.
func (g *Game) Reload() error {
	next, err := config.Load(g.ConfigPath)
	if err != nil {
		log.Printf("Config: reload rejected: %v", err)
		return err
	}
	g.apply(next)
	log.Printf("Config: reloaded %s", g.ConfigPath)
	return nil
}

// apply copies next into the shared config and pushes the live tunables.
// Window and asset settings apply on the next launch; spawn on the next restart.
func (g *Game) apply(next *config.Config) {
	*g.Config = *next

	g.World.PhysicsWorld.Gravity = rl.Vector3{Y: g.Config.Physics.Gravity}
	if g.Course != nil {
		g.Course.Apply(g.Config)
	}

	if obj := g.World.CameraObject; obj != nil {
		obj.Transform.Position = g.Config.Camera.Position.Raylib()
		if cam := engine.GetComponent[*components.Camera](obj); cam != nil {
			cam.FOV = g.Config.Camera.FOV
			cam.Target = g.Config.Camera.Target.Raylib()
		}
	}

	if ball := golf.FindBall(g.World); ball != nil {
		if sphere := engine.GetComponent[*components.SphereCollider](ball); sphere != nil {
			sphere.Material = g.Config.Ball.Material.Physic()
		}
		if rb := engine.GetComponent[*components.Rigidbody](ball); rb != nil {
			rb.LinearDamping = g.Config.Ball.LinearDamping
		}
	}
}
