package game

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"minigolf/internal/aim"
	"minigolf/internal/assets"
	"minigolf/internal/components"
	"minigolf/internal/config"
	"minigolf/internal/engine"
	"minigolf/internal/golf"
	"minigolf/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var errNoFile = errors.New("no such file")

// newTestGame builds a Game whose assets, input and markers need no window.
func newTestGame(t *testing.T, missing ...string) (*Game, *input.State) {
	t.Helper()
	g := New(config.Default(), "")
	g.Assets = assets.NewManager(func(path string) (rl.Model, error) {
		for _, m := range missing {
			if m == path {
				return rl.Model{}, errNoFile
			}
		}
		return rl.Model{}, nil
	})
	g.Loader = assets.NewLoader(g.Assets)
	g.marker = nil
	g.block = nil
	g.exists = func(string) bool { return true }

	in := &input.State{Viewport: aim.Viewport{Width: 800, Height: 450}}
	g.poll = func() input.State {
		s := *in
		// Edge-triggered fields last one frame
		in.LeftReleased = false
		in.Restart = false
		in.ToggleDebug = false
		in.ToggleFlyCam = false
		return s
	}
	return g, in
}

func runFrames(t *testing.T, g *Game, n int) {
	t.Helper()
	for range n {
		if err := g.Update(1.0 / 60.0); err != nil {
			t.Fatalf("Unexpected update error: %v", err)
		}
	}
}

func TestLoadingEntersInGame(t *testing.T) {
	g, _ := newTestGame(t)

	runFrames(t, g, 1)
	if g.States.Current() != StateLoading {
		t.Errorf("Expected Loading while assets are pending, got %s", g.States.Current())
	}

	runFrames(t, g, 2)
	if g.States.Current() != StateInGame {
		t.Fatalf("Expected InGame once assets loaded, got %s", g.States.Current())
	}

	runFrames(t, g, 1)
	if golf.FindBall(g.World) == nil {
		t.Error("Expected a ball after setup")
	}
	if g.Course == nil || g.Shooter == nil || g.Respawner == nil {
		t.Fatal("Expected course and systems to be set up")
	}
	if len(g.Shooter.Indicators) != 4 {
		t.Errorf("Expected 4 indicators, got %d", len(g.Shooter.Indicators))
	}
	cam, ok := g.ActiveCamera()
	if !ok || cam.Position != (rl.Vector3{Y: 20, Z: 6}) {
		t.Errorf("Expected course camera at (0, 20, 6), got %+v", cam.Position)
	}
}

func TestLoadingFailureStopsTheGame(t *testing.T) {
	g, _ := newTestGame(t, "assets/mini_golf.glb")

	var err error
	for range 3 {
		if err = g.Update(1.0 / 60.0); err != nil {
			break
		}
	}
	if !errors.Is(err, errNoFile) {
		t.Errorf("Expected asset error, got %v", err)
	}
	if g.States.Current() != StateLoading {
		t.Errorf("Expected to stay in Loading, got %s", g.States.Current())
	}
}

func TestMissingModelsUseBuiltinCourse(t *testing.T) {
	g, _ := newTestGame(t)
	g.exists = func(string) bool { return false }
	var marked []float32
	g.marker = func(radius float32) rl.Model {
		marked = append(marked, radius)
		return rl.Model{}
	}

	runFrames(t, g, 2)
	if g.States.Current() != StateInGame {
		t.Fatalf("Expected InGame without model files, got %s", g.States.Current())
	}
	if done, total := g.Loader.Progress(); done != 0 || total != 0 {
		t.Errorf("Expected nothing queued, got %d/%d", done, total)
	}

	floor := engine.GetComponent[*components.MeshCollider](g.Course.Floor)
	wall := engine.GetComponent[*components.MeshCollider](g.Course.Wall)
	if floor.TriangleCount() == 0 || wall.TriangleCount() == 0 {
		t.Errorf("Expected built-in floor and walls, got %d and %d triangles", floor.TriangleCount(), wall.TriangleCount())
	}
	if golf.FindBall(g.World) == nil {
		t.Error("Expected a ball on the built-in course")
	}
	if len(marked) == 0 || marked[0] != g.Config.Ball.Radius {
		t.Errorf("Expected the ball model built at radius %f first, got %v", g.Config.Ball.Radius, marked)
	}
}

func TestMissingBallKeepsLoadedCourse(t *testing.T) {
	g, _ := newTestGame(t)
	g.exists = func(path string) bool { return path == g.Config.Assets.Course }

	runFrames(t, g, 3)
	if g.States.Current() != StateInGame {
		t.Fatalf("Expected InGame, got %s", g.States.Current())
	}
	if len(g.Course.Model.Children) != 0 {
		t.Error("Expected the loaded course model, not the built-in blocks")
	}
	if _, ok := g.Assets.Get(g.Config.Assets.Course); !ok {
		t.Error("Expected the course to come through the asset cache")
	}
	if _, ok := g.Assets.Get(g.Config.Assets.Ball); ok {
		t.Error("Expected the missing ball never to be loaded")
	}
}

func TestDragAndReleaseStrikesBall(t *testing.T) {
	g, in := newTestGame(t)
	runFrames(t, g, 4)

	ball := golf.FindBall(g.World)
	rb := engine.GetComponent[*components.Rigidbody](ball)
	rb.UseGravity = false
	rb.Velocity = rl.Vector3{}

	// Center of the screen looks at the origin
	in.Cursor = rl.Vector2{X: 400, Y: 225}
	in.LeftHeld = true
	runFrames(t, g, 1)

	if _, ok := g.Shooter.AimPoint(); !ok {
		t.Fatal("Expected an aim point under the cursor")
	}
	for _, ind := range g.Shooter.Indicators {
		if !ind.Active {
			t.Error("Expected indicators visible while aiming")
		}
	}

	in.LeftHeld = false
	in.LeftReleased = true
	runFrames(t, g, 1)

	if g.Shooter.Strokes != 1 {
		t.Errorf("Expected one stroke, got %d", g.Shooter.Strokes)
	}
	if rb.Velocity.X >= 0 {
		t.Errorf("Expected ball at x=-6.5 to be driven away from the origin, got %+v", rb.Velocity)
	}
	if rb.Velocity.Y != 0 {
		t.Errorf("Expected a horizontal impulse, got %+v", rb.Velocity)
	}
}

func TestRestartKeyRespawnsAndResetsStrokes(t *testing.T) {
	g, in := newTestGame(t)
	runFrames(t, g, 4)
	first := golf.FindBall(g.World)
	g.Shooter.Strokes = 3

	in.Restart = true
	runFrames(t, g, 1)

	balls := g.World.FindByTag(components.TagBall)
	if len(balls) != 1 || balls[0] == first {
		t.Fatalf("Expected exactly one fresh ball, got %d", len(balls))
	}
	if g.Shooter.Strokes != 0 {
		t.Errorf("Expected strokes reset, got %d", g.Shooter.Strokes)
	}
}

func TestToggles(t *testing.T) {
	g, in := newTestGame(t)
	runFrames(t, g, 4)

	in.ToggleDebug = true
	in.ToggleFlyCam = true
	runFrames(t, g, 1)
	if !g.DebugMode || !g.Flying {
		t.Error("Expected debug and fly camera on")
	}

	in.Fly.Forward = 1
	before := g.FlyCam.Position
	runFrames(t, g, 1)
	if g.FlyCam.Position == before {
		t.Error("Expected fly camera to move")
	}
}

func TestReloadAppliesAndRejects(t *testing.T) {
	g, _ := newTestGame(t)
	runFrames(t, g, 4)

	path := filepath.Join(t.TempDir(), "minigolf.yaml")
	g.ConfigPath = path
	doc := "course:\n  wall: {friction: 0, restitution: 0.9}\nphysics:\n  gravity: -5\nshot:\n  segments: 3\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := g.Reload(); err != nil {
		t.Fatalf("Unexpected reload error: %v", err)
	}
	wall := engine.GetComponent[*components.MeshCollider](g.Course.Wall)
	if wall.Material.Restitution != 0.9 {
		t.Errorf("Expected wall restitution 0.9, got %f", wall.Material.Restitution)
	}
	if g.World.PhysicsWorld.Gravity.Y != -5 {
		t.Errorf("Expected gravity -5, got %f", g.World.PhysicsWorld.Gravity.Y)
	}

	runFrames(t, g, 1)
	if len(g.Shooter.Indicators) != 3 {
		t.Errorf("Expected shooter to pick up 3 segments, got %d", len(g.Shooter.Indicators))
	}

	if err := os.WriteFile(path, []byte("shot:\n  segments: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := g.Reload(); err == nil {
		t.Error("Expected invalid config to be rejected")
	}
	if g.Config.Shot.Segments != 3 {
		t.Errorf("Expected previous config kept, got %d segments", g.Config.Shot.Segments)
	}
}
