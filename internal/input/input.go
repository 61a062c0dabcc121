// Package input snapshots raylib's keyboard and mouse state once per frame.
package input

import (
	"minigolf/internal/aim"
	"minigolf/internal/camera"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Bindings struct {
	Restart      int32
	ToggleDebug  int32
	ToggleFlyCam int32
}

func DefaultBindings(restart int32) Bindings {
	return Bindings{
		Restart:      restart,
		ToggleDebug:  rl.KeyF1,
		ToggleFlyCam: rl.KeyF2,
	}
}

type State struct {
	Cursor       rl.Vector2
	Viewport     aim.Viewport
	LeftHeld     bool
	LeftReleased bool
	Restart      bool
	ToggleDebug  bool
	ToggleFlyCam bool
	Fly          camera.FlyInput
}

// Poll reads the current frame. Must be called from the window thread.
func Poll(b Bindings) State {
	s := State{
		Cursor: rl.GetMousePosition(),
		Viewport: aim.Viewport{
			Width:  float32(rl.GetScreenWidth()),
			Height: float32(rl.GetScreenHeight()),
		},
		LeftHeld:     rl.IsMouseButtonDown(rl.MouseButtonLeft),
		LeftReleased: rl.IsMouseButtonReleased(rl.MouseButtonLeft),
		Restart:      rl.IsKeyPressed(b.Restart),
		ToggleDebug:  rl.IsKeyPressed(b.ToggleDebug),
		ToggleFlyCam: rl.IsKeyPressed(b.ToggleFlyCam),
	}

	s.Fly.Forward = axis(rl.KeyW, rl.KeyS)
	s.Fly.Right = axis(rl.KeyD, rl.KeyA)
	s.Fly.Up = axis(rl.KeyE, rl.KeyQ)
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		s.Fly.Look = rl.GetMouseDelta()
	}
	return s
}

func axis(positive, negative int32) float32 {
	var v float32
	if rl.IsKeyDown(positive) {
		v++
	}
	if rl.IsKeyDown(negative) {
		v--
	}
	return v
}
