package components

import (
	"minigolf/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Camera is a fixed perspective camera that looks at Target from the owning object's position.
type Camera struct {
	engine.BaseComponent
	FOV    float32 // vertical, degrees
	Near   float32
	Far    float32
	Target rl.Vector3
}

func NewCamera() *Camera {
	return &Camera{
		FOV:  45.0,
		Near: 0.1,
		Far:  1000.0,
	}
}

func (c *Camera) GetRaylibCamera() rl.Camera3D {
	g := c.GetGameObject()
	if g == nil {
		return rl.Camera3D{}
	}

	return rl.Camera3D{
		Position:   g.WorldPosition(),
		Target:     c.Target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.FOV,
		Projection: rl.CameraPerspective,
	}
}
