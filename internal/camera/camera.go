package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// FlyInput is one frame of fly camera controls. Axes are in [-1, 1]; Look is
// the mouse delta in pixels.
type FlyInput struct {
	Forward float32
	Right   float32
	Up      float32
	Look    rl.Vector2
}

// FlyCamera is a free-look debug camera for inspecting the course.
type FlyCamera struct {
	Position  rl.Vector3
	Yaw       float32 // degrees, 0 looks down +X
	Pitch     float32 // degrees
	FOV       float32
	MoveSpeed float32
	LookSpeed float32
}

func New(pos rl.Vector3) *FlyCamera {
	return &FlyCamera{
		Position:  pos,
		Yaw:       -90.0,
		Pitch:     -60.0,
		FOV:       45.0,
		MoveSpeed: 8.0, // Units per second
		LookSpeed: 0.1,
	}
}

// LookAt points the camera from pos towards target.
func (c *FlyCamera) LookAt(pos, target rl.Vector3) {
	c.Position = pos
	d := rl.Vector3Subtract(target, pos)
	if rl.Vector3Length(d) == 0 {
		return
	}
	d = rl.Vector3Normalize(d)
	c.Yaw = float32(math.Atan2(float64(d.Z), float64(d.X)) * 180 / math.Pi)
	c.Pitch = float32(math.Asin(float64(d.Y)) * 180 / math.Pi)
	c.clampPitch()
}

func (c *FlyCamera) Update(deltaTime float32, in FlyInput) {
	c.Yaw += in.Look.X * c.LookSpeed
	c.Pitch -= in.Look.Y * c.LookSpeed
	c.clampPitch()

	forward, right := c.getDirections()

	// Build movement from input
	var moveDir rl.Vector3
	moveDir = rl.Vector3Add(moveDir, rl.Vector3Scale(forward, in.Forward))
	moveDir = rl.Vector3Add(moveDir, rl.Vector3Scale(right, in.Right))
	moveDir.Y += in.Up

	// Normalize diagonal movement so you don't go faster diagonally
	if rl.Vector3Length(moveDir) > 1 {
		moveDir = rl.Vector3Normalize(moveDir)
	}

	c.Position = rl.Vector3Add(c.Position, rl.Vector3Scale(moveDir, c.MoveSpeed*deltaTime))
}

func (c *FlyCamera) clampPitch() {
	if c.Pitch > 89 {
		c.Pitch = 89
	}
	if c.Pitch < -89 {
		c.Pitch = -89
	}
}

// getDirections returns the horizontal forward and right vectors
func (c *FlyCamera) getDirections() (forward, right rl.Vector3) {
	yawRad := float64(c.Yaw) * math.Pi / 180
	forward = rl.Vector3{
		X: float32(math.Cos(yawRad)),
		Y: 0,
		Z: float32(math.Sin(yawRad)),
	}
	right = rl.Vector3{
		X: float32(-math.Sin(yawRad)),
		Y: 0,
		Z: float32(math.Cos(yawRad)),
	}
	return
}

func (c *FlyCamera) GetRaylibCamera() rl.Camera3D {
	yawRad := float64(c.Yaw) * math.Pi / 180
	pitchRad := float64(c.Pitch) * math.Pi / 180

	target := rl.Vector3{
		X: c.Position.X + float32(math.Cos(yawRad)*math.Cos(pitchRad)),
		Y: c.Position.Y + float32(math.Sin(pitchRad)),
		Z: c.Position.Z + float32(math.Sin(yawRad)*math.Cos(pitchRad)),
	}

	return rl.Camera3D{
		Position:   c.Position,
		Target:     target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.FOV,
		Projection: rl.CameraPerspective,
	}
}
