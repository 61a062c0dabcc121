package aim

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Clip distances used by rl.BeginMode3D for perspective cameras.
const (
	cullNear = 0.01
	cullFar  = 1000.0
)

// Viewport is the screen rectangle the camera renders into, in pixels.
type Viewport struct {
	X, Y          float32
	Width, Height float32
}

// ScreenRay builds the world-space ray under cursor. It does the same NDC
// unprojection as rl.GetScreenToWorldRay but takes the viewport explicitly,
// so it needs no open window.
func ScreenRay(cam rl.Camera3D, cursor rl.Vector2, vp Viewport) (rl.Ray, bool) {
	if vp.Width <= 0 || vp.Height <= 0 {
		return rl.Ray{}, false
	}

	x := 2*(cursor.X-vp.X)/vp.Width - 1
	y := 1 - 2*(cursor.Y-vp.Y)/vp.Height

	view := rl.MatrixLookAt(cam.Position, cam.Target, cam.Up)
	proj := rl.MatrixPerspective(cam.Fovy*rl.Deg2rad, vp.Width/vp.Height, cullNear, cullFar)
	inv := rl.MatrixInvert(rl.MatrixMultiply(view, proj))

	near := unproject(rl.Vector3{X: x, Y: y, Z: 0}, inv)
	far := unproject(rl.Vector3{X: x, Y: y, Z: 1}, inv)
	dir := rl.Vector3Subtract(far, near)
	if rl.Vector3Length(dir) == 0 {
		return rl.Ray{}, false
	}

	return rl.Ray{Position: cam.Position, Direction: rl.Vector3Normalize(dir)}, true
}

// unproject maps an NDC point through the inverse view-projection matrix.
func unproject(p rl.Vector3, inv rl.Matrix) rl.Vector3 {
	x := inv.M0*p.X + inv.M4*p.Y + inv.M8*p.Z + inv.M12
	y := inv.M1*p.X + inv.M5*p.Y + inv.M9*p.Z + inv.M13
	z := inv.M2*p.X + inv.M6*p.Y + inv.M10*p.Z + inv.M14
	w := inv.M3*p.X + inv.M7*p.Y + inv.M11*p.Z + inv.M15
	if w == 0 {
		return rl.Vector3{X: x, Y: y, Z: z}
	}
	return rl.Vector3{X: x / w, Y: y / w, Z: z / w}
}
