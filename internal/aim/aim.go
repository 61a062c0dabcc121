// Package aim turns a cursor hit point into the power indicator layout and
// the impulse applied to the ball.
package aim

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Power is the ball-to-hit distance clamped to [0, maxDist].
func Power(ball, hit rl.Vector3, maxDist float32) float32 {
	d := rl.Vector3Distance(ball, hit)
	if d > maxDist {
		d = maxDist
	}
	return d
}

// Angle is the heading from ball to hit in the XZ plane, in radians.
func Angle(ball, hit rl.Vector3) float32 {
	return float32(math.Atan2(float64(hit.Z-ball.Z), float64(hit.X-ball.X)))
}

// Markers returns the indicator positions for segments 1..segments, evenly
// spaced from the ball towards hit and held at the ball's height.
func Markers(ball, hit rl.Vector3, segments int, maxDist float32) []rl.Vector3 {
	if segments <= 0 {
		return nil
	}

	dist := Power(ball, hit, maxDist)
	angle := float64(Angle(ball, hit))
	segX := float32(math.Cos(angle)) * dist / float32(segments)
	segZ := float32(math.Sin(angle)) * dist / float32(segments)

	out := make([]rl.Vector3, segments)
	for i := 1; i <= segments; i++ {
		out[i-1] = rl.Vector3{
			X: ball.X + segX*float32(i),
			Y: ball.Y,
			Z: ball.Z + segZ*float32(i),
		}
	}
	return out
}

// Impulse is ball minus aim with Y dropped, scaled, and clamped to maxLen.
// The ball travels away from the point the player dragged to.
func Impulse(ball, aim rl.Vector3, scale, maxLen float32) rl.Vector3 {
	diff := rl.Vector3Subtract(ball, aim)
	diff.Y = 0
	diff = rl.Vector3Scale(diff, scale)

	if maxLen > 0 {
		if l := rl.Vector3Length(diff); l > maxLen {
			diff = rl.Vector3Scale(diff, maxLen/l)
		}
	}
	return diff
}
