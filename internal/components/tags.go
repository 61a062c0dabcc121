package components

import "minigolf/internal/engine"

const (
	TagBall           = "ball"
	TagPowerIndicator = "power_indicator"
)

// Ball marks the player's ball.
type Ball struct {
	engine.BaseComponent
}

// PowerIndicator marks one marker of the aim line. Segment counts from 1 at the ball outward.
type PowerIndicator struct {
	engine.BaseComponent
	Segment int
}
