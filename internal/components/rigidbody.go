package components

import (
	"minigolf/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Sleep thresholds
const (
	SleepVelocityThreshold = 0.05 // units/sec - below this, object might sleep
	SleepTimeThreshold     = 0.5  // seconds of low velocity before sleeping
)

type Rigidbody struct {
	engine.BaseComponent
	Velocity      rl.Vector3
	Mass          float32
	LinearDamping float32 // fraction of velocity removed per second
	UseGravity    bool
	CCD           bool // sub-step integration so fast bodies can't tunnel through thin geometry

	// Sleep state - sleeping objects skip physics simulation
	IsSleeping bool
	sleepTimer float32
	CanSleep   bool
	Grounded   bool // set by the physics world when touching an upward-facing surface
}

func NewRigidbody() *Rigidbody {
	return &Rigidbody{
		Mass:       1.0,
		UseGravity: true,
		CanSleep:   true,
	}
}

// ApplyImpulse changes velocity by impulse/mass and wakes the body.
func (r *Rigidbody) ApplyImpulse(impulse rl.Vector3) {
	if r.Mass <= 0 {
		return
	}
	r.Velocity = rl.Vector3Add(r.Velocity, rl.Vector3Scale(impulse, 1/r.Mass))
	r.Wake()
}

// Wake forces the rigidbody out of sleep state
func (r *Rigidbody) Wake() {
	r.IsSleeping = false
	r.sleepTimer = 0
}

// TrySleep puts the body to sleep once it has rested on the ground long enough.
func (r *Rigidbody) TrySleep(deltaTime float32) {
	if !r.CanSleep || r.IsSleeping {
		return
	}

	if r.Grounded && rl.Vector3Length(r.Velocity) < SleepVelocityThreshold {
		r.sleepTimer += deltaTime
		if r.sleepTimer >= SleepTimeThreshold {
			r.IsSleeping = true
			r.Velocity = rl.Vector3{}
		}
	} else {
		r.sleepTimer = 0
	}
}
