package components

import (
	"math"
	"minigolf/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type SphereCollider struct {
	engine.BaseComponent
	Radius   float32
	Offset   rl.Vector3
	Material PhysicMaterial
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{
		Radius: radius,
		Offset: rl.Vector3{},
	}
}

// GetCenter returns the world-space center of this collider
func (s *SphereCollider) GetCenter() rl.Vector3 {
	g := s.GetGameObject()
	return rl.Vector3Add(g.WorldPosition(), s.Offset)
}

func (s *SphereCollider) Volume() float32 {
	r := float64(s.Radius)
	return float32(4.0 / 3.0 * math.Pi * r * r * r)
}

// MassFromDensity returns the mass of a solid sphere of this radius.
func (s *SphereCollider) MassFromDensity(density float32) float32 {
	return density * s.Volume()
}
