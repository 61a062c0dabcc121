package components

import (
	"minigolf/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BoxCollider is an axis-aligned box. Rotation of the owning object is ignored.
type BoxCollider struct {
	engine.BaseComponent
	Size      rl.Vector3
	Offset    rl.Vector3
	Material  PhysicMaterial
	IsTrigger bool // raycasts hit it, bodies pass through
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:   size,
		Offset: rl.Vector3{},
	}
}

// GetCenter returns the world-space center of this collider
func (b *BoxCollider) GetCenter() rl.Vector3 {
	return rl.Vector3Add(b.GetGameObject().WorldPosition(), b.Offset)
}

// GetWorldSize returns the collider size scaled by the object's world scale
func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	scale := b.GetGameObject().WorldScale()
	return rl.Vector3{
		X: abs32(b.Size.X * scale.X),
		Y: abs32(b.Size.Y * scale.Y),
		Z: abs32(b.Size.Z * scale.Z),
	}
}

// Bounds returns the world-space min and max corners.
func (b *BoxCollider) Bounds() AABB {
	center := b.GetCenter()
	half := rl.Vector3Scale(b.GetWorldSize(), 0.5)
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
