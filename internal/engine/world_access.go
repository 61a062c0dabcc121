package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// RaycastResult holds information about a raycast hit.
// Defined here to avoid circular imports with physics package.
type RaycastResult struct {
	GameObject *GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// QueryFilter narrows which colliders a raycast may hit.
type QueryFilter struct {
	ExcludeDynamic bool // skip objects with a Rigidbody
	ExcludeSensors bool // skip trigger colliders
	Exclude        *GameObject
}

// WorldAccess provides world-level operations to code that must not import the world package.
type WorldAccess interface {
	SpawnObject(g *GameObject)
	Destroy(g *GameObject)
	Raycast(origin, direction rl.Vector3, maxDistance float32, filter QueryFilter) (RaycastResult, bool)
}
