package world

import (
	"minigolf/internal/components"
	"minigolf/internal/engine"
	"minigolf/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// World owns the scene graph, the physics world and the active camera.
type World struct {
	Scene        *engine.Scene
	PhysicsWorld *physics.PhysicsWorld
	CameraObject *engine.GameObject
}

func New() *World {
	return &World{
		Scene:        engine.NewScene("Course"),
		PhysicsWorld: physics.NewPhysicsWorld(),
	}
}

// SpawnObject adds g and its descendants to the scene, registers anything
// with a collider or rigidbody with physics, and starts them.
func (w *World) SpawnObject(g *engine.GameObject) {
	w.Scene.AddGameObject(g)
	if hasPhysics(g) {
		w.PhysicsWorld.AddObject(g)
	}
	if cam := engine.GetComponent[*components.Camera](g); cam != nil && w.CameraObject == nil {
		w.CameraObject = g
	}
	g.Start()

	for _, child := range g.Children {
		w.SpawnObject(child)
	}
}

// Destroy removes g and its descendants from the scene and physics and
// releases resources held by their components.
func (w *World) Destroy(g *engine.GameObject) {
	for _, child := range g.Children {
		w.Destroy(child)
	}

	w.PhysicsWorld.RemoveObject(g)
	for _, c := range g.Components() {
		if u, ok := c.(engine.Unloader); ok {
			u.Unload()
		}
	}
	if w.CameraObject == g {
		w.CameraObject = nil
	}
	w.Scene.RemoveGameObject(g)
}

func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32, filter engine.QueryFilter) (engine.RaycastResult, bool) {
	hit, ok := w.PhysicsWorld.Raycast(origin, direction, maxDistance, filter)
	if !ok {
		return engine.RaycastResult{}, false
	}
	return engine.RaycastResult{
		GameObject: hit.GameObject,
		Point:      hit.Point,
		Normal:     hit.Normal,
		Distance:   hit.Distance,
	}, true
}

func (w *World) FindByTag(tag string) []*engine.GameObject {
	return w.Scene.FindByTag(tag)
}

// Camera returns the active camera, or false if none was spawned.
func (w *World) Camera() (rl.Camera3D, bool) {
	if w.CameraObject == nil {
		return rl.Camera3D{}, false
	}
	cam := engine.GetComponent[*components.Camera](w.CameraObject)
	if cam == nil {
		return rl.Camera3D{}, false
	}
	return cam.GetRaylibCamera(), true
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
	w.PhysicsWorld.Update(deltaTime)
}

// Draw renders every ModelRenderer. Call between BeginMode3D and EndMode3D.
func (w *World) Draw() {
	for _, g := range w.Scene.GameObjects {
		if renderer := engine.GetComponent[*components.ModelRenderer](g); renderer != nil {
			renderer.Draw()
		}
	}
}

func (w *World) Unload() {
	var roots []*engine.GameObject
	for _, g := range w.Scene.GameObjects {
		if g.Parent == nil {
			roots = append(roots, g)
		}
	}
	for _, g := range roots {
		w.Destroy(g)
	}
}

func hasPhysics(g *engine.GameObject) bool {
	return engine.GetComponent[*components.Rigidbody](g) != nil ||
		engine.GetComponent[*components.SphereCollider](g) != nil ||
		engine.GetComponent[*components.BoxCollider](g) != nil ||
		engine.GetComponent[*components.MeshCollider](g) != nil
}

var _ engine.WorldAccess = (*World)(nil)
