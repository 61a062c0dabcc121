// Package golf holds the gameplay systems: course setup, the ball's
// lifecycle, and aiming and shooting.
package golf

import (
	"minigolf/internal/components"
	"minigolf/internal/config"
	"minigolf/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// World is what the gameplay systems need from the world.
type World interface {
	engine.WorldAccess
	FindByTag(tag string) []*engine.GameObject
}

type Course struct {
	Model      *engine.GameObject
	Floor      *engine.GameObject
	Wall       *engine.GameObject
	ClickPlane *engine.GameObject
}

// IsFloor reports whether tri is walkable ground. Winding is not trusted, so
// downward faces count too.
func IsFloor(tri components.Triangle, normalY float32) bool {
	y := tri.Normal.Y
	if y < 0 {
		y = -y
	}
	return y >= normalY
}

// BuildCourse splits the course model into floor and wall colliders with their
// own materials, adds the click detection plane, and spawns everything.
func BuildCourse(w World, model rl.Model, cfg *config.Config) *Course {
	thr := cfg.Course.FloorNormalY
	floor := components.NewMeshCollider(cfg.Course.Floor.Physic())
	wall := components.NewMeshCollider(cfg.Course.Wall.Physic())
	floor.BuildFromModel(model, func(t components.Triangle) bool { return IsFloor(t, thr) })
	wall.BuildFromModel(model, func(t components.Triangle) bool { return !IsFloor(t, thr) })

	obj := engine.NewGameObject("Course")
	obj.AddComponent(components.NewSharedModelRenderer(model))
	return spawnCourse(w, obj, floor, wall, cfg)
}

// BuildCourseFromTriangles is BuildCourse for geometry that is already in
// world space. The course is not drawn.
func BuildCourseFromTriangles(w World, tris []components.Triangle, cfg *config.Config) *Course {
	return splitCourse(w, engine.NewGameObject("Course"), tris, cfg)
}

func splitCourse(w World, model *engine.GameObject, tris []components.Triangle, cfg *config.Config) *Course {
	var floorTris, wallTris []components.Triangle
	for _, t := range tris {
		if IsFloor(t, cfg.Course.FloorNormalY) {
			floorTris = append(floorTris, t)
		} else {
			wallTris = append(wallTris, t)
		}
	}

	floor := components.NewMeshCollider(cfg.Course.Floor.Physic())
	floor.BuildFromTriangles(floorTris)
	wall := components.NewMeshCollider(cfg.Course.Wall.Physic())
	wall.BuildFromTriangles(wallTris)

	return spawnCourse(w, model, floor, wall, cfg)
}

func spawnCourse(w World, model *engine.GameObject, floor, wall *components.MeshCollider, cfg *config.Config) *Course {
	c := &Course{
		Model:      model,
		Floor:      engine.NewGameObject("CourseFloor"),
		Wall:       engine.NewGameObject("CourseWall"),
		ClickPlane: engine.NewGameObject("ClickPlane"),
	}

	c.Floor.AddComponent(floor)
	c.Wall.AddComponent(wall)

	// Invisible sensor the aim ray lands on when the cursor is off the course
	plane := components.NewBoxCollider(rl.Vector3{})
	plane.IsTrigger = true
	c.ClickPlane.AddComponent(plane)

	c.Apply(cfg)

	w.SpawnObject(c.Model)
	w.SpawnObject(c.Floor)
	w.SpawnObject(c.Wall)
	w.SpawnObject(c.ClickPlane)
	return c
}

// Apply pushes surface materials and click plane placement from cfg. The
// floor/wall split itself is fixed at build time.
func (c *Course) Apply(cfg *config.Config) {
	if m := engine.GetComponent[*components.MeshCollider](c.Floor); m != nil {
		m.Material = cfg.Course.Floor.Physic()
	}
	if m := engine.GetComponent[*components.MeshCollider](c.Wall); m != nil {
		m.Material = cfg.Course.Wall.Physic()
	}

	plane := cfg.Course.ClickPlane
	c.ClickPlane.Transform.Position = rl.Vector3{Y: plane.Height}
	if box := engine.GetComponent[*components.BoxCollider](c.ClickPlane); box != nil {
		box.Size = rl.Vector3Scale(plane.HalfExtents.Raylib(), 2)
	}
}
