package physics

import (
	"math"
	"minigolf/internal/components"
	"minigolf/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit struct {
	GameObject *engine.GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// Raycast checks every collider that passes filter and returns the closest hit
func (p *PhysicsWorld) Raycast(origin, direction rl.Vector3, maxDistance float32, filter engine.QueryFilter) (RaycastHit, bool) {
	if rl.Vector3Length(direction) == 0 || maxDistance <= 0 {
		return RaycastHit{}, false
	}
	direction = rl.Vector3Normalize(direction)

	var closestHit RaycastHit
	closestHit.Distance = maxDistance
	hit := false

	consider := func(obj *engine.GameObject) {
		if obj == filter.Exclude || !obj.Active {
			return
		}
		if box := engine.GetComponent[*components.BoxCollider](obj); box != nil && !(box.IsTrigger && filter.ExcludeSensors) {
			if hitInfo, ok := raycastBox(origin, direction, box, closestHit.Distance); ok {
				closestHit = hitInfo
				closestHit.GameObject = obj
				hit = true
			}
		}
		if sphere := engine.GetComponent[*components.SphereCollider](obj); sphere != nil {
			if hitInfo, ok := raycastSphere(origin, direction, sphere, closestHit.Distance); ok {
				closestHit = hitInfo
				closestHit.GameObject = obj
				hit = true
			}
		}
		if mesh := engine.GetComponent[*components.MeshCollider](obj); mesh != nil {
			if point, normal, dist, ok := mesh.Raycast(origin, direction, closestHit.Distance); ok {
				closestHit = RaycastHit{GameObject: obj, Point: point, Normal: normal, Distance: dist}
				hit = true
			}
		}
	}

	if !filter.ExcludeDynamic {
		for _, obj := range p.Objects {
			consider(obj)
		}
	}
	for _, obj := range p.Statics {
		consider(obj)
	}

	return closestHit, hit
}

func raycastBox(origin, direction rl.Vector3, box *components.BoxCollider, maxDistance float32) (RaycastHit, bool) {
	bounds := box.Bounds()
	tmin, tmax, ok := bounds.RayIntersect(origin, direction)
	if !ok {
		return RaycastHit{}, false
	}

	// Origin inside the box hits the exit face
	t := tmin
	if t < 0 {
		t = tmax
	}
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))

	// Calculate normal based on which face was hit
	var normal rl.Vector3
	epsilon := float32(0.001)
	min, max := bounds.Min, bounds.Max
	if abs(point.Y-max.Y) < epsilon {
		normal = rl.Vector3{X: 0, Y: 1, Z: 0}
	} else if abs(point.Y-min.Y) < epsilon {
		normal = rl.Vector3{X: 0, Y: -1, Z: 0}
	} else if abs(point.X-min.X) < epsilon {
		normal = rl.Vector3{X: -1, Y: 0, Z: 0}
	} else if abs(point.X-max.X) < epsilon {
		normal = rl.Vector3{X: 1, Y: 0, Z: 0}
	} else if abs(point.Z-min.Z) < epsilon {
		normal = rl.Vector3{X: 0, Y: 0, Z: -1}
	} else {
		normal = rl.Vector3{X: 0, Y: 0, Z: 1}
	}

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}

func raycastSphere(origin, direction rl.Vector3, sphere *components.SphereCollider, maxDistance float32) (RaycastHit, bool) {
	center := sphere.GetCenter()
	radius := sphere.Radius

	oc := rl.Vector3Subtract(origin, center)
	a := rl.Vector3DotProduct(direction, direction)
	b := 2.0 * rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return RaycastHit{}, false
	}

	t := (-b - float32(math.Sqrt(float64(discriminant)))) / (2 * a)
	if t < 0 {
		t = (-b + float32(math.Sqrt(float64(discriminant)))) / (2 * a)
	}
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, center))

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
