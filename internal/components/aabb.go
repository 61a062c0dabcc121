package components

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min, Max rl.Vector3
}

func emptyAABB() AABB {
	return AABB{
		Min: rl.Vector3{X: math.MaxFloat32, Y: math.MaxFloat32, Z: math.MaxFloat32},
		Max: rl.Vector3{X: -math.MaxFloat32, Y: -math.MaxFloat32, Z: -math.MaxFloat32},
	}
}

func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// Extend grows the box to contain p.
func (a AABB) Extend(p rl.Vector3) AABB {
	return AABB{
		Min: rl.Vector3{X: min(a.Min.X, p.X), Y: min(a.Min.Y, p.Y), Z: min(a.Min.Z, p.Z)},
		Max: rl.Vector3{X: max(a.Max.X, p.X), Y: max(a.Max.Y, p.Y), Z: max(a.Max.Z, p.Z)},
	}
}

// ClosestPoint clamps p onto the box.
func (a AABB) ClosestPoint(p rl.Vector3) rl.Vector3 {
	return rl.Vector3{
		X: min(max(p.X, a.Min.X), a.Max.X),
		Y: min(max(p.Y, a.Min.Y), a.Max.Y),
		Z: min(max(p.Z, a.Min.Z), a.Max.Z),
	}
}

// RayIntersect runs the slab test and returns the entry and exit distances along dir.
// dir need not be normalized; distances are in units of dir.
func (a AABB) RayIntersect(origin, dir rl.Vector3) (tmin, tmax float32, ok bool) {
	tmin = -math.MaxFloat32
	tmax = math.MaxFloat32

	o := [3]float32{origin.X, origin.Y, origin.Z}
	d := [3]float32{dir.X, dir.Y, dir.Z}
	lo := [3]float32{a.Min.X, a.Min.Y, a.Min.Z}
	hi := [3]float32{a.Max.X, a.Max.Y, a.Max.Z}

	for i := range 3 {
		if d[i] == 0 {
			if o[i] < lo[i] || o[i] > hi[i] {
				return 0, 0, false
			}
			continue
		}
		t1 := (lo[i] - o[i]) / d[i]
		t2 := (hi[i] - o[i]) / d[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
		if tmin > tmax {
			return 0, 0, false
		}
	}
	return tmin, tmax, tmax >= 0
}
