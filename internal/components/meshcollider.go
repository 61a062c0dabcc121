package components

import (
	"math"
	"minigolf/internal/engine"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	bvhLeafSize = 4
	bvhMaxDepth = 20
)

// Triangle represents a single triangle with precomputed normal
type Triangle struct {
	V0, V1, V2 rl.Vector3
	Normal     rl.Vector3
}

func NewTriangle(v0, v1, v2 rl.Vector3) Triangle {
	normal := rl.Vector3Normalize(rl.Vector3CrossProduct(rl.Vector3Subtract(v1, v0), rl.Vector3Subtract(v2, v0)))
	return Triangle{V0: v0, V1: v1, V2: v2, Normal: normal}
}

func (t *Triangle) centroid() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(rl.Vector3Add(t.V0, t.V1), t.V2), 1.0/3.0)
}

// BVHNode is a node in the bounding volume hierarchy
type BVHNode struct {
	Bounds    AABB
	Left      *BVHNode
	Right     *BVHNode
	Triangles []int // indices into the triangle array (only for leaf nodes)
}

// MeshCollider provides collision detection against mesh triangles.
// This is for STATIC geometry only - moving the object won't update the collider.
type MeshCollider struct {
	engine.BaseComponent
	Triangles []Triangle
	Root      *BVHNode
	Material  PhysicMaterial
	built     bool
}

func NewMeshCollider(material PhysicMaterial) *MeshCollider {
	return &MeshCollider{Material: material}
}

// BuildFromModel extracts world-space triangles from a raylib Model and builds the BVH.
// keep may be nil; otherwise only triangles it accepts become part of the collider.
func (m *MeshCollider) BuildFromModel(model rl.Model, keep func(Triangle) bool) {
	transform := model.Transform
	if g := m.GetGameObject(); g != nil {
		transform = rl.MatrixMultiply(model.Transform, g.WorldMatrix())
	}

	var tris []Triangle
	meshes := unsafe.Slice(model.Meshes, model.MeshCount)
	for _, mesh := range meshes {
		vertices := unsafe.Slice(mesh.Vertices, mesh.VertexCount*3)
		vertex := func(i int32) rl.Vector3 {
			v := rl.Vector3{X: vertices[i*3+0], Y: vertices[i*3+1], Z: vertices[i*3+2]}
			return rl.Vector3Transform(v, transform)
		}

		if mesh.Indices != nil {
			indices := unsafe.Slice(mesh.Indices, mesh.TriangleCount*3)
			for i := int32(0); i < mesh.TriangleCount; i++ {
				tris = append(tris, NewTriangle(
					vertex(int32(indices[i*3+0])),
					vertex(int32(indices[i*3+1])),
					vertex(int32(indices[i*3+2])),
				))
			}
		} else {
			// Non-indexed mesh (every 3 vertices = 1 triangle)
			for i := int32(0); i < mesh.VertexCount/3; i++ {
				tris = append(tris, NewTriangle(vertex(i*3), vertex(i*3+1), vertex(i*3+2)))
			}
		}
	}

	if keep != nil {
		kept := tris[:0]
		for _, tri := range tris {
			if keep(tri) {
				kept = append(kept, tri)
			}
		}
		tris = kept
	}

	m.BuildFromTriangles(tris)
}

// BuildFromTriangles takes ownership of world-space triangles and builds the BVH.
func (m *MeshCollider) BuildFromTriangles(tris []Triangle) {
	m.Triangles = tris
	m.Root = nil
	if len(tris) > 0 {
		indices := make([]int, len(tris))
		for i := range indices {
			indices[i] = i
		}
		m.Root = m.buildBVHNode(indices, 0)
	}
	m.built = true
}

func (m *MeshCollider) buildBVHNode(indices []int, depth int) *BVHNode {
	node := &BVHNode{Bounds: m.computeBounds(indices)}

	if len(indices) <= bvhLeafSize || depth > bvhMaxDepth {
		node.Triangles = indices
		return node
	}

	// Split on the longest axis
	size := rl.Vector3Subtract(node.Bounds.Max, node.Bounds.Min)
	axis := 0
	if size.Y > size.X {
		axis = 1
	}
	if size.Z > getAxisValue(size, axis) {
		axis = 2
	}

	mid := m.partitionTriangles(indices, axis)
	if mid == 0 || mid == len(indices) {
		node.Triangles = indices
		return node
	}

	node.Left = m.buildBVHNode(indices[:mid], depth+1)
	node.Right = m.buildBVHNode(indices[mid:], depth+1)
	return node
}

func (m *MeshCollider) computeBounds(indices []int) AABB {
	bounds := emptyAABB()
	for _, idx := range indices {
		tri := &m.Triangles[idx]
		bounds = bounds.Extend(tri.V0).Extend(tri.V1).Extend(tri.V2)
	}
	return bounds
}

// partitionTriangles splits around the mean centroid on axis and returns the split index.
func (m *MeshCollider) partitionTriangles(indices []int, axis int) int {
	center := float32(0)
	for _, idx := range indices {
		center += getAxisValue(m.Triangles[idx].centroid(), axis)
	}
	center /= float32(len(indices))

	left := 0
	right := len(indices) - 1
	for left <= right {
		if getAxisValue(m.Triangles[indices[left]].centroid(), axis) < center {
			left++
		} else {
			indices[left], indices[right] = indices[right], indices[left]
			right--
		}
	}
	return left
}

func getAxisValue(v rl.Vector3, axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// SphereIntersect tests if a sphere intersects the mesh and returns push-out vector
func (m *MeshCollider) SphereIntersect(center rl.Vector3, radius float32) (bool, rl.Vector3) {
	if !m.built || m.Root == nil {
		return false, rl.Vector3{}
	}

	query := AABB{
		Min: rl.Vector3{X: center.X - radius, Y: center.Y - radius, Z: center.Z - radius},
		Max: rl.Vector3{X: center.X + radius, Y: center.Y + radius, Z: center.Z + radius},
	}
	candidates := m.queryBVH(m.Root, query, nil)

	// Keep the largest push on each axis so a corner resolves against both faces
	var totalPush rl.Vector3
	hit := false
	for _, idx := range candidates {
		collides, push := sphereTriangleIntersect(center, radius, &m.Triangles[idx])
		if !collides {
			continue
		}
		if abs32(push.X) > abs32(totalPush.X) {
			totalPush.X = push.X
		}
		if abs32(push.Y) > abs32(totalPush.Y) {
			totalPush.Y = push.Y
		}
		if abs32(push.Z) > abs32(totalPush.Z) {
			totalPush.Z = push.Z
		}
		hit = true
	}

	return hit, totalPush
}

func (m *MeshCollider) queryBVH(node *BVHNode, query AABB, out []int) []int {
	if node == nil || !node.Bounds.Intersects(query) {
		return out
	}
	if node.Triangles != nil {
		return append(out, node.Triangles...)
	}
	out = m.queryBVH(node.Left, query, out)
	return m.queryBVH(node.Right, query, out)
}

// Raycast returns the closest triangle hit along a normalized direction.
// Triangles are two-sided. The returned normal faces the ray origin.
func (m *MeshCollider) Raycast(origin, direction rl.Vector3, maxDistance float32) (point, normal rl.Vector3, distance float32, ok bool) {
	if !m.built || m.Root == nil {
		return
	}

	distance = maxDistance
	var best *Triangle
	var stack []*BVHNode
	stack = append(stack, m.Root)
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		tmin, _, hit := node.Bounds.RayIntersect(origin, direction)
		if !hit || tmin > distance {
			continue
		}
		if node.Triangles == nil {
			stack = append(stack, node.Left, node.Right)
			continue
		}
		for _, idx := range node.Triangles {
			tri := &m.Triangles[idx]
			if t, hit := rayTriangleIntersect(origin, direction, tri); hit && t <= distance {
				distance = t
				best = tri
			}
		}
	}

	if best == nil {
		return rl.Vector3{}, rl.Vector3{}, 0, false
	}

	normal = best.Normal
	if rl.Vector3DotProduct(normal, direction) > 0 {
		normal = rl.Vector3Negate(normal)
	}
	point = rl.Vector3Add(origin, rl.Vector3Scale(direction, distance))
	return point, normal, distance, true
}

// rayTriangleIntersect is the Moller-Trumbore test.
func rayTriangleIntersect(origin, direction rl.Vector3, tri *Triangle) (float32, bool) {
	const epsilon = 1e-7

	edge1 := rl.Vector3Subtract(tri.V1, tri.V0)
	edge2 := rl.Vector3Subtract(tri.V2, tri.V0)
	p := rl.Vector3CrossProduct(direction, edge2)
	det := rl.Vector3DotProduct(edge1, p)
	if det > -epsilon && det < epsilon {
		return 0, false
	}
	invDet := 1 / det

	s := rl.Vector3Subtract(origin, tri.V0)
	u := rl.Vector3DotProduct(s, p) * invDet
	if u < 0 || u > 1 {
		return 0, false
	}

	q := rl.Vector3CrossProduct(s, edge1)
	v := rl.Vector3DotProduct(direction, q) * invDet
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := rl.Vector3DotProduct(edge2, q) * invDet
	if t < 0 {
		return 0, false
	}
	return t, true
}

// sphereTriangleIntersect tests sphere vs triangle and returns push vector
func sphereTriangleIntersect(center rl.Vector3, radius float32, tri *Triangle) (bool, rl.Vector3) {
	closest := closestPointOnTriangle(center, tri.V0, tri.V1, tri.V2)

	diff := rl.Vector3Subtract(center, closest)
	distSq := rl.Vector3DotProduct(diff, diff)
	if distSq >= radius*radius {
		return false, rl.Vector3{}
	}

	dist := float32(math.Sqrt(float64(distSq)))
	if dist < 0.0001 {
		// Center is on triangle, push along normal
		return true, rl.Vector3Scale(tri.Normal, radius)
	}

	pushDir := rl.Vector3Scale(diff, 1.0/dist)
	return true, rl.Vector3Scale(pushDir, radius-dist)
}

// closestPointOnTriangle finds the closest point on a triangle to point p
func closestPointOnTriangle(p, a, b, c rl.Vector3) rl.Vector3 {
	ab := rl.Vector3Subtract(b, a)
	ac := rl.Vector3Subtract(c, a)
	ap := rl.Vector3Subtract(p, a)

	d1 := rl.Vector3DotProduct(ab, ap)
	d2 := rl.Vector3DotProduct(ac, ap)
	if d1 <= 0 && d2 <= 0 {
		return a
	}

	bp := rl.Vector3Subtract(p, b)
	d3 := rl.Vector3DotProduct(ab, bp)
	d4 := rl.Vector3DotProduct(ac, bp)
	if d3 >= 0 && d4 <= d3 {
		return b
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		v := d1 / (d1 - d3)
		return rl.Vector3Add(a, rl.Vector3Scale(ab, v))
	}

	cp := rl.Vector3Subtract(p, c)
	d5 := rl.Vector3DotProduct(ab, cp)
	d6 := rl.Vector3DotProduct(ac, cp)
	if d6 >= 0 && d5 <= d6 {
		return c
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		w := d2 / (d2 - d6)
		return rl.Vector3Add(a, rl.Vector3Scale(ac, w))
	}

	va := d3*d6 - d5*d4
	if va <= 0 && (d4-d3) >= 0 && (d5-d6) >= 0 {
		w := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		return rl.Vector3Add(b, rl.Vector3Scale(rl.Vector3Subtract(c, b), w))
	}

	// Inside face region
	denom := 1.0 / (va + vb + vc)
	v := vb * denom
	w := vc * denom
	return rl.Vector3Add(a, rl.Vector3Add(rl.Vector3Scale(ab, v), rl.Vector3Scale(ac, w)))
}

// IsBuilt returns true if the BVH has been built
func (m *MeshCollider) IsBuilt() bool {
	return m.built
}

func (m *MeshCollider) TriangleCount() int {
	return len(m.Triangles)
}

// GetBounds returns the AABB of the entire mesh collider
func (m *MeshCollider) GetBounds() AABB {
	if m.Root == nil {
		return AABB{}
	}
	return m.Root.Bounds
}
