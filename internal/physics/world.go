package physics

import (
	"log"
	"math"
	"minigolf/internal/components"
	"minigolf/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	// DefaultMaxSubsteps bounds CCD sub-stepping per frame.
	DefaultMaxSubsteps = 16

	// RestitutionThreshold is the approach speed below which contacts don't bounce.
	// Without it a resting ball jitters on the floor forever.
	RestitutionThreshold = 1.0

	// GroundNormalY is the minimum contact normal Y that counts as standing on ground.
	GroundNormalY = 0.5
)

type PhysicsWorld struct {
	Gravity     rl.Vector3
	Objects     []*engine.GameObject // dynamic rigidbodies
	Statics     []*engine.GameObject // no rigidbody (course, click plane)
	MaxSubsteps int
}

func NewPhysicsWorld() *PhysicsWorld {
	return &PhysicsWorld{
		Gravity:     rl.Vector3{X: 0, Y: -9.81, Z: 0},
		Objects:     make([]*engine.GameObject, 0),
		Statics:     make([]*engine.GameObject, 0),
		MaxSubsteps: DefaultMaxSubsteps,
	}
}

// AddObject registers g as dynamic if it has a Rigidbody, static otherwise.
// Adding the same object twice is a no-op.
func (p *PhysicsWorld) AddObject(g *engine.GameObject) {
	if p.Contains(g) {
		return
	}
	if rb := engine.GetComponent[*components.Rigidbody](g); rb != nil {
		p.Objects = append(p.Objects, g)
	} else {
		p.Statics = append(p.Statics, g)
	}
}

func (p *PhysicsWorld) RemoveObject(g *engine.GameObject) {
	for i, obj := range p.Objects {
		if obj == g {
			p.Objects = append(p.Objects[:i], p.Objects[i+1:]...)
			return
		}
	}
	for i, obj := range p.Statics {
		if obj == g {
			p.Statics = append(p.Statics[:i], p.Statics[i+1:]...)
			return
		}
	}
}

func (p *PhysicsWorld) Contains(g *engine.GameObject) bool {
	for _, obj := range p.Objects {
		if obj == g {
			return true
		}
	}
	for _, obj := range p.Statics {
		if obj == g {
			return true
		}
	}
	return false
}

// DynamicObjectCount returns the number of dynamic physics objects
func (p *PhysicsWorld) DynamicObjectCount() int {
	return len(p.Objects)
}

func (p *PhysicsWorld) Update(deltaTime float32) {
	if deltaTime <= 0 {
		return
	}

	for _, obj := range p.Objects {
		rb := engine.GetComponent[*components.Rigidbody](obj)
		if rb == nil || rb.IsSleeping || !obj.Active {
			continue
		}

		// 1. Forces
		if rb.UseGravity {
			rb.Velocity = rl.Vector3Add(rb.Velocity, rl.Vector3Scale(p.Gravity, deltaTime))
		}
		if rb.LinearDamping > 0 {
			damping := float32(1.0) - rb.LinearDamping*deltaTime
			if damping < 0 {
				damping = 0
			}
			rb.Velocity = rl.Vector3Scale(rb.Velocity, damping)
		}

		sphere := engine.GetComponent[*components.SphereCollider](obj)
		steps := p.substeps(rb, sphere, deltaTime)
		h := deltaTime / float32(steps)

		// 2. Integrate and resolve contacts against static geometry
		rb.Grounded = false
		for range steps {
			obj.Transform.Position = rl.Vector3Add(obj.Transform.Position, rl.Vector3Scale(rb.Velocity, h))
			if sphere != nil {
				p.resolveStaticContacts(obj, rb, sphere)
			}
		}

		// 3. Sleep
		rb.TrySleep(deltaTime)
	}
}

// substeps returns how many integration steps keep a CCD sphere from moving
// more than half its radius per step.
func (p *PhysicsWorld) substeps(rb *components.Rigidbody, sphere *components.SphereCollider, deltaTime float32) int {
	if !rb.CCD || sphere == nil || sphere.Radius <= 0 {
		return 1
	}
	travel := rl.Vector3Length(rb.Velocity) * deltaTime
	steps := int(math.Ceil(float64(travel / (sphere.Radius * 0.5))))
	if steps < 1 {
		steps = 1
	}
	if p.MaxSubsteps > 0 && steps > p.MaxSubsteps {
		log.Printf("Physics: %s needs %d substeps, capped at %d", rb.GetGameObject().Name, steps, p.MaxSubsteps)
		steps = p.MaxSubsteps
	}
	return steps
}

func (p *PhysicsWorld) resolveStaticContacts(obj *engine.GameObject, rb *components.Rigidbody, sphere *components.SphereCollider) {
	for _, static := range p.Statics {
		if !static.Active {
			continue
		}

		if box := engine.GetComponent[*components.BoxCollider](static); box != nil && !box.IsTrigger {
			center := sphere.GetCenter()
			closest := box.Bounds().ClosestPoint(center)
			diff := rl.Vector3Subtract(center, closest)
			dist := rl.Vector3Length(diff)
			if dist < sphere.Radius && dist > 0.0001 {
				push := rl.Vector3Scale(diff, (sphere.Radius-dist)/dist)
				applyContact(obj, rb, push, sphere.Material.Combine(box.Material))
			}
		}

		if mesh := engine.GetComponent[*components.MeshCollider](static); mesh != nil && mesh.IsBuilt() {
			if hit, push := mesh.SphereIntersect(sphere.GetCenter(), sphere.Radius); hit {
				applyContact(obj, rb, push, sphere.Material.Combine(mesh.Material))
			}
		}
	}
}

// applyContact pushes obj out along push and resolves velocity with restitution
// along the normal and Coulomb friction along the tangent.
func applyContact(obj *engine.GameObject, rb *components.Rigidbody, push rl.Vector3, mat components.PhysicMaterial) {
	pushLen := rl.Vector3Length(push)
	if pushLen < 0.000001 {
		return
	}
	normal := rl.Vector3Scale(push, 1/pushLen)

	obj.Transform.Position = rl.Vector3Add(obj.Transform.Position, push)
	if normal.Y > GroundNormalY {
		rb.Grounded = true
	}

	velAlongNormal := rl.Vector3DotProduct(rb.Velocity, normal)
	if velAlongNormal >= 0 {
		return
	}

	e := mat.Restitution
	if -velAlongNormal < RestitutionThreshold {
		e = 0
	}
	normalImpulse := -(1 + e) * velAlongNormal
	rb.Velocity = rl.Vector3Add(rb.Velocity, rl.Vector3Scale(normal, normalImpulse))

	tangent := rl.Vector3Subtract(rb.Velocity, rl.Vector3Scale(normal, rl.Vector3DotProduct(rb.Velocity, normal)))
	tangentSpeed := rl.Vector3Length(tangent)
	if tangentSpeed < 0.000001 {
		return
	}
	drop := mat.Friction * normalImpulse
	if drop >= tangentSpeed {
		rb.Velocity = rl.Vector3Subtract(rb.Velocity, tangent)
	} else {
		rb.Velocity = rl.Vector3Subtract(rb.Velocity, rl.Vector3Scale(tangent, drop/tangentSpeed))
	}
}
