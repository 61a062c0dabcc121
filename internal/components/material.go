package components

// PhysicMaterial describes how a collider surface responds to contact.
type PhysicMaterial struct {
	Friction    float32 // 0 = ice
	Restitution float32 // 0 = no bounce, 1 = perfect bounce
}

// Combine averages both materials, which is what the contact solver uses for a pair.
func (m PhysicMaterial) Combine(other PhysicMaterial) PhysicMaterial {
	return PhysicMaterial{
		Friction:    (m.Friction + other.Friction) / 2,
		Restitution: (m.Restitution + other.Restitution) / 2,
	}
}
