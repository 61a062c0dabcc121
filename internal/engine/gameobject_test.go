package engine

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type counterComponent struct {
	BaseComponent
	starts  int
	updates int
}

func (c *counterComponent) Start() { c.starts++ }

func (c *counterComponent) Update(deltaTime float32) { c.updates++ }

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("Ball")

	if obj.Name != "Ball" {
		t.Errorf("Expected name 'Ball', got '%s'", obj.Name)
	}
	if obj.UID == 0 {
		t.Error("UID should not be 0")
	}
	if !obj.Active {
		t.Error("New GameObject should be active")
	}
	if obj.Transform.Scale != (rl.Vector3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("Expected unit scale, got %+v", obj.Transform.Scale)
	}
}

func TestGameObjectUniqueUIDs(t *testing.T) {
	seen := make(map[uint64]bool)
	for range 50 {
		obj := NewGameObject("Indicator")
		if seen[obj.UID] {
			t.Fatalf("Duplicate UID %d", obj.UID)
		}
		seen[obj.UID] = true
	}
}

func TestGameObjectHasTag(t *testing.T) {
	obj := NewGameObject("Ball")
	obj.Tags = []string{"ball", "dynamic"}

	if !obj.HasTag("ball") {
		t.Error("HasTag should return true for existing tag")
	}
	if obj.HasTag("indicator") {
		t.Error("HasTag should return false for missing tag")
	}
	if NewGameObject("Empty").HasTag("ball") {
		t.Error("HasTag should return false when Tags is empty")
	}
}

func TestGameObjectComponents(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &counterComponent{}
	obj.AddComponent(comp)

	if comp.GetGameObject() != obj {
		t.Error("AddComponent should set the owning GameObject")
	}
	if found := GetComponent[*counterComponent](obj); found != comp {
		t.Error("GetComponent failed to find component")
	}
	if found := GetComponent[*BaseComponent](obj); found != nil {
		t.Error("GetComponent should not match a different concrete type")
	}
}

func TestGameObjectStartCalledOnce(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &counterComponent{}
	obj.AddComponent(comp)

	obj.Start()
	obj.Start()

	if comp.starts != 1 {
		t.Errorf("Expected Start to run once, ran %d times", comp.starts)
	}
}

func TestInactiveGameObjectSkipsUpdate(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &counterComponent{}
	obj.AddComponent(comp)

	obj.Update(0.016)
	obj.Active = false
	obj.Update(0.016)

	if comp.updates != 1 {
		t.Errorf("Expected 1 update, got %d", comp.updates)
	}
}

func TestGameObjectAddChild(t *testing.T) {
	parent := NewGameObject("Ball")
	child := NewGameObject("BallMesh")

	parent.AddChild(child)

	if len(parent.Children) != 1 || parent.Children[0] != child {
		t.Errorf("Expected BallMesh as the only child, got %v", parent.Children)
	}
	if child.Parent != parent {
		t.Error("Child.Parent should be set")
	}
}

func TestWorldPositionFollowsParent(t *testing.T) {
	parent := NewGameObject("Parent")
	parent.Transform.Position = rl.Vector3{X: 10, Y: 0, Z: 0}
	parent.Transform.Scale = rl.Vector3{X: 2, Y: 2, Z: 2}
	parent.Transform.Rotation = rl.Vector3{Y: 90}

	child := NewGameObject("Child")
	child.Transform.Position = rl.Vector3{X: 1, Y: 0, Z: 0}
	parent.AddChild(child)

	got := child.WorldPosition()
	// Local +X scaled by 2 and rotated 90 degrees about Y lands on -Z.
	want := rl.Vector3{X: 10, Y: 0, Z: -2}
	if rl.Vector3Distance(got, want) > 1e-4 {
		t.Errorf("Expected %+v, got %+v", want, got)
	}

	if s := child.WorldScale(); s.X != 2 || s.Y != 2 || s.Z != 2 {
		t.Errorf("Expected inherited scale 2, got %+v", s)
	}
}

func TestTransformMatrixTranslatesAndScales(t *testing.T) {
	tr := Transform{
		Position: rl.Vector3{X: 1, Y: 2, Z: 3},
		Scale:    rl.Vector3{X: 2, Y: 2, Z: 2},
	}

	got := rl.Vector3Transform(rl.Vector3{X: 1, Y: 1, Z: 1}, tr.Matrix())
	want := rl.Vector3{X: 3, Y: 4, Z: 5}
	if math.Abs(float64(rl.Vector3Distance(got, want))) > 1e-5 {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}
