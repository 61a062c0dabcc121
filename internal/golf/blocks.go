package golf

import (
	"fmt"

	"minigolf/internal/components"
	"minigolf/internal/config"
	"minigolf/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BlockFunc builds the model for one course block of the given size.
type BlockFunc func(size rl.Vector3) rl.Model

// Block is an axis-aligned box of course geometry.
type Block struct {
	Center rl.Vector3
	Size   rl.Vector3
	Tint   rl.Color
}

// DefaultBlocks is the built-in course used when no course model is on disk:
// an 18x8 green with its top at y=0, perimeter walls, and one divider.
func DefaultBlocks() []Block {
	green := rl.Color{R: 60, G: 150, B: 70, A: 255}
	wall := rl.Brown
	return []Block{
		{Center: rl.Vector3{Y: -0.25}, Size: rl.Vector3{X: 18, Y: 0.5, Z: 8}, Tint: green},
		{Center: rl.Vector3{X: -9.25, Y: 0.25}, Size: rl.Vector3{X: 0.5, Y: 1.5, Z: 9}, Tint: wall},
		{Center: rl.Vector3{X: 9.25, Y: 0.25}, Size: rl.Vector3{X: 0.5, Y: 1.5, Z: 9}, Tint: wall},
		{Center: rl.Vector3{Y: 0.25, Z: -4.25}, Size: rl.Vector3{X: 19, Y: 1.5, Z: 0.5}, Tint: wall},
		{Center: rl.Vector3{Y: 0.25, Z: 4.25}, Size: rl.Vector3{X: 19, Y: 1.5, Z: 0.5}, Tint: wall},
		{Center: rl.Vector3{X: 1, Y: 0.25, Z: -1.5}, Size: rl.Vector3{X: 0.5, Y: 1.5, Z: 5}, Tint: wall},
	}
}

// Triangles returns the twelve outward-facing triangles of the block.
func (b Block) Triangles() []components.Triangle {
	axes := [3]rl.Vector3{{X: 1}, {Y: 1}, {Z: 1}}
	half := [3]float32{b.Size.X / 2, b.Size.Y / 2, b.Size.Z / 2}

	tris := make([]components.Triangle, 0, 12)
	for i := range 3 {
		// u x v points along axis i
		u, v := (i+1)%3, (i+2)%3
		for _, sign := range []float32{1, -1} {
			face := rl.Vector3Add(b.Center, rl.Vector3Scale(axes[i], sign*half[i]))
			du := rl.Vector3Scale(axes[u], half[u])
			dv := rl.Vector3Scale(axes[v], sign*half[v])

			p0 := rl.Vector3Subtract(rl.Vector3Subtract(face, du), dv)
			p1 := rl.Vector3Subtract(rl.Vector3Add(face, du), dv)
			p2 := rl.Vector3Add(rl.Vector3Add(face, du), dv)
			p3 := rl.Vector3Add(rl.Vector3Subtract(face, du), dv)
			tris = append(tris, components.NewTriangle(p0, p1, p2), components.NewTriangle(p0, p2, p3))
		}
	}
	return tris
}

// BuildBlockCourse builds a course from blocks. Each block is drawn with a
// model from block; a nil block leaves the course undrawn.
func BuildBlockCourse(w World, blocks []Block, cfg *config.Config, block BlockFunc) *Course {
	var tris []components.Triangle
	model := engine.NewGameObject("Course")
	for i, b := range blocks {
		tris = append(tris, b.Triangles()...)
		if block == nil {
			continue
		}
		obj := engine.NewGameObject(fmt.Sprintf("CourseBlock_%d", i))
		obj.Transform.Position = b.Center
		obj.AddComponent(components.NewModelRenderer(block(b.Size), b.Tint))
		model.AddChild(obj)
	}
	return splitCourse(w, model, tris, cfg)
}
