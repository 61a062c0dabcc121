package components

import (
	"minigolf/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type ModelRenderer struct {
	engine.BaseComponent
	Model    rl.Model
	Tint     rl.Color
	fromFile bool // true if owned by the asset cache
}

// NewModelRenderer takes ownership of a generated model.
func NewModelRenderer(model rl.Model, tint rl.Color) *ModelRenderer {
	return &ModelRenderer{
		Model: model,
		Tint:  tint,
	}
}

// NewSharedModelRenderer draws a model owned by the asset cache. Unload leaves it alone.
func NewSharedModelRenderer(model rl.Model) *ModelRenderer {
	return &ModelRenderer{
		Model:    model,
		Tint:     rl.White,
		fromFile: true,
	}
}

func (m *ModelRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active || m.Model.MeshCount == 0 {
		return
	}

	m.Model.Transform = g.WorldMatrix()
	rl.DrawModel(m.Model, rl.Vector3Zero(), 1.0, m.Tint)
}

func (m *ModelRenderer) Unload() {
	if !m.fromFile && m.Model.MeshCount > 0 {
		rl.UnloadModel(m.Model)
	}
	m.Model = rl.Model{}
}
