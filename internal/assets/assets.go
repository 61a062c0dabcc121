package assets

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// LoadFunc loads one model from disk.
type LoadFunc func(path string) (rl.Model, error)

// Manager caches models by path. Every model it hands out stays owned by the cache.
type Manager struct {
	models map[string]rl.Model
	load   LoadFunc
	unload func(rl.Model)
}

// Color name mapping for config files
var colorByName = map[string]rl.Color{
	"AliceBlue": {R: 240, G: 248, B: 255, A: 255},
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Gold":      rl.Gold,
	"White":     rl.White,
	"Gray":      rl.Gray,
	"LightGray": rl.LightGray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Pink":      rl.Pink,
	"Maroon":    rl.Maroon,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"SkyBlue":   rl.SkyBlue,
	"DarkBlue":  rl.DarkBlue,
	"Lime":      rl.Lime,
	"DarkGreen": rl.DarkGreen,
	"RayWhite":  rl.RayWhite,
}

// LookupColor returns a raylib color from a name string
func LookupColor(name string) (rl.Color, bool) {
	c, ok := colorByName[name]
	return c, ok
}

// RaylibLoad loads a model file with raylib. raylib logs and returns an
// empty model on failure, so missing files and meshless results become errors.
func RaylibLoad(path string) (rl.Model, error) {
	if _, err := os.Stat(path); err != nil {
		return rl.Model{}, fmt.Errorf("assets: %s: %w", path, err)
	}
	model := rl.LoadModel(path)
	if model.MeshCount == 0 {
		return rl.Model{}, fmt.Errorf("assets: %s: no meshes", path)
	}
	return model, nil
}

func NewManager(load LoadFunc) *Manager {
	if load == nil {
		load = RaylibLoad
	}
	return &Manager{
		models: make(map[string]rl.Model),
		load:   load,
		unload: rl.UnloadModel,
	}
}

// Model returns the cached model for path, loading it on first use.
func (m *Manager) Model(path string) (rl.Model, error) {
	if model, exists := m.models[path]; exists {
		return model, nil
	}

	model, err := m.load(path)
	if err != nil {
		return rl.Model{}, err
	}
	m.models[path] = model
	return model, nil
}

// Get returns a model only if it is already cached.
func (m *Manager) Get(path string) (rl.Model, bool) {
	model, ok := m.models[path]
	return model, ok
}

func (m *Manager) Count() int {
	return len(m.models)
}

func (m *Manager) Unload() {
	for _, model := range m.models {
		m.unload(model)
	}
	m.models = make(map[string]rl.Model)
}
