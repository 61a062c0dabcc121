package golf

import (
	"log"

	"minigolf/internal/components"
	"minigolf/internal/config"
	"minigolf/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// NewBall builds a ball at the configured spawn point. A model with no meshes
// gives an invisible ball.
func NewBall(model rl.Model, cfg *config.Config) *engine.GameObject {
	ball := engine.NewGameObject("Ball")
	ball.Tags = []string{components.TagBall}
	ball.Transform.Position = cfg.Ball.Spawn.Raylib()

	sphere := components.NewSphereCollider(cfg.Ball.Radius)
	sphere.Material = cfg.Ball.Material.Physic()

	rb := components.NewRigidbody()
	rb.Mass = sphere.MassFromDensity(cfg.Ball.Density)
	rb.LinearDamping = cfg.Ball.LinearDamping
	rb.CCD = cfg.Ball.CCD

	ball.AddComponent(&components.Ball{})
	ball.AddComponent(rb)
	ball.AddComponent(sphere)
	if model.MeshCount > 0 {
		ball.AddComponent(components.NewSharedModelRenderer(model))
	}
	return ball
}

func SpawnBall(w World, model rl.Model, cfg *config.Config) *engine.GameObject {
	ball := NewBall(model, cfg)
	w.SpawnObject(ball)
	log.Printf("Game: spawned ball at %v", ball.Transform.Position)
	return ball
}

// FindBall returns the ball, or nil if there is none.
func FindBall(w World) *engine.GameObject {
	if balls := w.FindByTag(components.TagBall); len(balls) > 0 {
		return balls[0]
	}
	return nil
}

// Restart despawns every ball and spawns one fresh ball. Afterwards exactly one ball exists.
func Restart(w World, model rl.Model, cfg *config.Config) *engine.GameObject {
	for _, ball := range w.FindByTag(components.TagBall) {
		w.Destroy(ball)
		log.Printf("Game: despawned ball %d", ball.UID)
	}
	return SpawnBall(w, model, cfg)
}

// Respawner restarts the ball on request and when it falls off the course.
type Respawner struct {
	World  World
	Model  rl.Model
	Config *config.Config

	OnRespawn engine.EventWithArg[*engine.GameObject]
}

func NewRespawner(w World, model rl.Model, cfg *config.Config) *Respawner {
	return &Respawner{World: w, Model: model, Config: cfg}
}

// Update restarts when restart is pressed, when the ball is below the kill
// height, or when there is no ball at all.
func (r *Respawner) Update(restart bool) {
	ball := FindBall(r.World)
	switch {
	case restart:
		log.Println("Game: restart")
	case ball == nil:
		log.Println("Game: no ball, spawning one")
	case ball.Transform.Position.Y < r.Config.Physics.KillHeight:
		log.Printf("Game: ball fell out at y=%.2f", ball.Transform.Position.Y)
	default:
		return
	}
	r.OnRespawn.Invoke(Restart(r.World, r.Model, r.Config))
}
