package golf

import (
	"fmt"
	"log"

	"minigolf/internal/aim"
	"minigolf/internal/components"
	"minigolf/internal/config"
	"minigolf/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MarkerFunc builds the model for one power indicator marker.
type MarkerFunc func(radius float32) rl.Model

// Pointer is the mouse state the shooter reads each frame.
type Pointer struct {
	Ray      rl.Ray
	HasRay   bool
	Held     bool
	Released bool
}

type Shot struct {
	Stroke   int
	Ball     *engine.GameObject
	AimPoint rl.Vector3
	Impulse  rl.Vector3
}

// Shooter aims while the button is held and strikes the ball on release.
type Shooter struct {
	World  World
	Config *config.Config
	Marker MarkerFunc

	Indicators []*engine.GameObject
	Strokes    int
	OnShot     engine.EventWithArg[Shot]

	aimPoint     rl.Vector3
	aiming       bool
	markerRadius float32
}

func NewShooter(w World, cfg *config.Config, marker MarkerFunc) *Shooter {
	s := &Shooter{
		World:  w,
		Config: cfg,
		Marker: marker,
	}
	s.ensureIndicators()
	return s
}

// AimPoint returns the last recorded aim point and whether one is pending.
func (s *Shooter) AimPoint() (rl.Vector3, bool) {
	return s.aimPoint, s.aiming
}

func (s *Shooter) Update(p Pointer) {
	s.ensureIndicators()

	ball := FindBall(s.World)
	if ball == nil {
		s.Reset()
		return
	}

	if p.Held {
		if !p.HasRay {
			return
		}
		filter := engine.QueryFilter{ExcludeDynamic: true}
		hit, ok := s.World.Raycast(p.Ray.Position, p.Ray.Direction, s.Config.Shot.RayDistance, filter)
		if !ok {
			return
		}
		s.aimPoint = hit.Point
		s.aiming = true
		s.layout(ball.Transform.Position)
		return
	}

	if p.Released {
		s.hide()
		if !s.aiming {
			return
		}
		s.aiming = false
		s.shoot(ball)
	}
}

func (s *Shooter) shoot(ball *engine.GameObject) {
	rb := engine.GetComponent[*components.Rigidbody](ball)
	if rb == nil {
		return
	}

	shot := s.Config.Shot
	impulse := aim.Impulse(ball.Transform.Position, s.aimPoint, shot.ImpulseScale, shot.MaxPower)
	rb.ApplyImpulse(impulse)
	s.Strokes++

	log.Printf("Game: stroke %d impulse (%.2f, %.2f, %.2f)", s.Strokes, impulse.X, impulse.Y, impulse.Z)
	s.OnShot.Invoke(Shot{
		Stroke:   s.Strokes,
		Ball:     ball,
		AimPoint: s.aimPoint,
		Impulse:  impulse,
	})
}

// Reset drops any pending aim and hides the indicators.
func (s *Shooter) Reset() {
	s.aiming = false
	s.hide()
}

func (s *Shooter) layout(ballPos rl.Vector3) {
	markers := aim.Markers(ballPos, s.aimPoint, len(s.Indicators), s.Config.Shot.MaxPower)
	for i, obj := range s.Indicators {
		obj.Transform.Position = markers[i]
		obj.Active = true
	}
}

func (s *Shooter) hide() {
	for _, obj := range s.Indicators {
		obj.Active = false
	}
}

// ensureIndicators keeps one marker per configured segment, rebuilding them
// when the segment count or radius changes.
func (s *Shooter) ensureIndicators() {
	shot := s.Config.Shot
	if len(s.Indicators) == shot.Segments && s.markerRadius == shot.IndicatorRadius {
		s.tint(s.Config.IndicatorColor())
		return
	}

	for _, obj := range s.Indicators {
		s.World.Destroy(obj)
	}
	s.Indicators = s.Indicators[:0]
	s.markerRadius = shot.IndicatorRadius

	for i := 1; i <= shot.Segments; i++ {
		obj := engine.NewGameObject(fmt.Sprintf("PowerIndicator_%d", i))
		obj.Tags = []string{components.TagPowerIndicator}
		obj.Active = false
		obj.AddComponent(&components.PowerIndicator{Segment: i})

		var model rl.Model
		if s.Marker != nil {
			model = s.Marker(shot.IndicatorRadius)
		}
		obj.AddComponent(components.NewModelRenderer(model, s.Config.IndicatorColor()))

		s.World.SpawnObject(obj)
		s.Indicators = append(s.Indicators, obj)
	}
	if s.aiming {
		if ball := FindBall(s.World); ball != nil {
			s.layout(ball.Transform.Position)
		}
	}
}

func (s *Shooter) tint(c rl.Color) {
	for _, obj := range s.Indicators {
		if r := engine.GetComponent[*components.ModelRenderer](obj); r != nil {
			r.Tint = c
		}
	}
}
