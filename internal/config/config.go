package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"minigolf/internal/assets"
	"minigolf/internal/components"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

type Vec3 struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

func (v Vec3) Raylib() rl.Vector3 {
	return rl.Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

type MaterialSpec struct {
	Friction    float32 `yaml:"friction"`
	Restitution float32 `yaml:"restitution"`
}

func (m MaterialSpec) Physic() components.PhysicMaterial {
	return components.PhysicMaterial{Friction: m.Friction, Restitution: m.Restitution}
}

type WindowConfig struct {
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int32  `yaml:"target_fps"`
}

type CameraConfig struct {
	Position Vec3    `yaml:"position"`
	Target   Vec3    `yaml:"target"`
	FOV      float32 `yaml:"fov"`
}

type AssetsConfig struct {
	Course string `yaml:"course"`
	Ball   string `yaml:"ball"`
}

type BallConfig struct {
	Spawn         Vec3         `yaml:"spawn"`
	Radius        float32      `yaml:"radius"`
	Density       float32      `yaml:"density"`
	Material      MaterialSpec `yaml:"material"`
	LinearDamping float32      `yaml:"linear_damping"`
	CCD           bool         `yaml:"ccd"`
}

type ClickPlaneConfig struct {
	Height      float32 `yaml:"height"`
	HalfExtents Vec3    `yaml:"half_extents"`
}

type CourseConfig struct {
	Floor        MaterialSpec     `yaml:"floor"`
	Wall         MaterialSpec     `yaml:"wall"`
	FloorNormalY float32          `yaml:"floor_normal_y"`
	ClickPlane   ClickPlaneConfig `yaml:"click_plane"`
}

type ShotConfig struct {
	Segments        int     `yaml:"segments"`
	MaxPower        float32 `yaml:"max_power"`
	ImpulseScale    float32 `yaml:"impulse_scale"`
	RayDistance     float32 `yaml:"ray_distance"`
	IndicatorRadius float32 `yaml:"indicator_radius"`
	IndicatorColor  string  `yaml:"indicator_color"`
}

type ControlsConfig struct {
	Restart string `yaml:"restart"`
}

type PhysicsConfig struct {
	Gravity    float32 `yaml:"gravity"`
	KillHeight float32 `yaml:"kill_height"`
}

type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Camera   CameraConfig   `yaml:"camera"`
	Assets   AssetsConfig   `yaml:"assets"`
	Ball     BallConfig     `yaml:"ball"`
	Course   CourseConfig   `yaml:"course"`
	Shot     ShotConfig     `yaml:"shot"`
	Controls ControlsConfig `yaml:"controls"`
	Physics  PhysicsConfig  `yaml:"physics"`
}

// Default returns the embedded configuration.
func Default() *Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		panic(fmt.Sprintf("config: embedded default.yaml: %v", err))
	}
	return &cfg
}

// Parse overlays data on the defaults, so a file only needs the keys it changes.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("Config: %s not found, using defaults", path)
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		errs = append(errs, fmt.Errorf("camera fov must be in (0, 180), got %g", c.Camera.FOV))
	}
	if c.Assets.Course == "" || c.Assets.Ball == "" {
		errs = append(errs, errors.New("assets course and ball paths are required"))
	}
	if c.Ball.Radius <= 0 {
		errs = append(errs, fmt.Errorf("ball radius must be positive, got %g", c.Ball.Radius))
	}
	if c.Ball.Density <= 0 {
		errs = append(errs, fmt.Errorf("ball density must be positive, got %g", c.Ball.Density))
	}
	if c.Ball.LinearDamping < 0 {
		errs = append(errs, fmt.Errorf("ball linear_damping must not be negative, got %g", c.Ball.LinearDamping))
	}
	if c.Course.FloorNormalY <= 0 || c.Course.FloorNormalY > 1 {
		errs = append(errs, fmt.Errorf("course floor_normal_y must be in (0, 1], got %g", c.Course.FloorNormalY))
	}
	if c.Shot.Segments <= 0 {
		errs = append(errs, fmt.Errorf("shot segments must be positive, got %d", c.Shot.Segments))
	}
	if c.Shot.MaxPower <= 0 {
		errs = append(errs, fmt.Errorf("shot max_power must be positive, got %g", c.Shot.MaxPower))
	}
	if c.Shot.ImpulseScale <= 0 {
		errs = append(errs, fmt.Errorf("shot impulse_scale must be positive, got %g", c.Shot.ImpulseScale))
	}
	if c.Shot.IndicatorRadius <= 0 {
		errs = append(errs, fmt.Errorf("shot indicator_radius must be positive, got %g", c.Shot.IndicatorRadius))
	}
	if c.Shot.RayDistance <= 0 {
		errs = append(errs, fmt.Errorf("shot ray_distance must be positive, got %g", c.Shot.RayDistance))
	}
	if _, ok := assets.LookupColor(c.Shot.IndicatorColor); !ok {
		errs = append(errs, fmt.Errorf("shot indicator_color %q is not a known color", c.Shot.IndicatorColor))
	}
	if _, err := KeyCode(c.Controls.Restart); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// RestartKey is the raylib key code bound to restart. Call after Validate.
func (c *Config) RestartKey() int32 {
	key, _ := KeyCode(c.Controls.Restart)
	return key
}

// IndicatorColor is the tint of the power indicator markers.
func (c *Config) IndicatorColor() rl.Color {
	color, _ := assets.LookupColor(c.Shot.IndicatorColor)
	return color
}

// KeyCode maps a key name to a raylib key code. Letters and digits map to
// their ASCII value, which is how raylib numbers them.
func KeyCode(name string) (int32, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	switch {
	case len(n) == 1 && n[0] >= 'A' && n[0] <= 'Z':
		return int32(n[0]), nil
	case len(n) == 1 && n[0] >= '0' && n[0] <= '9':
		return int32(n[0]), nil
	case n == "SPACE":
		return rl.KeySpace, nil
	case n == "ENTER":
		return rl.KeyEnter, nil
	case n == "BACKSPACE":
		return rl.KeyBackspace, nil
	}
	return 0, fmt.Errorf("unknown key %q", name)
}
