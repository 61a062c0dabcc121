package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected embedded default to validate, got %v", err)
	}

	if cfg.Ball.Spawn.Raylib() != (rl.Vector3{X: -6.5, Y: 5, Z: 0}) {
		t.Errorf("Expected spawn (-6.5, 5, 0), got %+v", cfg.Ball.Spawn)
	}
	if cfg.Ball.Radius != 0.375 || cfg.Ball.Density != 3 || !cfg.Ball.CCD {
		t.Errorf("Unexpected ball config %+v", cfg.Ball)
	}
	if cfg.Shot.Segments != 4 || cfg.Shot.MaxPower != 10 || cfg.Shot.RayDistance != 100 {
		t.Errorf("Unexpected shot config %+v", cfg.Shot)
	}
	if cfg.Course.Wall.Physic().Restitution != 0.5 || cfg.Course.Floor.Physic().Friction != 0.2 {
		t.Errorf("Unexpected course materials %+v", cfg.Course)
	}
	if cfg.RestartKey() != rl.KeyR {
		t.Errorf("Expected restart on R, got %d", cfg.RestartKey())
	}
	if cfg.IndicatorColor() != (rl.Color{R: 240, G: 248, B: 255, A: 255}) {
		t.Errorf("Expected AliceBlue indicator, got %+v", cfg.IndicatorColor())
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte("shot:\n  max_power: 6\ncontrols:\n  restart: t\n"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Shot.MaxPower != 6 {
		t.Errorf("Expected max_power 6, got %g", cfg.Shot.MaxPower)
	}
	if cfg.Shot.Segments != 4 {
		t.Errorf("Expected unset segments to keep default 4, got %d", cfg.Shot.Segments)
	}
	if cfg.RestartKey() != rl.KeyT {
		t.Errorf("Expected lower-case key name to map to T, got %d", cfg.RestartKey())
	}
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]string{
		"radius":   "ball:\n  radius: 0\n",
		"density":  "ball:\n  density: -1\n",
		"segments": "shot:\n  segments: 0\n",
		"power":    "shot:\n  max_power: 0\n",
		"key":      "controls:\n  restart: F13\n",
		"color":    "shot:\n  indicator_color: Chartreuse\n",
		"normal0":  "course:\n  floor_normal_y: 0\n",
		"normal1":  "course:\n  floor_normal_y: 1.5\n",
		"scale0":   "shot:\n  impulse_scale: 0\n",
		"scaleNeg": "shot:\n  impulse_scale: -1\n",
		"marker":   "shot:\n  indicator_radius: 0\n",
	}
	for name, doc := range cases {
		if _, err := Parse([]byte(doc)); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	_, err := Parse([]byte("ball:\n  radius: 0\n  density: 0\n"))
	if err == nil {
		t.Fatal("Expected validation error")
	}
	if !strings.Contains(err.Error(), "radius") || !strings.Contains(err.Error(), "density") {
		t.Errorf("Expected both radius and density in %q", err)
	}
}

func TestParseRejectsBadYAML(t *testing.T) {
	if _, err := Parse([]byte("shot: [")); err == nil {
		t.Error("Expected unmarshal error")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Shot.Segments != 4 {
		t.Errorf("Expected defaults, got %+v", cfg.Shot)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minigolf.yaml")
	if err := os.WriteFile(path, []byte("ball:\n  spawn: {x: 1, y: 2, z: 3}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Ball.Spawn != (Vec3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("Expected spawn (1, 2, 3), got %+v", cfg.Ball.Spawn)
	}

	if err := os.WriteFile(path, []byte("ball:\n  radius: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), path) {
		t.Errorf("Expected error naming %s, got %v", path, err)
	}
}

func TestKeyCode(t *testing.T) {
	for name, want := range map[string]int32{"R": rl.KeyR, "a": rl.KeyA, "7": rl.KeySeven, "space": rl.KeySpace} {
		got, err := KeyCode(name)
		if err != nil || got != want {
			t.Errorf("KeyCode(%q): expected %d, got %d (%v)", name, want, got, err)
		}
	}
	for _, name := range []string{"", "RR", "?"} {
		if _, err := KeyCode(name); err == nil {
			t.Errorf("KeyCode(%q): expected error", name)
		}
	}
}
