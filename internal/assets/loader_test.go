package assets

import (
	"errors"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var errMissing = errors.New("missing")

func fakeManager(calls map[string]int, missing ...string) *Manager {
	m := NewManager(func(path string) (rl.Model, error) {
		calls[path]++
		for _, p := range missing {
			if p == path {
				return rl.Model{}, errMissing
			}
		}
		return rl.Model{MeshCount: 1}, nil
	})
	m.unload = func(rl.Model) {}
	return m
}

func TestManagerCachesByPath(t *testing.T) {
	calls := make(map[string]int)
	m := fakeManager(calls)

	for range 3 {
		if _, err := m.Model("assets/ball.glb"); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}
	if calls["assets/ball.glb"] != 1 {
		t.Errorf("Expected one load, got %d", calls["assets/ball.glb"])
	}
	if m.Count() != 1 {
		t.Errorf("Expected 1 cached model, got %d", m.Count())
	}

	m.Unload()
	if _, ok := m.Get("assets/ball.glb"); ok {
		t.Error("Expected cache to be empty after Unload")
	}
}

func TestManagerDoesNotCacheFailures(t *testing.T) {
	calls := make(map[string]int)
	m := fakeManager(calls, "nope.glb")

	m.Model("nope.glb")
	m.Model("nope.glb")
	if calls["nope.glb"] != 2 {
		t.Errorf("Expected failed loads to retry, got %d calls", calls["nope.glb"])
	}
}

func TestLoaderPollsOneAssetAtATime(t *testing.T) {
	calls := make(map[string]int)
	l := NewLoader(fakeManager(calls))

	if l.State() != NotLoaded {
		t.Errorf("Expected NotLoaded, got %s", l.State())
	}

	l.Queue("assets/mini_golf.glb", "assets/ball.glb", "assets/ball.glb")
	if _, total := l.Progress(); total != 2 {
		t.Errorf("Expected duplicate path ignored, got %d queued", total)
	}
	if l.State() != Loading {
		t.Errorf("Expected Loading, got %s", l.State())
	}

	if s := l.Poll(); s != Loading {
		t.Errorf("Expected Loading after first poll, got %s", s)
	}
	if len(calls) != 1 {
		t.Errorf("Expected one asset loaded per poll, got %d", len(calls))
	}

	if s := l.Poll(); s != Loaded {
		t.Errorf("Expected Loaded after second poll, got %s", s)
	}
	if s := l.Poll(); s != Loaded {
		t.Errorf("Expected Loaded to be stable, got %s", s)
	}
	if _, ok := l.Model("assets/ball.glb"); !ok {
		t.Error("Expected ball model available")
	}
	if l.Err() != nil {
		t.Errorf("Expected no error, got %v", l.Err())
	}
}

func TestLoaderFailure(t *testing.T) {
	calls := make(map[string]int)
	l := NewLoader(fakeManager(calls, "assets/mini_golf.glb"))
	l.Queue("assets/mini_golf.glb", "assets/ball.glb")

	if s := l.Poll(); s != Failed {
		t.Errorf("Expected Failed, got %s", s)
	}
	if !errors.Is(l.Err(), errMissing) {
		t.Errorf("Expected missing error, got %v", l.Err())
	}
	if _, ok := l.Model("assets/mini_golf.glb"); ok {
		t.Error("Failed model should not be available")
	}

	// The rest of the group still loads, but the group stays failed
	if s := l.Poll(); s != Failed {
		t.Errorf("Expected Failed to persist, got %s", s)
	}
	if done, total := l.Progress(); done != 2 || total != 2 {
		t.Errorf("Expected 2/2 attempted, got %d/%d", done, total)
	}
}

func TestRaylibLoadMissingFile(t *testing.T) {
	if _, err := RaylibLoad("does/not/exist.glb"); err == nil {
		t.Error("Expected error for a missing file")
	}
}

func TestLookupColor(t *testing.T) {
	c, ok := LookupColor("AliceBlue")
	if !ok || c != (rl.Color{R: 240, G: 248, B: 255, A: 255}) {
		t.Errorf("Expected AliceBlue, got %+v", c)
	}
	if _, ok := LookupColor("Chartreuse"); ok {
		t.Error("Expected unknown color name to be rejected")
	}
}
