package assets

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// LoadState is the combined state of every asset queued on a Loader.
type LoadState int

const (
	NotLoaded LoadState = iota
	Loading
	Loaded
	Failed
)

func (s LoadState) String() string {
	switch s {
	case NotLoaded:
		return "NotLoaded"
	case Loading:
		return "Loading"
	case Loaded:
		return "Loaded"
	case Failed:
		return "Failed"
	}
	return "Unknown"
}

// Loader loads a group of models incrementally, one per Poll, so the frame
// loop keeps running while assets come in.
type Loader struct {
	manager *Manager
	queued  []string
	pending []string
	errs    map[string]error
}

func NewLoader(m *Manager) *Loader {
	if m == nil {
		m = NewManager(nil)
	}
	return &Loader{
		manager: m,
		errs:    make(map[string]error),
	}
}

// Queue adds paths to the group. Paths already queued are ignored.
func (l *Loader) Queue(paths ...string) {
	for _, path := range paths {
		if l.isQueued(path) {
			continue
		}
		l.queued = append(l.queued, path)
		l.pending = append(l.pending, path)
		log.Printf("Assets: queued %s", path)
	}
}

func (l *Loader) isQueued(path string) bool {
	for _, p := range l.queued {
		if p == path {
			return true
		}
	}
	return false
}

// Poll loads at most one pending asset and returns the group state.
func (l *Loader) Poll() LoadState {
	if len(l.pending) > 0 {
		path := l.pending[0]
		l.pending = l.pending[1:]

		model, err := l.manager.Model(path)
		if err != nil {
			l.errs[path] = err
			log.Printf("Assets: failed to load %s: %v", path, err)
		} else {
			log.Printf("Assets: loaded %s (%d meshes)", path, model.MeshCount)
		}
	}
	return l.State()
}

// State reports Failed as soon as any asset failed, even if others are still pending.
func (l *Loader) State() LoadState {
	switch {
	case len(l.queued) == 0:
		return NotLoaded
	case len(l.errs) > 0:
		return Failed
	case len(l.pending) > 0:
		return Loading
	}
	return Loaded
}

// Err returns the error of the first queued asset that failed.
func (l *Loader) Err() error {
	for _, path := range l.queued {
		if err, ok := l.errs[path]; ok {
			return err
		}
	}
	return nil
}

// Progress returns how many queued assets have been attempted.
func (l *Loader) Progress() (done, total int) {
	return len(l.queued) - len(l.pending), len(l.queued)
}

// Model returns a loaded model from the group.
func (l *Loader) Model(path string) (rl.Model, bool) {
	if _, failed := l.errs[path]; failed {
		return rl.Model{}, false
	}
	return l.manager.Get(path)
}
