package game

import "fmt"

type AppState int

const (
	StateLoading AppState = iota
	StateInGame
)

func (s AppState) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StateInGame:
		return "InGame"
	}
	return fmt.Sprintf("AppState(%d)", int(s))
}

// StateMachine runs an enter hook once per transition and an update hook every frame.
type StateMachine struct {
	current AppState
	started bool
	enter   map[AppState]func() error
	update  map[AppState]func(dt float32) error
}

func NewStateMachine(initial AppState) *StateMachine {
	return &StateMachine{
		current: initial,
		enter:   make(map[AppState]func() error),
		update:  make(map[AppState]func(dt float32) error),
	}
}

func (m *StateMachine) OnEnter(s AppState, fn func() error) {
	m.enter[s] = fn
}

func (m *StateMachine) OnUpdate(s AppState, fn func(dt float32) error) {
	m.update[s] = fn
}

func (m *StateMachine) Current() AppState {
	return m.current
}

// Set switches state. The enter hook runs on the next Update, before that
// state's first update hook. Setting the current state again is a no-op.
func (m *StateMachine) Set(s AppState) {
	if s == m.current && m.started {
		return
	}
	m.current = s
	m.started = false
}

func (m *StateMachine) Update(dt float32) error {
	if !m.started {
		m.started = true
		if fn := m.enter[m.current]; fn != nil {
			if err := fn(); err != nil {
				return fmt.Errorf("game: enter %s: %w", m.current, err)
			}
		}
	}
	if fn := m.update[m.current]; fn != nil {
		return fn(dt)
	}
	return nil
}
