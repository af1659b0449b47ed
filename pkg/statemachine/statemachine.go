package statemachine

import (
	"context"
	"fmt"
)

// State represents a state in the state machine.
type State interface {
	Name() string
}

// Event represents an event that can trigger a state transition.
type Event interface {
	Name() string
}

// Action executes side effects during a transition. Returning an error prevents it.
type Action func(ctx context.Context, from, to State, event Event, data any) error

// Guard evaluates whether a transition is allowed for the given data.
type Guard func(ctx context.Context, from State, event Event, data any) bool

// Transition defines a state change triggered by an event, with optional guards and actions.
type Transition struct {
	From    State
	To      State
	Event   Event
	Guards  []Guard
	Actions []Action
}

// Machine is an immutable transition table. It holds no current state:
// callers pass the state they are in and get the next one back, so a single
// Machine serves any number of concurrent sessions.
type Machine struct {
	transitions map[string]map[string][]Transition
	events      map[string][]Event
}

func newMachine() *Machine {
	return &Machine{
		transitions: make(map[string]map[string][]Transition),
		events:      make(map[string][]Event),
	}
}

func (m *Machine) add(t Transition) error {
	if t.From == nil || t.To == nil || t.Event == nil {
		return ErrInvalidTransition
	}

	from, event := t.From.Name(), t.Event.Name()
	if _, ok := m.transitions[from]; !ok {
		m.transitions[from] = make(map[string][]Transition)
	}
	if _, ok := m.transitions[from][event]; !ok {
		m.events[from] = append(m.events[from], t.Event)
	}

	// Several transitions per from/event pair branch on their guards.
	m.transitions[from][event] = append(m.transitions[from][event], t)
	return nil
}

// Fire returns the state reached from from on event. The first transition
// whose guards all pass wins; its actions run before the state is returned.
func (m *Machine) Fire(ctx context.Context, from State, event Event, data any) (State, error) {
	if from == nil || event == nil {
		return from, ErrInvalidEvent
	}

	t, err := m.find(ctx, from, event, data)
	if err != nil {
		return from, err
	}

	for _, action := range t.Actions {
		if err := action(ctx, from, t.To, event, data); err != nil {
			return from, fmt.Errorf("action failed: %w", err)
		}
	}
	return t.To, nil
}

// CanFire reports whether Fire would find an allowed transition.
func (m *Machine) CanFire(ctx context.Context, from State, event Event, data any) bool {
	if from == nil || event == nil {
		return false
	}
	_, err := m.find(ctx, from, event, data)
	return err == nil
}

// Events returns the events that have transitions out of from, in the
// order they were first added.
func (m *Machine) Events(from State) []Event {
	if from == nil {
		return nil
	}
	return append([]Event(nil), m.events[from.Name()]...)
}

func (m *Machine) find(ctx context.Context, from State, event Event, data any) (Transition, error) {
	candidates := m.transitions[from.Name()][event.Name()]
	if len(candidates) == 0 {
		return Transition{}, NewErrNoTransitionAvailable(from.Name(), event.Name())
	}

	for _, t := range candidates {
		if allowed(ctx, t, from, event, data) {
			return t, nil
		}
	}
	return Transition{}, NewErrTransitionRejected(from.Name(), event.Name())
}

func allowed(ctx context.Context, t Transition, from State, event Event, data any) bool {
	for _, guard := range t.Guards {
		if !guard(ctx, from, event, data) {
			return false
		}
	}
	return true
}

// StringState provides a simple string-based state implementation.
type StringState string

func (s StringState) Name() string {
	return string(s)
}

// StringEvent provides a simple string-based event implementation.
type StringEvent string

func (e StringEvent) Name() string {
	return string(e)
}
