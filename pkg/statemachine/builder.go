package statemachine

import "fmt"

// Builder provides a fluent API for declaring transitions.
type Builder struct {
	machine *Machine
	current Transition
	err     error
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{machine: newMachine()}
}

// From starts a transition out of state.
func (b *Builder) From(state State) *Builder {
	b.current = Transition{From: state}
	return b
}

// On sets the event that triggers the current transition.
func (b *Builder) On(event Event) *Builder {
	b.current.Event = event
	return b
}

// To sets the target state of the current transition.
func (b *Builder) To(state State) *Builder {
	b.current.To = state
	return b
}

// WithGuard adds a guard to the current transition. Nil guards are ignored.
func (b *Builder) WithGuard(guard Guard) *Builder {
	if guard != nil {
		b.current.Guards = append(b.current.Guards, guard)
	}
	return b
}

// WithAction adds an action to the current transition. Nil actions are ignored.
func (b *Builder) WithAction(action Action) *Builder {
	if action != nil {
		b.current.Actions = append(b.current.Actions, action)
	}
	return b
}

// Add records the current transition. The first error is kept and
// reported by Build.
func (b *Builder) Add() *Builder {
	if err := b.machine.add(b.current); err != nil && b.err == nil {
		b.err = fmt.Errorf("transition %v --%v--> %v: %w", name(b.current.From), name(b.current.Event), name(b.current.To), err)
	}
	b.current = Transition{}
	return b
}

// Build returns the machine or the first error met while adding transitions.
func (b *Builder) Build() (*Machine, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.machine, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *Machine {
	m, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to build state machine: %v", err))
	}
	return m
}

func name(v interface{ Name() string }) string {
	if v == nil {
		return "<nil>"
	}
	return v.Name()
}
