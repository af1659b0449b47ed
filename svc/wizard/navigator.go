package wizard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/atnchile/portal/pkg/logger"
	"github.com/atnchile/portal/pkg/statemachine"
)

type event string

func (e event) Name() string {
	return string(e)
}

const (
	eventIdentify event = "identify"
	eventBack     event = "back"
	eventHome     event = "home"
	eventReset    event = "reset"
)

func selectEvent(target Step) event {
	return event("select:" + target)
}

func jumpEvent(target Step) event {
	return event("jump:" + target)
}

// Navigator applies wizard operations to State values. It holds no session
// data and is safe for concurrent use.
type Navigator struct {
	machine *statemachine.Machine
	logger  *slog.Logger
}

// Option configures a Navigator.
type Option func(*Navigator)

func WithLogger(l *slog.Logger) Option {
	return func(n *Navigator) {
		if l != nil {
			n.logger = l
		}
	}
}

// NewNavigator builds the wizard transition table.
func NewNavigator(opts ...Option) *Navigator {
	n := &Navigator{logger: logger.Discard()}
	for _, opt := range opts {
		opt(n)
	}
	n.logger = n.logger.With(logger.Component("wizard"))
	n.machine = n.build()
	return n
}

func (n *Navigator) build() *statemachine.Machine {
	b := statemachine.NewBuilder()
	trace := n.trace

	for _, from := range steps {
		b.From(from).On(eventIdentify).To(StepHome).WithGuard(identified).WithAction(trace).Add()
		if from == StepValidation {
			continue
		}

		b.From(from).On(eventHome).To(StepHome).WithGuard(identified).WithAction(trace).Add()
		b.From(from).On(eventReset).To(StepHome).WithGuard(identified).WithAction(trace).Add()

		if parent := from.Parent(); parent != "" {
			b.From(from).On(eventBack).To(parent).WithGuard(identified).WithAction(trace).Add()
		}
		for _, ancestor := range from.Ancestors() {
			b.From(from).On(jumpEvent(ancestor)).To(ancestor).WithGuard(identified).WithAction(trace).Add()
		}

		// A sub-section opens from its parent menu or from any sibling.
		for _, child := range from.Children() {
			b.From(from).On(selectEvent(child)).To(child).WithGuard(identified).WithAction(trace).Add()
		}
		if parent := from.Parent(); parent != "" {
			for _, sibling := range parent.Children() {
				if sibling != from {
					b.From(from).On(selectEvent(sibling)).To(sibling).WithGuard(identified).WithAction(trace).Add()
				}
			}
		}
	}

	return b.MustBuild()
}

// Identify verifies id and moves the session to the home menu.
func (n *Navigator) Identify(ctx context.Context, s State, id Identity) (State, error) {
	if err := id.Validate(); err != nil {
		return s, err
	}
	id = id.Canonical()
	candidate := s
	candidate.Identity = &id
	return n.fire(ctx, s, candidate, eventIdentify)
}

// Select opens step, which must be a sub-section of the current step or a sibling of it.
func (n *Navigator) Select(ctx context.Context, s State, step Step) (State, error) {
	if !step.Valid() {
		return s, fmt.Errorf("%w: %q", ErrUnknownStep, step)
	}
	return n.fire(ctx, s, s, selectEvent(step))
}

// Back returns to the parent of the current step.
func (n *Navigator) Back(ctx context.Context, s State) (State, error) {
	return n.fire(ctx, s, s, eventBack)
}

// Jump moves to a step of the current breadcrumb, dropping the crumbs after it.
func (n *Navigator) Jump(ctx context.Context, s State, step Step) (State, error) {
	if !step.Valid() {
		return s, fmt.Errorf("%w: %q", ErrUnknownStep, step)
	}
	if step == s.Step {
		return n.current(s)
	}
	return n.fire(ctx, s, s, jumpEvent(step))
}

// Home moves to the request type menu.
func (n *Navigator) Home(ctx context.Context, s State) (State, error) {
	return n.fire(ctx, s, s, eventHome)
}

// Reset ends the current request and returns to the home menu. The
// verified identity is kept so the author can file another request.
func (n *Navigator) Reset(ctx context.Context, s State) (State, error) {
	return n.fire(ctx, s, s, eventReset)
}

// Allowed lists the steps reachable with Select from the current step.
func (n *Navigator) Allowed(ctx context.Context, s State) []Step {
	if !s.Step.Valid() {
		return nil
	}
	var allowed []Step
	for _, step := range steps {
		if n.machine.CanFire(ctx, s.Step, selectEvent(step), s) {
			allowed = append(allowed, step)
		}
	}
	return allowed
}

func (n *Navigator) current(s State) (State, error) {
	if !s.Identified() {
		return s, ErrIdentityRequired
	}
	return at(s.Step, s.Identity), nil
}

// fire runs ev from s.Step with candidate as guard data. The returned state
// carries candidate's identity.
func (n *Navigator) fire(ctx context.Context, s, candidate State, ev event) (State, error) {
	if !s.Step.Valid() {
		return s, fmt.Errorf("%w: %q", ErrUnknownStep, s.Step)
	}
	if !candidate.Identified() {
		return s, ErrIdentityRequired
	}

	next, err := n.machine.Fire(ctx, s.Step, ev, candidate)
	switch {
	case err == nil:
		return at(next.(Step), candidate.Identity), nil
	case statemachine.IsTransitionRejectedError(err):
		return s, ErrIdentityRequired
	case statemachine.IsNoTransitionAvailableError(err):
		return s, fmt.Errorf("%w: %s from %s", ErrNavigationBlocked, ev, s.Step)
	default:
		return s, errors.Join(ErrNavigationBlocked, err)
	}
}

func (n *Navigator) trace(ctx context.Context, from, to statemachine.State, ev statemachine.Event, _ any) error {
	n.logger.DebugContext(ctx, "wizard transition",
		logger.Event(ev.Name()),
		slog.String("from", from.Name()),
		logger.Step(to.Name()),
	)
	return nil
}

func identified(_ context.Context, _ statemachine.State, _ statemachine.Event, data any) bool {
	s, ok := data.(State)
	return ok && s.Identified()
}
