// Package statemachine provides a stateless finite state machine.
//
// A Machine is an immutable transition table built with Builder. It keeps
// no current state; Fire takes the state a caller is in and returns the next
// one, which lets state live in an explicit value owned by the caller.
//
//	m := statemachine.NewBuilder().
//		From(Draft).On(Submit).To(Sent).WithGuard(isComplete).Add().
//		MustBuild()
//
//	next, err := m.Fire(ctx, Draft, Submit, form)
//
// Transitions sharing a from state and event are tried in insertion order;
// the first whose guards all pass is taken. Guard failures surface as
// ErrTransitionRejected, unknown pairs as ErrNoTransitionAvailable.
package statemachine
