// Package fsmhook provides a small finite state machine engine with a
// validated transition table, bounded undo history, and Mermaid diagram
// generation.
//
// A machine is built from a TransitionTable describing which transitions
// each state permits, and an initial state:
//
//	table := fsmhook.NewTable().
//		State("locked").Permit("coin", "unlocked").
//		State("unlocked").Permit("push", "locked").
//		MustBuild()
//
//	m := fsmhook.New("locked", table)
//	m.Transition("coin")
//	m.Undo()
//
// Invalid transitions and undo on an empty history are expected outcomes,
// not errors: the machine leaves its state untouched and reports through the
// configured Logger. Callers detect a rejected transition by observing that
// CurrentState did not change.
package fsmhook
