// Package pipeline wires textual events through parse, generate, and
// execute.
//
// The handler runs synchronously on the emitting device's goroutine,
// like every manager handler; a long macro therefore stalls that
// device until it finishes. Callers who need decoupling route macros
// through the trigger engine instead.
package pipeline
