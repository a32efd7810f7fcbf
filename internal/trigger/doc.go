// Package trigger launches stored macros from device events.
//
// Triggers come from two places: each macro's own trigger object, and
// an optional YAML binding file mapping events to macro names. The
// engine registers as an input-manager handler; because manager
// dispatch runs on the emitting device's goroutine, matched macros are
// launched on their own goroutine so a long macro cannot stall the
// device loop.
package trigger
