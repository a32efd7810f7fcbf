// Package event defines the immutable event record emitted by input
// devices and the enums identifying device and event kinds.
//
// Events are created exactly once by the emitting device and never
// mutated downstream. Handlers receive events by value; the Data map is
// shared between handlers and must be treated as read-only.
package event
