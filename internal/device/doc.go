// Package device provides the input device abstraction, the concrete
// source adapters, and the Manager that owns the device registry and
// fans out events to handlers.
//
// Each device owns exactly one background loop. The loop blocks or
// polls on the device's source and emits one event per discrete input
// unit. Callbacks run synchronously on the device's own goroutine, so
// a slow callback stalls that device's loop until it returns.
//
// Source backends (key hooks, controller handles, MIDI ports,
// recognizers) are collaborator interfaces supplied by the caller. An
// absent backend degrades the adapter to a permanently idle loop that
// logs and exits rather than failing device startup.
package device
