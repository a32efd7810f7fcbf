// Package executor interprets action lists sequentially against
// injected collaborator interfaces.
//
// Execution is synchronous on the calling goroutine and performs no
// implicit threading; callers wanting non-blocking macro execution
// offload it themselves. Cancellation is cooperative and coarse: the
// executing flag is checked once before each action begins, so
// clearing it stops the loop before the next action but never
// interrupts an action already in progress.
//
// Each collaborator is independently optional. A nil collaborator is
// replaced at construction with an absent implementation that logs and
// no-ops, so a missing backend makes the affected actions inert rather
// than crashing.
package executor
