package executor

import "errors"

// Executor errors.
var (
	// ErrCancelled indicates execution was cancelled between actions.
	ErrCancelled = errors.New("executor: execution cancelled")

	// ErrAlreadyExecuting indicates Execute was called while a prior
	// invocation on the same executor is still running.
	ErrAlreadyExecuting = errors.New("executor: already executing")
)
