// Package app assembles the engine: configuration, logging, devices,
// the input manager, the macro store, the executor, and the trigger
// and pipeline handlers.
package app
