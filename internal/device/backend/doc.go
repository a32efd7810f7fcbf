// Package backend provides reference source backends for the device
// adapters. The only backend shipped with the engine is a tcell-based
// terminal key hook, useful for driving the pipeline from an attached
// terminal during development and for headless-free demos. Production
// deployments supply their own OS-level hooks.
package backend
