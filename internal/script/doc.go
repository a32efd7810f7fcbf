// Package script provides an in-process Lua ScriptRunner collaborator.
//
// Each Run call gets a fresh Lua state, so scripts cannot leak globals
// into each other and a misbehaving script cannot poison later runs.
// gopher-lua's LState is not goroutine-safe; the per-run state also
// sidesteps that constraint.
package script
