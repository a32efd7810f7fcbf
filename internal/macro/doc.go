// Package macro defines the named, ordered action list and its
// JSON-persisted store.
//
// The persisted form is a JSON array of macro objects. Writes are
// atomic (temp file plus rename) so a crash mid-save never leaves a
// truncated macro list on disk.
package macro
