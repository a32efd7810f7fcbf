// Package action defines the primitive automation step, its closed
// kind enum, typed parameter structs, and the generator that expands a
// parsed command into an ordered action list.
package action
