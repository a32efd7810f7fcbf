// Package command converts free-form command text into a typed
// (kind, variables) pair using an ordered pattern grammar.
//
// The grammar is an explicit ordered table. Kinds are tried strictly
// in declaration order, patterns within a kind in declaration order,
// and the first pattern that matches anywhere in the lower-cased input
// wins. Declaration order is the sole tie-break; neither match length
// nor specificity participates. Text that matches nothing parses to
// KindNone with empty variables, which is a normal result rather than
// an error.
package command
