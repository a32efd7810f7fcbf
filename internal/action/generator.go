package action

import (
	"regexp"
	"strings"

	"github.com/dshills/macroflow/internal/command"
)

// selectPrevWordChord is the key chord that extends the selection over
// the previous word.
const selectPrevWordChord = "ctrl+shift+left"

// urlScheme matches a URL-scheme prefix (RFC 3986 shape).
var urlScheme = regexp.MustCompile(`^[a-z][a-z0-9+.-]*://`)

// Generate expands a parsed command into an ordered action list. It is
// a pure function of its inputs; KindNone and unrecognized kinds
// produce an empty list.
func Generate(kind command.Kind, vars command.Variables) []Action {
	switch kind {
	case command.KindDeleteWords:
		return generateDeleteWords(vars.Int("count"))
	case command.KindRepeat:
		// Marker only; the caller decides what to unroll.
		return []Action{{Kind: KindRepeat, Params: map[string]any{"times": vars.Int("times")}}}
	case command.KindWait:
		return []Action{{Kind: KindWait, Params: map[string]any{"duration_ms": vars.Int("duration_ms")}}}
	case command.KindTypeText:
		return []Action{{Kind: KindPaste, Params: map[string]any{"text": vars.String("text")}}}
	case command.KindPressKey:
		return []Action{{Kind: KindKeyPress, Params: map[string]any{"key": vars.String("key")}}}
	case command.KindClick:
		return generateClick(vars)
	case command.KindOpen:
		return generateOpen(vars.String("target"))
	default:
		return nil
	}
}

// generateDeleteWords selects backwards one word at a time, then
// deletes the selection.
func generateDeleteWords(count int) []Action {
	actions := make([]Action, 0, count+1)
	for i := 0; i < count; i++ {
		actions = append(actions, Action{
			Kind:   KindKeyPress,
			Params: map[string]any{"key": selectPrevWordChord},
		})
	}
	return append(actions, Action{
		Kind:   KindKeyPress,
		Params: map[string]any{"key": "delete"},
	})
}

// generateClick emits an absolute click when a position was parsed and
// a zero-offset relative click otherwise.
func generateClick(vars command.Variables) []Action {
	button := vars.String("button")
	if button == "" {
		button = "left"
	}

	_, hasX := vars["x"]
	_, hasY := vars["y"]
	if hasX && hasY {
		return []Action{{Kind: KindClick, Params: map[string]any{
			"x":      vars.Int("x"),
			"y":      vars.Int("y"),
			"button": button,
		}}}
	}

	return []Action{{Kind: KindClick, Params: map[string]any{
		"x":        0,
		"y":        0,
		"relative": true,
		"button":   button,
	}}}
}

// generateOpen classifies the target: a URL-scheme prefix opens a URL,
// a path-separator-plus-dot shape opens a file, anything else launches
// an application with no arguments.
func generateOpen(target string) []Action {
	switch {
	case urlScheme.MatchString(target):
		return []Action{{Kind: KindOpenURL, Params: map[string]any{"url": target}}}
	case hasPathShape(target):
		return []Action{{Kind: KindOpenFile, Params: map[string]any{"path": target}}}
	default:
		return []Action{{Kind: KindLaunchApp, Params: map[string]any{"path": target}}}
	}
}

// hasPathShape reports whether target looks like a file path: it
// contains a path separator and a dot (file-extension shape).
func hasPathShape(target string) bool {
	return strings.ContainsAny(target, `/\`) && strings.Contains(target, ".")
}
