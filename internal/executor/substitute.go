package executor

import (
	"fmt"
	"strings"

	"github.com/dshills/macroflow/internal/action"
	"github.com/dshills/macroflow/internal/command"
)

// substitute returns a copy of a with {name} placeholders in string
// param values replaced from vars. Used by dynamic macros whose params
// are filled at execution time. Actions without placeholders are
// returned unchanged.
func substitute(a action.Action, vars command.Variables) action.Action {
	if len(vars) == 0 || len(a.Params) == 0 {
		return a
	}

	var out map[string]any
	for key, value := range a.Params {
		s, ok := value.(string)
		if !ok || !strings.Contains(s, "{") {
			continue
		}
		replaced := replacePlaceholders(s, vars)
		if replaced == s {
			continue
		}
		if out == nil {
			out = make(map[string]any, len(a.Params))
			for k, v := range a.Params {
				out[k] = v
			}
		}
		out[key] = replaced
	}

	if out == nil {
		return a
	}
	return action.Action{Kind: a.Kind, Params: out}
}

func replacePlaceholders(s string, vars command.Variables) string {
	for name, value := range vars {
		s = strings.ReplaceAll(s, "{"+name+"}", fmt.Sprint(value))
	}
	return s
}
