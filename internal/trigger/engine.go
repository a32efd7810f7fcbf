package trigger

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/dshills/macroflow/internal/action"
	"github.com/dshills/macroflow/internal/command"
	"github.com/dshills/macroflow/internal/event"
	"github.com/dshills/macroflow/internal/executor"
	"github.com/dshills/macroflow/internal/macro"
)

// Runner executes an action list. Satisfied by *executor.Executor.
type Runner interface {
	Execute(actions []action.Action, vars command.Variables) error
}

// Engine matches events against macro triggers and bindings and
// launches the matching macros.
type Engine struct {
	store  *macro.Store
	runner Runner
	log    *logrus.Entry

	mu       sync.RWMutex
	bindings []Binding
}

// NewEngine creates a trigger engine over the given store and runner.
func NewEngine(store *macro.Store, runner Runner) *Engine {
	return &Engine{
		store:  store,
		runner: runner,
		log:    logrus.WithField("component", "trigger-engine"),
	}
}

// SetBindings replaces the binding list. Safe to call while events are
// flowing; in-flight dispatches keep the list they started with.
func (e *Engine) SetBindings(bindings []Binding) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.bindings = bindings
}

// Handle is the input-manager handler. It collects every enabled macro
// whose trigger or binding matches ev and launches each on its own
// goroutine, returning immediately to the device loop.
func (e *Engine) Handle(ev event.Event) {
	for _, m := range e.matches(ev) {
		go e.run(m)
	}
}

// matches returns the enabled macros triggered by ev, macro-level
// triggers first, then bindings, without duplicates.
func (e *Engine) matches(ev event.Event) []macro.Macro {
	var result []macro.Macro
	seen := make(map[string]bool)

	for _, m := range e.store.List() {
		if m.Enabled && m.Trigger.Matches(ev) {
			result = append(result, m)
			seen[m.Name] = true
		}
	}

	e.mu.RLock()
	bindings := e.bindings
	e.mu.RUnlock()

	for _, b := range bindings {
		if seen[b.Macro] || !b.Trigger().Matches(ev) {
			continue
		}
		m, err := e.store.Get(b.Macro)
		if err != nil {
			e.log.WithField("macro", b.Macro).Warn("binding references unknown macro")
			continue
		}
		if !m.Enabled {
			continue
		}
		result = append(result, m)
		seen[m.Name] = true
	}
	return result
}

func (e *Engine) run(m macro.Macro) {
	err := e.runner.Execute(m.Actions, nil)
	switch {
	case err == nil:
	case errors.Is(err, executor.ErrCancelled):
		e.log.WithField("macro", m.Name).Info("macro cancelled")
	case errors.Is(err, executor.ErrAlreadyExecuting):
		e.log.WithField("macro", m.Name).Warn("executor busy, macro skipped")
	default:
		e.log.WithField("macro", m.Name).WithError(err).Error("macro failed")
	}
}
