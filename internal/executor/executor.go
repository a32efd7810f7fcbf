package executor

import (
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dshills/macroflow/internal/action"
	"github.com/dshills/macroflow/internal/command"
)

// Executor interprets action lists strictly in order against its
// collaborators. Safe for use from multiple goroutines, but only one
// Execute invocation runs at a time.
type Executor struct {
	collab    Collaborators
	executing atomic.Bool
	sleep     func(time.Duration)
	log       *logrus.Entry
}

// Option configures an Executor.
type Option func(*Executor)

// WithSleep replaces the wait-action sleep function. Used by tests to
// avoid real delays.
func WithSleep(fn func(time.Duration)) Option {
	return func(e *Executor) {
		if fn != nil {
			e.sleep = fn
		}
	}
}

// New creates an executor over the given collaborators. Nil
// collaborator fields degrade to logged no-ops.
func New(collab Collaborators, opts ...Option) *Executor {
	e := &Executor{
		collab: collab.withDefaults(),
		sleep:  time.Sleep,
		log:    logrus.WithField("component", "executor"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// IsExecuting reports whether an Execute invocation is in progress.
func (e *Executor) IsExecuting() bool { return e.executing.Load() }

// Cancel clears the executing flag. The running invocation stops
// before its next action begins; an action already in progress always
// completes (a wait sleeps its full duration once started).
func (e *Executor) Cancel() { e.executing.Store(false) }

// Execute runs the action list in order. Variables fill {name}
// placeholders in string params for dynamic macros.
//
// A collaborator failure is not swallowed: it aborts the remaining
// actions and propagates to the caller, with prior side effects left
// in place. An action kind outside the dispatch table is logged and
// skipped. Cancellation between actions returns ErrCancelled.
func (e *Executor) Execute(actions []action.Action, vars command.Variables) error {
	if !e.executing.CompareAndSwap(false, true) {
		return ErrAlreadyExecuting
	}
	defer e.executing.Store(false)

	for i, a := range actions {
		if !e.executing.Load() {
			return ErrCancelled
		}
		if err := e.dispatch(substitute(a, vars)); err != nil {
			return fmt.Errorf("action %d (%s): %w", i, a.Kind, err)
		}
	}
	return nil
}

// dispatch maps one action kind to exactly one collaborator call.
func (e *Executor) dispatch(a action.Action) error {
	switch a.Kind {
	case action.KindKeyPress:
		var p action.KeyPressParams
		if err := a.Decode(&p); err != nil {
			return err
		}
		return e.collab.Keyboard.SendKey(p.Key, p.Hold)

	case action.KindClick:
		return e.click(a)

	case action.KindPointerMove:
		var p action.PointerMoveParams
		if err := a.Decode(&p); err != nil {
			return err
		}
		return e.collab.Pointer.Move(p.X, p.Y, p.Relative)

	case action.KindPaste:
		return e.paste(a)

	case action.KindWait:
		var p action.WaitParams
		if err := a.Decode(&p); err != nil {
			return err
		}
		e.sleep(time.Duration(p.DurationMS) * time.Millisecond)
		return nil

	case action.KindOpenFile:
		var p action.OpenFileParams
		if err := a.Decode(&p); err != nil {
			return err
		}
		return e.collab.Files.OpenFile(p.Path)

	case action.KindOpenURL:
		var p action.OpenURLParams
		if err := a.Decode(&p); err != nil {
			return err
		}
		return e.collab.URLs.OpenURL(p.URL)

	case action.KindLaunchApp:
		var p action.LaunchAppParams
		if err := a.Decode(&p); err != nil {
			return err
		}
		return e.collab.Processes.Launch(p.Path, p.Args)

	case action.KindSwitchWindow:
		var p action.SwitchWindowParams
		if err := a.Decode(&p); err != nil {
			return err
		}
		return e.collab.Windows.Switch(p.Title, p.Match)

	case action.KindRunScript:
		var p action.RunScriptParams
		if err := a.Decode(&p); err != nil {
			return err
		}
		return e.collab.Scripts.Run(p.Path, p.Args)

	case action.KindRepeat:
		// Marker action; nothing to execute.
		return nil

	default:
		e.log.WithField("action_type", a.Kind.String()).Warn("unsupported action kind, skipping")
		return nil
	}
}

// click moves the pointer when the click is positioned, then clicks.
// A relative zero-offset click leaves the pointer where it is.
func (e *Executor) click(a action.Action) error {
	var p action.ClickParams
	if err := a.Decode(&p); err != nil {
		return err
	}
	if p.Button == "" {
		p.Button = "left"
	}
	if p.Clicks <= 0 {
		p.Clicks = 1
	}

	if !p.Relative || p.X != 0 || p.Y != 0 {
		if err := e.collab.Pointer.Move(p.X, p.Y, p.Relative); err != nil {
			return err
		}
	}
	return e.collab.Pointer.Click(p.Button, p.Clicks)
}

// paste writes the clipboard, then sends the platform paste chord.
func (e *Executor) paste(a action.Action) error {
	var p action.PasteParams
	if err := a.Decode(&p); err != nil {
		return err
	}
	if err := e.collab.Clipboard.WriteText(p.Text); err != nil {
		return err
	}
	return e.collab.Keyboard.SendKey(pasteChord(), false)
}

// pasteChord returns the platform paste key chord.
func pasteChord() string {
	if runtime.GOOS == "darwin" {
		return "cmd+v"
	}
	return "ctrl+v"
}
