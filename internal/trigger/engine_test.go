package trigger

import (
	"sync"
	"testing"
	"time"

	"github.com/dshills/macroflow/internal/action"
	"github.com/dshills/macroflow/internal/command"
	"github.com/dshills/macroflow/internal/event"
	"github.com/dshills/macroflow/internal/macro"
)

// stubRunner records executed action lists and signals each run.
type stubRunner struct {
	mu   sync.Mutex
	runs [][]action.Action
	ch   chan struct{}
}

func newStubRunner() *stubRunner { return &stubRunner{ch: make(chan struct{}, 16)} }

func (r *stubRunner) Execute(actions []action.Action, _ command.Variables) error {
	r.mu.Lock()
	r.runs = append(r.runs, actions)
	r.mu.Unlock()
	r.ch <- struct{}{}
	return nil
}

func (r *stubRunner) wait(t *testing.T, n int) [][]action.Action {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for i := 0; i < n; i++ {
		select {
		case <-r.ch:
		case <-deadline:
			t.Fatalf("timed out waiting for %d runs", n)
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([][]action.Action, len(r.runs))
	copy(result, r.runs)
	return result
}

func keyDownEvent(key string) event.Event {
	return event.New(event.DeviceKeyboard, "kb0", event.KindKeyDown, map[string]any{"key": key})
}

func storeWith(macros ...macro.Macro) *macro.Store {
	s := macro.NewStore("")
	for _, m := range macros {
		s.Add(m)
	}
	return s
}

func TestEngine_MacroTriggerLaunches(t *testing.T) {
	m := macro.Macro{
		Name:    "screenshot",
		Actions: []action.Action{{Kind: action.KindKeyPress, Params: map[string]any{"key": "printscreen"}}},
		Trigger: macro.Trigger{Device: "keyboard", Event: "key_down", Key: "f13"},
		Enabled: true,
	}
	runner := newStubRunner()
	e := NewEngine(storeWith(m), runner)

	e.Handle(keyDownEvent("f13"))

	runs := runner.wait(t, 1)
	if len(runs[0]) != 1 || runs[0][0].Kind != action.KindKeyPress {
		t.Errorf("executed actions = %v, want the macro's key press", runs[0])
	}
}

func TestEngine_DisabledMacroIgnored(t *testing.T) {
	m := macro.Macro{
		Name:    "screenshot",
		Actions: []action.Action{{Kind: action.KindKeyPress}},
		Trigger: macro.Trigger{Key: "f13"},
		Enabled: false,
	}
	runner := newStubRunner()
	e := NewEngine(storeWith(m), runner)

	e.Handle(keyDownEvent("f13"))

	select {
	case <-runner.ch:
		t.Fatal("disabled macro must not launch")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestEngine_BindingLaunchesStoredMacro(t *testing.T) {
	m := macro.Macro{
		Name:    "pause-music",
		Actions: []action.Action{{Kind: action.KindKeyPress, Params: map[string]any{"key": "media_play_pause"}}},
		Enabled: true,
	}
	runner := newStubRunner()
	e := NewEngine(storeWith(m), runner)
	e.SetBindings([]Binding{
		{Macro: "pause-music", Device: "keyboard", Event: "key_down", Key: "f14"},
	})

	e.Handle(keyDownEvent("f14"))

	runs := runner.wait(t, 1)
	if len(runs) != 1 {
		t.Fatalf("runs = %d, want 1", len(runs))
	}
}

// A macro matched by both its own trigger and a binding launches once.
func TestEngine_NoDuplicateLaunch(t *testing.T) {
	m := macro.Macro{
		Name:    "screenshot",
		Actions: []action.Action{{Kind: action.KindKeyPress}},
		Trigger: macro.Trigger{Key: "f13"},
		Enabled: true,
	}
	runner := newStubRunner()
	e := NewEngine(storeWith(m), runner)
	e.SetBindings([]Binding{{Macro: "screenshot", Key: "f13"}})

	e.Handle(keyDownEvent("f13"))

	runner.wait(t, 1)
	select {
	case <-runner.ch:
		t.Fatal("macro launched twice for one event")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestEngine_UnmatchedEventIgnored(t *testing.T) {
	m := macro.Macro{
		Name:    "screenshot",
		Actions: []action.Action{{Kind: action.KindKeyPress}},
		Trigger: macro.Trigger{Key: "f13"},
		Enabled: true,
	}
	runner := newStubRunner()
	e := NewEngine(storeWith(m), runner)

	e.Handle(keyDownEvent("a"))

	select {
	case <-runner.ch:
		t.Fatal("unmatched event must not launch a macro")
	case <-time.After(100 * time.Millisecond):
	}
}
