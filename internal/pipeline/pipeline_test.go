package pipeline

import (
	"errors"
	"sync"
	"testing"

	"github.com/dshills/macroflow/internal/action"
	"github.com/dshills/macroflow/internal/command"
	"github.com/dshills/macroflow/internal/event"
)

type stubRunner struct {
	mu   sync.Mutex
	runs [][]action.Action
	vars []command.Variables
	err  error
}

func (r *stubRunner) Execute(actions []action.Action, vars command.Variables) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs = append(r.runs, actions)
	r.vars = append(r.vars, vars)
	return r.err
}

func textEvent(text string) event.Event {
	return event.New(event.DeviceCommand, "cmd0", event.KindText, map[string]any{"text": text})
}

func TestHandle_ParsedCommandExecutes(t *testing.T) {
	runner := &stubRunner{}
	p := New(runner)

	p.Handle(textEvent("wait for 2s"))

	if len(runner.runs) != 1 {
		t.Fatalf("runs = %d, want 1", len(runner.runs))
	}
	actions := runner.runs[0]
	if len(actions) != 1 || actions[0].Kind != action.KindWait {
		t.Fatalf("actions = %v, want one wait", actions)
	}
	var params action.WaitParams
	if err := actions[0].Decode(&params); err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	if params.DurationMS != 2000 {
		t.Errorf("duration = %d, want 2000", params.DurationMS)
	}
}

func TestHandle_DeleteWordsEndToEnd(t *testing.T) {
	runner := &stubRunner{}
	p := New(runner)

	p.Handle(textEvent("delete the last 3 words"))

	if len(runner.runs) != 1 {
		t.Fatalf("runs = %d, want 1", len(runner.runs))
	}
	if got := len(runner.runs[0]); got != 4 {
		t.Errorf("actions = %d, want 4", got)
	}
}

func TestHandle_UnmatchedTextIsNoOp(t *testing.T) {
	runner := &stubRunner{}
	p := New(runner)

	p.Handle(textEvent("the weather is nice"))

	if len(runner.runs) != 0 {
		t.Errorf("runs = %d, want 0 for unmatched text", len(runner.runs))
	}
}

func TestHandle_NonTextualEventIgnored(t *testing.T) {
	runner := &stubRunner{}
	p := New(runner)

	p.Handle(event.New(event.DeviceKeyboard, "kb0", event.KindKeyDown, map[string]any{"key": "a"}))
	p.Handle(event.New(event.DeviceController, "pad0", event.KindButton, map[string]any{"button": 1}))

	if len(runner.runs) != 0 {
		t.Errorf("runs = %d, want 0 for non-textual events", len(runner.runs))
	}
}

func TestHandle_EmptyTextIgnored(t *testing.T) {
	runner := &stubRunner{}
	p := New(runner)

	p.Handle(textEvent(""))

	if len(runner.runs) != 0 {
		t.Errorf("runs = %d, want 0 for empty text", len(runner.runs))
	}
}

// Execution failure is absorbed here; Handle never panics or blocks the
// device loop on a runner error.
func TestHandle_ExecutionFailureAbsorbed(t *testing.T) {
	runner := &stubRunner{err: errors.New("injection failed")}
	p := New(runner)

	p.Handle(textEvent("press key enter"))

	if len(runner.runs) != 1 {
		t.Errorf("runs = %d, want 1", len(runner.runs))
	}
}

func TestHandle_VariablesPassedThrough(t *testing.T) {
	runner := &stubRunner{}
	p := New(runner)

	p.Handle(textEvent("repeat that 3 times"))

	if len(runner.vars) != 1 {
		t.Fatalf("vars recorded = %d, want 1", len(runner.vars))
	}
	if n := runner.vars[0].Int("times"); n != 3 {
		t.Errorf("times = %d, want 3", n)
	}
}
