package macro

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/macroflow/internal/action"
	"github.com/dshills/macroflow/internal/event"
)

func testMacro(name string) Macro {
	return Macro{
		Name: name,
		Actions: []action.Action{
			{Kind: action.KindKeyPress, Params: map[string]any{"key": "delete"}},
		},
		Trigger: Trigger{Device: "keyboard", Event: "key_down", Key: "f13"},
		Enabled: true,
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "macros.json")

	s := NewStore(path)
	s.Add(testMacro("greet"))
	s.Add(testMacro("farewell"))
	if err := s.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded := NewStore(path)
	if err := loaded.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	list := loaded.List()
	if len(list) != 2 {
		t.Fatalf("loaded %d macros, want 2", len(list))
	}
	if list[0].Name != "greet" || list[1].Name != "farewell" {
		t.Errorf("order = [%s %s], want insertion order preserved", list[0].Name, list[1].Name)
	}

	m, err := loaded.Get("greet")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if len(m.Actions) != 1 || m.Actions[0].Kind != action.KindKeyPress {
		t.Errorf("actions = %v, want one key_press", m.Actions)
	}
	if m.Trigger.Key != "f13" {
		t.Errorf("trigger key = %q, want f13", m.Trigger.Key)
	}
}

// The persisted form is a JSON array of {name, actions, trigger,
// dynamic, enabled} objects with action_type kind names.
func TestStore_PersistedShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "macros.json")
	s := NewStore(path)
	s.Add(testMacro("greet"))
	if err := s.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}

	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("persisted file is not a JSON array: %v", err)
	}
	if len(raw) != 1 {
		t.Fatalf("array length = %d, want 1", len(raw))
	}
	entry := raw[0]
	for _, field := range []string{"name", "actions", "trigger", "dynamic", "enabled"} {
		if _, ok := entry[field]; !ok {
			t.Errorf("persisted macro missing field %q", field)
		}
	}
	actions := entry["actions"].([]any)
	first := actions[0].(map[string]any)
	if first["action_type"] != "key_press" {
		t.Errorf("action_type = %v, want key_press", first["action_type"])
	}
}

func TestStore_LoadMissingFile(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "absent.json"))
	if err := s.Load(); err != nil {
		t.Errorf("Load() of missing file failed: %v", err)
	}
	if len(s.List()) != 0 {
		t.Error("missing file should load an empty list")
	}
}

func TestStore_AddReplacesInPlace(t *testing.T) {
	s := NewStore("")
	s.Add(testMacro("a"))
	s.Add(testMacro("b"))

	updated := testMacro("a")
	updated.Enabled = false
	s.Add(updated)

	list := s.List()
	if len(list) != 2 {
		t.Fatalf("list length = %d, want 2", len(list))
	}
	if list[0].Name != "a" || list[0].Enabled {
		t.Error("replacement should keep position and new content")
	}
}

func TestStore_Remove(t *testing.T) {
	s := NewStore("")
	s.Add(testMacro("a"))
	if err := s.Remove("a"); err != nil {
		t.Fatalf("Remove() failed: %v", err)
	}
	if err := s.Remove("a"); err != ErrNotFound {
		t.Errorf("second Remove() = %v, want ErrNotFound", err)
	}
}

func TestTrigger_Matches(t *testing.T) {
	ev := event.New(event.DeviceKeyboard, "kb0", event.KindKeyDown, map[string]any{"key": "f13"})

	tests := []struct {
		name    string
		trigger Trigger
		want    bool
	}{
		{"exact", Trigger{Device: "keyboard", Event: "key_down", Key: "f13"}, true},
		{"wildcard device", Trigger{Event: "key_down", Key: "f13"}, true},
		{"wrong key", Trigger{Device: "keyboard", Key: "f14"}, false},
		{"wrong event", Trigger{Event: "key_up", Key: "f13"}, false},
		{"zero trigger never fires", Trigger{}, false},
	}
	for _, tt := range tests {
		if got := tt.trigger.Matches(ev); got != tt.want {
			t.Errorf("%s: Matches() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestTrigger_MatchesButton(t *testing.T) {
	ev := event.New(event.DeviceController, "pad0", event.KindButton, map[string]any{"button": 3, "pressed": true})

	three := 3
	four := 4
	if !(Trigger{Device: "controller", Button: &three}).Matches(ev) {
		t.Error("button 3 trigger should match")
	}
	if (Trigger{Device: "controller", Button: &four}).Matches(ev) {
		t.Error("button 4 trigger should not match")
	}
}
