package action

import (
	"encoding/json"
	"testing"
)

func TestKind_MarshalText(t *testing.T) {
	data, err := json.Marshal(Action{Kind: KindKeyPress, Params: map[string]any{"key": "delete"}})
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	want := `{"action_type":"key_press","params":{"key":"delete"}}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestKind_UnmarshalText(t *testing.T) {
	var a Action
	if err := json.Unmarshal([]byte(`{"action_type":"open_url","params":{"url":"https://x"}}`), &a); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if a.Kind != KindOpenURL {
		t.Errorf("kind = %s, want open_url", a.Kind)
	}
}

func TestKind_UnmarshalUnknown(t *testing.T) {
	var a Action
	err := json.Unmarshal([]byte(`{"action_type":"fly_to_moon"}`), &a)
	if err == nil {
		t.Fatal("expected error for unknown action_type")
	}
}

// JSON numbers decode as float64; Decode must still fill int fields.
func TestAction_DecodeWeaklyTyped(t *testing.T) {
	a := Action{Kind: KindWait, Params: map[string]any{"duration_ms": float64(1500)}}

	var p WaitParams
	if err := a.Decode(&p); err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	if p.DurationMS != 1500 {
		t.Errorf("DurationMS = %d, want 1500", p.DurationMS)
	}
}
