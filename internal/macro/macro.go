package macro

import (
	"github.com/dshills/macroflow/internal/action"
	"github.com/dshills/macroflow/internal/event"
)

// Trigger describes the device event that launches a macro. Zero
// fields are wildcards; a zero Trigger matches nothing.
type Trigger struct {
	// Device matches the emitting device kind name ("keyboard",
	// "controller", "midi"). Empty matches any kind.
	Device string `json:"device,omitempty"`

	// Event matches the event kind name ("key_down", "button",
	// "midi_message"). Empty matches any kind.
	Event string `json:"event,omitempty"`

	// Key matches the "key" data field of keyboard events.
	Key string `json:"key,omitempty"`

	// Button matches the "button" data field of controller events.
	Button *int `json:"button,omitempty"`
}

// IsZero reports whether the trigger has no criteria at all.
func (t Trigger) IsZero() bool {
	return t.Device == "" && t.Event == "" && t.Key == "" && t.Button == nil
}

// Matches reports whether ev satisfies every set criterion.
func (t Trigger) Matches(ev event.Event) bool {
	if t.IsZero() {
		return false
	}
	if t.Device != "" && t.Device != ev.DeviceKind.String() {
		return false
	}
	if t.Event != "" && t.Event != ev.Kind.String() {
		return false
	}
	if t.Key != "" {
		key, _ := ev.Data["key"].(string)
		if key != t.Key {
			return false
		}
	}
	if t.Button != nil {
		button, ok := ev.Data["button"].(int)
		if !ok || button != *t.Button {
			return false
		}
	}
	return true
}

// Macro is a named, ordered list of actions plus metadata.
type Macro struct {
	Name    string          `json:"name"`
	Actions []action.Action `json:"actions"`
	Trigger Trigger         `json:"trigger"`

	// Dynamic marks a macro whose params contain {name} placeholders
	// filled from variables at execution time.
	Dynamic bool `json:"dynamic"`

	Enabled bool `json:"enabled"`
}
