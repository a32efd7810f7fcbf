package action

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Kind is the closed set of primitive automation steps.
type Kind uint8

const (
	// KindUnknown is the zero value; executors skip it.
	KindUnknown Kind = iota
	// KindKeyPress sends one key or chord.
	KindKeyPress
	// KindClick clicks a pointer button, absolute or relative.
	KindClick
	// KindPointerMove moves the pointer without clicking.
	KindPointerMove
	// KindPaste writes text to the clipboard and sends the paste chord.
	KindPaste
	// KindWait sleeps for a duration.
	KindWait
	// KindOpenFile opens a file with its default handler.
	KindOpenFile
	// KindOpenURL opens a URL in the default browser.
	KindOpenURL
	// KindLaunchApp launches a process.
	KindLaunchApp
	// KindSwitchWindow focuses a window by name or title.
	KindSwitchWindow
	// KindRunScript runs a script with arguments.
	KindRunScript
	// KindRepeat is a marker carrying a repeat count. It performs no
	// side effect itself; unrolling is the caller's responsibility.
	KindRepeat
)

// kindNames are the persisted action_type values.
var kindNames = map[Kind]string{
	KindKeyPress:     "key_press",
	KindClick:        "click",
	KindPointerMove:  "pointer_move",
	KindPaste:        "paste",
	KindWait:         "wait",
	KindOpenFile:     "open_file",
	KindOpenURL:      "open_url",
	KindLaunchApp:    "launch_app",
	KindSwitchWindow: "switch_window",
	KindRunScript:    "run_script",
	KindRepeat:       "repeat",
}

// String returns the persisted kind name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown names
// are an error so corrupted macro files fail loudly at load time.
func (k *Kind) UnmarshalText(text []byte) error {
	name := string(text)
	for kind, n := range kindNames {
		if n == name {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("action: unknown action_type %q", name)
}

// Action is one primitive automation step.
type Action struct {
	// Kind selects the executor dispatch arm.
	Kind Kind `json:"action_type"`

	// Params carries kind-specific parameters.
	Params map[string]any `json:"params,omitempty"`
}

// Decode populates a typed params struct from the action's params map.
// Decoding is weakly typed so JSON-decoded numbers (float64) fill int
// fields.
func (a Action) Decode(out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("action: build decoder: %w", err)
	}
	if err := dec.Decode(a.Params); err != nil {
		return fmt.Errorf("action: decode %s params: %w", a.Kind, err)
	}
	return nil
}
