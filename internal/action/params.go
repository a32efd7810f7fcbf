package action

// KeyPressParams configures a key_press action.
type KeyPressParams struct {
	// Key is the key or chord name (e.g. "delete", "ctrl+shift+left").
	Key string `mapstructure:"key"`

	// Hold sends press-and-hold instead of press-and-release.
	Hold bool `mapstructure:"hold"`
}

// ClickParams configures a click action.
type ClickParams struct {
	X int `mapstructure:"x"`
	Y int `mapstructure:"y"`

	// Relative interprets X/Y as an offset from the current pointer
	// position instead of absolute screen coordinates.
	Relative bool `mapstructure:"relative"`

	// Button is "left", "right", or "middle". Empty means left.
	Button string `mapstructure:"button"`

	// Clicks is the click count. Zero means one.
	Clicks int `mapstructure:"clicks"`
}

// PointerMoveParams configures a pointer_move action.
type PointerMoveParams struct {
	X        int  `mapstructure:"x"`
	Y        int  `mapstructure:"y"`
	Relative bool `mapstructure:"relative"`
}

// PasteParams configures a paste action.
type PasteParams struct {
	Text string `mapstructure:"text"`
}

// WaitParams configures a wait action.
type WaitParams struct {
	DurationMS int `mapstructure:"duration_ms"`
}

// OpenFileParams configures an open_file action.
type OpenFileParams struct {
	Path string `mapstructure:"path"`
}

// OpenURLParams configures an open_url action.
type OpenURLParams struct {
	URL string `mapstructure:"url"`
}

// LaunchAppParams configures a launch_app action.
type LaunchAppParams struct {
	Path string   `mapstructure:"path"`
	Args []string `mapstructure:"args"`
}

// SwitchWindowParams configures a switch_window action.
type SwitchWindowParams struct {
	Title string `mapstructure:"title"`

	// Match is "exact" or "contains". Empty means exact.
	Match string `mapstructure:"match"`
}

// RunScriptParams configures a run_script action.
type RunScriptParams struct {
	Path string   `mapstructure:"path"`
	Args []string `mapstructure:"args"`
}

// RepeatParams carries the count of a repeat marker action.
type RepeatParams struct {
	Times int `mapstructure:"times"`
}
