package executor

// KeyboardSender injects one key or chord into the OS input stream.
type KeyboardSender interface {
	// SendKey sends the named key or chord, press-and-hold when hold
	// is true and press-and-release otherwise.
	SendKey(chord string, hold bool) error
}

// PointerController moves and clicks the OS pointer.
type PointerController interface {
	// Move positions the pointer at (x, y), absolute or relative.
	Move(x, y int, relative bool) error

	// Click presses the named button the given number of times at the
	// current pointer position.
	Click(button string, clicks int) error
}

// ClipboardService writes text to the system clipboard. Pasting is
// performed by the KeyboardSender sending the platform paste chord
// after a clipboard write.
type ClipboardService interface {
	WriteText(text string) error
}

// FileOpener opens a file with its default handler.
type FileOpener interface {
	OpenFile(path string) error
}

// URLOpener opens a URL in the default browser.
type URLOpener interface {
	OpenURL(url string) error
}

// ProcessLauncher starts a process without waiting for it.
type ProcessLauncher interface {
	Launch(path string, args []string) error
}

// WindowSwitcher focuses a window by name or title.
type WindowSwitcher interface {
	// Switch focuses the first window whose title satisfies match
	// ("exact" or "contains"; empty means exact).
	Switch(title, match string) error
}

// ScriptRunner runs a script to completion.
type ScriptRunner interface {
	Run(path string, args []string) error
}

// Collaborators bundles the interfaces the executor dispatches to.
// Any nil field is replaced with an absent implementation.
type Collaborators struct {
	Keyboard  KeyboardSender
	Pointer   PointerController
	Clipboard ClipboardService
	Files     FileOpener
	URLs      URLOpener
	Processes ProcessLauncher
	Windows   WindowSwitcher
	Scripts   ScriptRunner
}

// withDefaults returns a copy with every nil collaborator replaced by
// an absent implementation.
func (c Collaborators) withDefaults() Collaborators {
	if c.Keyboard == nil {
		c.Keyboard = absent{"keyboard"}
	}
	if c.Pointer == nil {
		c.Pointer = absent{"pointer"}
	}
	if c.Clipboard == nil {
		c.Clipboard = absent{"clipboard"}
	}
	if c.Files == nil {
		c.Files = absent{"file-opener"}
	}
	if c.URLs == nil {
		c.URLs = absent{"url-opener"}
	}
	if c.Processes == nil {
		c.Processes = absent{"process-launcher"}
	}
	if c.Windows == nil {
		c.Windows = absent{"window-switcher"}
	}
	if c.Scripts == nil {
		c.Scripts = absent{"script-runner"}
	}
	return c
}
