package device

import "github.com/dshills/macroflow/internal/event"

// KeyEvent is one key transition observed by a key hook.
type KeyEvent struct {
	// Key is the key or chord name (e.g. "a", "f13", "ctrl+shift+p").
	Key string

	// Down is true for press, false for release.
	Down bool
}

// KeyHook is the collaborator backend for a keyboard device: a stream
// of key transitions from an OS-level hook. The stream channel closes
// when the hook shuts down.
type KeyHook interface {
	Events() <-chan KeyEvent
	Close() error
}

// Keyboard adapts a key hook stream into key_down/key_up events.
type Keyboard struct {
	base
	hook KeyHook
}

// NewKeyboard creates a keyboard device over the given hook. A nil
// hook is permitted; the device then runs permanently idle.
func NewKeyboard(id string, hook KeyHook) *Keyboard {
	return &Keyboard{
		base: newBase(id, event.DeviceKeyboard),
		hook: hook,
	}
}

// Start spawns the accept loop. No-op if already running.
func (k *Keyboard) Start() error { return k.start(k.loop) }

// Stop signals the loop, joins it, and closes the hook.
func (k *Keyboard) Stop() error {
	err := k.stopLoop()
	if k.hook != nil {
		if cerr := k.hook.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

func (k *Keyboard) loop(stop <-chan struct{}) {
	if k.hook == nil {
		k.idle(stop, "no key hook")
		return
	}

	events := k.hook.Events()
	for {
		select {
		case <-stop:
			return
		case ke, ok := <-events:
			if !ok {
				k.log.Warn("key hook stream closed, device is idle")
				return
			}
			kind := event.KindKeyUp
			if ke.Down {
				kind = event.KindKeyDown
			}
			k.emit(kind, map[string]any{"key": ke.Key})
		}
	}
}
