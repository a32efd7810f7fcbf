package backend

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/macroflow/internal/device"
)

// TerminalHook implements device.KeyHook over a tcell screen. Terminal
// input only reports key presses, so every transition is emitted as a
// down event; no key-up events are produced.
type TerminalHook struct {
	screen tcell.Screen
	events chan device.KeyEvent

	mu     sync.Mutex
	closed bool
}

// NewTerminalHook initializes a tcell screen and starts draining its
// event queue. Fails when no terminal is attached; callers should then
// construct the keyboard device with a nil hook so it degrades to idle.
func NewTerminalHook() (*TerminalHook, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	h := &TerminalHook{
		screen: screen,
		events: make(chan device.KeyEvent, 16),
	}
	go h.drain()
	return h, nil
}

// Events returns the key transition stream.
func (h *TerminalHook) Events() <-chan device.KeyEvent { return h.events }

// Close shuts down the screen and closes the stream.
func (h *TerminalHook) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.closed = true
	h.screen.Fini()
	return nil
}

// drain pumps tcell events into the key stream until the screen is
// finalized.
func (h *TerminalHook) drain() {
	defer close(h.events)
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		h.events <- device.KeyEvent{Key: chordName(key), Down: true}
	}
}

// chordName renders a tcell key event as a chord string in modifier
// order ctrl, alt, shift (e.g. "ctrl+shift+p", "f13", "a").
func chordName(ev *tcell.EventKey) string {
	var parts []string
	mod := ev.Modifiers()
	if mod&tcell.ModCtrl != 0 {
		parts = append(parts, "ctrl")
	}
	if mod&tcell.ModAlt != 0 {
		parts = append(parts, "alt")
	}
	if mod&tcell.ModShift != 0 {
		parts = append(parts, "shift")
	}

	if ev.Key() == tcell.KeyRune {
		parts = append(parts, strings.ToLower(string(ev.Rune())))
	} else {
		parts = append(parts, strings.ToLower(tcell.KeyNames[ev.Key()]))
	}
	return strings.Join(parts, "+")
}
