package event

import (
	"time"

	"github.com/google/uuid"
)

// DeviceKind identifies the class of input source that produced an event.
type DeviceKind uint8

const (
	// DeviceUnknown indicates an unclassified source.
	DeviceUnknown DeviceKind = iota
	// DeviceKeyboard indicates a secondary keyboard source.
	DeviceKeyboard
	// DeviceController indicates a game controller source.
	DeviceController
	// DeviceMIDI indicates a MIDI controller source.
	DeviceMIDI
	// DeviceCommand indicates a typed text-command source.
	DeviceCommand
	// DeviceDictation indicates a speech dictation source.
	DeviceDictation
)

// String returns the device kind name.
func (k DeviceKind) String() string {
	switch k {
	case DeviceKeyboard:
		return "keyboard"
	case DeviceController:
		return "controller"
	case DeviceMIDI:
		return "midi"
	case DeviceCommand:
		return "command"
	case DeviceDictation:
		return "dictation"
	default:
		return "unknown"
	}
}

// Kind identifies the discrete input occurrence an event describes.
type Kind uint8

const (
	// KindUnknown indicates an unclassified occurrence.
	KindUnknown Kind = iota
	// KindKeyDown indicates a key was pressed.
	KindKeyDown
	// KindKeyUp indicates a key was released.
	KindKeyUp
	// KindButton indicates a controller button change.
	KindButton
	// KindAxis indicates a controller axis change.
	KindAxis
	// KindHat indicates a controller hat change.
	KindHat
	// KindMIDIMessage indicates a MIDI message arrived.
	KindMIDIMessage
	// KindText indicates a submitted text command or recognized utterance.
	KindText
)

// String returns the event kind name.
func (k Kind) String() string {
	switch k {
	case KindKeyDown:
		return "key_down"
	case KindKeyUp:
		return "key_up"
	case KindButton:
		return "button"
	case KindAxis:
		return "axis"
	case KindHat:
		return "hat"
	case KindMIDIMessage:
		return "midi_message"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// IsTextual reports whether the event carries free-form command text
// suitable for grammar parsing.
func (k Kind) IsTextual() bool {
	return k == KindText
}

// Event describes one discrete input occurrence from one device.
// Events are immutable once created.
type Event struct {
	// ID is a unique identifier for this event instance.
	ID string

	// DeviceKind is the class of the emitting source.
	DeviceKind DeviceKind

	// DeviceID identifies the emitting device within the registry.
	DeviceID string

	// Kind is the type of occurrence.
	Kind Kind

	// Data carries occurrence-specific fields (key name, button index,
	// axis value, command text). Shared, read-only after creation.
	Data map[string]any

	// Timestamp is when the device observed the occurrence.
	Timestamp time.Time
}

// New creates an event stamped with a fresh ID and the current time.
func New(deviceKind DeviceKind, deviceID string, kind Kind, data map[string]any) Event {
	return Event{
		ID:         uuid.New().String(),
		DeviceKind: deviceKind,
		DeviceID:   deviceID,
		Kind:       kind,
		Data:       data,
		Timestamp:  time.Now(),
	}
}

// Text returns the command text carried by a textual event, or the
// empty string for non-textual events.
func (e Event) Text() string {
	if !e.Kind.IsTextual() {
		return ""
	}
	if s, ok := e.Data["text"].(string); ok {
		return s
	}
	return ""
}
