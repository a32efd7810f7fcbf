package device

import "github.com/dshills/macroflow/internal/event"

// MIDIMessage is one raw message read from a MIDI port.
type MIDIMessage struct {
	Status byte
	Data1  byte
	Data2  byte
}

// Channel returns the zero-based MIDI channel of the message.
func (m MIDIMessage) Channel() int { return int(m.Status & 0x0f) }

// TypeName returns a readable name for the message's status nibble.
func (m MIDIMessage) TypeName() string {
	switch m.Status & 0xf0 {
	case 0x80:
		return "note_off"
	case 0x90:
		if m.Data2 == 0 {
			// Running-status convention: note-on with zero velocity.
			return "note_off"
		}
		return "note_on"
	case 0xa0:
		return "poly_aftertouch"
	case 0xb0:
		return "control_change"
	case 0xc0:
		return "program_change"
	case 0xd0:
		return "aftertouch"
	case 0xe0:
		return "pitch_bend"
	default:
		return "system"
	}
}

// MIDIPort is the collaborator backend for a MIDI device: a stream of
// messages from an open input port. The channel closes when the port
// shuts down.
type MIDIPort interface {
	Messages() <-chan MIDIMessage
	Close() error
}

// MIDI adapts a MIDI input port stream into midi_message events.
type MIDI struct {
	base
	port MIDIPort
}

// NewMIDI creates a MIDI device over the given port. A nil port is
// permitted; the device then runs permanently idle.
func NewMIDI(id string, port MIDIPort) *MIDI {
	return &MIDI{
		base: newBase(id, event.DeviceMIDI),
		port: port,
	}
}

// Start spawns the accept loop. No-op if already running.
func (m *MIDI) Start() error { return m.start(m.loop) }

// Stop signals the loop, joins it, and closes the port.
func (m *MIDI) Stop() error {
	err := m.stopLoop()
	if m.port != nil {
		if cerr := m.port.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

func (m *MIDI) loop(stop <-chan struct{}) {
	if m.port == nil {
		m.idle(stop, "no midi port")
		return
	}

	messages := m.port.Messages()
	for {
		select {
		case <-stop:
			return
		case msg, ok := <-messages:
			if !ok {
				m.log.Warn("midi port stream closed, device is idle")
				return
			}
			m.emit(event.KindMIDIMessage, map[string]any{
				"type":    msg.TypeName(),
				"channel": msg.Channel(),
				"data1":   int(msg.Data1),
				"data2":   int(msg.Data2),
			})
		}
	}
}
