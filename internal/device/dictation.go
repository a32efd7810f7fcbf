package device

import (
	"errors"
	"time"

	"github.com/dshills/macroflow/internal/event"
)

// ErrNoSpeech is returned by a Recognizer when the listen window
// elapsed without a recognizable utterance. It is a normal outcome.
var ErrNoSpeech = errors.New("device: no speech detected")

// defaultListenTimeout bounds one recognizer listen call when none is
// configured.
const defaultListenTimeout = 5 * time.Second

// recognizerBackoff spaces out retries after a recognizer failure so a
// broken backend cannot spin the loop.
const recognizerBackoff = time.Second

// Recognizer is the collaborator backend for a dictation device: one
// blocking listen-and-convert call per utterance.
type Recognizer interface {
	// Listen blocks up to timeout and returns the recognized text.
	// Returns ErrNoSpeech when nothing was heard.
	Listen(timeout time.Duration) (string, error)

	Close() error
}

// Dictation adapts a speech recognizer into text events, one per
// recognized utterance.
type Dictation struct {
	base
	recognizer Recognizer
	timeout    time.Duration
}

// NewDictation creates a dictation device over the given recognizer.
// A non-positive timeout selects the default listen window. A nil
// recognizer is permitted; the device then runs permanently idle.
func NewDictation(id string, recognizer Recognizer, timeout time.Duration) *Dictation {
	if timeout <= 0 {
		timeout = defaultListenTimeout
	}
	return &Dictation{
		base:       newBase(id, event.DeviceDictation),
		recognizer: recognizer,
		timeout:    timeout,
	}
}

// Start spawns the listen loop. No-op if already running.
func (d *Dictation) Start() error { return d.start(d.loop) }

// Stop signals the loop, joins it, and closes the recognizer.
func (d *Dictation) Stop() error {
	err := d.stopLoop()
	if d.recognizer != nil {
		if cerr := d.recognizer.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

func (d *Dictation) loop(stop <-chan struct{}) {
	if d.recognizer == nil {
		d.idle(stop, "no speech recognizer")
		return
	}

	for {
		select {
		case <-stop:
			return
		default:
		}

		text, err := d.recognizer.Listen(d.timeout)
		switch {
		case errors.Is(err, ErrNoSpeech):
			continue
		case err != nil:
			d.log.WithError(err).Warn("speech recognition failed")
			select {
			case <-stop:
				return
			case <-time.After(recognizerBackoff):
			}
			continue
		}

		if text == "" {
			continue
		}
		d.emit(event.KindText, map[string]any{"text": text})
	}
}
