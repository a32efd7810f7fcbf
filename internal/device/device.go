package device

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dshills/macroflow/internal/event"
)

// joinTimeout bounds how long Stop waits for a device loop to exit.
const joinTimeout = 2 * time.Second

// Callback receives one event from a device.
type Callback func(event.Event)

// Device is an independently running source of events.
//
// Start is idempotent while the loop is running. Stop is safe to call
// even if the device was never started and joins the loop with a
// bounded wait. Callbacks may be registered before or after Start;
// every callback registered before an emission receives that emission.
type Device interface {
	// ID returns the registry identity of the device.
	ID() string

	// Kind returns the class of input source.
	Kind() event.DeviceKind

	// Enabled reports whether the device currently emits events.
	Enabled() bool

	// SetEnabled toggles emission without stopping the loop.
	SetEnabled(enabled bool)

	// RegisterCallback subscribes fn to every event the device emits.
	RegisterCallback(fn Callback)

	// Start spawns the device loop. No-op if already running.
	Start() error

	// Stop signals the loop and waits for it to exit.
	Stop() error
}

// loopFunc is a device loop body. It must return promptly once stop is
// closed. A loop may also return early on its own (for example when its
// source backend is absent); the device then stays registered but idle.
type loopFunc func(stop <-chan struct{})

// base carries the identity, callback list, and loop lifecycle shared
// by every concrete adapter.
type base struct {
	id   string
	kind event.DeviceKind
	log  *logrus.Entry

	mu        sync.Mutex
	enabled   bool
	running   bool
	callbacks []Callback
	stop      chan struct{}
	done      chan struct{}
}

func newBase(id string, kind event.DeviceKind) base {
	return base{
		id:      id,
		kind:    kind,
		enabled: true,
		log: logrus.WithFields(logrus.Fields{
			"device": id,
			"kind":   kind.String(),
		}),
	}
}

// ID returns the device id.
func (b *base) ID() string { return b.id }

// Kind returns the device kind.
func (b *base) Kind() event.DeviceKind { return b.kind }

// Enabled reports whether the device emits events.
func (b *base) Enabled() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.enabled
}

// SetEnabled toggles emission.
func (b *base) SetEnabled(enabled bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.enabled = enabled
}

// RegisterCallback subscribes fn to every event the device emits.
func (b *base) RegisterCallback(fn Callback) {
	if fn == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.callbacks = append(b.callbacks, fn)
}

// start spawns loop in its own goroutine. Idempotent while running.
func (b *base) start(loop loopFunc) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.running {
		return nil
	}

	b.stop = make(chan struct{})
	b.done = make(chan struct{})
	b.running = true

	go func(stop chan struct{}, done chan struct{}) {
		defer close(done)
		loop(stop)
	}(b.stop, b.done)

	return nil
}

// stopLoop signals the loop and joins it with a bounded wait. Safe to
// call when the device was never started.
func (b *base) stopLoop() error {
	b.mu.Lock()
	if !b.running {
		b.mu.Unlock()
		return nil
	}
	b.running = false
	stop := b.stop
	done := b.done
	b.mu.Unlock()

	close(stop)

	select {
	case <-done:
		return nil
	case <-time.After(joinTimeout):
		b.log.Error("device loop did not stop within join window")
		return ErrStopTimeout
	}
}

// emit builds an event and delivers it to every registered callback,
// synchronously and in registration order. Disabled devices drop the
// emission. A panicking callback is logged and does not stop the loop
// or the remaining callbacks.
func (b *base) emit(kind event.Kind, data map[string]any) {
	b.mu.Lock()
	if !b.enabled {
		b.mu.Unlock()
		return
	}
	callbacks := make([]Callback, len(b.callbacks))
	copy(callbacks, b.callbacks)
	b.mu.Unlock()

	ev := event.New(b.kind, b.id, kind, data)
	for _, fn := range callbacks {
		b.invoke(fn, ev)
	}
}

func (b *base) invoke(fn Callback, ev event.Event) {
	defer func() {
		if r := recover(); r != nil {
			b.log.WithFields(logrus.Fields{
				"event": ev.Kind.String(),
				"panic": r,
			}).Error("device callback panicked")
		}
	}()
	fn(ev)
}

// idle logs the reason, then parks the loop until stop. Used when a
// source backend is absent at runtime.
func (b *base) idle(stop <-chan struct{}, reason string) {
	b.log.WithField("reason", reason).Warn("source backend unavailable, device is idle")
	<-stop
}
