package device

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/dshills/macroflow/internal/event"
)

// Handler receives every event from every registered device.
type Handler func(event.Event)

// Manager owns the device registry and fans out every emitted event to
// all registered handlers.
//
// Dispatch runs synchronously on the emitting device's goroutine, in
// handler registration order. A handler panic is logged and does not
// prevent the remaining handlers from running, nor does it stop the
// device's loop. The registry is guarded against concurrent
// add/remove/iterate, so devices may be added or removed while others
// are emitting.
type Manager struct {
	mu       sync.RWMutex
	devices  map[string]Device
	handlers []Handler
	log      *logrus.Entry
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{
		devices: make(map[string]Device),
		log:     logrus.WithField("component", "input-manager"),
	}
}

// AddDevice registers d and subscribes the manager's router to it.
// Registering a second device under an existing id silently replaces
// the first; last write wins and the replaced device is left running.
func (m *Manager) AddDevice(d Device) error {
	if d == nil {
		return ErrNilDevice
	}

	d.RegisterCallback(m.route)

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.devices[d.ID()]; exists {
		m.log.WithField("device", d.ID()).Warn("replacing device with duplicate id")
	}
	m.devices[d.ID()] = d
	return nil
}

// RemoveDevice stops the device registered under id and deletes the
// registry entry. Returns ErrNotFound if no device has that id.
func (m *Manager) RemoveDevice(id string) error {
	m.mu.Lock()
	d, ok := m.devices[id]
	delete(m.devices, id)
	m.mu.Unlock()

	if !ok {
		return ErrNotFound
	}
	return d.Stop()
}

// Device returns the device registered under id, or nil.
func (m *Manager) Device(id string) Device {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.devices[id]
}

// Devices returns a snapshot of all registered devices.
func (m *Manager) Devices() []Device {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]Device, 0, len(m.devices))
	for _, d := range m.devices {
		result = append(result, d)
	}
	return result
}

// StartAll starts every registered device. The first start error is
// returned after all devices have been attempted.
func (m *Manager) StartAll() error {
	var firstErr error
	for _, d := range m.Devices() {
		if err := d.Start(); err != nil {
			m.log.WithField("device", d.ID()).WithError(err).Error("failed to start device")
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// StopAll stops every registered device. The first stop error is
// returned after all devices have been attempted.
func (m *Manager) StopAll() error {
	var firstErr error
	for _, d := range m.Devices() {
		if err := d.Stop(); err != nil {
			m.log.WithField("device", d.ID()).WithError(err).Error("failed to stop device")
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// RegisterHandler appends fn to the handler list invoked for every
// event from every device.
func (m *Manager) RegisterHandler(fn Handler) {
	if fn == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers = append(m.handlers, fn)
}

// route is the callback the manager subscribes on every device. It
// invokes every registered handler in order; a panicking handler is
// isolated and logged.
func (m *Manager) route(ev event.Event) {
	m.mu.RLock()
	handlers := make([]Handler, len(m.handlers))
	copy(handlers, m.handlers)
	m.mu.RUnlock()

	for i, fn := range handlers {
		m.dispatch(i, fn, ev)
	}
}

func (m *Manager) dispatch(index int, fn Handler, ev event.Event) {
	defer func() {
		if r := recover(); r != nil {
			m.log.WithFields(logrus.Fields{
				"handler": index,
				"device":  ev.DeviceID,
				"event":   ev.Kind.String(),
				"panic":   r,
			}).Error("event handler panicked")
		}
	}()
	fn(ev)
}
