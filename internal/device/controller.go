package device

import (
	"math"
	"time"

	"github.com/dshills/macroflow/internal/event"
)

// defaultPollInterval is the controller sampling rate when none is
// configured.
const defaultPollInterval = 20 * time.Millisecond

// axisEpsilon filters analog jitter below this delta.
const axisEpsilon = 0.01

// ControllerState is one sampled snapshot of a game controller.
type ControllerState struct {
	Buttons []bool
	Axes    []float64
	Hats    []int
}

// ControllerHandle is the collaborator backend for a game controller
// device: a pollable snapshot of the controller's current state.
type ControllerHandle interface {
	State() (ControllerState, error)
	Close() error
}

// Controller samples a controller handle at a fixed rate and emits one
// event per button, axis, or hat change.
type Controller struct {
	base
	handle   ControllerHandle
	interval time.Duration
	prev     ControllerState
	primed   bool
}

// NewController creates a controller device polling handle every
// interval. A non-positive interval selects the default rate. A nil
// handle is permitted; the device then runs permanently idle.
func NewController(id string, handle ControllerHandle, interval time.Duration) *Controller {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	return &Controller{
		base:     newBase(id, event.DeviceController),
		handle:   handle,
		interval: interval,
	}
}

// Start spawns the polling loop. No-op if already running.
func (c *Controller) Start() error { return c.start(c.loop) }

// Stop signals the loop, joins it, and closes the handle.
func (c *Controller) Stop() error {
	err := c.stopLoop()
	if c.handle != nil {
		if cerr := c.handle.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

func (c *Controller) loop(stop <-chan struct{}) {
	if c.handle == nil {
		c.idle(stop, "no controller handle")
		return
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			state, err := c.handle.State()
			if err != nil {
				c.log.WithError(err).Warn("controller poll failed, device is idle")
				return
			}
			c.diff(state)
		}
	}
}

// diff emits one event per element that changed since the previous
// sample. The first sample only primes the baseline.
func (c *Controller) diff(state ControllerState) {
	if !c.primed {
		c.prev = state
		c.primed = true
		return
	}

	for i, pressed := range state.Buttons {
		if i < len(c.prev.Buttons) && c.prev.Buttons[i] == pressed {
			continue
		}
		c.emit(event.KindButton, map[string]any{"button": i, "pressed": pressed})
	}

	for i, value := range state.Axes {
		if i < len(c.prev.Axes) && math.Abs(c.prev.Axes[i]-value) < axisEpsilon {
			continue
		}
		c.emit(event.KindAxis, map[string]any{"axis": i, "value": value})
	}

	for i, value := range state.Hats {
		if i < len(c.prev.Hats) && c.prev.Hats[i] == value {
			continue
		}
		c.emit(event.KindHat, map[string]any{"hat": i, "value": value})
	}

	c.prev = state
}
