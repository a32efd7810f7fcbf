package device

import "github.com/dshills/macroflow/internal/event"

// commandQueueSize bounds the number of submitted commands waiting for
// the device loop.
const commandQueueSize = 16

// CommandSource is a caller-fed text command device. Each submitted
// string is emitted as one text event.
type CommandSource struct {
	base
	queue chan string
}

// NewCommandSource creates a command device with a bounded queue.
func NewCommandSource(id string) *CommandSource {
	return &CommandSource{
		base:  newBase(id, event.DeviceCommand),
		queue: make(chan string, commandQueueSize),
	}
}

// Submit enqueues one command string for emission. Returns false if
// the queue is full; the command is dropped and logged.
func (c *CommandSource) Submit(text string) bool {
	select {
	case c.queue <- text:
		return true
	default:
		c.log.WithField("text", text).Warn("command queue full, dropping command")
		return false
	}
}

// Start spawns the drain loop. No-op if already running.
func (c *CommandSource) Start() error { return c.start(c.loop) }

// Stop signals the loop and joins it.
func (c *CommandSource) Stop() error { return c.stopLoop() }

func (c *CommandSource) loop(stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case text := <-c.queue:
			c.emit(event.KindText, map[string]any{"text": text})
		}
	}
}
