package device

import (
	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/dshills/macroflow/internal/event"
)

// mqttQueueSize bounds inbound messages waiting for the device loop.
const mqttQueueSize = 16

// mqttDisconnectQuiesce is the paho disconnect drain window in
// milliseconds.
const mqttDisconnectQuiesce = 250

// MQTTCommand is a remote text command device: every message published
// to the configured topic is emitted as one text event. It lets other
// machines or phone apps drive the engine over a broker.
type MQTTCommand struct {
	base
	broker  string
	topic   string
	opts    *paho.ClientOptions
	client  paho.Client
	inbound chan string
}

// NewMQTTCommand creates an MQTT command device for the given broker
// URL and topic.
func NewMQTTCommand(id, broker, topic string) *MQTTCommand {
	opts := paho.NewClientOptions().AddBroker(broker)
	opts.SetClientID("macroflow-" + id)
	opts.SetAutoReconnect(true)

	return &MQTTCommand{
		base:    newBase(id, event.DeviceCommand),
		broker:  broker,
		topic:   topic,
		opts:    opts,
		inbound: make(chan string, mqttQueueSize),
	}
}

// Start connects to the broker, subscribes, and spawns the drain loop.
// A broker that cannot be reached degrades the device to a logged idle
// loop rather than failing startup. No-op if already running.
func (m *MQTTCommand) Start() error { return m.start(m.loop) }

// Stop signals the loop, joins it, and disconnects from the broker.
func (m *MQTTCommand) Stop() error {
	err := m.stopLoop()
	if m.client != nil {
		m.client.Disconnect(mqttDisconnectQuiesce)
	}
	return err
}

func (m *MQTTCommand) loop(stop <-chan struct{}) {
	if !m.connect() {
		m.idle(stop, "mqtt broker unreachable")
		return
	}

	for {
		select {
		case <-stop:
			return
		case text := <-m.inbound:
			m.emit(event.KindText, map[string]any{"text": text})
		}
	}
}

// connect dials the broker and subscribes to the command topic.
func (m *MQTTCommand) connect() bool {
	client := paho.NewClient(m.opts)
	token := client.Connect()
	token.Wait()
	if err := token.Error(); err != nil {
		m.log.WithField("broker", m.broker).WithError(err).Warn("mqtt connect failed")
		return false
	}

	sub := client.Subscribe(m.topic, 0, m.onMessage)
	sub.Wait()
	if err := sub.Error(); err != nil {
		m.log.WithField("topic", m.topic).WithError(err).Warn("mqtt subscribe failed")
		client.Disconnect(mqttDisconnectQuiesce)
		return false
	}

	m.client = client
	return true
}

// onMessage runs on paho's network goroutine; it hands the payload to
// the device loop so emission stays on the device's own goroutine.
func (m *MQTTCommand) onMessage(_ paho.Client, msg paho.Message) {
	select {
	case m.inbound <- string(msg.Payload()):
	default:
		m.log.WithField("topic", msg.Topic()).Warn("mqtt command queue full, dropping message")
	}
}
