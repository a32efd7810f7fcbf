package app

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/dshills/macroflow/internal/config"
	"github.com/dshills/macroflow/internal/device"
	"github.com/dshills/macroflow/internal/device/backend"
	"github.com/dshills/macroflow/internal/executor"
	"github.com/dshills/macroflow/internal/macro"
	"github.com/dshills/macroflow/internal/pipeline"
	"github.com/dshills/macroflow/internal/script"
	"github.com/dshills/macroflow/internal/trigger"
)

// ErrAlreadyRunning indicates Run was called twice.
var ErrAlreadyRunning = errors.New("app: already running")

// Options are the command-line level settings.
type Options struct {
	// ConfigPath overrides the default config file location.
	ConfigPath string

	// LogLevel overrides the configured log level when non-empty.
	LogLevel string

	// Collaborators supplies OS automation backends. Nil fields
	// degrade to logged no-ops.
	Collaborators executor.Collaborators
}

// App owns the assembled engine.
type App struct {
	cfg      config.Config
	manager  *device.Manager
	store    *macro.Store
	exec     *executor.Executor
	triggers *trigger.Engine
	watcher  *config.Watcher
	commands *device.CommandSource
	log      *logrus.Entry

	mu      sync.Mutex
	running bool
	done    chan struct{}
}

// New builds the engine from options and configuration.
func New(opts Options) (*App, error) {
	cfgPath := opts.ConfigPath
	if cfgPath == "" {
		cfgPath = config.DefaultConfigPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	setupLogging(cfg.Log)

	a := &App{
		cfg:     cfg,
		manager: device.NewManager(),
		store:   macro.NewStore(cfg.Macros.Path),
		log:     logrus.WithField("component", "app"),
		done:    make(chan struct{}),
	}

	if err := a.store.Load(); err != nil {
		return nil, fmt.Errorf("app: load macros: %w", err)
	}

	collab := opts.Collaborators
	if collab.Scripts == nil {
		collab.Scripts = script.NewLuaRunner()
	}
	if collab.Processes == nil {
		collab.Processes = executor.ExecLauncher{}
	}
	opener := executor.NewExecOpener(collab.Processes)
	if collab.Files == nil {
		collab.Files = opener
	}
	if collab.URLs == nil {
		collab.URLs = opener
	}
	a.exec = executor.New(collab)

	a.triggers = trigger.NewEngine(a.store, a.exec)
	bindings, err := trigger.LoadBindings(cfg.Macros.Bindings)
	if err != nil {
		return nil, fmt.Errorf("app: load bindings: %w", err)
	}
	a.triggers.SetBindings(bindings)

	a.manager.RegisterHandler(pipeline.New(a.exec).Handle)
	a.manager.RegisterHandler(a.triggers.Handle)

	if err := a.addDevices(); err != nil {
		return nil, err
	}

	if w, err := config.Watch(cfgPath, a.onReload); err == nil {
		a.watcher = w
	} else {
		a.log.WithError(err).Warn("config watching disabled")
	}

	return a, nil
}

// addDevices registers the configured devices. Devices whose source
// backends are not injected run idle; they still appear in the
// registry so enabling a backend later is a config-and-restart away.
func (a *App) addDevices() error {
	devices := a.cfg.Devices

	if devices.Keyboard.Enabled {
		var hook device.KeyHook
		if devices.Keyboard.Terminal {
			h, err := backend.NewTerminalHook()
			if err != nil {
				a.log.WithError(err).Warn("terminal key hook unavailable")
			} else {
				hook = h
			}
		}
		if err := a.manager.AddDevice(device.NewKeyboard("keyboard0", hook)); err != nil {
			return err
		}
	}

	if devices.Controller.Enabled {
		d := device.NewController("controller0", nil, devices.Controller.PollInterval())
		if err := a.manager.AddDevice(d); err != nil {
			return err
		}
	}

	if devices.MIDI.Enabled {
		if err := a.manager.AddDevice(device.NewMIDI("midi0", nil)); err != nil {
			return err
		}
	}

	if devices.Command.Enabled {
		a.commands = device.NewCommandSource("command0")
		if err := a.manager.AddDevice(a.commands); err != nil {
			return err
		}
	}

	if devices.Dictation.Enabled {
		d := device.NewDictation("dictation0", nil, devices.Dictation.ListenTimeout())
		if err := a.manager.AddDevice(d); err != nil {
			return err
		}
	}

	if a.cfg.MQTT.Enabled {
		d := device.NewMQTTCommand("mqtt0", a.cfg.MQTT.Broker, a.cfg.MQTT.Topic)
		if err := a.manager.AddDevice(d); err != nil {
			return err
		}
	}

	return nil
}

// Submit feeds one typed command into the command device. Returns
// false when the command device is disabled or its queue is full.
func (a *App) Submit(text string) bool {
	if a.commands == nil {
		return false
	}
	return a.commands.Submit(text)
}

// Manager returns the input manager.
func (a *App) Manager() *device.Manager { return a.manager }

// Store returns the macro store.
func (a *App) Store() *macro.Store { return a.store }

// Executor returns the action executor.
func (a *App) Executor() *executor.Executor { return a.exec }

// Run starts all devices and blocks until Shutdown.
func (a *App) Run() error {
	a.mu.Lock()
	if a.running {
		a.mu.Unlock()
		return ErrAlreadyRunning
	}
	a.running = true
	a.mu.Unlock()

	if err := a.manager.StartAll(); err != nil {
		a.log.WithError(err).Warn("some devices failed to start")
	}
	a.log.WithField("devices", len(a.manager.Devices())).Info("engine running")

	<-a.done
	return nil
}

// Shutdown stops devices, cancels any executing macro, and releases
// the config watcher. Safe to call more than once.
func (a *App) Shutdown() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.running {
		return
	}
	a.running = false

	a.exec.Cancel()
	if err := a.manager.StopAll(); err != nil {
		a.log.WithError(err).Warn("some devices failed to stop")
	}
	if a.watcher != nil {
		_ = a.watcher.Close()
	}
	close(a.done)
	a.log.Info("engine stopped")
}

// onReload applies a reloaded config. Only logging and bindings are
// hot-reloadable; device changes need a restart.
func (a *App) onReload(cfg config.Config) {
	setupLogging(cfg.Log)

	bindings, err := trigger.LoadBindings(cfg.Macros.Bindings)
	if err != nil {
		a.log.WithError(err).Error("binding reload failed, keeping previous bindings")
		return
	}
	a.triggers.SetBindings(bindings)
}

// setupLogging applies the log section to the global logrus logger.
func setupLogging(cfg config.LogConfig) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if cfg.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}
