package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config is the engine configuration.
type Config struct {
	Log     LogConfig     `toml:"log"`
	Macros  MacrosConfig  `toml:"macros"`
	Devices DevicesConfig `toml:"devices"`
	MQTT    MQTTConfig    `toml:"mqtt"`
}

// LogConfig controls logging output.
type LogConfig struct {
	// Level is debug, info, warn, or error.
	Level string `toml:"level"`

	// Format is text or json.
	Format string `toml:"format"`
}

// MacrosConfig locates the persisted macro list and trigger bindings.
type MacrosConfig struct {
	Path     string `toml:"path"`
	Bindings string `toml:"bindings"`
}

// DevicesConfig enables and tunes the input devices.
type DevicesConfig struct {
	Keyboard   KeyboardConfig   `toml:"keyboard"`
	Controller ControllerConfig `toml:"controller"`
	MIDI       MIDIConfig       `toml:"midi"`
	Command    CommandConfig    `toml:"command"`
	Dictation  DictationConfig  `toml:"dictation"`
}

// KeyboardConfig configures the keyboard device.
type KeyboardConfig struct {
	Enabled bool `toml:"enabled"`

	// Terminal uses the built-in tcell terminal hook as the key
	// source. Off by default; production deployments inject an OS
	// hook instead.
	Terminal bool `toml:"terminal"`
}

// ControllerConfig configures the game controller device.
type ControllerConfig struct {
	Enabled        bool `toml:"enabled"`
	PollIntervalMS int  `toml:"poll_interval_ms"`
}

// MIDIConfig configures the MIDI device.
type MIDIConfig struct {
	Enabled bool `toml:"enabled"`
}

// CommandConfig configures the typed text command device.
type CommandConfig struct {
	Enabled bool `toml:"enabled"`
}

// DictationConfig configures the speech dictation device.
type DictationConfig struct {
	Enabled         bool `toml:"enabled"`
	ListenTimeoutMS int  `toml:"listen_timeout_ms"`
}

// MQTTConfig configures the remote MQTT command device.
type MQTTConfig struct {
	Enabled bool   `toml:"enabled"`
	Broker  string `toml:"broker"`
	Topic   string `toml:"topic"`
}

// PollInterval returns the controller poll interval as a duration.
func (c ControllerConfig) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}

// ListenTimeout returns the dictation listen window as a duration.
func (c DictationConfig) ListenTimeout() time.Duration {
	return time.Duration(c.ListenTimeoutMS) * time.Millisecond
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info", Format: "text"},
		Macros: MacrosConfig{
			Path:     defaultPath("macros.json"),
			Bindings: defaultPath("bindings.yaml"),
		},
		Devices: DevicesConfig{
			Keyboard:   KeyboardConfig{Enabled: true},
			Controller: ControllerConfig{Enabled: true, PollIntervalMS: 20},
			MIDI:       MIDIConfig{Enabled: true},
			Command:    CommandConfig{Enabled: true},
			Dictation:  DictationConfig{Enabled: false, ListenTimeoutMS: 5000},
		},
		MQTT: MQTTConfig{Topic: "macroflow/commands"},
	}
}

// Load reads the TOML file at path over the defaults. A missing file
// returns the defaults without error. An empty path skips the file
// entirely.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultConfigPath returns the conventional config file location.
func DefaultConfigPath() string {
	return defaultPath("config.toml")
}

func defaultPath(name string) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return name
	}
	return filepath.Join(dir, "macroflow", name)
}
