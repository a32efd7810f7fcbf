package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load() of missing file failed: %v", err)
	}

	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("log defaults = %s/%s, want info/text", cfg.Log.Level, cfg.Log.Format)
	}
	if !cfg.Devices.Keyboard.Enabled {
		t.Error("keyboard should be enabled by default")
	}
	if cfg.Devices.Dictation.Enabled {
		t.Error("dictation should be off by default")
	}
	if cfg.Devices.Controller.PollIntervalMS != 20 {
		t.Errorf("poll interval = %d, want 20", cfg.Devices.Controller.PollIntervalMS)
	}
	if cfg.MQTT.Enabled {
		t.Error("mqtt should be off by default")
	}
	if cfg.MQTT.Topic != "macroflow/commands" {
		t.Errorf("mqtt topic = %q, want macroflow/commands", cfg.MQTT.Topic)
	}
}

func TestLoad_EmptyPathSkipsFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log level = %q, want info", cfg.Log.Level)
	}
}

// File values overlay defaults; unset sections keep their defaults.
func TestLoad_FileOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[log]
level = "debug"

[devices.controller]
enabled = false
poll_interval_ms = 50

[mqtt]
enabled = true
broker = "tcp://localhost:1883"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("log format = %q, want default text", cfg.Log.Format)
	}
	if cfg.Devices.Controller.Enabled {
		t.Error("controller should be disabled by the file")
	}
	if got := cfg.Devices.Controller.PollInterval(); got != 50*time.Millisecond {
		t.Errorf("poll interval = %v, want 50ms", got)
	}
	if !cfg.Devices.Keyboard.Enabled {
		t.Error("keyboard should keep its default")
	}
	if !cfg.MQTT.Enabled || cfg.MQTT.Broker != "tcp://localhost:1883" {
		t.Errorf("mqtt = %+v, want enabled with broker set", cfg.MQTT)
	}
	if cfg.MQTT.Topic != "macroflow/commands" {
		t.Errorf("mqtt topic = %q, want default kept", cfg.MQTT.Topic)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[log\nlevel"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error for malformed file")
	}
}
