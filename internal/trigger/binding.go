package trigger

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dshills/macroflow/internal/macro"
)

// Binding maps one device event shape to a stored macro name.
type Binding struct {
	// Macro is the name of the stored macro to launch.
	Macro string `yaml:"macro"`

	// Device, Event, Key, and Button form the trigger criteria; see
	// macro.Trigger for matching semantics.
	Device string `yaml:"device,omitempty"`
	Event  string `yaml:"event,omitempty"`
	Key    string `yaml:"key,omitempty"`
	Button *int   `yaml:"button,omitempty"`
}

// Trigger converts the binding's criteria to a macro trigger.
func (b Binding) Trigger() macro.Trigger {
	return macro.Trigger{
		Device: b.Device,
		Event:  b.Event,
		Key:    b.Key,
		Button: b.Button,
	}
}

// bindingFile is the YAML document root.
type bindingFile struct {
	Bindings []Binding `yaml:"bindings"`
}

// LoadBindings reads a YAML binding file. A missing file yields no
// bindings and is not an error.
func LoadBindings(path string) ([]Binding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("trigger: read %s: %w", path, err)
	}

	var file bindingFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("trigger: parse %s: %w", path, err)
	}

	for i, b := range file.Bindings {
		if b.Macro == "" {
			return nil, fmt.Errorf("trigger: binding %d has no macro name", i)
		}
	}
	return file.Bindings, nil
}
