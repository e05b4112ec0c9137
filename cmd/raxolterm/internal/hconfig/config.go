// Package hconfig loads the harness's optional YAML configuration file.
package hconfig

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the harness's on-disk configuration. No command-line flag
// overrides it; `run` replaces Rows/Cols with the real terminal size when
// stdin and stdout are terminals.
type Config struct {
	Rows               int  `yaml:"rows"`
	Cols               int  `yaml:"cols"`
	ScrollbackCapacity int  `yaml:"scrollback_capacity"`
	OSCPayloadLimit    int  `yaml:"osc_payload_limit"`
	DCSPayloadLimit    int  `yaml:"dcs_payload_limit"`
	ReflowOnResize     bool `yaml:"reflow_on_resize"`
}

// Default returns the harness's built-in defaults, used when no config file
// is given or a field is left unset in the file.
func Default() Config {
	return Config{
		Rows:               24,
		Cols:               80,
		ScrollbackCapacity: 1000,
		OSCPayloadLimit:    4096,
		DCSPayloadLimit:    65536,
		ReflowOnResize:     true,
	}
}

// Load reads and parses path over the defaults: fields absent from the file
// keep their default, fields present (even as 0 or false) replace it.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
