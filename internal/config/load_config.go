package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadArduinoCLIConfig reads arduino-cli.yaml at path. The installer uses it
// to skip `config init` and `config add` when a previous install already did
// that work. A missing file is returned as an error wrapping fs.ErrNotExist.
func LoadArduinoCLIConfig(path string) (ArduinoCLIConfig, error) {
	var cfg ArduinoCLIConfig

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read arduino-cli config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal arduino-cli config %s: %w", path, err)
	}
	return cfg, nil
}
