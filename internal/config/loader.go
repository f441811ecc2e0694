package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/salvo.yaml
var defaultYAML []byte

// Load reads the configuration.
// Search order: customPath -> ~/.salvo/config.yaml -> ./salvo.yaml -> embedded default.
// Only an explicitly requested customPath is allowed to fail loudly.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		return parse(data, customPath)
	}

	if userPath := userConfigPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if cfg, err := parse(data, userPath); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile("salvo.yaml"); err == nil {
		if cfg, err := parse(data, "salvo.yaml"); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := parse(defaultYAML, "embedded default"); err == nil {
		return cfg, nil
	}
	return Default(), nil
}

// parse unmarshals a config document, filling gaps from the defaults.
func parse(data []byte, source string) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", source, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if the
// home directory is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".salvo", "config.yaml")
}
