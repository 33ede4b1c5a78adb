package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// AppName is the directory used under the XDG config and data homes.
const AppName = "tui-reversi"

const configFile = "reversi.yaml"

// LoadReversi loads the reversi configuration.
// Search order: customPath -> $XDG_CONFIG_HOME/tui-reversi/reversi.yaml ->
// ./configs/reversi.yaml -> embedded default.
// Keys missing from a file keep their default values.
func LoadReversi(customPath string) (ReversiConfig, error) {
	// Try custom path first; errors here are the user's to see
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultReversiConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseReversi(data)
		if err != nil {
			return DefaultReversiConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseReversi(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := parseReversi(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseReversi(defaultReversiYAML)
	if err != nil {
		return DefaultReversiConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseReversi decodes YAML over the defaults and validates the result.
func parseReversi(data []byte) (ReversiConfig, error) {
	cfg := DefaultReversiConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// UserConfigPath returns the existing user config file, or empty if there
// is none.
func UserConfigPath() string {
	path, err := xdg.SearchConfigFile(filepath.Join(AppName, configFile))
	if err != nil {
		return ""
	}
	return path
}
