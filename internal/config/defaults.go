package config

import (
	_ "embed"
)

//go:embed defaults/reversi.yaml
var defaultReversiYAML []byte

// DefaultReversiConfig returns the default reversi configuration.
func DefaultReversiConfig() ReversiConfig {
	return ReversiConfig{
		Mode:      "friend",
		ShowHints: true,
		Theme: ReversiTheme{
			BlackDisc: "●",
			WhiteDisc: "○",
			Hint:      "·",
			Cursor:    "[]",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultReversiYAML
}
