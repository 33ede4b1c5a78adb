package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reversi.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchCode(t *testing.T) {
	cfg, err := parseReversi(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultReversiConfig() {
		t.Errorf("embedded YAML = %+v, code defaults = %+v", cfg, DefaultReversiConfig())
	}
}

func TestLoadReversiCustomPath(t *testing.T) {
	path := writeConfig(t, `
mode: cpu
show_hints: false
theme:
  black_disc: "X"
  white_disc: "O"
  hint: "+"
  cursor: "<>"
`)

	cfg, err := LoadReversi(path)
	if err != nil {
		t.Fatalf("LoadReversi() error: %v", err)
	}
	want := ReversiConfig{
		Mode:      "cpu",
		ShowHints: false,
		Theme:     ReversiTheme{BlackDisc: "X", WhiteDisc: "O", Hint: "+", Cursor: "<>"},
	}
	if cfg != want {
		t.Errorf("LoadReversi() = %+v, expected %+v", cfg, want)
	}
}

func TestLoadReversiPartialKeepsDefaults(t *testing.T) {
	cfg, err := LoadReversi(writeConfig(t, "mode: cpu\n"))
	if err != nil {
		t.Fatalf("LoadReversi() error: %v", err)
	}
	def := DefaultReversiConfig()
	if cfg.Mode != "cpu" || cfg.ShowHints != def.ShowHints || cfg.Theme != def.Theme {
		t.Errorf("partial config = %+v", cfg)
	}
}

func TestLoadReversiErrors(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string // Expected InvalidConfig field, empty for other errors
	}{
		{"unknown mode", "mode: robot\n", "mode"},
		{"empty disc", "theme:\n  black_disc: \"\"\n", "theme.black_disc"},
		{"two-rune hint", "theme:\n  hint: \"..\"\n", "theme.hint"},
		{"one-rune cursor", "theme:\n  cursor: \"|\"\n", "theme.cursor"},
		{"bad yaml", "mode: [cpu\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadReversi(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("expected an error")
			}
			if cfg != DefaultReversiConfig() {
				t.Errorf("failed load should return defaults, got %+v", cfg)
			}

			var invalid *InvalidConfig
			if tt.field == "" {
				if errors.As(err, &invalid) {
					t.Errorf("syntax error reported as %v", err)
				}
				return
			}
			if !errors.As(err, &invalid) || invalid.Field != tt.field {
				t.Errorf("error = %v, expected invalid %s", err, tt.field)
			}
		})
	}
}

func TestLoadReversiMissingCustomFile(t *testing.T) {
	_, err := LoadReversi(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, expected not-exist", err)
	}
}

func TestLoadReversiDefaultSearch(t *testing.T) {
	// An empty XDG home and working directory fall through to the embedded default
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()
	t.Chdir(t.TempDir())

	cfg, err := LoadReversi("")
	if err != nil {
		t.Fatalf("LoadReversi() error: %v", err)
	}
	if cfg != DefaultReversiConfig() {
		t.Errorf("LoadReversi() = %+v, expected defaults", cfg)
	}
}

func TestLoadReversiLocalConfigsDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.MkdirAll(filepath.Join(dir, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "configs", "reversi.yaml"), []byte("show_hints: false\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadReversi("")
	if err != nil {
		t.Fatalf("LoadReversi() error: %v", err)
	}
	if cfg.ShowHints {
		t.Error("./configs/reversi.yaml should be picked up")
	}
}

func TestThemeRunes(t *testing.T) {
	black, white, hint, l, r := DefaultReversiConfig().Theme.Runes()
	if black != '●' || white != '○' || hint != '·' || l != '[' || r != ']' {
		t.Errorf("Runes() = %q %q %q %q %q", black, white, hint, l, r)
	}
}
