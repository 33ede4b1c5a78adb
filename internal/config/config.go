// Package config provides YAML-based configuration loading for the
// reversi terminal client.
package config

import (
	"fmt"
	"unicode/utf8"
)

// ReversiConfig contains the presentation settings for the game.
// Board size, CPU weights, CPU delay and history depth are fixed by the
// engine and deliberately absent here.
type ReversiConfig struct {
	Mode      string       `yaml:"mode"`       // "friend" or "cpu"
	ShowHints bool         `yaml:"show_hints"` // Mark legal moves
	Theme     ReversiTheme `yaml:"theme"`
}

// ReversiTheme defines the glyphs used to draw the board.
type ReversiTheme struct {
	BlackDisc string `yaml:"black_disc"`
	WhiteDisc string `yaml:"white_disc"`
	Hint      string `yaml:"hint"`
	Cursor    string `yaml:"cursor"` // Left and right bracket, e.g. "[]"
}

// InvalidConfig reports a configuration value that cannot be used.
type InvalidConfig struct {
	Field  string
	Reason string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("config: invalid %s: %s", e.Field, e.Reason)
}

// Validate checks that the mode is known and every glyph is usable.
func (c ReversiConfig) Validate() error {
	switch c.Mode {
	case "", "friend", "cpu":
	default:
		return &InvalidConfig{Field: "mode", Reason: fmt.Sprintf("%q is not friend or cpu", c.Mode)}
	}

	glyphs := []struct {
		field string
		value string
		runes int
	}{
		{"theme.black_disc", c.Theme.BlackDisc, 1},
		{"theme.white_disc", c.Theme.WhiteDisc, 1},
		{"theme.hint", c.Theme.Hint, 1},
		{"theme.cursor", c.Theme.Cursor, 2},
	}
	for _, g := range glyphs {
		if n := utf8.RuneCountInString(g.value); n != g.runes {
			return &InvalidConfig{
				Field:  g.field,
				Reason: fmt.Sprintf("want %d character(s), got %d", g.runes, n),
			}
		}
	}
	return nil
}

// Runes returns the first rune of each single-glyph theme field and the
// two cursor brackets.
func (t ReversiTheme) Runes() (black, white, hint, cursorL, cursorR rune) {
	first := func(s string) rune {
		r, _ := utf8.DecodeRuneInString(s)
		return r
	}
	cursor := []rune(t.Cursor)
	cursorL, cursorR = '[', ']'
	if len(cursor) == 2 {
		cursorL, cursorR = cursor[0], cursor[1]
	}
	return first(t.BlackDisc), first(t.WhiteDisc), first(t.Hint), cursorL, cursorR
}
