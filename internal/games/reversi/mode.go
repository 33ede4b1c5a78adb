package reversi

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects who plays White.
type Mode string

const (
	// ModeFriend is two humans sharing one terminal.
	ModeFriend Mode = "friend"
	// ModeCPU puts the opponent policy on White.
	ModeCPU Mode = "cpu"
)

// ErrUnknownMode is returned by ParseMode for anything but friend or cpu.
var ErrUnknownMode = errors.New("reversi: unknown mode")

// ParseMode converts a user-supplied string into a Mode.
// An empty string selects ModeFriend.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(ModeFriend):
		return ModeFriend, nil
	case string(ModeCPU):
		return ModeCPU, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeCPU {
		return ModeFriend
	}
	return ModeCPU
}

// Label returns the display name.
func (m Mode) Label() string {
	if m == ModeCPU {
		return "vs CPU"
	}
	return "vs Friend"
}
