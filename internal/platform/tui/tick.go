// Package tui runs games inside Bubble Tea: the fixed-rate tick loop,
// key and mouse mapping, the opponent menu, the results board and the
// SSH server that hosts all of it per session.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one simulation step of the model whose chain it carries.
type TickMsg struct {
	chain uint64
	At    time.Time
}

var lastChain atomic.Uint64

// nextTickChain returns an ID no earlier model was given. A model only
// steps on ticks of its own chain, so ticks left in flight by a dropped
// game never drive the next one.
func nextTickChain() uint64 {
	return lastChain.Add(1)
}

// tickInterval converts a rate in ticks per second to a period. Rates
// below one fall back to 60.
func tickInterval(tickRate int) time.Duration {
	if tickRate < 1 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd schedules the next TickMsg of chain.
func tickCmd(tickRate int, chain uint64) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{chain: chain, At: t}
	})
}
