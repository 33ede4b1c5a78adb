// Package registry maps game IDs to factories. Game packages register their
// variants from init, so the platform can list and start them by ID.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/tui-reversi/internal/core"
)

// ErrUnknownGame is returned by Create for an ID nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is what the platform drives once per tick. Implementations hold pure
// logic; key mapping, timing and terminal output belong to the platform.
type Game interface {
	// ID is the stable variant name used by the CLI and stored results.
	ID() string
	// Title is shown in menus.
	Title() string
	// Reset starts a fresh game laid out for cfg.
	Reset(cfg core.RuntimeConfig)
	// Step consumes one frame of input and advances by one tick.
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// Resizable is implemented by games that can adopt a new screen size
// without losing their state. Games that do not implement it are Reset.
type Resizable interface {
	Resize(w, h int)
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory returns a new, not yet Reset, game.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a variant. It panics when id is taken.
func Register(id string, f Factory) {
	title := f().Title()

	mu.Lock()
	defer mu.Unlock()
	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: title}
}

// List returns every registered variant ordered by ID.
func List() []GameInfo {
	mu.RLock()
	infos := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		infos = append(infos, GameInfo{ID: id, Title: e.title})
	}
	mu.RUnlock()

	slices.SortFunc(infos, func(a, b GameInfo) int { return cmp.Compare(a.ID, b.ID) })
	return infos
}

// Create builds a new instance of the variant registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
