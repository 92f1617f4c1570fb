// Package registry maps game IDs to factories so the CLI and the terminal
// platform can start a game by name. Games add themselves from init(); the
// binary links them in with a blank import.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/brickbreak/internal/core"
)

// DefaultGame is started when the CLI is given no game ID.
const DefaultGame = "breakout"

// Game is a fixed-step simulation driven by the platform. Implementations
// know nothing about the terminal: they get an InputFrame per tick and draw
// into a Screen on demand.
type Game interface {
	ID() string
	Title() string

	// Reset starts a fresh session sized to cfg.
	Reset(cfg core.RuntimeConfig)

	// Step consumes one frame of input and advances one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame. dst may have been resized since the
	// last call.
	Render(dst *core.Screen)

	State() core.GameState
}

// Resizer is implemented by games that keep their session across terminal
// resizes instead of being Reset.
type Resizer interface {
	Resize(w, h int)
}

// SessionTagger is implemented by games whose sessions carry an ID for logs.
type SessionTagger interface {
	SessionID() string
}

// SessionID returns the game's session ID, or "" if it has none.
func SessionID(g Game) string {
	if t, ok := g.(SessionTagger); ok {
		return t.SessionID()
	}
	return ""
}

// Factory builds a new, not yet Reset, game.
type Factory func() Game

// Entry describes one registered game.
type Entry struct {
	ID    string
	Title string

	factory Factory
}

// Registry is a concurrency-safe set of game factories keyed by ID.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Register adds a factory under id. The title is read from a throwaway
// instance. Registering an ID twice panics since it means two games were
// linked under the same name.
func (r *Registry) Register(id string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, dup := r.entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	r.entries[id] = Entry{ID: id, Title: f().Title(), factory: f}
}

// List returns the registered games ordered by ID.
func (r *Registry) List() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b Entry) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// Lookup returns the entry for id.
func (r *Registry) Lookup(id string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[id]
	return e, ok
}

// Create builds a new instance of the game registered under id.
func (r *Registry) Create(id string) (Game, error) {
	e, ok := r.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func (r *Registry) Exists(id string) bool {
	_, ok := r.Lookup(id)
	return ok
}

// std holds the games linked into the binary.
var std = New()

// Register adds a game to the process-wide registry.
func Register(id string, f Factory) { std.Register(id, f) }

// List returns the games linked into the binary.
func List() []Entry { return std.List() }

// Create builds a game from the process-wide registry.
func Create(id string) (Game, error) { return std.Create(id) }

// Exists reports whether a game is linked into the binary.
func Exists(id string) bool { return std.Exists(id) }
